package remove

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
)

// NewRemoveCommand creates the cli.Command for "remove".
func NewRemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Removes a pod declaration from podfile.toml",
		ArgsUsage: "<pod_name>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Error: expected exactly one pod name argument.", 1)
			}
			podName := c.Args().First()

			pf, err := config.LoadPodfile(".")
			if err != nil {
				if os.IsNotExist(err) {
					return cli.Exit("Error: podfile.toml not found.", 1)
				}
				return cli.Exit(fmt.Sprintf("Error loading podfile.toml: %v", err), 1)
			}

			if _, ok := pf.Pods[podName]; !ok {
				return cli.Exit(fmt.Sprintf("Error: pod %q is not declared in podfile.toml.", podName), 1)
			}
			delete(pf.Pods, podName)

			for name, def := range pf.Targets {
				kept := def.Pods[:0]
				for _, p := range def.Pods {
					if p != podName {
						kept = append(kept, p)
					}
				}
				def.Pods = kept
				pf.Targets[name] = def
			}

			if err := config.WritePodfile(".", pf); err != nil {
				return cli.Exit(fmt.Sprintf("Error writing podfile.toml: %v", err), 1)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Removed pod %s. Run 'prd install' to regenerate the Pods project.\n", podName)
			return nil
		},
	}
}
