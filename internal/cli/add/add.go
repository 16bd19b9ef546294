package add

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
	"github.com/nightconcept/peridot-go/internal/core/source"
)

// NewAddCommand creates the cli.Command for "add".
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Adds a pod declaration to podfile.toml",
		ArgsUsage: "<pod_name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "spec",
				Usage:    "Spec source: local path, http(s) URL, or github:owner/repo/path@ref",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "Target definition to add the pod to",
				Value: "default",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Action: addAction,
	}
}

func addAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Error: expected exactly one pod name argument.", 1)
	}
	podName := c.Args().First()
	specSource := c.String("spec")
	targetName := c.String("target")
	verbose := c.Bool("verbose")

	// Remote sources must at least parse before we record them; local paths
	// are validated at install time.
	if hasRemotePrefix(specSource) {
		if _, err := source.Parse(specSource); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
	}

	pf, err := config.LoadPodfile(".")
	if err != nil {
		if os.IsNotExist(err) {
			return cli.Exit("Error: podfile.toml not found. Please run 'prd init' first.", 1)
		}
		return cli.Exit(fmt.Sprintf("Error loading podfile.toml: %v", err), 1)
	}

	if pf.Pods == nil {
		pf.Pods = make(map[string]config.Pod)
	}
	if pf.Targets == nil {
		pf.Targets = make(map[string]config.TargetDefinition)
	}

	pf.Pods[podName] = config.Pod{Spec: specSource}

	def := pf.Targets[targetName]
	if !contains(def.Pods, podName) {
		def.Pods = append(def.Pods, podName)
	}
	pf.Targets[targetName] = def

	if err := config.WritePodfile(".", pf); err != nil {
		return cli.Exit(fmt.Sprintf("Error writing podfile.toml: %v", err), 1)
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Added %s (%s) to target %s\n", podName, specSource, targetName)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Added pod %s. Run 'prd install' to install it.\n", podName)
	return nil
}

func hasRemotePrefix(s string) bool {
	for _, prefix := range []string{"github:", "http://", "https://"} {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
