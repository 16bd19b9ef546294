package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
)

// GetInitCommand returns the cli.Command for "init".
func GetInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Creates a starter podfile.toml in the current directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Project name (defaults to the directory name)",
			},
			&cli.StringFlag{
				Name:  "platform",
				Usage: "Target platform: ios or osx",
				Value: "ios",
			},
			&cli.StringFlag{
				Name:  "deployment-target",
				Usage: "Minimum deployment target, e.g. 6.0",
			},
		},
		Action: func(c *cli.Context) error {
			if _, err := os.Stat(config.PodfileName); err == nil {
				return cli.Exit("Error: podfile.toml already exists.", 1)
			}

			name := c.String("name")
			if name == "" {
				wd, err := os.Getwd()
				if err != nil {
					return cli.Exit(fmt.Sprintf("Error determining working directory: %v", err), 1)
				}
				name = filepath.Base(wd)
			}

			pf := &config.Podfile{
				Project: config.ProjectInfo{
					Name:             name,
					Platform:         c.String("platform"),
					DeploymentTarget: c.String("deployment-target"),
				},
				Targets: map[string]config.TargetDefinition{
					"default": {},
				},
			}
			if err := config.WritePodfile(".", pf); err != nil {
				return cli.Exit(fmt.Sprintf("Error writing podfile.toml: %v", err), 1)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Created podfile.toml for %s (%s).\n", name, pf.Project.Platform)
			return nil
		},
	}
}
