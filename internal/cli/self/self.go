package self

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/urfave/cli/v2"
)

const defaultRepoSlug = "nightconcept/peridot-go"

// NewSelfCommand creates the command group for self-management.
func NewSelfCommand() *cli.Command {
	return &cli.Command{
		Name:  "self",
		Usage: "Manage the prd CLI application itself",
		Subcommands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Update prd to the latest version",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Automatically confirm the update",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check for available updates without installing",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Custom GitHub update source as 'owner/repo'",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable verbose output",
					},
				},
				Action: updateAction,
			},
		},
	}
}

func updateAction(c *cli.Context) error {
	currentVersionStr := c.App.Version
	verbose := c.Bool("verbose")

	currentSemVer, err := semver.NewVersion(strings.TrimPrefix(currentVersionStr, "v"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error parsing current version '%s': %v.", currentVersionStr, err), 1)
	}
	if verbose {
		fmt.Printf("prd current version: %s\n", currentSemVer.String())
	}

	repoSlug := defaultRepoSlug
	if sourceFlag := c.String("source"); sourceFlag != "" {
		parts := strings.Split(sourceFlag, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return cli.Exit(fmt.Sprintf("Invalid --source format. Expected 'owner/repo', got: %s.", sourceFlag), 1)
		}
		repoSlug = sourceFlag
	}
	if verbose {
		fmt.Printf("Using GitHub source: %s\n", repoSlug)
	}

	ghSource, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating GitHub source: %v", err), 1)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: ghSource})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to initialize updater: %v", err), 1)
	}

	latestRelease, found, err := updater.DetectLatest(c.Context, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error detecting latest version: %v", err), 1)
	}
	if !found {
		fmt.Printf("Current version %s is already the latest.\n", currentVersionStr)
		return nil
	}

	if !latestRelease.GreaterThan(currentSemVer.String()) {
		fmt.Printf("Current version %s is already the latest or newer.\n", currentVersionStr)
		return nil
	}

	fmt.Printf("New version available: %s (current: %s)\n", latestRelease.Version(), currentVersionStr)
	if c.Bool("check") {
		return nil
	}

	if !c.Bool("yes") {
		fmt.Print("Do you want to update? (y/N): ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) != "y" {
			fmt.Println("Update cancelled.")
			return nil
		}
	}

	execPath, err := os.Executable()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Could not get executable path: %v", err), 1)
	}
	fmt.Printf("Updating to %s...\n", latestRelease.Version())
	if err := updater.UpdateTo(c.Context, latestRelease, execPath); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to update: %v", err), 1)
	}
	fmt.Printf("Successfully updated to version %s.\n", latestRelease.Version())
	return nil
}
