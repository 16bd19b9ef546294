package list

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
	"github.com/nightconcept/peridot-go/internal/core/lockfile"
)

// podDisplayInfo holds what the list command shows for one pod.
type podDisplayInfo struct {
	Name          string
	Spec          string
	LockedVersion string
	Status        string
}

// ListCmd defines the 'list' command.
var ListCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "Displays declared pods, their targets and lock status.",
	Action: func(c *cli.Context) error {
		pf, err := config.LoadPodfile(".")
		if err != nil {
			if os.IsNotExist(err) {
				return cli.Exit(fmt.Sprintf("Error: %s not found. No project configuration loaded.", config.PodfileName), 1)
			}
			return cli.Exit(fmt.Sprintf("Error loading %s: %v", config.PodfileName, err), 1)
		}

		lf, err := lockfile.Load(".")
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error loading %s: %v", lockfile.LockfileName, err), 1)
		}

		projectColor := color.New(color.FgMagenta, color.Bold).SprintFunc()
		headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
		nameColor := color.New(color.FgWhite).SprintFunc()
		versionColor := color.New(color.FgYellow).SprintFunc()
		specColor := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("%s (%s)\n\n", projectColor(pf.Project.Name), pf.Project.Platform)

		if len(pf.Pods) == 0 {
			fmt.Println(headerColor("pods:"))
			fmt.Println("No pods declared in podfile.toml.")
			return nil
		}

		targetNames := make([]string, 0, len(pf.Targets))
		for name := range pf.Targets {
			targetNames = append(targetNames, name)
		}
		sort.Strings(targetNames)

		for _, targetName := range targetNames {
			fmt.Println(headerColor(config.TargetLabel(targetName) + ":"))
			for _, podName := range pf.Targets[targetName].Pods {
				info := podDisplayInfo{
					Name:          podName,
					Spec:          pf.Pods[podName].Spec,
					LockedVersion: "not installed",
				}
				if entry, ok := lf.Pods[podName]; ok {
					info.LockedVersion = entry.Version
				}
				fmt.Printf("  %s %s %s\n", nameColor(info.Name), versionColor(info.LockedVersion), specColor(info.Spec))
			}
		}
		return nil
	},
}
