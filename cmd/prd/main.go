package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/cli/add"
	"github.com/nightconcept/peridot-go/internal/cli/initcmd"
	"github.com/nightconcept/peridot-go/internal/cli/install"
	"github.com/nightconcept/peridot-go/internal/cli/list"
	"github.com/nightconcept/peridot-go/internal/cli/remove"
	"github.com/nightconcept/peridot-go/internal/cli/self"
)

func main() {
	app := &cli.App{
		Name:    "prd",
		Usage:   "A dependency installer for Xcode projects",
		Version: "v0.1.0",
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			initcmd.GetInitCommand(),
			add.NewAddCommand(),
			remove.NewRemoveCommand(),
			install.NewInstallCommand(),
			list.ListCmd,
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
