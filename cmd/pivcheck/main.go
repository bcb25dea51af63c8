// Command pivcheck decodes PIV card data objects and validates them against SP 800-73-4 length rules.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/core/logging"
	"github.com/usnistgov/pivcheck/core/version"
)

var logger = logging.New("main")

var jsonOutput bool

var app = &cli.App{
	Version: version.V.String(),
	Usage:   "PIV data object checker.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print results as JSON lines.",
			Destination: &jsonOutput,
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "Override log `LEVEL` of all packages (D, I, W, E, N).",
		},
	},
	Before: func(c *cli.Context) error {
		if lvl := c.String("log"); lvl != "" {
			logging.SetAllLevels(lvl)
		}
		return nil
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	e := app.Run(os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
