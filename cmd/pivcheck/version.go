package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/core/version"
)

func init() {
	defineCommand(&cli.Command{
		Name:  "version",
		Usage: "Print version information.",
		Action: func(c *cli.Context) error {
			return printJSON(os.Stdout, version.V)
		},
	})
}
