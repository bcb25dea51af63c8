package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/piv/boundary"
)

type rulesetJSON struct {
	Container string             `json:"container"`
	Rules     []boundary.TagRule `json:"rules"`
}

func printRuleset(w io.Writer, rs *boundary.Ruleset) {
	fmt.Fprintln(w, rs.Container())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, tr := range rs.Rules() {
		fmt.Fprintf(tw, "  %v\t%v\t%s\n", tr.Tag, tr.Rule, tr.Name)
	}
	tw.Flush()
}

func init() {
	var containerID string
	defineCommand(&cli.Command{
		Name:  "rules",
		Usage: "Print length rules.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "container",
				Usage:       "Print rules of `CONTAINER` only.",
				Destination: &containerID,
			},
		},
		Action: func(c *cli.Context) error {
			m := boundary.Default()
			names := m.Containers()
			if containerID != "" {
				names = []string{containerID}
			}

			for _, name := range names {
				rs, e := m.Ruleset(name)
				if e != nil {
					return e
				}
				if jsonOutput {
					if e := printJSON(os.Stdout, rulesetJSON{Container: rs.Container(), Rules: rs.Rules()}); e != nil {
						return e
					}
				} else {
					printRuleset(os.Stdout, rs)
				}
			}
			return nil
		},
	})
}
