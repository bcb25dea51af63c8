package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/piv/container"
)

func init() {
	defineCommand(&cli.Command{
		Name:  "containers",
		Usage: "Print container catalogue.",
		Action: func(c *cli.Context) error {
			list := container.List()
			if jsonOutput {
				for _, ct := range list {
					if e := printJSON(os.Stdout, ct); e != nil {
						return e
					}
				}
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tTAG\tID\tOID\tSHORT\tNAME")
			for _, ct := range list {
				fmt.Fprintf(tw, "%d\t%v\t%04X\t%s\t%s\t%s\n", ct.Table, ct.Tag, ct.ID, ct.OID, ct.Short, ct.Name)
			}
			return tw.Flush()
		},
	})
}
