package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/piv/dataobj"
)

// printReport writes one line per checked data element and a summary.
func printReport(w io.Writer, r dataobj.Report) {
	for _, v := range r.Verdicts {
		status := "PASS"
		switch {
		case v.SoftOverride:
			status = "SOFT"
		case !v.Pass():
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %v length=%d rule=%v %v\n", status, v.Tag, v.Length, v.Rule, v.Outcome)
	}
	for _, tag := range r.Absent {
		fmt.Fprintf(w, "ABSENT %v\n", tag)
	}
	fmt.Fprintf(w, "%s size=%d elements=%d failures=%d soft=%d\n",
		r.Container, r.Size, len(r.Verdicts), len(r.Failures()), len(r.SoftOverrides()))
}

func init() {
	var input inputFlags
	var containerID string
	defineCommand(&cli.Command{
		Name:  "check",
		Usage: "Validate a data object against container length rules.",
		Flags: append(input.flags(),
			&cli.StringFlag{
				Name:        "container",
				Usage:       "Container `NAME`, short alias, OID, or data object tag.",
				Destination: &containerID,
				Required:    true,
			},
		),
		Action: func(c *cli.Context) error {
			data, e := input.read()
			if e != nil {
				return e
			}
			r, e := dataobj.Check(nil, containerID, data)
			if e != nil {
				return e
			}

			if jsonOutput {
				if e := printJSON(os.Stdout, r); e != nil {
					return e
				}
			} else {
				printReport(os.Stdout, r)
			}
			return r.Err()
		},
	})
}
