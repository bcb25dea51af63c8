package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/math"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/piv/boundary"
	"github.com/usnistgov/pivcheck/piv/tlv"
)

type treeLine struct {
	Depth  int     `json:"depth"`
	Tag    tlv.Tag `json:"tag"`
	Length int     `json:"length"`
	Value  string  `json:"value,omitempty"`
}

// printTree writes one line per element, indented by nesting depth.
// Primitive values are previewed up to preview octets.
func printTree(w io.Writer, forest tlv.Forest, preview int) {
	forest.Walk(func(node tlv.Node, depth int) {
		fmt.Fprint(w, strings.Repeat("  ", depth), node)
		if !node.IsConstructed() && preview > 0 && node.Length() > 0 {
			n := math.MinInt(node.Length(), preview)
			fmt.Fprint(w, " ", strings.ToUpper(hex.EncodeToString(node.Value[:n])))
			if n < node.Length() {
				fmt.Fprint(w, "...")
			}
		}
		fmt.Fprintln(w)
	})
}

func treeLines(forest tlv.Forest) (lines []treeLine) {
	forest.Walk(func(node tlv.Node, depth int) {
		line := treeLine{Depth: depth, Tag: node.Tag, Length: node.Length()}
		if !node.IsConstructed() {
			line.Value = strings.ToUpper(hex.EncodeToString(node.Value))
		}
		lines = append(lines, line)
	})
	return lines
}

func init() {
	var input inputFlags
	var containerID string
	var preview int
	defineCommand(&cli.Command{
		Name:  "parse",
		Usage: "Decode BER-TLV and print the element tree.",
		Flags: append(input.flags(),
			&cli.StringFlag{
				Name:        "container",
				Usage:       "Treat data elements of `CONTAINER` as opaque values.",
				Destination: &containerID,
			},
			&cli.IntFlag{
				Name:        "preview",
				Usage:       "Print up to `N` octets of each primitive value.",
				Value:       16,
				Destination: &preview,
			},
		),
		Action: func(c *cli.Context) error {
			data, e := input.read()
			if e != nil {
				return e
			}

			var p tlv.Parser
			if containerID != "" {
				rs, e := boundary.Default().Ruleset(containerID)
				if e != nil {
					return e
				}
				p.Leaf = rs.Has
			}
			forest, e := p.Parse(data)
			if e != nil {
				return e
			}

			if jsonOutput {
				for _, line := range treeLines(forest) {
					if e := printJSON(os.Stdout, line); e != nil {
						return e
					}
				}
				return nil
			}
			printTree(os.Stdout, forest, preview)
			return nil
		},
	})
}
