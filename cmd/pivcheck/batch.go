package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/pivcheck/core/yamlflag"
	"github.com/usnistgov/pivcheck/piv/dataobj"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:embed dump.schema.json
var dumpSchemaJSON []byte

var dumpSchema = func() *gojsonschema.Schema {
	schema, e := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(dumpSchemaJSON))
	if e != nil {
		panic(e)
	}
	return schema
}()

// dumpObject is one data object in a card dump.
//
// Hex is kept as raw JSON so that an unquoted YAML scalar such as 0x9900,
// which YAML types as an integer, fails schema validation instead of being converted to decimal text.
type dumpObject struct {
	Container string          `json:"container,omitempty"`
	Hex       json.RawMessage `json:"hex,omitempty"`
	File      string          `json:"file,omitempty"`
}

func (obj dumpObject) read(dir string) ([]byte, error) {
	input := inputFlags{File: obj.File}
	if len(obj.Hex) > 0 {
		if e := json.Unmarshal(obj.Hex, &input.Hex); e != nil {
			return nil, fmt.Errorf("hex must be a quoted string, got %s", obj.Hex)
		}
	}
	if input.File != "" && input.File != "-" && !filepath.IsAbs(input.File) {
		input.File = filepath.Join(dir, input.File)
	}
	return input.read()
}

// dumpDocument is a card dump, listing data objects read from a card.
type dumpDocument struct {
	Card    string       `json:"card,omitempty"`
	Objects []dumpObject `json:"objects"`
}

type schemaError struct {
	*gojsonschema.Result
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprintln(&b, "card dump failed schema validation:")
	for _, desc := range e.Result.Errors() {
		fmt.Fprintln(&b, "-", desc)
	}
	return b.String()
}

func (doc dumpDocument) validate() error {
	result, e := dumpSchema.Validate(gojsonschema.NewGoLoader(doc))
	switch {
	case e != nil:
		return e
	case result.Valid():
		return nil
	default:
		return schemaError{result}
	}
}

// checkCommand returns a command line that reproduces a check.
func (obj dumpObject) checkCommand(data []byte) string {
	return shellquote.Join("pivcheck", "check", "--container", obj.Container, "--hex", strings.ToUpper(fmt.Sprintf("%x", data)))
}

type batchResult struct {
	Index   int            `json:"index"`
	Report  dataobj.Report `json:"report"`
	Error   string         `json:"error,omitempty"`
	Command string         `json:"command,omitempty"`
}

// runBatch checks every object in a card dump.
// Relative file names are resolved from dir.
// It returns combined errors of all failed objects.
func runBatch(w io.Writer, doc dumpDocument, dir string) (errs error) {
	nPass := 0
	for i, obj := range doc.Objects {
		res := batchResult{Index: i}
		data, e := obj.read(dir)
		if e == nil {
			res.Report, e = dataobj.Check(nil, obj.Container, data)
		}
		if e == nil {
			e = res.Report.Err()
		}

		if e == nil {
			nPass++
		} else {
			res.Error = e.Error()
			if data != nil {
				res.Command = obj.checkCommand(data)
			}
			errs = multierr.Append(errs, fmt.Errorf("objects[%d] %s: %w", i, obj.Container, e))
			logger.Debug("object failed", zap.Int("index", i), zap.String("container", obj.Container), zap.Error(e))
		}

		switch {
		case jsonOutput:
			errs = multierr.Append(errs, printJSON(w, res))
		case e == nil:
			fmt.Fprintf(w, "[%d] %s PASS\n", i, res.Report.Container)
		default:
			fmt.Fprintf(w, "[%d] %s FAIL\n", i, obj.Container)
			for _, line := range multierr.Errors(e) {
				fmt.Fprintln(w, "  ", line)
			}
			if res.Command != "" {
				fmt.Fprintln(w, "  ", res.Command)
			}
		}
	}
	if !jsonOutput {
		fmt.Fprintf(w, "%s %d/%d passed\n", doc.Card, nPass, len(doc.Objects))
	}
	return errs
}

func init() {
	var doc dumpDocument
	defineCommand(&cli.Command{
		Name:  "batch",
		Usage: "Validate all data objects in a card dump.",
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:     "dump",
				Usage:    "Card dump `YAML` document, or @ followed by filename. Quote hex payloads. Object files are relative to the working directory.",
				Value:    yamlflag.New(&doc),
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if e := doc.validate(); e != nil {
				return e
			}
			if e := runBatch(os.Stdout, doc, "."); e != nil {
				return fmt.Errorf("%d of %d objects failed", len(multierr.Errors(e)), len(doc.Objects))
			}
			return nil
		},
	})
}
