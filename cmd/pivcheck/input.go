package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go4.org/must"
)

// inputFlags selects a data object from the command line or a file.
type inputFlags struct {
	Hex  string
	File string
}

func (f *inputFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hex",
			Usage:       "Data object in `HEX`; whitespace and colons are ignored.",
			Destination: &f.Hex,
		},
		&cli.StringFlag{
			Name:        "file",
			Usage:       "Read binary data object from `FILE`, or '-' for stdin.",
			Destination: &f.File,
		},
	}
}

func (f inputFlags) read() ([]byte, error) {
	switch {
	case f.Hex != "" && f.File != "":
		return nil, errors.New("--hex and --file are mutually exclusive")
	case f.Hex != "":
		return decodeHex(f.Hex)
	case f.File == "-":
		return io.ReadAll(os.Stdin)
	case f.File != "":
		return readFile(f.File)
	}
	return nil, errors.New("either --hex or --file is required")
}

func readFile(filename string) ([]byte, error) {
	file, e := os.Open(filename)
	if e != nil {
		return nil, e
	}
	defer must.Close(file)
	return io.ReadAll(file)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.Map(func(ch rune) rune {
		switch ch {
		case ' ', '\t', '\r', '\n', ':':
			return -1
		}
		return ch
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, e := hex.DecodeString(s)
	if e != nil {
		return nil, fmt.Errorf("invalid hex input: %w", e)
	}
	return b, nil
}

// printJSON writes value as one line of JSON.
func printJSON(w io.Writer, value any) error {
	j, e := json.Marshal(value)
	if e != nil {
		return e
	}
	_, e = fmt.Fprintln(w, string(j))
	return e
}
