// Package yamlflag provides a command line flag that accepts a YAML document.
package yamlflag

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"reflect"

	"github.com/ghodss/yaml"
)

// New creates a flag.Getter that unmarshals a YAML document into value.
//
// The flag value can be one of:
//
//	--flag="key: value"     inline document
//	--flag=@dump.yaml       document read from a file
//	--flag=@-               document read from stdin
//
// YAML is converted to JSON before unmarshaling, so value should carry json struct tags.
// Panics if value is not a pointer.
func New(value any) flag.Getter {
	if val := reflect.ValueOf(value); val.Kind() != reflect.Ptr {
		panic(val.Kind())
	}
	return &documentFlag{target: value}
}

type documentFlag struct {
	target any
}

func (f *documentFlag) Get() any {
	return f.target
}

func (f *documentFlag) Set(s string) (e error) {
	doc := []byte(s)
	switch {
	case s == "@-":
		doc, e = io.ReadAll(os.Stdin)
	case len(s) > 1 && s[0] == '@':
		doc, e = os.ReadFile(s[1:])
	}
	if e != nil {
		return e
	}
	return yaml.Unmarshal(doc, f.target)
}

func (f *documentFlag) String() string {
	if f == nil || f.target == nil {
		return ""
	}
	j, _ := json.Marshal(f.target)
	return string(j)
}
