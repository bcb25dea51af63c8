package yamlflag_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/usnistgov/pivcheck/core/testenv"
	"github.com/usnistgov/pivcheck/core/yamlflag"
)

type testDocument struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestYAMLFlag(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	var doc testDocument
	f := yamlflag.New(&doc)
	require.NoError(f.Set("name: A\nitems: [x, \"y\"]"))
	assert.Equal("A", doc.Name)
	assert.Equal([]string{"x", "y"}, doc.Items)
	assert.Equal(`{"name":"A","items":["x","y"]}`, f.String())
	assert.Same(&doc, f.Get())

	// YAML 1.1 scalars are typed before conversion to JSON; quoting keeps the text.
	var coerced testDocument
	require.NoError(yamlflag.New(&coerced).Set("name: '0x10'\nitems: [y, off, 0x10]"))
	assert.Equal("0x10", coerced.Name)
	assert.Equal([]string{"true", "false", "16"}, coerced.Items)

	filename := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(os.WriteFile(filename, []byte("name: B\n"), 0o644))
	var doc2 testDocument
	require.NoError(yamlflag.New(&doc2).Set("@" + filename))
	assert.Equal("B", doc2.Name)

	assert.Error(yamlflag.New(&doc2).Set("@" + filename + ".missing"))
	assert.Error(yamlflag.New(&doc2).Set("name: [unclosed"))

	assert.Panics(func() { yamlflag.New(doc2) })
}
