package cmd

import (
	"bytes"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/snipmd/internal/mdext"
	"github.com/ezerfernandes/snipmd/internal/snippet"
)

func TestPackRun(t *testing.T) {
	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile("demo.js", []byte("console.log(\"hi\");\n"), fileMode))
	require.NoError(t, fsys.WriteFile("demo.css", []byte("body { color: red; }\n"), fileMode))

	var buf bytes.Buffer

	err := packRun(fsys, []string{"demo.js", "demo.css"}, "console=true babel=false", &buf)
	require.NoError(t, err)

	regions, err := mdext.Extract(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, regions, 1)

	node := regions[0].Node
	assert.Equal(t, snippet.True, node.Flags.Console)
	assert.Equal(t, snippet.False, node.Flags.Babel)
	assert.Equal(t, snippet.Null, node.Flags.Hide)
	assert.Equal(t, `console.log("hi");`, node.Child(snippet.JS).Content)
	assert.Equal(t, `body { color: red; }`, node.Child(snippet.CSS).Content)
}

func TestPackRunNoBodies(t *testing.T) {
	var buf bytes.Buffer

	err := packRun(memoryfs.New(), nil, "", &buf)
	require.NoError(t, err)

	assert.Equal(t,
		"<!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n<!-- end snippet -->\n",
		buf.String())
}

func TestPackRunRejectsBadInput(t *testing.T) {
	fsys := memoryfs.New()
	require.NoError(t, fsys.WriteFile("a.js", []byte("x\n"), fileMode))
	require.NoError(t, fsys.WriteFile("b.js", []byte("y\n"), fileMode))
	require.NoError(t, fsys.WriteFile("notes.txt", []byte("z\n"), fileMode))

	tests := []struct {
		name  string
		paths []string
		words string
	}{
		{name: "unknown extension", paths: []string{"notes.txt"}},
		{name: "duplicate language", paths: []string{"a.js", "b.js"}},
		{name: "missing body file", paths: []string{"missing.css"}},
		{name: "unknown flag", words: "wat=true"},
		{name: "bad flag value", words: "hide=maybe"},
		{name: "word without equals", words: "hide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			assert.Error(t, packRun(fsys, tt.paths, tt.words, &buf))
		})
	}
}

func TestParseFlagWords(t *testing.T) {
	flags, err := parseFlagWords(`hide=true console=false babelPresetTS=null`)
	require.NoError(t, err)

	assert.Equal(t, snippet.Flags{
		Hide:          snippet.True,
		Console:       snippet.False,
		BabelPresetTS: snippet.Null,
	}, flags)
}
