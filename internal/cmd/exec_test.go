package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/snipmd/internal/mdext"
	"github.com/ezerfernandes/snipmd/internal/snippet"
)

func TestExpandCommand(t *testing.T) {
	info := &bodyInfo{index: 2, lang: snippet.CSS, tempPath: "/tmp/x/2_css.css"}

	got := expandCommand("fmt {} --lang {lang} --n {index} --root {dir}", info, "/tmp/x")

	assert.Equal(t, "fmt /tmp/x/2_css.css --lang css --n 2 --root /tmp/x", got)
}

func TestRunCommandExitStatus(t *testing.T) {
	dir := t.TempDir()

	code, err := runCommand("exit 3", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	code, err = runCommand("true", dir)
	require.NoError(t, err)
	assert.Zero(t, code)
}

func TestExecCommandUpdatesDocument(t *testing.T) {
	path := writeDoc(t, sampleEnvelope)
	dir := t.TempDir()

	_, _, code := run(t, "exec", "--quiet", "--dir", dir, "--lang", "js", "--update", path, "--", `echo 'alert("bye");' > {}`)
	require.Zero(t, code)

	updated, err := os.ReadFile(path)
	require.NoError(t, err)

	regions, err := mdext.Extract(updated)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	assert.Equal(t, `alert("bye");`, regions[0].Node.Child(snippet.JS).Content)
	assert.Equal(t, `body { color: red; }`, regions[0].Node.Child(snippet.CSS).Content)
}

func TestExecCommandFailurePropagates(t *testing.T) {
	path := writeDoc(t, sampleEnvelope)
	dir := t.TempDir()

	_, stderr, code := run(t, "exec", "--quiet", "--dir", dir, path, "--", "exit 1")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed")

	// Temp files land where --dir pointed.
	_, err := os.Stat(filepath.Join(dir, "0_js.js"))
	assert.NoError(t, err)
}
