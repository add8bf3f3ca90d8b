// Package mdext integrates snippet envelope recognition with goldmark: a
// block parser that recognizes the envelope ahead of the built-in HTML
// block parser, AST node kinds for the container and its language
// sub-blocks, an HTML renderer, and document-level walking with
// byte-accurate write-back.
package mdext

import (
	gast "github.com/yuin/goldmark/ast"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

// Snippet is the AST container for one recognized envelope.
type Snippet struct {
	gast.BaseBlock

	Flags snippet.Flags

	// Byte and line bounds of the whole envelope in the source,
	// recorded at parse time for write-back and listing.
	ByteStart int
	ByteStop  int
	LineStart int
	LineEnd   int

	remaining int
}

// KindSnippet is the node kind of Snippet.
var KindSnippet = gast.NewNodeKind("Snippet")

// Kind implements gast.Node.
func (n *Snippet) Kind() gast.NodeKind {
	return KindSnippet
}

// Dump implements gast.Node.
func (n *Snippet) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Hide":             string(n.Flags.Hide),
		"Console":          string(n.Flags.Console),
		"Babel":            string(n.Flags.Babel),
		"BabelPresetReact": string(n.Flags.BabelPresetReact),
		"BabelPresetTS":    string(n.Flags.BabelPresetTS),
	}, nil)
}

// SnippetLang is the AST node for one language sub-block. Content is the
// de-indented body; it is never inline-parsed.
type SnippetLang struct {
	gast.BaseBlock

	Language snippet.Language
	Content  string
}

// KindSnippetLang is the node kind of SnippetLang.
var KindSnippetLang = gast.NewNodeKind("SnippetLang")

// Kind implements gast.Node.
func (n *SnippetLang) Kind() gast.NodeKind {
	return KindSnippetLang
}

// Dump implements gast.Node.
func (n *SnippetLang) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Language": string(n.Language),
	}, nil)
}

// IsRaw reports that the node's content must not be inline-parsed.
func (n *SnippetLang) IsRaw() bool {
	return true
}
