package mdext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type snippetExtension struct{}

// Extension adds snippet envelope recognition and rendering to a goldmark
// instance.
var Extension goldmark.Extender = &snippetExtension{}

// Extend implements goldmark.Extender.
func (e *snippetExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(NewParser(), parserPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewHTMLRenderer(), 500),
	))
}

// New returns a goldmark instance with the snippet extension installed.
func New(options ...goldmark.Option) goldmark.Markdown {
	options = append([]goldmark.Option{goldmark.WithExtensions(Extension)}, options...)

	return goldmark.New(options...)
}
