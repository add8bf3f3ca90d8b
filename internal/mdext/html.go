package mdext

import (
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// HTMLRenderer renders Snippet and SnippetLang nodes: a wrapping div for
// the container and a language-tagged preformatted block per sub-block.
type HTMLRenderer struct {
	html.Config
}

// NewHTMLRenderer returns an HTMLRenderer with the given options applied.
func NewHTMLRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &HTMLRenderer{Config: html.NewConfig()}

	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}

	return r
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSnippet, r.renderSnippet)
	reg.Register(KindSnippetLang, r.renderSnippetLang)
}

func (r *HTMLRenderer) renderSnippet(w util.BufWriter, source []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	n, ok := node.(*Snippet)
	if !ok {
		return gast.WalkContinue, nil
	}

	if !entering {
		_, _ = w.WriteString("</div>\n")

		return gast.WalkContinue, nil
	}

	// Flag values are from the closed true/false/null set, so they go
	// into the attributes unescaped.
	_, _ = w.WriteString(`<div class="snippet"`)
	_, _ = w.WriteString(` data-hide="` + string(n.Flags.Hide) + `"`)
	_, _ = w.WriteString(` data-console="` + string(n.Flags.Console) + `"`)
	_, _ = w.WriteString(` data-babel="` + string(n.Flags.Babel) + `"`)
	_, _ = w.WriteString(` data-babel-preset-react="` + string(n.Flags.BabelPresetReact) + `"`)
	_, _ = w.WriteString(` data-babel-preset-ts="` + string(n.Flags.BabelPresetTS) + `"`)
	_, _ = w.WriteString(">\n")

	return gast.WalkContinue, nil
}

func (r *HTMLRenderer) renderSnippetLang(w util.BufWriter, source []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	n, ok := node.(*SnippetLang)
	if !ok {
		return gast.WalkContinue, nil
	}

	if !entering {
		return gast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<pre class="lang-` + string(n.Language) + ` prettyprint-override"><code>`)
	r.Writer.RawWrite(w, []byte(n.Content))
	_, _ = w.WriteString("\n</code></pre>\n")

	return gast.WalkSkipChildren, nil
}
