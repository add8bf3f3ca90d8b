package mdext

import (
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

// The built-in HTML block parser would otherwise swallow the envelope's
// comment markers, so the snippet parser registers just ahead of it.
const parserPriority = 899

type snippetParser struct{}

// NewParser returns a block parser recognizing snippet envelopes.
func NewParser() parser.BlockParser {
	return &snippetParser{}
}

func (p *snippetParser) Trigger() []byte {
	return []byte{'<'}
}

func (p *snippetParser) Open(parent gast.Node, reader text.Reader, pc parser.Context) (gast.Node, parser.State) {
	// The envelope never nests inside quotes or lists and always sits at
	// column zero.
	if parent.Kind() != gast.KindDocument || pc.BlockOffset() != 0 {
		return nil, parser.NoChildren
	}

	line, segment := reader.PeekLine()
	if len(line) == 0 || line[0] != '<' {
		return nil, parser.NoChildren
	}

	source := reader.Source()
	src := snippet.NewSource(string(source))
	startLine := lineAt(source, segment.Start)

	// Probe the rest of the document into a scratch stream; a failed
	// probe leaves the reader untouched and lets the HTML block parser
	// have the line.
	out := &snippet.Stream{}

	ok, next := snippet.Recognize(src, startLine, src.Len(), false, out)
	if !ok {
		return nil, parser.NoChildren
	}

	node, err := buildNode(out.Tokens())
	if err != nil {
		return nil, parser.NoChildren
	}

	node.ByteStart = segment.Start
	node.LineStart = startLine
	node.LineEnd = next - 1
	node.remaining = next - startLine - 1

	if node.remaining <= 0 {
		// Degenerate single-line candidate; cannot happen for a valid
		// envelope but keeps the state machine total.
		node.ByteStop = segment.Stop
	}

	reader.Advance(segment.Stop - segment.Start - 1)

	return node, parser.NoChildren
}

func (p *snippetParser) Continue(node gast.Node, reader text.Reader, pc parser.Context) parser.State {
	n, ok := node.(*Snippet)
	if !ok {
		return parser.Close
	}

	_, segment := reader.PeekLine()

	n.remaining--
	reader.Advance(segment.Stop - segment.Start - 1)

	if n.remaining <= 0 {
		n.ByteStop = segment.Stop

		return parser.Close
	}

	return parser.Continue | parser.NoChildren
}

func (p *snippetParser) Close(node gast.Node, reader text.Reader, pc parser.Context) {
}

func (p *snippetParser) CanInterruptParagraph() bool {
	return true
}

func (p *snippetParser) CanAcceptIndentedLine() bool {
	return false
}

// buildNode turns the extractor's token stream into the AST container with
// its language children attached.
func buildNode(tokens []snippet.Token) (*Snippet, error) {
	tree, err := snippet.BuildTree(tokens)
	if err != nil {
		return nil, err
	}

	node := &Snippet{Flags: tree.Flags}

	for _, child := range tree.Children() {
		node.AppendChild(node, &SnippetLang{
			Language: child.Language,
			Content:  child.Content,
		})
	}

	return node, nil
}

func lineAt(source []byte, offset int) int {
	line := 0

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}
