package mdext

import (
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

// Region is one snippet envelope found in a document. Node is mutable; any
// changes a walker makes are serialized back into the document by [Walk].
// Line numbers are 1-based and cover the begin through end marker lines.
type Region struct {
	Node      *snippet.SnippetNode
	StartLine int
	EndLine   int

	byteStart int
	byteStop  int
}

// Languages lists the region's sub-block languages in document order.
func (r *Region) Languages() []snippet.Language {
	children := r.Node.Children()
	langs := make([]snippet.Language, len(children))

	for i, c := range children {
		langs[i] = c.Language
	}

	return langs
}

// Walker is a callback invoked for each snippet envelope in a document.
type Walker func(region *Region) error

type change struct {
	region *Region
	before string
}

// Walk parses a Markdown document and calls walker for every snippet
// envelope. If the walker modifies any region's node, Walk returns true and
// the updated document with modified envelopes re-serialized in place. When
// nothing is modified it returns false and a nil slice.
func Walk(source []byte, walker Walker) (bool, []byte, error) {
	md := New()
	reader := text.NewReader(source)
	root := md.Parser().Parse(reader).OwnerDocument()

	var changes []*change

	err := gast.Walk(root, func(node gast.Node, entering bool) (gast.WalkStatus, error) {
		sn := asSnippet(node, entering)
		if sn == nil {
			return gast.WalkContinue, nil
		}

		region, rerr := toRegion(sn)
		if rerr != nil {
			return gast.WalkContinue, rerr
		}

		before := snippet.Serialize(region.Node)

		if werr := walker(region); werr != nil {
			return gast.WalkContinue, werr
		}

		if snippet.Serialize(region.Node) != before {
			changes = append(changes, &change{region: region, before: before})
		}

		return gast.WalkSkipChildren, nil
	})
	if err != nil {
		return false, nil, err
	}

	if len(changes) == 0 {
		return false, nil, nil
	}

	return true, applyChanges(changes, source), nil
}

// Extract parses a Markdown document and returns all snippet envelopes
// without modifying the source.
func Extract(source []byte) ([]*Region, error) {
	var regions []*Region

	_, _, err := Walk(source, func(region *Region) error {
		regions = append(regions, region)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}

func asSnippet(node gast.Node, entering bool) *Snippet {
	if !entering || node.Kind() != KindSnippet {
		return nil
	}

	if sn, ok := node.(*Snippet); ok {
		return sn
	}

	return nil
}

func toRegion(sn *Snippet) (*Region, error) {
	tree := snippet.NewSnippetNode(sn.Flags)

	for c := sn.FirstChild(); c != nil; c = c.NextSibling() {
		lang, ok := c.(*SnippetLang)
		if !ok {
			continue
		}

		child, err := snippet.NewLangNode(lang.Language, lang.Content)
		if err != nil {
			return nil, err
		}

		if err := tree.AddChild(child); err != nil {
			return nil, err
		}
	}

	return &Region{
		Node:      tree,
		StartLine: sn.LineStart + 1,
		EndLine:   sn.LineEnd + 1,
		byteStart: sn.ByteStart,
		byteStop:  sn.ByteStop,
	}, nil
}

func applyChanges(changes []*change, source []byte) []byte {
	var result []byte

	srcIdx := 0

	for _, ch := range changes {
		result = append(result, source[srcIdx:ch.region.byteStart]...)
		result = append(result, snippet.Serialize(ch.region.Node)...)
		srcIdx = ch.region.byteStop
	}

	result = append(result, source[srcIdx:]...)

	return result
}
