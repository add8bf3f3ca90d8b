package snippet

import "fmt"

// SnippetNode is the container for one recognized envelope. Children hold
// the language sub-blocks in document order, zero to three of them, each
// language at most once. A flag left at its zero value serializes as
// "null".
type SnippetNode struct {
	Flags    Flags
	children []*LangNode
}

// NewSnippetNode constructs a container with the given flags and no
// children. Unset flags are normalized to Null.
func NewSnippetNode(flags Flags) *SnippetNode {
	for _, f := range []*TriState{
		&flags.Hide, &flags.Console, &flags.Babel,
		&flags.BabelPresetReact, &flags.BabelPresetTS,
	} {
		if !f.Valid() {
			*f = Null
		}
	}

	return &SnippetNode{Flags: flags}
}

// AddChild appends a language sub-block, rejecting a second block for a
// language already present.
func (n *SnippetNode) AddChild(child *LangNode) error {
	for _, c := range n.children {
		if c.Language == child.Language {
			return fmt.Errorf("%w: %s", ErrDuplicateLanguage, child.Language)
		}
	}

	n.children = append(n.children, child)

	return nil
}

// Children returns the language sub-blocks in document order.
func (n *SnippetNode) Children() []*LangNode {
	return n.children
}

// Child returns the sub-block for the given language, or nil.
func (n *SnippetNode) Child(lang Language) *LangNode {
	for _, c := range n.children {
		if c.Language == lang {
			return c
		}
	}

	return nil
}

// LangNode is one language sub-block: a validated language tag and the
// verbatim, de-indented body text.
type LangNode struct {
	Language Language
	Content  string
}

// NewLangNode constructs a sub-block, rejecting a language outside the
// supported set.
func NewLangNode(lang Language, content string) (*LangNode, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	return &LangNode{Language: lang, Content: content}, nil
}

// Schema violations reported by node construction.
var (
	ErrInvalidLanguage   = fmt.Errorf("language outside js/css/html")
	ErrDuplicateLanguage = fmt.Errorf("duplicate language sub-block")
)
