package snippet

import "fmt"

// TokenKind tags the token variants emitted by recognition.
type TokenKind int

// Token kinds. TokenEscape and TokenPreservedEscape belong to the inline
// escape rule (see escape.go); the block extractor emits only the first
// three.
const (
	TokenOpen TokenKind = iota
	TokenLang
	TokenClose
	TokenEscape
	TokenPreservedEscape
)

// Token is one element of the recognition output stream. Fields beyond Kind
// and Map are populated per kind: Flags on TokenOpen, Language and Content
// on TokenLang, Content on the escape kinds.
type Token struct {
	Kind     TokenKind
	Flags    Flags
	Language Language
	Content  string
	Map      [2]int // [startLine, endLine) in the source
}

// Stream is an append-only token buffer. Each recognition attempt writes
// into a fresh Stream; there is no shared state between attempts.
type Stream struct {
	tokens []Token
}

// Push appends a token and returns a handle to the stored copy.
func (s *Stream) Push(t Token) *Token {
	s.tokens = append(s.tokens, t)

	return &s.tokens[len(s.tokens)-1]
}

// Tokens returns the accumulated tokens.
func (s *Stream) Tokens() []Token {
	return s.tokens
}

// Len returns the number of accumulated tokens.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Last returns a handle to the most recently pushed token, or nil on an
// empty stream.
func (s *Stream) Last() *Token {
	if len(s.tokens) == 0 {
		return nil
	}

	return &s.tokens[len(s.tokens)-1]
}

// BuildTree consumes a token stream of the shape open lang* close and
// constructs the corresponding node pair. A stream of any other shape is
// rejected; the extractor never produces one, so an error here indicates a
// caller assembling tokens by hand.
func BuildTree(tokens []Token) (*SnippetNode, error) {
	if len(tokens) < 2 || tokens[0].Kind != TokenOpen || tokens[len(tokens)-1].Kind != TokenClose {
		return nil, errMalformedStream
	}

	node := NewSnippetNode(tokens[0].Flags)

	for _, t := range tokens[1 : len(tokens)-1] {
		if t.Kind != TokenLang {
			return nil, errMalformedStream
		}

		child, err := NewLangNode(t.Language, t.Content)
		if err != nil {
			return nil, err
		}

		if err := node.AddChild(child); err != nil {
			return nil, err
		}
	}

	return node, nil
}

var errMalformedStream = fmt.Errorf("token stream is not open lang* close")
