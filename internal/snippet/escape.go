package snippet

// InlineState is the cursor-and-output view an inline rule operates on.
// Pos is a byte offset into Src; matched rules advance it and push tokens.
type InlineState struct {
	Src    string
	Pos    int
	Tokens Stream
}

// InlineRule attempts a match at the state's current position. It reports
// whether it matched; in silent mode a rule must not push tokens.
type InlineRule func(s *InlineState, silent bool) bool

// EscapePreserver wraps a host escape rule so that the escape character
// survives rendering. The delegate runs unchanged; after a committing match
// the newest escape token is retagged to TokenPreservedEscape, letting a
// later stage recover the literal character instead of normalizing it away.
type EscapePreserver struct {
	delegate InlineRule
}

// NewEscapePreserver wraps delegate. A nil delegate means the host has no
// escape rule at all; the wrapper then never matches.
func NewEscapePreserver(delegate InlineRule) *EscapePreserver {
	return &EscapePreserver{delegate: delegate}
}

// Apply runs the wrapped rule, preserving its return value and cursor
// movement, then retags the token it produced.
func (p *EscapePreserver) Apply(s *InlineState, silent bool) bool {
	if p.delegate == nil {
		return false
	}

	ok := p.delegate(s, silent)
	if !ok || silent {
		return ok
	}

	if last := s.Tokens.Last(); last != nil && last.Kind == TokenEscape {
		last.Kind = TokenPreservedEscape
	}

	return ok
}
