// Package snippet recognizes and serializes the multi-language snippet
// envelope embedded in Markdown documents: a begin marker carrying five
// tri-state flags, up to one labeled sub-block per supported language, and
// an end marker. The package validates the envelope only; sub-language
// bodies are preserved verbatim, never parsed.
package snippet

import "strings"

// Source is an immutable line-indexed view of raw input.
type Source struct {
	lines []string
}

// NewSource splits text into lines, tolerating CRLF endings. The trailing
// newline, if any, does not produce an extra empty line.
func NewSource(text string) *Source {
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &Source{lines: lines}
}

// NewSourceLines wraps an already-split slice of lines without copying.
func NewSourceLines(lines []string) *Source {
	return &Source{lines: lines}
}

// Len returns the number of lines.
func (s *Source) Len() int {
	return len(s.lines)
}

// Line returns the line at index i (zero-based).
func (s *Source) Line(i int) string {
	return s.lines[i]
}

// Slice returns the lines in [start, end).
func (s *Source) Slice(start, end int) []string {
	return s.lines[start:end]
}

func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}

	return len(line)
}
