package snippet

import "strings"

// Serialize reproduces the textual envelope for a snippet node: the begin
// marker with fields in canonical order, each language sub-block behind its
// marker with every non-empty content line re-padded, blank-line
// separators, and the literal end marker. Empty content lines are emitted
// with no padding, matching the producing tool's own formatting. The result
// always ends in a newline.
//
// This is a semantic inverse of recognition, not a byte-level one: blank
// runs inside the original envelope collapse to the single separators
// emitted here, while flags and per-language bodies survive exactly.
func Serialize(n *SnippetNode) string {
	var b strings.Builder

	b.WriteString(beginLine(n.Flags))
	b.WriteString("\n\n")

	for _, child := range n.Children() {
		b.WriteString("<!-- language: lang-")
		b.WriteString(string(child.Language))
		b.WriteString(" -->\n\n")

		writePadded(&b, child.Content)
		b.WriteString("\n")
	}

	b.WriteString(endMarker)
	b.WriteString("\n")

	return b.String()
}

func beginLine(f Flags) string {
	fields := []struct {
		name  string
		value TriState
	}{
		{"hide", f.Hide},
		{"console", f.Console},
		{"babel", f.Babel},
		{"babelPresetReact", f.BabelPresetReact},
		{"babelPresetTS", f.BabelPresetTS},
	}

	var b strings.Builder

	b.WriteString("<!-- begin snippet: js")

	for _, field := range fields {
		value := field.value
		if !value.Valid() {
			value = Null
		}

		b.WriteString(" ")
		b.WriteString(field.name)
		b.WriteString(": ")
		b.WriteString(string(value))
	}

	b.WriteString(" -->")

	return b.String()
}

func writePadded(b *strings.Builder, content string) {
	for _, line := range strings.Split(content, "\n") {
		if len(line) > 0 {
			b.WriteString(paddingText)
			b.WriteString(line)
		}

		b.WriteString("\n")
	}
}
