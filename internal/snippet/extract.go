package snippet

import (
	"sort"
	"strings"
)

// Columns of padding the producing tool puts in front of every content
// line, and the host's threshold for treating a line as indented code.
const (
	contentPadding   = 4
	codeIndentLimit  = 4
	paddingText      = "    "
	markerOpenByte   = '<'
	contentGapBefore = 2 // marker line plus the mandatory blank line
)

// Recognize scans the candidate span [start, end) of src for one snippet
// envelope. It returns whether the span was recognized and, when recognized
// in committing mode, pushes open/lang*/close tokens onto out and returns
// the cursor one line past the end marker. In silent mode no tokens are
// pushed for any input and the returned cursor is start; callers probe with
// silent=true and commit with silent=false.
func Recognize(src *Source, start, end int, silent bool, out *Stream) (bool, int) {
	if start >= end || end > src.Len() {
		return false, start
	}

	first := src.Line(start)

	// Indented lines belong to the host's literal code blocks, and the
	// envelope never nests, so anything short of a column-zero marker is
	// rejected before pattern matching.
	if indentWidth(first) >= codeIndentLimit || !looksLikeMeta(first) {
		return false, start
	}

	metas := collectMetas(src, start, end)

	v := Validate(metas)
	if !v.Valid {
		return false, start
	}

	if silent {
		return true, start
	}

	begin, langs, endMeta, ok := splitRegion(metas)
	if !ok {
		return false, start
	}

	emit(src, out, begin, langs, endMeta)

	return true, endMeta.Index + 1
}

// collectMetas classifies every marker-looking line in [start, end) in one
// forward pass. Lines not opening with the marker byte are skipped without
// classification. The first end marker bounds the region: collection stops
// there so that a following envelope in the same span stays out of this
// candidate.
func collectMetas(src *Source, start, end int) []MetaLine {
	var metas []MetaLine

	for i := start; i < end; i++ {
		line := src.Line(i)
		if len(line) == 0 || line[0] != markerOpenByte || !looksLikeMeta(line) {
			continue
		}

		m, ok := ClassifyMeta(line, i)
		if !ok {
			continue
		}

		metas = append(metas, m)

		if m.Kind == MetaEnd {
			break
		}
	}

	return metas
}

// splitRegion peels the begin and end markers off the collected meta-lines
// and returns the language markers between them in index order. Validation
// only checks positions, so the first element is still required to actually
// be the begin marker and the last the end marker; a stray language marker
// outside the envelope fails both guards.
func splitRegion(metas []MetaLine) (MetaLine, []MetaLine, MetaLine, bool) {
	if len(metas) < 2 {
		return MetaLine{}, nil, MetaLine{}, false
	}

	begin := metas[0]
	if begin.Kind != MetaBegin {
		return MetaLine{}, nil, MetaLine{}, false
	}

	endMeta := metas[len(metas)-1]
	if endMeta.Kind != MetaEnd {
		return MetaLine{}, nil, MetaLine{}, false
	}

	langs := metas[1 : len(metas)-1]
	for _, m := range langs {
		if m.Kind != MetaLang {
			return MetaLine{}, nil, MetaLine{}, false
		}
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Index < langs[j].Index
	})

	return begin, langs, endMeta, true
}

func emit(src *Source, out *Stream, begin MetaLine, langs []MetaLine, endMeta MetaLine) {
	out.Push(Token{
		Kind:  TokenOpen,
		Flags: begin.Flags,
		Map:   [2]int{begin.Index, endMeta.Index + 1},
	})

	for i, lang := range langs {
		contentStart := lang.Index + contentGapBefore

		contentEnd := endMeta.Index - 1
		if i+1 < len(langs) {
			contentEnd = langs[i+1].Index - 1
		}

		// A marker crowding the next one leaves no room for a body.
		if contentStart > contentEnd {
			contentStart = contentEnd
		}

		out.Push(Token{
			Kind:     TokenLang,
			Language: lang.Language,
			Content:  deindent(src.Slice(contentStart, contentEnd)),
			Map:      [2]int{contentStart, contentEnd},
		})
	}

	out.Push(Token{
		Kind: TokenClose,
		Map:  [2]int{endMeta.Index, endMeta.Index + 1},
	})
}

// deindent strips the fixed content padding from every line. An
// under-padded line loses whatever leading padding it has, up to the fixed
// width; empty lines stay empty.
func deindent(lines []string) string {
	out := make([]string, len(lines))

	for i, line := range lines {
		strip := contentPadding
		if w := indentWidth(line); w < strip {
			strip = w
		}

		out[i] = line[strip:]
	}

	return strings.Join(out, "\n")
}
