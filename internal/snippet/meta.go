package snippet

import "regexp"

// TriState is a flag value restricted to the literals "true", "false" and
// "null".
type TriState string

// TriState values.
const (
	True  TriState = "true"
	False TriState = "false"
	Null  TriState = "null"
)

// Valid reports whether t is one of the three allowed literals.
func (t TriState) Valid() bool {
	return t == True || t == False || t == Null
}

// Language identifies one of the supported sub-block languages.
type Language string

// Supported languages.
const (
	JS   Language = "js"
	CSS  Language = "css"
	HTML Language = "html"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == JS || l == CSS || l == HTML
}

// Flags holds the five tri-state fields of a begin marker, in the order the
// producing tool emits them.
type Flags struct {
	Hide             TriState
	Console          TriState
	Babel            TriState
	BabelPresetReact TriState
	BabelPresetTS    TriState
}

// MetaKind tags the MetaLine variants.
type MetaKind int

// MetaLine variants.
const (
	MetaBegin MetaKind = iota
	MetaEnd
	MetaLang
)

// MetaLine is one structurally significant source line: a begin, end or
// language marker. Index is the zero-based source line it came from. Flags
// is set only for MetaBegin, Language only for MetaLang.
type MetaLine struct {
	Kind     MetaKind
	Index    int
	Flags    Flags
	Language Language
}

const endMarker = "<!-- end snippet -->"

var (
	reLangMarker = regexp.MustCompile(`^<!-- language: lang-(js|css|html) -->$`)

	// All five fields are mandatory and order is fixed; a line missing any
	// field is not a begin marker. The narrow pattern keeps prose that
	// merely mentions "begin snippet" from matching.
	reBeginMarker = regexp.MustCompile(`^<!-- begin snippet: js` +
		` hide: (true|false|null)` +
		` console: (true|false|null)` +
		` babel: (true|false|null)` +
		` babelPresetReact: (true|false|null)` +
		` babelPresetTS: (true|false|null)` +
		` -->$`)

	// Cheap pre-check used by the extractor before full classification.
	reMetaPrefix = regexp.MustCompile(`^<!-- (?:begin snippet:|end snippet|language: lang-)`)
)

// ClassifyMeta decides whether line is a begin, end or language marker and
// extracts its fields. The bool return is false when the line is not a
// meta-line; that is a normal negative result, not an error.
func ClassifyMeta(line string, index int) (MetaLine, bool) {
	if line == endMarker {
		return MetaLine{Kind: MetaEnd, Index: index}, true
	}

	if m := reLangMarker.FindStringSubmatch(line); m != nil {
		return MetaLine{Kind: MetaLang, Index: index, Language: Language(m[1])}, true
	}

	if m := reBeginMarker.FindStringSubmatch(line); m != nil {
		flags := Flags{
			Hide:             TriState(m[1]),
			Console:          TriState(m[2]),
			Babel:            TriState(m[3]),
			BabelPresetReact: TriState(m[4]),
			BabelPresetTS:    TriState(m[5]),
		}

		return MetaLine{Kind: MetaBegin, Index: index, Flags: flags}, true
	}

	return MetaLine{}, false
}

func looksLikeMeta(line string) bool {
	return reMetaPrefix.MatchString(line)
}
