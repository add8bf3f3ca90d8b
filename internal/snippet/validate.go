package snippet

// Validation reports the outcome of checking a candidate region's meta-lines.
// Positions are source line indexes, -1 when the category is absent.
// Reason is a diagnostic string set only when Valid is false; it is never
// surfaced as an error at the recognition boundary.
type Validation struct {
	Valid  bool
	Reason string
	Begin  int
	End    int
	JS     int
	CSS    int
	HTML   int
}

func newValidation() Validation {
	return Validation{Begin: -1, End: -1, JS: -1, CSS: -1, HTML: -1}
}

// Validate scans metas in source order and decides whether they form exactly
// one well-formed region: one begin, one end, each language at most once.
// The scan fails fast on the first duplicate and succeeds as soon as both a
// begin and an end have been recorded; later meta-lines are not examined.
func Validate(metas []MetaLine) Validation {
	v := newValidation()

	for _, m := range metas {
		switch m.Kind {
		case MetaBegin:
			if v.Begin >= 0 {
				v.Reason = "Duplicate begin block"

				return v
			}

			v.Begin = m.Index
		case MetaEnd:
			if v.End >= 0 {
				v.Reason = "Duplicate end block"

				return v
			}

			v.End = m.Index
		case MetaLang:
			pos, reason := v.langSlot(m.Language)
			if *pos >= 0 {
				v.Reason = reason

				return v
			}

			*pos = m.Index
		}

		if v.Begin >= 0 && v.End >= 0 {
			v.Valid = true

			return v
		}
	}

	v.Reason = "Did not discover beginning and end"

	return v
}

func (v *Validation) langSlot(lang Language) (*int, string) {
	switch lang {
	case JS:
		return &v.JS, "Duplicate JS block"
	case CSS:
		return &v.CSS, "Duplicate CSS block"
	default:
		return &v.HTML, "Duplicate HTML block"
	}
}
