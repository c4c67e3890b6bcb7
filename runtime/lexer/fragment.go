package lexer

// fragKind classifies a raw fragment produced by the token splitter (§4.1).
type fragKind int

const (
	frWord       fragKind = iota // identifier / word
	frNumber                     // integer, float, or malformed number-ish soup
	frString                     // quoted string literal, including its prefix
	frComment                    // '#' to end of physical line
	frPunct                      // operator / delimiter spelling
	frWhitespace                 // non-breaking whitespace (spaces, tabs, form feed, line continuation)
	frOther                      // single-character fallback (total-partition guarantee)
)

// fragment is a raw token fragment: text plus its character span in the
// original source. Fragments are produced by splitTokens and consumed by
// the logical-line assembler and indentation tracker.
type fragment struct {
	Text  string
	Left  int
	Right int
	Kind  fragKind
}

// isCode reports whether a fragment counts as a "code token" for the
// indentation tracker (§4.2 step 1): its first character is not '#', not
// whitespace (<= space), and not '\'.
func (f fragment) isCode() bool {
	if f.Text == "" {
		return false
	}
	c := f.Text[0]
	return c != '#' && c > ' ' && c != '\\'
}

// isBracket reports whether the fragment is a single bracket character, and
// returns it. Only single-character punctuation fragments can be brackets;
// the punctuation matcher never folds a bracket into a longer spelling.
func (f fragment) isBracket() (ch byte, ok bool) {
	if f.Kind != frPunct || len(f.Text) != 1 {
		return 0, false
	}
	switch f.Text[0] {
	case '(', ')', '[', ']', '{', '}':
		return f.Text[0], true
	}
	return 0, false
}
