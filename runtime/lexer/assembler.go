package lexer

// recoveryKeywords triggers the bracket-recovery heuristic (§4.1): if a
// physical line's first code token is one of these, the current logical
// line is cut here even though the bracket-nesting count is still nonzero.
// This keeps a dangling unclosed bracket from swallowing the rest of the
// file when the source is itself malformed or mid-edit.
var recoveryKeywords = map[string]bool{
	"if": true, "def": true, "class": true,
	"import": true, "else": true, "elif": true,
}

// logicalLine is every raw fragment spanning one or more physical lines,
// joined because open brackets ('(', '[', '{') were still outstanding at the
// end of each physical line but the last (§4.1).
type logicalLine struct {
	Fragments []fragment
	// BreakLen is the trailing breaking-whitespace length of the logical
	// line's final physical line; 0 at end of input.
	BreakLen int
}

// assembleLogicalLines groups physical lines into logical lines by tracking
// bracket-nesting depth across code fragments. A physical line only ends its
// logical line when nesting has returned to zero, unless the recovery
// heuristic fires first.
func assembleLogicalLines(lines []physicalLine) []logicalLine {
	var out []logicalLine
	var cur []fragment
	depth := 0

	flush := func(breakLen int) {
		out = append(out, logicalLine{Fragments: cur, BreakLen: breakLen})
		cur = nil
		depth = 0
	}

	for i, pl := range lines {
		if depth > 0 && len(cur) > 0 {
			if kw, ok := firstCodeText(pl.Fragments); ok && recoveryKeywords[kw] {
				flush(0)
			}
		}

		cur = append(cur, pl.Fragments...)
		for _, f := range pl.Fragments {
			if ch, ok := f.isBracket(); ok {
				switch ch {
				case '(', '[', '{':
					depth++
				case ')', ']', '}':
					if depth > 0 {
						depth--
					}
				}
			}
		}

		if depth == 0 {
			flush(pl.BreakLen)
		} else if i == len(lines)-1 {
			// Unterminated nesting at end of input: flush what we have.
			flush(pl.BreakLen)
		}
	}

	if len(cur) > 0 {
		flush(0)
	}
	return out
}

// firstCodeText returns the text of the first code fragment (§4.2 step 1) in
// frags, if any.
func firstCodeText(frags []fragment) (string, bool) {
	for _, f := range frags {
		if f.isCode() {
			return f.Text, true
		}
	}
	return "", false
}
