package lexer

// physicalLine is a maximal run of source bounded by an unescaped line break
// (§4.1): the fragments making up its content, and the length of the
// breaking whitespace that ended it (0 at end of input, 1 for "\n" or lone
// "\r", 2 for "\r\n").
type physicalLine struct {
	Fragments []fragment
	BreakLen  int
}

// scanPhysicalLines splits src into physical lines. It reuses lexFragment so
// a real line break embedded inside a triple-quoted string or following a
// backslash continuation never counts as a physical-line boundary: both are
// folded into a single fragment (frString, frWhitespace) before the boundary
// check ever sees them.
func scanPhysicalLines(src string) []physicalLine {
	var lines []physicalLine
	var cur []fragment
	pos := 0

	for pos < len(src) {
		if isLineBreak(src[pos]) {
			n := lineBreakLen(src[pos:])
			lines = append(lines, physicalLine{Fragments: cur, BreakLen: n})
			cur = nil
			pos += n
			continue
		}

		f, next := lexFragment(src, pos)
		f.Left += 0 // already absolute: scanPhysicalLines works on the whole source
		cur = append(cur, f)
		pos = next
	}

	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, physicalLine{Fragments: cur, BreakLen: 0})
	}
	return lines
}
