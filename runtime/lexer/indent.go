package lexer

import "github.com/aledsdavies/pylex/core/token"

// trackIndentation converts logical lines into the final Token stream,
// emitting INDENT/DEDENT virtual tokens around each change in indentation
// width and a trailing "\n" token per logical line (§4.2).
//
// Token offsets are a deliberate simplification (§4.2 note): the tracker
// keeps one running position, advanced only when it emits a code token or a
// "\n" token. Whitespace and comments consumed along the way never advance
// it, so Left/Right form a monotonic approximate span rather than a
// lossless mirror of the original source.
func trackIndentation(lines []logicalLine) []token.Token {
	stack := []int{0}
	pos := 0
	var out []token.Token

	for _, ll := range lines {
		if _, hasCode := firstCodeText(ll.Fragments); !hasCode {
			continue
		}

		width := indentWidth(ll.Fragments)
		top := stack[len(stack)-1]
		switch {
		case width > top:
			stack = append(stack, width)
			out = append(out, token.Indent(pos))
		case width < top:
			for len(stack) > 1 && stack[len(stack)-1] > width {
				stack = stack[:len(stack)-1]
				out = append(out, token.Dedent(pos))
			}
		}

		for _, f := range ll.Fragments {
			if !f.isCode() {
				continue
			}
			tok := token.Token{Text: f.Text, Left: pos, Right: pos + len(f.Text)}
			pos = tok.Right
			out = append(out, tok)
		}

		nl := token.Token{Text: "\n", Left: pos, Right: pos + ll.BreakLen}
		pos = nl.Right
		out = append(out, nl)
	}

	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		out = append(out, token.Dedent(pos))
	}
	return out
}

// indentWidth computes the tab-expanded width of a logical line's leading
// whitespace: the first fragment, if it is whitespace. Spaces count 1; tabs
// round up to the next multiple of 8 (§4.2).
func indentWidth(frags []fragment) int {
	if len(frags) == 0 || frags[0].Kind != frWhitespace {
		return 0
	}
	width := 0
	for _, c := range []byte(frags[0].Text) {
		switch c {
		case ' ':
			width++
		case '\t':
			width = (width/8 + 1) * 8
		default:
			return width
		}
	}
	return width
}
