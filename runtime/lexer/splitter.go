package lexer

import "github.com/aledsdavies/pylex/core/invariant"

// punctuators is every punctuation spelling the splitter recognizes as one
// fragment, single- and multi-character alike. lexPunct picks the longest
// entry that matches, whatever its position in the list. Brackets are listed
// as single characters only, so no longer spelling ever contains one (§4.1,
// §4.4).
var punctuators = []string{
	"**=", "//=", ">>=", "<<=",
	"==", "!=", "<=", ">=", "->", ":=",
	"**", "//", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "=", "<", ">", "~", "^", "&", "|",
	":", ",", ".", ";", "@",
	"(", ")", "[", "]", "{", "}",
}

// stringPrefixes is every recognized string-literal prefix, longest first.
var stringPrefixes = []string{
	"rb", "Rb", "rB", "RB", "br", "Br", "bR", "BR",
	"fr", "Fr", "fR", "FR", "rf", "Rf", "rF", "RF",
	"r", "R", "b", "B", "f", "F", "u", "U",
}

// splitTokens partitions the physical-line content src[0:len(src)] (already
// excluding its trailing breaking whitespace) into raw fragments, applying
// longest-match over the union of whitespace, comment, string, word, number,
// and punctuation, falling back to a single character so every byte belongs
// to exactly one fragment (§4.1).
func splitTokens(src string, base int) []fragment {
	var frags []fragment
	pos := 0
	for pos < len(src) {
		f, next := lexFragment(src, pos)
		invariant.Postcondition(next > pos, "lexFragment must make progress at %d", pos)
		f.Left += base
		f.Right += base
		frags = append(frags, f)
		pos = next
	}
	return frags
}

// lexFragment classifies the single next fragment starting at src[pos],
// returning it with positions relative to src (the caller rebases them), and
// the position immediately following it.
func lexFragment(src string, pos int) (fragment, int) {
	c := src[pos]

	if c == '\\' && pos+1 < len(src) && isLineBreak(src[pos+1]) {
		end := pos + 1 + lineBreakLen(src[pos+1:])
		return fragment{Text: src[pos:end], Left: pos, Right: end, Kind: frWhitespace}, end
	}
	if c == ' ' || c == '\t' || c == '\f' {
		end := pos
		for end < len(src) && (src[end] == ' ' || src[end] == '\t' || src[end] == '\f') {
			end++
		}
		return fragment{Text: src[pos:end], Left: pos, Right: end, Kind: frWhitespace}, end
	}
	if c == '#' {
		end := pos
		for end < len(src) && !isLineBreak(src[end]) {
			end++
		}
		return fragment{Text: src[pos:end], Left: pos, Right: end, Kind: frComment}, end
	}
	if prefix, end, ok := lexStringOpen(src, pos); ok {
		strEnd := lexStringBody(src, end, prefix)
		return fragment{Text: src[pos:strEnd], Left: pos, Right: strEnd, Kind: frString}, strEnd
	}
	if c < 128 && isIdentStart[c] {
		end := pos + 1
		for end < len(src) && src[end] < 128 && isIdentPart[src[end]] {
			end++
		}
		return fragment{Text: src[pos:end], Left: pos, Right: end, Kind: frWord}, end
	}
	if c < 128 && isDigit[c] {
		end := lexNumber(src, pos)
		return fragment{Text: src[pos:end], Left: pos, Right: end, Kind: frNumber}, end
	}
	if text, end, ok := lexPunct(src, pos); ok {
		return fragment{Text: text, Left: pos, Right: end, Kind: frPunct}, end
	}

	// Total-partition fallback: one byte, whatever it is.
	return fragment{Text: src[pos : pos+1], Left: pos, Right: pos + 1, Kind: frOther}, pos + 1
}

func isLineBreak(c byte) bool { return c == '\n' || c == '\r' }

// lineBreakLen returns 2 for a "\r\n" sequence at the front of s, else 1.
func lineBreakLen(s string) int {
	if len(s) >= 2 && s[0] == '\r' && s[1] == '\n' {
		return 2
	}
	return 1
}

// lexStringOpen recognizes an optional string prefix followed by a quote
// character, reporting the quote text (' or " or ''' or """, with prefix
// folded in) and the position right after the opening quote.
func lexStringOpen(src string, pos int) (quote string, afterOpen int, ok bool) {
	p := pos
	prefixLen := 0
	for _, pre := range stringPrefixes {
		if hasPrefixAt(src, p, pre) {
			prefixLen = len(pre)
			break
		}
	}
	p += prefixLen
	if p >= len(src) || (src[p] != '\'' && src[p] != '"') {
		return "", 0, false
	}
	q := src[p]
	if hasPrefixAt(src, p, string(q)+string(q)+string(q)) {
		return src[pos : p+3], p + 3, true
	}
	return src[pos : p+1], p + 1, true
}

func hasPrefixAt(src string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(src) && src[pos:pos+len(prefix)] == prefix
}

// lexStringBody scans a string body to its close, given the opening quote
// spelling (last 1 or 3 bytes of which are the quote character repeated).
// Triple-quoted strings may absorb embedded real line breaks; single-quoted
// strings never do (an unescaped line break or end of input closes them).
// An unterminated string runs greedily to end of input (§4.1).
func lexStringBody(src string, pos int, quote string) int {
	q := quote[len(quote)-1]
	triple := len(quote) >= 3 && quote[len(quote)-3:] == string([]byte{q, q, q})

	for pos < len(src) {
		c := src[pos]
		if c == '\\' && pos+1 < len(src) {
			pos += 2
			continue
		}
		if !triple && isLineBreak(c) {
			return pos
		}
		if triple && hasPrefixAt(src, pos, quote[len(quote)-3:]) {
			return pos + 3
		}
		if !triple && c == q {
			return pos + 1
		}
		pos++
	}
	return pos
}

// lexNumber scans a run of digits, letters, underscores and '.' characters
// that starts with a digit, so radix prefixes, hex digits, exponent markers and
// any identifier-continue tail stay in one fragment. It does not validate
// numeric well-formedness; malformed soup such as "123abc" or "1.2.3" is
// still one fragment (§4.1). An exponent sign is not part of the run:
// "1e-5" splits into "1e", "-" and "5".
func lexNumber(src string, pos int) int {
	end := pos
	for end < len(src) && isNumberByte(src[end]) {
		end++
	}
	return end
}

func isNumberByte(c byte) bool {
	if c >= 128 {
		return false
	}
	if isDigit[c] || c == '_' || c == '.' {
		return true
	}
	switch c {
	case 'e', 'E', 'x', 'X', 'o', 'O', 'b', 'B', 'j', 'J':
		return true
	}
	return isIdentPart[c]
}

// lexPunct finds the longest punctuators entry matching at pos.
func lexPunct(src string, pos int) (text string, end int, ok bool) {
	best := ""
	for _, p := range punctuators {
		if hasPrefixAt(src, pos, p) && len(p) > len(best) {
			best = p
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, pos + len(best), true
}
