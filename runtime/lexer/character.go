package lexer

// ASCII character lookup tables for fast classification (zero-allocation).
//
// Performance: use inline bounds-checked lookups for maximum speed:
//
//	if ch < 128 && isIdentPart[ch] { ... }
//
// Non-ASCII bytes never hit these tables; callers check ch < 128 first.
var (
	isSpaceOrTab [128]bool // space or tab (no lexer stage reads this table)
	isLetter     [128]bool // a-z, A-Z, _
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // letter or _
	isIdentPart  [128]bool // letter, digit, or _
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isSpaceOrTab[i] = ch == ' ' || ch == '\t'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = isLetter[i]
		isIdentPart[i] = isLetter[i] || isDigit[i]
	}
}
