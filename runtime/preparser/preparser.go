// Package preparser folds multi-word operator spellings and suppresses
// vacuous newlines between the lexer and the parser (§4.3).
package preparser

import "github.com/aledsdavies/pylex/core/token"

// trie encodes the two multi-word merges as nested maps: trie[first][second]
// is true at a terminal node. A hand-written two-sequence state machine would
// do as well; a trie generalizes cleanly if a third merge is ever added.
var trie = map[string]map[string]bool{
	"is":  {"not": true},
	"not": {"in": true},
}

// Fold merges multi-word operator sequences and suppresses vacuous newlines,
// in that order: newline suppression looks at the fused stream, so "is not"
// folds into one token before the suppression pass ever sees it.
func Fold(toks []token.Token) []token.Token {
	return suppressVacuousNewlines(foldMultiWord(toks))
}

// foldMultiWord walks the token stream looking one token ahead: when a token
// starts a trie entry and the next token reaches a terminal node, the two
// fuse into one Token spanning min(left)..max(right). Anything that does not
// complete a descent is passed through unmatched.
func foldMultiWord(toks []token.Token) []token.Token {
	var out []token.Token
	for i := 0; i < len(toks); i++ {
		if second, ok := trie[toks[i].Text]; ok && i+1 < len(toks) && second[toks[i+1].Text] {
			out = append(out, fuse(toks[i], toks[i+1]))
			i++
			continue
		}
		out = append(out, toks[i])
	}
	return out
}

func fuse(a, b token.Token) token.Token {
	left, right := a.Left, a.Right
	if b.Left < left {
		left = b.Left
	}
	if b.Right > right {
		right = b.Right
	}
	return token.Token{Text: a.Text + " " + b.Text, Left: left, Right: right}
}

// suppressVacuousNewlines drops "\n" tokens that cannot separate statements:
// those at the start of input, or immediately following another "\n", an
// INDENT, or a ":" (§4.3).
func suppressVacuousNewlines(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	vacuous := true // start of input counts as a suppressing predecessor
	for _, tok := range toks {
		if tok.Text == "\n" && vacuous {
			continue
		}
		out = append(out, tok)
		switch {
		case tok.Text == "\n", tok.IsIndent(), tok.Text == ":":
			vacuous = true
		default:
			vacuous = false
		}
	}
	return out
}
