// Package optable is the static operator catalog consulted by the
// precedence parser (§4.4). Operators are declared as a single package-level
// slice literal; the (text, kind) -> []Operator and text -> followers
// indexes are built once in init(), the same way the lexer precomputes its
// ASCII classification tables at package load rather than per call.
package optable

import "github.com/aledsdavies/pylex/core/token"

// Precedence levels, low to high, matching §4.4 of the specification.
const (
	precElifFollower   = -4
	precIndent         = -3
	precStatement      = -2
	precColon          = -1
	precComma          = 0
	precAssignOrForIn  = 1
	precLambda         = 2
	precTernaryIf      = 3
	precOr             = 4
	precAnd            = 5
	precNot            = 6
	precComparison     = 7
	precBitOr          = 8
	precBitXor         = 9
	precBitAnd         = 10
	precShift          = 11
	precAdditive       = 12
	precMultiplicative = 13
	precUnary          = 14
	precPower          = 15
	precAwait          = 16
	precPostfixTrailer = 17
	precBracketPrefix  = 18
)

// catalog is the full static operator list. Multiple entries may share a
// text with different Kind (e.g. "if" is both PREFIX and INFIX).
var catalog = []token.Operator{
	// Statement-level control-flow followers (§4.4, precedence -4). INFIX,
	// right-assoc: each clause nests by absorbing the preceding block as its
	// left child (disposition 3), rather than pushing a disconnected prefix
	// element that never attaches to what it follows.
	{Text: "elif", Kind: token.INFIX, Precedence: precElifFollower, Assoc: token.RIGHT},
	{Text: "else", Kind: token.INFIX, Precedence: precElifFollower, Assoc: token.RIGHT},
	{Text: "except", Kind: token.INFIX, Precedence: precElifFollower, Assoc: token.RIGHT},
	{Text: "finally", Kind: token.INFIX, Precedence: precElifFollower, Assoc: token.RIGHT},

	// INDENT/DEDENT as a bracket pair (§4.6): INDENT is INFIX, right-assoc,
	// at the unusually low precedence that lets a block's header fold in
	// before the block itself nests.
	{Text: "\x00INDENT\x00", Kind: token.INFIX, Precedence: precIndent, Assoc: token.RIGHT},

	// Statement prefixes (§4.4, precedence -2).
	{Text: "def", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "class", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "import", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "assert", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "for", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "if", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "while", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "return", Kind: token.PREFIX, Precedence: precStatement},
	{Text: "yield", Kind: token.PREFIX, Precedence: precStatement},

	// "\n" terminates a statement; postfix at the same very-low precedence
	// so it wraps whatever expression preceded it.
	{Text: "\n", Kind: token.POSTFIX, Precedence: precStatement},

	// Colon: introduces a block or a lambda body (precedence -1),
	// right-assoc. Also declared PREFIX for a colon with no left operand
	// (slice elisions like "a[:b]" or "a[::2]").
	{Text: ":", Kind: token.INFIX, Precedence: precColon, Assoc: token.RIGHT},
	{Text: ":", Kind: token.PREFIX, Precedence: precColon},

	// Comma (precedence 0), right-assoc: chains nest as ,(a, ,(b, c)).
	{Text: ",", Kind: token.INFIX, Precedence: precComma, Assoc: token.RIGHT},

	// Assignment family and generator "for" (precedence 1).
	{Text: "=", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.RIGHT},
	{Text: "+=", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.RIGHT},
	{Text: "-=", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.RIGHT},
	{Text: "*=", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.RIGHT},
	{Text: "/=", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.RIGHT},
	{Text: "for", Kind: token.INFIX, Precedence: precAssignOrForIn, Assoc: token.LEFT, Followers: []string{"in"}},

	// lambda (precedence 2), followed by ":".
	{Text: "lambda", Kind: token.PREFIX, Precedence: precLambda, Followers: []string{":"}},

	// Ternary "if" (precedence 3), followed by "else".
	{Text: "if", Kind: token.INFIX, Precedence: precTernaryIf, Assoc: token.RIGHT, Followers: []string{"else"}},

	// Boolean operators.
	{Text: "or", Kind: token.INFIX, Precedence: precOr, Assoc: token.LEFT},
	{Text: "and", Kind: token.INFIX, Precedence: precAnd, Assoc: token.LEFT},
	{Text: "not", Kind: token.PREFIX, Precedence: precNot},

	// Comparisons.
	{Text: "==", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "!=", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "<", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "<=", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: ">", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: ">=", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "in", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "not in", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "is", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},
	{Text: "is not", Kind: token.INFIX, Precedence: precComparison, Assoc: token.LEFT},

	// Bitwise.
	{Text: "|", Kind: token.INFIX, Precedence: precBitOr, Assoc: token.LEFT},
	{Text: "^", Kind: token.INFIX, Precedence: precBitXor, Assoc: token.LEFT},
	{Text: "&", Kind: token.INFIX, Precedence: precBitAnd, Assoc: token.LEFT},

	// Shifts.
	{Text: "<<", Kind: token.INFIX, Precedence: precShift, Assoc: token.LEFT},
	{Text: ">>", Kind: token.INFIX, Precedence: precShift, Assoc: token.LEFT},

	// Additive.
	{Text: "+", Kind: token.INFIX, Precedence: precAdditive, Assoc: token.LEFT},
	{Text: "-", Kind: token.INFIX, Precedence: precAdditive, Assoc: token.LEFT},

	// Multiplicative.
	{Text: "*", Kind: token.INFIX, Precedence: precMultiplicative, Assoc: token.LEFT},
	{Text: "/", Kind: token.INFIX, Precedence: precMultiplicative, Assoc: token.LEFT},
	{Text: "//", Kind: token.INFIX, Precedence: precMultiplicative, Assoc: token.LEFT},
	{Text: "%", Kind: token.INFIX, Precedence: precMultiplicative, Assoc: token.LEFT},

	// Unary.
	{Text: "+", Kind: token.PREFIX, Precedence: precUnary},
	{Text: "-", Kind: token.PREFIX, Precedence: precUnary},
	{Text: "~", Kind: token.PREFIX, Precedence: precUnary},

	// Power (right-associative).
	{Text: "**", Kind: token.INFIX, Precedence: precPower, Assoc: token.RIGHT},

	// await.
	{Text: "await", Kind: token.PREFIX, Precedence: precAwait},

	// Call / index / attribute (precedence 17).
	{Text: "(", Kind: token.INFIX, Precedence: precPostfixTrailer, Assoc: token.LEFT},
	{Text: "[", Kind: token.INFIX, Precedence: precPostfixTrailer, Assoc: token.LEFT},
	{Text: ".", Kind: token.INFIX, Precedence: precPostfixTrailer, Assoc: token.LEFT},

	// Bracket prefixes: grouping, list/set display, dict display (precedence 18).
	{Text: "(", Kind: token.PREFIX, Precedence: precBracketPrefix},
	{Text: "[", Kind: token.PREFIX, Precedence: precBracketPrefix},
	{Text: "{", Kind: token.PREFIX, Precedence: precBracketPrefix},
}

var (
	byTextKind map[textKind][]token.Operator
	followedBy map[string][]token.Operator
)

type textKind struct {
	text string
	kind token.Kind
}

func init() {
	byTextKind = make(map[textKind][]token.Operator, len(catalog))
	followedBy = make(map[string][]token.Operator)

	for _, op := range catalog {
		key := textKind{op.Text, op.Kind}
		byTextKind[key] = append(byTextKind[key], op)

		for _, f := range op.Followers {
			followedBy[f] = append(followedBy[f], op)
		}
	}
}

// Lookup returns the operators declared for (text, kind), in catalog order.
// It is usually zero or one operator, but never more than a handful (e.g.
// "if" has both a PREFIX and an INFIX entry).
func Lookup(text string, kind token.Kind) []token.Operator {
	return byTextKind[textKind{text, kind}]
}

// FollowedBy returns every operator that declares text as one of its
// followers (e.g. FollowedBy(":") includes lambda).
func FollowedBy(text string) []token.Operator {
	return followedBy[text]
}
