package token

// Kind classifies how an operator participates in the precedence parser.
type Kind int

const (
	// PREFIX operators appear before their operand (unary -, lambda, bracket opens).
	PREFIX Kind = iota
	// INFIX operators sit between two operands.
	INFIX
	// POSTFIX operators follow their operand (the statement-ending "\n"; close
	// brackets never register here directly but share the disposition that
	// looks for them).
	POSTFIX
	// TOKEN is the kind used only by the NotAnOperator sentinel, for bare
	// atoms wrapped onto the stack with no real operator.
	TOKEN
)

func (k Kind) String() string {
	switch k {
	case PREFIX:
		return "PREFIX"
	case INFIX:
		return "INFIX"
	case POSTFIX:
		return "POSTFIX"
	case TOKEN:
		return "TOKEN"
	default:
		return "UNKNOWN"
	}
}

// Assoc is associativity, defined only for INFIX operators.
type Assoc int

const (
	LEFT Assoc = iota
	RIGHT
)

// Operator is a catalog entry: a (text, kind) pair with the precedence,
// associativity, and follower sequence the parser needs to place it on the
// stack and later find its remaining followers (§3, §4.4).
type Operator struct {
	Text       string
	Kind       Kind
	Precedence int
	Assoc      Assoc
	Followers  []string
}

// HasFollower reports whether text appears anywhere in op's follower sequence.
func (op Operator) HasFollower(text string) bool {
	for _, f := range op.Followers {
		if f == text {
			return true
		}
	}
	return false
}

// Root is the sentinel PREFIX operator that seeds the parser stack.
// Its precedence (-100) is guaranteed lower than every real operator so
// nothing ever needs to commit past it except at end of input.
var Root = Operator{Text: "\x00ROOT\x00", Kind: PREFIX, Precedence: -100}

// NotAnOperator is the sentinel used for stack elements holding a bare atom
// (identifier, literal) rather than a real operator. Its precedence (+100)
// is guaranteed higher than every real operator so no real operator ever
// needs to nest inside a bare atom.
var NotAnOperator = Operator{Text: "\x00ATOM\x00", Kind: TOKEN, Precedence: 100}

// BracketPairs maps each opening bracket's text to its closer. INDENT/DEDENT
// are virtual tokens and participate the same way real brackets do (§3, §4.6).
var BracketPairs = map[string]string{
	"(":            ")",
	"[":            "]",
	"{":            "}",
	indentSentinel: dedentSentinel,
}

// IsOpenBracket reports whether text opens one of the four bracket pairs.
func IsOpenBracket(text string) bool {
	_, ok := BracketPairs[text]
	return ok
}

// IsCloseBracket reports whether text closes one of the four bracket pairs.
func IsCloseBracket(text string) bool {
	for _, close := range BracketPairs {
		if close == text {
			return true
		}
	}
	return false
}

// MatchesOpen reports whether open (an opening bracket's text) is closed by
// the given close text.
func MatchesOpen(open, close string) bool {
	want, ok := BracketPairs[open]
	return ok && want == close
}
