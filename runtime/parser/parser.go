// Package parser builds a parse tree from a token stream using the
// operator-precedence stack machine described in §4.5: an operator stack
// seeded with ROOT, and five token dispositions tried in strict order.
package parser

import (
	"time"

	"github.com/aledsdavies/pylex/core/invariant"
	"github.com/aledsdavies/pylex/core/token"
	"github.com/aledsdavies/pylex/runtime/optable"
)

// Parse builds a single parse tree from toks (already lexed and preparsed).
func Parse(toks []token.Token, opts ...ParserOpt) *InnerNode {
	root, _ := ParseWithTelemetry(toks, opts...)
	return root
}

// ParseWithTelemetry is Parse plus an optional ParseTelemetry snapshot,
// non-nil only when a telemetry ParserOpt was supplied.
func ParseWithTelemetry(toks []token.Token, opts ...ParserOpt) (*InnerNode, *ParseTelemetry) {
	cfg := &ParserConfig{}
	for _, o := range opts {
		o(cfg)
	}

	var tel *ParseTelemetry
	if cfg.telemetry != TelemetryOff {
		tel = &ParseTelemetry{TokenCount: len(toks)}
	}

	start := time.Now()
	stack := []*element{newElement(token.Root)}

	for _, tok := range toks {
		switch {
		case tryFollowerAttachment(&stack, tok):
		case tryCloseBracket(&stack, tok):
		case tryInfixPostfix(&stack, tok):
		case tryPrefix(&stack, tok):
		default:
			bareAtom(&stack, tok)
		}
	}

	stack = commitTo(stack, 1)
	rootEl := stack[0]

	var result *InnerNode
	if len(rootEl.children) == 1 {
		if inner, ok := rootEl.children[0].(*InnerNode); ok {
			result = inner
		}
	}
	if result == nil {
		result = rootEl.toInnerNode()
	}

	if tel != nil && cfg.telemetry == TelemetryTiming {
		tel.TotalTime = time.Since(start)
		tel.ParseTime = tel.TotalTime
	}
	return result, tel
}

// tryFollowerAttachment is disposition (1): find the stack element whose
// operator is still awaiting tok as its next follower, commit down to it,
// and append tok. The walk stops at the first element needing a close
// bracket so followers never cross bracket boundaries.
func tryFollowerAttachment(stack *[]*element, tok token.Token) bool {
	if len(optable.FollowedBy(tok.Text)) == 0 {
		return false
	}
	s := *stack
	for i := len(s) - 1; i >= 0; i-- {
		if expected := remainingFollowers(s[i]); len(expected) > 0 && expected[0] == tok.Text {
			s = commitTo(s, i+1)
			s[i].addChild(tok)
			*stack = s
			return true
		}
		if needsCloseBracket(s[i]) {
			break
		}
	}
	return false
}

// tryCloseBracket is disposition (2): find the innermost still-open element
// whose operator opens the bracket tok closes, commit down to it, and
// append tok.
func tryCloseBracket(stack *[]*element, tok token.Token) bool {
	if !token.IsCloseBracket(tok.Text) {
		return false
	}
	s := *stack
	for i := len(s) - 1; i >= 0; i-- {
		if token.MatchesOpen(s[i].op.Text, tok.Text) && needsCloseBracket(s[i]) {
			s = commitTo(s, i+1)
			s[i].addChild(tok)
			*stack = s
			return true
		}
	}
	return false
}

// tryInfixPostfix is disposition (3): try POSTFIX candidates for tok's text
// before INFIX ones. For each candidate, find the deepest stack position the
// candidate can swallow as its first child, stopping the search at a
// bracket boundary.
func tryInfixPostfix(stack *[]*element, tok token.Token) bool {
	for _, kind := range [...]token.Kind{token.POSTFIX, token.INFIX} {
		for _, op := range optable.Lookup(tok.Text, kind) {
			trial := newElement(op)
			s := *stack
			if i, ok := deepestNestDepth(s, trial); ok {
				s = commitTo(s, i+1)
				absorbed := s[i].toInnerNode()
				trial.addChild(absorbed)
				trial.addChild(tok)
				s = s[:i]
				s = append(s, trial)
				*stack = s
				return true
			}
		}
	}
	return false
}

// deepestNestDepth scans stack top-down looking for the deepest index i
// such that candidate can nest inside stack[i-1] and stack[i] can nest
// inside candidate. The boundary check runs before the position is ever
// considered: a still-open stack[i] stops the scan outright rather than
// being tested and potentially accepted, since canNest's precedence
// fallback says nothing about an inner element that has not finished
// matching its own brackets (§4.5).
func deepestNestDepth(stack []*element, candidate *element) (int, bool) {
	best := -1
	for i := len(stack) - 1; i >= 1; i-- {
		if needsCloseBracket(stack[i]) {
			break
		}
		if canNest(stack[i-1], candidate) && canNest(candidate, stack[i]) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// tryPrefix is disposition (4): build a trial element holding tok, find the
// topmost non-POSTFIX element it can nest inside, commit above that
// position, and push the trial.
func tryPrefix(stack *[]*element, tok token.Token) bool {
	for _, op := range optable.Lookup(tok.Text, token.PREFIX) {
		trial := newElement(op)
		trial.addChild(tok)
		s := *stack
		if i, ok := topmostAttachPoint(s, trial); ok {
			s = commitTo(s, i+1)
			s = append(s, trial)
			*stack = s
			return true
		}
	}
	return false
}

// bareAtom is disposition (5): wrap tok as a NOT_AN_OPERATOR element, find
// the topmost non-POSTFIX element it can nest inside, and either merge into
// that element (if it is itself a bare-atom run) or push a fresh element.
func bareAtom(stack *[]*element, tok token.Token) {
	trial := newElement(token.NotAnOperator)
	trial.addChild(tok)
	s := *stack
	i, ok := topmostAttachPoint(s, trial)
	invariant.Invariant(ok, "bare atom must always find an attachment point under ROOT")

	s = commitTo(s, i+1)
	if s[i].op.Text == token.NotAnOperator.Text {
		s[i].addChild(tok)
	} else {
		s = append(s, trial)
	}
	*stack = s
}

// topmostAttachPoint finds the topmost non-POSTFIX stack element that
// candidate can nest inside. ROOT always eventually accepts, so this only
// fails to find anything if candidate's own operator is ROOT.
func topmostAttachPoint(stack []*element, candidate *element) (int, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].op.Kind != token.POSTFIX && canNest(stack[i], candidate) {
			return i, true
		}
	}
	return 0, false
}

// canNest implements the can_nest(outer, inner) relation (§4.5):
//   - inner's operator is ROOT: never nests.
//   - outer is a bracket operator that has started matching (has children):
//     this decides the relation outright, true only while outer still needs
//     its close bracket. A closed bracket (e.g. "()" already matched) does
//     not fall through to the precedence comparison below — that would let
//     a bracket-prefix's high precedence wrongly accept a following atom as
//     nested inside the already-closed bracket.
//   - lambda exception: an open lambda (colon not yet seen) always accepts
//     an infix comma, regardless of precedence.
//   - otherwise, standard precedence/associativity comparison.
func canNest(outer, inner *element) bool {
	if inner.op.Text == token.Root.Text {
		return false
	}
	if token.IsOpenBracket(outer.op.Text) && len(outer.children) > 0 {
		return needsCloseBracket(outer)
	}
	if outer.op.Text == "lambda" && needsCloseBracket(outer) && inner.op.Text == "," && inner.op.Kind == token.INFIX {
		return true
	}
	if outer.op.Precedence < inner.op.Precedence {
		return true
	}
	if outer.op.Precedence == inner.op.Precedence {
		return outer.op.Assoc != token.RIGHT || (inner.op.Kind == token.INFIX && len(inner.children) == 0)
	}
	return false
}

// openBracketCountStrict counts literal unmatched open brackets among e's
// direct children, ignoring lambda's pseudo-bracket rule.
func openBracketCountStrict(e *element) int {
	count := 0
	for _, c := range e.children {
		t, ok := c.(token.Token)
		if !ok {
			continue
		}
		if token.IsOpenBracket(t.Text) {
			count++
		} else if token.IsCloseBracket(t.Text) && count > 0 {
			count--
		}
	}
	return count
}

// openBracketCount is openBracketCountStrict plus lambda's special rule: an
// open lambda element (no ":" child yet) counts as one further open (§4.5,
// §4.6's "open_bracket_count").
func openBracketCount(e *element) int {
	count := openBracketCountStrict(e)
	if e.op.Text == "lambda" {
		sawColon := false
		for _, c := range e.children {
			if t, ok := c.(token.Token); ok && t.Text == ":" {
				sawColon = true
				break
			}
		}
		if !sawColon {
			count++
		}
	}
	return count
}

func needsCloseBracket(e *element) bool { return openBracketCount(e) > 0 }

// remainingFollowers returns the suffix of e.op.Followers not yet satisfied
// by e's children: scan for the operator's own anchor token, then for each
// declared follower in order, look for it among the later children.
func remainingFollowers(e *element) []string {
	if len(e.op.Followers) == 0 {
		return nil
	}
	anchor := -1
	for i, c := range e.children {
		if t, ok := c.(token.Token); ok && !t.Virtual && t.Text == e.op.Text {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return e.op.Followers
	}
	satisfied := 0
	for pos := anchor + 1; pos < len(e.children) && satisfied < len(e.op.Followers); pos++ {
		if t, ok := e.children[pos].(token.Token); ok && t.Text == e.op.Followers[satisfied] {
			satisfied++
		}
	}
	return e.op.Followers[satisfied:]
}
