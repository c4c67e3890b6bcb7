package parser

import (
	"encoding/json"

	"github.com/aledsdavies/pylex/core/invariant"
	"github.com/aledsdavies/pylex/core/token"
)

// Node is the tagged variant {Token | InnerNode} described in the design
// notes (reimplementing an open class hierarchy as a closed sum type):
// dispatch over a parse tree becomes an exhaustive type switch on Node
// rather than isinstance checks. token.Token satisfies this interface by
// value; *InnerNode satisfies it by pointer.
type Node interface {
	Span() (left, right int)
}

// InnerNode is an immutable parse-tree node: an operator plus its children,
// each either a token.Token or another *InnerNode. Its span encloses every
// descendant's span (§3 invariant).
type InnerNode struct {
	Op       token.Operator
	Children []Node
	Left     int
	Right    int
}

// Span implements Node.
func (n *InnerNode) Span() (int, int) { return n.Left, n.Right }

// MarshalJSON renders an InnerNode as a JSON array of its children, per the
// external tree format (§6): InnerNodes become arrays, Tokens become text.
func (n *InnerNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Children)
}

// Leaves returns every token reachable by a prefix traversal of n, used to
// verify leaf-order preservation against the token stream that produced n.
func (n *InnerNode) Leaves() []token.Token {
	var out []token.Token
	var walk func(Node)
	walk = func(node Node) {
		switch v := node.(type) {
		case token.Token:
			out = append(out, v)
		case *InnerNode:
			for _, c := range v.Children {
				walk(c)
			}
		default:
			invariant.Invariant(false, "unreachable Node variant %T", v)
		}
	}
	walk(n)
	return out
}

// element is the mutable operator-stack frame described in §3 and §4.5: an
// operator, its children so far, and the min/max span over them. Elements
// are transient; commitTo converts a finished element into an immutable
// InnerNode appended to its parent.
type element struct {
	op       token.Operator
	children []Node
	left     int
	right    int
	hasSpan  bool
}

func newElement(op token.Operator) *element {
	return &element{op: op}
}

// addChild appends a child and widens the element's span to cover it.
func (e *element) addChild(n Node) {
	l, r := n.Span()
	if !e.hasSpan {
		e.left, e.right = l, r
		e.hasSpan = true
	} else {
		if l < e.left {
			e.left = l
		}
		if r > e.right {
			e.right = r
		}
	}
	e.children = append(e.children, n)
}

// toInnerNode converts a finished element into an immutable InnerNode.
func (e *element) toInnerNode() *InnerNode {
	return &InnerNode{Op: e.op, Children: e.children, Left: e.left, Right: e.right}
}

// commitTo collapses every stack element above depth into its parent's
// children, converting each to an InnerNode as it goes, and truncates the
// stack to depth entries (§4.5 commit rule).
func commitTo(stack []*element, depth int) []*element {
	invariant.Precondition(depth >= 1, "commitTo depth must be >= 1, got %d", depth)
	for len(stack) > depth {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.addChild(top.toInnerNode())
	}
	return stack
}
