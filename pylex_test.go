package pylex_test

import (
	"testing"

	"github.com/aledsdavies/pylex"
)

func TestTokensFoldsMultiWordOperators(t *testing.T) {
	toks := pylex.Tokens("x is not y\n")
	found := false
	for _, tok := range toks {
		if tok.Text == "is not" {
			found = true
		}
	}
	if !found {
		t.Error("expected Tokens to fold 'is' 'not' into a single 'is not' token")
	}
}

func TestParseSourceProducesATree(t *testing.T) {
	tree := pylex.ParseSource("foo()\n", nil, nil)
	if tree == nil {
		t.Fatal("expected a non-nil tree")
	}
	if len(tree.Leaves()) == 0 {
		t.Fatal("expected the tree to contain leaves")
	}
}
