package optable_test

import (
	"testing"

	"github.com/aledsdavies/pylex/core/token"
	"github.com/aledsdavies/pylex/runtime/optable"
)

func TestLookupIfHasBothKinds(t *testing.T) {
	prefix := optable.Lookup("if", token.PREFIX)
	if len(prefix) != 1 {
		t.Fatalf("expected one PREFIX 'if', got %d", len(prefix))
	}
	infix := optable.Lookup("if", token.INFIX)
	if len(infix) != 1 {
		t.Fatalf("expected one INFIX 'if', got %d", len(infix))
	}
	if infix[0].Precedence <= prefix[0].Precedence {
		t.Fatalf("ternary if (%d) should outrank statement if (%d)", infix[0].Precedence, prefix[0].Precedence)
	}
}

func TestLookupUnknownReturnsEmpty(t *testing.T) {
	if got := optable.Lookup("nope", token.INFIX); len(got) != 0 {
		t.Fatalf("expected no operators, got %v", got)
	}
}

func TestFollowedByLambda(t *testing.T) {
	ops := optable.FollowedBy(":")
	found := false
	for _, op := range ops {
		if op.Text == "lambda" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected lambda to be followed by ':'")
	}
}

func TestFollowedByElse(t *testing.T) {
	ops := optable.FollowedBy("else")
	found := false
	for _, op := range ops {
		if op.Text == "if" && op.Kind == token.INFIX {
			found = true
		}
	}
	if !found {
		t.Fatal("expected ternary 'if' to be followed by 'else'")
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	and := optable.Lookup("and", token.INFIX)[0]
	or := optable.Lookup("or", token.INFIX)[0]
	if !(or.Precedence < and.Precedence) {
		t.Fatalf("'or' (%d) must bind looser than 'and' (%d)", or.Precedence, and.Precedence)
	}

	mul := optable.Lookup("*", token.INFIX)[0]
	add := optable.Lookup("+", token.INFIX)[0]
	if !(add.Precedence < mul.Precedence) {
		t.Fatalf("'+' (%d) must bind looser than '*' (%d)", add.Precedence, mul.Precedence)
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	pow := optable.Lookup("**", token.INFIX)[0]
	if pow.Assoc != token.RIGHT {
		t.Fatal("'**' must be right-associative")
	}
}

func TestCommaIsRightAssociative(t *testing.T) {
	comma := optable.Lookup(",", token.INFIX)[0]
	if comma.Assoc != token.RIGHT {
		t.Fatal("',' must be right-associative, matching the reference implementation")
	}
}

func TestColonHasBothKindsAndIsRightAssociative(t *testing.T) {
	infix := optable.Lookup(":", token.INFIX)
	if len(infix) != 1 {
		t.Fatalf("expected one INFIX ':', got %d", len(infix))
	}
	if infix[0].Assoc != token.RIGHT {
		t.Fatal("INFIX ':' must be right-associative")
	}
	prefix := optable.Lookup(":", token.PREFIX)
	if len(prefix) != 1 {
		t.Fatalf("expected one PREFIX ':' (for slice elisions like 'a[:b]'), got %d", len(prefix))
	}
}

func TestClauseFollowersAreInfixRightAssoc(t *testing.T) {
	for _, text := range []string{"elif", "else", "except", "finally"} {
		ops := optable.Lookup(text, token.INFIX)
		if len(ops) != 1 {
			t.Fatalf("expected one INFIX %q, got %d", text, len(ops))
		}
		if ops[0].Assoc != token.RIGHT {
			t.Fatalf("%q must be right-associative", text)
		}
		if prefix := optable.Lookup(text, token.PREFIX); len(prefix) != 0 {
			t.Fatalf("%q must not also be declared PREFIX, got %v", text, prefix)
		}
	}
}

func TestAssertIsStatementPrefix(t *testing.T) {
	ops := optable.Lookup("assert", token.PREFIX)
	if len(ops) != 1 {
		t.Fatalf("expected one PREFIX 'assert', got %d", len(ops))
	}
	ifStmt := optable.Lookup("if", token.PREFIX)[0]
	if ops[0].Precedence != ifStmt.Precedence {
		t.Fatalf("'assert' (%d) should sit at the same statement precedence as 'if' (%d)", ops[0].Precedence, ifStmt.Precedence)
	}
}
