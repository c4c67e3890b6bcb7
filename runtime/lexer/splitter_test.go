package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitTokensWordsAndPunct(t *testing.T) {
	got := splitTokens("x = y+1", 0)
	want := []fragment{
		{Text: "x", Left: 0, Right: 1, Kind: frWord},
		{Text: " ", Left: 1, Right: 2, Kind: frWhitespace},
		{Text: "=", Left: 2, Right: 3, Kind: frPunct},
		{Text: " ", Left: 3, Right: 4, Kind: frWhitespace},
		{Text: "y", Left: 4, Right: 5, Kind: frWord},
		{Text: "+", Left: 5, Right: 6, Kind: frPunct},
		{Text: "1", Left: 6, Right: 7, Kind: frNumber},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitTokensComment(t *testing.T) {
	got := splitTokens("x # trailing note", 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %v", len(got), got)
	}
	if got[2].Kind != frComment || got[2].Text != "# trailing note" {
		t.Fatalf("expected comment fragment, got %+v", got[2])
	}
}

func TestSplitTokensSingleQuotedString(t *testing.T) {
	got := splitTokens(`'hi\'there'`, 0)
	if len(got) != 1 || got[0].Kind != frString {
		t.Fatalf("expected one string fragment, got %v", got)
	}
	if got[0].Text != `'hi\'there'` {
		t.Fatalf("unexpected string text %q", got[0].Text)
	}
}

func TestSplitTokensUnterminatedStringRunsToEOF(t *testing.T) {
	got := splitTokens(`"abc`, 0)
	if len(got) != 1 || got[0].Kind != frString || got[0].Text != `"abc` {
		t.Fatalf("expected unterminated string to consume to EOF, got %v", got)
	}
}

func TestSplitTokensMultiCharPunctuators(t *testing.T) {
	for _, tc := range []string{"**=", "==", "//", "<<"} {
		got := splitTokens(tc, 0)
		if len(got) != 1 || got[0].Text != tc {
			t.Fatalf("expected %q to lex as one fragment, got %v", tc, got)
		}
	}
}

func TestSplitTokensBracketsAreAlwaysSingleChar(t *testing.T) {
	got := splitTokens("(())", 0)
	if len(got) != 4 {
		t.Fatalf("expected 4 single-char bracket fragments, got %d: %v", len(got), got)
	}
	for _, f := range got {
		if _, ok := f.isBracket(); !ok {
			t.Fatalf("expected %+v to be a bracket", f)
		}
	}
}

func TestSplitTokensBackslashContinuationIsWhitespace(t *testing.T) {
	got := splitTokens("x \\\n", 0)
	last := got[len(got)-1]
	if last.Kind != frWhitespace || last.Text != "\\\n" {
		t.Fatalf("expected backslash continuation folded into whitespace, got %+v", last)
	}
}

func TestSplitTokensTotalPartition(t *testing.T) {
	src := "x = 'y' # z\n"[:len("x = 'y' # z")] // exclude trailing break, splitter operates per physical line
	frags := splitTokens(src, 0)
	rebuilt := ""
	for _, f := range frags {
		rebuilt += f.Text
	}
	if rebuilt != src {
		t.Fatalf("fragments do not reconstruct source: got %q want %q", rebuilt, src)
	}
}
