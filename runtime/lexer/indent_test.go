package lexer

import (
	"testing"

	"github.com/aledsdavies/pylex/core/token"
)

func tokenTexts(toks []token.Token) []string {
	var out []string
	for _, tok := range toks {
		out = append(out, tok.String())
	}
	return out
}

func TestTrackIndentationFlatLines(t *testing.T) {
	logical := assembleLogicalLines(scanPhysicalLines("a\nb\n"))
	toks := trackIndentation(logical)
	got := tokenTexts(toks)
	want := []string{"a", "\n", "b", "\n"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestTrackIndentationNestedBlock(t *testing.T) {
	src := "if x:\n    y\n    z\nw\n"
	logical := assembleLogicalLines(scanPhysicalLines(src))
	toks := trackIndentation(logical)
	got := tokenTexts(toks)
	want := []string{"if", "x", ":", "\n", ">>>", "y", "\n", "z", "\n", "<<<", "w", "\n"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestTrackIndentationTabExpansion(t *testing.T) {
	if w := indentWidth([]fragment{{Text: "\t", Kind: frWhitespace}}); w != 8 {
		t.Fatalf("expected a single tab to expand to 8, got %d", w)
	}
	if w := indentWidth([]fragment{{Text: "  \t", Kind: frWhitespace}}); w != 8 {
		t.Fatalf("expected 2 spaces + tab to round up to 8, got %d", w)
	}
	if w := indentWidth([]fragment{{Text: "         \t", Kind: frWhitespace}}); w != 16 {
		t.Fatalf("expected 9 spaces + tab to round up to 16, got %d", w)
	}
}

func TestTrackIndentationBlankAndCommentOnlyLinesAreIgnored(t *testing.T) {
	src := "a\n\n# comment\nb\n"
	logical := assembleLogicalLines(scanPhysicalLines(src))
	toks := trackIndentation(logical)
	got := tokenTexts(toks)
	want := []string{"a", "\n", "b", "\n"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTrackIndentationFinalDedentFlush(t *testing.T) {
	src := "if x:\n    y\n"
	logical := assembleLogicalLines(scanPhysicalLines(src))
	toks := trackIndentation(logical)
	last := toks[len(toks)-1]
	if !last.IsDedent() {
		t.Fatalf("expected final token to be a DEDENT flush, got %v", last)
	}
}

func TestTrackIndentationVirtualTokensAreZeroLength(t *testing.T) {
	src := "if x:\n    y\n"
	logical := assembleLogicalLines(scanPhysicalLines(src))
	toks := trackIndentation(logical)
	for _, tok := range toks {
		if tok.Virtual && tok.Len() != 0 {
			t.Fatalf("expected virtual token to be zero-length, got %#v", tok)
		}
	}
}
