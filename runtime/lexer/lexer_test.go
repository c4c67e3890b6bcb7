package lexer

import "testing"

func TestLexRoundTripsSimpleFunction(t *testing.T) {
	src := "def f(x):\n    return x + 1\n"
	toks := Lex(src)
	got := tokenTexts(toks)
	want := []string{"def", "f", "(", "x", ")", ":", "\n", ">>>", "return", "x", "+", "1", "\n", "<<<"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestLexNoTelemetryByDefault(t *testing.T) {
	_, tel := LexWithTelemetry("a\n")
	if tel != nil {
		t.Fatal("expected nil telemetry when no telemetry Opt is supplied")
	}
}

func TestLexBasicTelemetryCounts(t *testing.T) {
	_, tel := LexWithTelemetry("a\nb\n", WithTelemetryBasic())
	if tel == nil {
		t.Fatal("expected non-nil telemetry")
	}
	if tel.PhysicalLines != 2 || tel.LogicalLines != 2 {
		t.Fatalf("unexpected telemetry %+v", tel)
	}
	if tel.TotalTime != 0 {
		t.Fatalf("expected basic telemetry to skip timing, got %v", tel.TotalTime)
	}
}

func TestLexTimingTelemetryPopulatesDurations(t *testing.T) {
	_, tel := LexWithTelemetry("a\nb\n", WithTelemetryTiming())
	if tel == nil {
		t.Fatal("expected non-nil telemetry")
	}
	// Durations may be zero on a very fast run; just check the field is wired.
	if tel.TotalTime < tel.ScanTime {
		t.Fatalf("total time should be at least scan time: %+v", tel)
	}
}
