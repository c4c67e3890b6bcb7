// Package lexer turns source text into the flat Token stream described in
// §4 of the specification: a physical scanner and token splitter produce raw
// fragments, a logical-line assembler joins continued lines, and an
// indentation tracker turns the result into code tokens plus virtual
// INDENT/DEDENT tokens and a "\n" token per logical line.
package lexer

import (
	"time"

	"github.com/aledsdavies/pylex/core/token"
)

// Lex tokenizes src into the final Token stream. The pipeline is
// single-threaded and allocation-light: every stage is a pure function over
// slices, with no goroutines and no shared mutable state beyond the
// read-only classification tables built in init().
func Lex(src string, opts ...Opt) []token.Token {
	toks, _ := LexWithTelemetry(src, opts...)
	return toks
}

// LexWithTelemetry is Lex plus an optional Telemetry snapshot, non-nil only
// when a telemetry Opt was supplied (§ ambient stack: zero overhead by
// default).
func LexWithTelemetry(src string, opts ...Opt) ([]token.Token, *Telemetry) {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}

	var tel *Telemetry
	if cfg.telemetry != TelemetryOff {
		tel = &Telemetry{}
	}

	start := time.Now()
	physical := scanPhysicalLines(src)
	scanDone := time.Now()

	logical := assembleLogicalLines(physical)
	assembleDone := time.Now()

	toks := trackIndentation(logical)
	indentDone := time.Now()

	if tel != nil {
		tel.PhysicalLines = len(physical)
		tel.LogicalLines = len(logical)
		tel.TokenCount = len(toks)
		for _, ll := range logical {
			tel.FragmentCount += len(ll.Fragments)
		}
		for _, t := range toks {
			switch {
			case t.IsIndent():
				tel.IndentCount++
			case t.IsDedent():
				tel.DedentCount++
			}
		}
		if cfg.telemetry == TelemetryTiming {
			tel.ScanTime = scanDone.Sub(start)
			tel.AssembleTime = assembleDone.Sub(scanDone)
			tel.IndentTime = indentDone.Sub(assembleDone)
			tel.TotalTime = indentDone.Sub(start)
		}
	}

	return toks, tel
}
