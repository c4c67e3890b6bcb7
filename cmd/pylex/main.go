package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/pylex/runtime/lexer"
	"github.com/aledsdavies/pylex/runtime/parser"
	"github.com/aledsdavies/pylex/runtime/preparser"
	"github.com/spf13/cobra"
)

// Exit code constants, matching the devcmd-parser CLI's scheme: the
// lexer/parser never error on their own, so the only failure surface here
// is I/O.
const (
	ExitSuccess = 0
	ExitIOError = 2
)

// CLIError is the outer I/O-facing error shell: stdin read failures and
// JSON encode failures, never lex/parse outcomes (those never fail).
type CLIError struct {
	Message string
	Details string
}

func (e *CLIError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

func main() {
	var showTokens bool
	var showTelemetry bool

	rootCmd := &cobra.Command{
		Use:           "pylex [file]",
		Short:         "Lex and parse source into a JSON tree",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args)
			if err != nil {
				return &CLIError{Message: "failed to read source", Details: err.Error()}
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), src, showTokens, showTelemetry)
		},
	}

	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the folded token stream instead of the parse tree")
	rootCmd.Flags().BoolVar(&showTelemetry, "telemetry", false, "print lex/parse timing and counts to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitIOError)
	}
	os.Exit(ExitSuccess)
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func run(stdout, stderr io.Writer, src string, showTokens, showTelemetry bool) error {
	lexOpt := lexerTelemetryOpt(showTelemetry)
	rawToks, lexTel := lexer.LexWithTelemetry(src, lexOpt)
	toks := preparser.Fold(rawToks)

	enc := json.NewEncoder(stdout)

	var encErr error
	var parseTel *parser.ParseTelemetry
	if showTokens {
		encErr = enc.Encode(toks)
	} else {
		var tree *parser.InnerNode
		tree, parseTel = parser.ParseWithTelemetry(toks, parserTelemetryOpt(showTelemetry))
		encErr = enc.Encode(tree)
	}
	if encErr != nil {
		return &CLIError{Message: "failed to encode output", Details: encErr.Error()}
	}

	if showTelemetry {
		if lexTel != nil {
			fmt.Fprintf(stderr, "lex: %d physical lines, %d logical lines, %d tokens, %v\n",
				lexTel.PhysicalLines, lexTel.LogicalLines, lexTel.TokenCount, lexTel.TotalTime)
		}
		if parseTel != nil {
			fmt.Fprintf(stderr, "parse: %d tokens, %v\n", parseTel.TokenCount, parseTel.TotalTime)
		}
	}
	return nil
}

func lexerTelemetryOpt(on bool) lexer.Opt {
	if on {
		return lexer.WithTelemetryTiming()
	}
	return func(*lexer.Config) {}
}

func parserTelemetryOpt(on bool) parser.ParserOpt {
	if on {
		return parser.WithTelemetryTiming()
	}
	return func(*parser.ParserConfig) {}
}
