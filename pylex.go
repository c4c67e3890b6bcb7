// Package pylex composes the lexer, multi-word-operator preparser, and
// precedence parser into a single entry point: source text in, a parse
// tree out.
package pylex

import (
	"github.com/aledsdavies/pylex/core/token"
	"github.com/aledsdavies/pylex/runtime/lexer"
	"github.com/aledsdavies/pylex/runtime/parser"
	"github.com/aledsdavies/pylex/runtime/preparser"
)

// Opt configures the lexing stage of ParseSource. It is runtime/lexer's Opt,
// re-exported so callers need only import this package.
type Opt = lexer.Opt

// ParserOpt configures the parsing stage of ParseSource.
type ParserOpt = parser.ParserOpt

// Tokens runs the lexer and preparser stages only, returning the folded
// token stream a caller would hand to parser.Parse directly.
func Tokens(src string, opts ...Opt) []token.Token {
	return preparser.Fold(lexer.Lex(src, opts...))
}

// ParseSource runs the full pipeline: lex, fold multi-word operators and
// suppress vacuous newlines, then parse.
func ParseSource(src string, lexOpts []Opt, parseOpts []ParserOpt) *parser.InnerNode {
	return parser.Parse(Tokens(src, lexOpts...), parseOpts...)
}
