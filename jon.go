// Package jon implements the front end and evaluation core of jon, a
// small interactive S-expression language.
//
// An input line goes through three stages: the lexer splits it into
// positioned tokens, the parser assembles the tokens into a syntax tree
// and the evaluator reduces the tree to a single atom value.
//
// The surface grammar is:
//
//	<expr>   ::= <atom> | <list> ;
//	<list>   ::= "(" <expr>* ")" ;
//	<atom>   ::= <symbol> | <number> | <string> ;
//	<symbol> ::= letters and the punctuation -_@#$+=*&^%! ;
//	<number> ::= digits, possibly with decimal points ;
//	<string> ::= '"', any characters except '"', '"' ;
package jon

import (
	"errors"
	"strings"

	"github.com/deepsghimire/jon/ast"
	"github.com/deepsghimire/jon/eval"
	"github.com/deepsghimire/jon/lexer"
	"github.com/deepsghimire/jon/parser"
)

// Version is the version of the jon language
const Version = "0.1.0"

// ReadString scans and parses the first expression in line.
func ReadString(line string) (*ast.Node, error) {
	return parser.Parse(line)
}

// EvalString scans, parses and evaluates the first expression in line
// using a default evaluator.
func EvalString(line string) (ast.Atom, error) {
	root, err := ReadString(line)
	if err != nil {
		return ast.Atom{}, err
	}
	return eval.New().Eval(root)
}

// FormatError renders err together with the spot in line it points at.
// Errors that carry a position get a caret marker under it; end-of-input
// errors point one past the last character.
func FormatError(err error, line string) string {
	var (
		runeErr *lexer.InvalidRuneError
		strErr  *lexer.UnterminatedStringError
		tokErr  *parser.UnexpectedTokenError
		notImpl *eval.NotImplementedError
		opErr   *eval.OperandError
	)

	switch {
	case errors.As(err, &runeErr):
		return caret("lex error: "+err.Error(), line, runeErr.Pos)
	case errors.As(err, &strErr):
		return caret("lex error: "+err.Error(), line, strErr.Pos)
	case errors.As(err, &tokErr):
		return caret("parse error: "+err.Error(), line, tokErr.Token.Pos())
	case errors.Is(err, parser.ErrEndOfInput):
		return caret("parse error: "+err.Error(), line, len(line))
	case errors.Is(err, eval.ErrArity), errors.As(err, &notImpl), errors.As(err, &opErr):
		return "eval error: " + err.Error()
	}
	return err.Error()
}

func caret(msg, line string, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}

	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n  ")
	sb.WriteString(line)
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", pos))
	sb.WriteString("^")
	return sb.String()
}
