package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	text   string
	lexeme string
	pos    int
}

// NewToken creates a lexical unit starting at the given byte offset. The
// text is the semantic content of the unit; for string tokens the
// surrounding quotes belong to the lexeme only.
func NewToken(tt TokenType, text string, pos int) Token {
	lexeme := text
	if tt == TokenString {
		lexeme = `"` + text + `"`
	}
	return Token{
		tt:     tt,
		text:   text,
		lexeme: lexeme,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the byte offset of the lexical unit within its source line
func (t Token) Pos() int {
	return t.pos
}

// End returns the byte offset immediately after the lexical unit
func (t Token) End() int {
	return t.pos + len(t.lexeme)
}

// Text returns the text of the lexical unit, with string quotes removed
func (t Token) Text() string {
	return t.text
}

// Lexeme returns the raw source span of the lexical unit. Concatenating
// the lexemes of every scanned token reproduces the source line.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.text, t.pos)
}
