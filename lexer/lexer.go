package lexer

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// Lexer splits a line of source text into tokens. It keeps a byte-offset
// cursor into the line that only ever moves forward; a fresh Lexer is
// needed to scan the same line again.
type Lexer struct {
	src string
	pos int
}

// New initializes a Lexer over the given source line
func New(src string) *Lexer {
	return &Lexer{src: src}
}

func (lx *Lexer) atEnd() bool {
	return lx.pos >= len(lx.src)
}

func (lx *Lexer) peek() rune {
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r
}

func (lx *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += size
	return r
}

// advanceWhile consumes runes as long as pred accepts them and returns the
// span covered.
func (lx *Lexer) advanceWhile(pred func(r rune) bool) string {
	start := lx.pos
	for !lx.atEnd() && pred(lx.peek()) {
		lx.advance()
	}
	return lx.src[start:lx.pos]
}

// Next scans and returns the next token. It returns io.EOF once the line
// is exhausted, an UnterminatedStringError when a string is missing its
// closing quote and an InvalidRuneError when the character under the
// cursor does not begin any lexical unit.
func (lx *Lexer) Next() (Token, error) {
	if lx.atEnd() {
		return Token{}, io.EOF
	}

	start := lx.pos
	r := lx.peek()

	switch {
	case r == '\'':
		lx.advance()
		return NewToken(TokenQuote, "'", start), nil

	case r == '"':
		lx.advance()
		text := lx.advanceWhile(func(r rune) bool { return r != '"' })
		if lx.atEnd() {
			return Token{}, &UnterminatedStringError{Pos: start}
		}
		lx.advance()
		return NewToken(TokenString, text, start), nil

	case unicode.IsSpace(r):
		text := lx.advanceWhile(unicode.IsSpace)
		return NewToken(TokenWhitespace, text, start), nil

	case isDigit(r):
		text := lx.advanceWhile(isNumberRune)
		return NewToken(TokenNumber, text, start), nil

	case isSymbolRune(r):
		text := lx.advanceWhile(isSymbolRune)
		return NewToken(TokenSymbol, text, start), nil

	case r == '(':
		lx.advance()
		return NewToken(TokenLeftParen, "(", start), nil

	case r == ')':
		lx.advance()
		return NewToken(TokenRightParen, ")", start), nil
	}

	return Token{}, &InvalidRuneError{Rune: r, Pos: start}
}

// ScanAll scans tokens until the end of the line. A line that ends cleanly
// returns the accumulated tokens and a nil error; a line that stops
// scanning mid-token returns the error that interrupted it.
func (lx *Lexer) ScanAll() ([]Token, error) {
	tokens := []Token{}
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize takes a line of source text and returns all the tokens within
// it, or an error if a token can't be identified.
func Tokenize(src string) ([]Token, error) {
	return New(src).ScanAll()
}
