package lexer

import (
	"strings"
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenQuote                // Single quote: "'"
	TokenSymbol               // Letters and symbol punctuation
	TokenNumber               // Digits and decimal points
	TokenString               // Double-quoted run of characters
	TokenWhitespace           // Space, tab, linefeed or carriage return
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenLeftParen:  "left_paren",
	TokenRightParen: "right_paren",
	TokenQuote:      "quote",
	TokenSymbol:     "symbol",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenWhitespace: "whitespace",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// symbolPunct lists the punctuation runes that may appear in a symbol in
// addition to letters. Digits never extend a symbol.
const symbolPunct = "-_@#$+=*&^%!"

func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(symbolPunct, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumberRune(r rune) bool {
	return isDigit(r) || r == '.'
}
