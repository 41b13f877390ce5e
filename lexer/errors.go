package lexer

import (
	"fmt"
	"io"
)

// InvalidRuneError reports a character that does not begin any lexical
// unit.
type InvalidRuneError struct {
	Rune rune
	Pos  int
}

func (e *InvalidRuneError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Rune, e.Pos)
}

// UnterminatedStringError reports a string that is missing its closing
// quote.
type UnterminatedStringError struct {
	Pos int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string starting at position %d", e.Pos)
}

func (e *UnterminatedStringError) Unwrap() error {
	return io.ErrUnexpectedEOF
}
