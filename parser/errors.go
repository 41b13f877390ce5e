package parser

import (
	"errors"
	"fmt"

	"github.com/deepsghimire/jon/lexer"
)

// ErrEndOfInput is returned when the token sequence runs out while a
// construct still expects more input.
var ErrEndOfInput = errors.New("unexpected end of input")

// UnexpectedTokenError reports a token found where a different syntactic
// category was required. The token is left unconsumed.
type UnexpectedTokenError struct {
	Token lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at position %d", e.Token.Lexeme(), e.Token.Pos())
}
