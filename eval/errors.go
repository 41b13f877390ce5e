package eval

import (
	"errors"
	"fmt"

	"github.com/deepsghimire/jon/ast"
)

// ErrArity is returned for list forms too short to carry an operator and
// its arguments.
var ErrArity = errors.New("form needs an operator and at least one argument")

// NotImplementedError reports a form that is reserved for a future version
// of the language.
type NotImplementedError struct {
	Form string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Form)
}

// OperandError reports a non-numeric operand under strict number checking.
type OperandError struct {
	Op   string
	Atom ast.Atom
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("operator %q expects numbers, got %s", e.Op, e.Atom.Encode())
}
