package eval

import (
	"errors"
	"fmt"

	"github.com/deepsghimire/jon/ast"
)

// Evaluator reduces a syntax tree to the atom value it denotes.
type Evaluator struct {
	subtractFromFirst bool
	strictNumbers     bool
}

// New returns an Evaluator with the default behavior: arithmetic folds
// start from a zero seed and non-numeric operands are skipped.
func New() *Evaluator {
	return &Evaluator{}
}

// SetSubtractFromFirst makes subtraction seed from its first numeric
// operand instead of zero, so that (- 5 2) yields 3 rather than -7.
func (ev *Evaluator) SetSubtractFromFirst(on bool) {
	ev.subtractFromFirst = on
}

// SetStrictNumbers makes arithmetic operators fail on non-numeric operands
// instead of skipping them.
func (ev *Evaluator) SetStrictNumbers(on bool) {
	ev.strictNumbers = on
}

// Eval evaluates a syntax tree. Atoms evaluate to themselves; lists are
// operator applications.
func (ev *Evaluator) Eval(n *ast.Node) (ast.Atom, error) {
	if n == nil {
		return ast.Atom{}, errors.New("cannot evaluate a nil node")
	}
	if n.IsAtom() {
		return n.Atom(), nil
	}
	return ev.evalList(n.List())
}

func (ev *Evaluator) evalList(list []*ast.Node) (ast.Atom, error) {
	if len(list) <= 1 {
		return ast.Atom{}, ErrArity
	}

	head := list[0]
	if head.IsList() {
		return ast.Atom{}, &NotImplementedError{Form: "calling the result of a nested form"}
	}

	op := head.Atom()
	if op.Kind() != ast.AtomKindSymbol {
		return ast.Atom{}, &NotImplementedError{Form: fmt.Sprintf("calling %s", op.Encode())}
	}

	switch op.Text() {
	case "+":
		return ev.fold(op.Text(), list[1:], func(acc, n float64) float64 { return acc + n })
	case "-":
		return ev.fold(op.Text(), list[1:], func(acc, n float64) float64 { return acc - n })
	case "*", "/":
		return ast.Atom{}, &NotImplementedError{Form: fmt.Sprintf("operator %q", op.Text())}
	}
	return ast.Atom{}, &NotImplementedError{Form: fmt.Sprintf("calling %q", op.Text())}
}

// fold evaluates every argument in order and accumulates the numeric ones.
// The first argument error aborts the fold.
func (ev *Evaluator) fold(op string, args []*ast.Node, combine func(acc, n float64) float64) (ast.Atom, error) {
	acc := 0.0
	seeded := op != "-" || !ev.subtractFromFirst

	for _, arg := range args {
		v, err := ev.Eval(arg)
		if err != nil {
			return ast.Atom{}, err
		}
		if !v.IsNumber() {
			if ev.strictNumbers {
				return ast.Atom{}, &OperandError{Op: op, Atom: v}
			}
			continue
		}
		if !seeded {
			acc = v.Number()
			seeded = true
			continue
		}
		acc = combine(acc, v.Number())
	}

	return ast.NewNumber(acc), nil
}
