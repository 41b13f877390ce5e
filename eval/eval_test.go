package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepsghimire/jon/ast"
	"github.com/deepsghimire/jon/parser"
)

func mustParse(t *testing.T, in string) *ast.Node {
	t.Helper()

	root, err := parser.Parse(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return root
}

func TestEvalArithmetic(t *testing.T) {
	testCases := []struct {
		In  string
		Out float64
	}{
		{In: `(+ 1)`, Out: 1},
		{In: `(+ 1 2)`, Out: 3},
		{In: `(+ 1 2 3 4)`, Out: 10},
		{In: `(+ 1.5 2.25)`, Out: 3.75},
		{In: `(- 1 2)`, Out: -3},
		{In: `(- 1)`, Out: -1},
		{In: `(+ 1 (+ 2 3))`, Out: 6},
		{In: `(+ (- 1) 5)`, Out: 4},
		{In: `(- (+ 1 2) 4)`, Out: -7},
	}

	ev := New()
	for i := range testCases {
		out, err := ev.Eval(mustParse(t, testCases[i].In))
		assert.NoError(t, err)
		assert.Equal(t, ast.NewNumber(testCases[i].Out), out)
	}
}

func TestEvalAtoms(t *testing.T) {
	ev := New()

	out, err := ev.Eval(mustParse(t, `42`))
	assert.NoError(t, err)
	assert.Equal(t, ast.NewNumber(42), out)

	out, err = ev.Eval(mustParse(t, `foo`))
	assert.NoError(t, err)
	assert.Equal(t, ast.NewSymbol("foo"), out)

	out, err = ev.Eval(mustParse(t, `"abcde"`))
	assert.NoError(t, err)
	assert.Equal(t, ast.NewString("abcde"), out)
}

func TestEvalSkipsNonNumbers(t *testing.T) {
	testCases := []struct {
		In  string
		Out float64
	}{
		{In: `(+ 1 "a" 2)`, Out: 3},
		{In: `(+ x 1)`, Out: 1},
		{In: `(- x y 2)`, Out: -2},
		{In: `(+ "a" "b")`, Out: 0},
	}

	ev := New()
	for i := range testCases {
		out, err := ev.Eval(mustParse(t, testCases[i].In))
		assert.NoError(t, err)
		assert.Equal(t, ast.NewNumber(testCases[i].Out), out)
	}
}

func TestEvalReservedForms(t *testing.T) {
	ev := New()

	_, err := ev.Eval(mustParse(t, `()`))
	assert.ErrorIs(t, err, ErrArity)

	_, err = ev.Eval(mustParse(t, `(1)`))
	assert.ErrorIs(t, err, ErrArity)

	var notImpl *NotImplementedError

	_, err = ev.Eval(mustParse(t, `(* 2 3)`))
	assert.ErrorAs(t, err, &notImpl)

	_, err = ev.Eval(mustParse(t, `(/ 6 2)`))
	assert.ErrorAs(t, err, &notImpl)

	_, err = ev.Eval(mustParse(t, `(foo 1 2)`))
	assert.ErrorAs(t, err, &notImpl)

	_, err = ev.Eval(mustParse(t, `(1 2)`))
	assert.ErrorAs(t, err, &notImpl)

	_, err = ev.Eval(mustParse(t, `((add) 1 2)`))
	assert.ErrorAs(t, err, &notImpl)
}

func TestEvalErrorInArgument(t *testing.T) {
	ev := New()

	_, err := ev.Eval(mustParse(t, `(+ 1 () 2)`))
	assert.ErrorIs(t, err, ErrArity)

	var notImpl *NotImplementedError
	_, err = ev.Eval(mustParse(t, `(+ 1 (* 2 3))`))
	assert.ErrorAs(t, err, &notImpl)
}

func TestSubtractFromFirst(t *testing.T) {
	testCases := []struct {
		In  string
		Out float64
	}{
		{In: `(- 1 2)`, Out: -1},
		{In: `(- 5 2 1)`, Out: 2},
		{In: `(- 5)`, Out: 5},
		{In: `(- x 5 2)`, Out: 3},
		{In: `(+ 1 2)`, Out: 3},
	}

	ev := New()
	ev.SetSubtractFromFirst(true)

	for i := range testCases {
		out, err := ev.Eval(mustParse(t, testCases[i].In))
		assert.NoError(t, err)
		assert.Equal(t, ast.NewNumber(testCases[i].Out), out)
	}
}

func TestStrictNumbers(t *testing.T) {
	ev := New()
	ev.SetStrictNumbers(true)

	out, err := ev.Eval(mustParse(t, `(+ 1 2)`))
	assert.NoError(t, err)
	assert.Equal(t, ast.NewNumber(3), out)

	var opErr *OperandError

	_, err = ev.Eval(mustParse(t, `(+ 1 "a")`))
	assert.ErrorAs(t, err, &opErr)
	assert.Equal(t, "+", opErr.Op)
	assert.Equal(t, ast.NewString("a"), opErr.Atom)

	_, err = ev.Eval(mustParse(t, `(- x 1)`))
	assert.ErrorAs(t, err, &opErr)
	assert.Equal(t, "-", opErr.Op)
}

func TestEvalNilNode(t *testing.T) {
	_, err := New().Eval(nil)
	assert.Error(t, err)
}
