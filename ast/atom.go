package ast

import (
	"fmt"
	"strconv"
)

// Atom is the value carried by a leaf of the syntax tree and the result of
// evaluating a tree: a symbol, a number or a string.
type Atom struct {
	kind AtomKind
	text string
	num  float64
}

// NewSymbol creates an atom of kind symbol
func NewSymbol(name string) Atom {
	return Atom{kind: AtomKindSymbol, text: name}
}

// NewNumber creates an atom of kind number
func NewNumber(v float64) Atom {
	return Atom{kind: AtomKindNumber, num: v}
}

// NewString creates an atom of kind string
func NewString(v string) Atom {
	return Atom{kind: AtomKindString, text: v}
}

// Kind returns the kind of value the atom holds
func (a Atom) Kind() AtomKind {
	return a.kind
}

// Text returns the symbol name or string content of the atom
func (a Atom) Text() string {
	return a.text
}

// Number returns the numeric value of the atom
func (a Atom) Number() float64 {
	return a.num
}

// IsNumber returns true if the atom holds a number
func (a Atom) IsNumber() bool {
	return a.kind == AtomKindNumber
}

// Encode returns the source text representation of the atom. Numbers are
// rendered without an exponent so that any number read from source scans
// back as a single number token.
func (a Atom) Encode() string {
	switch a.kind {
	case AtomKindSymbol:
		return a.text
	case AtomKindNumber:
		return strconv.FormatFloat(a.num, 'f', -1, 64)
	case AtomKindString:
		return fmt.Sprintf("%q", a.text)
	}
	return ""
}

func (a Atom) String() string {
	return fmt.Sprintf("(%v): %v", a.kind, a.Encode())
}
