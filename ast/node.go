package ast

import (
	"errors"
	"fmt"

	"github.com/deepsghimire/jon/lexer"
)

// Node represents a node of the syntax tree: either a single atom or a
// parenthesized list of child nodes.
type Node struct {
	nt   NodeType
	tok  lexer.Token
	atom Atom
	list []*Node
}

// NewAtomNode creates and returns a leaf node holding the given atom
func NewAtomNode(tok lexer.Token, atom Atom) *Node {
	return &Node{nt: NodeTypeAtom, tok: tok, atom: atom}
}

// NewListNode creates and returns a list node with the given children
func NewListNode(tok lexer.Token, children ...*Node) *Node {
	return &Node{nt: NodeTypeList, tok: tok, list: children}
}

// Token returns the token that introduced the node
func (n Node) Token() lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Atom returns the value of a leaf node
func (n Node) Atom() Atom {
	return n.atom
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.list
}

// Push appends a child node to a node of type "list"
func (n *Node) Push(node *Node) error {
	if n.IsList() {
		n.list = append(n.list, node)
		return nil
	}
	return errors.New("nodes of type atom can't accept children")
}

// IsAtom returns true if the node is a leaf
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// Equal reports whether two trees have the same structure and atom values.
// Token positions are ignored, so a tree compares equal to the tree parsed
// back from its encoded form.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.nt != other.nt {
		return false
	}
	if n.IsAtom() {
		return n.atom == other.atom
	}
	if len(n.list) != len(other.list) {
		return false
	}
	for i := range n.list {
		if !n.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.list))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.atom.Encode())
}
