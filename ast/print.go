package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	if n.IsList() {
		fmt.Printf("%s(%s): %v\n", indent, n.Type(), n.Token())
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}
		return
	}
	fmt.Printf("%s(%s): %s %v\n", indent, n.Atom().Kind(), n.Atom().Encode(), n.Token())
}

// Encode transforms a node back into its source text representation
func Encode(n *Node) []byte {
	if n == nil {
		return []byte(":nil")
	}
	if n.IsList() {
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, string(Encode(child)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))
	}
	return []byte(n.Atom().Encode())
}
