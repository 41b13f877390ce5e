package main

import (
	"log"

	"github.com/deepsghimire/jon/ast"
	"github.com/deepsghimire/jon/parser"
)

func main() {
	input := `(concat "hello" (join "world" "!") 42)`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
