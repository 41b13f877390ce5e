package main

import (
	"fmt"
	"log"

	"github.com/deepsghimire/jon/lexer"
)

func main() {
	input := `(def (add x y) (+ x y))`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, pos: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Pos(), tok.Lexeme())
	}
}
