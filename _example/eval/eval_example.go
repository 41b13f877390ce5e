package main

import (
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/deepsghimire/jon"
	"github.com/deepsghimire/jon/eval"
	"github.com/deepsghimire/jon/parser"
)

func main() {
	input := `(+ 1 (- 10 4) 2.5)`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ev := eval.New()
	ev.SetSubtractFromFirst(true)

	out, err := ev.Eval(root)
	if err != nil {
		log.Fatal(jon.FormatError(err, input))
	}

	spew.Dump(out)
	fmt.Println(out)
}
