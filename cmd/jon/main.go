package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/deepsghimire/jon"
	"github.com/deepsghimire/jon/ast"
	"github.com/deepsghimire/jon/eval"
	"github.com/deepsghimire/jon/lexer"
	"github.com/deepsghimire/jon/parser"
)

const (
	appName     = "jon"
	historyFile = ".jon_history"
	prompt      = "jon> "
)

var banner = fmt.Sprintf("jon %s\nCtrl+C cancels input, Ctrl+D exits.", jon.Version)

var (
	flagExpr     = flag.String("e", "", "evaluate the given expression and exit")
	flagDebug    = flag.Bool("debug", false, "dump tokens, tree and result for every line")
	flagStrict   = flag.Bool("strict", false, "fail on non-numeric operands instead of skipping them")
	flagSubFirst = flag.Bool("subfirst", false, "subtract from the first operand instead of zero")
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	flag.Parse()

	ev := eval.New()
	ev.SetStrictNumbers(*flagStrict)
	ev.SetSubtractFromFirst(*flagSubFirst)

	if *flagExpr != "" {
		os.Exit(cmdEval(ev, *flagExpr))
	}
	os.Exit(cmdRepl(ev))
}

// evalLine runs one line through the whole pipeline.
func evalLine(ev *eval.Evaluator, line string) (ast.Atom, error) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return ast.Atom{}, err
	}
	if *flagDebug {
		spew.Dump(tokens)
	}

	root, err := parser.New(tokens).ParseExpr()
	if err != nil {
		return ast.Atom{}, err
	}
	if *flagDebug {
		spew.Dump(root)
	}

	return ev.Eval(root)
}

func cmdEval(ev *eval.Evaluator, line string) int {
	out, err := evalLine(ev, line)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(jon.FormatError(err, line)))
		return 1
	}
	fmt.Println(out)
	return 0
}

func cmdRepl(ev *eval.Evaluator) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		out, err := evalLine(ev, line)
		if err != nil {
			// a bad line does not end the session
			fmt.Fprintln(os.Stderr, red(jon.FormatError(err, line)))
			continue
		}
		fmt.Println(out)
	}

	return 0
}
