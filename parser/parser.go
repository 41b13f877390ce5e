package parser

import (
	"fmt"
	"strconv"

	"github.com/deepsghimire/jon/ast"
	"github.com/deepsghimire/jon/lexer"
)

// Parser builds a syntax tree out of a sequence of tokens. It keeps a
// cursor into the sequence that only ever moves forward.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over the given token sequence. Whitespace tokens
// carry no syntactic meaning and are filtered out up front.
func New(tokens []lexer.Token) *Parser {
	kept := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Is(lexer.TokenWhitespace) {
			continue
		}
		kept = append(kept, tok)
	}
	return &Parser{tokens: kept}
}

// AtEnd returns true once every token has been consumed
func (p *Parser) AtEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) current() (lexer.Token, error) {
	if p.AtEnd() {
		return lexer.Token{}, ErrEndOfInput
	}
	return p.tokens[p.pos], nil
}

func (p *Parser) advance() {
	p.pos++
}

// expect consumes the current token when it matches the given type; any
// other token is left in place and reported.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	tok, err := p.current()
	if err != nil {
		return lexer.Token{}, err
	}
	if !tok.Is(tt) {
		return lexer.Token{}, &UnexpectedTokenError{Token: tok}
	}
	p.advance()
	return tok, nil
}

// ParseAtom parses the symbol, number or string at the cursor. The cursor
// only advances when the token yields an atom.
func (p *Parser) ParseAtom() (ast.Atom, error) {
	tok, err := p.current()
	if err != nil {
		return ast.Atom{}, err
	}

	var atom ast.Atom
	switch tok.Type() {
	case lexer.TokenNumber:
		n, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return ast.Atom{}, fmt.Errorf("malformed number %q at position %d: %w", tok.Text(), tok.Pos(), err)
		}
		atom = ast.NewNumber(n)
	case lexer.TokenSymbol:
		atom = ast.NewSymbol(tok.Text())
	case lexer.TokenString:
		atom = ast.NewString(tok.Text())
	default:
		return ast.Atom{}, &UnexpectedTokenError{Token: tok}
	}

	p.advance()
	return atom, nil
}

// ParseList parses the parenthesized list at the cursor. Children are
// parsed until an attempt fails; the failing attempt is what finds the end
// of the list, so its error is swallowed and the closing parenthesis is
// checked instead.
func (p *Parser) ParseList() (*ast.Node, error) {
	open, err := p.expect(lexer.TokenLeftParen)
	if err != nil {
		return nil, err
	}

	list := ast.NewListNode(open)
	for {
		child, err := p.ParseExpr()
		if err != nil {
			break
		}
		if err := list.Push(child); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.TokenRightParen); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseExpr parses the next complete expression at the cursor: first as an
// atom, then as a list when the atom attempt fails.
func (p *Parser) ParseExpr() (*ast.Node, error) {
	tok, err := p.current()
	if err == nil {
		if atom, err := p.ParseAtom(); err == nil {
			return ast.NewAtomNode(tok, atom), nil
		}
	}
	return p.ParseList()
}

// Parse scans the given line and parses the first expression in it.
// Trailing input after that expression is left unread.
func Parse(src string) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseExpr()
}
