package kicadsexp

import (
	"fmt"
	"io"
)

// Parser builds expressions from a token stream.
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ParseAll parses every top-level expression until EOF.
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.Type == TokenEOF {
			return result, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)
	}
}

func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) parseExpr() (Sexp, error) {
	switch p.current.Type {
	case TokenLeftParen:
		return p.parseList()
	case TokenSymbol, TokenString:
		return Symbol(p.current.Value), nil
	default:
		return nil, fmt.Errorf("line %d: unexpected %s", p.current.Line, p.current.Type)
	}
}

func (p *Parser) parseList() (Sexp, error) {
	start := p.current.Line
	var elements []Sexp
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.current.Type {
		case TokenRightParen:
			return &List{elements: elements}, nil
		case TokenEOF:
			return nil, fmt.Errorf("line %d: unexpected EOF in list", start)
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}
}
