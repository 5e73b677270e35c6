package kicadsexp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// TokenType is the kind of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenSymbol
	TokenString
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenSymbol:
		return "symbol"
	case TokenString:
		return "string"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token with the line it started on.
type Token struct {
	Type  TokenType
	Value string
	Line  int
}

// Lexer splits a KiCad S-expression stream into tokens.
type Lexer struct {
	reader *bufio.Reader
	line   int
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r), line: 1}
}

// NextToken returns the next token, or a TokenEOF token at end of input.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipSpace(); err != nil {
		if errors.Is(err, io.EOF) {
			return Token{Type: TokenEOF, Line: l.line}, nil
		}
		return Token{}, err
	}

	ch, err := l.peek()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{Type: TokenEOF, Line: l.line}, nil
		}
		return Token{}, err
	}

	switch ch {
	case '(':
		l.read()
		return Token{Type: TokenLeftParen, Value: "(", Line: l.line}, nil
	case ')':
		l.read()
		return Token{Type: TokenRightParen, Value: ")", Line: l.line}, nil
	case '"':
		return l.readString()
	default:
		return l.readSymbol()
	}
}

// skipSpace consumes whitespace and '#' line comments.
func (l *Lexer) skipSpace() error {
	for {
		ch, err := l.peek()
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(ch):
			l.read()
		case ch == '#':
			for {
				c, err := l.read()
				if err != nil {
					return err
				}
				if c == '\n' {
					break
				}
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) peek() (rune, error) {
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	if err := l.reader.UnreadRune(); err != nil {
		return 0, err
	}
	return ch, nil
}

func (l *Lexer) read() (rune, error) {
	ch, _, err := l.reader.ReadRune()
	if err == nil && ch == '\n' {
		l.line++
	}
	return ch, err
}

func (l *Lexer) readString() (Token, error) {
	start := l.line
	l.read() // opening quote

	var b strings.Builder
	for {
		ch, err := l.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{}, fmt.Errorf("line %d: unterminated string", start)
			}
			return Token{}, err
		}

		switch ch {
		case '"':
			return Token{Type: TokenString, Value: b.String(), Line: start}, nil
		case '\\':
			next, err := l.read()
			if err != nil {
				return Token{}, fmt.Errorf("line %d: unterminated escape", l.line)
			}
			switch next {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(next)
			}
		default:
			b.WriteRune(ch)
		}
	}
}

func (l *Lexer) readSymbol() (Token, error) {
	var b strings.Builder
	for {
		ch, err := l.peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}
		l.read()
		b.WriteRune(ch)
	}

	if b.Len() == 0 {
		return Token{}, fmt.Errorf("line %d: empty symbol", l.line)
	}
	return Token{Type: TokenSymbol, Value: b.String(), Line: l.line}, nil
}
