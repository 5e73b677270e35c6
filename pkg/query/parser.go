// Package query parses pad query lists of the form REF:PAD into
// testpoint.PadQuery values.
package query

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Parser reads pad query lists.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a query parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(QueryLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a query list from a reader.
func (p *Parser) Parse(r io.Reader) ([]testpoint.PadQuery, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return toQueries(file)
}

// ParseString parses a query list from a string.
func (p *Parser) ParseString(input string) ([]testpoint.PadQuery, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return toQueries(file)
}

// ParseFile parses a query list from a file path.
func (p *Parser) ParseFile(filename string) ([]testpoint.PadQuery, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseArgs parses each argument as a query list and concatenates the
// results in argument order. It backs repeated --pad flags.
func (p *Parser) ParseArgs(args []string) ([]testpoint.PadQuery, error) {
	var out []testpoint.PadQuery
	for _, arg := range args {
		queries, err := p.ParseString(arg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		out = append(out, queries...)
	}
	return out, nil
}

func toQueries(file *File) ([]testpoint.PadQuery, error) {
	queries := make([]testpoint.PadQuery, 0, len(file.Entries))
	for _, e := range file.Entries {
		if e.Reference == "" {
			return nil, fmt.Errorf("%s: empty reference", e.Pos)
		}
		if e.Pad == "" {
			return nil, fmt.Errorf("%s: empty pad for %s", e.Pos, e.Reference)
		}
		queries = append(queries, testpoint.Query(e.Reference, e.Pad))
	}
	return queries, nil
}
