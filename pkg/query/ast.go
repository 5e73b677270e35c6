package query

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a list of pad queries. Separators are optional between entries.
type File struct {
	Entries []*Entry `parser:"( @@ Comma? )*"`
}

// Entry is a single REF:PAD pair.
// Example: TP1:1 or "J 1":"A3"
type Entry struct {
	Pos       lexer.Position
	Reference string `parser:"@( String | Word )"`
	Pad       string `parser:"Colon @( String | Word )"`
}
