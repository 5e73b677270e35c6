package query

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// QueryLexer tokenizes pad query lists such as `TP1:1, "J 1":A3  # header`.
var QueryLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Shell style comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},

	// Quoted references or pads may contain spaces, colons and commas
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Anything else up to a separator: TP1, J_2, A3, 1, EP, +3V3
	{Name: "Word", Pattern: `[^\s,:"#]+`},
})
