// Package kicadsexp is a streaming S-expression reader for KiCad design files.
// Quoted strings are unquoted by the lexer, so `"F.Cu"` and `F.Cu` both read
// as the Symbol F.Cu.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp is an S-expression node: either a Symbol or a *List.
type Sexp interface {
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms).
	LeafCount() int

	// Head returns the first element of a list (the atom itself for atoms).
	Head() Sexp

	// Tail returns the list after its first element, or nil.
	Tail() Sexp

	String() string
}

// Symbol is an atom: an identifier, a number or an unquoted string.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// List is a parenthesized sequence of expressions.
type List struct {
	elements []Sexp
}

// NewList builds a list from elements.
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

func (l *List) IsLeaf() bool   { return false }
func (l *List) LeafCount() int { return len(l.elements) }

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.elements)
}

// Elements returns the list's elements. The slice must not be modified.
func (l *List) Elements() []Sexp {
	return l.elements
}

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString reads every top-level expression from s.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
