// Package memboard is an in-memory testpoint.Board. It backs unit tests and
// callers that assemble board data without a design file.
package memboard

import (
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Board holds footprints in insertion order.
type Board struct {
	footprints []*Footprint
	nets       []string
	aux        *testpoint.Point
}

// New returns an empty board with no auxiliary origin.
func New() *Board {
	return &Board{}
}

// SetAuxOrigin defines the board's auxiliary origin.
func (b *Board) SetAuxOrigin(p testpoint.Point) {
	b.aux = &p
}

// AddNet declares a net. Nets referenced by pads are declared automatically.
func (b *Board) AddNet(name string) {
	for _, n := range b.nets {
		if n == name {
			return
		}
	}
	b.nets = append(b.nets, name)
}

// AddFootprint places a footprint. side is 0 for top.
func (b *Board) AddFootprint(ref string, side int) *Footprint {
	fp := &Footprint{board: b, ref: ref, side: side}
	b.footprints = append(b.footprints, fp)
	return fp
}

func (b *Board) FootprintsByReference(ref string) []testpoint.Footprint {
	var out []testpoint.Footprint
	for _, fp := range b.footprints {
		if fp.ref == ref {
			out = append(out, fp)
		}
	}
	return out
}

func (b *Board) Pads() []testpoint.Pad {
	var out []testpoint.Pad
	for _, fp := range b.footprints {
		out = append(out, fp.Pads()...)
	}
	return out
}

func (b *Board) AuxOrigin() (testpoint.Point, bool) {
	if b.aux == nil {
		return testpoint.Point{}, false
	}
	return *b.aux, true
}

// NetNames returns declared nets in declaration order.
func (b *Board) NetNames() []string {
	return append([]string(nil), b.nets...)
}

// Footprint is a placed footprint on a Board.
type Footprint struct {
	board *Board
	ref   string
	side  int
	pads  []*Pad
}

// AddPad appends a copy of p to the footprint and returns the stored pad.
func (f *Footprint) AddPad(p Pad) *Pad {
	p.parent = f
	f.pads = append(f.pads, &p)
	if p.Net != "" {
		f.board.AddNet(p.Net)
	}
	return &p
}

func (f *Footprint) Reference() string { return f.ref }
func (f *Footprint) Side() int         { return f.side }

func (f *Footprint) Pads() []testpoint.Pad {
	out := make([]testpoint.Pad, len(f.pads))
	for i, p := range f.pads {
		out[i] = p
	}
	return out
}

// Pad is a pad description. Fields are exported so tests can build pads
// literally; the parent footprint is set by Footprint.AddPad.
type Pad struct {
	ID      string
	At      testpoint.Point
	Angle   float64
	LayerID int
	Drilled bool
	Net     string
	Class   string
	Prop    testpoint.PadProperty
	parent  *Footprint
}

func (p *Pad) Number() string                  { return p.ID }
func (p *Pad) Center() testpoint.Point         { return p.At }
func (p *Pad) Orientation() float64            { return p.Angle }
func (p *Pad) Layer() int                      { return p.LayerID }
func (p *Pad) HasHole() bool                   { return p.Drilled }
func (p *Pad) NetName() string                 { return p.Net }
func (p *Pad) NetClass() string                { return p.Class }
func (p *Pad) Property() testpoint.PadProperty { return p.Prop }

// Footprint returns the parent footprint, or nil for a nil pad or a pad never
// added to a footprint.
func (p *Pad) Footprint() testpoint.Footprint {
	if p == nil || p.parent == nil {
		return nil
	}
	return p.parent
}
