package pcb

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Source adapts a parsed Board to testpoint.Board.
type Source struct {
	board      *Board
	footprints map[*Footprint]*sourceFootprint
	pads       []testpoint.Pad
}

var _ testpoint.Board = (*Source)(nil)

// NewSource wraps board. The board must not be modified afterwards.
func NewSource(board *Board) *Source {
	s := &Source{board: board, footprints: make(map[*Footprint]*sourceFootprint, len(board.Footprints))}
	for i := range board.Footprints {
		sf := &sourceFootprint{fp: &board.Footprints[i]}
		for j := range sf.fp.Pads {
			sp := &sourcePad{pad: &sf.fp.Pads[j], parent: sf}
			sf.pads = append(sf.pads, sp)
			s.pads = append(s.pads, sp)
		}
		s.footprints[sf.fp] = sf
	}
	return s
}

// Open parses a board file and applies net classes from the sibling project
// file when one exists.
func Open(filename string) (*Source, error) {
	board, err := ParseFile(filename)
	if err != nil {
		return nil, err
	}

	project, err := LoadProject(ProjectPath(filename))
	switch {
	case err == nil:
		board.AssignNetClasses(project.NetClasses(board.GetAllNetNames()))
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("board %s: %w", filename, err)
	}

	return NewSource(board), nil
}

// Board returns the parsed board.
func (s *Source) Board() *Board {
	return s.board
}

func (s *Source) FootprintsByReference(ref string) []testpoint.Footprint {
	var out []testpoint.Footprint
	for _, fp := range s.board.FindFootprints(ref) {
		out = append(out, s.footprints[fp])
	}
	return out
}

func (s *Source) Pads() []testpoint.Pad {
	return s.pads
}

func (s *Source) AuxOrigin() (testpoint.Point, bool) {
	setup := s.board.Setup
	if !setup.HasAuxAxisOrigin {
		return testpoint.Point{}, false
	}
	return testpoint.PointFromMM(setup.AuxAxisOrigin.X, setup.AuxAxisOrigin.Y), true
}

// NetNames returns the board's named nets in file order.
func (s *Source) NetNames() []string {
	return s.board.GetAllNetNames()
}

// NetPads returns the "<ref>-<pad>" names of the pads on net, in board order.
func (s *Source) NetPads(net string) []string {
	pads := s.board.GetNetPads(net)
	names := make([]string, len(pads))
	for i, p := range pads {
		names[i] = p.Name()
	}
	return names
}

type sourceFootprint struct {
	fp   *Footprint
	pads []testpoint.Pad
}

func (f *sourceFootprint) Reference() string      { return f.fp.Reference }
func (f *sourceFootprint) Side() int              { return f.fp.Side() }
func (f *sourceFootprint) Pads() []testpoint.Pad { return f.pads }

type sourcePad struct {
	pad    *Pad
	parent *sourceFootprint
}

func (p *sourcePad) Number() string                  { return p.pad.Number }
func (p *sourcePad) Center() testpoint.Point         { return p.pad.Center }
func (p *sourcePad) Orientation() float64            { return p.pad.Position.Angle }
func (p *sourcePad) Layer() int                      { return p.pad.Layer }
func (p *sourcePad) HasHole() bool                   { return p.pad.HasHole() }
func (p *sourcePad) Property() testpoint.PadProperty { return p.pad.Property }

func (p *sourcePad) Footprint() testpoint.Footprint {
	if p == nil || p.parent == nil {
		return nil
	}
	return p.parent
}

func (p *sourcePad) NetName() string {
	if p.pad.Net == nil {
		return ""
	}
	return p.pad.Net.Name
}

func (p *sourcePad) NetClass() string {
	if p.pad.Net == nil {
		return ""
	}
	return p.pad.Net.Class
}
