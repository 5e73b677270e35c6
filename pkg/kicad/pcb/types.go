package pcb

import (
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Default KiCad copper layer ordinals, used when a board has no layer table.
const (
	DefaultFrontCopper = 0
	DefaultBackCopper  = 31
)

// Position is a coordinate in millimeters, as written in the board file.
type Position struct {
	X float64
	Y float64
}

// PositionAngle is a position with a rotation in degrees.
type PositionAngle struct {
	Position
	Angle float64
}

// Size is a width and height in millimeters.
type Size struct {
	Width  float64
	Height float64
}

// Layer is an entry of the board's layer table.
type Layer struct {
	Number int    // Layer ordinal
	Name   string // e.g. "F.Cu", "B.Cu", "F.SilkS"
	Type   string // e.g. "signal", "user"
}

// Net is an electrical net.
type Net struct {
	Number int
	Name   string
	Class  string // Net class name, empty when unassigned
}

// LayerSet is the list of layer names a pad appears on.
type LayerSet []string

// Contains reports whether the set names layer exactly.
func (ls LayerSet) Contains(layer string) bool {
	for _, l := range ls {
		if l == layer {
			return true
		}
	}
	return false
}

// LayerMap looks up layers by number or name.
type LayerMap struct {
	byNumber map[int]*Layer
	byName   map[string]*Layer
}

// NewLayerMap indexes layers.
func NewLayerMap(layers []Layer) *LayerMap {
	lm := &LayerMap{
		byNumber: make(map[int]*Layer),
		byName:   make(map[string]*Layer),
	}
	for i := range layers {
		layer := &layers[i]
		lm.byNumber[layer.Number] = layer
		lm.byName[layer.Name] = layer
	}
	return lm
}

// GetByName retrieves a layer by its name (e.g. "F.Cu").
func (lm *LayerMap) GetByName(name string) (*Layer, bool) {
	layer, ok := lm.byName[name]
	return layer, ok
}

// GetByNumber retrieves a layer by its number.
func (lm *LayerMap) GetByNumber(num int) (*Layer, bool) {
	layer, ok := lm.byNumber[num]
	return layer, ok
}

// Number returns the ordinal of a named layer, falling back to KiCad's
// default numbering for the outer copper layers.
func (lm *LayerMap) Number(name string) (int, bool) {
	if layer, ok := lm.byName[name]; ok {
		return layer.Number, true
	}
	switch name {
	case "F.Cu":
		return DefaultFrontCopper, true
	case "B.Cu":
		return DefaultBackCopper, true
	}
	return 0, false
}

// NetMap looks up nets by number or name.
type NetMap struct {
	byNumber map[int]*Net
	byName   map[string]*Net
}

// NewNetMap indexes nets. Nets with empty names are only reachable by number.
func NewNetMap(nets []Net) *NetMap {
	nm := &NetMap{
		byNumber: make(map[int]*Net),
		byName:   make(map[string]*Net),
	}
	for i := range nets {
		net := &nets[i]
		nm.byNumber[net.Number] = net
		if net.Name != "" {
			nm.byName[net.Name] = net
		}
	}
	return nm
}

// GetByName retrieves a net by its name (e.g. "GND", "+5V").
func (nm *NetMap) GetByName(name string) (*Net, bool) {
	net, ok := nm.byName[name]
	return net, ok
}

// GetByNumber retrieves a net by its number.
func (nm *NetMap) GetByNumber(num int) (*Net, bool) {
	net, ok := nm.byNumber[num]
	return net, ok
}

// IsUnconnected reports whether num is KiCad's reserved "no net" number.
func (nm *NetMap) IsUnconnected(num int) bool {
	return num == 0
}

// Board is a parsed KiCad PCB.
type Board struct {
	Version    int    // File format version
	Generator  string // e.g. "pcbnew"
	Layers     []Layer
	Setup      Setup
	Nets       []Net
	Footprints []Footprint
}

// Setup holds the design settings the report needs.
type Setup struct {
	AuxAxisOrigin    Position
	HasAuxAxisOrigin bool
}

// Footprint is a placed component.
type Footprint struct {
	Library   string
	Name      string
	Layer     string        // "F.Cu" or "B.Cu"
	Position  PositionAngle // Anchor position and orientation
	Reference string
	Value     string
	Pads      []Pad
}

// Side returns 0 for a footprint on the front and 1 for the back.
func (f *Footprint) Side() int {
	if f.Layer == "B.Cu" {
		return 1
	}
	return 0
}

// Pad is a footprint pad.
type Pad struct {
	Number   string
	Type     string        // thru_hole, smd, connect, np_thru_hole
	Shape    string        // circle, rect, oval, roundrect, ...
	Position PositionAngle // Relative to the footprint anchor, as in the file
	Center   testpoint.Point
	Size     Size
	Drill    float64 // Drill diameter, 0 for SMD
	Layers   LayerSet
	Layer    int // Ordinal of the principal copper layer
	Net      *Net
	Property testpoint.PadProperty
}

// HasHole reports whether the pad is drilled.
func (p *Pad) HasHole() bool {
	return p.Drill > 0 || p.Type == "thru_hole" || p.Type == "np_thru_hole"
}
