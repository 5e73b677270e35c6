package testpoint

import "math"

// NativePerMM is the number of native board units in one millimeter.
// KiCad stores all coordinates internally as integer nanometers.
const NativePerMM = 1_000_000

// PadProperty is the fabrication property attached to a pad.
// Values follow KiCad's PAD_PROP enumeration.
type PadProperty int

const (
	PropertyNone           PadProperty = 0
	PropertyBGA            PadProperty = 1
	PropertyFiducialGlobal PadProperty = 2
	PropertyFiducialLocal  PadProperty = 3
	PropertyTestPoint      PadProperty = 4
	PropertyHeatsink       PadProperty = 5
	PropertyCastellated    PadProperty = 6
)

// Point is a position in native board units. Y increases downward.
type Point struct {
	X int64
	Y int64
}

// MM converts the point to millimeters.
func (p Point) MM() MM {
	return MM{
		X: float64(p.X) / NativePerMM,
		Y: float64(p.Y) / NativePerMM,
	}
}

// PointFromMM converts millimeters to the nearest native point.
func PointFromMM(x, y float64) Point {
	return Point{
		X: int64(math.Round(x * NativePerMM)),
		Y: int64(math.Round(y * NativePerMM)),
	}
}

// MM is a coordinate pair in millimeters.
type MM struct {
	X float64
	Y float64
}

// Board is a read-only view of a loaded board design.
type Board interface {
	// FootprintsByReference returns every footprint whose reference designator
	// equals ref exactly (case-sensitive).
	FootprintsByReference(ref string) []Footprint

	// Pads returns every pad on the board in board-native order.
	Pads() []Pad

	// AuxOrigin returns the auxiliary origin, if the design defines one.
	AuxOrigin() (Point, bool)
}

// Footprint is a placed component instance.
type Footprint interface {
	Reference() string

	// Side is 0 for a footprint placed on the top side and non-zero otherwise.
	Side() int

	// Pads returns the footprint's pads in native order.
	Pads() []Pad
}

// Pad is a single contact within a footprint.
type Pad interface {
	Number() string
	Center() Point
	Orientation() float64
	Layer() int
	HasHole() bool
	NetName() string
	NetClass() string
	Property() PadProperty

	// Footprint returns the owning footprint. Handles that belong to no
	// footprint, nil pointers included, return nil.
	Footprint() Footprint
}
