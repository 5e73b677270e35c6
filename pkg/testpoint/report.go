package testpoint

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Side labels.
const (
	SideTop    = "TOP"
	SideBottom = "BOTTOM"
)

// Pad type labels.
const (
	PadTypeThru = "THRU"
	PadTypeSMT  = "SMT"
)

// Record is one row of a test-point report.
type Record struct {
	SourceRefDes  string  `json:"source ref des" yaml:"source ref des"`
	SourcePad     string  `json:"source pad" yaml:"source pad"`
	Net           string  `json:"net" yaml:"net"`
	NetClass      string  `json:"net class" yaml:"net class"`
	Side          string  `json:"side" yaml:"side"`
	X             float64 `json:"x" yaml:"x"`
	Y             float64 `json:"y" yaml:"y"`
	PadType       string  `json:"pad type" yaml:"pad type"`
	FootprintSide string  `json:"footprint side" yaml:"footprint side"`
}

// Name identifies the record in distance and clearance lookups, using KiCad's
// "<ref>-<pad>" pin naming.
func (r Record) Name() string {
	return r.SourceRefDes + "-" + r.SourcePad
}

// Report is an ordered list of records.
type Report []Record

// Names returns a unique name for every record, in report order. The first
// record with a given Name keeps it; repeats get a "#n" suffix counting from 2,
// so the second of two "J1-SH" shield pads is "J1-SH#2".
func (r Report) Names() []string {
	names := make([]string, len(r))
	used := make(map[string]bool, len(r))
	for i, rec := range r {
		base := rec.Name()
		name := base
		for n := 2; used[name]; n++ {
			name = base + "#" + strconv.Itoa(n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// Column describes one report column in output order.
type Column struct {
	Name   string
	Format func(Record) string
}

// Columns is the fixed, ordered column set of a report. Serializers use it
// for both the header and the row values.
var Columns = []Column{
	{Name: "source ref des", Format: func(r Record) string { return r.SourceRefDes }},
	{Name: "source pad", Format: func(r Record) string { return r.SourcePad }},
	{Name: "net", Format: func(r Record) string { return r.Net }},
	{Name: "net class", Format: func(r Record) string { return r.NetClass }},
	{Name: "side", Format: func(r Record) string { return r.Side }},
	{Name: "x", Format: func(r Record) string { return FormatMM(r.X) }},
	{Name: "y", Format: func(r Record) string { return FormatMM(r.Y) }},
	{Name: "pad type", Format: func(r Record) string { return r.PadType }},
	{Name: "footprint side", Format: func(r Record) string { return r.FootprintSide }},
}

// ColumnNames returns the header row.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// Values returns the record's fields in column order.
func (r Record) Values() []string {
	values := make([]string, len(Columns))
	for i, c := range Columns {
		values[i] = c.Format(r)
	}
	return values
}

// FormatMM formats a millimeter value with the shortest exact representation.
func FormatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildReport derives one record per pad, in input order. Every handle is
// checked before any record is built; a bad handle fails the whole build.
func BuildReport(log zerolog.Logger, board Board, settings Settings, pads []Pad) (Report, error) {
	for i, p := range pads {
		if err := checkPad(i, p); err != nil {
			return nil, err
		}
	}

	origin, _ := SelectOrigin(log, board, settings)

	report := make(Report, 0, len(pads))
	for _, p := range pads {
		pos := PadPosition(p, origin)
		report = append(report, Record{
			SourceRefDes:  RefDes(p),
			SourcePad:     p.Number(),
			Net:           p.NetName(),
			NetClass:      p.NetClass(),
			Side:          PadSide(p),
			X:             pos.X,
			Y:             pos.Y,
			PadType:       PadType(p),
			FootprintSide: FootprintSide(p),
		})
	}

	log.Debug().
		Int("records", len(report)).
		Bool("aux_origin", origin.Aux).
		Msg("built test point report")
	return report, nil
}

func checkPad(i int, p Pad) error {
	if p == nil {
		return &InternalConsistencyError{Index: i, Reason: "nil pad handle"}
	}
	if p.Footprint() == nil {
		return &InternalConsistencyError{Index: i, Reason: "no parent footprint"}
	}
	return nil
}

// RefDes returns the reference designator of the pad's footprint.
func RefDes(p Pad) string {
	return p.Footprint().Reference()
}

// PadSide reports the physical side of a pad. Pads of a flipped footprint are
// on the opposite layer from an unflipped one, so the footprint side is
// compared against the pad layer rather than read from either alone.
func PadSide(p Pad) string {
	if p.Footprint().Side() != p.Layer() {
		return SideBottom
	}
	return SideTop
}

// PadType returns THRU for drilled pads and SMT otherwise.
func PadType(p Pad) string {
	if p.HasHole() {
		return PadTypeThru
	}
	return PadTypeSMT
}

// FootprintSide returns the placement side of the pad's footprint.
func FootprintSide(p Pad) string {
	if p.Footprint().Side() != 0 {
		return SideBottom
	}
	return SideTop
}
