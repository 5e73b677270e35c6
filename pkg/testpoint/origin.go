package testpoint

import (
	"math"

	"github.com/rs/zerolog"
)

// Decimals is the number of millimeter decimal places kept in positions.
const Decimals = 4

// Origin is the zero point positions are measured from.
type Origin struct {
	Point Point

	// Aux is true when Point is the board's auxiliary origin.
	Aux bool
}

// SelectOrigin picks the origin for settings. When the auxiliary origin is
// requested but the board has none, the board zero is used and a Notice is
// returned and logged. settings itself is left unchanged.
func SelectOrigin(log zerolog.Logger, board Board, settings Settings) (Origin, *Notice) {
	if !settings.UseAuxOrigin {
		return Origin{}, nil
	}

	aux, ok := board.AuxOrigin()
	if !ok {
		n := &Notice{
			Kind:    NoticeOriginUnavailable,
			Message: "no aux origin defined, using 0,0 as origin",
		}
		log.Info().Str("notice", string(n.Kind)).Msg(n.Message)
		return Origin{}, n
	}
	return Origin{Point: aux, Aux: true}, nil
}

// Transform converts a pad center to the report frame: relative to origin,
// y increasing upward, rounded to Decimals places. Both arguments are in mm.
func Transform(center, origin MM) MM {
	return MM{
		X: Round(center.X - origin.X),
		Y: Round(-(center.Y - origin.Y)),
	}
}

// PadPosition returns the report position of p measured from origin. The pad
// center is rounded before the transform so that values read back from a
// report match a fresh build.
func PadPosition(p Pad, origin Origin) MM {
	c := p.Center().MM()
	center := MM{X: Round(c.X), Y: Round(c.Y)}
	return Transform(center, origin.Point.MM())
}

// Round rounds v to Decimals places, half away from zero. Negative zero is
// normalized so it never prints as "-0".
func Round(v float64) float64 {
	const scale = 1e4
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
