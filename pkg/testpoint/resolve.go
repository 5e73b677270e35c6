package testpoint

import (
	"github.com/rs/zerolog"
)

// ResolveByQuery maps every query to exactly one pad. The result has the same
// length and order as queries. The first query that cannot be resolved aborts
// the whole batch.
//
// Within a footprint the first pad whose identifier matches wins. Duplicate
// identifiers are not an error.
func ResolveByQuery(log zerolog.Logger, queries []PadQuery, board Board) ([]Pad, error) {
	pads := make([]Pad, 0, len(queries))
	for _, q := range queries {
		pad, err := resolveOne(log, q, board)
		if err != nil {
			return nil, err
		}
		pads = append(pads, pad)
	}
	log.Debug().Int("queries", len(queries)).Msg("resolved pad queries")
	return pads, nil
}

func resolveOne(log zerolog.Logger, q PadQuery, board Board) (Pad, error) {
	footprints := board.FootprintsByReference(q.Reference)
	switch len(footprints) {
	case 0:
		return nil, &ReferenceNotFoundError{Reference: q.Reference}
	case 1:
	default:
		return nil, &AmbiguousReferenceError{Reference: q.Reference, Count: len(footprints)}
	}

	fp := footprints[0]
	var found Pad
	matches := 0
	for _, pad := range fp.Pads() {
		if pad.Number() != q.Pad {
			continue
		}
		if found == nil {
			found = pad
		}
		matches++
	}

	if found == nil {
		return nil, &PadNotFoundError{
			Reference: q.Reference,
			Requested: q.Pad,
			Available: padNumbers(fp),
		}
	}
	if matches > 1 {
		log.Debug().
			Str("ref", q.Reference).
			Str("pad", q.Pad).
			Int("matches", matches).
			Msg("duplicate pad identifier, using first")
	}
	return found, nil
}

func padNumbers(fp Footprint) []string {
	pads := fp.Pads()
	nums := make([]string, len(pads))
	for i, p := range pads {
		nums[i] = p.Number()
	}
	return nums
}

// ResolveByProperty returns every pad flagged as a fabrication test point, in
// board-native order. An empty selection is not an error; see RequireTestPoints.
func ResolveByProperty(log zerolog.Logger, board Board) []Pad {
	pads := []Pad{}
	for _, p := range board.Pads() {
		if p.Property() != PropertyTestPoint {
			continue
		}
		pads = append(pads, p)
	}
	log.Debug().Int("pads", len(pads)).Msg("selected test point pads")
	return pads
}

// RequireTestPoints turns an empty property selection into ErrEmptyPropertySelection.
func RequireTestPoints(pads []Pad) error {
	if len(pads) == 0 {
		return ErrEmptyPropertySelection
	}
	return nil
}
