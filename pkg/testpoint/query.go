package testpoint

import (
	"fmt"
	"strconv"
)

// PadQuery names one pad by reference designator and pad identifier.
type PadQuery struct {
	Reference string
	Pad       string
}

// Query builds a PadQuery with a string pad identifier.
func Query(ref, pad string) PadQuery {
	return PadQuery{Reference: ref, Pad: pad}
}

// QueryInt builds a PadQuery with a numeric pad identifier. Numeric identifiers
// are matched in their decimal string form.
func QueryInt(ref string, pad int) PadQuery {
	return PadQuery{Reference: ref, Pad: strconv.Itoa(pad)}
}

func (q PadQuery) String() string {
	return fmt.Sprintf("%s:%s", q.Reference, q.Pad)
}
