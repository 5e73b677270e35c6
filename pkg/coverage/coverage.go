// Package coverage compares the nets of a board with the nets reached by a
// test-point report.
package coverage

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// NetLister provides a board's named nets in board order.
type NetLister interface {
	NetNames() []string
}

// NetPadLister is implemented by boards that can name the pads on a net.
type NetPadLister interface {
	NetPads(net string) []string
}

// Net is one net and the report records that probe it.
type Net struct {
	Name   string
	Points []string
}

// Result is the net coverage of one report.
type Result struct {
	// Covered and Uncovered follow board net order.
	Covered   []Net
	Uncovered []string

	// Unknown lists nets named in the report but absent from the board, in
	// report order.
	Unknown []string

	// Candidates maps each uncovered net to the pads a probe could land on.
	// It is only filled when the board is a NetPadLister.
	Candidates map[string][]string
}

// Ratio returns the covered fraction of board nets, 1 for a board without nets.
func (r Result) Ratio() float64 {
	total := len(r.Covered) + len(r.Uncovered)
	if total == 0 {
		return 1
	}
	return float64(len(r.Covered)) / float64(total)
}

// Compute matches report records to board nets by name. Records with an
// empty net are ignored. Boards that implement NetPadLister also get the pads
// of every uncovered net listed in Result.Candidates.
func Compute(board NetLister, report testpoint.Report) Result {
	names := board.NetNames()
	onBoard := make(map[string]bool, len(names))
	for _, n := range names {
		onBoard[n] = true
	}

	recordNames := report.Names()
	points := make(map[string][]string)
	var res Result
	for i, rec := range report {
		if rec.Net == "" {
			continue
		}
		if !onBoard[rec.Net] {
			if _, seen := points[rec.Net]; !seen {
				res.Unknown = append(res.Unknown, rec.Net)
			}
		}
		points[rec.Net] = append(points[rec.Net], recordNames[i])
	}

	for _, n := range names {
		if p, ok := points[n]; ok {
			res.Covered = append(res.Covered, Net{Name: n, Points: p})
		} else {
			res.Uncovered = append(res.Uncovered, n)
		}
	}

	if lister, ok := board.(NetPadLister); ok && len(res.Uncovered) > 0 {
		res.Candidates = make(map[string][]string, len(res.Uncovered))
		for _, n := range res.Uncovered {
			res.Candidates[n] = lister.NetPads(n)
		}
	}
	return res
}

// Write prints a human readable summary.
func Write(w io.Writer, res Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "NET\tSTATUS\tPOINTS\tPADS\n")
	for _, n := range res.Covered {
		fmt.Fprintf(tw, "%s\tcovered\t%d\t%s\n", n.Name, len(n.Points), strings.Join(n.Points, " "))
	}
	for _, n := range res.Uncovered {
		fmt.Fprintf(tw, "%s\tMISSING\t0\t%s\n", n, strings.Join(res.Candidates[n], " "))
	}
	for _, n := range res.Unknown {
		fmt.Fprintf(tw, "%s\tnot on board\t-\t\n", n)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d/%d nets covered (%.1f%%)\n",
		len(res.Covered), len(res.Covered)+len(res.Uncovered), res.Ratio()*100)
	return err
}
