// Package testpoint resolves named pads on a circuit board and builds test-point
// reports for probe and fixture generation.
//
// # Overview
//
// The pipeline has three stages:
//  1. Resolve: map PadQuery values (reference designator + pad identifier) or the
//     board's test-point property flags to concrete Pad handles.
//  2. Build: derive the fixed column set for every pad. Positions are converted
//     from native board units into millimeters relative to the selected origin,
//     with y increasing upward to match fabrication drawings.
//  3. Measure (optional): probe-to-probe distances and clearance checks.
//
// # Usage
//
//	log := zerolog.Nop()
//	pads, err := testpoint.ResolveByQuery(log, []testpoint.PadQuery{
//		testpoint.QueryInt("TP1", 1),
//		testpoint.QueryInt("TP2", 1),
//	}, board)
//	if err != nil {
//		return err
//	}
//	report, err := testpoint.BuildReport(log, board, testpoint.Settings{UseAuxOrigin: true}, pads)
//
// # Errors
//
// Resolution and report building are all-or-nothing. The first failing query
// aborts the batch and no partial pad list or report is returned. Callers that
// want per-query results resolve one query at a time.
//
// The board itself is never parsed here; see package pcb for a KiCad loader and
// package memboard for an in-memory board.
package testpoint
