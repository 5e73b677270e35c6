package testpoint_test

import (
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint/memboard"
)

// demoBoard mirrors the two-pad demo design: TP1 and TP2, one SMD pad each,
// on the top copper layer.
func demoBoard() *memboard.Board {
	b := memboard.New()
	tp1 := b.AddFootprint("TP1", 0)
	tp1.AddPad(memboard.Pad{
		ID:    "1",
		At:    testpoint.PointFromMM(113.25, 75.5),
		Net:   "GND",
		Class: "Default",
		Prop:  testpoint.PropertyTestPoint,
	})
	tp2 := b.AddFootprint("TP2", 0)
	tp2.AddPad(memboard.Pad{
		ID:    "1",
		At:    testpoint.PointFromMM(135.75, 104.1),
		Net:   "+3V3",
		Class: "Power",
		Prop:  testpoint.PropertyTestPoint,
	})
	return b
}
