package testpoint_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint/memboard"
)

func probeReport() testpoint.Report {
	return testpoint.Report{
		{SourceRefDes: "TP1", SourcePad: "1", X: 0, Y: 0},
		{SourceRefDes: "TP2", SourcePad: "1", X: 3, Y: 4},
		{SourceRefDes: "TP3", SourcePad: "1", X: -1.5, Y: 2},
	}
}

func TestProbeDistances(t *testing.T) {
	report := probeReport()

	d, err := testpoint.ProbeDistances("TP1-1", report)
	require.NoError(t, err)
	assert.Len(t, d, 3)
	assert.Equal(t, 0.0, d["TP1-1"])
	assert.InDelta(t, 5.0, d["TP2-1"], 1e-12)
	assert.InDelta(t, 2.5, d["TP3-1"], 1e-12)
}

func TestProbeDistancesSymmetric(t *testing.T) {
	report := probeReport()
	for _, a := range report {
		da, err := testpoint.ProbeDistances(a.Name(), report)
		require.NoError(t, err)
		assert.Equal(t, 0.0, da[a.Name()])

		for _, b := range report {
			db, err := testpoint.ProbeDistances(b.Name(), report)
			require.NoError(t, err)
			assert.Equal(t, da[b.Name()], db[a.Name()], "%s <-> %s", a.Name(), b.Name())
		}
	}
}

func TestProbeDistancesUnknownName(t *testing.T) {
	d, err := testpoint.ProbeDistances("TP9-1", probeReport())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, testpoint.ErrRecordNotFound)
}

func TestClearances(t *testing.T) {
	pairs := testpoint.Clearances(probeReport(), 3)
	require.Len(t, pairs, 1)
	assert.Equal(t, "TP1-1", pairs[0].A)
	assert.Equal(t, "TP3-1", pairs[0].B)
	assert.InDelta(t, 2.5, pairs[0].Distance, 1e-12)

	assert.Empty(t, testpoint.Clearances(probeReport(), 1))
}

// shieldReport has two test-point pads sharing the number "SH" on J1.
func shieldReport(t *testing.T) testpoint.Report {
	t.Helper()
	b := memboard.New()
	j1 := b.AddFootprint("J1", 0)
	j1.AddPad(memboard.Pad{ID: "SH", At: testpoint.PointFromMM(0, 0), Prop: testpoint.PropertyTestPoint})
	j1.AddPad(memboard.Pad{ID: "SH", At: testpoint.PointFromMM(10, 0), Prop: testpoint.PropertyTestPoint})
	b.AddFootprint("TP1", 0).AddPad(memboard.Pad{ID: "1", At: testpoint.PointFromMM(0, 5), Prop: testpoint.PropertyTestPoint})

	pads := testpoint.ResolveByProperty(zerolog.Nop(), b)
	report, err := testpoint.BuildReport(zerolog.Nop(), b, testpoint.Settings{}, pads)
	require.NoError(t, err)
	require.Len(t, report, 3)
	return report
}

func TestReportNames(t *testing.T) {
	assert.Equal(t, []string{"J1-SH", "J1-SH#2", "TP1-1"}, shieldReport(t).Names())

	report := testpoint.Report{
		{SourceRefDes: "J1", SourcePad: "SH#2"},
		{SourceRefDes: "J1", SourcePad: "SH"},
		{SourceRefDes: "J1", SourcePad: "SH"},
	}
	assert.Equal(t, []string{"J1-SH#2", "J1-SH", "J1-SH#3"}, report.Names())
}

func TestProbeDistancesRepeatedNames(t *testing.T) {
	report := shieldReport(t)

	tests := []struct {
		name string
		want map[string]float64
	}{
		{name: "J1-SH", want: map[string]float64{"J1-SH": 0, "J1-SH#2": 10, "TP1-1": 5}},
		{name: "J1-SH#2", want: map[string]float64{"J1-SH": 10, "J1-SH#2": 0, "TP1-1": 11.180339887498949}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := testpoint.ProbeDistances(tt.name, report)
			require.NoError(t, err)
			require.Len(t, d, len(tt.want))
			for name, want := range tt.want {
				assert.InDelta(t, want, d[name], 1e-9, name)
			}
		})
	}
}

func TestClearancesRepeatedNames(t *testing.T) {
	pairs := testpoint.Clearances(shieldReport(t), 6)
	require.Len(t, pairs, 1)
	assert.Equal(t, testpoint.Pair{A: "J1-SH", B: "TP1-1", Distance: 5}, pairs[0])

	pairs = testpoint.Clearances(shieldReport(t), 10.5)
	require.Len(t, pairs, 2)
	assert.Equal(t, "J1-SH", pairs[0].A)
	assert.Equal(t, "J1-SH#2", pairs[0].B)
}
