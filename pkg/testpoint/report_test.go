package testpoint_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint/memboard"
)

func buildDemo(t *testing.T, b testpoint.Board, settings testpoint.Settings) testpoint.Report {
	t.Helper()
	pads, err := testpoint.ResolveByQuery(zerolog.Nop(), []testpoint.PadQuery{
		testpoint.QueryInt("TP1", 1),
		testpoint.QueryInt("TP2", 1),
	}, b)
	require.NoError(t, err)

	report, err := testpoint.BuildReport(zerolog.Nop(), b, settings, pads)
	require.NoError(t, err)
	require.Len(t, report, 2)
	return report
}

func TestBuildReportPositions(t *testing.T) {
	withAux := demoBoard()
	withAux.SetAuxOrigin(testpoint.PointFromMM(100, 100))

	tests := []struct {
		name     string
		board    testpoint.Board
		settings testpoint.Settings
		want     [2]testpoint.MM
	}{
		{
			name:  "board zero",
			board: demoBoard(),
			want:  [2]testpoint.MM{{X: 113.25, Y: -75.5}, {X: 135.75, Y: -104.1}},
		},
		{
			name:     "aux origin requested but missing",
			board:    demoBoard(),
			settings: testpoint.Settings{UseAuxOrigin: true},
			want:     [2]testpoint.MM{{X: 113.25, Y: -75.5}, {X: 135.75, Y: -104.1}},
		},
		{
			name:  "aux origin defined but not requested",
			board: withAux,
			want:  [2]testpoint.MM{{X: 113.25, Y: -75.5}, {X: 135.75, Y: -104.1}},
		},
		{
			name:     "aux origin at 100,100",
			board:    withAux,
			settings: testpoint.Settings{UseAuxOrigin: true},
			want:     [2]testpoint.MM{{X: 13.25, Y: 24.5}, {X: 35.75, Y: -4.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := buildDemo(t, tt.board, tt.settings)
			for i, want := range tt.want {
				assert.InDelta(t, want.X, report[i].X, 1e-9, "record %d x", i)
				assert.InDelta(t, want.Y, report[i].Y, 1e-9, "record %d y", i)
			}
		})
	}
}

func TestBuildReportFields(t *testing.T) {
	report := buildDemo(t, demoBoard(), testpoint.Settings{})

	assert.Equal(t, testpoint.Record{
		SourceRefDes:  "TP1",
		SourcePad:     "1",
		Net:           "GND",
		NetClass:      "Default",
		Side:          "TOP",
		X:             113.25,
		Y:             -75.5,
		PadType:       "SMT",
		FootprintSide: "TOP",
	}, report[0])
	assert.Equal(t, "TP1-1", report[0].Name())
	assert.Equal(t, []string{"TP2", "1", "+3V3", "Power", "TOP", "135.75", "-104.1", "SMT", "TOP"}, report[1].Values())
}

func TestBuildReportSinglePad(t *testing.T) {
	b := memboard.New()
	b.AddFootprint("J7", 0).AddPad(memboard.Pad{ID: "A3", At: testpoint.PointFromMM(1, 2)})

	pads, err := testpoint.ResolveByQuery(zerolog.Nop(), []testpoint.PadQuery{testpoint.Query("J7", "A3")}, b)
	require.NoError(t, err)
	report, err := testpoint.BuildReport(zerolog.Nop(), b, testpoint.Settings{}, pads)
	require.NoError(t, err)

	require.Len(t, report, 1)
	assert.Equal(t, "J7", report[0].SourceRefDes)
	assert.Equal(t, "A3", report[0].SourcePad)
	assert.Empty(t, report[0].Net)
	assert.Empty(t, report[0].NetClass)
}

func TestBuildReportEmpty(t *testing.T) {
	report, err := testpoint.BuildReport(zerolog.Nop(), memboard.New(), testpoint.Settings{}, nil)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestBuildReportInternalConsistency(t *testing.T) {
	b := demoBoard()
	good := b.Pads()[0]

	tests := []struct {
		name  string
		pads  []testpoint.Pad
		index int
	}{
		{name: "nil first handle", pads: []testpoint.Pad{nil, good}, index: 0},
		{name: "orphan pad", pads: []testpoint.Pad{good, &memboard.Pad{ID: "9"}}, index: 1},
		{name: "typed nil pad", pads: []testpoint.Pad{good, good, (*memboard.Pad)(nil)}, index: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := testpoint.BuildReport(zerolog.Nop(), b, testpoint.Settings{}, tt.pads)
			assert.Nil(t, report)

			var ice *testpoint.InternalConsistencyError
			require.ErrorAs(t, err, &ice)
			assert.Equal(t, tt.index, ice.Index)
			assert.ErrorIs(t, err, testpoint.ErrInternalConsistency)
		})
	}
}

func TestPadSide(t *testing.T) {
	tests := []struct {
		name          string
		footprintSide int
		padLayer      int
		wantSide      string
		wantFootprint string
	}{
		{name: "top footprint, front pad", footprintSide: 0, padLayer: 0, wantSide: "TOP", wantFootprint: "TOP"},
		{name: "top footprint, back pad", footprintSide: 0, padLayer: 31, wantSide: "BOTTOM", wantFootprint: "TOP"},
		{name: "flipped footprint, back pad", footprintSide: 1, padLayer: 31, wantSide: "BOTTOM", wantFootprint: "BOTTOM"},
		{name: "flipped footprint, matching layer", footprintSide: 1, padLayer: 1, wantSide: "TOP", wantFootprint: "BOTTOM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := memboard.New()
			pad := b.AddFootprint("U1", tt.footprintSide).AddPad(memboard.Pad{ID: "1", LayerID: tt.padLayer})

			assert.Equal(t, tt.wantSide, testpoint.PadSide(pad))
			assert.Equal(t, tt.wantFootprint, testpoint.FootprintSide(pad))
		})
	}
}

func TestPadType(t *testing.T) {
	b := memboard.New()
	fp := b.AddFootprint("J1", 0)

	assert.Equal(t, "THRU", testpoint.PadType(fp.AddPad(memboard.Pad{ID: "1", Drilled: true})))
	assert.Equal(t, "SMT", testpoint.PadType(fp.AddPad(memboard.Pad{ID: "2"})))
}

func TestColumnOrder(t *testing.T) {
	assert.Equal(t, []string{
		"source ref des", "source pad", "net", "net class", "side",
		"x", "y", "pad type", "footprint side",
	}, testpoint.ColumnNames())
}
