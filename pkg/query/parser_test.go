package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

func TestParseString(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  []testpoint.PadQuery
	}{
		{
			name:  "single",
			input: "TP1:1",
			want:  []testpoint.PadQuery{{Reference: "TP1", Pad: "1"}},
		},
		{
			name:  "comma separated",
			input: "TP1:1,TP2:1",
			want:  []testpoint.PadQuery{{Reference: "TP1", Pad: "1"}, {Reference: "TP2", Pad: "1"}},
		},
		{
			name:  "whitespace separated",
			input: "TP1:1 TP2:1\nU3:A3",
			want: []testpoint.PadQuery{
				{Reference: "TP1", Pad: "1"},
				{Reference: "TP2", Pad: "1"},
				{Reference: "U3", Pad: "A3"},
			},
		},
		{
			name:  "quoted reference keeps spaces",
			input: `"J 1":"A 3"`,
			want:  []testpoint.PadQuery{{Reference: "J 1", Pad: "A 3"}},
		},
		{
			name:  "net-like names",
			input: "PS+3V3:EP",
			want:  []testpoint.PadQuery{{Reference: "PS+3V3", Pad: "EP"}},
		},
		{
			name:  "comments and trailing comma",
			input: "# probes\nTP1:1, # first\nTP2:1,",
			want:  []testpoint.PadQuery{{Reference: "TP1", Pad: "1"}, {Reference: "TP2", Pad: "1"}},
		},
		{
			name:  "case preserved",
			input: "tp1:a",
			want:  []testpoint.PadQuery{{Reference: "tp1", Pad: "a"}},
		},
		{
			name:  "empty",
			input: "  # nothing here\n",
			want:  []testpoint.PadQuery{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing pad", input: "TP1"},
		{name: "missing colon", input: "TP1 1"},
		{name: "double colon", input: "TP1:1:2"},
		{name: "empty quoted reference", input: `"":1`},
		{name: "empty quoted pad", input: `TP1:""`},
		{name: "leading comma", input: ",TP1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseString(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseArgs(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	got, err := parser.ParseArgs([]string{"TP2:1", "TP1:1,J1:2"})
	require.NoError(t, err)
	assert.Equal(t, []testpoint.PadQuery{
		testpoint.Query("TP2", "1"),
		testpoint.Query("TP1", "1"),
		testpoint.Query("J1", "2"),
	}, got)

	_, err = parser.ParseArgs([]string{"TP1:1", "bad"})
	assert.ErrorContains(t, err, `"bad"`)
}

func TestParseFile(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	got, err := parser.ParseFile("testdata/fixture.tpq")
	require.NoError(t, err)
	assert.Equal(t, []testpoint.PadQuery{
		testpoint.Query("TP1", "1"),
		testpoint.Query("TP2", "1"),
		testpoint.QueryInt("J1", 1),
		testpoint.QueryInt("J1", 2),
	}, got)

	_, err = parser.ParseFile("testdata/missing.tpq")
	assert.Error(t, err)
}
