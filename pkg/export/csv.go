package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Column names the points reader requires.
const (
	ColumnRefDes = "source ref des"
	ColumnPad    = "source pad"
)

// CSVCodec handles report CSV files with a header row of column names.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

// Export writes the header and one row per record in column order.
func (c *CSVCodec) Export(report testpoint.Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(testpoint.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range report {
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.Name(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// Parse reads a report written by Export or edited by hand. Columns are
// matched by name, so their order and any extra columns do not matter. Only
// the reference and pad columns are required.
func (c *CSVCodec) Parse(r io.Reader) (testpoint.Report, error) {
	rows, header, err := readTable(r)
	if err != nil {
		return nil, err
	}

	report := make(testpoint.Report, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		rec := testpoint.Record{
			SourceRefDes:  header.get(row, ColumnRefDes),
			SourcePad:     NormalizePad(header.get(row, ColumnPad)),
			Net:           header.get(row, "net"),
			NetClass:      header.get(row, "net class"),
			Side:          header.get(row, "side"),
			PadType:       header.get(row, "pad type"),
			FootprintSide: header.get(row, "footprint side"),
		}
		if rec.X, err = header.float(row, "x"); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.Y, err = header.float(row, "y"); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		report = append(report, rec)
	}
	return report, nil
}

// ReadPoints reads the reference and pad columns of a points file into
// queries, in row order. Rows with both cells blank are skipped.
func ReadPoints(r io.Reader) ([]testpoint.PadQuery, error) {
	rows, header, err := readTable(r)
	if err != nil {
		return nil, err
	}

	queries := make([]testpoint.PadQuery, 0, len(rows))
	for i, row := range rows {
		ref := header.get(row, ColumnRefDes)
		pad := NormalizePad(header.get(row, ColumnPad))
		switch {
		case ref == "" && pad == "":
			continue
		case ref == "" || pad == "":
			return nil, fmt.Errorf("line %d: both %q and %q are required", i+2, ColumnRefDes, ColumnPad)
		}
		queries = append(queries, testpoint.Query(ref, pad))
	}
	return queries, nil
}

// NormalizePad turns integral numeric cells such as "1.0" into "1", the way a
// spreadsheet export would have stored pad 1. Other identifiers are trimmed
// and otherwise kept as written.
func NormalizePad(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

type csvHeader map[string]int

func (h csvHeader) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (h csvHeader) float(row []string, name string) (float64, error) {
	s := h.get(row, name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func readTable(r io.Reader) ([][]string, csvHeader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("empty CSV file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	header := make(csvHeader, len(names))
	for i, name := range names {
		// Excel writes a BOM in front of the first header cell
		name = strings.TrimPrefix(name, "\ufeff")
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{ColumnRefDes, ColumnPad} {
		if _, ok := header[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, header, nil
}
