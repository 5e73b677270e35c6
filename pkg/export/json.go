package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// JSONCodec handles JSON arrays of records keyed by column name.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a report from JSON
func (c *JSONCodec) Parse(r io.Reader) (testpoint.Report, error) {
	var report testpoint.Report
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return report, nil
}

// Export exports a report to JSON
func (c *JSONCodec) Export(report testpoint.Report, w io.Writer) error {
	if report == nil {
		report = testpoint.Report{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
