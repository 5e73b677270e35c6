// Package export reads and writes test-point reports and point lists.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// Importer reads a report in one format.
type Importer interface {
	Parse(r io.Reader) (testpoint.Report, error)
	Format() string
}

// Exporter writes a report in one format.
type Exporter interface {
	Export(report testpoint.Report, w io.Writer) error
	Format() string
}

// Codec reads and writes one report format.
type Codec interface {
	Importer
	Exporter
}

// Formats lists the report formats in the order shown in help text.
var Formats = []string{"csv", "json", "yaml"}

// ForFormat returns the codec for a format name.
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// FormatFromPath guesses a format from a file extension, falling back to def.
func FormatFromPath(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return def
	}
}
