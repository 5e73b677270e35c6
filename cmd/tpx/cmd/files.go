package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/export"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// readReport loads a report, picking the codec from the file extension.
func readReport(path string) (testpoint.Report, error) {
	codec, err := export.ForFormat(export.FormatFromPath(path, "csv"))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	report, err := codec.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", path, err)
	}
	return report, nil
}

// readPoints loads the pad list of a points CSV.
func readPoints(path string) ([]testpoint.PadQuery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file: %w", err)
	}
	defer f.Close()

	queries, err := export.ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("points %s: %w", path, err)
	}
	return queries, nil
}

// writeOutput renders with write and sends the result to path, or to stdout
// when path is empty. Output is rendered in memory first so a failed render
// never truncates an existing file.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}

	if path == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
