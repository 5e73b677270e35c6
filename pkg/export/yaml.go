package export

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// YAMLCodec handles YAML report import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

type yamlReport struct {
	Points testpoint.Report `yaml:"points"`
}

// Parse imports a report from YAML
func (c *YAMLCodec) Parse(r io.Reader) (testpoint.Report, error) {
	var yr yamlReport
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&yr); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if yr.Points == nil {
		yr.Points = testpoint.Report{}
	}
	return yr.Points, nil
}

// Export exports a report to YAML
func (c *YAMLCodec) Export(report testpoint.Report, w io.Writer) error {
	if report == nil {
		report = testpoint.Report{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(yamlReport{Points: report}); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
