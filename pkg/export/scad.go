package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// scadTemplate renders a probe list for fixture models. Heights are
// parameters of the generated function so the model can tune them.
var scadTemplate = template.Must(template.New("probes").Funcs(template.FuncMap{
	"mm": testpoint.FormatMM,
}).Parse(`function get_design_probes(ground_height = -1, signal_height_dz = -0.5, power_height_dz = -1) = [
{{- range .}}
    [{{mm .X}}, {{mm .Y}}, ground_height + power_height_dz],  //  {{.Net}} {{.SourceRefDes}}
{{- end}}
];
`))

// WriteOpenSCAD writes the report as an OpenSCAD function returning one
// [x, y, z] probe per record.
func WriteOpenSCAD(report testpoint.Report, w io.Writer) error {
	if err := scadTemplate.Execute(w, report); err != nil {
		return fmt.Errorf("failed to render OpenSCAD: %w", err)
	}
	return nil
}
