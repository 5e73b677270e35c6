package cmd

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/export"
)

// NewScadCommand creates the scad command.
func NewScadCommand(rootOpts *RootOptions) *cobra.Command {
	var reportPath, out string

	cmd := &cobra.Command{
		Use:   "scad",
		Short: "Write a report as an OpenSCAD probe list",
		Long: `Render the report as an OpenSCAD function, get_design_probes(), returning
one [x, y, z] entry per probe for fixture models. The output defaults to the
report path with a .scad extension; use --out - for stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := readReport(reportPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read report", err)
			}

			switch out {
			case "":
				out = strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + ".scad"
			case "-":
				out = ""
			}

			err = writeOutput(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return export.WriteOpenSCAD(report, w)
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to write OpenSCAD file", err)
			}
			if out != "" {
				rootOpts.Log.Info().Str("out", out).Int("probes", len(report)).Msg("wrote OpenSCAD probes")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "report file (csv, json or yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <report>.scad, - for stdout)")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}
