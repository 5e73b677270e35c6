package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// NewDistanceCommand creates the distance command.
func NewDistanceCommand(rootOpts *RootOptions) *cobra.Command {
	var reportPath, name string

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Distance from one probe to every other probe",
		Long: `Print the center distance in mm from the named report record to every
record in the report. Records are named REF-PAD, for example TP1-1. When a
name repeats, later records are named REF-PAD#2, REF-PAD#3 and so on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := readReport(reportPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read report", err)
			}

			distances, err := testpoint.ProbeDistances(name, report)
			if err != nil {
				return WrapExitError(ExitCommandError, "distance", err)
			}
			rootOpts.Log.Debug().Str("name", name).Int("records", len(report)).Msg("computed probe distances")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "PROBE\tDISTANCE (mm)\n")
			for _, n := range report.Names() {
				fmt.Fprintf(tw, "%s\t%s\n", n, testpoint.FormatMM(testpoint.Round(distances[n])))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "report file (csv, json or yaml)")
	cmd.Flags().StringVar(&name, "name", "", "record to measure from, as REF-PAD")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
