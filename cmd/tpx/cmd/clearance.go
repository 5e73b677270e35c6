package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// NewClearanceCommand creates the clearance command.
func NewClearanceCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		reportPath string
		limit      float64
	)

	cmd := &cobra.Command{
		Use:   "clearance",
		Short: "Find probes closer together than a minimum distance",
		Long: `List every pair of report records whose centers are closer than --min mm.
Exits with status 1 when any pair is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") {
				limit = rootOpts.Config.Clearance.MinMM
			}
			if limit < 0 {
				return NewExitError(ExitCommandError, "--min must not be negative")
			}

			report, err := readReport(reportPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read report", err)
			}

			pairs := testpoint.Clearances(report, limit)
			rootOpts.Log.Debug().
				Float64("min_mm", limit).
				Int("records", len(report)).
				Int("violations", len(pairs)).
				Msg("checked probe clearance")

			if len(pairs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "All %d probes are at least %s mm apart\n", len(report), testpoint.FormatMM(limit))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "PROBE\tPROBE\tDISTANCE (mm)\n")
			for _, p := range pairs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.A, p.B, testpoint.FormatMM(testpoint.Round(p.Distance)))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return NewExitError(ExitFailure, fmt.Sprintf("%d probe pair(s) closer than %s mm", len(pairs), testpoint.FormatMM(limit)))
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "report file (csv, json or yaml)")
	cmd.Flags().Float64Var(&limit, "min", 0, "minimum center distance in mm (default from config)")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}
