package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/coverage"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/kicad/pcb"
)

// NewCoverageCommand creates the coverage command.
func NewCoverageCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pcbPath    string
		reportPath string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show which board nets a report probes",
		Long: `Compare the named nets of a board with the nets reached by a test point
report. With --strict (or strict: true in the config) any uncovered net makes
the command exit with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = rootOpts.Config.Strict
			}

			board, err := pcb.Open(pcbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load board", err)
			}
			report, err := readReport(reportPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read report", err)
			}

			res := coverage.Compute(board, report)
			rootOpts.Log.Debug().
				Int("covered", len(res.Covered)).
				Int("uncovered", len(res.Uncovered)).
				Msg("computed net coverage")
			for _, n := range res.Unknown {
				rootOpts.Log.Warn().Str("net", n).Msg("report net not found on board")
			}

			if err := coverage.Write(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if strict && len(res.Uncovered) > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d net(s) without a test point", len(res.Uncovered)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pcbPath, "pcb", "", "KiCad board file (.kicad_pcb)")
	cmd.Flags().StringVar(&reportPath, "report", "", "report file (csv, json or yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any net is uncovered")
	_ = cmd.MarkFlagRequired("pcb")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}
