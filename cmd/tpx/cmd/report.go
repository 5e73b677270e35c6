package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/export"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/query"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

type reportOptions struct {
	pcbPath   string
	points    string
	pads      []string
	queries   string
	auxOrigin bool
	strict    bool
	out       string
	format    string
	inplace   bool
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Extract test point positions from a board",
		Long: `Resolve pads on a KiCad board and write their positions, nets and sides.

Pads are selected in one of three ways:
  --points file.csv   rows with "source ref des" and "source pad" columns
  --pad REF:PAD       repeatable; a value may hold several comma separated pads
  --queries file      a list of REF:PAD entries, # starts a comment
Without any of them every pad with the test point fabrication property is used.

Positions are in mm with y increasing upward, measured from the board zero or,
with --aux-origin, from the auxiliary (drill/place) origin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.pcbPath, "pcb", "", "KiCad board file (.kicad_pcb)")
	cmd.Flags().StringVar(&opts.points, "points", "", "CSV file listing the pads to report")
	cmd.Flags().StringArrayVar(&opts.pads, "pad", nil, "pad to report as REF:PAD (repeatable)")
	cmd.Flags().StringVar(&opts.queries, "queries", "", "file of REF:PAD pad queries")
	cmd.Flags().BoolVar(&opts.auxOrigin, "aux-origin", false, "measure from the board's auxiliary origin")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when no pad carries the test point property")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format ("+strings.Join(export.Formats, "|")+"); default from --out extension or config")
	cmd.Flags().BoolVar(&opts.inplace, "inplace", false, "overwrite the --points file with the report")

	_ = cmd.MarkFlagRequired("pcb")
	cmd.MarkFlagsMutuallyExclusive("points", "pad")
	cmd.MarkFlagsMutuallyExclusive("points", "queries")
	cmd.MarkFlagsMutuallyExclusive("inplace", "out")

	return cmd
}

func runReport(rootOpts *RootOptions, opts *reportOptions, cmd *cobra.Command) error {
	cfg := rootOpts.Config
	log := rootOpts.Log.With().Str("pcb", opts.pcbPath).Logger()

	if opts.inplace && opts.points == "" {
		return NewExitError(ExitCommandError, "--inplace requires --points")
	}

	settings := testpoint.Settings{UseAuxOrigin: cfg.UseAuxOrigin}
	if cmd.Flags().Changed("aux-origin") {
		settings.UseAuxOrigin = opts.auxOrigin
	}
	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = opts.strict
	}

	out := opts.out
	if opts.inplace {
		out = opts.points
	}
	format := opts.format
	if format == "" {
		format = export.FormatFromPath(out, cfg.Output.Format)
	}
	codec, err := export.ForFormat(format)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --format", err)
	}

	queries, err := collectQueries(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read pad list", err)
	}

	board, err := pcb.Open(opts.pcbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load board", err)
	}
	log.Debug().
		Int("footprints", len(board.Board().Footprints)).
		Int("version", board.Board().Version).
		Msg("loaded board")

	var pads []testpoint.Pad
	if queries != nil {
		pads, err = testpoint.ResolveByQuery(log, queries, board)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to resolve pads", err)
		}
	} else {
		pads = testpoint.ResolveByProperty(log, board)
		if err := testpoint.RequireTestPoints(pads); err != nil {
			if strict {
				return WrapExitError(ExitFailure, "no test points", err)
			}
			log.Warn().Msg("no pads carry the test point property, report is empty")
		}
	}

	report, err := testpoint.BuildReport(log, board, settings, pads)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build report", err)
	}

	err = writeOutput(out, cmd.OutOrStdout(), func(w io.Writer) error {
		return codec.Export(report, w)
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}

	if out != "" {
		log.Info().
			Str("out", out).
			Str("format", codec.Format()).
			Int("points", len(report)).
			Msg("wrote report")
	}
	return nil
}

// collectQueries returns nil when no explicit pad list was given, which
// selects pads by property.
func collectQueries(opts *reportOptions) ([]testpoint.PadQuery, error) {
	if opts.points != "" {
		return readPoints(opts.points)
	}
	if len(opts.pads) == 0 && opts.queries == "" {
		return nil, nil
	}

	parser, err := query.NewParser()
	if err != nil {
		return nil, err
	}
	queries := []testpoint.PadQuery{}
	if opts.queries != "" {
		fromFile, err := parser.ParseFile(opts.queries)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.queries, err)
		}
		queries = append(queries, fromFile...)
	}
	fromFlags, err := parser.ParseArgs(opts.pads)
	if err != nil {
		return nil, err
	}
	return append(queries, fromFlags...), nil
}
