package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceProbe/internal/config"
	"github.com/OpenTraceLab/OpenTraceProbe/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "0.1.0"

// RootOptions holds global flags and the state PersistentPreRunE builds from
// them for subcommands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool

	Config *config.Config
	Log    zerolog.Logger
}

// NewRootCommand creates the tpx command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "tpx",
		Short: "Test point extraction for KiCad boards",
		Long: `tpx extracts test point positions from KiCad boards for probe
and bed-of-nails fixture design.

Examples:
  tpx report --pcb board.kicad_pcb                       # All pads marked as test points
  tpx report --pcb board.kicad_pcb --pad TP1:1 --pad J1:2
  tpx report --pcb board.kicad_pcb --points points.csv --inplace --aux-origin
  tpx distance --report report.csv --name TP1-1
  tpx clearance --report report.csv --min 2.0
  tpx coverage --pcb board.kicad_pcb --report report.csv
  tpx scad --report report.csv`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewDistanceCommand(opts))
	cmd.AddCommand(NewClearanceCommand(opts))
	cmd.AddCommand(NewCoverageCommand(opts))
	cmd.AddCommand(NewScadCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	switch {
	case o.Verbose:
		cfg.Log.Level = "debug"
	case o.LogLevel != "":
		cfg.Log.Level = o.LogLevel
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return WrapExitError(ExitCommandError, "invalid --log-level", err)
	}

	o.Config = cfg
	o.Log = logging.Build(cfg.Logging(cmd.Name()), cmd.ErrOrStderr())
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return GetExitCode(err)
}
