// Command decoder reads a hexadecimal transmission, parses its packet tree,
// and reports the version sum, the evaluated value, and diagnostics.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/banshee-data/packet.decoder/internal/config"
	"github.com/banshee-data/packet.decoder/internal/fsutil"
	"github.com/banshee-data/packet.decoder/internal/input"
	"github.com/banshee-data/packet.decoder/internal/monitoring"
	"github.com/banshee-data/packet.decoder/internal/packet"
	"github.com/banshee-data/packet.decoder/internal/timeutil"
	"github.com/banshee-data/packet.decoder/internal/version"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	// Flags
	configPath string
	inputPath  string
	hex        string
	format     string
	verbose    bool
	trace      bool

	fs     fsutil.FileSystem
	clock  timeutil.Clock
	cfg    *config.DecoderConfig
	logger *zap.Logger
	runID  string
}

func newRootCmd(fsys fsutil.FileSystem, clock timeutil.Clock) *cobra.Command {
	a := &app{fs: fsys, clock: clock}

	root := &cobra.Command{
		Use:   "decoder",
		Short: "Decode packet transmissions",
		Long: `decoder reads a hexadecimal transmission, parses the packet hierarchy it
encodes, and answers both questions about it: the sum of every packet
version and the value of the expression the packets describe.

The transmission comes from --hex, --input, $AOC_INPUT, or the input_path
configured in --config, in that order.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML or JSON config file")
	pf.StringVarP(&a.inputPath, "input", "i", "", "path to the input file")
	pf.StringVar(&a.hex, "hex", "", "transmission given inline as hex")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.trace, "trace", false, "log every packet header while parsing")

	root.AddCommand(
		a.solveCmd(),
		a.treeCmd(),
		a.statsCmd(),
		a.chartCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration and installs the loggers for this run.
func (a *app) setup() error {
	if a.configPath != "" {
		cfg, err := config.LoadDecoderConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		a.cfg = config.EmptyDecoderConfig()
		a.cfg.ApplyEnvOverrides()
		if err := a.cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	if a.format == "" {
		a.format = a.cfg.GetOutputFormat()
	}
	if a.format != "text" && a.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", a.format)
	}

	level := a.cfg.GetLogLevel()
	if a.verbose || a.trace {
		level = "debug"
	}
	logger, err := monitoring.NewLogger(level, a.cfg.GetLogFormat())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.runID = uuid.NewString()
	a.logger = logger.With(zap.String("run_id", a.runID))
	monitoring.SetLogger(a.logger)

	var trace *zap.Logger
	if a.trace {
		trace = a.logger
	}
	packet.SetLoggers(a.logger, a.logger, trace)
	return nil
}

// lines returns the transmission lines for this run.
func (a *app) lines() ([]string, error) {
	if a.hex != "" {
		return []string{a.hex}, nil
	}
	loader := input.NewLoader(a.fs)
	if a.inputPath != "" {
		return loader.LoadLines(a.inputPath)
	}
	return loader.Load(a.cfg.GetInputPath())
}

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.format, "json")
}

func main() {
	if err := newRootCmd(fsutil.OSFileSystem{}, timeutil.RealClock{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
