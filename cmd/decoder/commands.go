package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/banshee-data/packet.decoder/internal/packet"
	"github.com/banshee-data/packet.decoder/internal/report"
	"github.com/banshee-data/packet.decoder/internal/security"
	"github.com/banshee-data/packet.decoder/internal/solver"
	"github.com/banshee-data/packet.decoder/internal/version"
)

const (
	treeChartFile = "packet_tree.html"
	histogramFile = "packet_types.png"
)

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the version sum and the evaluated value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := a.clock.Now()
			res, _, err := a.solve()
			if err != nil {
				return err
			}
			a.logger.Info("transmission solved",
				zap.Uint64("version_sum", res.VersionSum),
				zap.Uint64("value", res.Value),
				zap.Duration("elapsed", a.clock.Since(start)))

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			_, err = fmt.Fprintf(out, "part 1: %d\npart 2: %d\n", res.VersionSum, res.Value)
			return err
		},
	}
}

func (a *app) treeCmd() *cobra.Command {
	var sexpr bool
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the decoded packet hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, _, err := a.parse()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case a.jsonOutput():
				return writeJSON(out, report.NewNode(root))
			case sexpr:
				_, err = fmt.Fprintln(out, root.String())
				return err
			default:
				return report.WriteTree(out, root)
			}
		},
	}
	cmd.Flags().BoolVar(&sexpr, "sexpr", false, "print the tree as an S-expression")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print packet counts, depth and literal statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, consumed, total, err := a.parse()
			if err != nil {
				return err
			}
			s := report.Summarize(root, consumed, total)
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			return report.WriteSummary(cmd.OutOrStdout(), s)
		},
	}
}

func (a *app) chartCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write an HTML tree chart and a PNG type histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, consumed, total, err := a.parse()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.cfg.GetOutputDir()
			}
			if err := a.fs.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			s := report.Summarize(root, consumed, total)
			chartOpts := report.ChartOptions{
				Title:     fmt.Sprintf("Transmission %s", a.runID[:8]),
				Width:     a.cfg.GetChartWidth(),
				Height:    a.cfg.GetChartHeight(),
				Generated: a.clock.Now(),
			}

			treePath, err := a.writeReport(outDir, treeChartFile, func(w io.Writer) error {
				return report.RenderTreeHTML(w, root, s, chartOpts)
			})
			if err != nil {
				return err
			}
			histPath, err := a.writeReport(outDir, histogramFile, func(w io.Writer) error {
				return report.PlotTypeHistogram(w, s)
			})
			if err != nil {
				return err
			}

			a.logger.Info("charts written",
				zap.String("tree", treePath),
				zap.String("histogram", histPath))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", treePath, histPath)
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "decoder %s\n", version.String())
			return err
		},
	}
}

// parse loads the input and parses the root packet. It returns the bits
// consumed by the root and the transmission length.
func (a *app) parse() (*packet.Packet, int, int, error) {
	lines, err := a.lines()
	if err != nil {
		return nil, 0, 0, err
	}
	buf, err := solver.ParseInput(lines)
	if err != nil {
		return nil, 0, 0, err
	}
	root, consumed, err := packet.Parse(buf)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not parse packet: %w", err)
	}
	return root, consumed, buf.BitLength(), nil
}

func (a *app) solve() (solver.Result, *packet.Packet, error) {
	lines, err := a.lines()
	if err != nil {
		return solver.Result{}, nil, err
	}
	return solver.Solve(lines)
}

// writeReport creates name under dir and fills it with render.
func (a *app) writeReport(dir, name string, render func(io.Writer) error) (string, error) {
	path, err := security.ReportPath(dir, name)
	if err != nil {
		return "", fmt.Errorf("refusing to write %s: %w", name, err)
	}
	f, err := a.fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
