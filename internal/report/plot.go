package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram image size.
const (
	PLOT_WIDTH  = 8 * vg.Inch
	PLOT_HEIGHT = 4 * vg.Inch
)

// PlotTypeHistogram writes a PNG bar chart of packet counts per type.
func PlotTypeHistogram(w io.Writer, s Summary) error {
	p := plot.New()
	p.Title.Text = "Packets by type"
	p.Y.Label.Text = "count"
	p.Y.Min = 0

	values := make(plotter.Values, len(s.Types))
	names := make([]string, len(s.Types))
	for i, tc := range s.Types {
		values[i] = float64(tc.Count)
		names[i] = tc.Type
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	wt, err := p.WriterTo(PLOT_WIDTH, PLOT_HEIGHT, "png")
	if err != nil {
		return fmt.Errorf("encode histogram: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write histogram: %w", err)
	}
	return nil
}
