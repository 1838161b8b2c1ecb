package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/packet.decoder/internal/packet"
)

// ChartOptions sizes the HTML charts. Width and Height are CSS lengths like
// "1200px". A non-zero Generated is shown in the tree subtitle.
type ChartOptions struct {
	Title     string
	Width     string
	Height    string
	Generated time.Time
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Title == "" {
		o.Title = "Packet tree"
	}
	if o.Width == "" {
		o.Width = "1200px"
	}
	if o.Height == "" {
		o.Height = "800px"
	}
	return o
}

// RenderTreeHTML writes a standalone HTML page holding an interactive tree of
// the packet hierarchy and a bar chart of packet counts per type.
func RenderTreeHTML(w io.Writer, root *packet.Packet, s Summary, o ChartOptions) error {
	o = o.withDefaults()

	subtitle := fmt.Sprintf("%d packets, version sum %d", s.Packets, s.VersionSum)
	if !o.Generated.IsZero() {
		subtitle += ", " + o.Generated.UTC().Format(time.RFC3339)
	}

	tree := charts.NewTree()
	tree.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	tree.AddSeries("packets", []opts.TreeData{*treeNode(root)},
		charts.WithTreeOpts(opts.TreeChart{Layout: "orthogonal", Orient: "LR"}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	x := make([]string, 0, len(s.Types))
	y := make([]opts.BarData, 0, len(s.Types))
	for _, tc := range s.Types {
		x = append(x, tc.Type)
		y = append(y, opts.BarData{Value: tc.Count})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: o.Width, Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Packets by type"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("count", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.PageTitle = o.Title
	page.AddCharts(tree, bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render tree chart: %w", err)
	}
	return nil
}

// treeNode labels literals with their value and operators with their type.
func treeNode(p *packet.Packet) *opts.TreeData {
	node := &opts.TreeData{Name: nodeLabel(p)}
	for _, c := range p.Children() {
		node.Children = append(node.Children, treeNode(c))
	}
	return node
}

func nodeLabel(p *packet.Packet) string {
	if lit, ok := p.Payload.(packet.Literal); ok {
		return strconv.FormatUint(lit.Value, 10) + " (v" + strconv.Itoa(int(p.Version)) + ")"
	}
	return p.TypeID.String() + " (v" + strconv.Itoa(int(p.Version)) + ")"
}
