package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/packet.decoder/internal/packet"
)

// typeOrder fixes the row order of per-type output.
var typeOrder = []packet.TypeID{
	packet.TypeSum, packet.TypeProduct, packet.TypeMinimum, packet.TypeMaximum,
	packet.TypeLiteral, packet.TypeGreater, packet.TypeLess, packet.TypeEqual,
}

// TypeCount is the number of packets of one type and their share of the tree.
type TypeCount struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// Summary describes the shape of a packet tree and its transmission.
type Summary struct {
	Packets      int         `json:"packets"`
	Literals     int         `json:"literals"`
	Operators    int         `json:"operators"`
	MaxDepth     int         `json:"max_depth"`
	VersionSum   uint64      `json:"version_sum"`
	ConsumedBits int         `json:"consumed_bits"`
	TotalBits    int         `json:"total_bits"`
	PaddingBits  int         `json:"padding_bits"`
	Types        []TypeCount `json:"types"`

	// Literal value statistics; zero when the tree holds no literals.
	LiteralMin    uint64  `json:"literal_min"`
	LiteralMax    uint64  `json:"literal_max"`
	LiteralMean   float64 `json:"literal_mean"`
	LiteralStdDev float64 `json:"literal_stddev"`
}

// Summarize walks the tree once and collects counts and literal statistics.
func Summarize(root *packet.Packet, consumedBits, totalBits int) Summary {
	s := Summary{
		VersionSum:   root.VersionSum(),
		ConsumedBits: consumedBits,
		TotalBits:    totalBits,
		PaddingBits:  totalBits - consumedBits,
	}

	counts := make([]float64, len(typeOrder))
	var values []float64
	root.Walk(func(p *packet.Packet, depth int) bool {
		s.Packets++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if int(p.TypeID) < len(counts) {
			counts[p.TypeID]++
		}
		if lit, ok := p.Payload.(packet.Literal); ok {
			if s.Literals == 0 || lit.Value < s.LiteralMin {
				s.LiteralMin = lit.Value
			}
			if lit.Value > s.LiteralMax {
				s.LiteralMax = lit.Value
			}
			s.Literals++
			values = append(values, float64(lit.Value))
		}
		return true
	})
	s.Operators = s.Packets - s.Literals

	shares := make([]float64, len(counts))
	copy(shares, counts)
	if total := floats.Sum(shares); total > 0 {
		floats.Scale(1/total, shares)
	}
	s.Types = make([]TypeCount, len(typeOrder))
	for i, t := range typeOrder {
		s.Types[i] = TypeCount{Type: t.String(), Count: int(counts[i]), Share: shares[i]}
	}

	switch len(values) {
	case 0:
	case 1:
		s.LiteralMean = values[0]
	default:
		s.LiteralMean, s.LiteralStdDev = stat.MeanStdDev(values, nil)
	}
	return s
}

// WriteSummary writes the human-readable form of s.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w,
		"packets: %d (%d literal, %d operator)\nmax depth: %d\nversion sum: %d\nbits: %d consumed, %d padding, %d total\n",
		s.Packets, s.Literals, s.Operators, s.MaxDepth, s.VersionSum,
		s.ConsumedBits, s.PaddingBits, s.TotalBits); err != nil {
		return err
	}
	if s.Literals > 0 {
		if _, err := fmt.Fprintf(w, "literals: min %d, max %d, mean %.2f, stddev %.2f\n",
			s.LiteralMin, s.LiteralMax, s.LiteralMean, s.LiteralStdDev); err != nil {
			return err
		}
	}
	for _, tc := range s.Types {
		if tc.Count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-8s %4d  %5.1f%%\n", tc.Type, tc.Count, 100*tc.Share); err != nil {
			return err
		}
	}
	return nil
}
