// Package report renders decoded packet trees for people: an indented text
// tree, summary statistics, an HTML chart page and a PNG type histogram.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/packet.decoder/internal/packet"
)

const indent = "  "

// WriteTree writes one line per packet in pre-order. Literals show their
// value and operators show their child count.
//
//	v1 less [2]
//	  v6 literal 10
//	  v2 literal 20
func WriteTree(w io.Writer, root *packet.Packet) error {
	var err error
	root.Walk(func(p *packet.Packet, depth int) bool {
		if err != nil {
			return false
		}
		pad := strings.Repeat(indent, depth)
		switch pl := p.Payload.(type) {
		case packet.Literal:
			_, err = fmt.Fprintf(w, "%sv%d %s %d\n", pad, p.Version, p.TypeID, pl.Value)
		default:
			_, err = fmt.Fprintf(w, "%sv%d %s [%d]\n", pad, p.Version, p.TypeID, len(p.Children()))
		}
		return err == nil
	})
	return err
}
