package report

import "github.com/banshee-data/packet.decoder/internal/packet"

// Node is the JSON form of a packet. Value is set for literals only.
type Node struct {
	Version  uint8   `json:"version"`
	Type     string  `json:"type"`
	Value    *uint64 `json:"value,omitempty"`
	Children []Node  `json:"children,omitempty"`
}

// NewNode converts a packet tree into its JSON form.
func NewNode(p *packet.Packet) Node {
	n := Node{Version: p.Version, Type: p.TypeID.String()}
	if lit, ok := p.Payload.(packet.Literal); ok {
		v := lit.Value
		n.Value = &v
		return n
	}
	for _, c := range p.Children() {
		n.Children = append(n.Children, NewNode(c))
	}
	return n
}
