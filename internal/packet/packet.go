package packet

import (
	"strconv"
	"strings"
)

// TypeID is the 3-bit packet type field.
type TypeID uint8

const (
	TypeSum     TypeID = 0 // Operator: sum of all terms
	TypeProduct TypeID = 1 // Operator: product of all terms
	TypeMinimum TypeID = 2 // Operator: minimum term
	TypeMaximum TypeID = 3 // Operator: maximum term
	TypeLiteral TypeID = 4 // Literal value
	TypeGreater TypeID = 5 // Operator: 1 if first > second
	TypeLess    TypeID = 6 // Operator: 1 if first < second
	TypeEqual   TypeID = 7 // Operator: 1 if first == second
)

var typeNames = [...]string{
	TypeSum:     "sum",
	TypeProduct: "product",
	TypeMinimum: "minimum",
	TypeMaximum: "maximum",
	TypeLiteral: "literal",
	TypeGreater: "greater",
	TypeLess:    "less",
	TypeEqual:   "equal",
}

func (t TypeID) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// Payload is the tagged variant carried by a Packet: either Literal or Operator.
type Payload interface {
	isPayload()
}

// Literal is the payload of a type 4 packet.
type Literal struct {
	Value uint64
}

// Operator is the payload of every non-literal packet. Children are owned
// exclusively by their parent.
type Operator struct {
	Children []*Packet
}

func (Literal) isPayload()  {}
func (Operator) isPayload() {}

// Packet is one decoded unit of a transmission.
type Packet struct {
	Version uint8
	TypeID  TypeID
	Payload Payload
}

// IsLiteral reports whether the packet carries a literal payload.
func (p *Packet) IsLiteral() bool {
	_, ok := p.Payload.(Literal)
	return ok
}

// Children returns the sub-packets of an operator packet, or nil for a literal.
func (p *Packet) Children() []*Packet {
	if op, ok := p.Payload.(Operator); ok {
		return op.Children
	}
	return nil
}

// Walk visits p and its descendants depth-first in pre-order. The root has
// depth 0. Returning false from fn skips the children of that packet.
func (p *Packet) Walk(fn func(pkt *Packet, depth int) bool) {
	p.walk(fn, 0)
}

func (p *Packet) walk(fn func(*Packet, int) bool, depth int) {
	if !fn(p, depth) {
		return
	}
	for _, c := range p.Children() {
		c.walk(fn, depth+1)
	}
}

// String renders the tree as an S-expression, e.g. "(sum 1 (product 2 3))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.writeSExpr(&sb)
	return sb.String()
}

func (p *Packet) writeSExpr(sb *strings.Builder) {
	switch pl := p.Payload.(type) {
	case Literal:
		sb.WriteString(strconv.FormatUint(pl.Value, 10))
	case Operator:
		sb.WriteByte('(')
		sb.WriteString(p.TypeID.String())
		for _, c := range pl.Children {
			sb.WriteByte(' ')
			c.writeSExpr(sb)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("<nil>")
	}
}
