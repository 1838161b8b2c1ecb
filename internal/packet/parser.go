package packet

import (
	"github.com/banshee-data/packet.decoder/internal/transmission"
	"go.uber.org/zap"
)

/*
Packet Grammar

Every packet starts with a six bit header:

	VVV TTT
	│   └── type id (4 = literal, anything else = operator)
	└────── version

LITERAL (type 4): a run of 5-bit groups. The top bit of each group is a
continuation flag; the low four bits are appended to the value MSB-first.
The run ends after the first group whose flag is 0.

	VVV 100 1AAAA 1BBBB 0CCCC   -> value = AAAABBBBCCCC

OPERATOR (any other type): a 1-bit length type id, then either

	I=0: LLLLLLLLLLLLLLL  15-bit count of bits occupied by the sub-packets
	I=1: NNNNNNNNNNN      11-bit count of sub-packets

followed by the sub-packets themselves, each a complete packet.

The root packet may be followed by zero padding out to the end of the
transmission. The parser leaves the cursor immediately after the last bit it
consumed and never looks at the padding.
*/

// Field widths of the packet grammar, in bits.
const (
	VERSION_BITS      = 3
	TYPE_ID_BITS      = 3
	LITERAL_GROUP     = 5  // Continuation flag + 4 value bits
	LITERAL_FLAG      = 0b10000
	LITERAL_NIBBLE    = 0b01111
	LENGTH_TYPE_BITS  = 1
	BIT_LENGTH_BITS   = 15 // Length type 0: total sub-packet bits
	PACKET_COUNT_BITS = 11 // Length type 1: number of sub-packets

	LENGTH_TYPE_BITS_TOTAL = 0
	LENGTH_TYPE_COUNT      = 1
)

// Parser decodes packets from a transmission buffer. The cursor is owned by
// the Parser and advances monotonically as fields are consumed. A Parser must
// not be shared between goroutines.
type Parser struct {
	buf *transmission.Buffer
	pos int
}

// NewParser returns a parser positioned at bit 0 of buf.
func NewParser(buf *transmission.Buffer) *Parser {
	return &Parser{buf: buf}
}

// Pos returns the bit offset of the cursor.
func (p *Parser) Pos() int {
	return p.pos
}

// Remaining returns the number of bits after the cursor.
func (p *Parser) Remaining() int {
	return p.buf.BitLength() - p.pos
}

// Parse decodes the root packet at bit 0 of buf and returns it together with
// the number of bits consumed. Trailing padding is ignored.
func Parse(buf *transmission.Buffer) (*Packet, int, error) {
	p := NewParser(buf)
	root, err := p.ParsePacket()
	if err != nil {
		opsf("transmission rejected",
			zap.Int("bit_length", buf.BitLength()),
			zap.Int("cursor", p.Pos()),
			zap.Error(err))
		return nil, p.Pos(), err
	}

	diagf("transmission parsed",
		zap.Int("bit_length", buf.BitLength()),
		zap.Int("words", buf.Words()),
		zap.Int("consumed_bits", p.Pos()),
		zap.Int("padding_bits", p.Remaining()),
		zap.Uint64("version_sum", root.VersionSum()))
	return root, p.Pos(), nil
}

// ParseHex decodes a hexadecimal transmission and parses its root packet.
func ParseHex(hex string) (*Packet, error) {
	buf, err := transmission.Decode(hex)
	if err != nil {
		return nil, err
	}
	root, _, err := Parse(buf)
	return root, err
}

// ParsePacket decodes one packet starting at the cursor, recursing into
// sub-packets, and leaves the cursor immediately after the last bit consumed.
func (p *Parser) ParsePacket() (*Packet, error) {
	start := p.pos

	version, err := p.read(VERSION_BITS, "version")
	if err != nil {
		return nil, err
	}
	typeID, err := p.read(TYPE_ID_BITS, "type id")
	if err != nil {
		return nil, err
	}

	pkt := &Packet{
		Version: uint8(version),
		TypeID:  TypeID(typeID),
	}

	tracef("packet header",
		zap.Int("pos", start),
		zap.Uint8("version", pkt.Version),
		zap.Stringer("type", pkt.TypeID))

	if pkt.TypeID == TypeLiteral {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		pkt.Payload = lit
		return pkt, nil
	}

	op, err := p.parseOperator()
	if err != nil {
		return nil, err
	}
	pkt.Payload = op
	return pkt, nil
}

func (p *Parser) parseLiteral() (Literal, error) {
	var value uint64
	for {
		at := p.pos
		group, err := p.read(LITERAL_GROUP, "literal group")
		if err != nil {
			return Literal{}, err
		}
		if value>>60 != 0 {
			return Literal{}, &ParseError{Pos: at, Field: "literal group", Err: ErrLiteralOverflow}
		}
		value = value<<4 | uint64(group&LITERAL_NIBBLE)
		if group&LITERAL_FLAG == 0 {
			return Literal{Value: value}, nil
		}
	}
}

func (p *Parser) parseOperator() (Operator, error) {
	at := p.pos
	lengthType, err := p.read(LENGTH_TYPE_BITS, "length type id")
	if err != nil {
		return Operator{}, err
	}

	var children []*Packet
	switch lengthType {
	case LENGTH_TYPE_BITS_TOTAL:
		length, err := p.read(BIT_LENGTH_BITS, "sub-packet bit length")
		if err != nil {
			return Operator{}, err
		}
		end := p.pos + int(length)
		for p.pos < end {
			child, err := p.ParsePacket()
			if err != nil {
				return Operator{}, err
			}
			children = append(children, child)
		}
		if p.pos != end {
			return Operator{}, &ParseError{Pos: end, Field: "sub-packet bit length", Err: ErrLengthMismatch}
		}

	case LENGTH_TYPE_COUNT:
		count, err := p.read(PACKET_COUNT_BITS, "sub-packet count")
		if err != nil {
			return Operator{}, err
		}
		children = make([]*Packet, 0, count)
		for i := 0; i < int(count); i++ {
			child, err := p.ParsePacket()
			if err != nil {
				return Operator{}, err
			}
			children = append(children, child)
		}

	default:
		return Operator{}, &ParseError{Pos: at, Field: "length type id", Err: ErrInvalidLengthType}
	}

	return Operator{Children: children}, nil
}

// read consumes n bits at the cursor.
func (p *Parser) read(n int, field string) (uint16, error) {
	v, ok := p.buf.ReadBits(p.pos, n)
	if !ok {
		return 0, &ParseError{Pos: p.pos, Field: field, Err: ErrTruncated}
	}
	p.pos += n
	return v, nil
}
