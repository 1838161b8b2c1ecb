package transmission

import (
	"errors"
	"fmt"
)

/*
Transmission Bit Layout

A transmission arrives as a string of hexadecimal digits. Each digit expands to
four bits, most-significant bit first, and the bits are packed densely into
64-bit words:

	hex:   D        2        F        E        2        8
	bits:  1101     0010     1111     1110     0010     1000
	word0: 1101 0010 1111 1110 0010 1000 0000 ... 0000   (unused low bits are zero)

Bit 0 is the most-significant bit of word 0; bit 64 is the most-significant bit of
word 1, and so on. A read of n bits starting at bit i returns those bits as a
big-endian unsigned integer. Reads may straddle a word boundary; in that case the
tail of the first word becomes the high bits of the result and the head of the
second word becomes the low bits.

The packet grammar never needs a field wider than 16 bits in a single read, so
ReadBits is limited to MaxReadWidth bits and returns a uint16.
*/

const (
	NibbleBits   = 4                     // Bits contributed by each hex digit
	WordBits     = 64                    // Bits per packed storage word
	NibblesPer   = WordBits / NibbleBits // Hex digits per word (16)
	MaxReadWidth = 16                    // Widest single read the grammar needs
)

// ErrInvalidHex is wrapped by every DecodeError.
var ErrInvalidHex = errors.New("invalid hex digit")

// DecodeError reports the first character of a transmission that is not a
// hexadecimal digit.
type DecodeError struct {
	Pos  int  // Byte offset of the offending character
	Char byte // The offending character
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode transmission: %q at offset %d: %v", e.Char, e.Pos, ErrInvalidHex)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidHex }

// Buffer is an immutable, word-packed bit sequence decoded from a hex string.
type Buffer struct {
	words  []uint64 // Packed bits, MSB-first within each word
	length int      // Total bit length, always 4 * number of hex digits
}

// Decode expands a hexadecimal transmission into a Buffer. Upper and lower case
// digits are accepted. Any other character fails with a *DecodeError.
func Decode(hex string) (*Buffer, error) {
	b := &Buffer{
		words:  make([]uint64, (len(hex)+NibblesPer-1)/NibblesPer),
		length: len(hex) * NibbleBits,
	}

	for i := 0; i < len(hex); i++ {
		v, ok := nibble(hex[i])
		if !ok {
			return nil, &DecodeError{Pos: i, Char: hex[i]}
		}
		shift := uint(WordBits - NibbleBits*(i%NibblesPer+1))
		b.words[i/NibblesPer] |= uint64(v) << shift
	}

	return b, nil
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// BitLength returns the total number of addressable bits.
func (b *Buffer) BitLength() int {
	return b.length
}

// Words returns the number of packed storage words.
func (b *Buffer) Words() int {
	return len(b.words)
}

// ReadBits returns the n bits starting at index as a big-endian unsigned
// integer. It reports false when n is zero, n exceeds MaxReadWidth, index is
// negative, or the range runs past the end of the buffer.
func (b *Buffer) ReadBits(index, n int) (uint16, bool) {
	if n <= 0 || n > MaxReadWidth || index < 0 || index+n > b.length {
		return 0, false
	}

	wi := index / WordBits
	off := uint(index % WordBits)
	width := uint(n)
	word := b.words[wi]

	if off+width <= WordBits {
		return uint16(word << off >> (WordBits - width)), true
	}

	// Straddles two words. endOff is the count of bits taken from the next word.
	endOff := off + width - WordBits
	hi := word << off >> off << endOff
	lo := b.words[wi+1] >> (WordBits - endOff)
	return uint16(hi | lo), true
}

// Bit returns the single bit at index.
func (b *Buffer) Bit(index int) (uint16, bool) {
	return b.ReadBits(index, 1)
}
