// Package transmission owns the bit layer of the packet decoder.
//
// Responsibilities: decoding a hexadecimal transmission string into a
// word-packed, randomly addressable bit sequence and answering bounded
// bit-range reads. Key types: Buffer, DecodeError.
//
// Dependency rule: transmission has no dependencies on the packet layer.
package transmission
