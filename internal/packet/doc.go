// Package packet owns the packet layer of the decoder.
//
// Responsibilities: recursive-descent parsing of one packet tree from a
// transmission.Buffer, the Packet model (literal or operator payload), and
// the two read-only traversals over a parsed tree: VersionSum and Evaluate.
// Key types: Packet, Literal, Operator, Parser, ParseError, EvalError.
//
// Dependency rule: packet may depend on transmission, never on report or cmd.
package packet
