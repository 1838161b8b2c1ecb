package packet

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a read would run past the end of the transmission.
	ErrTruncated = errors.New("truncated input")
	// ErrInvalidLengthType indicates an operator length type other than 0 or 1.
	ErrInvalidLengthType = errors.New("invalid length type id")
	// ErrLiteralOverflow indicates a literal value wider than 64 bits.
	ErrLiteralOverflow = errors.New("literal exceeds 64 bits")
	// ErrLengthMismatch indicates that length-type 0 sub-packets ended past the
	// declared bit length.
	ErrLengthMismatch = errors.New("sub-packets overran declared bit length")

	// ErrArity indicates an operator without the number of terms it requires.
	ErrArity = errors.New("operator arity mismatch")
	// ErrInvalidOperator indicates a type id with no defined operation.
	ErrInvalidOperator = errors.New("invalid operator type id")
)

// ParseError locates a parse failure in the transmission.
//
// The underlying sentinel can be matched with errors.Is.
type ParseError struct {
	Pos   int    // Bit offset where the failing field starts
	Field string // Grammar field being read
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s at bit %d: %v", e.Field, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvalError describes an operator that could not be evaluated.
//
// The underlying sentinel can be matched with errors.Is.
type EvalError struct {
	TypeID TypeID
	Terms  int // Number of evaluated child terms
	Err    error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate %s with %d terms: %v", e.TypeID, e.Terms, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
