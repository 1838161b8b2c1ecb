// Package solver drives the packet decoder for one puzzle input: it turns the
// loaded lines into a transmission and answers both parts.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/banshee-data/packet.decoder/internal/packet"
	"github.com/banshee-data/packet.decoder/internal/transmission"
)

// ErrInvalidInput indicates the input is not exactly one transmission line.
var ErrInvalidInput = errors.New("invalid input")

// Result holds both answers for one transmission.
type Result struct {
	VersionSum   uint64 `json:"version_sum"`
	Value        uint64 `json:"value"`
	ConsumedBits int    `json:"consumed_bits"`
	TotalBits    int    `json:"total_bits"`
}

// ParseInput decodes the single transmission line. Surrounding whitespace is
// ignored; blank or multiple lines are rejected.
func ParseInput(lines []string) (*transmission.Buffer, error) {
	if len(lines) != 1 {
		return nil, fmt.Errorf("%w: expected 1 line, got %d", ErrInvalidInput, len(lines))
	}
	line := strings.TrimSpace(lines[0])
	if line == "" {
		return nil, fmt.Errorf("%w: empty transmission", ErrInvalidInput)
	}

	buf, err := transmission.Decode(line)
	if err != nil {
		return nil, fmt.Errorf("could not parse input: %w", err)
	}
	return buf, nil
}

// PartOne returns the version sum of the root packet.
func PartOne(buf *transmission.Buffer) (uint64, error) {
	root, _, err := packet.Parse(buf)
	if err != nil {
		return 0, fmt.Errorf("could not parse packet: %w", err)
	}
	return root.VersionSum(), nil
}

// PartTwo returns the evaluated value of the root packet.
func PartTwo(buf *transmission.Buffer) (uint64, error) {
	root, _, err := packet.Parse(buf)
	if err != nil {
		return 0, fmt.Errorf("could not parse packet: %w", err)
	}
	v, err := root.Evaluate()
	if err != nil {
		return 0, fmt.Errorf("could not eval the transmission: %w", err)
	}
	return v, nil
}

// Solve parses the input once and answers both parts.
func Solve(lines []string) (Result, *packet.Packet, error) {
	buf, err := ParseInput(lines)
	if err != nil {
		return Result{}, nil, err
	}

	root, consumed, err := packet.Parse(buf)
	if err != nil {
		return Result{}, nil, fmt.Errorf("could not parse packet: %w", err)
	}
	v, err := root.Evaluate()
	if err != nil {
		return Result{}, nil, fmt.Errorf("could not eval the transmission: %w", err)
	}

	return Result{
		VersionSum:   root.VersionSum(),
		Value:        v,
		ConsumedBits: consumed,
		TotalBits:    buf.BitLength(),
	}, root, nil
}
