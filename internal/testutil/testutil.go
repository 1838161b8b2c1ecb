// Package testutil provides shared test utilities and fixtures.
//
// This package centralises the sample transmissions and assertion helpers
// used across the decoder's packages.
package testutil

import (
	"testing"

	"github.com/banshee-data/packet.decoder/internal/transmission"
)

// Sample is a known transmission with its expected results. A zero Value is
// meaningful, so VersionOnly marks samples whose value was never published.
type Sample struct {
	Name        string
	Hex         string
	VersionSum  uint64
	Value       uint64
	VersionOnly bool
}

// VersionSamples are transmissions with known version sums.
var VersionSamples = []Sample{
	{Name: "literal", Hex: "D2FE28", VersionSum: 6, Value: 2021},
	{Name: "bit length operator", Hex: "38006F45291200", VersionSum: 9, Value: 1},
	{Name: "count operator", Hex: "EE00D40C823060", VersionSum: 14, Value: 3},
	{Name: "nested single", Hex: "8A004A801A8002F478", VersionSum: 16, VersionOnly: true},
	{Name: "two pairs", Hex: "620080001611562C8802118E34", VersionSum: 12, VersionOnly: true},
	{Name: "two pairs bit length", Hex: "C0015000016115A2E0802F182340", VersionSum: 23, VersionOnly: true},
	{Name: "deep nesting", Hex: "A0016C880162017C3686B18A3D4780", VersionSum: 31, VersionOnly: true},
}

// ValueSamples are transmissions with known evaluated values.
var ValueSamples = []Sample{
	{Name: "sum", Hex: "C200B40A82", Value: 3},
	{Name: "product", Hex: "04005AC33890", Value: 54},
	{Name: "minimum", Hex: "880086C3E88112", Value: 7},
	{Name: "maximum", Hex: "CE00C43D881120", Value: 9},
	{Name: "less than", Hex: "D8005AC2A8F0", Value: 1},
	{Name: "greater than", Hex: "F600BC2D8F", Value: 0},
	{Name: "equal false", Hex: "9C005AC2F8F0", Value: 0},
	{Name: "equal nested", Hex: "9C0141080250320F1802104A08", Value: 1},
}

// MustDecode decodes hex or fails the test.
func MustDecode(t testing.TB, hex string) *transmission.Buffer {
	t.Helper()
	buf, err := transmission.Decode(hex)
	if err != nil {
		t.Fatalf("decode %q: %v", hex, err)
	}
	return buf
}
