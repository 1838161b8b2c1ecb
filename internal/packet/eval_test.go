package packet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/packet.decoder/internal/testutil"
)

func TestEvaluate_Samples(t *testing.T) {
	for _, s := range testutil.ValueSamples {
		t.Run(s.Name, func(t *testing.T) {
			root, err := ParseHex(s.Hex)
			require.NoError(t, err)

			got, err := root.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, s.Value, got)
		})
	}
}

func TestEvaluate_VersionSamplesWithValues(t *testing.T) {
	for _, s := range testutil.VersionSamples {
		if s.VersionOnly {
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			root, err := ParseHex(s.Hex)
			require.NoError(t, err)

			got, err := root.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, s.Value, got)
		})
	}
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		name string
		pkt  *Packet
		want uint64
	}{
		{"literal", lit(0, 42), 42},
		{"sum", op(0, TypeSum, lit(0, 1), lit(0, 2), lit(0, 3)), 6},
		{"empty sum", op(0, TypeSum), 0},
		{"product", op(0, TypeProduct, lit(0, 6), lit(0, 9)), 54},
		{"single product", op(0, TypeProduct, lit(0, 7)), 7},
		{"empty product", op(0, TypeProduct), 1},
		{"minimum", op(0, TypeMinimum, lit(0, 7), lit(0, 8), lit(0, 9)), 7},
		{"maximum", op(0, TypeMaximum, lit(0, 7), lit(0, 8), lit(0, 9)), 9},
		{"greater true", op(0, TypeGreater, lit(0, 5), lit(0, 1)), 1},
		{"greater false", op(0, TypeGreater, lit(0, 5), lit(0, 15)), 0},
		{"less true", op(0, TypeLess, lit(0, 5), lit(0, 15)), 1},
		{"less equal", op(0, TypeLess, lit(0, 5), lit(0, 5)), 0},
		{"equal true", op(0, TypeEqual, lit(0, 5), lit(0, 5)), 1},
		{"equal false", op(0, TypeEqual, lit(0, 5), lit(0, 6)), 0},
		{"nested", op(0, TypeEqual,
			op(0, TypeSum, lit(0, 1), lit(0, 3)),
			op(0, TypeProduct, lit(0, 2), lit(0, 2))), 1},
		{"sum wraps", op(0, TypeSum, lit(0, ^uint64(0)), lit(0, 2)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pkt.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		pkt       *Packet
		wantErr   error
		wantType  TypeID
		wantTerms int
	}{
		{"minimum of nothing", op(0, TypeMinimum), ErrArity, TypeMinimum, 0},
		{"maximum of nothing", op(0, TypeMaximum), ErrArity, TypeMaximum, 0},
		{"greater with one", op(0, TypeGreater, lit(0, 1)), ErrArity, TypeGreater, 1},
		{"less with three", op(0, TypeLess, lit(0, 1), lit(0, 2), lit(0, 3)), ErrArity, TypeLess, 3},
		{"equal with none", op(0, TypeEqual), ErrArity, TypeEqual, 0},
		{"operator tagged literal", op(0, TypeLiteral, lit(0, 1)), ErrInvalidOperator, TypeLiteral, 1},
		{"out of range type", op(0, TypeID(9), lit(0, 1)), ErrInvalidOperator, TypeID(9), 1},
		{"missing payload", &Packet{TypeID: TypeSum}, ErrInvalidOperator, TypeSum, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pkt.Evaluate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var ee *EvalError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tt.wantType, ee.TypeID)
			assert.Equal(t, tt.wantTerms, ee.Terms)
		})
	}
}

func TestEvaluate_FirstChildErrorWins(t *testing.T) {
	pkt := op(0, TypeSum,
		lit(0, 1),
		op(0, TypeGreater, lit(0, 1)),
		op(0, TypeMinimum),
	)

	_, err := pkt.Evaluate()
	require.Error(t, err)

	var ee *EvalError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, TypeGreater, ee.TypeID)
}

func TestVersionSum(t *testing.T) {
	pkt := op(1, TypeSum,
		lit(2, 0),
		op(3, TypeProduct, lit(4, 0), lit(5, 0)),
	)
	assert.Equal(t, uint64(15), pkt.VersionSum())
	assert.Equal(t, uint64(7), lit(7, 0).VersionSum())
}

func TestPacket_String(t *testing.T) {
	root, err := ParseHex("9C0141080250320F1802104A08")
	require.NoError(t, err)
	assert.Equal(t, "(equal (sum 1 3) (product 2 2))", root.String())

	assert.Equal(t, "2021", lit(6, 2021).String())
	assert.Equal(t, "<nil>", (&Packet{}).String())
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "sum", TypeSum.String())
	assert.Equal(t, "literal", TypeLiteral.String())
	assert.Equal(t, "equal", TypeEqual.String())
	assert.Equal(t, "type(9)", TypeID(9).String())
}

func TestWalk_SkipChildren(t *testing.T) {
	pkt := op(0, TypeSum, op(0, TypeProduct, lit(0, 1)), lit(0, 2))

	var visited int
	pkt.Walk(func(p *Packet, depth int) bool {
		visited++
		return p.TypeID != TypeProduct
	})
	assert.Equal(t, 3, visited)
}

func BenchmarkEvaluate(b *testing.B) {
	root, err := ParseHex("9C0141080250320F1802104A08")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := root.Evaluate(); err != nil {
			b.Fatal(err)
		}
	}
}
