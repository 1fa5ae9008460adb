package sparsedot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

func TestVariantsResolve(t *testing.T) {
	seen := make(map[sparsedot.Key]bool)
	for _, v := range sparsedot.AllVariants {
		if seen[v.Key] {
			t.Fatalf("duplicate variant %+v", v.Key)
		}
		seen[v.Key] = true
		for _, sym := range []string{v.Create, v.Routine, v.Export, v.Convert, v.Order, v.Destroy} {
			if sym == "" {
				continue
			}
			if _, ok := backend.Lookup(backend.Symbol(sym)); !ok {
				t.Fatalf("%+v: %s not in catalogue", v.Key, sym)
			}
		}
		wide := strings.HasSuffix(v.Create, "_64")
		if wide != (v.Width == sparsedot.Wide) {
			t.Fatalf("%+v: create routine %s", v.Key, v.Create)
		}
	}

	b, _, _ := newTestBridge(t)
	require.Len(t, b.Variants(), len(sparsedot.AllVariants))
}

func TestVariantCoverage(t *testing.T) {
	has := func(k sparsedot.Key) bool {
		for _, v := range sparsedot.AllVariants {
			if v.Key == k {
				return true
			}
		}
		return false
	}
	for _, dt := range []sparsedot.DType{sparsedot.Float32, sparsedot.Float64, sparsedot.Complex64, sparsedot.Complex128} {
		for _, w := range []sparsedot.IndexWidth{sparsedot.Narrow, sparsedot.Wide} {
			for _, f := range []sparsedot.Format{sparsedot.CSR, sparsedot.CSC} {
				for _, k := range []sparsedot.OpKind{sparsedot.SparseSparse, sparsedot.SparseDense, sparsedot.DenseSparse, sparsedot.SparseVector, sparsedot.Dot} {
					require.True(t, has(sparsedot.Key{Kind: k, DType: dt, Width: w, Format: f}), "%s %s %s %s", k, dt, w, f)
				}
			}
			bsr := has(sparsedot.Key{Kind: sparsedot.SparseDense, DType: dt, Width: w, Format: sparsedot.BSR})
			require.Equal(t, !(dt.IsComplex() && w == sparsedot.Wide), bsr, "bsr %s %s", dt, w)
			require.False(t, has(sparsedot.Key{Kind: sparsedot.DenseSparse, DType: dt, Width: w, Format: sparsedot.BSR}))
			require.False(t, has(sparsedot.Key{Kind: sparsedot.Dot, DType: dt, Width: w, Format: sparsedot.BSR}))
		}
	}
}

func TestDispatchRejects(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)
	wb, _, _ := newTestBridgeWidth(t, wideConfig())

	a := identity3(t)
	c64, err := sparsedot.NewCSR(2, 2, []complex64{1, 1}, []int32{0, 1}, []int32{0, 1, 2})
	require.NoError(t, err)
	c64w, err := sparsedot.NewBSR(2, 2, 1, []complex64{1, 1}, []int64{0, 1}, []int64{0, 1, 2})
	require.NoError(t, err)
	bsr, err := sparsedot.NewBSR(2, 2, 2, []float64{1, 2, 3, 4}, []int32{0}, []int32{0, 1})
	require.NoError(t, err)
	f32, err := sparsedot.NewCSR(3, 3, []float32{1}, []int32{0}, []int32{0, 1, 1, 1})
	require.NoError(t, err)
	col3, err := sparsedot.NewCSC(3, 3, []float64{1}, []int32{0}, []int32{0, 1, 1, 1})
	require.NoError(t, err)

	tests := []struct {
		name   string
		bridge *sparsedot.Bridge
		req    sparsedot.Request
		want   error
	}{
		{"narrow operand on wide bridge", wb,
			sparsedot.Request{Kind: sparsedot.SparseDense, A: a, Dense: ones(3, 1, sparsedot.RowMajor)},
			sparsedot.ErrIndexWidthMismatch},
		{"bsr complex wide", wb,
			sparsedot.Request{Kind: sparsedot.SparseVector, A: c64w, Dense: sparsedot.NewVector([]complex64{1, 1})},
			sparsedot.ErrNoMatchingVariant},
		{"dense on the left of bsr", b,
			sparsedot.Request{Kind: sparsedot.DenseSparse, A: bsr, Dense: ones(1, 2, sparsedot.RowMajor)},
			sparsedot.ErrNoMatchingVariant},
		{"dot with bsr", b,
			sparsedot.Request{Kind: sparsedot.Dot, A: bsr, Dense: ones(2, 1, sparsedot.ColMajor)},
			sparsedot.ErrNoMatchingVariant},
		{"conjugate transpose of real", b,
			sparsedot.Request{Kind: sparsedot.SparseVector, A: a, TransA: sparsedot.ConjTrans, Dense: ones(3, 1, sparsedot.ColMajor)},
			sparsedot.ErrNoMatchingVariant},
		{"conjugate transpose on the left", b,
			sparsedot.Request{Kind: sparsedot.DenseSparse, A: c64, TransA: sparsedot.ConjTrans, Dense: sparsedot.NewVector([]complex64{1, 1}).T()},
			sparsedot.ErrNoMatchingVariant},
		{"transposed bsr product", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: bsr, B: bsr, TransA: sparsedot.Trans},
			sparsedot.ErrNoMatchingVariant},
		{"transposed csc right operand", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: col3, B: col3, TransB: sparsedot.Trans},
			sparsedot.ErrNoMatchingVariant},
		{"sparse dtypes differ", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: f32},
			sparsedot.ErrNoMatchingVariant},
		{"sparse formats differ", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: col3},
			sparsedot.ErrNoMatchingVariant},
		{"dense dtype differs", b,
			sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: sparsedot.NewVector([]float32{1, 1, 1})},
			sparsedot.ErrNoMatchingVariant},
		{"complex alpha on real", b,
			sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Alpha: sparsedot.Complex(1i), Dense: ones(3, 1, sparsedot.ColMajor)},
			sparsedot.ErrNoMatchingVariant},
		{"structured product", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: a, Structure: sparsedot.Structure{Kind: sparsedot.Symmetric}},
			sparsedot.ErrNoMatchingVariant},
		{"product into output", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: a, Beta: sparsedot.Real(1)},
			sparsedot.ErrNoMatchingVariant},
		{"beta without output", b,
			sparsedot.Request{Kind: sparsedot.SparseDense, A: a, Dense: ones(3, 2, sparsedot.RowMajor), Beta: sparsedot.Real(2)},
			sparsedot.ErrNoMatchingVariant},
		{"vector beta without output", b,
			sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: ones(3, 1, sparsedot.ColMajor), Beta: sparsedot.Real(0)},
			sparsedot.ErrNoMatchingVariant},
		{"unknown kind", b,
			sparsedot.Request{Kind: sparsedot.OpKind(42), A: a},
			sparsedot.ErrNoMatchingVariant},
		{"missing dense operand", b,
			sparsedot.Request{Kind: sparsedot.SparseDense, A: a},
			sparsedot.ErrInvalidStructure},
		{"missing sparse operand", b,
			sparsedot.Request{Kind: sparsedot.SparseSparse, A: a},
			sparsedot.ErrInvalidStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.bridge.Execute(ctx, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
	require.Zero(t, b.Outstanding())
	require.Zero(t, wb.Outstanding())
}

func TestDispatchWidthOperand(t *testing.T) {
	b, _, _ := newTestBridge(t)
	wide, err := sparsedot.NewCSR(3, 3, []float64{1}, []int64{0}, []int64{0, 1, 1, 1})
	require.NoError(t, err)

	_, err = b.Execute(context.Background(), sparsedot.Request{Kind: sparsedot.SparseSparse, A: identity3(t), B: wide})
	var e *sparsedot.Error
	require.ErrorAs(t, err, &e)
	require.ErrorIs(t, err, sparsedot.ErrIndexWidthMismatch)
	require.Equal(t, 1, e.Operand)
	require.Equal(t, sparsedot.Wide, e.Width)
}
