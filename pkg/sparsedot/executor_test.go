package sparsedot_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

// randomDense returns an m×n float64 matrix in layout with its gonum copy.
func randomDense(rng *rand.Rand, m, n int, layout sparsedot.Layout) (*sparsedot.Dense, *mat.Dense) {
	ref := mat.NewDense(m, n, nil)
	data := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := float64(rng.IntN(7) - 3)
			ref.Set(i, j, v)
			if layout == sparsedot.ColMajor {
				data[j*m+i] = v
			} else {
				data[i*n+j] = v
			}
		}
	}
	d, err := sparsedot.NewDense(m, n, layout, data)
	if err != nil {
		panic(err)
	}
	return d, ref
}

func TestRowScaling(t *testing.T) {
	b, _, _ := newTestBridge(t)
	res, err := b.Execute(context.Background(), sparsedot.Request{
		Kind:  sparsedot.SparseDense,
		A:     identity3(t),
		Dense: ones(3, 2, sparsedot.RowMajor),
	})
	require.NoError(t, err)
	require.Equal(t, sparsedot.RowMajor, res.Dense.Layout())
	requireDenseEqual(t, mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3}), res.Dense)
	require.Zero(t, b.Outstanding())
}

func TestSparseSparse(t *testing.T) {
	tests := []struct {
		name           string
		format         sparsedot.Format
		transA, transB sparsedot.Transpose
	}{
		{"csr", sparsedot.CSR, sparsedot.NoTrans, sparsedot.NoTrans},
		{"csr At", sparsedot.CSR, sparsedot.Trans, sparsedot.NoTrans},
		{"csr Bt", sparsedot.CSR, sparsedot.NoTrans, sparsedot.Trans},
		{"csr At Bt", sparsedot.CSR, sparsedot.Trans, sparsedot.Trans},
		{"csc", sparsedot.CSC, sparsedot.NoTrans, sparsedot.NoTrans},
		{"csc At", sparsedot.CSC, sparsedot.Trans, sparsedot.NoTrans},
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, rec := newTestBridge(t)
			m, k, n := 6, 5, 4
			ar, ac := m, k
			if tt.transA != sparsedot.NoTrans {
				ar, ac = k, m
			}
			br, bc := k, n
			if tt.transB != sparsedot.NoTrans {
				br, bc = n, k
			}
			a, aRef := randomSparse(t, rng, tt.format, ar, ac, 0.4)
			bm, bRef := randomSparse(t, rng, tt.format, br, bc, 0.4)

			res, err := b.Execute(context.Background(), sparsedot.Request{
				Kind: sparsedot.SparseSparse, A: a, B: bm,
				TransA: tt.transA, TransB: tt.transB,
				Alpha: sparsedot.Real(2),
			})
			require.NoError(t, err)
			require.Equal(t, tt.format, res.Sparse.Format())

			var opA, opB mat.Matrix = aRef, bRef
			if tt.transA != sparsedot.NoTrans {
				opA = aRef.T()
			}
			if tt.transB != sparsedot.NoTrans {
				opB = bRef.T()
			}
			var want mat.Dense
			want.Mul(opA, opB)
			want.Scale(2, &want)
			requireDenseEqual(t, &want, res.Sparse.Dense(sparsedot.RowMajor))
			requireOrdered(t, res.Sparse)

			if tt.transB != sparsedot.NoTrans {
				require.NotEmpty(t, rec.find("warn", "sparse operand converted for transpose"))
			}
			require.Zero(t, b.Outstanding())
		})
	}
}

// requireOrdered checks that indices ascend within every outer slice.
func requireOrdered(t *testing.T, d *sparsedot.Descriptor) {
	t.Helper()
	off := d.Offsets().([]int32)
	idx := d.Indices().([]int32)
	for o := 0; o+1 < len(off); o++ {
		for p := off[o] + 1; p < off[o+1]; p++ {
			require.Less(t, idx[p-1], idx[p], "slice %d", o)
		}
	}
}

func TestSparseSparseSameOperand(t *testing.T) {
	b, _, _ := newTestBridge(t)
	a := identity3(t)
	res, err := b.Execute(context.Background(), sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: a})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDiagDense(3, []float64{1, 4, 9}), res.Sparse.Dense(sparsedot.RowMajor))
}

func TestSparseSparseShape(t *testing.T) {
	b, _, _ := newTestBridge(t)
	rng := rand.New(rand.NewPCG(3, 4))
	a, _ := randomSparse(t, rng, sparsedot.CSR, 3, 4, 0.5)
	_, err := b.Execute(context.Background(), sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: a})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)
}

func TestSparseDense(t *testing.T) {
	tests := []struct {
		name   string
		format sparsedot.Format
		layout sparsedot.Layout
		transA sparsedot.Transpose
		transB sparsedot.Transpose
	}{
		{"csr row", sparsedot.CSR, sparsedot.RowMajor, sparsedot.NoTrans, sparsedot.NoTrans},
		{"csr col", sparsedot.CSR, sparsedot.ColMajor, sparsedot.NoTrans, sparsedot.NoTrans},
		{"csr At", sparsedot.CSR, sparsedot.RowMajor, sparsedot.Trans, sparsedot.NoTrans},
		{"csr Dt", sparsedot.CSR, sparsedot.RowMajor, sparsedot.NoTrans, sparsedot.Trans},
		{"csc col", sparsedot.CSC, sparsedot.ColMajor, sparsedot.NoTrans, sparsedot.NoTrans},
		{"csc Dt", sparsedot.CSC, sparsedot.RowMajor, sparsedot.Trans, sparsedot.Trans},
	}
	rng := rand.New(rand.NewPCG(5, 6))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, rec := newTestBridge(t)
			m, k, n := 5, 4, 3
			ar, ac := m, k
			if tt.transA != sparsedot.NoTrans {
				ar, ac = k, m
			}
			dr, dc := k, n
			if tt.transB != sparsedot.NoTrans {
				dr, dc = n, k
			}
			a, aRef := randomSparse(t, rng, tt.format, ar, ac, 0.5)
			d, dRef := randomDense(rng, dr, dc, tt.layout)

			res, err := b.Execute(context.Background(), sparsedot.Request{
				Kind: sparsedot.SparseDense, A: a, Dense: d,
				TransA: tt.transA, TransB: tt.transB,
			})
			require.NoError(t, err)

			var opA, opD mat.Matrix = aRef, dRef
			if tt.transA != sparsedot.NoTrans {
				opA = aRef.T()
			}
			if tt.transB != sparsedot.NoTrans {
				opD = dRef.T()
			}
			var want mat.Dense
			want.Mul(opA, opD)
			requireDenseEqual(t, &want, res.Dense)
			require.Empty(t, rec.find("warn", "dense operand copied"))
		})
	}
}

func TestDenseSparse(t *testing.T) {
	tests := []struct {
		name   string
		format sparsedot.Format
		layout sparsedot.Layout
		transA sparsedot.Transpose
	}{
		{"csr row", sparsedot.CSR, sparsedot.RowMajor, sparsedot.NoTrans},
		{"csr col", sparsedot.CSR, sparsedot.ColMajor, sparsedot.NoTrans},
		{"csr At", sparsedot.CSR, sparsedot.RowMajor, sparsedot.Trans},
		{"csc row", sparsedot.CSC, sparsedot.RowMajor, sparsedot.NoTrans},
	}
	rng := rand.New(rand.NewPCG(7, 8))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, _ := newTestBridge(t)
			m, k, n := 2, 4, 3
			ar, ac := k, n
			if tt.transA != sparsedot.NoTrans {
				ar, ac = n, k
			}
			a, aRef := randomSparse(t, rng, tt.format, ar, ac, 0.5)
			d, dRef := randomDense(rng, m, k, tt.layout)

			res, err := b.Execute(context.Background(), sparsedot.Request{
				Kind: sparsedot.DenseSparse, A: a, Dense: d, TransA: tt.transA,
			})
			require.NoError(t, err)

			var opA mat.Matrix = aRef
			if tt.transA != sparsedot.NoTrans {
				opA = aRef.T()
			}
			var want mat.Dense
			want.Mul(dRef, opA)
			requireDenseEqual(t, &want, res.Dense)
			require.Equal(t, tt.layout, res.Dense.Layout())
		})
	}
}

func TestLayoutCopy(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(9, 10))
	a, aRef := randomSparse(t, rng, sparsedot.CSC, 4, 4, 0.5)
	d, dRef := randomDense(rng, 4, 2, sparsedot.RowMajor)
	var want mat.Dense
	want.Mul(aRef, dRef)

	b, _, rec := newTestBridge(t)
	req := sparsedot.Request{Kind: sparsedot.SparseDense, A: a, Dense: d}
	_, err := b.Execute(ctx, req)
	require.ErrorIs(t, err, sparsedot.ErrLayoutMismatch)
	require.Zero(t, b.Outstanding())

	req.AllowCopy = true
	res, err := b.Execute(ctx, req)
	require.NoError(t, err)
	requireDenseEqual(t, &want, res.Dense)
	copies := rec.find("warn", "dense operand copied")
	require.Len(t, copies, 1)
	require.Equal(t, 1, copies[0].arg("operand"))
	require.Equal(t, "64 B", copies[0].arg("bytes"))
}

func TestOutputAccumulation(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)

	out := ones(3, 2, sparsedot.RowMajor)
	res, err := b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.SparseDense,
		A:     identity3(t),
		Dense: ones(3, 2, sparsedot.RowMajor),
		Alpha: sparsedot.Real(3),
		Beta:  sparsedot.Real(2),
		Out:   out,
	})
	require.NoError(t, err)
	require.Same(t, out, res.Dense)
	requireDenseEqual(t, mat.NewDense(3, 2, []float64{5, 5, 8, 8, 11, 11}), out)

	// An output in the other layout needs a working copy.
	colOut := ones(3, 2, sparsedot.ColMajor)
	req := sparsedot.Request{
		Kind:  sparsedot.SparseDense,
		A:     identity3(t),
		Dense: ones(3, 2, sparsedot.RowMajor),
		Beta:  sparsedot.Real(1),
		Out:   colOut,
	}
	_, err = b.Execute(ctx, req)
	require.ErrorIs(t, err, sparsedot.ErrLayoutMismatch)

	req.AllowCopy = true
	_, err = b.Execute(ctx, req)
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 2, []float64{2, 2, 3, 3, 4, 4}), colOut)

	_, err = b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.SparseDense,
		A:     identity3(t),
		Dense: ones(3, 2, sparsedot.RowMajor),
		Out:   ones(2, 3, sparsedot.RowMajor),
	})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)
}

func TestDenseSparseOutput(t *testing.T) {
	b, _, _ := newTestBridge(t)
	out := ones(2, 3, sparsedot.RowMajor)
	_, err := b.Execute(context.Background(), sparsedot.Request{
		Kind:  sparsedot.DenseSparse,
		A:     identity3(t),
		Dense: ones(2, 3, sparsedot.RowMajor),
		Beta:  sparsedot.Real(-1),
		Out:   out,
	})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(2, 3, []float64{0, 1, 2, 0, 1, 2}), out)
}

func TestOutputAddsByDefault(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)
	diag, err := sparsedot.NewCSR(3, 3, []float64{1, 2, 3}, []int32{0, 1, 2}, []int32{0, 1, 2, 3})
	require.NoError(t, err)

	y := []float64{10, 10, 10}
	_, err = b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.SparseVector,
		A:     diag,
		Dense: sparsedot.NewVector([]float64{1, 1, 1}),
		Out:   sparsedot.NewVector(y),
	})
	require.NoError(t, err)
	require.Equal(t, []float64{11, 12, 13}, y)

	out, err := sparsedot.NewDense(3, 2, sparsedot.RowMajor, []float64{10, 10, 10, 10, 10, 10})
	require.NoError(t, err)
	_, err = b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.SparseDense,
		A:     diag,
		Dense: ones(3, 2, sparsedot.RowMajor),
		Out:   out,
	})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 2, []float64{11, 11, 12, 12, 13, 13}), out)

	left := ones(2, 3, sparsedot.RowMajor)
	_, err = b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.DenseSparse,
		A:     diag,
		Dense: ones(2, 3, sparsedot.RowMajor),
		Out:   left,
	})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(2, 3, []float64{2, 3, 4, 2, 3, 4}), left)

	// The helpers overwrite.
	dst := []float64{10, 10, 10}
	require.NoError(t, sparsedot.MulVec(ctx, b, diag, sparsedot.NoTrans, dst, []float64{1, 1, 1}))
	require.Equal(t, []float64{1, 2, 3}, dst)

	// An all-zero operand leaves Out as it was.
	empty, err := sparsedot.NewCSR(3, 3, []float64{}, []int32{}, nil)
	require.NoError(t, err)
	_, err = b.Execute(ctx, sparsedot.Request{
		Kind:  sparsedot.SparseVector,
		A:     empty,
		Dense: sparsedot.NewVector([]float64{1, 1, 1}),
		Out:   sparsedot.NewVector(y),
	})
	require.NoError(t, err)
	require.Equal(t, []float64{11, 12, 13}, y)
}

func TestEmptyOperands(t *testing.T) {
	ctx := context.Background()
	b, eng, _ := newTestBridge(t)

	noEntries, err := sparsedot.NewCSR(3, 3, []float64{}, []int32{}, nil)
	require.NoError(t, err)
	noRows, err := sparsedot.NewCSR(0, 3, []float64{}, []int32{}, nil)
	require.NoError(t, err)
	noCols, err := sparsedot.NewCSR(3, 0, []float64{}, []int32{}, nil)
	require.NoError(t, err)

	res, err := b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseDense, A: noEntries, Dense: ones(3, 2, sparsedot.RowMajor)})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 2, nil), res.Dense)

	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseDense, A: noRows, Dense: ones(3, 2, sparsedot.RowMajor)})
	require.NoError(t, err)
	r, c := res.Dense.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 2, c)

	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseDense, A: noCols, Dense: ones(0, 2, sparsedot.RowMajor)})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 2, nil), res.Dense)

	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseSparse, A: noEntries, B: identity3(t)})
	require.NoError(t, err)
	rows, cols := res.Sparse.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Zero(t, res.Sparse.NNZ())
	require.Equal(t, sparsedot.Narrow, res.Sparse.IndexWidth())

	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: noEntries, Dense: ones(3, 1, sparsedot.ColMajor)})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 1, nil), res.Dense)

	// Empty operands still need conforming shapes.
	_, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseDense, A: noEntries, Dense: ones(2, 2, sparsedot.RowMajor)})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)

	require.Zero(t, eng.Live())
}

func TestZeroAlpha(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)

	out := ones(3, 2, sparsedot.RowMajor)
	_, err := b.Execute(ctx, sparsedot.Request{
		Kind: sparsedot.SparseDense, A: identity3(t), Dense: ones(3, 2, sparsedot.RowMajor),
		Alpha: sparsedot.Real(0), Beta: sparsedot.Real(4), Out: out,
	})
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(3, 2, []float64{4, 4, 4, 4, 4, 4}), out)

	_, err = b.Execute(ctx, sparsedot.Request{
		Kind: sparsedot.SparseDense, A: identity3(t), Dense: ones(2, 2, sparsedot.RowMajor),
		Alpha: sparsedot.Real(0),
	})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)

	res, err := b.Execute(ctx, sparsedot.Request{
		Kind: sparsedot.SparseSparse, A: identity3(t), B: identity3(t), Alpha: sparsedot.Real(0),
	})
	require.NoError(t, err)
	require.Zero(t, res.Sparse.NNZ())
}

func TestSparseVector(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(11, 12))
	b, _, _ := newTestBridge(t)
	a, aRef := randomSparse(t, rng, sparsedot.CSR, 5, 4, 0.5)

	x := []float64{1, -2, 3, 0.5}
	res, err := b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: sparsedot.NewVector(x)})
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(aRef, mat.NewVecDense(4, x))
	requireDenseEqual(t, &want, res.Dense)

	// A row vector keeps its orientation.
	row, err := sparsedot.NewDense(1, 4, sparsedot.RowMajor, x)
	require.NoError(t, err)
	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: row})
	require.NoError(t, err)
	require.Equal(t, 1, res.Dense.Rows())
	requireDenseEqual(t, want.T(), res.Dense)

	// y = 2·Aᵀ·v + y
	v := []float64{1, 1, 0, 2, -1}
	y := []float64{1, 1, 1, 1}
	_, err = b.Execute(ctx, sparsedot.Request{
		Kind: sparsedot.SparseVector, A: a, TransA: sparsedot.Trans, Dense: sparsedot.NewVector(v),
		Alpha: sparsedot.Real(2), Beta: sparsedot.Real(1), Out: sparsedot.NewVector(y),
	})
	require.NoError(t, err)
	var wantT mat.VecDense
	wantT.MulVec(aRef.T(), mat.NewVecDense(5, v))
	for i := range y {
		require.InDelta(t, 2*wantT.AtVec(i)+1, y[i], 1e-9)
	}

	_, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: sparsedot.NewVector(v)})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)
}

func TestStridedVector(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)
	x, err := sparsedot.NewDenseStrided(1, 3, 2, sparsedot.ColMajor, []float64{1, 0, 1, 0, 1})
	require.NoError(t, err)

	req := sparsedot.Request{Kind: sparsedot.SparseVector, A: identity3(t), Dense: x}
	_, err = b.Execute(ctx, req)
	require.ErrorIs(t, err, sparsedot.ErrLayoutMismatch)

	req.AllowCopy = true
	res, err := b.Execute(ctx, req)
	require.NoError(t, err)
	requireDenseEqual(t, mat.NewDense(1, 3, []float64{1, 2, 3}), res.Dense)
}

func TestConjugateTranspose(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)
	a, err := sparsedot.NewCSR(2, 3, []complex128{1 + 1i, 2, 3i}, []int32{0, 2, 1}, []int32{0, 2, 3})
	require.NoError(t, err)

	res, err := b.Execute(ctx, sparsedot.Request{
		Kind: sparsedot.SparseVector, A: a, TransA: sparsedot.ConjTrans,
		Dense: sparsedot.NewVector([]complex128{1, 1}),
	})
	require.NoError(t, err)
	require.Equal(t, []complex128{1 - 1i, -3i, 2}, res.Dense.Data())

	// Dᴴ on a dense operand is only available as a copy.
	d, err := sparsedot.NewDense(1, 3, sparsedot.RowMajor, []complex128{1i, 0, 1})
	require.NoError(t, err)
	req := sparsedot.Request{Kind: sparsedot.SparseDense, A: a, Dense: d, TransB: sparsedot.ConjTrans}
	_, err = b.Execute(ctx, req)
	require.ErrorIs(t, err, sparsedot.ErrLayoutMismatch)

	req.AllowCopy = true
	res, err = b.Execute(ctx, req)
	require.NoError(t, err)
	// A·Dᴴ = [[(1+i)(-i) + 2·1], [3i·0]]
	require.Equal(t, complex128(3-1i), res.Dense.At(0, 0))
	require.Equal(t, complex128(0), res.Dense.At(1, 0))
}

func TestStructuredMultiply(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)
	// Lower triangle of [[2 1] [1 3]].
	a, err := sparsedot.NewCSR(2, 2, []float64{2, 1, 3}, []int32{0, 0, 1}, []int32{0, 1, 3})
	require.NoError(t, err)
	x := sparsedot.NewVector([]float64{1, 1})

	tests := []struct {
		name      string
		structure sparsedot.Structure
		want      []float64
	}{
		{"general", sparsedot.Structure{}, []float64{2, 4}},
		{"symmetric", sparsedot.Structure{Kind: sparsedot.Symmetric, Fill: sparsedot.Lower}, []float64{3, 4}},
		{"triangular unit", sparsedot.Structure{Kind: sparsedot.Triangular, Fill: sparsedot.Lower, UnitDiag: true}, []float64{1, 2}},
		{"diagonal", sparsedot.Structure{Kind: sparsedot.Diagonal}, []float64{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: x, Structure: tt.structure})
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Dense.Data())
		})
	}
}

func TestDot(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBridge(t)

	row, err := sparsedot.NewCSR(1, 4, []float64{2, 3}, []int32{1, 3}, []int32{0, 2})
	require.NoError(t, err)
	res, err := b.Execute(ctx, sparsedot.Request{Kind: sparsedot.Dot, A: row, Dense: sparsedot.NewVector([]float64{1, 1, 1, 2})})
	require.NoError(t, err)
	require.Equal(t, 8.0, res.Scalar)

	col, err := sparsedot.NewCSC(4, 1, []float32{2, 3}, []int32{1, 3}, []int32{0, 2})
	require.NoError(t, err)
	res, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.Dot, A: col, Dense: sparsedot.NewVector([]float32{1, 1, 1, 2})})
	require.NoError(t, err)
	require.Equal(t, float32(8), res.Scalar)

	_, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.Dot, A: identity3(t), Dense: sparsedot.NewVector([]float64{1, 1, 1})})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)
}

func TestMulVec(t *testing.T) {
	b, _, _ := newTestBridge(t)
	dst := make([]float64, 3)
	require.NoError(t, sparsedot.MulVec(context.Background(), b, identity3(t), sparsedot.NoTrans, dst, []float64{1, 1, 1}))
	require.Equal(t, []float64{1, 2, 3}, dst)

	err := sparsedot.MulVec(context.Background(), b, identity3(t), sparsedot.NoTrans, dst, []float64{1, 1})
	require.ErrorIs(t, err, sparsedot.ErrShapeMismatch)
}
