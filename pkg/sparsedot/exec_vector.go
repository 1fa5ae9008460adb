package sparsedot

import (
	"context"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

// sparseVector computes y = alpha·op(A)·x + beta·y. The result keeps the
// orientation of x.
func (b *Bridge) sparseVector(ctx context.Context, v *Variant, req *Request) (*Result, error) {
	const op = "execute"
	a, x := req.A, req.Dense
	m, k := a.opShape(req.TransA)
	if !x.isVector() || x.length() != k {
		return nil, denseError(ErrShapeMismatch, op, 1, x, "want a vector of length %d", k)
	}
	if out := req.Out; out != nil && (!out.isVector() || out.length() != m) {
		return nil, denseError(ErrShapeMismatch, op, 2, out, "want a vector of length %d", m)
	}

	xs, err := b.contiguous(ctx, req, 1, x)
	if err != nil {
		return nil, err
	}
	var y, back *Dense
	switch out := req.Out; {
	case out == nil:
		rows, cols := m, 1
		if x.cols != 1 {
			rows, cols = 1, m
		}
		y = Zeros(a.dtype, rows, cols, ColMajor)
	case out.inc() == 1:
		y = out
	default:
		if y, err = b.contiguous(ctx, req, 2, out); err != nil {
			return nil, err
		}
		back = out
	}

	alpha, beta := req.Alpha.or(1), req.Beta.or(1)
	if req.Out == nil {
		beta = 0
	}
	if a.empty() || alpha == 0 {
		if req.Out != nil {
			scaleDense(req.Out, beta)
		}
		return &Result{Kind: req.Kind, Dense: resultVector(req, y)}, nil
	}

	err = b.withHandles(ctx, op, v, []*Descriptor{a}, func(hs []backend.Handle) error {
		st := b.engine.MV(backend.Symbol(v.Routine), backend.MVArgs{
			Op:    req.TransA.native(),
			Alpha: alpha,
			A:     hs[0],
			Descr: req.Structure.native(),
			X:     xs.vectorData(),
			Beta:  beta,
			Y:     y.vectorData(),
		})
		if st != backend.StatusSuccess {
			return statusError(phaseExecute, op, 0, a, v.Routine, st)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if back != nil {
		copyInto(back, y)
	}
	return &Result{Kind: req.Kind, Dense: resultVector(req, y)}, nil
}

func resultVector(req *Request, y *Dense) *Dense {
	if req.Out != nil {
		return req.Out
	}
	return y
}

// dot computes the scalar product of a sparse vector A (1×n or n×1) with a
// dense vector of length n.
func (b *Bridge) dot(ctx context.Context, v *Variant, req *Request) (*Result, error) {
	const op = "execute"
	a, x := req.A, req.Dense
	if a.rows != 1 && a.cols != 1 {
		return nil, operandError(ErrShapeMismatch, op, 0, a, "sparse operand is not a vector")
	}
	n := a.rows * a.cols
	if !x.isVector() || x.length() != n {
		return nil, denseError(ErrShapeMismatch, op, 1, x, "want a vector of length %d", n)
	}
	res := &Result{Kind: req.Kind}

	xs, err := b.contiguous(ctx, req, 1, x)
	if err != nil {
		return nil, err
	}
	y := Zeros(a.dtype, 1, 1, ColMajor)
	alpha := req.Alpha.or(1)
	if a.empty() || alpha == 0 {
		res.Scalar = scalarAt(y)
		return res, nil
	}

	// A row vector times x is a 1-element product; a column vector is
	// multiplied transposed.
	t := NoTrans
	if a.rows != 1 {
		t = Trans
	}
	err = b.withHandles(ctx, op, v, []*Descriptor{a}, func(hs []backend.Handle) error {
		st := b.engine.MV(backend.Symbol(v.Routine), backend.MVArgs{
			Op:    t.native(),
			Alpha: alpha,
			A:     hs[0],
			Descr: backend.GeneralDescr,
			X:     xs.vectorData(),
			Y:     y.vectorData(),
		})
		if st != backend.StatusSuccess {
			return statusError(phaseExecute, op, 0, a, v.Routine, st)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Scalar = scalarAt(y)
	return res, nil
}

// contiguous returns d when its elements are adjacent, or a compact copy
// when the request allows one.
func (b *Bridge) contiguous(ctx context.Context, req *Request, idx int, d *Dense) (*Dense, error) {
	if d.inc() == 1 {
		return d, nil
	}
	return b.copyOperand(ctx, req, idx, d, NoTrans, d.compactLayout(), "strided vector")
}

func scalarAt(d *Dense) any {
	switch v := d.data.(type) {
	case []float32:
		return v[0]
	case []float64:
		return v[0]
	case []complex64:
		return v[0]
	case []complex128:
		return v[0]
	}
	return nil
}
