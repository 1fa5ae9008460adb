package sparsedot

import (
	"context"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// sparseSparse computes alpha·op(A)·op(B). A transposed B is converted to
// row-compressed form first; the product is ordered, exported and copied
// into Go memory before its handle is destroyed.
func (b *Bridge) sparseSparse(ctx context.Context, v *Variant, req *Request) (*Result, error) {
	const op = "execute"
	a, bm := req.A, req.B
	m, k := a.opShape(req.TransA)
	kb, n := bm.opShape(req.TransB)
	if k != kb {
		return nil, operandError(ErrShapeMismatch, op, 1, bm, "op(A) is %dx%d, op(B) is %dx%d", m, k, kb, n)
	}
	alpha := req.Alpha.or(1)
	if a.empty() || bm.empty() || alpha == 0 {
		out, err := emptyDescriptor(a, m, n)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: req.Kind, Sparse: out}, nil
	}

	var out *Descriptor
	err := b.withHandles(ctx, op, v, []*Descriptor{a, bm}, func(hs []backend.Handle) error {
		hb := hs[1]
		if req.TransB != NoTrans {
			t, st := b.engine.Convert(backend.Symbol(v.Convert), hb, req.TransB.native())
			if st != backend.StatusSuccess {
				return statusError(phaseExecute, op, 1, bm, v.Convert, st)
			}
			conv := b.own(t, v.Destroy)
			defer conv.close(ctx)
			b.logger.Warn(ctx, "sparse operand converted for transpose",
				"operand", 1,
				"routine", v.Convert,
				"transpose", req.TransB,
				logging.Cost("bytes", bm.bytes()),
			)
			hb = t
		}

		c, st := b.engine.SpMM(backend.Symbol(v.Routine), req.TransA.native(), hs[0], hb)
		if st != backend.StatusSuccess {
			return statusError(phaseExecute, op, -1, a, v.Routine, st)
		}
		prod := b.own(c, v.Destroy)
		defer prod.close(ctx)

		if st := b.engine.Order(c); st != backend.StatusSuccess {
			return statusError(phaseExecute, op, -1, a, v.Order, st)
		}
		exported, st := b.engine.Export(backend.Symbol(v.Export), c)
		if st != backend.StatusSuccess {
			return statusError(phaseExecute, op, -1, a, v.Export, st)
		}
		d, err := fromNative(exported)
		if err != nil {
			e := newError(ErrEngineExecutionFailure, op, "malformed export")
			e.Routine, e.Err = v.Export, err
			return e
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.rows != m || out.cols != n {
		e := operandError(ErrEngineExecutionFailure, op, -1, out, "product is %dx%d, want %dx%d", out.rows, out.cols, m, n)
		e.Routine = v.Routine
		return nil, e
	}
	if alpha != 1 {
		scaleSlice(out.values, alpha)
	}
	return &Result{Kind: req.Kind, Sparse: out}, nil
}

// emptyDescriptor returns an m×n matrix with no stored values, shaped like
// the product of like.
func emptyDescriptor(like *Descriptor, m, n int) (*Descriptor, error) {
	s := Spec{Format: like.format, Rows: m, Cols: n, BlockSize: like.blockSize}
	switch like.dtype {
	case Float32:
		s.Values = []float32{}
	case Float64:
		s.Values = []float64{}
	case Complex64:
		s.Values = []complex64{}
	case Complex128:
		s.Values = []complex128{}
	}
	if like.width == Wide {
		s.Indices = []int64{}
	} else {
		s.Indices = []int32{}
	}
	return Build(s)
}

func (d *Descriptor) bytes() uint64 {
	idx := 4
	if d.width == Wide {
		idx = 8
	}
	bs := d.blockSize * d.blockSize
	return uint64(d.stored*d.dtype.Size() + (d.stored/bs)*idx)
}

// scaleSlice multiplies every element of a value slice by alpha in place.
func scaleSlice(values any, alpha complex128) {
	switch v := values.(type) {
	case []float32:
		scaleValues(v, alpha)
	case []float64:
		scaleValues(v, alpha)
	case []complex64:
		scaleValues(v, alpha)
	case []complex128:
		scaleValues(v, alpha)
	}
}

func scaleValues[V Scalar](v []V, alpha complex128) {
	s := scalarOf[V](alpha)
	for i := range v {
		v[i] *= s
	}
}

func scalarOf[V Scalar](z complex128) V {
	var v V
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(real(z))
	case *float64:
		*p = real(z)
	case *complex64:
		*p = complex64(z)
	case *complex128:
		*p = z
	}
	return v
}
