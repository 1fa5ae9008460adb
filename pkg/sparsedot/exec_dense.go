package sparsedot

import (
	"context"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

// densePlan is a sparse × dense call expressed as C = alpha·op(A)·B + beta·C
// with B and C in one layout.
type densePlan struct {
	op   Transpose
	b, c *Dense
	// out receives c after the call when c is a working copy.
	out *Dense
}

// sparseDense computes SparseDense and DenseSparse products. A dense operand
// on the left is handled as (op(A)ᵀ·op(D)ᵀ)ᵀ, which only reinterprets the
// dense layouts.
func (b *Bridge) sparseDense(ctx context.Context, v *Variant, req *Request) (*Result, error) {
	const op = "execute"
	a, d := req.A, req.Dense
	ma, ka := a.opShape(req.TransA)
	dr, dc := d.rows, d.cols
	if req.TransB != NoTrans {
		dr, dc = dc, dr
	}

	var m, n int
	switch req.Kind {
	case SparseDense:
		if ka != dr {
			return nil, denseError(ErrShapeMismatch, op, 1, d, "op(A) is %dx%d, op(D) is %dx%d", ma, ka, dr, dc)
		}
		m, n = ma, dc
	default:
		if dc != ma {
			return nil, denseError(ErrShapeMismatch, op, 1, d, "op(D) is %dx%d, op(A) is %dx%d", dr, dc, ma, ka)
		}
		m, n = dr, ka
	}
	if out := req.Out; out != nil && (out.rows != m || out.cols != n) {
		return nil, denseError(ErrShapeMismatch, op, 2, out, "output must be %dx%d", m, n)
	}

	plan, err := b.planDense(ctx, v, req, m, n)
	if err != nil {
		return nil, err
	}
	result := req.Out
	if result == nil {
		result = plan.c
		if req.Kind == DenseSparse {
			result = plan.c.T()
		}
	}

	alpha, beta := req.Alpha.or(1), req.Beta.or(1)
	if req.Out == nil {
		beta = 0
	}
	if a.empty() || m == 0 || n == 0 || alpha == 0 {
		if req.Out != nil {
			scaleDense(req.Out, beta)
		}
		return &Result{Kind: req.Kind, Dense: result}, nil
	}

	err = b.withHandles(ctx, op, v, []*Descriptor{a}, func(hs []backend.Handle) error {
		st := b.engine.MM(backend.Symbol(v.Routine), backend.MMArgs{
			Op:      plan.op.native(),
			Alpha:   alpha,
			A:       hs[0],
			Descr:   req.Structure.native(),
			Layout:  plan.b.layout.native(),
			B:       plan.b.data,
			Columns: plan.b.cols,
			LDB:     plan.b.stride,
			Beta:    beta,
			C:       plan.c.data,
			LDC:     plan.c.stride,
		})
		if st != backend.StatusSuccess {
			return statusError(phaseExecute, op, 0, a, v.Routine, st)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if plan.out != nil {
		copyInto(plan.out, plan.c)
	}
	return &Result{Kind: req.Kind, Dense: result}, nil
}

// planDense picks the routine layout and decides which dense operands need
// copies. No copy is made unless the request allows it.
func (b *Bridge) planDense(ctx context.Context, v *Variant, req *Request, m, n int) (*densePlan, error) {
	d := req.Dense
	p := &densePlan{op: req.TransA}

	// bView is the dense right-hand side of the native call as a view when
	// one exists; conj marks a conjugation only a copy can provide.
	var bView *Dense
	conj := req.TransB == ConjTrans && d.dtype.IsComplex()
	switch {
	case req.Kind == SparseDense && req.TransB == NoTrans:
		bView = d
	case req.Kind == SparseDense:
		bView = d.T()
	case req.TransB == NoTrans:
		bView = d.T()
	default:
		bView = d
	}
	if req.Kind == DenseSparse {
		if req.TransA == NoTrans {
			p.op = Trans
		} else {
			p.op = NoTrans
		}
	}

	layout := bView.layout
	if !v.Layouts.Has(layout) {
		layout = layout.flip()
	}
	switch {
	case conj:
		src := d
		if req.Kind == DenseSparse {
			src = d.T()
		}
		copied, err := b.copyOperand(ctx, req, 1, src, ConjTrans, layout, "conjugate transpose of dense operand")
		if err != nil {
			return nil, err
		}
		p.b = copied
	case layout != bView.layout:
		copied, err := b.copyOperand(ctx, req, 1, bView, NoTrans, layout, "dense layout "+bView.layout.String()+" unsupported by "+v.Routine)
		if err != nil {
			return nil, err
		}
		p.b = copied
	default:
		p.b = bView
	}

	// cRows×cCols is the shape of the native output.
	cRows, cCols := m, n
	if req.Kind == DenseSparse {
		cRows, cCols = n, m
	}
	switch out := req.Out; {
	case out == nil:
		p.c = Zeros(d.dtype, cRows, cCols, layout)
	default:
		cView := out
		if req.Kind == DenseSparse {
			cView = out.T()
		}
		if cView.layout == layout {
			p.c = cView
			break
		}
		copied, err := b.copyOperand(ctx, req, 2, cView, NoTrans, layout, "output layout differs from "+layout.String())
		if err != nil {
			return nil, err
		}
		p.c, p.out = copied, cView
	}
	return p, nil
}

// scaleDense applies d = beta·d over the elements of the view.
func scaleDense(d *Dense, beta complex128) {
	switch v := d.data.(type) {
	case []float32:
		scaleView(d, v, beta)
	case []float64:
		scaleView(d, v, beta)
	case []complex64:
		scaleView(d, v, beta)
	case []complex128:
		scaleView(d, v, beta)
	}
}

func scaleView[V Scalar](d *Dense, v []V, beta complex128) {
	s := scalarOf[V](beta)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			p := d.offset(i, j)
			if beta == 0 {
				v[p] = 0
			} else {
				v[p] *= s
			}
		}
	}
}
