package sparsedot

import (
	"context"
	"time"

	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// Number is an optional scalar coefficient. The zero value is unset.
type Number struct {
	value complex128
	set   bool
}

// Real returns a real coefficient.
func Real(x float64) Number { return Number{value: complex(x, 0), set: true} }

// Complex returns a complex coefficient. A non-zero imaginary part is only
// accepted for complex operands.
func Complex(z complex128) Number { return Number{value: z, set: true} }

func (n Number) or(def complex128) complex128 {
	if !n.set {
		return def
	}
	return n.value
}

// Request describes one operation.
//
// A is the sparse operand of every kind. B is the second sparse operand of
// SparseSparse. Dense is the dense operand of SparseDense and DenseSparse,
// and the dense vector of SparseVector and Dot. TransB applies to B or Dense.
type Request struct {
	Kind  OpKind
	A     *Descriptor
	B     *Descriptor
	Dense *Dense

	TransA Transpose
	TransB Transpose

	// Alpha defaults to 1.
	Alpha Number
	// Beta scales Out before accumulation and defaults to 1, so a result
	// is added to Out. It requires Out.
	Beta Number
	// Out receives the result of SparseDense, DenseSparse and SparseVector
	// when set; otherwise a new matrix is allocated.
	Out *Dense

	// Structure selects how A's stored entries are read.
	Structure Structure

	// AllowCopy permits copying a dense operand whose layout the routine
	// cannot read in place. Each copy is logged with its cost.
	AllowCopy bool
}

// Result holds the output of an operation. Exactly one of Sparse, Dense and
// Scalar is set, according to Kind. Result buffers are owned by the caller.
type Result struct {
	Kind   OpKind
	Sparse *Descriptor
	Dense  *Dense
	// Scalar holds a value of the operands' element type for Dot.
	Scalar any
}

func (r *Request) check() error {
	const op = "execute"
	if r.Kind < SparseSparse || r.Kind > Dot {
		return newError(ErrNoMatchingVariant, op, "%s", r.Kind)
	}
	if r.A == nil {
		return newError(ErrInvalidStructure, op, "missing sparse operand A")
	}
	switch r.Kind {
	case SparseSparse:
		if r.B == nil {
			return newError(ErrInvalidStructure, op, "missing sparse operand B")
		}
	default:
		if r.Dense == nil {
			return newError(ErrInvalidStructure, op, "missing dense operand")
		}
	}
	return nil
}

// Execute runs req. Every native handle acquired for it is released before
// Execute returns. The context only carries logging values; native calls are
// not interruptible.
func (b *Bridge) Execute(ctx context.Context, req Request) (*Result, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	v, err := b.resolve(&req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var res *Result
	switch req.Kind {
	case SparseSparse:
		res, err = b.sparseSparse(ctx, v, &req)
	case SparseDense, DenseSparse:
		res, err = b.sparseDense(ctx, v, &req)
	case SparseVector:
		res, err = b.sparseVector(ctx, v, &req)
	case Dot:
		res, err = b.dot(ctx, v, &req)
	}
	if err != nil {
		return nil, err
	}
	b.logger.Debug(ctx, "operation complete",
		"kind", req.Kind,
		"routine", v.Routine,
		"dtype", v.DType,
		"format", v.Format,
		"elapsed", time.Since(start),
	)
	return res, nil
}

// Multiply runs req on the default bridge.
func Multiply(ctx context.Context, req Request) (*Result, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.Execute(ctx, req)
}

// copyOperand materialises op(d) in layout when the request allows copies.
func (b *Bridge) copyOperand(ctx context.Context, req *Request, idx int, d *Dense, t Transpose, layout Layout, why string) (*Dense, error) {
	if !req.AllowCopy {
		return nil, denseError(ErrLayoutMismatch, "execute", idx, d, "%s; set AllowCopy to copy", why)
	}
	out := d.materialize(t, layout)
	b.logger.Warn(ctx, "dense operand copied",
		"operand", idx,
		"reason", why,
		"layout", layout,
		logging.Cost("bytes", out.bytes()),
	)
	return out, nil
}
