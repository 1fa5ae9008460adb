package solver

import (
	"context"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

// Operator is a square linear map applied through the bridge.
type Operator interface {
	Dims() (rows, cols int)
	MulVec(ctx context.Context, dst, x []float64) error
}

// Retained applies a retained matrix, reusing its native handle across
// iterations.
func Retained(m *sparsedot.Matrix) Operator { return retainedOp{m} }

// Sparse applies d on b, creating a native handle per product.
func Sparse(b *sparsedot.Bridge, d *sparsedot.Descriptor) Operator { return sparseOp{b, d} }

type retainedOp struct{ m *sparsedot.Matrix }

func (o retainedOp) Dims() (int, int) { return o.m.Shape() }

func (o retainedOp) MulVec(ctx context.Context, dst, x []float64) error {
	return sparsedot.MulVecRetained(ctx, o.m, dst, x)
}

type sparseOp struct {
	b *sparsedot.Bridge
	d *sparsedot.Descriptor
}

func (o sparseOp) Dims() (int, int) { return o.d.Shape() }

func (o sparseOp) MulVec(ctx context.Context, dst, x []float64) error {
	return sparsedot.MulVec(ctx, o.b, o.d, sparsedot.NoTrans, dst, x)
}
