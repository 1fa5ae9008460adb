package sparsedot

import "context"

// MulVec computes dst = op(A)·x on the bridge b.
func MulVec[V Scalar](ctx context.Context, b *Bridge, a *Descriptor, t Transpose, dst, x []V) error {
	_, err := b.Execute(ctx, Request{
		Kind:   SparseVector,
		A:      a,
		Dense:  NewVector(x),
		Out:    NewVector(dst),
		Beta:   Real(0),
		TransA: t,
	})
	return err
}

// MulVecRetained computes dst = A·x through a retained matrix.
func MulVecRetained[V Scalar](ctx context.Context, m *Matrix, dst, x []V) error {
	_, err := m.Execute(ctx, Request{
		Kind:  SparseVector,
		Dense: NewVector(x),
		Out:   NewVector(dst),
		Beta:  Real(0),
	})
	return err
}

// DotVec returns the scalar product of the sparse vector a with x on the
// default bridge.
func DotVec[V Scalar](ctx context.Context, a *Descriptor, x []V) (V, error) {
	var zero V
	res, err := Multiply(ctx, Request{Kind: Dot, A: a, Dense: NewVector(x)})
	if err != nil {
		return zero, err
	}
	v, ok := res.Scalar.(V)
	if !ok {
		return zero, newError(ErrNoMatchingVariant, "dot", "result is %T", res.Scalar)
	}
	return v, nil
}
