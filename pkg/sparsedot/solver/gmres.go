// Package solver solves sparse linear systems with Krylov methods whose
// matrix products run on the sparsedot bridge.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// ErrNotConverged reports that the iteration limit was reached before the
// residual met the tolerance. The Result returned with it holds the last
// iterate.
var ErrNotConverged = errors.New("solver: not converged")

// Result is the outcome of a solve.
type Result struct {
	X          []float64
	Iterations int
	// Residual is the norm of b - A·X estimated by the last iteration.
	Residual  float64
	Converged bool
}

// Option configures GMRES.
type Option func(*options)

type options struct {
	tol, atol float64
	restart   int
	maxIter   int
	x0        []float64
	logger    logging.Logger
}

// WithTolerance stops once ‖b - A·x‖ <= max(rtol·‖b‖, atol). The default is
// rtol 1e-6 and atol 0.
func WithTolerance(rtol, atol float64) Option {
	return func(o *options) { o.tol, o.atol = rtol, atol }
}

// WithRestart sets the Krylov subspace size between restarts. The default is
// min(20, n).
func WithRestart(m int) Option { return func(o *options) { o.restart = m } }

// WithMaxIter bounds the total number of inner iterations. The default is
// 10·n.
func WithMaxIter(n int) Option { return func(o *options) { o.maxIter = n } }

// WithInitialGuess starts from x0 instead of zero. x0 is not modified.
func WithInitialGuess(x0 []float64) Option { return func(o *options) { o.x0 = x0 } }

// WithLogger routes progress records to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// GMRES solves A·x = b with restarted GMRES.
func GMRES(ctx context.Context, a Operator, b []float64, opts ...Option) (*Result, error) {
	rows, cols := a.Dims()
	n := len(b)
	if rows != cols || rows != n {
		return nil, fmt.Errorf("%w: gmres: operator is %dx%d, right-hand side has %d elements", sparsedot.ErrShapeMismatch, rows, cols, n)
	}
	o := options{tol: 1e-6, restart: min(20, n), maxIter: 10 * n, logger: logging.New(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.x0 != nil && len(o.x0) != n {
		return nil, fmt.Errorf("%w: gmres: initial guess has %d elements, want %d", sparsedot.ErrShapeMismatch, len(o.x0), n)
	}
	m := max(min(o.restart, n), 1)

	res := &Result{X: make([]float64, n)}
	if o.x0 != nil {
		copy(res.X, o.x0)
	}
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		clear(res.X)
		res.Converged = true
		return res, nil
	}
	target := max(o.tol*bnorm, o.atol)

	w := newWorkspace(n, m)
	x, r := res.X, w.r
	for {
		if err := a.MulVec(ctx, r, x); err != nil {
			return nil, err
		}
		floats.SubTo(r, b, r)
		beta := floats.Norm(r, 2)
		res.Residual = beta
		if beta <= target {
			res.Converged = true
			return res, nil
		}
		if res.Iterations >= o.maxIter {
			break
		}
		o.logger.Debug(ctx, "gmres restart", "iteration", res.Iterations, "residual", beta)

		k, err := w.cycle(ctx, a, beta, target, min(m, o.maxIter-res.Iterations))
		if err != nil {
			return nil, err
		}
		res.Iterations += k
		w.update(x, k)
	}
	o.logger.Warn(ctx, "gmres did not converge",
		"iterations", res.Iterations,
		"residual", res.Residual,
		"target", target,
	)
	return res, ErrNotConverged
}

// workspace holds the Arnoldi basis and the rotated Hessenberg matrix of one
// restart cycle.
type workspace struct {
	n, m int
	r    []float64
	v    [][]float64
	// h is (m+1)×m row-major; after a cycle its leading k×k block is upper
	// triangular.
	h    []float64
	c, s []float64
	g    []float64
}

func newWorkspace(n, m int) *workspace {
	w := &workspace{
		n: n, m: m,
		r: make([]float64, n),
		v: make([][]float64, m+1),
		h: make([]float64, (m+1)*m),
		c: make([]float64, m),
		s: make([]float64, m),
		g: make([]float64, m+1),
	}
	for i := range w.v {
		w.v[i] = make([]float64, n)
	}
	return w
}

func (w *workspace) at(i, j int) *float64 { return &w.h[i*w.m+j] }

// cycle builds up to limit Arnoldi vectors from the residual in w.r and
// returns how many it produced.
func (w *workspace) cycle(ctx context.Context, a Operator, beta, target float64, limit int) (int, error) {
	clear(w.h)
	clear(w.g)
	floats.ScaleTo(w.v[0], 1/beta, w.r)
	w.g[0] = beta
	impl := blas64.Implementation()

	for j := 0; j < limit; j++ {
		next := w.v[j+1]
		if err := a.MulVec(ctx, next, w.v[j]); err != nil {
			return 0, err
		}
		// Modified Gram-Schmidt.
		for i := 0; i <= j; i++ {
			hij := floats.Dot(next, w.v[i])
			*w.at(i, j) = hij
			floats.AddScaled(next, -hij, w.v[i])
		}
		sub := floats.Norm(next, 2)
		*w.at(j+1, j) = sub
		if sub != 0 {
			floats.Scale(1/sub, next)
		}

		for i := 0; i < j; i++ {
			hi, hn := w.at(i, j), w.at(i+1, j)
			*hi, *hn = w.c[i]**hi+w.s[i]**hn, -w.s[i]**hi+w.c[i]**hn
		}
		c, s, rr, _ := impl.Drotg(*w.at(j, j), *w.at(j+1, j))
		w.c[j], w.s[j] = c, s
		*w.at(j, j), *w.at(j+1, j) = rr, 0
		w.g[j+1] = -s * w.g[j]
		w.g[j] *= c

		// A zero subdiagonal means the Krylov space is invariant and the
		// solution lies in it.
		if math.Abs(w.g[j+1]) <= target || sub == 0 {
			return j + 1, nil
		}
	}
	return limit, nil
}

// update adds the least-squares combination of the first k basis vectors
// to x.
func (w *workspace) update(x []float64, k int) {
	if k == 0 {
		return
	}
	y := append([]float64(nil), w.g[:k]...)
	blas64.Trsv(blas.NoTrans,
		blas64.Triangular{Uplo: blas.Upper, Diag: blas.NonUnit, N: k, Stride: w.m, Data: w.h},
		blas64.Vector{N: k, Inc: 1, Data: y},
	)
	for i, yi := range y {
		floats.AddScaled(x, yi, w.v[i])
	}
}
