package sparsedot

import (
	"cmp"
	"context"
	"slices"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

// lease is the right to use one native handle while its descriptor is
// locked. Only withHandles creates and ends leases, each exactly once.
type lease struct {
	d      *Descriptor
	handle backend.Handle
	// owned is false for handles borrowed from a retained Matrix.
	owned bool
}

func (b *Bridge) acquire(op string, idx int, d *Descriptor, create string) (*lease, error) {
	d.mu.Lock()
	if r := d.retained; r != nil {
		if r.bridge != b {
			d.mu.Unlock()
			return nil, operandError(ErrAlreadyRetained, op, idx, d, "retained by another bridge")
		}
		return &lease{d: d, handle: r.handle}, nil
	}
	h, st := b.engine.Create(backend.Symbol(create), d.native())
	if st != backend.StatusSuccess {
		d.mu.Unlock()
		return nil, statusError(phaseCreate, op, idx, d, create, st)
	}
	b.outstanding.Add(1)
	return &lease{d: d, handle: h, owned: true}, nil
}

// release destroys an owned handle and unlocks the descriptor. A failed
// destroy is logged; the handle is not retried.
func (b *Bridge) release(ctx context.Context, l *lease, destroy string) {
	if l.owned {
		b.destroy(ctx, l.handle, destroy)
	}
	d := l.d
	*l = lease{}
	d.mu.Unlock()
}

// destroy releases a handle the bridge owns outright.
func (b *Bridge) destroy(ctx context.Context, h backend.Handle, routine string) {
	if st := b.engine.Destroy(h); st != backend.StatusSuccess {
		b.logger.Warn(ctx, "handle release failed",
			"routine", routine,
			"status", int(st),
			"status_text", st.String(),
		)
	}
	b.outstanding.Add(-1)
}

// withHandles acquires a handle for every operand, runs fn, and releases all
// of them in reverse order on every exit path. Repeated descriptors share one
// handle. Locks are taken in descriptor creation order.
func (b *Bridge) withHandles(ctx context.Context, op string, v *Variant, ds []*Descriptor, fn func(hs []backend.Handle) error) error {
	order := make([]int, 0, len(ds))
	for i, d := range ds {
		if !slices.ContainsFunc(order, func(j int) bool { return ds[j] == d }) {
			order = append(order, i)
		}
	}
	slices.SortFunc(order, func(i, j int) int { return cmp.Compare(ds[i].id, ds[j].id) })

	leases := make([]*lease, 0, len(order))
	defer func() {
		for i := len(leases) - 1; i >= 0; i-- {
			b.release(ctx, leases[i], v.Destroy)
		}
	}()
	for _, i := range order {
		l, err := b.acquire(op, i, ds[i], v.Create)
		if err != nil {
			return err
		}
		leases = append(leases, l)
	}

	hs := make([]backend.Handle, len(ds))
	for i, d := range ds {
		for _, l := range leases {
			if l.d == d {
				hs[i] = l.handle
			}
		}
	}
	return fn(hs)
}

// resultHandle is a handle produced by the engine during an operation, such
// as a product or a conversion.
type resultHandle struct {
	b       *Bridge
	handle  backend.Handle
	routine string
}

func (b *Bridge) own(h backend.Handle, routine string) *resultHandle {
	b.outstanding.Add(1)
	return &resultHandle{b: b, handle: h, routine: routine}
}

func (o *resultHandle) close(ctx context.Context) {
	if o.b == nil {
		return
	}
	o.b.destroy(ctx, o.handle, o.routine)
	*o = resultHandle{}
}
