package sparsedot

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

// retainedHandle is the native handle a Matrix owns. It is guarded by the
// mutex of its descriptor.
type retainedHandle struct {
	bridge *Bridge
	handle backend.Handle
}

// Matrix keeps one native handle alive across operations on a descriptor.
// Every operation on the descriptor, whether issued through the Matrix or
// directly on the bridge, uses that handle under the descriptor's lock.
//
// Callers must Close a Matrix when done; a finalizer releases it otherwise.
type Matrix struct {
	bridge *Bridge
	d      *Descriptor
	closed atomic.Bool
}

// Retain creates a native handle for d that outlives single operations.
func (b *Bridge) Retain(d *Descriptor) (*Matrix, error) {
	const op = "retain"
	if d == nil {
		return nil, newError(ErrInvalidStructure, op, "missing descriptor")
	}
	if d.width != b.cfg.Width {
		return nil, operandError(ErrIndexWidthMismatch, op, 0, d, "active interface is %s", b.cfg.Width)
	}
	create, ok := b.table.createSymbol(d)
	if !ok {
		return nil, operandError(ErrNoMatchingVariant, op, 0, d, "no create routine")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.retained != nil {
		return nil, operandError(ErrAlreadyRetained, op, 0, d, "")
	}
	h, st := b.engine.Create(backend.Symbol(create), d.native())
	if st != backend.StatusSuccess {
		return nil, statusError(phaseCreate, op, 0, d, create, st)
	}
	b.outstanding.Add(1)
	d.retained = &retainedHandle{bridge: b, handle: h}

	m := &Matrix{bridge: b, d: d}
	runtime.SetFinalizer(m, func(m *Matrix) { _ = m.Close() })
	return m, nil
}

// Descriptor returns the retained descriptor.
func (m *Matrix) Descriptor() *Descriptor { return m.d }

// Shape returns rows and columns.
func (m *Matrix) Shape() (int, int) { return m.d.rows, m.d.cols }

// Execute runs req with A set to the retained descriptor.
func (m *Matrix) Execute(ctx context.Context, req Request) (*Result, error) {
	if m.closed.Load() {
		return nil, operandError(ErrHandleReleased, "execute", 0, m.d, "")
	}
	req.A = m.d
	return m.bridge.Execute(ctx, req)
}

// Close releases the native handle. Closing twice is a no-op.
func (m *Matrix) Close() error {
	if m == nil || !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	runtime.SetFinalizer(m, nil)

	d := m.d
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.retained
	d.retained = nil
	st := m.bridge.engine.Destroy(r.handle)
	m.bridge.outstanding.Add(-1)
	if st != backend.StatusSuccess {
		return statusError(phaseRelease, "close", 0, d, destroySymbol, st)
	}
	return nil
}

var destroySymbol = func() string {
	sym, _ := backend.Find(backend.ClassDestroy, backend.DTypeAny, backend.WidthAny, backend.FormatAny)
	return string(sym)
}()
