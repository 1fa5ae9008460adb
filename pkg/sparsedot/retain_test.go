package sparsedot_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

func TestRetain(t *testing.T) {
	ctx := context.Background()
	b, eng, _ := newTestBridge(t)
	a := identity3(t)

	m, err := b.Retain(a)
	require.NoError(t, err)
	require.Equal(t, 1, eng.Live())
	require.Equal(t, 1, b.Outstanding())
	require.Same(t, a, m.Descriptor())

	for i := 0; i < 10; i++ {
		dst := make([]float64, 3)
		require.NoError(t, sparsedot.MulVecRetained(ctx, m, dst, []float64{1, 1, 1}))
		require.Equal(t, []float64{1, 2, 3}, dst)
		// Direct requests on the descriptor borrow the retained handle.
		_, err := b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseSparse, A: a, B: a})
		require.NoError(t, err)
		require.Equal(t, 1, eng.Live())
	}

	_, err = b.Retain(a)
	require.ErrorIs(t, err, sparsedot.ErrAlreadyRetained)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	require.Zero(t, eng.Live())
	require.Zero(t, b.Outstanding())

	_, err = m.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, Dense: ones(3, 1, sparsedot.ColMajor)})
	require.ErrorIs(t, err, sparsedot.ErrHandleReleased)

	// The descriptor itself stays usable.
	_, err = b.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: ones(3, 1, sparsedot.ColMajor)})
	require.NoError(t, err)
}

func TestRetainErrors(t *testing.T) {
	b, eng, _ := newTestBridge(t)

	wide, err := sparsedot.NewCSR(1, 1, []float64{1}, []int64{0}, []int64{0, 1})
	require.NoError(t, err)
	_, err = b.Retain(wide)
	require.ErrorIs(t, err, sparsedot.ErrIndexWidthMismatch)

	_, err = b.Retain(nil)
	require.ErrorIs(t, err, sparsedot.ErrInvalidStructure)

	eng.InjectFault(backend.ClassCreate, backend.StatusAllocFailed, 1)
	_, err = b.Retain(identity3(t))
	require.ErrorIs(t, err, sparsedot.ErrEngineAllocationFailure)
	require.Zero(t, b.Outstanding())
}

func TestRetainCloseFailure(t *testing.T) {
	eng := backend.NewReference()
	b, err := sparsedot.NewBridgeForTest(eng, narrowConfig(), newRecorder())
	require.NoError(t, err)

	m, err := b.Retain(identity3(t))
	require.NoError(t, err)
	eng.InjectFault(backend.ClassDestroy, backend.StatusInternalError, 1)
	err = m.Close()
	require.ErrorIs(t, err, sparsedot.ErrEngineExecutionFailure)
	var e *sparsedot.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, "mkl_sparse_destroy", e.Routine)
	require.Zero(t, b.Outstanding())
}

func TestRetainOtherBridge(t *testing.T) {
	b1, _, _ := newTestBridge(t)
	b2, _, _ := newTestBridge(t)
	a := identity3(t)

	m, err := b1.Retain(a)
	require.NoError(t, err)
	defer m.Close()

	_, err = b2.Execute(context.Background(), sparsedot.Request{Kind: sparsedot.SparseVector, A: a, Dense: ones(3, 1, sparsedot.ColMajor)})
	require.ErrorIs(t, err, sparsedot.ErrAlreadyRetained)
}

func TestRetainConcurrent(t *testing.T) {
	ctx := context.Background()
	b, eng, _ := newTestBridge(t)
	m, err := b.Retain(identity3(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				dst := make([]float64, 3)
				if err := sparsedot.MulVecRetained(ctx, m, dst, []float64{1, 0, 1}); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("retained execute: %v", err)
	}
	require.Equal(t, 1, eng.Live())
	require.NoError(t, m.Close())
}
