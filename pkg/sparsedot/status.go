package sparsedot

import "github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"

// phase is the stage of an operation a native status was returned from.
type phase int

const (
	phaseCreate phase = iota
	phaseExecute
	phaseRelease
)

// statusKind maps a non-success native status to its failure kind.
func statusKind(ph phase, st backend.Status) error {
	switch {
	case st == backend.StatusNotInitialized:
		return ErrEngineNotInitialized
	case ph == phaseCreate, st == backend.StatusAllocFailed:
		return ErrEngineAllocationFailure
	case st == backend.StatusNotSupported:
		return ErrNoMatchingVariant
	default:
		return ErrEngineExecutionFailure
	}
}

func statusError(ph phase, op string, idx int, d *Descriptor, routine string, st backend.Status) *Error {
	e := operandError(statusKind(ph, st), op, idx, d, "")
	e.Routine = routine
	e.Status, e.StatusText = int(st), st.String()
	return e
}
