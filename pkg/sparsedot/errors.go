package sparsedot

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of failure. Every error returned by this package matches exactly one
// of them under errors.Is.
var (
	// ErrInvalidStructure reports a malformed descriptor or dense operand.
	ErrInvalidStructure = errors.New("sparsedot: invalid structure")
	// ErrUnsupportedDtype reports an element type outside the four supported.
	ErrUnsupportedDtype = errors.New("sparsedot: unsupported dtype")
	// ErrUnsupportedFormat reports an unrecognised storage format.
	ErrUnsupportedFormat = errors.New("sparsedot: unsupported format")
	// ErrIndexWidthMismatch reports an operand whose index width differs from
	// the active interface configuration.
	ErrIndexWidthMismatch = errors.New("sparsedot: index width mismatch")
	// ErrNoMatchingVariant reports a combination no native routine implements.
	ErrNoMatchingVariant = errors.New("sparsedot: no matching variant")
	// ErrLayoutMismatch reports a dense operand the routine cannot read
	// without an explicit copy.
	ErrLayoutMismatch = errors.New("sparsedot: layout mismatch")
	// ErrShapeMismatch reports operands whose dimensions do not conform.
	ErrShapeMismatch = errors.New("sparsedot: shape mismatch")
	// ErrEngineAllocationFailure reports a native allocation failure.
	ErrEngineAllocationFailure = errors.New("sparsedot: engine allocation failure")
	// ErrEngineExecutionFailure reports a native routine that did not succeed.
	ErrEngineExecutionFailure = errors.New("sparsedot: engine execution failure")
	// ErrEngineNotInitialized reports an engine that could not be set up.
	ErrEngineNotInitialized = errors.New("sparsedot: engine not initialized")
	// ErrHandleReleased reports use of a retained matrix after Close.
	ErrHandleReleased = errors.New("sparsedot: handle released")
	// ErrAlreadyRetained reports a descriptor that already owns a retained
	// handle.
	ErrAlreadyRetained = errors.New("sparsedot: descriptor already retained")
)

// Error carries the context of a failure. Operand is -1 when the failure is
// not tied to one operand; Status is meaningful only when StatusText is set.
type Error struct {
	Kind    error
	Op      string
	Operand int

	Rows, Cols int
	DType      DType
	Format     Format
	Width      IndexWidth

	Routine    string
	Status     int
	StatusText string

	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Op != "" {
		fmt.Fprintf(&b, ": %s", e.Op)
	}
	if e.Operand >= 0 {
		fmt.Fprintf(&b, " operand=%d", e.Operand)
	}
	if e.DType != 0 || e.Format != 0 {
		fmt.Fprintf(&b, " shape=%dx%d", e.Rows, e.Cols)
	}
	if e.DType != 0 {
		fmt.Fprintf(&b, " dtype=%s", e.DType)
	}
	if e.Format != 0 {
		fmt.Fprintf(&b, " format=%s", e.Format)
	}
	if e.Width != 0 {
		fmt.Fprintf(&b, " width=%s", e.Width)
	}
	if e.Routine != "" {
		fmt.Fprintf(&b, " routine=%s", e.Routine)
	}
	if e.StatusText != "" {
		fmt.Fprintf(&b, " status=%d (%s)", e.Status, e.StatusText)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is matches the failure kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind error, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Operand: -1, Detail: fmt.Sprintf(format, args...)}
}

// operandError attaches the shape and type of d as operand idx.
func operandError(kind error, op string, idx int, d *Descriptor, format string, args ...any) *Error {
	e := newError(kind, op, format, args...)
	e.Operand = idx
	if d != nil {
		e.Rows, e.Cols = d.rows, d.cols
		e.DType, e.Format, e.Width = d.dtype, d.format, d.width
	}
	return e
}

// denseError attaches the shape and type of a dense operand.
func denseError(kind error, op string, idx int, d *Dense, format string, args ...any) *Error {
	e := newError(kind, op, format, args...)
	e.Operand = idx
	if d != nil {
		e.Rows, e.Cols, e.DType = d.rows, d.cols, d.dtype
	}
	return e
}
