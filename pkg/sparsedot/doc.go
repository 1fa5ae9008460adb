// Package sparsedot bridges compressed sparse matrices to a native sparse
// linear-algebra engine that works on opaque matrix handles.
//
// # Descriptors
//
// A Descriptor validates caller buffers without copying them:
//
//	a, err := sparsedot.NewCSR(3, 3, []float64{1, 2, 3}, []int32{0, 1, 2}, []int32{0, 1, 2, 3})
//
// Row-compressed (CSR), column-compressed (CSC) and block-row-compressed
// (BSR) storage is supported for float32, float64, complex64 and complex128
// values with 32-bit or 64-bit indices.
//
// # Operations
//
// A Bridge executes one Request at a time per descriptor. It creates native
// handles immediately before the call and destroys them before Execute
// returns, on every path:
//
//	b, err := sparsedot.New()
//	res, err := b.Execute(ctx, sparsedot.Request{
//	    Kind:  sparsedot.SparseDense,
//	    A:     a,
//	    Dense: ones,
//	})
//
// The routine is chosen from a static dispatch table keyed by operation
// kind, dtype, index width and format. Combinations missing from the table
// fail with ErrNoMatchingVariant; nothing is converted implicitly.
//
// # Interface configuration
//
// The index width is process-wide. It is read once from MKL_INTERFACE_LAYER
// (LP64 or ILP64) or probed when unset, and MKL_NUM_THREADS bounds the
// engine's threads. Descriptors of the other width fail with
// ErrIndexWidthMismatch.
//
// # Errors
//
// Every failure is an *Error matching one of the Err kinds under errors.Is
// and carries the operand, routine and native status involved.
package sparsedot
