package backend

// Matrix is the raw buffer triple of one compressed sparse matrix as passed to
// a create entry or returned by an export entry.
//
// Rows and Cols are counted in elements for every format. For BSR the outer
// dimension is Rows/BlockSize, Indices holds block-column indices and Values
// holds BlockSize*BlockSize row-major values per stored block. Offsets always
// has outer+1 elements with a zero base.
type Matrix struct {
	Format    Format
	Rows      int
	Cols      int
	BlockSize int
	// Values is []float32, []float64, []complex64 or []complex128.
	Values any
	// Indices and Offsets are both []int32 or both []int64.
	Indices any
	Offsets any
}

// Outer returns the length of the compressed dimension.
func (m Matrix) Outer() int {
	switch m.Format {
	case CSC:
		return m.Cols
	case BSR:
		if m.BlockSize <= 0 {
			return 0
		}
		return m.Rows / m.BlockSize
	default:
		return m.Rows
	}
}

// Inner returns the extent inner indices must stay below.
func (m Matrix) Inner() int {
	switch m.Format {
	case CSC:
		return m.Rows
	case BSR:
		if m.BlockSize <= 0 {
			return 0
		}
		return m.Cols / m.BlockSize
	default:
		return m.Cols
	}
}

// MMArgs are the arguments of a sparse × dense product
// C = Alpha·op(A)·B + Beta·C. B and C are slices of the matrix dtype.
type MMArgs struct {
	Op      Operation
	Alpha   complex128
	A       Handle
	Descr   Descr
	Layout  Layout
	B       any
	Columns int
	LDB     int
	Beta    complex128
	C       any
	LDC     int
}

// MVArgs are the arguments of a sparse × vector product
// y = Alpha·op(A)·x + Beta·y.
type MVArgs struct {
	Op    Operation
	Alpha complex128
	A     Handle
	Descr Descr
	X     any
	Beta  complex128
	Y     any
}

// Engine is the native sparse engine as seen by the bridge. Every call
// returns the engine's raw status; none of them panics on bad input.
//
// Matrices returned by Export alias engine storage and stay valid only until
// the handle they were exported from is destroyed.
type Engine interface {
	Name() string
	Version() string

	// Resolve reports whether the engine provides the named entry point.
	Resolve(sym Symbol) bool
	// SetInterfaceLayer selects the integer width of width-agnostic
	// entry points.
	SetInterfaceLayer(w Width) Status
	// SetThreads bounds internal kernel parallelism; n <= 0 restores the
	// engine default.
	SetThreads(n int)

	Create(sym Symbol, m Matrix) (Handle, Status)
	Destroy(h Handle) Status
	Order(h Handle) Status
	// Convert produces a new row-compressed handle holding op(A).
	Convert(sym Symbol, h Handle, op Operation) (Handle, Status)
	Export(sym Symbol, h Handle) (Matrix, Status)
	// SpMM produces a new handle holding op(A)·B.
	SpMM(sym Symbol, op Operation, a, b Handle) (Handle, Status)
	MM(sym Symbol, args MMArgs) Status
	MV(sym Symbol, args MVArgs) Status
}
