package sparsedot

// Dense is a strided dense matrix over a caller-owned slice. Element (i, j)
// lives at data[i*stride+j] in row-major layout and at data[j*stride+i] in
// column-major layout.
type Dense struct {
	rows, cols int
	stride     int
	layout     Layout
	dtype      DType
	data       any
}

// NewDense wraps a compact slice.
func NewDense[V Scalar](rows, cols int, layout Layout, data []V) (*Dense, error) {
	stride := cols
	if layout == ColMajor {
		stride = rows
	}
	return NewDenseStrided(rows, cols, max(stride, 1), layout, data)
}

// NewDenseStrided wraps a slice with an explicit leading dimension.
func NewDenseStrided[V Scalar](rows, cols, stride int, layout Layout, data []V) (*Dense, error) {
	d := &Dense{rows: rows, cols: cols, stride: stride, layout: layout, dtype: dtypeOf[V](), data: data}
	if layout != RowMajor && layout != ColMajor {
		return nil, denseError(ErrInvalidStructure, "dense", -1, d, "%s", layout)
	}
	if rows < 0 || cols < 0 {
		return nil, denseError(ErrInvalidStructure, "dense", -1, d, "negative dimension")
	}
	if minor := d.minor(); stride < max(minor, 1) {
		return nil, denseError(ErrInvalidStructure, "dense", -1, d, "stride %d below %d", stride, minor)
	}
	if need := d.span(); len(data) < need {
		return nil, denseError(ErrInvalidStructure, "dense", -1, d, "%d elements, need %d", len(data), need)
	}
	if data == nil {
		d.data = []V{}
	}
	return d, nil
}

// NewVector wraps data as a column vector.
func NewVector[V Scalar](data []V) *Dense {
	if data == nil {
		data = []V{}
	}
	return &Dense{rows: len(data), cols: 1, stride: max(len(data), 1), layout: ColMajor, dtype: dtypeOf[V](), data: data}
}

// Zeros allocates a compact zero matrix. dtype must be one of the four
// supported element types.
func Zeros(dtype DType, rows, cols int, layout Layout) *Dense {
	d := &Dense{rows: rows, cols: cols, layout: layout, dtype: dtype}
	d.stride = max(d.minor(), 1)
	n := rows * cols
	switch dtype {
	case Float32:
		d.data = make([]float32, n)
	case Float64:
		d.data = make([]float64, n)
	case Complex64:
		d.data = make([]complex64, n)
	case Complex128:
		d.data = make([]complex128, n)
	default:
		panic("sparsedot: Zeros of " + dtype.String())
	}
	return d
}

// Rows, Cols, Stride, Layout and DType describe the view. Stride is the
// distance between consecutive rows (RowMajor) or columns (ColMajor).
func (d *Dense) Rows() int      { return d.rows }
func (d *Dense) Cols() int      { return d.cols }
func (d *Dense) Stride() int    { return d.stride }
func (d *Dense) Layout() Layout { return d.layout }
func (d *Dense) DType() DType   { return d.dtype }

// Shape returns rows and columns.
func (d *Dense) Shape() (int, int) { return d.rows, d.cols }

// Data returns the underlying slice.
func (d *Dense) Data() any { return d.data }

// At returns element (i, j) widened to complex128.
func (d *Dense) At(i, j int) complex128 {
	p := d.offset(i, j)
	switch v := d.data.(type) {
	case []float32:
		return complex(float64(v[p]), 0)
	case []float64:
		return complex(v[p], 0)
	case []complex64:
		return complex128(v[p])
	case []complex128:
		return v[p]
	}
	return 0
}

// T returns the transpose of d sharing its storage.
func (d *Dense) T() *Dense {
	return &Dense{rows: d.cols, cols: d.rows, stride: d.stride, layout: d.layout.flip(), dtype: d.dtype, data: d.data}
}

func (d *Dense) offset(i, j int) int {
	if d.layout == ColMajor {
		return j*d.stride + i
	}
	return i*d.stride + j
}

// minor is the extent of the contiguous dimension.
func (d *Dense) minor() int {
	if d.layout == ColMajor {
		return d.rows
	}
	return d.cols
}

func (d *Dense) major() int {
	if d.layout == ColMajor {
		return d.cols
	}
	return d.rows
}

// span is the number of elements the view touches.
func (d *Dense) span() int {
	if d.rows == 0 || d.cols == 0 {
		return 0
	}
	return (d.major()-1)*d.stride + d.minor()
}

func (d *Dense) bytes() uint64 { return uint64(d.rows*d.cols) * uint64(d.dtype.Size()) }

func (d *Dense) isVector() bool { return d.rows == 1 || d.cols == 1 }

func (d *Dense) length() int { return d.rows * d.cols }

// inc is the step between consecutive elements of a vector.
func (d *Dense) inc() int {
	if d.length() <= 1 {
		return 1
	}
	if (d.cols == 1) == (d.layout == ColMajor) {
		return 1
	}
	return d.stride
}

// compactLayout is the layout in which a vector of d's shape is contiguous.
func (d *Dense) compactLayout() Layout {
	if d.cols == 1 {
		return ColMajor
	}
	return RowMajor
}

// vectorData returns the first length() elements of a contiguous vector.
func (d *Dense) vectorData() any {
	n := d.length()
	switch v := d.data.(type) {
	case []float32:
		return v[:n]
	case []float64:
		return v[:n]
	case []complex64:
		return v[:n]
	case []complex128:
		return v[:n]
	}
	return d.data
}

// materialize returns a compact copy of op(d) in the given layout.
func (d *Dense) materialize(t Transpose, layout Layout) *Dense {
	rows, cols := d.rows, d.cols
	if t != NoTrans {
		rows, cols = cols, rows
	}
	out := Zeros(d.dtype, rows, cols, layout)
	switch v := d.data.(type) {
	case []float32:
		copyDense(out, out.data.([]float32), d, v, t)
	case []float64:
		copyDense(out, out.data.([]float64), d, v, t)
	case []complex64:
		copyDense(out, out.data.([]complex64), d, v, t)
	case []complex128:
		copyDense(out, out.data.([]complex128), d, v, t)
	}
	return out
}

// copyInto overwrites dst with src elementwise. Shapes and dtypes match.
func copyInto(dst, src *Dense) {
	switch v := src.data.(type) {
	case []float32:
		copyDense(dst, dst.data.([]float32), src, v, NoTrans)
	case []float64:
		copyDense(dst, dst.data.([]float64), src, v, NoTrans)
	case []complex64:
		copyDense(dst, dst.data.([]complex64), src, v, NoTrans)
	case []complex128:
		copyDense(dst, dst.data.([]complex128), src, v, NoTrans)
	}
}

func copyDense[V Scalar](dst *Dense, dv []V, src *Dense, sv []V, t Transpose) {
	for i := 0; i < dst.rows; i++ {
		for j := 0; j < dst.cols; j++ {
			switch t {
			case NoTrans:
				dv[dst.offset(i, j)] = sv[src.offset(i, j)]
			case Trans:
				dv[dst.offset(i, j)] = sv[src.offset(j, i)]
			case ConjTrans:
				dv[dst.offset(i, j)] = conj(sv[src.offset(j, i)])
			}
		}
	}
}

func conj[V Scalar](v V) V {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(V)
	case complex128:
		return any(complex(real(x), -imag(x))).(V)
	}
	return v
}
