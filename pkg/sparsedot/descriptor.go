package sparsedot

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

var descriptorIDs atomic.Uint64

// Descriptor is a validated sparse matrix over caller-owned buffers. It never
// copies or owns the buffers; they must stay unchanged while any operation
// using the descriptor runs.
//
// At most one native handle exists per descriptor at any time. Concurrent
// operations on the same descriptor are serialised.
type Descriptor struct {
	id         uint64
	format     Format
	rows, cols int
	blockSize  int
	dtype      DType
	width      IndexWidth

	values  any
	indices any
	offsets any
	stored  int

	// mu is held for as long as a handle for this descriptor is in use.
	mu       sync.Mutex
	retained *retainedHandle
}

// Spec is the untyped input to Build.
type Spec struct {
	Format    Format
	Rows      int
	Cols      int
	BlockSize int
	// DType is checked against Values when set.
	DType DType
	// Values is []float32, []float64, []complex64 or []complex128.
	Values any
	// Indices and Offsets are both []int32 or both []int64. Offsets may be
	// empty when Indices is, in which case an all-zero array is used.
	Indices any
	Offsets any
}

// NewCSR builds a row-compressed descriptor. Column indices of row i are
// indices[offsets[i]:offsets[i+1]].
func NewCSR[V Scalar, I Index](rows, cols int, values []V, indices, offsets []I) (*Descriptor, error) {
	return newDescriptor(CSR, rows, cols, 1, values, indices, offsets)
}

// NewCSC builds a column-compressed descriptor.
func NewCSC[V Scalar, I Index](rows, cols int, values []V, indices, offsets []I) (*Descriptor, error) {
	return newDescriptor(CSC, rows, cols, 1, values, indices, offsets)
}

// NewBSR builds a block-row-compressed descriptor. rows and cols count
// elements and must be multiples of blockSize; every stored block holds
// blockSize*blockSize values in row-major order.
func NewBSR[V Scalar, I Index](rows, cols, blockSize int, values []V, indices, offsets []I) (*Descriptor, error) {
	return newDescriptor(BSR, rows, cols, blockSize, values, indices, offsets)
}

// Build validates an untyped Spec.
func Build(s Spec) (*Descriptor, error) {
	if s.DType != 0 && !s.DType.valid() {
		return nil, newError(ErrUnsupportedDtype, "build", "%s", s.DType)
	}
	switch v := s.Values.(type) {
	case []float32:
		return buildIndexed(s, v)
	case []float64:
		return buildIndexed(s, v)
	case []complex64:
		return buildIndexed(s, v)
	case []complex128:
		return buildIndexed(s, v)
	}
	return nil, newError(ErrUnsupportedDtype, "build", "values of type %T", s.Values)
}

func buildIndexed[V Scalar](s Spec, values []V) (*Descriptor, error) {
	if s.DType != 0 && s.DType != dtypeOf[V]() {
		return nil, newError(ErrInvalidStructure, "build", "declared %s, values are %s", s.DType, dtypeOf[V]())
	}
	switch idx := s.Indices.(type) {
	case []int32:
		off, ok := s.Offsets.([]int32)
		if !ok && s.Offsets != nil {
			return nil, newError(ErrInvalidStructure, "build", "offsets of type %T with []int32 indices", s.Offsets)
		}
		return newDescriptor(s.Format, s.Rows, s.Cols, s.BlockSize, values, idx, off)
	case []int64:
		off, ok := s.Offsets.([]int64)
		if !ok && s.Offsets != nil {
			return nil, newError(ErrInvalidStructure, "build", "offsets of type %T with []int64 indices", s.Offsets)
		}
		return newDescriptor(s.Format, s.Rows, s.Cols, s.BlockSize, values, idx, off)
	case nil:
		switch off := s.Offsets.(type) {
		case []int64:
			return newDescriptor(s.Format, s.Rows, s.Cols, s.BlockSize, values, nil, off)
		case []int32, nil:
			o, _ := off.([]int32)
			return newDescriptor(s.Format, s.Rows, s.Cols, s.BlockSize, values, nil, o)
		}
	}
	return nil, newError(ErrInvalidStructure, "build", "indices of type %T, offsets of type %T", s.Indices, s.Offsets)
}

func newDescriptor[V Scalar, I Index](format Format, rows, cols, bs int, values []V, indices, offsets []I) (*Descriptor, error) {
	d := &Descriptor{
		format: format,
		rows:   rows,
		cols:   cols,
		dtype:  dtypeOf[V](),
		width:  widthOf[I](),
	}
	fail := func(msg string, args ...any) (*Descriptor, error) {
		return nil, operandError(ErrInvalidStructure, "build", -1, d, msg, args...)
	}
	if !format.valid() {
		return nil, operandError(ErrUnsupportedFormat, "build", -1, d, "")
	}
	if rows < 0 || cols < 0 {
		return fail("negative dimension")
	}
	if d.width == Narrow && (rows > math.MaxInt32 || cols > math.MaxInt32) {
		return fail("dimensions exceed 32-bit indexing")
	}
	if format != BSR {
		bs = 1
	}
	if bs < 1 {
		return fail("block size %d", bs)
	}
	if rows%bs != 0 || cols%bs != 0 {
		return fail("block size %d does not divide %dx%d", bs, rows, cols)
	}
	d.blockSize = bs

	outer, inner := rows, cols
	switch format {
	case CSC:
		outer, inner = cols, rows
	case BSR:
		outer, inner = rows/bs, cols/bs
	}
	if len(offsets) == 0 && len(indices) == 0 {
		offsets = make([]I, outer+1)
	}
	if indices == nil {
		indices = []I{}
	}
	if len(offsets) != outer+1 {
		return fail("offsets length %d, want %d", len(offsets), outer+1)
	}
	if offsets[0] != 0 {
		return fail("offsets[0] = %d", offsets[0])
	}
	for i := 1; i <= outer; i++ {
		if offsets[i] < offsets[i-1] {
			return fail("offsets decrease at %d", i)
		}
	}
	if int(offsets[outer]) != len(indices) {
		return fail("offsets end at %d, %d indices", offsets[outer], len(indices))
	}
	if len(values) != len(indices)*bs*bs {
		return fail("%d values for %d indices", len(values), len(indices))
	}
	for p, ix := range indices {
		if ix < 0 || int(ix) >= inner {
			return fail("index %d at %d out of range [0,%d)", ix, p, inner)
		}
	}
	if values == nil {
		values = []V{}
	}
	d.values, d.indices, d.offsets = values, indices, offsets
	d.stored = len(values)
	d.id = descriptorIDs.Add(1)
	return d, nil
}

// Format, Rows, Cols, BlockSize, DType and IndexWidth return the values
// fixed at construction. BlockSize is 1 outside BSR.
func (d *Descriptor) Format() Format         { return d.format }
func (d *Descriptor) Rows() int              { return d.rows }
func (d *Descriptor) Cols() int              { return d.cols }
func (d *Descriptor) BlockSize() int         { return d.blockSize }
func (d *Descriptor) DType() DType           { return d.dtype }
func (d *Descriptor) IndexWidth() IndexWidth { return d.width }

// Shape returns rows and columns.
func (d *Descriptor) Shape() (int, int) { return d.rows, d.cols }

// NNZ returns the number of stored values, counting every element of a
// stored block.
func (d *Descriptor) NNZ() int { return d.stored }

// Values, Indices and Offsets return the underlying buffers.
func (d *Descriptor) Values() any  { return d.values }
func (d *Descriptor) Indices() any { return d.indices }
func (d *Descriptor) Offsets() any { return d.offsets }

// empty reports whether d has no stored value or a zero dimension.
func (d *Descriptor) empty() bool { return d.stored == 0 || d.rows == 0 || d.cols == 0 }

func (d *Descriptor) opShape(t Transpose) (int, int) {
	if t == NoTrans {
		return d.rows, d.cols
	}
	return d.cols, d.rows
}

func (d *Descriptor) native() backend.Matrix {
	return backend.Matrix{
		Format:    backend.Format(d.format),
		Rows:      d.rows,
		Cols:      d.cols,
		BlockSize: d.blockSize,
		Values:    d.values,
		Indices:   d.indices,
		Offsets:   d.offsets,
	}
}

// fromNative wraps exported engine arrays after copying them.
func fromNative(m backend.Matrix) (*Descriptor, error) {
	return Build(Spec{
		Format:    Format(m.Format),
		Rows:      m.Rows,
		Cols:      m.Cols,
		BlockSize: m.BlockSize,
		Values:    cloneSlice(m.Values),
		Indices:   cloneSlice(m.Indices),
		Offsets:   cloneSlice(m.Offsets),
	})
}

func cloneSlice(s any) any {
	switch s := s.(type) {
	case []float32:
		return append([]float32{}, s...)
	case []float64:
		return append([]float64{}, s...)
	case []complex64:
		return append([]complex64{}, s...)
	case []complex128:
		return append([]complex128{}, s...)
	case []int32:
		return append([]int32{}, s...)
	case []int64:
		return append([]int64{}, s...)
	}
	return s
}

// Dense expands d into a new dense matrix of the given layout.
func (d *Descriptor) Dense(layout Layout) *Dense {
	out := Zeros(d.dtype, d.rows, d.cols, layout)
	switch v := d.values.(type) {
	case []float32:
		expand(d, v, out.data.([]float32), out)
	case []float64:
		expand(d, v, out.data.([]float64), out)
	case []complex64:
		expand(d, v, out.data.([]complex64), out)
	case []complex128:
		expand(d, v, out.data.([]complex128), out)
	}
	return out
}

func expand[V Scalar](d *Descriptor, values, dst []V, out *Dense) {
	d.each(func(r, c, p int) { dst[out.offset(r, c)] += values[p] })
}

// each visits the position and value index of every stored element.
func (d *Descriptor) each(fn func(r, c, p int)) {
	switch off := d.offsets.(type) {
	case []int32:
		eachStored(d, off, d.indices.([]int32), fn)
	case []int64:
		eachStored(d, off, d.indices.([]int64), fn)
	}
}

func eachStored[I Index](d *Descriptor, offsets, indices []I, fn func(r, c, p int)) {
	bs := d.blockSize
	for o := 0; o+1 < len(offsets); o++ {
		for p := int(offsets[o]); p < int(offsets[o+1]); p++ {
			in := int(indices[p])
			switch d.format {
			case CSC:
				fn(in, o, p)
			case BSR:
				for i := 0; i < bs; i++ {
					for j := 0; j < bs; j++ {
						fn(o*bs+i, in*bs+j, p*bs*bs+i*bs+j)
					}
				}
			default:
				fn(o, in, p)
			}
		}
	}
}
