package sparsedot

import (
	"fmt"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

// Scalar is the set of element types the bridge computes in.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Index is the set of integer types usable for indices and offsets.
type Index interface {
	int32 | int64
}

// DType identifies the element type of a matrix.
type DType int

const (
	Float32 DType = iota + 1
	Float64
	Complex64
	Complex128
)

func (d DType) String() string {
	if !d.valid() {
		return fmt.Sprintf("dtype(%d)", int(d))
	}
	return backend.DType(d).String()
}

func (d DType) valid() bool { return d >= Float32 && d <= Complex128 }

// IsComplex reports whether d has an imaginary part.
func (d DType) IsComplex() bool { return d == Complex64 || d == Complex128 }

// Size returns the element size in bytes.
func (d DType) Size() int { return backend.DType(d).Size() }

func dtypeOf[V Scalar]() DType {
	var v V
	switch any(v).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

// Format is the compressed storage scheme of a sparse matrix.
type Format int

const (
	CSR Format = iota + 1
	CSC
	BSR
)

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return backend.Format(f).String()
}

func (f Format) valid() bool { return f >= CSR && f <= BSR }

// IndexWidth is the integer width of indices and offsets.
type IndexWidth int

const (
	// Narrow is 32-bit indexing, the engine's LP64 interface.
	Narrow IndexWidth = iota + 1
	// Wide is 64-bit indexing, the engine's ILP64 interface.
	Wide
)

func (w IndexWidth) String() string {
	switch w {
	case Narrow:
		return "int32"
	case Wide:
		return "int64"
	default:
		return fmt.Sprintf("width(%d)", int(w))
	}
}

func widthOf[I Index]() IndexWidth {
	var i I
	if _, ok := any(i).(int32); ok {
		return Narrow
	}
	return Wide
}

// Layout is the element order of a dense matrix.
type Layout int

const (
	RowMajor Layout = iota + 1
	ColMajor
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

func (l Layout) flip() Layout {
	if l == RowMajor {
		return ColMajor
	}
	return RowMajor
}

func (l Layout) native() backend.Layout {
	if l == ColMajor {
		return backend.ColumnMajor
	}
	return backend.RowMajor
}

// Transpose selects op(X) for an operand.
type Transpose int

const (
	NoTrans Transpose = iota
	Trans
	ConjTrans
)

func (t Transpose) String() string {
	switch t {
	case NoTrans:
		return "N"
	case Trans:
		return "T"
	case ConjTrans:
		return "H"
	default:
		return fmt.Sprintf("transpose(%d)", int(t))
	}
}

func (t Transpose) native() backend.Operation {
	switch t {
	case Trans:
		return backend.OpTranspose
	case ConjTrans:
		return backend.OpConjugateTranspose
	default:
		return backend.OpNonTranspose
	}
}

// TransposeSet is a set of Transpose values.
type TransposeSet uint8

func transposes(ts ...Transpose) TransposeSet {
	var s TransposeSet
	for _, t := range ts {
		s |= 1 << t
	}
	return s
}

// Has reports whether t is in s.
func (s TransposeSet) Has(t Transpose) bool { return t >= NoTrans && t <= ConjTrans && s&(1<<t) != 0 }

func (s TransposeSet) String() string {
	out := ""
	for t := NoTrans; t <= ConjTrans; t++ {
		if s.Has(t) {
			out += t.String()
		}
	}
	if out == "" {
		return "-"
	}
	return out
}

// LayoutSet is a set of Layout values.
type LayoutSet uint8

func layouts(ls ...Layout) LayoutSet {
	var s LayoutSet
	for _, l := range ls {
		s |= 1 << l
	}
	return s
}

// Has reports whether l is in s.
func (s LayoutSet) Has(l Layout) bool { return (l == RowMajor || l == ColMajor) && s&(1<<l) != 0 }

func (s LayoutSet) String() string {
	switch {
	case s.Has(RowMajor) && s.Has(ColMajor):
		return "row,col"
	case s.Has(RowMajor):
		return "row"
	case s.Has(ColMajor):
		return "col"
	default:
		return "-"
	}
}

// OpKind is the kind of product a Request computes.
type OpKind int

const (
	// SparseSparse computes alpha·op(A)·op(B) for sparse A and B.
	SparseSparse OpKind = iota + 1
	// SparseDense computes alpha·op(A)·op(D) + beta·Out.
	SparseDense
	// DenseSparse computes alpha·op(D)·op(A) + beta·Out.
	DenseSparse
	// SparseVector computes alpha·op(A)·x + beta·Out for a dense vector x.
	SparseVector
	// Dot computes the scalar product of a sparse and a dense vector.
	Dot
)

func (k OpKind) String() string {
	switch k {
	case SparseSparse:
		return "sparse-sparse"
	case SparseDense:
		return "sparse-dense"
	case DenseSparse:
		return "dense-sparse"
	case SparseVector:
		return "sparse-vector"
	case Dot:
		return "dot"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StructureKind tells the engine which part of a stored matrix to use.
type StructureKind int

const (
	General StructureKind = iota
	Symmetric
	Hermitian
	Triangular
	Diagonal
)

func (k StructureKind) String() string {
	switch k {
	case General:
		return "general"
	case Symmetric:
		return "symmetric"
	case Hermitian:
		return "hermitian"
	case Triangular:
		return "triangular"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("structure(%d)", int(k))
	}
}

// Fill selects the stored triangle of a symmetric, hermitian or triangular
// matrix.
type Fill int

const (
	Lower Fill = iota
	Upper
)

// Structure describes how a sparse operand's stored entries are read. The
// zero value uses every stored entry as is.
type Structure struct {
	Kind     StructureKind
	Fill     Fill
	UnitDiag bool
}

func (s Structure) native() backend.Descr {
	d := backend.GeneralDescr
	switch s.Kind {
	case Symmetric:
		d.Type = backend.TypeSymmetric
	case Hermitian:
		d.Type = backend.TypeHermitian
	case Triangular:
		d.Type = backend.TypeTriangular
	case Diagonal:
		d.Type = backend.TypeDiagonal
	}
	if s.Kind != General {
		d.Fill = backend.FillLower
		if s.Fill == Upper {
			d.Fill = backend.FillUpper
		}
		if s.UnitDiag {
			d.Diag = backend.DiagUnit
		}
	}
	return d
}
