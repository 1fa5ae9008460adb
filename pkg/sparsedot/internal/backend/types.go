package backend

import "fmt"

// Status is the integer return code of a native call. Values mirror the
// engine's sparse_status_t.
type Status int32

const (
	StatusSuccess         Status = 0
	StatusNotInitialized  Status = 1
	StatusAllocFailed     Status = 2
	StatusInvalidValue    Status = 3
	StatusExecutionFailed Status = 4
	StatusInternalError   Status = 5
	StatusNotSupported    Status = 6
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotInitialized:
		return "not initialized"
	case StatusAllocFailed:
		return "allocation failed"
	case StatusInvalidValue:
		return "invalid value"
	case StatusExecutionFailed:
		return "execution failed"
	case StatusInternalError:
		return "internal error"
	case StatusNotSupported:
		return "not supported"
	default:
		return fmt.Sprintf("unknown status %d", int32(s))
	}
}

// Handle is an opaque engine-issued matrix token. Zero is never a valid handle.
type Handle uintptr

// Symbol names one native entry point.
type Symbol string

// Class groups symbols sharing one call signature.
type Class int

const (
	ClassCreate Class = iota + 1
	ClassExport
	ClassMM
	ClassMV
	ClassSpMM
	ClassConvert
	ClassOrder
	ClassDestroy
)

func (c Class) String() string {
	switch c {
	case ClassCreate:
		return "create"
	case ClassExport:
		return "export"
	case ClassMM:
		return "mm"
	case ClassMV:
		return "mv"
	case ClassSpMM:
		return "spmm"
	case ClassConvert:
		return "convert"
	case ClassOrder:
		return "order"
	case ClassDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// DType, Width and Format carry the same numeric values as their counterparts
// in package sparsedot so conversions between the two are plain casts.
type DType int

const (
	DTypeAny DType = iota
	Float32
	Float64
	Complex64
	Complex128
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "any"
	}
}

// Size returns the element size in bytes.
func (d DType) Size() int {
	switch d {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

type Width int

const (
	WidthAny Width = iota
	Narrow
	Wide
)

func (w Width) String() string {
	switch w {
	case Narrow:
		return "int32"
	case Wide:
		return "int64"
	default:
		return "any"
	}
}

// Size returns the index size in bytes.
func (w Width) Size() int {
	if w == Narrow {
		return 4
	}
	return 8
}

type Format int

const (
	FormatAny Format = iota
	CSR
	CSC
	BSR
)

func (f Format) String() string {
	switch f {
	case CSR:
		return "csr"
	case CSC:
		return "csc"
	case BSR:
		return "bsr"
	default:
		return "any"
	}
}

// Operation values mirror sparse_operation_t.
type Operation int32

const (
	OpNonTranspose       Operation = 10
	OpTranspose          Operation = 11
	OpConjugateTranspose Operation = 12
)

// Layout values mirror sparse_layout_t.
type Layout int32

const (
	RowMajor    Layout = 101
	ColumnMajor Layout = 102
)

// MatrixType, FillMode and DiagType mirror the fields of struct matrix_descr.
type MatrixType int32

const (
	TypeGeneral    MatrixType = 20
	TypeSymmetric  MatrixType = 21
	TypeHermitian  MatrixType = 22
	TypeTriangular MatrixType = 23
	TypeDiagonal   MatrixType = 24
)

type FillMode int32

const (
	FillLower FillMode = 40
	FillUpper FillMode = 41
	FillFull  FillMode = 42
)

type DiagType int32

const (
	DiagNonUnit DiagType = 50
	DiagUnit    DiagType = 51
)

// Descr tells the engine which part of a stored matrix takes part in a
// product.
type Descr struct {
	Type MatrixType
	Fill FillMode
	Diag DiagType
}

// GeneralDescr uses every stored entry as is.
var GeneralDescr = Descr{Type: TypeGeneral, Fill: FillFull, Diag: DiagNonUnit}
