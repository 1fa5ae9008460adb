//go:build mkl && cgo

package backend

/*
#cgo LDFLAGS: -lmkl_rt
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef void* sdm_matrix;
typedef struct { float re, im; } sdm_c8;
typedef struct { double re, im; } sdm_c16;
struct sdm_descr { int kind; int mode; int diag; };

#define SDM_SC_s(re, im) ((float)(re))
#define SDM_SC_d(re, im) ((double)(re))
#define SDM_SC_c(re, im) ((sdm_c8){ (float)(re), (float)(im) })
#define SDM_SC_z(re, im) ((sdm_c16){ (re), (im) })

// Every width-specific entry is declared with explicit integer types so the
// narrow and wide variants can coexist in one binary.

#define SDM_CREATE_CS(name, IT, VT) \
	int name(sdm_matrix*, int, IT, IT, IT*, IT*, IT*, VT*); \
	static int name##_w(sdm_matrix* a, int64_t rows, int64_t cols, int64_t bs, void* off, void* idx, void* val) { \
		(void)bs; \
		return name(a, 0, (IT)rows, (IT)cols, (IT*)off, (IT*)off + 1, (IT*)idx, (VT*)val); \
	}

#define SDM_CREATE_BSR(name, IT, VT) \
	int name(sdm_matrix*, int, int, IT, IT, IT, IT*, IT*, IT*, VT*); \
	static int name##_w(sdm_matrix* a, int64_t rows, int64_t cols, int64_t bs, void* off, void* idx, void* val) { \
		return name(a, 0, 101, (IT)(rows / bs), (IT)(cols / bs), (IT)bs, (IT*)off, (IT*)off + 1, (IT*)idx, (VT*)val); \
	}

#define SDM_EXPORT_CS(name, IT, VT) \
	int name(sdm_matrix, int*, IT*, IT*, IT**, IT**, IT**, VT**); \
	static int name##_w(sdm_matrix a, int64_t* rows, int64_t* cols, int64_t* bs, void** start, void** end, void** idx, void** val) { \
		int base = 0; IT r = 0, c = 0; \
		int st = name(a, &base, &r, &c, (IT**)start, (IT**)end, (IT**)idx, (VT**)val); \
		*rows = r; *cols = c; *bs = 1; \
		return st; \
	}

#define SDM_EXPORT_BSR(name, IT, VT) \
	int name(sdm_matrix, int*, int*, IT*, IT*, IT*, IT**, IT**, IT**, VT**); \
	static int name##_w(sdm_matrix a, int64_t* rows, int64_t* cols, int64_t* bs, void** start, void** end, void** idx, void** val) { \
		int base = 0, layout = 0; IT r = 0, c = 0, b = 0; \
		int st = name(a, &base, &layout, &r, &c, &b, (IT**)start, (IT**)end, (IT**)idx, (VT**)val); \
		*rows = r; *cols = c; *bs = b; \
		return st; \
	}

#define SDM_MM(name, IT, VT, SC) \
	int name(int, VT, const sdm_matrix, struct sdm_descr, int, const VT*, IT, IT, VT, VT*, IT); \
	static int name##_w(int op, double are, double aim, sdm_matrix a, struct sdm_descr d, int layout, void* b, int64_t columns, int64_t ldb, double bre, double bim, void* c, int64_t ldc) { \
		return name(op, SC(are, aim), a, d, layout, (const VT*)b, (IT)columns, (IT)ldb, SC(bre, bim), (VT*)c, (IT)ldc); \
	}

#define SDM_MV(name, VT, SC) \
	int name(int, VT, const sdm_matrix, struct sdm_descr, const VT*, VT, VT*); \
	static int name##_w(int op, double are, double aim, sdm_matrix a, struct sdm_descr d, void* x, double bre, double bim, void* y) { \
		return name(op, SC(are, aim), a, d, (const VT*)x, SC(bre, bim), (VT*)y); \
	}

#define SDM_PRECISION(p, VT) \
	SDM_CREATE_CS(mkl_sparse_##p##_create_csr, int32_t, VT) \
	SDM_CREATE_CS(mkl_sparse_##p##_create_csr_64, int64_t, VT) \
	SDM_CREATE_CS(mkl_sparse_##p##_create_csc, int32_t, VT) \
	SDM_CREATE_CS(mkl_sparse_##p##_create_csc_64, int64_t, VT) \
	SDM_CREATE_BSR(mkl_sparse_##p##_create_bsr, int32_t, VT) \
	SDM_CREATE_BSR(mkl_sparse_##p##_create_bsr_64, int64_t, VT) \
	SDM_EXPORT_CS(mkl_sparse_##p##_export_csr, int32_t, VT) \
	SDM_EXPORT_CS(mkl_sparse_##p##_export_csr_64, int64_t, VT) \
	SDM_EXPORT_CS(mkl_sparse_##p##_export_csc, int32_t, VT) \
	SDM_EXPORT_CS(mkl_sparse_##p##_export_csc_64, int64_t, VT) \
	SDM_EXPORT_BSR(mkl_sparse_##p##_export_bsr, int32_t, VT) \
	SDM_EXPORT_BSR(mkl_sparse_##p##_export_bsr_64, int64_t, VT) \
	SDM_MM(mkl_sparse_##p##_mm, int32_t, VT, SDM_SC_##p) \
	SDM_MM(mkl_sparse_##p##_mm_64, int64_t, VT, SDM_SC_##p) \
	SDM_MV(mkl_sparse_##p##_mv, VT, SDM_SC_##p)

SDM_PRECISION(s, float)
SDM_PRECISION(d, double)
SDM_PRECISION(c, sdm_c8)
SDM_PRECISION(z, sdm_c16)

int mkl_sparse_spmm(int, const sdm_matrix, const sdm_matrix, sdm_matrix*);
int mkl_sparse_convert_csr(const sdm_matrix, int, sdm_matrix*);
int mkl_sparse_order(const sdm_matrix);
int mkl_sparse_destroy(sdm_matrix);
int MKL_Set_Interface_Layer(int);
void MKL_Set_Num_Threads(int);
void MKL_Get_Version_String(char*, int);

typedef struct { const char* name; void* fn; } sdm_entry;

#define SDM_ENTRY(name) { #name, (void*)name##_w },
#define SDM_ENTRIES(p) \
	SDM_ENTRY(mkl_sparse_##p##_create_csr) SDM_ENTRY(mkl_sparse_##p##_create_csr_64) \
	SDM_ENTRY(mkl_sparse_##p##_create_csc) SDM_ENTRY(mkl_sparse_##p##_create_csc_64) \
	SDM_ENTRY(mkl_sparse_##p##_create_bsr) SDM_ENTRY(mkl_sparse_##p##_create_bsr_64) \
	SDM_ENTRY(mkl_sparse_##p##_export_csr) SDM_ENTRY(mkl_sparse_##p##_export_csr_64) \
	SDM_ENTRY(mkl_sparse_##p##_export_csc) SDM_ENTRY(mkl_sparse_##p##_export_csc_64) \
	SDM_ENTRY(mkl_sparse_##p##_export_bsr) SDM_ENTRY(mkl_sparse_##p##_export_bsr_64) \
	SDM_ENTRY(mkl_sparse_##p##_mm) SDM_ENTRY(mkl_sparse_##p##_mm_64) \
	SDM_ENTRY(mkl_sparse_##p##_mv)

static const sdm_entry sdm_table[] = {
	SDM_ENTRIES(s)
	SDM_ENTRIES(d)
	SDM_ENTRIES(c)
	SDM_ENTRIES(z)
	{ "mkl_sparse_spmm", (void*)mkl_sparse_spmm },
	{ "mkl_sparse_convert_csr", (void*)mkl_sparse_convert_csr },
	{ "mkl_sparse_order", (void*)mkl_sparse_order },
	{ "mkl_sparse_destroy", (void*)mkl_sparse_destroy },
	{ NULL, NULL },
};

static void* sdm_lookup(const char* name) {
	for (const sdm_entry* e = sdm_table; e->name != NULL; e++) {
		if (strcmp(e->name, name) == 0) {
			return e->fn;
		}
	}
	return NULL;
}

typedef int (*sdm_create_t)(sdm_matrix*, int64_t, int64_t, int64_t, void*, void*, void*);
typedef int (*sdm_export_t)(sdm_matrix, int64_t*, int64_t*, int64_t*, void**, void**, void**, void**);
typedef int (*sdm_mm_t)(int, double, double, sdm_matrix, struct sdm_descr, int, void*, int64_t, int64_t, double, double, void*, int64_t);
typedef int (*sdm_mv_t)(int, double, double, sdm_matrix, struct sdm_descr, void*, double, double, void*);

static int sdm_create(void* fn, sdm_matrix* a, int64_t rows, int64_t cols, int64_t bs, void* off, void* idx, void* val) {
	return ((sdm_create_t)fn)(a, rows, cols, bs, off, idx, val);
}

static int sdm_export(void* fn, sdm_matrix a, int64_t* rows, int64_t* cols, int64_t* bs, void** start, void** end, void** idx, void** val) {
	return ((sdm_export_t)fn)(a, rows, cols, bs, start, end, idx, val);
}

static int sdm_mm(void* fn, int op, double are, double aim, sdm_matrix a, struct sdm_descr d, int layout, void* b, int64_t columns, int64_t ldb, double bre, double bim, void* c, int64_t ldc) {
	return ((sdm_mm_t)fn)(op, are, aim, a, d, layout, b, columns, ldb, bre, bim, c, ldc);
}

static int sdm_mv(void* fn, int op, double are, double aim, sdm_matrix a, struct sdm_descr d, void* x, double bre, double bim, void* y) {
	return ((sdm_mv_t)fn)(op, are, aim, a, d, x, bre, bim, y);
}
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"
)

// MKL drives Intel oneMKL through its sparse BLAS inspector-executor API.
//
// Buffers handed to Create stay pinned until the handle is destroyed since
// the engine keeps referencing them.
type MKL struct {
	mu   sync.Mutex
	fns  map[Symbol]unsafe.Pointer
	pins map[Handle]*runtime.Pinner
}

// NewMKL returns the oneMKL engine.
func NewMKL() *MKL {
	return &MKL{
		fns:  make(map[Symbol]unsafe.Pointer),
		pins: make(map[Handle]*runtime.Pinner),
	}
}

func (e *MKL) Name() string { return "onemkl" }

func (e *MKL) Version() string {
	var buf [256]C.char
	C.MKL_Get_Version_String(&buf[0], C.int(len(buf)))
	return C.GoString(&buf[0])
}

func (e *MKL) fn(sym Symbol) unsafe.Pointer {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := e.fns[sym]; ok {
		return p
	}
	name := C.CString(string(sym))
	defer C.free(unsafe.Pointer(name))
	p := C.sdm_lookup(name)
	e.fns[sym] = p
	return p
}

func (e *MKL) Resolve(sym Symbol) bool { return e.fn(sym) != nil }

func (e *MKL) SetInterfaceLayer(w Width) Status {
	var code C.int
	switch w {
	case Narrow:
		code = 0
	case Wide:
		code = 1
	default:
		return StatusInvalidValue
	}
	if C.MKL_Set_Interface_Layer(code) != code {
		return StatusNotSupported
	}
	return StatusSuccess
}

func (e *MKL) SetThreads(n int) {
	if n > 0 {
		C.MKL_Set_Num_Threads(C.int(n))
	}
}

func cHandle(h Handle) C.sdm_matrix { return C.sdm_matrix(unsafe.Pointer(uintptr(h))) }

func bufferPtr(buf any, pin *runtime.Pinner) unsafe.Pointer {
	var p unsafe.Pointer
	switch s := buf.(type) {
	case []float32:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	case []float64:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	case []complex64:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	case []complex128:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	case []int32:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	case []int64:
		if len(s) > 0 {
			p = unsafe.Pointer(&s[0])
		}
	}
	if p != nil && pin != nil {
		pin.Pin(p)
	}
	return p
}

func (e *MKL) Create(sym Symbol, m Matrix) (Handle, Status) {
	fn := e.fn(sym)
	if fn == nil {
		return 0, StatusNotSupported
	}
	bs := max(m.BlockSize, 1)
	pin := new(runtime.Pinner)
	off := bufferPtr(m.Offsets, pin)
	idx := bufferPtr(m.Indices, pin)
	val := bufferPtr(m.Values, pin)
	var a C.sdm_matrix
	st := Status(C.sdm_create(fn, &a, C.int64_t(m.Rows), C.int64_t(m.Cols), C.int64_t(bs), off, idx, val))
	if st != StatusSuccess {
		pin.Unpin()
		return 0, st
	}
	h := Handle(uintptr(unsafe.Pointer(a)))
	e.mu.Lock()
	e.pins[h] = pin
	e.mu.Unlock()
	return h, StatusSuccess
}

func (e *MKL) Destroy(h Handle) Status {
	st := Status(C.mkl_sparse_destroy(cHandle(h)))
	if st != StatusSuccess {
		return st
	}
	e.mu.Lock()
	pin, ok := e.pins[h]
	delete(e.pins, h)
	e.mu.Unlock()
	if ok {
		pin.Unpin()
	}
	return StatusSuccess
}

func (e *MKL) Order(h Handle) Status {
	return Status(C.mkl_sparse_order(cHandle(h)))
}

func (e *MKL) Convert(_ Symbol, h Handle, op Operation) (Handle, Status) {
	var out C.sdm_matrix
	st := Status(C.mkl_sparse_convert_csr(cHandle(h), C.int(op), &out))
	if st != StatusSuccess {
		return 0, st
	}
	return Handle(uintptr(unsafe.Pointer(out))), StatusSuccess
}

func (e *MKL) SpMM(_ Symbol, op Operation, a, b Handle) (Handle, Status) {
	var out C.sdm_matrix
	st := Status(C.mkl_sparse_spmm(C.int(op), cHandle(a), cHandle(b), &out))
	if st != StatusSuccess {
		return 0, st
	}
	return Handle(uintptr(unsafe.Pointer(out))), StatusSuccess
}

// Export copies the engine's arrays into Go memory, compacting the
// start/end pairs into a single offsets array.
func (e *MKL) Export(sym Symbol, h Handle) (Matrix, Status) {
	entry, ok := Lookup(sym)
	fn := e.fn(sym)
	if !ok || fn == nil {
		return Matrix{}, StatusNotSupported
	}
	var rows, cols, bs C.int64_t
	var start, end, idx, val unsafe.Pointer
	st := Status(C.sdm_export(fn, cHandle(h), &rows, &cols, &bs, &start, &end, &idx, &val))
	if st != StatusSuccess {
		return Matrix{}, st
	}
	m := Matrix{Format: entry.Format, Rows: int(rows), Cols: int(cols), BlockSize: int(bs)}
	outer, stride := m.Rows, 1
	switch entry.Format {
	case CSC:
		outer = m.Cols
	case BSR:
		stride = m.BlockSize * m.BlockSize
		m.Rows *= m.BlockSize
		m.Cols *= m.BlockSize
	}
	if outer > 0 && (start == nil || end == nil) {
		return Matrix{}, StatusInternalError
	}
	raw := exported{outer: outer, stride: stride, start: start, end: end, idx: idx, val: val}
	switch entry.Width {
	case Narrow:
		fillExport[int32](&m, entry.DType, raw)
	default:
		fillExport[int64](&m, entry.DType, raw)
	}
	return m, StatusSuccess
}

type exported struct {
	outer, stride        int
	start, end, idx, val unsafe.Pointer
}

func fillExport[I Index](m *Matrix, dtype DType, raw exported) {
	switch dtype {
	case Float32:
		copyExport[float32, I](m, raw)
	case Float64:
		copyExport[float64, I](m, raw)
	case Complex64:
		copyExport[complex64, I](m, raw)
	default:
		copyExport[complex128, I](m, raw)
	}
}

func copyExport[V Scalar, I Index](m *Matrix, raw exported) {
	offsets := make([]I, raw.outer+1)
	var indices []I
	var values []V
	if raw.outer > 0 {
		start := unsafe.Slice((*I)(raw.start), raw.outer)
		end := unsafe.Slice((*I)(raw.end), raw.outer)
		var hi I
		for _, x := range end {
			hi = max(hi, x)
		}
		ix := unsafe.Slice((*I)(raw.idx), int(hi))
		vs := unsafe.Slice((*V)(raw.val), int(hi)*raw.stride)
		for o := 0; o < raw.outer; o++ {
			indices = append(indices, ix[start[o]:end[o]]...)
			values = append(values, vs[int(start[o])*raw.stride:int(end[o])*raw.stride]...)
			offsets[o+1] = I(len(indices))
		}
	}
	if indices == nil {
		indices = []I{}
		values = []V{}
	}
	m.Offsets, m.Indices, m.Values = offsets, indices, values
}

func (e *MKL) MM(sym Symbol, a MMArgs) Status {
	fn := e.fn(sym)
	if fn == nil {
		return StatusNotSupported
	}
	d := C.struct_sdm_descr{kind: C.int(a.Descr.Type), mode: C.int(a.Descr.Fill), diag: C.int(a.Descr.Diag)}
	return Status(C.sdm_mm(fn, C.int(a.Op),
		C.double(real(a.Alpha)), C.double(imag(a.Alpha)),
		cHandle(a.A), d, C.int(a.Layout),
		bufferPtr(a.B, nil), C.int64_t(a.Columns), C.int64_t(a.LDB),
		C.double(real(a.Beta)), C.double(imag(a.Beta)),
		bufferPtr(a.C, nil), C.int64_t(a.LDC)))
}

func (e *MKL) MV(sym Symbol, a MVArgs) Status {
	fn := e.fn(sym)
	if fn == nil {
		return StatusNotSupported
	}
	d := C.struct_sdm_descr{kind: C.int(a.Descr.Type), mode: C.int(a.Descr.Fill), diag: C.int(a.Descr.Diag)}
	return Status(C.sdm_mv(fn, C.int(a.Op),
		C.double(real(a.Alpha)), C.double(imag(a.Alpha)),
		cHandle(a.A), d,
		bufferPtr(a.X, nil),
		C.double(real(a.Beta)), C.double(imag(a.Beta)),
		bufferPtr(a.Y, nil)))
}
