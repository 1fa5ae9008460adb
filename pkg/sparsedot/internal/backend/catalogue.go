package backend

// Entry describes one native entry point. DTypeAny, WidthAny and FormatAny
// mark symbols whose signature does not depend on that attribute.
type Entry struct {
	Symbol Symbol
	Class  Class
	DType  DType
	Width  Width
	Format Format
}

// Catalogue lists every entry point the bridge may call. Engines resolve
// these names against their own tables; nothing outside this list is ever
// looked up.
var Catalogue = []Entry{
	// handle creation
	{Symbol: "mkl_sparse_s_create_csr", Class: ClassCreate, DType: Float32, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_s_create_csr_64", Class: ClassCreate, DType: Float32, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_s_create_csc", Class: ClassCreate, DType: Float32, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_s_create_csc_64", Class: ClassCreate, DType: Float32, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_s_create_bsr", Class: ClassCreate, DType: Float32, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_s_create_bsr_64", Class: ClassCreate, DType: Float32, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_d_create_csr", Class: ClassCreate, DType: Float64, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_d_create_csr_64", Class: ClassCreate, DType: Float64, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_d_create_csc", Class: ClassCreate, DType: Float64, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_d_create_csc_64", Class: ClassCreate, DType: Float64, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_d_create_bsr", Class: ClassCreate, DType: Float64, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_d_create_bsr_64", Class: ClassCreate, DType: Float64, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_c_create_csr", Class: ClassCreate, DType: Complex64, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_c_create_csr_64", Class: ClassCreate, DType: Complex64, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_c_create_csc", Class: ClassCreate, DType: Complex64, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_c_create_csc_64", Class: ClassCreate, DType: Complex64, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_c_create_bsr", Class: ClassCreate, DType: Complex64, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_c_create_bsr_64", Class: ClassCreate, DType: Complex64, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_z_create_csr", Class: ClassCreate, DType: Complex128, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_z_create_csr_64", Class: ClassCreate, DType: Complex128, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_z_create_csc", Class: ClassCreate, DType: Complex128, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_z_create_csc_64", Class: ClassCreate, DType: Complex128, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_z_create_bsr", Class: ClassCreate, DType: Complex128, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_z_create_bsr_64", Class: ClassCreate, DType: Complex128, Width: Wide, Format: BSR},
	// export of engine-owned arrays
	{Symbol: "mkl_sparse_s_export_csr", Class: ClassExport, DType: Float32, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_s_export_csr_64", Class: ClassExport, DType: Float32, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_s_export_csc", Class: ClassExport, DType: Float32, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_s_export_csc_64", Class: ClassExport, DType: Float32, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_s_export_bsr", Class: ClassExport, DType: Float32, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_s_export_bsr_64", Class: ClassExport, DType: Float32, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_d_export_csr", Class: ClassExport, DType: Float64, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_d_export_csr_64", Class: ClassExport, DType: Float64, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_d_export_csc", Class: ClassExport, DType: Float64, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_d_export_csc_64", Class: ClassExport, DType: Float64, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_d_export_bsr", Class: ClassExport, DType: Float64, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_d_export_bsr_64", Class: ClassExport, DType: Float64, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_c_export_csr", Class: ClassExport, DType: Complex64, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_c_export_csr_64", Class: ClassExport, DType: Complex64, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_c_export_csc", Class: ClassExport, DType: Complex64, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_c_export_csc_64", Class: ClassExport, DType: Complex64, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_c_export_bsr", Class: ClassExport, DType: Complex64, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_c_export_bsr_64", Class: ClassExport, DType: Complex64, Width: Wide, Format: BSR},
	{Symbol: "mkl_sparse_z_export_csr", Class: ClassExport, DType: Complex128, Width: Narrow, Format: CSR},
	{Symbol: "mkl_sparse_z_export_csr_64", Class: ClassExport, DType: Complex128, Width: Wide, Format: CSR},
	{Symbol: "mkl_sparse_z_export_csc", Class: ClassExport, DType: Complex128, Width: Narrow, Format: CSC},
	{Symbol: "mkl_sparse_z_export_csc_64", Class: ClassExport, DType: Complex128, Width: Wide, Format: CSC},
	{Symbol: "mkl_sparse_z_export_bsr", Class: ClassExport, DType: Complex128, Width: Narrow, Format: BSR},
	{Symbol: "mkl_sparse_z_export_bsr_64", Class: ClassExport, DType: Complex128, Width: Wide, Format: BSR},
	// sparse x dense
	{Symbol: "mkl_sparse_s_mm", Class: ClassMM, DType: Float32, Width: Narrow, Format: FormatAny},
	{Symbol: "mkl_sparse_s_mm_64", Class: ClassMM, DType: Float32, Width: Wide, Format: FormatAny},
	{Symbol: "mkl_sparse_d_mm", Class: ClassMM, DType: Float64, Width: Narrow, Format: FormatAny},
	{Symbol: "mkl_sparse_d_mm_64", Class: ClassMM, DType: Float64, Width: Wide, Format: FormatAny},
	{Symbol: "mkl_sparse_c_mm", Class: ClassMM, DType: Complex64, Width: Narrow, Format: FormatAny},
	{Symbol: "mkl_sparse_c_mm_64", Class: ClassMM, DType: Complex64, Width: Wide, Format: FormatAny},
	{Symbol: "mkl_sparse_z_mm", Class: ClassMM, DType: Complex128, Width: Narrow, Format: FormatAny},
	{Symbol: "mkl_sparse_z_mm_64", Class: ClassMM, DType: Complex128, Width: Wide, Format: FormatAny},
	// sparse x vector; no integer arguments, one entry per precision
	{Symbol: "mkl_sparse_s_mv", Class: ClassMV, DType: Float32, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_d_mv", Class: ClassMV, DType: Float64, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_c_mv", Class: ClassMV, DType: Complex64, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_z_mv", Class: ClassMV, DType: Complex128, Width: WidthAny, Format: FormatAny},
	// precision-agnostic entries
	{Symbol: "mkl_sparse_spmm", Class: ClassSpMM, DType: DTypeAny, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_convert_csr", Class: ClassConvert, DType: DTypeAny, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_order", Class: ClassOrder, DType: DTypeAny, Width: WidthAny, Format: FormatAny},
	{Symbol: "mkl_sparse_destroy", Class: ClassDestroy, DType: DTypeAny, Width: WidthAny, Format: FormatAny},
}

var catalogueIndex = func() map[Symbol]Entry {
	idx := make(map[Symbol]Entry, len(Catalogue))
	for _, e := range Catalogue {
		idx[e.Symbol] = e
	}
	return idx
}()

// Lookup returns the catalogue entry for sym.
func Lookup(sym Symbol) (Entry, bool) {
	e, ok := catalogueIndex[sym]
	return e, ok
}

// Find returns the symbol of the given class whose attributes match exactly.
func Find(class Class, dtype DType, width Width, format Format) (Symbol, bool) {
	for _, e := range Catalogue {
		if e.Class == class && e.DType == dtype && e.Width == width && e.Format == format {
			return e.Symbol, true
		}
	}
	return "", false
}

// matches reports whether e accepts a matrix with the given attributes.
func (e Entry) matches(dtype DType, width Width, format Format) bool {
	return (e.DType == DTypeAny || e.DType == dtype) &&
		(e.Width == WidthAny || e.Width == width) &&
		(e.Format == FormatAny || e.Format == format)
}
