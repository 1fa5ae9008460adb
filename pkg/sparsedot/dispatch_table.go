package sparsedot

var (
	opsN   = transposes(NoTrans)
	opsNT  = transposes(NoTrans, Trans)
	opsNTH = transposes(NoTrans, Trans, ConjTrans)

	rowCol  = layouts(RowMajor, ColMajor)
	rowOnly = layouts(RowMajor)
	colOnly = layouts(ColMajor)
)

// variants is every supported combination. Adding or removing a row is the
// only way to change what the bridge dispatches to. Block-row-compressed
// complex matrices have no 64-bit variants.
var variants = []Variant{
	// Float32, 32-bit indices
	{Key: Key{SparseSparse, Float32, Narrow, CSR}, Create: "mkl_sparse_s_create_csr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_csr", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT},
	{Key: Key{SparseDense, Float32, Narrow, CSR}, Create: "mkl_sparse_s_create_csr", Routine: "mkl_sparse_s_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Float32, Narrow, CSR}, Create: "mkl_sparse_s_create_csr", Routine: "mkl_sparse_s_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Float32, Narrow, CSR}, Create: "mkl_sparse_s_create_csr", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float32, Narrow, CSR}, Create: "mkl_sparse_s_create_csr", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float32, Narrow, CSC}, Create: "mkl_sparse_s_create_csc", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_csc", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{SparseDense, Float32, Narrow, CSC}, Create: "mkl_sparse_s_create_csc", Routine: "mkl_sparse_s_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Float32, Narrow, CSC}, Create: "mkl_sparse_s_create_csc", Routine: "mkl_sparse_s_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Float32, Narrow, CSC}, Create: "mkl_sparse_s_create_csc", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float32, Narrow, CSC}, Create: "mkl_sparse_s_create_csc", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float32, Narrow, BSR}, Create: "mkl_sparse_s_create_bsr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_bsr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Float32, Narrow, BSR}, Create: "mkl_sparse_s_create_bsr", Routine: "mkl_sparse_s_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Float32, Narrow, BSR}, Create: "mkl_sparse_s_create_bsr", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	// Float32, 64-bit indices
	{Key: Key{SparseSparse, Float32, Wide, CSR}, Create: "mkl_sparse_s_create_csr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_csr_64", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT},
	{Key: Key{SparseDense, Float32, Wide, CSR}, Create: "mkl_sparse_s_create_csr_64", Routine: "mkl_sparse_s_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Float32, Wide, CSR}, Create: "mkl_sparse_s_create_csr_64", Routine: "mkl_sparse_s_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Float32, Wide, CSR}, Create: "mkl_sparse_s_create_csr_64", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float32, Wide, CSR}, Create: "mkl_sparse_s_create_csr_64", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float32, Wide, CSC}, Create: "mkl_sparse_s_create_csc_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_csc_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{SparseDense, Float32, Wide, CSC}, Create: "mkl_sparse_s_create_csc_64", Routine: "mkl_sparse_s_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Float32, Wide, CSC}, Create: "mkl_sparse_s_create_csc_64", Routine: "mkl_sparse_s_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Float32, Wide, CSC}, Create: "mkl_sparse_s_create_csc_64", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float32, Wide, CSC}, Create: "mkl_sparse_s_create_csc_64", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float32, Wide, BSR}, Create: "mkl_sparse_s_create_bsr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_s_export_bsr_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Float32, Wide, BSR}, Create: "mkl_sparse_s_create_bsr_64", Routine: "mkl_sparse_s_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Float32, Wide, BSR}, Create: "mkl_sparse_s_create_bsr_64", Routine: "mkl_sparse_s_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	// Float64, 32-bit indices
	{Key: Key{SparseSparse, Float64, Narrow, CSR}, Create: "mkl_sparse_d_create_csr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_csr", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT},
	{Key: Key{SparseDense, Float64, Narrow, CSR}, Create: "mkl_sparse_d_create_csr", Routine: "mkl_sparse_d_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Float64, Narrow, CSR}, Create: "mkl_sparse_d_create_csr", Routine: "mkl_sparse_d_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Float64, Narrow, CSR}, Create: "mkl_sparse_d_create_csr", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float64, Narrow, CSR}, Create: "mkl_sparse_d_create_csr", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float64, Narrow, CSC}, Create: "mkl_sparse_d_create_csc", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_csc", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{SparseDense, Float64, Narrow, CSC}, Create: "mkl_sparse_d_create_csc", Routine: "mkl_sparse_d_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Float64, Narrow, CSC}, Create: "mkl_sparse_d_create_csc", Routine: "mkl_sparse_d_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Float64, Narrow, CSC}, Create: "mkl_sparse_d_create_csc", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float64, Narrow, CSC}, Create: "mkl_sparse_d_create_csc", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float64, Narrow, BSR}, Create: "mkl_sparse_d_create_bsr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_bsr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Float64, Narrow, BSR}, Create: "mkl_sparse_d_create_bsr", Routine: "mkl_sparse_d_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Float64, Narrow, BSR}, Create: "mkl_sparse_d_create_bsr", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	// Float64, 64-bit indices
	{Key: Key{SparseSparse, Float64, Wide, CSR}, Create: "mkl_sparse_d_create_csr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_csr_64", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT},
	{Key: Key{SparseDense, Float64, Wide, CSR}, Create: "mkl_sparse_d_create_csr_64", Routine: "mkl_sparse_d_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Float64, Wide, CSR}, Create: "mkl_sparse_d_create_csr_64", Routine: "mkl_sparse_d_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Float64, Wide, CSR}, Create: "mkl_sparse_d_create_csr_64", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float64, Wide, CSR}, Create: "mkl_sparse_d_create_csr_64", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float64, Wide, CSC}, Create: "mkl_sparse_d_create_csc_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_csc_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{SparseDense, Float64, Wide, CSC}, Create: "mkl_sparse_d_create_csc_64", Routine: "mkl_sparse_d_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Float64, Wide, CSC}, Create: "mkl_sparse_d_create_csc_64", Routine: "mkl_sparse_d_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Float64, Wide, CSC}, Create: "mkl_sparse_d_create_csc_64", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	{Key: Key{Dot, Float64, Wide, CSC}, Create: "mkl_sparse_d_create_csc_64", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Float64, Wide, BSR}, Create: "mkl_sparse_d_create_bsr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_d_export_bsr_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Float64, Wide, BSR}, Create: "mkl_sparse_d_create_bsr_64", Routine: "mkl_sparse_d_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Float64, Wide, BSR}, Create: "mkl_sparse_d_create_bsr_64", Routine: "mkl_sparse_d_mv", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsN},
	// Complex64, 32-bit indices
	{Key: Key{SparseSparse, Complex64, Narrow, CSR}, Create: "mkl_sparse_c_create_csr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_c_export_csr", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNTH},
	{Key: Key{SparseDense, Complex64, Narrow, CSR}, Create: "mkl_sparse_c_create_csr", Routine: "mkl_sparse_c_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Complex64, Narrow, CSR}, Create: "mkl_sparse_c_create_csr", Routine: "mkl_sparse_c_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Complex64, Narrow, CSR}, Create: "mkl_sparse_c_create_csr", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex64, Narrow, CSR}, Create: "mkl_sparse_c_create_csr", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex64, Narrow, CSC}, Create: "mkl_sparse_c_create_csc", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_c_export_csc", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{SparseDense, Complex64, Narrow, CSC}, Create: "mkl_sparse_c_create_csc", Routine: "mkl_sparse_c_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Complex64, Narrow, CSC}, Create: "mkl_sparse_c_create_csc", Routine: "mkl_sparse_c_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Complex64, Narrow, CSC}, Create: "mkl_sparse_c_create_csc", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex64, Narrow, CSC}, Create: "mkl_sparse_c_create_csc", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex64, Narrow, BSR}, Create: "mkl_sparse_c_create_bsr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_c_export_bsr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Complex64, Narrow, BSR}, Create: "mkl_sparse_c_create_bsr", Routine: "mkl_sparse_c_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Complex64, Narrow, BSR}, Create: "mkl_sparse_c_create_bsr", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	// Complex64, 64-bit indices
	{Key: Key{SparseSparse, Complex64, Wide, CSR}, Create: "mkl_sparse_c_create_csr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_c_export_csr_64", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNTH},
	{Key: Key{SparseDense, Complex64, Wide, CSR}, Create: "mkl_sparse_c_create_csr_64", Routine: "mkl_sparse_c_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Complex64, Wide, CSR}, Create: "mkl_sparse_c_create_csr_64", Routine: "mkl_sparse_c_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Complex64, Wide, CSR}, Create: "mkl_sparse_c_create_csr_64", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex64, Wide, CSR}, Create: "mkl_sparse_c_create_csr_64", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex64, Wide, CSC}, Create: "mkl_sparse_c_create_csc_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_c_export_csc_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{SparseDense, Complex64, Wide, CSC}, Create: "mkl_sparse_c_create_csc_64", Routine: "mkl_sparse_c_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Complex64, Wide, CSC}, Create: "mkl_sparse_c_create_csc_64", Routine: "mkl_sparse_c_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Complex64, Wide, CSC}, Create: "mkl_sparse_c_create_csc_64", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex64, Wide, CSC}, Create: "mkl_sparse_c_create_csc_64", Routine: "mkl_sparse_c_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	// Complex128, 32-bit indices
	{Key: Key{SparseSparse, Complex128, Narrow, CSR}, Create: "mkl_sparse_z_create_csr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_z_export_csr", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNTH},
	{Key: Key{SparseDense, Complex128, Narrow, CSR}, Create: "mkl_sparse_z_create_csr", Routine: "mkl_sparse_z_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Complex128, Narrow, CSR}, Create: "mkl_sparse_z_create_csr", Routine: "mkl_sparse_z_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Complex128, Narrow, CSR}, Create: "mkl_sparse_z_create_csr", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex128, Narrow, CSR}, Create: "mkl_sparse_z_create_csr", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex128, Narrow, CSC}, Create: "mkl_sparse_z_create_csc", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_z_export_csc", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{SparseDense, Complex128, Narrow, CSC}, Create: "mkl_sparse_z_create_csc", Routine: "mkl_sparse_z_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Complex128, Narrow, CSC}, Create: "mkl_sparse_z_create_csc", Routine: "mkl_sparse_z_mm", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Complex128, Narrow, CSC}, Create: "mkl_sparse_z_create_csc", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex128, Narrow, CSC}, Create: "mkl_sparse_z_create_csc", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex128, Narrow, BSR}, Create: "mkl_sparse_z_create_bsr", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_z_export_bsr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseDense, Complex128, Narrow, BSR}, Create: "mkl_sparse_z_create_bsr", Routine: "mkl_sparse_z_mm", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowOnly},
	{Key: Key{SparseVector, Complex128, Narrow, BSR}, Create: "mkl_sparse_z_create_bsr", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	// Complex128, 64-bit indices
	{Key: Key{SparseSparse, Complex128, Wide, CSR}, Create: "mkl_sparse_z_create_csr_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_z_export_csr_64", Convert: "mkl_sparse_convert_csr", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNTH},
	{Key: Key{SparseDense, Complex128, Wide, CSR}, Create: "mkl_sparse_z_create_csr_64", Routine: "mkl_sparse_z_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{DenseSparse, Complex128, Wide, CSR}, Create: "mkl_sparse_z_create_csr_64", Routine: "mkl_sparse_z_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: rowCol},
	{Key: Key{SparseVector, Complex128, Wide, CSR}, Create: "mkl_sparse_z_create_csr_64", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex128, Wide, CSR}, Create: "mkl_sparse_z_create_csr_64", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
	{Key: Key{SparseSparse, Complex128, Wide, CSC}, Create: "mkl_sparse_z_create_csc_64", Routine: "mkl_sparse_spmm", Export: "mkl_sparse_z_export_csc_64", Order: "mkl_sparse_order", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{SparseDense, Complex128, Wide, CSC}, Create: "mkl_sparse_z_create_csc_64", Routine: "mkl_sparse_z_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{DenseSparse, Complex128, Wide, CSC}, Create: "mkl_sparse_z_create_csc_64", Routine: "mkl_sparse_z_mm_64", Destroy: "mkl_sparse_destroy", Ops: opsNT, OpsB: opsNT, Layouts: colOnly},
	{Key: Key{SparseVector, Complex128, Wide, CSC}, Create: "mkl_sparse_z_create_csc_64", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsNTH, OpsB: opsN},
	{Key: Key{Dot, Complex128, Wide, CSC}, Create: "mkl_sparse_z_create_csc_64", Routine: "mkl_sparse_z_mv", Destroy: "mkl_sparse_destroy", Ops: opsN, OpsB: opsN},
}
