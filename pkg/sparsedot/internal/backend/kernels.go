package backend

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas/gonum"
)

// kernels binds the level-1 routines of one dtype.
type kernels[V Scalar] struct {
	axpy func(n int, alpha V, x []V, incX int, y []V, incY int)
	scal func(n int, alpha V, x []V, incX int)
}

func kernelsFor[V Scalar]() kernels[V] {
	var impl gonum.Implementation
	var axpy, scal any
	switch dtypeOf[V]() {
	case Float32:
		axpy, scal = impl.Saxpy, impl.Sscal
	case Float64:
		axpy, scal = impl.Daxpy, impl.Dscal
	case Complex64:
		axpy, scal = impl.Caxpy, impl.Cscal
	default:
		axpy, scal = impl.Zaxpy, impl.Zscal
	}
	return kernels[V]{
		axpy: axpy.(func(int, V, []V, int, []V, int)),
		scal: scal.(func(int, V, []V, int)),
	}
}

// fits reports whether an r×c strided view starting at 0 lies within n
// elements.
func fits(n, r, c, rowStride, colStride int) bool {
	if r == 0 || c == 0 {
		return true
	}
	return (r-1)*rowStride+(c-1)*colStride < n
}

// scaleInto applies y = beta·y over w strided elements.
func scaleInto[V Scalar](k kernels[V], w int, beta V, y []V, inc int) {
	switch {
	case w == 0 || beta == 1:
	case beta == 0:
		for j := 0; j < w; j++ {
			y[j*inc] = 0
		}
	default:
		k.scal(w, beta, y, inc)
	}
}

func (m *csMatrix[V, I]) mm(a MMArgs, threads int) Status {
	if !validDescr(a.Descr, m.rows, m.cols) {
		return StatusInvalidValue
	}
	b, okB := a.B.([]V)
	c, okC := a.C.([]V)
	if !okB || !okC || a.Columns < 0 {
		return StatusInvalidValue
	}
	mo, ko := m.opShape(a.Op)
	n := a.Columns

	// Element (i, j) of B lives at b[i*bRow+j*bCol], likewise for C.
	var bRow, bCol, cRow, cCol int
	switch a.Layout {
	case RowMajor:
		if a.LDB < max(n, 1) || a.LDC < max(n, 1) {
			return StatusInvalidValue
		}
		bRow, bCol, cRow, cCol = a.LDB, 1, a.LDC, 1
	case ColumnMajor:
		if a.LDB < max(ko, 1) || a.LDC < max(mo, 1) {
			return StatusInvalidValue
		}
		bRow, bCol, cRow, cCol = 1, a.LDB, 1, a.LDC
	default:
		return StatusInvalidValue
	}
	if !fits(len(b), ko, n, bRow, bCol) || !fits(len(c), mo, n, cRow, cCol) {
		return StatusInvalidValue
	}
	if mo == 0 || n == 0 {
		return StatusSuccess
	}

	es := m.effective(a.Descr, a.Op)
	k := kernelsFor[V]()
	alpha, beta := scalarOf[V](a.Alpha), scalarOf[V](a.Beta)

	threads = max(threads, 1)
	panel := (n + threads - 1) / threads
	var g errgroup.Group
	g.SetLimit(threads)
	for j0 := 0; j0 < n; j0 += panel {
		j0, w := j0, min(panel, n-j0)
		g.Go(func() error {
			for i := 0; i < mo; i++ {
				scaleInto(k, w, beta, c[i*cRow+j0*cCol:], cCol)
			}
			for _, e := range es {
				k.axpy(w, alpha*e.v, b[e.c*bRow+j0*bCol:], bCol, c[e.r*cRow+j0*cCol:], cCol)
			}
			return nil
		})
	}
	_ = g.Wait()
	return StatusSuccess
}

func (m *csMatrix[V, I]) mv(a MVArgs) Status {
	if !validDescr(a.Descr, m.rows, m.cols) {
		return StatusInvalidValue
	}
	x, okX := a.X.([]V)
	y, okY := a.Y.([]V)
	mo, ko := m.opShape(a.Op)
	if !okX || !okY || len(x) != ko || len(y) != mo {
		return StatusInvalidValue
	}
	k := kernelsFor[V]()
	alpha, beta := scalarOf[V](a.Alpha), scalarOf[V](a.Beta)
	scaleInto(k, mo, beta, y, 1)
	for _, e := range m.effective(a.Descr, a.Op) {
		y[e.r] += alpha * e.v * x[e.c]
	}
	return StatusSuccess
}

// spmm computes op(A)·B row by row. Both operands must share dtype, width
// and format; the result is unordered within each outer slice.
func (m *csMatrix[V, I]) spmm(op Operation, other matrix, budget uint64) (matrix, Status) {
	b, ok := other.(*csMatrix[V, I])
	if !ok {
		return nil, StatusInvalidValue
	}
	if b.format != m.format || b.bs != m.bs {
		return nil, StatusNotSupported
	}
	mo, ko := m.opShape(op)
	if ko != b.rows {
		return nil, StatusInvalidValue
	}

	rowsB := make([][]entry[V], b.rows)
	b.each(func(r, c int, v V) {
		rowsB[r] = append(rowsB[r], entry[V]{r: r, c: c, v: v})
	})
	byRow := make([][]entry[V], mo)
	var work uint64
	for _, e := range m.effective(GeneralDescr, op) {
		byRow[e.r] = append(byRow[e.r], e)
		work += uint64(len(rowsB[e.c]))
	}
	work = min(work, uint64(mo)*uint64(b.cols))
	if elem := uint64(dtypeOf[V]().Size() + widthOf[I]().Size()); budget > 0 && work*elem > budget {
		return nil, StatusAllocFailed
	}

	var out []entry[V]
	acc := make(map[int]V)
	for i, row := range byRow {
		for _, ea := range row {
			for _, eb := range rowsB[ea.c] {
				acc[eb.c] += ea.v * eb.v
			}
		}
		for j, v := range acc {
			out = append(out, entry[V]{r: i, c: j, v: v})
		}
		clear(acc)
	}
	return assemble[V, I](m.format, mo, b.cols, m.bs, out), StatusSuccess
}
