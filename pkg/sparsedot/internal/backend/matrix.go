package backend

import "sort"

// Scalar is the set of value types the engine computes in.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Index is the set of integer widths the engine indexes with.
type Index interface {
	int32 | int64
}

// matrix is the engine-side state behind one handle.
type matrix interface {
	attrs() (DType, Width, Format)
	shape() (rows, cols int)
	export() Matrix
	order()
	convert(op Operation) matrix
	mm(args MMArgs, threads int) Status
	mv(args MVArgs) Status
	spmm(op Operation, b matrix, budget uint64) (matrix, Status)
}

type entry[V Scalar] struct {
	r, c int
	v    V
}

// csMatrix stores a compressed matrix over caller-owned buffers.
type csMatrix[V Scalar, I Index] struct {
	format     Format
	rows, cols int
	bs         int
	values     []V
	indices    []I
	offsets    []I
}

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

func widthOf[I Index]() Width {
	var i I
	if _, ok := any(i).(int32); ok {
		return Narrow
	}
	return Wide
}

func scalarOf[V Scalar](z complex128) V {
	var v V
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(real(z))
	case *float64:
		*p = real(z)
	case *complex64:
		*p = complex64(z)
	case *complex128:
		*p = z
	}
	return v
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

// openMatrix type-checks m against the Go buffer types and validates its
// structure. It never copies.
func openMatrix(m Matrix) (matrix, Status) {
	switch v := m.Values.(type) {
	case []float32:
		return openIndexed(v, m)
	case []float64:
		return openIndexed(v, m)
	case []complex64:
		return openIndexed(v, m)
	case []complex128:
		return openIndexed(v, m)
	}
	return nil, StatusInvalidValue
}

func openIndexed[V Scalar](values []V, m Matrix) (matrix, Status) {
	switch idx := m.Indices.(type) {
	case []int32:
		off, ok := m.Offsets.([]int32)
		if !ok {
			return nil, StatusInvalidValue
		}
		return openCS(values, idx, off, m)
	case []int64:
		off, ok := m.Offsets.([]int64)
		if !ok {
			return nil, StatusInvalidValue
		}
		return openCS(values, idx, off, m)
	}
	return nil, StatusInvalidValue
}

func openCS[V Scalar, I Index](values []V, indices, offsets []I, m Matrix) (matrix, Status) {
	if m.Rows < 0 || m.Cols < 0 {
		return nil, StatusInvalidValue
	}
	bs := 1
	if m.Format == BSR {
		bs = m.BlockSize
		if bs < 1 || m.Rows%bs != 0 || m.Cols%bs != 0 {
			return nil, StatusInvalidValue
		}
	}
	outer, inner := m.Outer(), m.Inner()
	if len(offsets) != outer+1 || offsets[0] != 0 {
		return nil, StatusInvalidValue
	}
	for i := 1; i <= outer; i++ {
		if offsets[i] < offsets[i-1] {
			return nil, StatusInvalidValue
		}
	}
	if int(offsets[outer]) != len(indices) || len(values) != len(indices)*bs*bs {
		return nil, StatusInvalidValue
	}
	for _, ix := range indices {
		if ix < 0 || int(ix) >= inner {
			return nil, StatusInvalidValue
		}
	}
	return &csMatrix[V, I]{
		format:  m.Format,
		rows:    m.Rows,
		cols:    m.Cols,
		bs:      bs,
		values:  values,
		indices: indices,
		offsets: offsets,
	}, StatusSuccess
}

func (m *csMatrix[V, I]) attrs() (DType, Width, Format) {
	return dtypeOf[V](), widthOf[I](), m.format
}

func (m *csMatrix[V, I]) shape() (int, int) { return m.rows, m.cols }

func (m *csMatrix[V, I]) export() Matrix {
	return Matrix{
		Format:    m.format,
		Rows:      m.rows,
		Cols:      m.cols,
		BlockSize: m.bs,
		Values:    m.values,
		Indices:   m.indices,
		Offsets:   m.offsets,
	}
}

// each visits every stored element in storage order.
func (m *csMatrix[V, I]) each(fn func(r, c int, v V)) {
	outer := len(m.offsets) - 1
	for o := 0; o < outer; o++ {
		for p := m.offsets[o]; p < m.offsets[o+1]; p++ {
			in := int(m.indices[p])
			switch m.format {
			case CSC:
				fn(in, o, m.values[p])
			case BSR:
				blk := m.values[int(p)*m.bs*m.bs:]
				for i := 0; i < m.bs; i++ {
					for j := 0; j < m.bs; j++ {
						fn(o*m.bs+i, in*m.bs+j, blk[i*m.bs+j])
					}
				}
			default:
				fn(o, in, m.values[p])
			}
		}
	}
}

func validDescr(d Descr, rows, cols int) bool {
	switch d.Type {
	case TypeGeneral:
		return true
	case TypeDiagonal:
		return rows == cols
	case TypeSymmetric, TypeHermitian, TypeTriangular:
		return rows == cols && (d.Fill == FillLower || d.Fill == FillUpper)
	}
	return false
}

// effective returns the elements of op(A) as seen through d.
func (m *csMatrix[V, I]) effective(d Descr, op Operation) []entry[V] {
	var out []entry[V]
	emit := func(r, c int, v V) {
		switch op {
		case OpTranspose:
			r, c = c, r
		case OpConjugateTranspose:
			r, c, v = c, r, conj(v)
		}
		out = append(out, entry[V]{r: r, c: c, v: v})
	}
	inFill := func(r, c int) bool {
		if d.Fill == FillLower {
			return r >= c
		}
		return r <= c
	}
	unit := d.Type != TypeGeneral && d.Diag == DiagUnit
	m.each(func(r, c int, v V) {
		if unit && r == c {
			return
		}
		switch d.Type {
		case TypeGeneral:
			emit(r, c, v)
		case TypeDiagonal:
			if r == c {
				emit(r, c, v)
			}
		case TypeTriangular:
			if inFill(r, c) {
				emit(r, c, v)
			}
		case TypeSymmetric, TypeHermitian:
			if !inFill(r, c) {
				return
			}
			emit(r, c, v)
			if r != c {
				if d.Type == TypeHermitian {
					emit(c, r, conj(v))
				} else {
					emit(c, r, v)
				}
			}
		}
	})
	if unit {
		one := scalarOf[V](1)
		for i := 0; i < m.rows; i++ {
			emit(i, i, one)
		}
	}
	return out
}

func (m *csMatrix[V, I]) opShape(op Operation) (int, int) {
	if op == OpNonTranspose {
		return m.rows, m.cols
	}
	return m.cols, m.rows
}

// order sorts inner indices within every outer slice, moving values and
// blocks along with them.
func (m *csMatrix[V, I]) order() {
	stride := 1
	if m.format == BSR {
		stride = m.bs * m.bs
	}
	outer := len(m.offsets) - 1
	for o := 0; o < outer; o++ {
		lo, hi := int(m.offsets[o]), int(m.offsets[o+1])
		sort.Sort(&sliceSorter[V, I]{
			indices: m.indices[lo:hi],
			values:  m.values[lo*stride : hi*stride],
			stride:  stride,
		})
	}
}

type sliceSorter[V Scalar, I Index] struct {
	indices []I
	values  []V
	stride  int
}

func (s *sliceSorter[V, I]) Len() int           { return len(s.indices) }
func (s *sliceSorter[V, I]) Less(i, j int) bool { return s.indices[i] < s.indices[j] }
func (s *sliceSorter[V, I]) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	a, b := s.values[i*s.stride:(i+1)*s.stride], s.values[j*s.stride:(j+1)*s.stride]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// convert returns op(A) in row-compressed form with owned buffers.
func (m *csMatrix[V, I]) convert(op Operation) matrix {
	rows, cols := m.opShape(op)
	return assemble[V, I](CSR, rows, cols, 1, m.effective(GeneralDescr, op))
}

// assemble packs elements into a freshly allocated matrix of the given
// format. Duplicate positions are summed for BSR only; element order within
// an outer slice follows input order.
func assemble[V Scalar, I Index](format Format, rows, cols, bs int, es []entry[V]) *csMatrix[V, I] {
	out := &csMatrix[V, I]{format: format, rows: rows, cols: cols, bs: bs}
	switch format {
	case BSR:
		outer := rows / bs
		pos := make([]map[int]int, outer)
		var blocks [][]V
		var bcols []int
		var owner []int
		for _, e := range es {
			br, bc := e.r/bs, e.c/bs
			if pos[br] == nil {
				pos[br] = make(map[int]int)
			}
			k, ok := pos[br][bc]
			if !ok {
				k = len(blocks)
				pos[br][bc] = k
				blocks = append(blocks, make([]V, bs*bs))
				bcols = append(bcols, bc)
				owner = append(owner, br)
			}
			blocks[k][(e.r%bs)*bs+e.c%bs] += e.v
		}
		out.offsets = make([]I, outer+1)
		for _, br := range owner {
			out.offsets[br+1]++
		}
		for i := 0; i < outer; i++ {
			out.offsets[i+1] += out.offsets[i]
		}
		next := make([]I, outer)
		copy(next, out.offsets[:outer])
		out.indices = make([]I, len(blocks))
		out.values = make([]V, len(blocks)*bs*bs)
		for k, br := range owner {
			p := int(next[br])
			next[br]++
			out.indices[p] = I(bcols[k])
			copy(out.values[p*bs*bs:], blocks[k])
		}
	default:
		outer := rows
		key := func(e entry[V]) (int, int) { return e.r, e.c }
		if format == CSC {
			outer = cols
			key = func(e entry[V]) (int, int) { return e.c, e.r }
		}
		out.offsets = make([]I, outer+1)
		for _, e := range es {
			o, _ := key(e)
			out.offsets[o+1]++
		}
		for i := 0; i < outer; i++ {
			out.offsets[i+1] += out.offsets[i]
		}
		next := make([]I, outer)
		copy(next, out.offsets[:outer])
		out.indices = make([]I, len(es))
		out.values = make([]V, len(es))
		for _, e := range es {
			o, in := key(e)
			p := next[o]
			next[o]++
			out.indices[p] = I(in)
			out.values[p] = e.v
		}
	}
	return out
}
