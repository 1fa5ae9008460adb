package sparsedot

import (
	"context"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// Key identifies one routine variant.
type Key struct {
	Kind   OpKind
	DType  DType
	Width  IndexWidth
	Format Format
}

// Variant is one row of the dispatch table: the native entry points used for
// a Key and the operand options they accept.
type Variant struct {
	Key

	Create  string
	Routine string
	Export  string
	// Convert is set when the second sparse operand may be transposed by
	// conversion to row-compressed form.
	Convert string
	Order   string
	Destroy string

	// Ops are the transposes accepted on the sparse operand A.
	Ops TransposeSet
	// OpsB are the transposes accepted on the second operand.
	OpsB TransposeSet
	// Layouts are the dense layouts the routine reads and writes.
	Layouts LayoutSet
}

func (v *Variant) symbols() []string {
	syms := []string{v.Create, v.Routine, v.Destroy}
	for _, s := range []string{v.Export, v.Convert, v.Order} {
		if s != "" {
			syms = append(syms, s)
		}
	}
	return syms
}

type dispatchTable struct {
	rows  []Variant
	index map[Key]int
}

// newDispatchTable keeps the rows of variants whose entry points eng
// resolves.
func newDispatchTable(ctx context.Context, eng backend.Engine, logger logging.Logger) *dispatchTable {
	t := &dispatchTable{index: make(map[Key]int, len(variants))}
rows:
	for _, v := range variants {
		for _, sym := range v.symbols() {
			if !eng.Resolve(backend.Symbol(sym)) {
				logger.Debug(ctx, "variant unavailable", "kind", v.Kind, "dtype", v.DType, "width", v.Width, "format", v.Format, "routine", sym)
				continue rows
			}
		}
		t.index[v.Key] = len(t.rows)
		t.rows = append(t.rows, v)
	}
	return t
}

func (t *dispatchTable) lookup(k Key) (*Variant, bool) {
	i, ok := t.index[k]
	if !ok {
		return nil, false
	}
	return &t.rows[i], true
}

// createSymbol returns the create entry for matrices shaped like d.
func (t *dispatchTable) createSymbol(d *Descriptor) (string, bool) {
	for _, kind := range []OpKind{SparseVector, SparseDense, SparseSparse} {
		if v, ok := t.lookup(Key{kind, d.dtype, d.width, d.format}); ok {
			return v.Create, true
		}
	}
	return "", false
}

// resolve selects the variant for req. It runs before any native resource
// is created and checks operand widths, dtypes and transposes against the
// table.
func (b *Bridge) resolve(req *Request) (*Variant, error) {
	const op = "dispatch"
	a := req.A
	if w := b.cfg.Width; a.width != w {
		return nil, operandError(ErrIndexWidthMismatch, op, 0, a, "active interface is %s", w)
	}
	if req.B != nil && req.B.width != b.cfg.Width {
		return nil, operandError(ErrIndexWidthMismatch, op, 1, req.B, "active interface is %s", b.cfg.Width)
	}
	if req.B != nil && req.B.dtype != a.dtype {
		return nil, operandError(ErrNoMatchingVariant, op, 1, req.B, "operand dtypes differ: %s and %s", a.dtype, req.B.dtype)
	}
	if req.B != nil && req.B.format != a.format {
		return nil, operandError(ErrNoMatchingVariant, op, 1, req.B, "operand formats differ: %s and %s", a.format, req.B.format)
	}
	if req.B != nil && req.B.blockSize != a.blockSize {
		return nil, operandError(ErrNoMatchingVariant, op, 1, req.B, "block sizes differ: %d and %d", a.blockSize, req.B.blockSize)
	}
	if req.Dense != nil && req.Dense.dtype != a.dtype {
		return nil, denseError(ErrNoMatchingVariant, op, 1, req.Dense, "operand dtypes differ: %s and %s", a.dtype, req.Dense.dtype)
	}
	if req.Out != nil && req.Out.dtype != a.dtype {
		return nil, denseError(ErrNoMatchingVariant, op, 2, req.Out, "output dtype %s, operands are %s", req.Out.dtype, a.dtype)
	}

	v, ok := b.table.lookup(Key{req.Kind, a.dtype, a.width, a.format})
	if !ok {
		return nil, operandError(ErrNoMatchingVariant, op, 0, a, "no %s routine", req.Kind)
	}
	fail := func(msg string, args ...any) (*Variant, error) {
		e := operandError(ErrNoMatchingVariant, op, 0, a, msg, args...)
		e.Routine = v.Routine
		return nil, e
	}
	if !v.Ops.Has(req.TransA) {
		return fail("transpose %s of A not in %s", req.TransA, v.Ops)
	}
	switch req.Kind {
	case SparseDense, DenseSparse:
		// op(D) is either a layout reinterpretation or an explicit copy.
		if req.TransB < NoTrans || req.TransB > ConjTrans {
			return fail("transpose %s of the dense operand", req.TransB)
		}
	default:
		if !v.OpsB.Has(req.TransB) {
			return fail("transpose %s of B not in %s", req.TransB, v.OpsB)
		}
	}
	if req.Structure.Kind < General || req.Structure.Kind > Diagonal {
		return fail("%s", req.Structure.Kind)
	}
	if !a.dtype.IsComplex() && (imag(req.Alpha.value) != 0 || imag(req.Beta.value) != 0) {
		return fail("complex scalar for %s operands", a.dtype)
	}
	switch req.Kind {
	case SparseDense, DenseSparse, SparseVector:
		if req.Beta.set && req.Out == nil {
			return fail("beta without an output")
		}
	case SparseSparse, Dot:
		if req.Structure != (Structure{}) {
			return fail("%s structure", req.Structure.Kind)
		}
		if req.Out != nil || req.Beta.set {
			return fail("%s does not accumulate into an output", req.Kind)
		}
	}
	return v, nil
}
