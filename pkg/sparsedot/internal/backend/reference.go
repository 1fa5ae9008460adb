package backend

import (
	"runtime"
	"sync"

	"github.com/pbnjay/memory"
)

// ReferenceVersion is reported by the reference engine's Version.
const ReferenceVersion = "1.0.0"

// Reference is a pure-Go engine that honours the native calling contract:
// handles alias caller buffers, unknown or released handles are rejected with
// StatusInvalidValue, and symbols are checked against the buffers they are
// called with.
type Reference struct {
	handles *registry

	mu          sync.Mutex
	layer       Width
	threads     int
	handleLimit int
	memLimit    uint64
	faults      map[Class]*fault
}

type fault struct {
	status Status
	left   int
}

// ReferenceOption configures a Reference engine.
type ReferenceOption func(*Reference)

// WithHandleLimit makes Create fail with StatusAllocFailed once n handles
// are live.
func WithHandleLimit(n int) ReferenceOption {
	return func(r *Reference) { r.handleLimit = n }
}

// WithMemoryLimit caps the bytes a single SpMM result may need. The default
// is the machine's total memory.
func WithMemoryLimit(bytes uint64) ReferenceOption {
	return func(r *Reference) { r.memLimit = bytes }
}

// NewReference returns a reference engine in the narrow interface layer.
func NewReference(opts ...ReferenceOption) *Reference {
	r := &Reference{
		handles:  newRegistry(),
		layer:    Narrow,
		threads:  runtime.GOMAXPROCS(0),
		memLimit: memory.TotalMemory(),
		faults:   make(map[Class]*fault),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reference) Name() string    { return "reference" }
func (r *Reference) Version() string { return ReferenceVersion }

// Live returns the number of handles created and not yet destroyed.
func (r *Reference) Live() int { return r.handles.len() }

// InjectFault makes the next count calls of class return status. A failed
// Destroy leaves its handle live.
func (r *Reference) InjectFault(class Class, status Status, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count <= 0 {
		delete(r.faults, class)
		return
	}
	r.faults[class] = &fault{status: status, left: count}
}

func (r *Reference) injected(class Class) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.faults[class]
	if !ok {
		return StatusSuccess, false
	}
	f.left--
	if f.left <= 0 {
		delete(r.faults, class)
	}
	return f.status, true
}

func (r *Reference) Resolve(sym Symbol) bool {
	_, ok := Lookup(sym)
	return ok
}

func (r *Reference) SetInterfaceLayer(w Width) Status {
	if w != Narrow && w != Wide {
		return StatusInvalidValue
	}
	r.mu.Lock()
	r.layer = w
	r.mu.Unlock()
	return StatusSuccess
}

func (r *Reference) SetThreads(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	r.mu.Lock()
	r.threads = n
	r.mu.Unlock()
}

func (r *Reference) config() (Width, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layer, r.threads
}

// entry resolves sym within class. Width-specific symbols must agree with the
// active interface layer.
func (r *Reference) entry(sym Symbol, class Class) (Entry, Status) {
	e, ok := Lookup(sym)
	if !ok || e.Class != class {
		return Entry{}, StatusInvalidValue
	}
	if layer, _ := r.config(); e.Width != WidthAny && e.Width != layer {
		return Entry{}, StatusInvalidValue
	}
	return e, StatusSuccess
}

func (r *Reference) accepts(e Entry, m matrix) bool {
	return e.matches(m.attrs())
}

func (r *Reference) Create(sym Symbol, m Matrix) (Handle, Status) {
	if st, ok := r.injected(ClassCreate); ok {
		return 0, st
	}
	e, st := r.entry(sym, ClassCreate)
	if st != StatusSuccess {
		return 0, st
	}
	if e.Format != m.Format {
		return 0, StatusInvalidValue
	}
	mat, st := openMatrix(m)
	if st != StatusSuccess {
		return 0, st
	}
	if !r.accepts(e, mat) {
		return 0, StatusInvalidValue
	}
	if r.handleLimit > 0 && r.handles.len() >= r.handleLimit {
		return 0, StatusAllocFailed
	}
	return r.handles.put(mat), StatusSuccess
}

func (r *Reference) Destroy(h Handle) Status {
	if st, ok := r.injected(ClassDestroy); ok {
		return st
	}
	if !r.handles.del(h) {
		return StatusInvalidValue
	}
	return StatusSuccess
}

func (r *Reference) Order(h Handle) Status {
	if st, ok := r.injected(ClassOrder); ok {
		return st
	}
	m, ok := r.handles.get(h)
	if !ok {
		return StatusInvalidValue
	}
	m.order()
	return StatusSuccess
}

func (r *Reference) Convert(sym Symbol, h Handle, op Operation) (Handle, Status) {
	if st, ok := r.injected(ClassConvert); ok {
		return 0, st
	}
	if _, st := r.entry(sym, ClassConvert); st != StatusSuccess {
		return 0, st
	}
	m, ok := r.handles.get(h)
	if !ok || !validOp(op) {
		return 0, StatusInvalidValue
	}
	return r.handles.put(m.convert(op)), StatusSuccess
}

func (r *Reference) Export(sym Symbol, h Handle) (Matrix, Status) {
	if st, ok := r.injected(ClassExport); ok {
		return Matrix{}, st
	}
	e, st := r.entry(sym, ClassExport)
	if st != StatusSuccess {
		return Matrix{}, st
	}
	m, ok := r.handles.get(h)
	if !ok || !r.accepts(e, m) {
		return Matrix{}, StatusInvalidValue
	}
	return m.export(), StatusSuccess
}

func (r *Reference) SpMM(sym Symbol, op Operation, a, b Handle) (Handle, Status) {
	if st, ok := r.injected(ClassSpMM); ok {
		return 0, st
	}
	if _, st := r.entry(sym, ClassSpMM); st != StatusSuccess {
		return 0, st
	}
	ma, okA := r.handles.get(a)
	mb, okB := r.handles.get(b)
	if !okA || !okB || !validOp(op) {
		return 0, StatusInvalidValue
	}
	out, st := ma.spmm(op, mb, r.memLimit)
	if st != StatusSuccess {
		return 0, st
	}
	return r.handles.put(out), StatusSuccess
}

func (r *Reference) MM(sym Symbol, args MMArgs) Status {
	if st, ok := r.injected(ClassMM); ok {
		return st
	}
	e, st := r.entry(sym, ClassMM)
	if st != StatusSuccess {
		return st
	}
	m, ok := r.handles.get(args.A)
	if !ok || !r.accepts(e, m) || !validOp(args.Op) {
		return StatusInvalidValue
	}
	_, threads := r.config()
	return m.mm(args, threads)
}

func (r *Reference) MV(sym Symbol, args MVArgs) Status {
	if st, ok := r.injected(ClassMV); ok {
		return st
	}
	e, st := r.entry(sym, ClassMV)
	if st != StatusSuccess {
		return st
	}
	m, ok := r.handles.get(args.A)
	if !ok || !r.accepts(e, m) || !validOp(args.Op) {
		return StatusInvalidValue
	}
	return m.mv(args)
}

func validOp(op Operation) bool {
	return op == OpNonTranspose || op == OpTranspose || op == OpConjugateTranspose
}
