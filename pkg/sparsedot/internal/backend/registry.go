package backend

import "sync"

// registry maps engine handles to Go-side matrices. Handles start at 1 so
// that the zero Handle never resolves.
type registry struct {
	mu    sync.Mutex
	next  Handle
	items map[Handle]matrix
}

func newRegistry() *registry {
	return &registry{next: 1, items: make(map[Handle]matrix)}
}

func (r *registry) put(m matrix) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.items[h] = m
	return h
}

func (r *registry) get(h Handle) (matrix, bool) {
	r.mu.Lock()
	m, ok := r.items[h]
	r.mu.Unlock()
	return m, ok
}

// del removes h and reports whether it was live.
func (r *registry) del(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[h]; !ok {
		return false
	}
	delete(r.items, h)
	return true
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
