//go:build !mkl || !cgo

package backend

import "sync"

var (
	defaultOnce   sync.Once
	defaultEngine Engine
)

// Default returns the process-wide engine. Without the mkl build tag this is
// a reference engine.
func Default() Engine {
	defaultOnce.Do(func() { defaultEngine = NewReference() })
	return defaultEngine
}
