//go:build mkl && cgo

package backend

import "sync"

var (
	defaultOnce   sync.Once
	defaultEngine Engine
)

// Default returns the process-wide oneMKL engine.
func Default() Engine {
	defaultOnce.Do(func() { defaultEngine = NewMKL() })
	return defaultEngine
}
