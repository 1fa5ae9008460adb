// Package backend hosts the outbound boundary to the native sparse engine.
//
// Every native entry point is named by a Symbol listed in the static
// catalogue; engines resolve symbols against their own entry tables and report
// results as raw Status codes. Mapping those codes to errors is the caller's
// job. The oneMKL engine lives behind the mkl build tag so that the rest of the
// repository compiles without cgo; the pure-Go reference engine is always
// available and is the default otherwise.
package backend
