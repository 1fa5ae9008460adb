// Package internalcheck holds static policy tests over the sparsedot
// packages.
//
// # Internal Use Only
//
// The package has no API. Its tests load the module's packages with
// golang.org/x/tools/go/packages and fail on code that links the engine
// outside the backend, prints instead of logging, or exposes backend types
// through the public API.
package internalcheck
