package sparsedot

import "github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// BridgeVersion returns the semantic version of this module.
func BridgeVersion() string {
	return Version
}

// EngineVersion returns the version string reported by the default engine.
func EngineVersion() string {
	return backend.Default().Version()
}
