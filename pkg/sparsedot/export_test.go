package sparsedot

import (
	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// NewBridgeForTest builds a bridge over an explicit engine.
func NewBridgeForTest(eng backend.Engine, cfg InterfaceConfig, logger logging.Logger) (*Bridge, error) {
	return newBridge(eng, cfg, logger)
}

var (
	LoadInterfaceConfig = loadInterfaceConfig
	ProbeWidth          = probeWidth
	AllVariants         = variants
)
