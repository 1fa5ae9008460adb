package sparsedot

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// Environment variables read by Interface.
const (
	// EnvInterfaceLayer selects the index width: LP64 (32-bit) or ILP64
	// (64-bit). When unset or invalid the width is probed.
	EnvInterfaceLayer = "MKL_INTERFACE_LAYER"
	// EnvNumThreads bounds the engine's kernel threads.
	EnvNumThreads = "MKL_NUM_THREADS"
)

// ConfigSource records where the active index width came from.
type ConfigSource string

const (
	SourceEnv   ConfigSource = "env"
	SourceProbe ConfigSource = "probe"
)

// InterfaceConfig is the process-wide engine interface. It is read once and
// never changes afterwards.
type InterfaceConfig struct {
	Width IndexWidth
	// Threads is zero when the engine default applies.
	Threads int
	Source  ConfigSource
}

var (
	ifaceOnce sync.Once
	ifaceCfg  InterfaceConfig
	ifaceErr  error
)

// Interface returns the process-wide interface configuration, reading the
// environment and configuring the default engine on first use. Concurrent
// first calls all observe the same result.
func Interface() (InterfaceConfig, error) {
	ifaceOnce.Do(func() {
		eng := backend.Default()
		logger := logging.New(nil)
		probe := func(w IndexWidth) bool { return probeWidth(eng, w) }
		ifaceCfg, ifaceErr = loadInterfaceConfig(os.LookupEnv, probe, logger)
		if ifaceErr == nil {
			ifaceErr = applyInterface(eng, ifaceCfg)
		}
	})
	return ifaceCfg, ifaceErr
}

func applyInterface(eng backend.Engine, cfg InterfaceConfig) error {
	if st := eng.SetInterfaceLayer(backend.Width(cfg.Width)); st != backend.StatusSuccess {
		e := newError(ErrEngineNotInitialized, "configure", "interface layer %s", cfg.Width)
		e.Status, e.StatusText = int(st), st.String()
		return e
	}
	eng.SetThreads(cfg.Threads)
	return nil
}

// loadInterfaceConfig derives the configuration from lookup, validating the
// chosen width with probe.
func loadInterfaceConfig(lookup func(string) (string, bool), probe func(IndexWidth) bool, logger logging.Logger) (InterfaceConfig, error) {
	ctx := context.Background()
	var cfg InterfaceConfig

	if raw, ok := lookup(EnvNumThreads); ok && strings.TrimSpace(raw) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			logger.Warn(ctx, "ignoring invalid thread count", "env", EnvNumThreads, "value", raw)
		} else {
			cfg.Threads = n
		}
	}

	raw, _ := lookup(EnvInterfaceLayer)
	switch layer := strings.ToUpper(strings.TrimSpace(raw)); layer {
	case "ILP64":
		cfg.Source = SourceEnv
		if probe(Wide) {
			cfg.Width = Wide
			return cfg, nil
		}
		logger.Warn(ctx, "ILP64 interface failed validation, falling back to LP64", "env", EnvInterfaceLayer)
		cfg.Source = SourceProbe
		if probe(Narrow) {
			cfg.Width = Narrow
			return cfg, nil
		}
	case "LP64":
		cfg.Source = SourceEnv
		if probe(Narrow) {
			cfg.Width = Narrow
			return cfg, nil
		}
	default:
		if layer != "" {
			logger.Warn(ctx, "ignoring invalid interface layer", "env", EnvInterfaceLayer, "value", raw)
		}
		cfg.Source = SourceProbe
		for _, w := range []IndexWidth{Wide, Narrow} {
			if probe(w) {
				cfg.Width = w
				return cfg, nil
			}
		}
	}
	return InterfaceConfig{}, newError(ErrEngineNotInitialized, "configure", "no index width passed validation")
}
