package sparsedot

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

// Bridge executes operations on one native engine under one interface
// configuration. It is safe for concurrent use.
type Bridge struct {
	engine backend.Engine
	cfg    InterfaceConfig
	logger logging.Logger
	table  *dispatchTable

	outstanding atomic.Int64
}

// Option configures New.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger routes the bridge's records to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns a bridge over the default engine using the process-wide
// interface configuration.
func New(opts ...Option) (*Bridge, error) {
	o := options{logger: logging.New(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	cfg, err := Interface()
	if err != nil {
		return nil, err
	}
	return newBridge(backend.Default(), cfg, o.logger)
}

func newBridge(eng backend.Engine, cfg InterfaceConfig, logger logging.Logger) (*Bridge, error) {
	if err := applyInterface(eng, cfg); err != nil {
		return nil, err
	}
	logger = logger.With("engine", eng.Name())
	b := &Bridge{
		engine: eng,
		cfg:    cfg,
		logger: logger,
		table:  newDispatchTable(context.Background(), eng, logger),
	}
	return b, nil
}

var (
	defaultOnce   sync.Once
	defaultBridge *Bridge
	defaultErr    error
)

// Default returns a process-wide bridge created with New on first use.
func Default() (*Bridge, error) {
	defaultOnce.Do(func() { defaultBridge, defaultErr = New() })
	return defaultBridge, defaultErr
}

// Config returns the interface configuration the bridge dispatches under.
func (b *Bridge) Config() InterfaceConfig { return b.cfg }

// Outstanding returns the number of native handles the bridge currently
// holds, including retained ones.
func (b *Bridge) Outstanding() int { return int(b.outstanding.Load()) }

// EngineInfo names the native engine behind a bridge.
type EngineInfo struct {
	Name    string
	Version string
}

// Engine describes the native engine.
func (b *Bridge) Engine() EngineInfo {
	return EngineInfo{Name: b.engine.Name(), Version: b.engine.Version()}
}

// Variants returns the dispatch table rows available on this bridge's
// engine.
func (b *Bridge) Variants() []Variant {
	return append([]Variant(nil), b.table.rows...)
}
