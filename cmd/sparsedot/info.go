package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"
	"github.com/pbnjay/memory"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display engine and interface information.",
	Callback: func(_ context.Context, cmd string, args []string, s *session) error {
		cfg := s.bridge.Config()
		engine := s.bridge.Engine()
		threads := "default"
		if cfg.Threads > 0 {
			threads = fmt.Sprintf("%d", cfg.Threads)
		}

		rows := [][]string{
			{"bridge", sparsedot.BridgeVersion()},
			{"engine", engine.Name},
			{"engine version", engine.Version},
			{"index width", cfg.Width.String()},
			{"width source", string(cfg.Source)},
			{"threads", threads},
			{"variants", fmt.Sprintf("%d", len(s.bridge.Variants()))},
			{"handles", fmt.Sprintf("%d", s.bridge.Outstanding())},
			{"cpus", fmt.Sprintf("%d", runtime.NumCPU())},
			{"memory", humanize.IBytes(memory.TotalMemory())},
		}

		tui.Table(s.out, []string{"name", "value"}, rows)

		return nil
	},
}
