package main

import (
	"context"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

var kinds = []sparsedot.OpKind{
	sparsedot.SparseSparse,
	sparsedot.SparseDense,
	sparsedot.DenseSparse,
	sparsedot.SparseVector,
	sparsedot.Dot,
}

func kindItems() []readline.PrefixCompleterInterface {
	items := []readline.PrefixCompleterInterface{}
	for _, k := range kinds {
		items = append(items, readline.PcItem(k.String()))
	}
	return items
}

var variantsHandler = handler{
	Name:        "VARIANTS",
	Mnemonic:    "VARIANTS [KIND]",
	Completer:   readline.PcItem("variants", kindItems()...),
	Parser:      regexp.MustCompile(`^(?i)(VARIANTS)\s*([a-z-]*)$`),
	Description: "List the dispatch table, optionally for one operation kind.",
	Callback: func(_ context.Context, cmd string, args []string, s *session) error {
		filter := ""
		if len(args) > 0 {
			filter = strings.ToLower(args[0])
		}

		rows := [][]string{}
		for _, v := range s.bridge.Variants() {
			if filter != "" && v.Kind.String() != filter {
				continue
			}
			rows = append(rows, []string{
				v.Kind.String(),
				v.DType.String(),
				v.Width.String(),
				v.Format.String(),
				v.Routine,
				v.Ops.String(),
				v.OpsB.String(),
				v.Layouts.String(),
			})
		}

		tui.Table(s.out, []string{"kind", "dtype", "width", "format", "routine", "op(A)", "op(B)", "layouts"}, rows)

		return nil
	},
}
