package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

var demoHandler = handler{
	Name:        "DEMO",
	Mnemonic:    "DEMO",
	Completer:   readline.PcItem("demo"),
	Description: "Multiply diag(1, 2, 3) by a 3×2 matrix of ones.",
	Callback: func(ctx context.Context, cmd string, args []string, s *session) error {
		a, err := diagonal(s.bridge.Config().Width, []float64{1, 2, 3})
		if err != nil {
			return err
		}
		ones, err := sparsedot.NewDense(3, 2, sparsedot.RowMajor, []float64{1, 1, 1, 1, 1, 1})
		if err != nil {
			return err
		}

		res, err := s.bridge.Execute(ctx, sparsedot.Request{Kind: sparsedot.SparseDense, A: a, Dense: ones})
		if err != nil {
			return err
		}

		rows := [][]string{}
		for i := 0; i < res.Dense.Rows(); i++ {
			row := []string{strconv.Itoa(i)}
			for j := 0; j < res.Dense.Cols(); j++ {
				row = append(row, fmt.Sprintf("%g", real(res.Dense.At(i, j))))
			}
			rows = append(rows, row)
		}

		tui.Table(s.out, []string{"row", "c0", "c1"}, rows)

		return nil
	},
}

// diagonal builds a row-compressed diagonal matrix with indices of the
// active width.
func diagonal(w sparsedot.IndexWidth, d []float64) (*sparsedot.Descriptor, error) {
	n := len(d)
	if w == sparsedot.Wide {
		idx, off := make([]int64, n), make([]int64, n+1)
		for i := range idx {
			idx[i], off[i+1] = int64(i), int64(i+1)
		}
		return sparsedot.NewCSR(n, n, d, idx, off)
	}
	idx, off := make([]int32, n), make([]int32, n+1)
	for i := range idx {
		idx[i], off[i+1] = int32(i), int32(i+1)
	}
	return sparsedot.NewCSR(n, n, d, idx, off)
}
