package main

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/solver"
)

var solveHandler = handler{
	Name:        "SOLVE",
	Mnemonic:    "SOLVE N",
	Completer:   readline.PcItem("solve"),
	Parser:      regexp.MustCompile(`^(?i)(SOLVE)\s+(\d+)$`),
	Description: "Solve a 1-D Poisson system of size N with restarted GMRES.",
	Callback: func(ctx context.Context, cmd string, args []string, s *session) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 2 {
			return fmt.Errorf("invalid size %q", args[0])
		}

		a, err := poisson(s.bridge.Config().Width, n)
		if err != nil {
			return err
		}
		m, err := s.bridge.Retain(a)
		if err != nil {
			return err
		}
		defer m.Close()

		b := make([]float64, n)
		for i := range b {
			b[i] = 1
		}
		res, err := solver.GMRES(ctx, solver.Retained(m), b, solver.WithTolerance(1e-8, 0), solver.WithMaxIter(50*n))
		if res == nil {
			return err
		}

		tui.Table(s.out, []string{"name", "value"}, [][]string{
			{"size", strconv.Itoa(n)},
			{"stored", humanize.Comma(int64(a.NNZ()))},
			{"iterations", strconv.Itoa(res.Iterations)},
			{"residual", fmt.Sprintf("%.3e", res.Residual)},
			{"converged", strconv.FormatBool(res.Converged)},
		})

		return err
	},
}

// poisson builds the n×n tridiagonal matrix tridiag(-1, 2, -1).
func poisson(w sparsedot.IndexWidth, n int) (*sparsedot.Descriptor, error) {
	var values []float64
	var cols []int
	rowEnd := []int{0}
	for i := 0; i < n; i++ {
		for _, j := range []int{i - 1, i, i + 1} {
			if j < 0 || j >= n {
				continue
			}
			v := -1.0
			if j == i {
				v = 2
			}
			values = append(values, v)
			cols = append(cols, j)
		}
		rowEnd = append(rowEnd, len(cols))
	}
	if w == sparsedot.Wide {
		return sparsedot.NewCSR(n, n, values, convert[int64](cols), convert[int64](rowEnd))
	}
	return sparsedot.NewCSR(n, n, values, convert[int32](cols), convert[int32](rowEnd))
}

func convert[I sparsedot.Index](xs []int) []I {
	out := make([]I, len(xs))
	for i, x := range xs {
		out[i] = I(x)
	}
	return out
}
