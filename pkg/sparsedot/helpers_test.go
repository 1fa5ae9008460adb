package sparsedot_test

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

type record struct {
	level string
	msg   string
	args  []any
}

// recorder is a logging.Logger that keeps every record.
type recorder struct {
	mu      *sync.Mutex
	records *[]record
	with    []any
}

func newRecorder() *recorder { return &recorder{mu: new(sync.Mutex), records: new([]record)} }

func (r *recorder) log(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, record{level: level, msg: msg, args: append(append([]any{}, r.with...), args...)})
}

func (r *recorder) Debug(_ context.Context, msg string, args ...any) { r.log("debug", msg, args) }
func (r *recorder) Info(_ context.Context, msg string, args ...any)  { r.log("info", msg, args) }
func (r *recorder) Warn(_ context.Context, msg string, args ...any)  { r.log("warn", msg, args) }
func (r *recorder) Error(_ context.Context, msg string, args ...any) { r.log("error", msg, args) }

func (r *recorder) With(args ...any) logging.Logger {
	return &recorder{mu: r.mu, records: r.records, with: append(append([]any{}, r.with...), args...)}
}

func (r *recorder) find(level, msg string) []record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []record
	for _, rec := range *r.records {
		if rec.level == level && rec.msg == msg {
			out = append(out, rec)
		}
	}
	return out
}

// arg returns the value logged under key, either as a key/value pair or as
// an slog.Attr.
func (rec record) arg(key string) any {
	for i := 0; i < len(rec.args); i++ {
		switch a := rec.args[i].(type) {
		case slog.Attr:
			if a.Key == key {
				return a.Value.Any()
			}
		case string:
			if i+1 >= len(rec.args) {
				return nil
			}
			if a == key {
				return rec.args[i+1]
			}
			i++
		}
	}
	return nil
}

func narrowConfig() sparsedot.InterfaceConfig {
	return sparsedot.InterfaceConfig{Width: sparsedot.Narrow, Source: sparsedot.SourceEnv}
}

func wideConfig() sparsedot.InterfaceConfig {
	return sparsedot.InterfaceConfig{Width: sparsedot.Wide, Source: sparsedot.SourceEnv}
}

// newTestBridge returns a narrow bridge over a fresh reference engine.
func newTestBridge(t *testing.T, opts ...backend.ReferenceOption) (*sparsedot.Bridge, *backend.Reference, *recorder) {
	t.Helper()
	return newTestBridgeWidth(t, narrowConfig(), opts...)
}

func newTestBridgeWidth(t *testing.T, cfg sparsedot.InterfaceConfig, opts ...backend.ReferenceOption) (*sparsedot.Bridge, *backend.Reference, *recorder) {
	t.Helper()
	eng := backend.NewReference(opts...)
	rec := newRecorder()
	b, err := sparsedot.NewBridgeForTest(eng, cfg, rec)
	require.NoError(t, err)
	t.Cleanup(func() {
		if n := eng.Live(); n != 0 {
			t.Errorf("%d native handles leaked", n)
		}
	})
	return b, eng, rec
}

// identity3 is the 3×3 matrix diag(1, 2, 3).
func identity3(t *testing.T) *sparsedot.Descriptor {
	t.Helper()
	d, err := sparsedot.NewCSR(3, 3, []float64{1, 2, 3}, []int32{0, 1, 2}, []int32{0, 1, 2, 3})
	require.NoError(t, err)
	return d
}

func ones(rows, cols int, layout sparsedot.Layout) *sparsedot.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 1
	}
	d, err := sparsedot.NewDense(rows, cols, layout, data)
	if err != nil {
		panic(err)
	}
	return d
}

// randomSparse returns a random m×n float64 matrix in format together with
// its dense expansion. m and n must be positive.
func randomSparse(t *testing.T, rng *rand.Rand, format sparsedot.Format, m, n int, density float64) (*sparsedot.Descriptor, *mat.Dense) {
	t.Helper()
	ref := mat.NewDense(m, n, nil)
	outer, inner := m, n
	if format == sparsedot.CSC {
		outer, inner = n, m
	}
	var values []float64
	var indices []int32
	offsets := []int32{0}
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.IntN(9) + 1)
			values = append(values, v)
			indices = append(indices, int32(i))
			if format == sparsedot.CSC {
				ref.Set(i, o, v)
			} else {
				ref.Set(o, i, v)
			}
		}
		offsets = append(offsets, int32(len(indices)))
	}
	d, err := sparsedot.Build(sparsedot.Spec{Format: format, Rows: m, Cols: n, Values: values, Indices: indices, Offsets: offsets})
	require.NoError(t, err)
	return d, ref
}

func requireDenseEqual(t *testing.T, want mat.Matrix, got *sparsedot.Dense) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows(), "rows")
	require.Equal(t, c, got.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), real(got.At(i, j)), 1e-9, fmt.Sprintf("(%d,%d)", i, j))
		}
	}
}
