package sparsedot

import (
	"math/rand/v2"
	"slices"

	"github.com/projekter/sparse-dot/pkg/sparsedot/internal/backend"
)

const (
	probeSize    = 5
	probeSeed    = 50
	probeDensity = 0.5
)

// probeWidth selects w on eng and checks that a small matrix survives a
// create, convert and export round trip unchanged.
func probeWidth(eng backend.Engine, w IndexWidth) bool {
	if eng.SetInterfaceLayer(backend.Width(w)) != backend.StatusSuccess {
		return false
	}
	if w == Wide {
		return probeRoundTrip[int64](eng)
	}
	return probeRoundTrip[int32](eng)
}

func probeRoundTrip[I Index](eng backend.Engine) bool {
	width := backend.Width(widthOf[I]())
	create, okC := backend.Find(backend.ClassCreate, backend.Float32, width, backend.CSC)
	export, okE := backend.Find(backend.ClassExport, backend.Float32, width, backend.CSR)
	convert, okV := backend.Find(backend.ClassConvert, backend.DTypeAny, backend.WidthAny, backend.FormatAny)
	destroy, okD := backend.Find(backend.ClassDestroy, backend.DTypeAny, backend.WidthAny, backend.FormatAny)
	if !okC || !okE || !okV || !okD {
		return false
	}
	for _, sym := range []backend.Symbol{create, export, convert, destroy} {
		if !eng.Resolve(sym) {
			return false
		}
	}

	rng := rand.New(rand.NewPCG(probeSeed, probeSeed))
	want := make([]float32, probeSize*probeSize)
	var values []float32
	var indices []I
	offsets := []I{0}
	for c := 0; c < probeSize; c++ {
		for r := 0; r < probeSize; r++ {
			if rng.Float64() < probeDensity {
				v := rng.Float32() + 1
				want[r*probeSize+c] = v
				values = append(values, v)
				indices = append(indices, I(r))
			}
		}
		offsets = append(offsets, I(len(indices)))
	}

	h, st := eng.Create(create, backend.Matrix{
		Format:  backend.CSC,
		Rows:    probeSize,
		Cols:    probeSize,
		Values:  values,
		Indices: indices,
		Offsets: offsets,
	})
	if st != backend.StatusSuccess {
		return false
	}
	defer eng.Destroy(h)
	csr, st := eng.Convert(convert, h, backend.OpNonTranspose)
	if st != backend.StatusSuccess {
		return false
	}
	defer eng.Destroy(csr)
	m, st := eng.Export(export, csr)
	if st != backend.StatusSuccess {
		return false
	}

	vals, okV := m.Values.([]float32)
	idx, okI := m.Indices.([]I)
	off, okO := m.Offsets.([]I)
	if !okV || !okI || !okO || len(off) != probeSize+1 || m.Rows != probeSize || m.Cols != probeSize {
		return false
	}
	got := make([]float32, probeSize*probeSize)
	for r := 0; r < probeSize; r++ {
		if off[r] < 0 || off[r] > off[r+1] || int(off[r+1]) > len(idx) || len(vals) < len(idx) {
			return false
		}
		for p := off[r]; p < off[r+1]; p++ {
			if idx[p] < 0 || int(idx[p]) >= probeSize {
				return false
			}
			got[r*probeSize+int(idx[p])] += vals[p]
		}
	}
	return slices.Equal(got, want)
}
