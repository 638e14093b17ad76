package foxes

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Results is the concatenated output of a full run: one
// (state, turbine) — or (state, point) — array per declared output
// variable.
type Results struct {
	Vars    []string
	NStates int
	NCols   int
	ColDim  string      // DimTurbine or DimPoint
	T       []time.Time // optional state timestamps
	D       map[string][]float64
}

// Has reports whether variable v is present in the results.
func (r *Results) Has(v string) bool {
	_, ok := r.D[v]
	return ok
}

func newResults(vars []string, ns, ncols int, colDim string) *Results {
	r := &Results{
		Vars:    append([]string{}, vars...),
		NStates: ns,
		NCols:   ncols,
		ColDim:  colDim,
		D:       make(map[string][]float64, len(vars)),
	}
	for _, v := range vars {
		r.D[v] = make([]float64, ns*ncols)
	}
	return r
}

// set copies one chunk's result fields into the full arrays at state
// offset s0. Chunks cover disjoint state ranges.
func (r *Results) set(out map[string]*Field, s0 int) {
	for _, v := range r.Vars {
		f, dst := out[v], r.D[v]
		nsc := f.Shape()[0]
		for s := 0; s < nsc; s++ {
			for t := 0; t < r.NCols; t++ {
				dst[(s0+s)*r.NCols+t] = f.At2(s, t)
			}
		}
	}
}

// At returns variable v at (state, column).
func (r *Results) At(v string, s, t int) float64 { return r.D[v][s*r.NCols+t] }

// Col returns one column (turbine or point) of a variable across states.
func (r *Results) Col(v string, t int) []float64 {
	o := make([]float64, r.NStates)
	for s := 0; s < r.NStates; s++ {
		o[s] = r.D[v][s*r.NCols+t]
	}
	return o
}

// FarmPower returns the total farm power of one state [kW].
func (r *Results) FarmPower(s int) float64 {
	return floats.Sum(r.D[VarP][s*r.NCols : (s+1)*r.NCols])
}

// FarmPowerSeries returns total farm power per state [kW].
func (r *Results) FarmPowerSeries() []float64 {
	o := make([]float64, r.NStates)
	for s := range o {
		o[s] = r.FarmPower(s)
	}
	return o
}

// MeanFarmPower returns farm power averaged over all states [kW].
func (r *Results) MeanFarmPower() float64 {
	return floats.Sum(r.D[VarP]) / float64(r.NStates)
}

// Efficiency returns total waked over total ambient farm power; 1 for a
// wake-free farm.
func (r *Results) Efficiency() (float64, error) {
	amb, ok := r.D[VarAmbP]
	if !ok {
		return 0., fmt.Errorf(" foxes.Results.Efficiency: results lack %s", VarAmbP)
	}
	pa := floats.Sum(amb)
	if pa <= 0. {
		return 0., fmt.Errorf(" foxes.Results.Efficiency: ambient farm power is zero")
	}
	return floats.Sum(r.D[VarP]) / pa, nil
}
