package wake

import (
	"math"

	foxes "github.com/kyleniemeyer/foxes"
)

func init() {
	foxes.MustRegisterWake("CrespoHernandez_max", func() foxes.WakeModel {
		return &CrespoHernandez{K: defaultK, Sup: TIMax{}}
	})
	foxes.MustRegisterWake("CrespoHernandez_linear", func() foxes.WakeModel {
		return &CrespoHernandez{K: defaultK, Sup: TILinear{}}
	})
}

// CrespoHernandez adds wake-generated turbulence downwind of a turbine,
// following the Crespo-Hernandez near/far wake correlation, top-hat shaped
// over the same expanding cone as the velocity deficit.
type CrespoHernandez struct {
	K   float64
	Sup foxes.Superposition

	// correlation constants and exponents
	A        float64
	ExpA     float64
	ExpTI    float64
	ExpX     float64
	NearDist float64 // validity cutoff in diameters
}

// Name implements Model.
func (w *CrespoHernandez) Name() string { return "CrespoHernandez" }

// Initialize implements Model.
func (w *CrespoHernandez) Initialize(a *foxes.Downwind) error {
	if w.K <= 0. {
		w.K = defaultK
	}
	if w.Sup == nil {
		w.Sup = TIMax{}
	}
	if w.A == 0. {
		w.A, w.ExpA, w.ExpTI, w.ExpX = 0.73, 0.8325, 0.0325, -0.32
	}
	if w.NearDist <= 0. {
		w.NearDist = 0.1
	}
	return requireCT(a, w.Name())
}

// AffectsVar implements WakeModel.
func (w *CrespoHernandez) AffectsVar() string { return foxes.VarTI }

// Superposition implements WakeModel.
func (w *CrespoHernandez) Superposition() foxes.Superposition { return w.Sup }

// Delta implements WakeModel: the turbulence intensity added by source
// turbine src at point p.
func (w *CrespoHernandez) Delta(a *foxes.Downwind, fdata *foxes.Data, si, src int, p [3]float64) float64 {
	dx, r := downwindFrame(fdata, si, src, p)
	d := fdata.Get(foxes.VarD).At2(si, src)
	if dx/d <= w.NearDist {
		return 0.
	}
	k := growthK(fdata, si, src, w.K)
	if r > d/2.+k*dx {
		return 0.
	}
	ai := induction(fdata.Get(foxes.VarCT).At2(si, src))
	if ai <= 0. {
		return 0.
	}
	ti0 := fdata.Get(foxes.VarAmbTI).At2(si, src)
	if ti0 <= 0. {
		ti0 = 1e-12
	}
	return w.A * math.Pow(ai, w.ExpA) * math.Pow(ti0, w.ExpTI) * math.Pow(dx/d, w.ExpX)
}
