package wake

import (
	foxes "github.com/kyleniemeyer/foxes"
)

func init() {
	foxes.MustRegisterWake("Jensen_linear", func() foxes.WakeModel {
		return &Jensen{K: defaultK, Sup: WSLinear{}}
	})
	foxes.MustRegisterWake("Jensen_quadratic", func() foxes.WakeModel {
		return &Jensen{K: defaultK, Sup: WSQuadratic{}}
	})
}

// Jensen is the classic top-hat wake deficit: uniform inside a linearly
// expanding cone, zero outside. The deficit fraction dies off with the
// squared ratio of rotor to wake diameter.
type Jensen struct {
	K   float64 // wake growth, overridden per source by the K variable
	Sup foxes.Superposition
}

// Name implements Model.
func (w *Jensen) Name() string { return "Jensen" }

// Initialize implements Model.
func (w *Jensen) Initialize(a *foxes.Downwind) error {
	if w.K <= 0. {
		w.K = defaultK
	}
	if w.Sup == nil {
		w.Sup = WSLinear{}
	}
	return requireCT(a, w.Name())
}

// AffectsVar implements WakeModel.
func (w *Jensen) AffectsVar() string { return foxes.VarWS }

// Superposition implements WakeModel.
func (w *Jensen) Superposition() foxes.Superposition { return w.Sup }

// Delta implements WakeModel: the wind speed deficit fraction of source
// turbine src at point p.
func (w *Jensen) Delta(a *foxes.Downwind, fdata *foxes.Data, si, src int, p [3]float64) float64 {
	dx, r := downwindFrame(fdata, si, src, p)
	if dx <= 0. {
		return 0.
	}
	d := fdata.Get(foxes.VarD).At2(si, src)
	k := growthK(fdata, si, src, w.K)
	rw := d/2. + k*dx // wake radius
	if r > rw {
		return 0.
	}
	ai := induction(fdata.Get(foxes.VarCT).At2(si, src))
	f := d / (d + 2.*k*dx)
	return 2. * ai * f * f
}
