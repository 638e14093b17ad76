// Package rotor provides rotor models: policies for sampling the inflow
// across a rotor disk and averaging it to rotor-effective quantities.
package rotor

import (
	"math"

	foxes "github.com/kyleniemeyer/foxes"
)

func init() {
	foxes.MustRegisterRotor("centre", func() foxes.RotorModel { return &Centre{} })
	foxes.MustRegisterRotor("grid4", func() foxes.RotorModel { return NewGrid(2) })
	foxes.MustRegisterRotor("grid9", func() foxes.RotorModel { return NewGrid(3) })
	foxes.MustRegisterRotor("grid16", func() foxes.RotorModel { return NewGrid(4) })
}

var outputVars = []string{
	foxes.VarWS, foxes.VarREWS, foxes.VarTI,
	foxes.VarAmbWS, foxes.VarAmbREWS, foxes.VarAmbTI,
}

// ambientCalc fills the rotor-effective inflow of every cell from the
// per-state ambient arrays; the undisturbed inflow is uniform across the
// disk, so every averaging policy resolves to the ambient value.
func ambientCalc(a *foxes.Downwind, mdata, fdata *foxes.Data) (map[string]*foxes.Field, error) {
	ns, nt := fdata.NStates(), fdata.NTurbines()
	ws := mdata.Get(foxes.VarWS)

	mk := func() *foxes.Field {
		return foxes.NewField(make([]float64, ns*nt), []string{foxes.DimState, foxes.DimTurbine}, []int{ns, nt})
	}
	rews, fws := mk(), mk()
	for s := 0; s < ns; s++ {
		for t := 0; t < nt; t++ {
			rews.Set2(s, t, ws.At(s))
			fws.Set2(s, t, ws.At(s))
		}
	}
	return map[string]*foxes.Field{foxes.VarWS: fws, foxes.VarREWS: rews}, nil
}

// frame returns the crosswind unit vector of a state, perpendicular to the
// downwind direction, for spanning the rotor plane.
func frame(fdata *foxes.Data, si int) (cx, cy float64) {
	wdr := fdata.Get(foxes.VarWD).At2(si, 0) * math.Pi / 180.
	ux, uy := -math.Sin(wdr), -math.Cos(wdr)
	return -uy, ux
}

// Centre evaluates the inflow at the hub point only: the cheapest rotor
// model, blind to partial wake coverage.
type Centre struct{}

// Name implements Model.
func (r *Centre) Name() string { return "centre" }

// Initialize implements Model.
func (r *Centre) Initialize(a *foxes.Downwind) error { return nil }

// OutputFarmVars implements RotorModel.
func (r *Centre) OutputFarmVars(a *foxes.Downwind) []string { return outputVars }

// NPoints implements RotorModel.
func (r *Centre) NPoints() int { return 1 }

// RotorPoints implements RotorModel.
func (r *Centre) RotorPoints(fdata *foxes.Data, si, ti int) ([][3]float64, []float64) {
	txyh := fdata.Get(foxes.VarTXYH)
	return [][3]float64{{txyh.At3(si, ti, 0), txyh.At3(si, ti, 1), txyh.At3(si, ti, 2)}}, []float64{1.}
}

// Calculate implements RotorModel.
func (r *Centre) Calculate(a *foxes.Downwind, mdata, fdata *foxes.Data) (map[string]*foxes.Field, error) {
	return ambientCalc(a, mdata, fdata)
}

// Grid samples an n × n square grid clipped to the rotor disk, every kept
// point weighted equally; partial wake coverage emerges from the covered
// point count.
type Grid struct {
	n int
	u [][2]float64 // unit offsets in the rotor plane, |u| <= 1
}

// NewGrid returns an n × n grid rotor.
func NewGrid(n int) *Grid {
	g := &Grid{n: n}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			// cell centres of the unit square [-1,1]²
			y := -1. + 2.*(float64(i)+.5)/float64(n)
			z := -1. + 2.*(float64(j)+.5)/float64(n)
			if y*y+z*z <= 1. {
				g.u = append(g.u, [2]float64{y, z})
			}
		}
	}
	return g
}

// Name implements Model.
func (r *Grid) Name() string { return "grid" }

// Initialize implements Model.
func (r *Grid) Initialize(a *foxes.Downwind) error { return nil }

// OutputFarmVars implements RotorModel.
func (r *Grid) OutputFarmVars(a *foxes.Downwind) []string { return outputVars }

// NPoints implements RotorModel.
func (r *Grid) NPoints() int { return len(r.u) }

// RotorPoints implements RotorModel.
func (r *Grid) RotorPoints(fdata *foxes.Data, si, ti int) ([][3]float64, []float64) {
	txyh, d := fdata.Get(foxes.VarTXYH), fdata.Get(foxes.VarD)
	hx, hy, hz := txyh.At3(si, ti, 0), txyh.At3(si, ti, 1), txyh.At3(si, ti, 2)
	rad := d.At2(si, ti) / 2.
	cx, cy := frame(fdata, si)

	pts := make([][3]float64, len(r.u))
	wts := make([]float64, len(r.u))
	w := 1. / float64(len(r.u))
	for k, u := range r.u {
		pts[k] = [3]float64{hx + cx*u[0]*rad, hy + cy*u[0]*rad, hz + u[1]*rad}
		wts[k] = w
	}
	return pts, wts
}

// Calculate implements RotorModel.
func (r *Grid) Calculate(a *foxes.Downwind, mdata, fdata *foxes.Data) (map[string]*foxes.Field, error) {
	return ambientCalc(a, mdata, fdata)
}
