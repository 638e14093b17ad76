package wake

import (
	"fmt"
	"math"

	foxes "github.com/kyleniemeyer/foxes"
)

// defaultK is the wake growth parameter used when no turbine model supplies
// one through the K variable.
const defaultK = 0.05

// downwindFrame transforms point p into the wake frame of source turbine
// src in state si: dx downwind of the source rotor, r radial off the wake
// centreline. dx <= 0 means at or upstream of the source.
func downwindFrame(fdata *foxes.Data, si, src int, p [3]float64) (dx, r float64) {
	txyh := fdata.Get(foxes.VarTXYH)
	hx, hy, hz := txyh.At3(si, src, 0), txyh.At3(si, src, 1), txyh.At3(si, src, 2)

	wdr := fdata.Get(foxes.VarWD).At2(si, src) * math.Pi / 180.
	ux, uy := -math.Sin(wdr), -math.Cos(wdr)

	vx, vy, vz := p[0]-hx, p[1]-hy, p[2]-hz
	dx = vx*ux + vy*uy
	cw := -vx*uy + vy*ux
	return dx, math.Hypot(cw, vz)
}

// growthK returns the wake growth parameter of a source turbine, from the
// K farm variable when a turbine model provides it.
func growthK(fdata *foxes.Data, si, src int, fallback float64) float64 {
	if f := fdata.Get(foxes.VarK); f != nil {
		return f.At2(si, src)
	}
	return fallback
}

// requireCT verifies some controller model supplies the thrust coefficient
// a wake deficit depends on; a missing supplier is a configuration error.
func requireCT(a *foxes.Downwind, model string) error {
	if a.Controller != nil {
		for _, v := range a.Controller.OutputFarmVars(a) {
			if v == foxes.VarCT {
				return nil
			}
		}
	}
	return fmt.Errorf(" wake.%s: no controller model supplies %s", model, foxes.VarCT)
}

// induction returns the axial induction factor from a thrust coefficient.
func induction(ct float64) float64 {
	if ct <= 0. {
		return 0.
	}
	if ct > 0.9999 {
		ct = 0.9999
	}
	return 0.5 * (1. - math.Sqrt(1.-ct))
}
