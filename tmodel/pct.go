// Package tmodel provides turbine behavior models dispatched by the farm
// controller: power and thrust curves, wake growth parameters.
package tmodel

import (
	"fmt"
	"math"

	foxes "github.com/kyleniemeyer/foxes"
	"github.com/maseology/mmio"
)

func init() {
	foxes.MustRegisterTurbine("NREL5MW", func() foxes.TurbineModel { return NREL5MW() })
	foxes.MustRegisterTurbine("kTI_02", func() foxes.TurbineModel { return &KTI{KTI: 0.2} })
	foxes.MustRegisterTurbine("kTI_04", func() foxes.TurbineModel { return &KTI{KTI: 0.4} })
}

// PCtCurve resolves power and thrust coefficient from the rotor effective
// wind speed by linear interpolation of a turbine's P-ct curve.
type PCtCurve struct {
	Label     string
	WS, P, CT []float64 // curve samples, WS strictly ascending
	RhoRef    float64   // curve air density; 0 disables the correction
}

// FromCsv reads a P-ct curve of rows (ws, P, ct).
func FromCsv(fp string) (*PCtCurve, error) {
	dat, err := mmio.ReadCSV(fp, 1)
	if err != nil {
		return nil, fmt.Errorf(" tmodel.FromCsv: %v", err)
	}
	c := &PCtCurve{Label: mmio.FileName(fp, false), RhoRef: 1.225}
	for k, rec := range dat {
		if len(rec) < 3 {
			return nil, fmt.Errorf(" tmodel.FromCsv: row %d has %d columns, expecting (ws,P,ct)", k, len(rec))
		}
		c.WS = append(c.WS, rec[0])
		c.P = append(c.P, rec[1])
		c.CT = append(c.CT, rec[2])
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PCtCurve) check() error {
	if len(c.WS) < 2 || len(c.P) != len(c.WS) || len(c.CT) != len(c.WS) {
		return fmt.Errorf(" tmodel.PCtCurve '%s': ragged or empty curve", c.Label)
	}
	for i := 1; i < len(c.WS); i++ {
		if c.WS[i] <= c.WS[i-1] {
			return fmt.Errorf(" tmodel.PCtCurve '%s': wind speeds not ascending at sample %d", c.Label, i)
		}
	}
	return nil
}

// Name implements Model.
func (c *PCtCurve) Name() string { return "PCt_" + c.Label }

// Initialize implements Model.
func (c *PCtCurve) Initialize(a *foxes.Downwind) error { return c.check() }

// OutputFarmVars implements TurbineModel.
func (c *PCtCurve) OutputFarmVars(a *foxes.Downwind) []string {
	return []string{foxes.VarP, foxes.VarCT, foxes.VarAmbP, foxes.VarAmbCT}
}

// PreRotor implements TurbineModel.
func (c *PCtCurve) PreRotor() bool { return false }

// Calculate implements TurbineModel: power and thrust at the masked cells
// from the current rotor effective wind speed.
func (c *PCtCurve) Calculate(a *foxes.Downwind, mdata, fdata *foxes.Data, sel []bool) (map[string]*foxes.Field, error) {
	rews := fdata.Get(foxes.VarREWS)
	if rews == nil {
		return nil, fmt.Errorf(" tmodel.PCtCurve '%s': farm data '%s' lacks %s", c.Label, fdata.Name, foxes.VarREWS)
	}
	rho := fdata.Get(foxes.VarRho)
	ns, nt := fdata.NStates(), fdata.NTurbines()

	p := carryOver(fdata, foxes.VarP, ns, nt)
	ct := carryOver(fdata, foxes.VarCT, ns, nt)
	for s := 0; s < ns; s++ {
		for t := 0; t < nt; t++ {
			if !sel[s*nt+t] {
				continue
			}
			ws := rews.At2(s, t)
			if c.RhoRef > 0. && rho != nil {
				// density correction via the equivalent wind speed
				ws *= math.Cbrt(rho.At2(s, t) / c.RhoRef)
			}
			p.Set2(s, t, interp(c.WS, c.P, ws))
			ct.Set2(s, t, interp(c.WS, c.CT, ws))
		}
	}
	return map[string]*foxes.Field{foxes.VarP: p, foxes.VarCT: ct}, nil
}

// carryOver copies the current field so unmasked cells pass through
// untouched; absent fields start zeroed.
func carryOver(fdata *foxes.Data, v string, ns, nt int) *foxes.Field {
	if f := fdata.Get(v); f != nil {
		return f.Copy()
	}
	return foxes.NewField(make([]float64, ns*nt), []string{foxes.DimState, foxes.DimTurbine}, []int{ns, nt})
}

// interp linearly interpolates y(x) on ascending xs, clamping to zero
// below the first sample and holding the last value above the range.
func interp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x < xs[0] {
		return 0.
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := 1
	for xs[i] < x {
		i++
	}
	f := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + f*(ys[i]-ys[i-1])
}
