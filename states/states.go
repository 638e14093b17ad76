// Package states supplies the ambient wind conditions driving a farm
// evaluation: one entry per independent state (a historical measurement, a
// wind-rose bin, or a synthetic sample).
package states

import (
	"fmt"
	"time"
)

// States holds the ambient condition arrays, all addressed by state index.
type States struct {
	T   []time.Time // optional timestamps
	WS  []float64   // wind speed [m/s]
	WD  []float64   // wind direction, met. convention [deg]
	TI  []float64   // turbulence intensity [-]
	Rho []float64   // air density [kg/m³]
}

// Size returns the number of states.
func (s *States) Size() int { return len(s.WS) }

// Check verifies the arrays cover the same state count and hold physical
// values.
func (s *States) Check() error {
	n := len(s.WS)
	if len(s.WD) != n || len(s.TI) != n || len(s.Rho) != n {
		return fmt.Errorf(" states.Check: ragged arrays: WS %d, WD %d, TI %d, RHO %d", n, len(s.WD), len(s.TI), len(s.Rho))
	}
	if s.T != nil && len(s.T) != n {
		return fmt.Errorf(" states.Check: %d timestamps for %d states", len(s.T), n)
	}
	for i := 0; i < n; i++ {
		if s.WS[i] < 0. || s.TI[i] < 0. || s.Rho[i] <= 0. {
			return fmt.Errorf(" states.Check: state %d unphysical: ws %f, ti %f, rho %f", i, s.WS[i], s.TI[i], s.Rho[i])
		}
	}
	return nil
}

// Single returns a one-state set, the minimal driver of a farm evaluation.
func Single(ws, wd, ti, rho float64) *States {
	return &States{WS: []float64{ws}, WD: []float64{wd}, TI: []float64{ti}, Rho: []float64{rho}}
}

// ScanWD returns n states sweeping the full wind rose at fixed speed,
// turbulence and density.
func ScanWD(n int, ws, ti, rho float64) *States {
	s := &States{
		WS:  make([]float64, n),
		WD:  make([]float64, n),
		TI:  make([]float64, n),
		Rho: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.WS[i] = ws
		s.WD[i] = 360. * float64(i) / float64(n)
		s.TI[i] = ti
		s.Rho[i] = rho
	}
	return s
}
