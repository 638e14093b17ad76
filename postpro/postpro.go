// Package postpro summarizes and validates wake simulation results.
package postpro

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	foxes "github.com/kyleniemeyer/foxes"
)

// Summary holds farm-level production metrics for one simulation.
type Summary struct {
	MeanPower      float64 // mean farm power [kW]
	Efficiency     float64 // farm power over ambient farm power
	CapacityFactor float64 // mean power over rated farm power
	Yield          float64 // annual energy production [GWh/yr]
}

// Summarize reduces results to farm-level metrics. ratedP is the rated
// power of a single turbine [kW]; pass zero to skip the capacity factor.
func Summarize(r *foxes.Results, ratedP float64) (*Summary, error) {
	if !r.Has(foxes.VarP) {
		return nil, fmt.Errorf(" postpro.Summarize: results carry no %s", foxes.VarP)
	}
	s := &Summary{MeanPower: r.MeanFarmPower()}
	if r.Has(foxes.VarAmbP) {
		eff, err := r.Efficiency()
		if err != nil {
			return nil, err
		}
		s.Efficiency = eff
	}
	if ratedP > 0. {
		s.CapacityFactor = s.MeanPower / (ratedP * float64(r.NCols))
	}
	s.Yield = s.MeanPower * 8760. / 1e6
	return s, nil
}

// TurbineMeans returns the per-turbine time average of a result variable.
func TurbineMeans(r *foxes.Results, v string) ([]float64, error) {
	if !r.Has(v) {
		return nil, fmt.Errorf(" postpro.TurbineMeans: results carry no %s", v)
	}
	m := make([]float64, r.NCols)
	for ti := 0; ti < r.NCols; ti++ {
		m[ti] = floats.Sum(r.Col(v, ti)) / float64(r.NStates)
	}
	return m, nil
}

func (s *Summary) Print() {
	fmt.Printf("  mean farm power:  %.1f kW\n", s.MeanPower)
	if s.Efficiency > 0. {
		fmt.Printf("  farm efficiency:  %.3f\n", s.Efficiency)
	}
	if s.CapacityFactor > 0. {
		fmt.Printf("  capacity factor:  %.3f\n", s.CapacityFactor)
	}
	fmt.Printf("  annual yield:     %.2f GWh\n", s.Yield)
}
