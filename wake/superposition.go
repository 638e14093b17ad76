// Package wake provides wake deficit models and the superposition rules
// folding multiple upstream contributions into one perturbation.
package wake

import "math"

// WSLinear sums wind speed deficit fractions.
type WSLinear struct{}

// Name implements Superposition.
func (WSLinear) Name() string { return "ws_linear" }

// Add implements Superposition.
func (WSLinear) Add(acc, delta float64) float64 { return acc + delta }

// Finalize implements Superposition.
func (WSLinear) Finalize(ambient, acc float64) float64 {
	if acc > 1. {
		acc = 1.
	}
	return ambient * (1. - acc)
}

// WSQuadratic sums squared wind speed deficit fractions, resolving to the
// root of the sum.
type WSQuadratic struct{}

// Name implements Superposition.
func (WSQuadratic) Name() string { return "ws_quadratic" }

// Add implements Superposition.
func (WSQuadratic) Add(acc, delta float64) float64 { return acc + delta*delta }

// Finalize implements Superposition.
func (WSQuadratic) Finalize(ambient, acc float64) float64 {
	d := math.Sqrt(acc)
	if d > 1. {
		d = 1.
	}
	return ambient * (1. - d)
}

// TILinear sums added turbulence intensities.
type TILinear struct{}

// Name implements Superposition.
func (TILinear) Name() string { return "ti_linear" }

// Add implements Superposition.
func (TILinear) Add(acc, delta float64) float64 { return acc + delta }

// Finalize implements Superposition.
func (TILinear) Finalize(ambient, acc float64) float64 { return ambient + acc }

// TIMax keeps the single strongest added turbulence intensity.
type TIMax struct{}

// Name implements Superposition.
func (TIMax) Name() string { return "ti_max" }

// Add implements Superposition.
func (TIMax) Add(acc, delta float64) float64 { return math.Max(acc, delta) }

// Finalize implements Superposition.
func (TIMax) Finalize(ambient, acc float64) float64 { return ambient + acc }
