package states

import (
	"math/rand"

	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Sample draws n synthetic ambient states from a Latin hypercube over wind
// speed [wsMin,wsMax], the full wind rose and turbulence intensity
// [tiMin,tiMax], at fixed air density.
func Sample(n int, seed int64, wsMin, wsMax, tiMin, tiMax, rho float64) *States {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)

	const p = 3 // ws, wd, ti
	sp := smpln.NewLHC(rng, n, p, false)

	s := &States{
		WS:  make([]float64, n),
		WD:  make([]float64, n),
		TI:  make([]float64, n),
		Rho: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		s.WS[k] = wsMin + (wsMax-wsMin)*sp.U[0][k]
		s.WD[k] = 360. * sp.U[1][k]
		s.TI[k] = tiMin + (tiMax-tiMin)*sp.U[2][k]
		s.Rho[k] = rho
	}
	return s
}
