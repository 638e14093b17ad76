// Package opt wraps the wake engine in a farm layout optimization: turbine
// positions within a rectangular boundary, objective mean farm power.
package opt

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	foxes "github.com/kyleniemeyer/foxes"
	"github.com/kyleniemeyer/foxes/farm"
)

// Layout is one optimization problem. NewAlgo must return a fresh
// algorithm for a candidate layout; evaluations run concurrently and share
// nothing.
type Layout struct {
	Base    *farm.Farm
	NewAlgo func(frm *farm.Farm) *foxes.Downwind

	Xmin, Xmax float64
	Ymin, Ymax float64
	MinDist    float64 // minimum turbine spacing [m]
}

// place maps a unit-hypercube sample to a candidate layout.
func (l *Layout) place(u []float64) *farm.Farm {
	frm := &farm.Farm{Name: l.Base.Name, Turbines: append([]farm.Turbine{}, l.Base.Turbines...)}
	for i := range frm.Turbines {
		frm.Turbines[i].X = l.Xmin + (l.Xmax-l.Xmin)*u[2*i]
		frm.Turbines[i].Y = l.Ymin + (l.Ymax-l.Ymin)*u[2*i+1]
	}
	return frm
}

// penalty grows with every spacing violation, steeply enough to dominate
// any power gain.
func (l *Layout) penalty(frm *farm.Farm) float64 {
	if l.MinDist <= 0. {
		return 0.
	}
	p := 0.
	for i := 0; i < frm.Size(); i++ {
		for j := i + 1; j < frm.Size(); j++ {
			d := math.Hypot(frm.Turbines[i].X-frm.Turbines[j].X, frm.Turbines[i].Y-frm.Turbines[j].Y)
			if d < l.MinDist {
				p += 1e6 * (l.MinDist - d)
			}
		}
	}
	return p
}

// Optimize searches turbine positions maximizing mean farm power, with the
// shuffled complex evolution solver, or the RBF surrogate when sce is
// false. Returns the best layout and its mean farm power [kW].
func (l *Layout) Optimize(sce bool) (*farm.Farm, float64, error) {
	if l.Base == nil || l.Base.Size() == 0 {
		return nil, 0., fmt.Errorf(" opt.Layout: empty base farm")
	}
	if l.NewAlgo == nil {
		return nil, 0., fmt.Errorf(" opt.Layout: no algorithm factory")
	}
	nDim := 2 * l.Base.Size()

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		frm := l.place(u)
		res, err := l.NewAlgo(frm).CalcSerial()
		if err != nil {
			return math.MaxFloat64
		}
		return -res.MeanFarmPower() + l.penalty(frm)
	}

	var uFinal []float64
	if sce {
		uFinal, _ = glbopt.SCE(runtime.GOMAXPROCS(0), nDim, rng, gen, true)
	} else {
		uFinal, _ = glbopt.SurrogateRBF(500, nDim, rng, func(u []float64, i int) float64 { return gen(u) })
	}

	best := l.place(uFinal)
	res, err := l.NewAlgo(best).CalcSerial()
	if err != nil {
		return nil, 0., err
	}
	return best, res.MeanFarmPower(), nil
}
