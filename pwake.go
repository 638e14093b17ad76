package foxes

import "fmt"

// RotorPoints is the default partial-wake evaluator: wake perturbations are
// sampled at the active rotor model's points, so the exposed fraction of a
// partially-waked rotor disk emerges from how many points the wake covers.
// Its accumulator holds one slot per (state, turbine, rotor point).
type RotorPoints struct {
	np int
}

// Name implements Model.
func (p *RotorPoints) Name() string { return "rotor_points" }

// Initialize implements Model.
func (p *RotorPoints) Initialize(a *Downwind) error {
	p.np = a.Rotor.NPoints()
	if p.np < 1 {
		return fmt.Errorf(" foxes.RotorPoints: rotor model '%s' exposes no points", a.Rotor.Name())
	}
	return nil
}

// NewWakeDeltas allocates a zeroed accumulator with one array per
// wake-affected variable, shaped (state, turbine, rotor point).
func (p *RotorPoints) NewWakeDeltas(a *Downwind, mdata, fdata *Data) WakeDeltas {
	ns, nt := fdata.NStates(), fdata.NTurbines()
	wdel := make(WakeDeltas)
	for _, wm := range a.Wakes {
		if _, ok := wdel[wm.AffectsVar()]; !ok {
			wdel[wm.AffectsVar()] = make([]float64, ns*nt*p.np)
		}
	}
	return wdel
}

// Contribute folds the wakes of the rank-oi turbines onto the rotor points
// of every strictly-downstream turbine. Upstream and lateral targets
// receive zero by the wake models' own cutoff.
func (p *RotorPoints) Contribute(a *Downwind, mdata, fdata *Data, oi int, torder [][]int, wdel WakeDeltas) error {
	ns, nt := fdata.NStates(), fdata.NTurbines()
	for s := 0; s < ns; s++ {
		src := torder[s][oi]
		for ri := oi + 1; ri < nt; ri++ {
			trg := torder[s][ri]
			pts, _ := a.Rotor.RotorPoints(fdata, s, trg)
			for _, wm := range a.Wakes {
				acc, sup := wdel[wm.AffectsVar()], wm.Superposition()
				i0 := (s*nt + trg) * p.np
				for k, pt := range pts {
					d := wm.Delta(a, fdata, s, src, pt)
					acc[i0+k] = sup.Add(acc[i0+k], d)
				}
			}
		}
	}
	return nil
}

// Apply resolves accumulated point deltas for the turbines o (one identity
// per state) into waked rotor-effective values, overwriting their farm-data
// cells. The accumulator is read, not cleared: contributions only ever
// target strictly-downstream ranks, so re-reads cannot occur.
func (p *RotorPoints) Apply(a *Downwind, mdata, fdata *Data, wdel WakeDeltas, o []int) error {
	nt := fdata.NTurbines()
	for _, v := range wdel.vars() {
		sup := a.superposition(v)
		if sup == nil {
			return fmt.Errorf(" foxes.RotorPoints: no superposition bound to variable '%s'", v)
		}
		amb, tf := fdata.Get(AmbVar(v)), fdata.Get(v)
		if amb == nil || tf == nil {
			return fmt.Errorf(" foxes.RotorPoints: farm data '%s' lacks %s or %s", fdata.Name, AmbVar(v), v)
		}
		acc := wdel[v]
		for s, trg := range o {
			_, wts := a.Rotor.RotorPoints(fdata, s, trg)
			i0 := (s*nt + trg) * p.np
			a0 := amb.At2(s, trg)
			wv := 0.
			for k, w := range wts {
				wv += w * sup.Finalize(a0, acc[i0+k])
			}
			tf.Set2(s, trg, wv)
			if v == VarWS {
				fdata.Get(VarREWS).Set2(s, trg, wv)
			}
		}
	}
	return nil
}
