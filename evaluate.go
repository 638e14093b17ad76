package foxes

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// buildChunk materializes the chunk [s0,s1) of the state dimension as plain
// arrays: model data carrying the raw per-state ambient arrays, and farm
// data carrying the state × turbine layout, ambient broadcasts and the wake
// ORDER permutation.
func (a *Downwind) buildChunk(s0, s1 int) (mdata, fdata *Data, err error) {
	ns, nt := s1-s0, a.Farm.Size()
	sts := a.States

	mdata, err = NewData(fmt.Sprintf("mdata_%d", s0),
		map[string]Raw{
			VarWS:  {Vals: sts.WS[s0:s1], Shape: []int{ns}},
			VarWD:  {Vals: sts.WD[s0:s1], Shape: []int{ns}},
			VarTI:  {Vals: sts.TI[s0:s1], Shape: []int{ns}},
			VarRho: {Vals: sts.Rho[s0:s1], Shape: []int{ns}},
		},
		map[string][]string{
			VarWS: {DimState}, VarWD: {DimState}, VarTI: {DimState}, VarRho: {DimState},
		},
		[]string{DimState})
	if err != nil {
		return nil, nil, err
	}

	bcast := func(get func(s, t int) float64) Raw {
		vals := make([]float64, ns*nt)
		for s := 0; s < ns; s++ {
			for t := 0; t < nt; t++ {
				vals[s*nt+t] = get(s, t)
			}
		}
		return Raw{Vals: vals, Shape: []int{ns, nt}}
	}
	st := []string{DimState, DimTurbine}

	fdata, err = NewData(fmt.Sprintf("fdata_%d", s0),
		map[string]Raw{
			VarX:   bcast(func(s, t int) float64 { return a.Farm.Turbines[t].X }),
			VarY:   bcast(func(s, t int) float64 { return a.Farm.Turbines[t].Y }),
			VarH:   bcast(func(s, t int) float64 { return a.Farm.Turbines[t].H }),
			VarD:   bcast(func(s, t int) float64 { return a.Farm.Turbines[t].D }),
			VarWD:  bcast(func(s, t int) float64 { return sts.WD[s0+s] }),
			VarTI:  bcast(func(s, t int) float64 { return sts.TI[s0+s] }),
			VarRho: bcast(func(s, t int) float64 { return sts.Rho[s0+s] }),
		},
		map[string][]string{
			VarX: st, VarY: st, VarH: st, VarD: st, VarWD: st, VarTI: st, VarRho: st,
		},
		[]string{DimState})
	if err != nil {
		return nil, nil, err
	}

	order, err := CalcOrder(fdata)
	if err != nil {
		return nil, nil, err
	}
	if err := fdata.Add(VarOrder, order); err != nil {
		return nil, nil, err
	}
	return mdata, fdata, nil
}

// calcChunk evaluates one chunk to completion: ambient pass, then the
// wake-propagation loop. A chunk either fully completes or fails atomically.
func (a *Downwind) calcChunk(s0, s1 int) (map[string]*Field, error) {
	mdata, fdata, err := a.buildChunk(s0, s1)
	if err != nil {
		return nil, err
	}
	if err := calcAmbient(a, mdata, fdata); err != nil {
		return nil, err
	}
	fw := &FarmWakesCalc{}
	return fw.Calculate(a, mdata, fdata)
}

// chunks partitions the state dimension by ChunkSize.
func (a *Downwind) chunks() [][2]int {
	ns := a.States.Size()
	var cc [][2]int
	for s0 := 0; s0 < ns; s0 += a.ChunkSize {
		s1 := s0 + a.ChunkSize
		if s1 > ns {
			s1 = ns
		}
		cc = append(cc, [2]int{s0, s1})
	}
	return cc
}

// CalcSerial evaluates all states one chunk at a time on the calling
// goroutine, with a progress bar when verbose.
func (a *Downwind) CalcSerial() (*Results, error) {
	if err := a.Initialize(); err != nil {
		return nil, err
	}
	cc := a.chunks()
	res := newResults(a.ovars, a.States.Size(), a.Farm.Size(), DimTurbine)
	res.T = a.States.T

	var bar *uiprogress.Bar
	if a.Verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(cc)).AppendCompleted().PrependElapsed()
	}
	for _, c := range cc {
		out, err := a.calcChunk(c[0], c[1])
		if err != nil {
			return nil, err
		}
		res.set(out, c[0])
		if bar != nil {
			bar.Incr()
		}
	}
	if a.Verbose {
		uiprogress.Stop()
	}
	return res, nil
}
