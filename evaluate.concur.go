package foxes

import "sync"

// Calc evaluates all states, distributing chunks over goroutines. Chunks
// share no mutable state: each owns its model data, farm data and wake
// accumulator, and writes to a disjoint state range of the result arrays,
// so the only synchronization is the final WaitGroup.
func (a *Downwind) Calc() (*Results, error) {
	if err := a.Initialize(); err != nil {
		return nil, err
	}
	cc := a.chunks()
	res := newResults(a.ovars, a.States.Size(), a.Farm.Size(), DimTurbine)
	res.T = a.States.T

	var wg sync.WaitGroup
	errs := make([]error, len(cc))
	wg.Add(len(cc))
	for ci, c := range cc {
		go func(ci, s0, s1 int) {
			defer wg.Done()
			out, err := a.calcChunk(s0, s1)
			if err != nil {
				errs[ci] = err
				return
			}
			res.set(out, s0)
		}(ci, c[0], c[1])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
