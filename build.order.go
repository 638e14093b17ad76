package foxes

import (
	"fmt"
	"math"
	"sort"
)

// CalcOrder computes the per-state wake propagation order: turbine indices
// sorted by downwind coordinate, upstream-most first. Ties on the downwind
// coordinate break to the lower turbine index; the sort is deliberately
// stable on index rather than relying on incidental ordering.
func CalcOrder(fdata *Data) (*Field, error) {
	txyh, wd := fdata.Get(VarTXYH), fdata.Get(VarWD)
	if txyh == nil || wd == nil {
		return nil, fmt.Errorf(" foxes.CalcOrder: farm data '%s' lacks %s or %s", fdata.Name, VarTXYH, VarWD)
	}
	ns, nt := fdata.NStates(), fdata.NTurbines()

	f := &Field{
		Vals:   make([]float64, ns*nt),
		Dims:   []string{DimState, DimTurbine},
		shape:  []int{ns, nt},
		stride: 1,
	}
	idx, dwc := make([]int, nt), make([]float64, nt)
	for s := 0; s < ns; s++ {
		// downwind unit vector from met. direction (wind blows FROM wd)
		wdr := wd.At2(s, 0) * math.Pi / 180.
		ux, uy := -math.Sin(wdr), -math.Cos(wdr)
		for t := 0; t < nt; t++ {
			idx[t] = t
			dwc[t] = txyh.At3(s, t, 0)*ux + txyh.At3(s, t, 1)*uy
		}
		sort.SliceStable(idx, func(i, j int) bool {
			if dwc[idx[i]] != dwc[idx[j]] {
				return dwc[idx[i]] < dwc[idx[j]]
			}
			return idx[i] < idx[j]
		})
		for oi, t := range idx {
			f.Set2(s, oi, float64(t))
		}
	}
	return f, nil
}

// orderInts extracts and validates the ORDER field as one permutation of
// 0..n_turbines-1 per state. Any out-of-range or repeated index is a fatal
// data error, never clamped.
func orderInts(fdata *Data) ([][]int, error) {
	f := fdata.Get(VarOrder)
	if f == nil {
		return nil, fmt.Errorf(" foxes.orderInts: farm data '%s' lacks %s", fdata.Name, VarOrder)
	}
	ns, nt := fdata.NStates(), fdata.NTurbines()
	torder := make([][]int, ns)
	for s := 0; s < ns; s++ {
		seen := make([]bool, nt)
		torder[s] = make([]int, nt)
		for oi := 0; oi < nt; oi++ {
			v := f.At2(s, oi)
			t := int(v)
			if float64(t) != v || t < 0 || t >= nt {
				return nil, fmt.Errorf(" foxes.orderInts: state %d rank %d: invalid turbine index %g (n_turbines %d)", s, oi, v, nt)
			}
			if seen[t] {
				return nil, fmt.Errorf(" foxes.orderInts: state %d: turbine %d occurs more than once, not a permutation", s, t)
			}
			seen[t] = true
			torder[s][oi] = t
		}
	}
	return torder, nil
}
