package foxes

import "fmt"

// FarmWakesCalc is the wake-propagation engine. For one chunk it walks the
// turbines of every state in wake order, alternating between resolving a
// turbine's operating point under the deltas accumulated so far and folding
// that turbine's own wake onto everything still downstream.
type FarmWakesCalc struct{}

// Name implements Model.
func (m *FarmWakesCalc) Name() string { return "farm_wakes" }

// Initialize implements Model.
func (m *FarmWakesCalc) Initialize(a *Downwind) error { return nil }

// OutputFarmVars returns the union of rotor and controller outputs,
// de-duplicated, first occurrence order preserved.
func (m *FarmWakesCalc) OutputFarmVars(a *Downwind) []string {
	return unionVars(a.Rotor.OutputFarmVars(a), a.Controller.OutputFarmVars(a))
}

// Calculate runs the propagation loop over one chunk. fdata must already
// hold ambient values and the ORDER permutation; on return the declared
// output variables hold waked per-(state, turbine) results.
//
// The loop index oi is the turbine's rank in wake order, not its identity;
// identity is ORDER[state, oi] and differs per state. A single-turbine farm
// runs neither the apply nor the contribute step and reduces to the ambient
// evaluation.
func (m *FarmWakesCalc) Calculate(a *Downwind, mdata, fdata *Data) (map[string]*Field, error) {
	torder, err := orderInts(fdata)
	if err != nil {
		return nil, err
	}
	ns, nt := fdata.NStates(), fdata.NTurbines()

	wdel := a.PWakes.NewWakeDeltas(a, mdata, fdata)
	o := make([]int, ns)

	for oi := 0; oi < nt; oi++ {
		for s := range o {
			o[s] = torder[s][oi]
		}

		if oi > 0 {
			if err := a.PWakes.Apply(a, mdata, fdata, wdel, o); err != nil {
				return nil, err
			}

			// exactly one masked cell per state, selected by identity
			sel := make([]bool, ns*nt)
			for s, t := range o {
				sel[s*nt+t] = true
			}
			res, err := a.Controller.Calculate(a, mdata, fdata, false, sel)
			if err != nil {
				return nil, err
			}
			if err := fdata.Update(res); err != nil {
				return nil, err
			}
		}

		if oi < nt-1 {
			if err := a.PWakes.Contribute(a, mdata, fdata, oi, torder, wdel); err != nil {
				return nil, err
			}
		}
	}

	out := make(map[string]*Field)
	for _, v := range m.OutputFarmVars(a) {
		f := fdata.Get(v)
		if f == nil {
			return nil, fmt.Errorf(" foxes.FarmWakesCalc: declared output '%s' missing from farm data '%s'", v, fdata.Name)
		}
		out[v] = f
	}
	return out, nil
}
