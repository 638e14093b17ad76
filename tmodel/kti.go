package tmodel

import (
	"fmt"

	foxes "github.com/kyleniemeyer/foxes"
)

// KTI derives each turbine's wake growth parameter from the turbulence
// intensity at its rotor: K = Kb + KTI·TI. Downstream turbines sitting in
// turbulent wakes grow their own wakes faster.
type KTI struct {
	KTI float64
	Kb  float64
}

// Name implements Model.
func (m *KTI) Name() string { return fmt.Sprintf("kTI_%g", m.KTI) }

// Initialize implements Model.
func (m *KTI) Initialize(a *foxes.Downwind) error {
	if m.KTI <= 0. {
		return fmt.Errorf(" tmodel.KTI: non-positive kTI factor %f", m.KTI)
	}
	return nil
}

// OutputFarmVars implements TurbineModel.
func (m *KTI) OutputFarmVars(a *foxes.Downwind) []string { return []string{foxes.VarK} }

// PreRotor implements TurbineModel.
func (m *KTI) PreRotor() bool { return false }

// Calculate implements TurbineModel.
func (m *KTI) Calculate(a *foxes.Downwind, mdata, fdata *foxes.Data, sel []bool) (map[string]*foxes.Field, error) {
	ti := fdata.Get(foxes.VarTI)
	if ti == nil {
		return nil, fmt.Errorf(" tmodel.KTI: farm data '%s' lacks %s", fdata.Name, foxes.VarTI)
	}
	ns, nt := fdata.NStates(), fdata.NTurbines()
	k := carryOver(fdata, foxes.VarK, ns, nt)
	for s := 0; s < ns; s++ {
		for t := 0; t < nt; t++ {
			if sel[s*nt+t] {
				k.Set2(s, t, m.Kb+m.KTI*ti.At2(s, t))
			}
		}
	}
	return map[string]*foxes.Field{foxes.VarK: k}, nil
}
