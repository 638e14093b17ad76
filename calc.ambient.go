package foxes

import "fmt"

// ambient counterparts recorded before any wake is applied
var ambCopies = [][2]string{
	{VarWS, VarAmbWS},
	{VarREWS, VarAmbREWS},
	{VarTI, VarAmbTI},
	{VarP, VarAmbP},
	{VarCT, VarAmbCT},
}

// calcAmbient runs the pre-propagation pass on a fresh chunk: rotor
// evaluation of the undisturbed inflow for every turbine, the controller's
// pre-rotor setup phase, then the post-rotor phase over the full farm mask.
// Afterwards every cell holds its ambient operating point; the propagation
// loop overwrites waked cells in rank order.
func calcAmbient(a *Downwind, mdata, fdata *Data) error {
	ns, nt := fdata.NStates(), fdata.NTurbines()
	all := make([]bool, ns*nt)
	for i := range all {
		all[i] = true
	}

	pre, err := a.Controller.Calculate(a, mdata, fdata, true, all)
	if err != nil {
		return err
	}
	if err := fdata.Update(pre); err != nil {
		return err
	}

	res, err := a.Rotor.Calculate(a, mdata, fdata)
	if err != nil {
		return fmt.Errorf(" foxes.calcAmbient: rotor '%s': %v", a.Rotor.Name(), err)
	}
	if err := fdata.Update(res); err != nil {
		return err
	}

	post, err := a.Controller.Calculate(a, mdata, fdata, false, all)
	if err != nil {
		return err
	}
	if err := fdata.Update(post); err != nil {
		return err
	}

	for _, c := range ambCopies {
		if f := fdata.Get(c[0]); f != nil {
			if err := fdata.Add(c[1], f.Copy()); err != nil {
				return err
			}
		}
	}
	return nil
}
