package foxes

import "fmt"

// Controller dispatches a possibly-heterogeneous set of turbine behavior
// models (power curve, wake growth, de-rating...) over masked
// (state, turbine) cells, split into a pre-rotor setup phase and a
// post-rotor finalization phase.
type Controller struct {
	Models []TurbineModel

	declared map[string][]string // model name -> declared outputs
}

// NewController wires turbine models resolved from the model book.
func NewController(names ...string) (*Controller, error) {
	c := &Controller{}
	for _, n := range names {
		tm, err := NewTurbine(n)
		if err != nil {
			return nil, err
		}
		c.Models = append(c.Models, tm)
	}
	return c, nil
}

// Name implements Model.
func (c *Controller) Name() string { return "farm_controller" }

// Initialize initializes all sub-models and verifies that no two sub-models
// declare the same output variable; such a conflict is a configuration
// error, never resolved by last-write-wins.
func (c *Controller) Initialize(a *Downwind) error {
	c.declared = make(map[string][]string, len(c.Models))
	owner := make(map[string]string)
	for _, tm := range c.Models {
		if err := tm.Initialize(a); err != nil {
			return err
		}
		ovars := tm.OutputFarmVars(a)
		for _, v := range ovars {
			if prev, ok := owner[v]; ok {
				return fmt.Errorf(" foxes.Controller: output variable '%s' declared by both '%s' and '%s'", v, prev, tm.Name())
			}
			owner[v] = tm.Name()
		}
		c.declared[tm.Name()] = ovars
	}
	return nil
}

// OutputFarmVars returns the union of all sub-model outputs, in sub-model
// then declaration order.
func (c *Controller) OutputFarmVars(a *Downwind) []string {
	var vs [][]string
	for _, tm := range c.Models {
		vs = append(vs, tm.OutputFarmVars(a))
	}
	return unionVars(vs...)
}

// Calculate runs the sub-models of the requested phase restricted to the
// masked cells and merges their contributions into one result mapping.
// A sub-model returning an undeclared variable fails loudly.
func (c *Controller) Calculate(a *Downwind, mdata, fdata *Data, preRotor bool, sel []bool) (map[string]*Field, error) {
	res := make(map[string]*Field)
	for _, tm := range c.Models {
		if tm.PreRotor() != preRotor {
			continue
		}
		mres, err := tm.Calculate(a, mdata, fdata, sel)
		if err != nil {
			return nil, fmt.Errorf(" foxes.Controller '%s': %v", tm.Name(), err)
		}
		decl := c.declared[tm.Name()]
		for v, f := range mres {
			if !contains(decl, v) {
				return nil, fmt.Errorf(" foxes.Controller: model '%s' computed undeclared output '%s'", tm.Name(), v)
			}
			res[v] = f
		}
	}
	return res, nil
}

func contains(vs []string, v string) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
