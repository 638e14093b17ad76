package foxes

import (
	"fmt"
	"sort"
)

// Model is the common contract of all pluggable computation units: rotor
// models, turbine (controller) models, wake models and partial-wake
// evaluators. Initialize is invoked once per run, never per chunk; models
// must not retain chunk-scoped state between Calculate invocations.
type Model interface {
	Name() string
	Initialize(a *Downwind) error
}

// RotorModel estimates rotor-effective inflow from point sampling across
// the rotor disk.
type RotorModel interface {
	Model

	// OutputFarmVars lists the (state, turbine) variables the rotor
	// evaluation produces.
	OutputFarmVars(a *Downwind) []string

	// NPoints returns the fixed number of evaluation points per rotor.
	NPoints() int

	// RotorPoints returns the evaluation points (x, y, z) and their
	// averaging weights for turbine ti in state si. Weights sum to one.
	RotorPoints(fdata *Data, si, ti int) ([][3]float64, []float64)

	// Calculate evaluates the ambient rotor-effective inflow for every
	// (state, turbine) cell of the chunk.
	Calculate(a *Downwind, mdata, fdata *Data) (map[string]*Field, error)
}

// TurbineModel is one behavior sub-model of the farm controller (power
// curve, wake growth, de-rating...). Calculate computes its declared
// outputs restricted to the masked (state, turbine) cells; unmasked cells
// of returned arrays must carry the current farm-data values unchanged.
type TurbineModel interface {
	Model
	OutputFarmVars(a *Downwind) []string

	// PreRotor reports whether the model runs in the pre-rotor setup
	// phase rather than post-rotor finalization.
	PreRotor() bool

	Calculate(a *Downwind, mdata, fdata *Data, sel []bool) (map[string]*Field, error)
}

// WakeModel computes a single turbine's wake perturbation of one flow
// variable at a point downwind.
type WakeModel interface {
	Model

	// AffectsVar names the farm variable the wake model perturbs.
	AffectsVar() string

	// Superposition returns the folding rule for accumulated deltas.
	Superposition() Superposition

	// Delta returns the wake perturbation of source turbine src (state
	// si) at point p, in the superposition's accumulation space. Zero at
	// and upstream of the source rotor.
	Delta(a *Downwind, fdata *Data, si, src int, p [3]float64) float64
}

// Superposition folds wake contributions into an accumulator and converts
// the accumulated value back to a waked flow quantity.
type Superposition interface {
	Name() string

	// Add folds one contribution into the accumulator.
	Add(acc, delta float64) float64

	// Finalize converts an accumulated delta plus the ambient value into
	// the waked value.
	Finalize(ambient, acc float64) float64
}

// PartialWakes owns the wake-deltas accumulator: its shape, how turbine
// contributions fold in, and how accumulated deltas resolve to waked
// rotor-effective values. Reading never clears the accumulator.
type PartialWakes interface {
	Model

	// NewWakeDeltas allocates a fresh accumulator for one chunk.
	NewWakeDeltas(a *Downwind, mdata, fdata *Data) WakeDeltas

	// Contribute folds the wakes of the turbines at rank oi (identity
	// torder[s][oi] per state s) onto all strictly-downstream ranks.
	Contribute(a *Downwind, mdata, fdata *Data, oi int, torder [][]int, wdel WakeDeltas) error

	// Apply resolves accumulated deltas onto the turbines o (one identity
	// per state), overwriting their waked farm-data cells.
	Apply(a *Downwind, mdata, fdata *Data, wdel WakeDeltas, o []int) error
}

// WakeDeltas maps an affected variable name to its accumulator array; the
// layout is owned by the PartialWakes model that allocated it.
type WakeDeltas map[string][]float64

// vars returns the sorted accumulator variable names.
func (wd WakeDeltas) vars() []string {
	vs := make([]string, 0, len(wd))
	for v := range wd {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// model book: named factories resolved at configuration-load time.
// Registration conflicts are configuration errors surfaced eagerly.
var (
	rotorBook   = map[string]func() RotorModel{}
	wakeBook    = map[string]func() WakeModel{}
	turbineBook = map[string]func() TurbineModel{}
)

// RegisterRotor adds a rotor model factory to the book.
func RegisterRotor(name string, f func() RotorModel) error {
	if _, ok := rotorBook[name]; ok {
		return fmt.Errorf(" foxes.RegisterRotor: rotor model '%s' already registered", name)
	}
	rotorBook[name] = f
	return nil
}

// RegisterWake adds a wake model factory to the book.
func RegisterWake(name string, f func() WakeModel) error {
	if _, ok := wakeBook[name]; ok {
		return fmt.Errorf(" foxes.RegisterWake: wake model '%s' already registered", name)
	}
	wakeBook[name] = f
	return nil
}

// RegisterTurbine adds a turbine model factory to the book.
func RegisterTurbine(name string, f func() TurbineModel) error {
	if _, ok := turbineBook[name]; ok {
		return fmt.Errorf(" foxes.RegisterTurbine: turbine model '%s' already registered", name)
	}
	turbineBook[name] = f
	return nil
}

// MustRegisterRotor is RegisterRotor, panicking on conflict; for use from
// model package init functions.
func MustRegisterRotor(name string, f func() RotorModel) {
	if err := RegisterRotor(name, f); err != nil {
		panic(err)
	}
}

// MustRegisterWake is RegisterWake, panicking on conflict.
func MustRegisterWake(name string, f func() WakeModel) {
	if err := RegisterWake(name, f); err != nil {
		panic(err)
	}
}

// MustRegisterTurbine is RegisterTurbine, panicking on conflict.
func MustRegisterTurbine(name string, f func() TurbineModel) {
	if err := RegisterTurbine(name, f); err != nil {
		panic(err)
	}
}

// NewRotor resolves a registered rotor model by name.
func NewRotor(name string) (RotorModel, error) {
	f, ok := rotorBook[name]
	if !ok {
		return nil, fmt.Errorf(" foxes.NewRotor: unknown rotor model '%s'", name)
	}
	return f(), nil
}

// NewWake resolves a registered wake model by name.
func NewWake(name string) (WakeModel, error) {
	f, ok := wakeBook[name]
	if !ok {
		return nil, fmt.Errorf(" foxes.NewWake: unknown wake model '%s'", name)
	}
	return f(), nil
}

// NewTurbine resolves a registered turbine model by name.
func NewTurbine(name string) (TurbineModel, error) {
	f, ok := turbineBook[name]
	if !ok {
		return nil, fmt.Errorf(" foxes.NewTurbine: unknown turbine model '%s'", name)
	}
	return f(), nil
}
