package foxes

import (
	"fmt"

	"github.com/kyleniemeyer/foxes/farm"
	"github.com/kyleniemeyer/foxes/states"
)

const defaultChunkSize = 500

// Downwind is the single-pass downwind wake propagation algorithm: each
// state's turbines are evaluated once, upstream-most first, with upstream
// wake deficits folded into every downstream rotor evaluation.
type Downwind struct {
	Farm       *farm.Farm
	States     *states.States
	Rotor      RotorModel
	Controller *Controller
	PWakes     PartialWakes
	Wakes      []WakeModel

	ChunkSize int // states per chunk
	Verbose   bool

	sups  map[string]Superposition // affected var -> folding rule
	ovars []string                 // declared chunk result variables
	init  bool
}

// New assembles a downwind algorithm with the default rotor-points
// partial-wake evaluator and chunk size.
func New(frm *farm.Farm, sts *states.States, rotor RotorModel, ctrl *Controller, wakes ...WakeModel) *Downwind {
	return &Downwind{
		Farm:       frm,
		States:     sts,
		Rotor:      rotor,
		Controller: ctrl,
		PWakes:     &RotorPoints{},
		Wakes:      wakes,
		ChunkSize:  defaultChunkSize,
	}
}

// NTurbines returns the farm size.
func (a *Downwind) NTurbines() int { return a.Farm.Size() }

// NStates returns the full run's state count.
func (a *Downwind) NStates() int { return a.States.Size() }

// Initialize resolves the run configuration once, before any chunk is
// processed. All configuration conflicts (duplicate controller outputs,
// superposition disagreements, inconsistent inputs) surface here, fatally.
func (a *Downwind) Initialize() error {
	if a.init {
		return nil
	}
	if a.Farm == nil || a.Farm.Size() == 0 {
		return fmt.Errorf(" foxes.Downwind: no turbines in farm")
	}
	if a.States == nil || a.States.Size() == 0 {
		return fmt.Errorf(" foxes.Downwind: no ambient states")
	}
	if err := a.States.Check(); err != nil {
		return fmt.Errorf(" foxes.Downwind: %v", err)
	}
	if a.Rotor == nil {
		return fmt.Errorf(" foxes.Downwind: no rotor model set")
	}
	if a.Controller == nil {
		a.Controller = &Controller{}
	}
	if a.PWakes == nil {
		a.PWakes = &RotorPoints{}
	}
	if a.ChunkSize <= 0 {
		a.ChunkSize = defaultChunkSize
	}

	if err := a.Rotor.Initialize(a); err != nil {
		return err
	}
	if err := a.Controller.Initialize(a); err != nil {
		return err
	}
	if err := a.PWakes.Initialize(a); err != nil {
		return err
	}

	a.sups = make(map[string]Superposition)
	for _, wm := range a.Wakes {
		if err := wm.Initialize(a); err != nil {
			return err
		}
		v, sup := wm.AffectsVar(), wm.Superposition()
		if prev, ok := a.sups[v]; ok && prev.Name() != sup.Name() {
			return fmt.Errorf(" foxes.Downwind: wake model '%s' requests superposition '%s' for variable '%s', already bound to '%s'",
				wm.Name(), sup.Name(), v, prev.Name())
		}
		a.sups[v] = sup
	}

	a.ovars = unionVars(a.Rotor.OutputFarmVars(a), a.Controller.OutputFarmVars(a))
	a.init = true
	return nil
}

// OutputFarmVars returns the declared chunk result variables: the union of
// rotor and controller outputs, first occurrence order preserved.
func (a *Downwind) OutputFarmVars() []string { return a.ovars }

// superposition returns the folding rule bound to a wake-affected variable.
func (a *Downwind) superposition(v string) Superposition { return a.sups[v] }
