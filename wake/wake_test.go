package wake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foxes "github.com/kyleniemeyer/foxes"
)

// wakeData builds farm data for one state with a single source turbine at
// the origin, westerly wind and a fixed operating point.
func wakeData(t *testing.T, ct, ti float64) *foxes.Data {
	t.Helper()
	st := []string{foxes.DimState, foxes.DimTurbine}
	one := func(v float64) foxes.Raw { return foxes.Raw{Vals: []float64{v}, Shape: []int{1, 1}} }
	d, err := foxes.NewData("wake",
		map[string]foxes.Raw{
			foxes.VarX:     one(0.),
			foxes.VarY:     one(0.),
			foxes.VarH:     one(90.),
			foxes.VarD:     one(100.),
			foxes.VarWD:    one(270.),
			foxes.VarCT:    one(ct),
			foxes.VarAmbTI: one(ti),
		},
		map[string][]string{
			foxes.VarX: st, foxes.VarY: st, foxes.VarH: st,
			foxes.VarD: st, foxes.VarWD: st, foxes.VarCT: st, foxes.VarAmbTI: st,
		},
		[]string{foxes.DimState})
	require.NoError(t, err)
	return d
}

func TestDownwindFrame(t *testing.T) {
	d := wakeData(t, .75, .08)

	dx, r := downwindFrame(d, 0, 0, [3]float64{500., 0., 90.})
	assert.InDelta(t, 500., dx, 1e-9)
	assert.InDelta(t, 0., r, 1e-9)

	dx, r = downwindFrame(d, 0, 0, [3]float64{500., 30., 130.})
	assert.InDelta(t, 500., dx, 1e-9)
	assert.InDelta(t, 50., r, 1e-9)

	dx, _ = downwindFrame(d, 0, 0, [3]float64{-100., 0., 90.})
	assert.Less(t, dx, 0.)
}

func TestInduction(t *testing.T) {
	assert.Equal(t, 0., induction(0.))
	assert.Equal(t, 0., induction(-1.))
	assert.InDelta(t, .25, induction(.75), 1e-12)
	// clamped near unity rather than going complex
	assert.False(t, math.IsNaN(induction(1.5)))
	assert.Less(t, induction(1.5), .5+1e-6)
}

func TestJensenCentrelineDeficit(t *testing.T) {
	d := wakeData(t, .75, .08)
	w := &Jensen{K: .05, Sup: WSLinear{}}

	// a = 0.25, f = 100/150, deficit = 2 a f²
	got := w.Delta(nil, d, 0, 0, [3]float64{500., 0., 90.})
	assert.InDelta(t, 2.*.25*math.Pow(100./150., 2.), got, 1e-12)
}

func TestJensenCutoffs(t *testing.T) {
	d := wakeData(t, .75, .08)
	w := &Jensen{K: .05, Sup: WSLinear{}}

	assert.Equal(t, 0., w.Delta(nil, d, 0, 0, [3]float64{-500., 0., 90.}))
	assert.Equal(t, 0., w.Delta(nil, d, 0, 0, [3]float64{0., 0., 90.}))

	// wake radius at dx=500 is 50 + 25 = 75
	assert.Equal(t, 0., w.Delta(nil, d, 0, 0, [3]float64{500., 80., 90.}))
	assert.Greater(t, w.Delta(nil, d, 0, 0, [3]float64{500., 70., 90.}), 0.)
}

func TestJensenUsesPerTurbineK(t *testing.T) {
	d := wakeData(t, .75, .08)
	w := &Jensen{K: .05, Sup: WSLinear{}}
	base := w.Delta(nil, d, 0, 0, [3]float64{500., 0., 90.})

	// a larger growth parameter dilutes the centreline deficit
	require.NoError(t, d.Add(foxes.VarK,
		foxes.NewField([]float64{.1}, []string{foxes.DimState, foxes.DimTurbine}, []int{1, 1})))
	wide := w.Delta(nil, d, 0, 0, [3]float64{500., 0., 90.})
	assert.Less(t, wide, base)
}

func TestCrespoHernandezDelta(t *testing.T) {
	d := wakeData(t, .75, .08)
	w := &CrespoHernandez{K: .05, Sup: TIMax{}, A: .73, ExpA: .8325, ExpTI: .0325, ExpX: -.32, NearDist: .1}

	got := w.Delta(nil, d, 0, 0, [3]float64{500., 0., 90.})
	want := .73 * math.Pow(.25, .8325) * math.Pow(.08, .0325) * math.Pow(5., -.32)
	assert.InDelta(t, want, got, 1e-12)

	// near-wake cutoff at 0.1 diameters
	assert.Equal(t, 0., w.Delta(nil, d, 0, 0, [3]float64{5., 0., 90.}))
	// outside the cone
	assert.Equal(t, 0., w.Delta(nil, d, 0, 0, [3]float64{500., 100., 90.}))
}

func TestWSLinearSuperposition(t *testing.T) {
	s := WSLinear{}
	assert.InDelta(t, .3, s.Add(.1, .2), 1e-12)
	assert.InDelta(t, 9.*(1.-.3), s.Finalize(9., .3), 1e-12)
	// over-saturated accumulation floors the wind speed at zero
	assert.Equal(t, 0., s.Finalize(9., 1.7))
}

func TestWSQuadraticSuperposition(t *testing.T) {
	s := WSQuadratic{}
	acc := s.Add(s.Add(0., .3), .4)
	assert.InDelta(t, .25, acc, 1e-12)
	assert.InDelta(t, 9.*(1.-.5), s.Finalize(9., acc), 1e-12)
	assert.Equal(t, 0., s.Finalize(9., 4.))
}

func TestTISuperpositions(t *testing.T) {
	lin, max := TILinear{}, TIMax{}
	assert.InDelta(t, .05, lin.Add(.02, .03), 1e-12)
	assert.InDelta(t, .13, lin.Finalize(.08, .05), 1e-12)

	assert.Equal(t, .03, max.Add(.02, .03))
	assert.Equal(t, .03, max.Add(.03, .02))
	assert.InDelta(t, .11, max.Finalize(.08, .03), 1e-12)
}
