package tmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foxes "github.com/kyleniemeyer/foxes"
)

func curveData(t *testing.T, rews, ti, rho float64) *foxes.Data {
	t.Helper()
	st := []string{foxes.DimState, foxes.DimTurbine}
	one := func(v float64) foxes.Raw { return foxes.Raw{Vals: []float64{v}, Shape: []int{1, 1}} }
	d, err := foxes.NewData("tmodel",
		map[string]foxes.Raw{
			foxes.VarREWS: one(rews),
			foxes.VarRho:  one(rho),
			foxes.VarTI:   one(ti),
		},
		map[string][]string{foxes.VarREWS: st, foxes.VarRho: st, foxes.VarTI: st},
		[]string{foxes.DimState})
	require.NoError(t, err)
	return d
}

func TestInterp(t *testing.T) {
	xs := []float64{3., 5., 7.}
	ys := []float64{0., 400., 1600.}

	assert.Equal(t, 0., interp(xs, ys, 1.))   // below cut-in
	assert.Equal(t, 0., interp(xs, ys, 3.))   // first sample exact
	assert.Equal(t, 200., interp(xs, ys, 4.)) // midpoint
	assert.Equal(t, 400., interp(xs, ys, 5.))
	assert.Equal(t, 1600., interp(xs, ys, 7.))
	assert.Equal(t, 1600., interp(xs, ys, 30.)) // held above range
}

func TestPCtCurveCheck(t *testing.T) {
	c := &PCtCurve{Label: "bad", WS: []float64{3., 3.}, P: []float64{0., 1.}, CT: []float64{.1, .2}}
	require.Error(t, c.check())

	c = &PCtCurve{Label: "ragged", WS: []float64{3., 5.}, P: []float64{0.}, CT: []float64{.1, .2}}
	require.Error(t, c.check())
}

func TestPCtCurveCalculate(t *testing.T) {
	c := &PCtCurve{
		Label:  "flat",
		WS:     []float64{3., 10., 25.},
		P:      []float64{0., 3000., 5000.},
		CT:     []float64{.8, .8, .2},
		RhoRef: 1.225,
	}
	require.NoError(t, c.check())

	d := curveData(t, 10., .08, 1.225)
	res, err := c.Calculate(nil, nil, d, []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, 3000., res[foxes.VarP].At2(0, 0), 1e-9)
	assert.InDelta(t, .8, res[foxes.VarCT].At2(0, 0), 1e-9)
}

func TestPCtCurveDensityCorrection(t *testing.T) {
	c := &PCtCurve{
		Label:  "ramp",
		WS:     []float64{0., 20.},
		P:      []float64{0., 2000.},
		CT:     []float64{.8, .8},
		RhoRef: 1.225,
	}
	d := curveData(t, 10., .08, 1.225)
	res, err := c.Calculate(nil, nil, d, []bool{true})
	require.NoError(t, err)
	pRef := res[foxes.VarP].At2(0, 0)

	// thinner air reads lower on the curve
	d = curveData(t, 10., .08, 1.)
	res, err = c.Calculate(nil, nil, d, []bool{true})
	require.NoError(t, err)
	assert.Less(t, res[foxes.VarP].At2(0, 0), pRef)
}

func TestPCtCurveMaskPassThrough(t *testing.T) {
	c := NREL5MW()
	st := []string{foxes.DimState, foxes.DimTurbine}
	d, err := foxes.NewData("masked",
		map[string]foxes.Raw{
			foxes.VarREWS: {Vals: []float64{9., 9.}, Shape: []int{1, 2}},
			foxes.VarRho:  {Vals: []float64{1.225, 1.225}, Shape: []int{1, 2}},
			foxes.VarP:    {Vals: []float64{111., 222.}, Shape: []int{1, 2}},
			foxes.VarCT:   {Vals: []float64{.5, .6}, Shape: []int{1, 2}},
		},
		map[string][]string{foxes.VarREWS: st, foxes.VarRho: st, foxes.VarP: st, foxes.VarCT: st},
		[]string{foxes.DimState})
	require.NoError(t, err)

	res, err := c.Calculate(nil, nil, d, []bool{false, true})
	require.NoError(t, err)

	// unmasked cell carried over untouched, masked cell recomputed
	assert.Equal(t, 111., res[foxes.VarP].At2(0, 0))
	assert.Equal(t, .5, res[foxes.VarCT].At2(0, 0))
	assert.NotEqual(t, 222., res[foxes.VarP].At2(0, 1))
	assert.Greater(t, res[foxes.VarP].At2(0, 1), 0.)
}

func TestNREL5MWCurve(t *testing.T) {
	c := NREL5MW()
	require.NoError(t, c.check())
	assert.Equal(t, 1.225, c.RhoRef)
	// rated power reached within the curve
	assert.InDelta(t, 5000., interp(c.WS, c.P, 25.), 1.)
	assert.Equal(t, 0., interp(c.WS, c.P, 1.)) // below cut-in
}

func TestKTI(t *testing.T) {
	m := &KTI{KTI: .2, Kb: .01}
	require.NoError(t, m.Initialize(nil))

	d := curveData(t, 9., .1, 1.225)
	res, err := m.Calculate(nil, nil, d, []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, .01+.2*.1, res[foxes.VarK].At2(0, 0), 1e-12)

	bad := &KTI{}
	require.Error(t, bad.Initialize(nil))
}

func TestTurbineBook(t *testing.T) {
	for _, n := range []string{"NREL5MW", "kTI_02", "kTI_04"} {
		tm, err := foxes.NewTurbine(n)
		require.NoError(t, err, n)
		assert.False(t, tm.PreRotor())
	}
}
