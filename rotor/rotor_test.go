package rotor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foxes "github.com/kyleniemeyer/foxes"
)

func rotorData(t *testing.T, wd float64) *foxes.Data {
	t.Helper()
	st := []string{foxes.DimState, foxes.DimTurbine}
	one := func(v float64) foxes.Raw { return foxes.Raw{Vals: []float64{v}, Shape: []int{1, 1}} }
	d, err := foxes.NewData("rotor",
		map[string]foxes.Raw{
			foxes.VarX:  one(1000.),
			foxes.VarY:  one(2000.),
			foxes.VarH:  one(90.),
			foxes.VarD:  one(126.),
			foxes.VarWD: one(wd),
		},
		map[string][]string{foxes.VarX: st, foxes.VarY: st, foxes.VarH: st, foxes.VarD: st, foxes.VarWD: st},
		[]string{foxes.DimState})
	require.NoError(t, err)
	return d
}

func TestCentreRotor(t *testing.T) {
	r := &Centre{}
	assert.Equal(t, 1, r.NPoints())

	pts, wts := r.RotorPoints(rotorData(t, 270.), 0, 0)
	require.Len(t, pts, 1)
	assert.Equal(t, [3]float64{1000., 2000., 90.}, pts[0])
	assert.Equal(t, []float64{1.}, wts)
}

func TestGridPointCounts(t *testing.T) {
	// corner cells of the 4x4 grid fall outside the unit disk
	assert.Equal(t, 4, NewGrid(2).NPoints())
	assert.Equal(t, 9, NewGrid(3).NPoints())
	assert.Equal(t, 12, NewGrid(4).NPoints())
}

func TestGridPointsOnRotorDisk(t *testing.T) {
	d := rotorData(t, 270.)
	g := NewGrid(4)
	pts, wts := g.RotorPoints(d, 0, 0)
	require.Len(t, pts, g.NPoints())

	wsum := 0.
	for k, p := range pts {
		// westerly wind, the rotor plane spans y and z around the hub
		assert.InDelta(t, 1000., p[0], 1e-9)
		rr := math.Hypot(p[1]-2000., p[2]-90.)
		assert.LessOrEqual(t, rr, 63.+1e-9)
		wsum += wts[k]
	}
	assert.InDelta(t, 1., wsum, 1e-12)
}

func TestGridPlaneFollowsWind(t *testing.T) {
	// southerly wind blows toward +y, the rotor plane spans x and z
	pts, _ := NewGrid(3).RotorPoints(rotorData(t, 180.), 0, 0)
	for _, p := range pts {
		assert.InDelta(t, 2000., p[1], 1e-9)
	}
}

func TestRotorBook(t *testing.T) {
	for _, n := range []string{"centre", "grid4", "grid9", "grid16"} {
		r, err := foxes.NewRotor(n)
		require.NoError(t, err, n)
		assert.Greater(t, r.NPoints(), 0)
	}
}
