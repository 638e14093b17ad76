package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyleniemeyer/foxes/farm"
)

func baseLayout() *Layout {
	frm := &farm.Farm{Name: "opt"}
	frm.AddRow(0., 0., 630., 0., 90., 126., 2)
	return &Layout{
		Base: frm,
		Xmin: 0., Xmax: 2000.,
		Ymin: 0., Ymax: 2000.,
		MinDist: 252.,
	}
}

func TestPlace(t *testing.T) {
	l := baseLayout()
	frm := l.place([]float64{0., 0., 1., .5})
	require.Equal(t, 2, frm.Size())
	assert.Equal(t, 0., frm.Turbines[0].X)
	assert.Equal(t, 0., frm.Turbines[0].Y)
	assert.Equal(t, 2000., frm.Turbines[1].X)
	assert.Equal(t, 1000., frm.Turbines[1].Y)
	// base layout untouched
	assert.Equal(t, 630., l.Base.Turbines[1].X)
}

func TestPenalty(t *testing.T) {
	l := baseLayout()
	assert.Equal(t, 0., l.penalty(l.Base))

	tight := l.place([]float64{0., 0., .01, 0.})
	assert.Greater(t, l.penalty(tight), 0.)

	l.MinDist = 0.
	assert.Equal(t, 0., l.penalty(tight))
}

func TestOptimizeRequiresConfiguration(t *testing.T) {
	l := &Layout{}
	_, _, err := l.Optimize(true)
	require.Error(t, err)

	l = baseLayout() // no algorithm factory
	_, _, err = l.Optimize(true)
	require.Error(t, err)
}
