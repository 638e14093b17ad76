package foxes

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResults() *Results {
	r := newResults([]string{VarP, VarAmbP}, 2, 2, DimTurbine)
	copy(r.D[VarP], []float64{1000., 800., 1200., 900.})
	copy(r.D[VarAmbP], []float64{1000., 1000., 1200., 1200.})
	return r
}

func TestResultsAccessors(t *testing.T) {
	r := testResults()
	assert.Equal(t, 800., r.At(VarP, 0, 1))
	assert.Equal(t, []float64{800., 900.}, r.Col(VarP, 1))
	assert.Equal(t, 1800., r.FarmPower(0))
	assert.Equal(t, []float64{1800., 2100.}, r.FarmPowerSeries())
	assert.InDelta(t, 1950., r.MeanFarmPower(), 1e-12)
	assert.True(t, r.Has(VarAmbP))
	assert.False(t, r.Has(VarCT))
}

func TestResultsEfficiency(t *testing.T) {
	r := testResults()
	eff, err := r.Efficiency()
	require.NoError(t, err)
	assert.InDelta(t, 3900./4400., eff, 1e-12)

	r2 := newResults([]string{VarP}, 1, 1, DimTurbine)
	_, err = r2.Efficiency()
	require.Error(t, err)
}

func TestResultsSetChunk(t *testing.T) {
	r := newResults([]string{VarP}, 3, 2, DimTurbine)
	f := NewField([]float64{5., 6.}, []string{DimState, DimTurbine}, []int{1, 2})
	r.set(map[string]*Field{VarP: f}, 1)
	assert.Equal(t, []float64{0., 0., 5., 6., 0., 0.}, r.D[VarP])
}

func TestResultsGobRoundTrip(t *testing.T) {
	r := testResults()
	r.T = []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
	}

	fp := filepath.Join(t.TempDir(), "results.gob")
	require.NoError(t, r.SaveGob(fp))
	g, err := LoadGobResults(fp)
	require.NoError(t, err)
	assert.Equal(t, r.Vars, g.Vars)
	assert.Equal(t, r.D, g.D)
	assert.True(t, r.T[1].Equal(g.T[1]))
}
