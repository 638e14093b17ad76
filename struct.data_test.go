package foxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFarmData(t *testing.T, ns, nt int) *Data {
	t.Helper()
	vals := func(f func(s, tt int) float64) []float64 {
		o := make([]float64, ns*nt)
		for s := 0; s < ns; s++ {
			for ti := 0; ti < nt; ti++ {
				o[s*nt+ti] = f(s, ti)
			}
		}
		return o
	}
	st := []string{DimState, DimTurbine}
	d, err := NewData("test",
		map[string]Raw{
			VarX: {Vals: vals(func(s, ti int) float64 { return 500. * float64(ti) }), Shape: []int{ns, nt}},
			VarY: {Vals: vals(func(s, ti int) float64 { return 0. }), Shape: []int{ns, nt}},
			VarH: {Vals: vals(func(s, ti int) float64 { return 90. }), Shape: []int{ns, nt}},
			VarD: {Vals: vals(func(s, ti int) float64 { return 126. }), Shape: []int{ns, nt}},
		},
		map[string][]string{VarX: st, VarY: st, VarH: st, VarD: st},
		[]string{DimState})
	require.NoError(t, err)
	return d
}

func TestDataSizes(t *testing.T) {
	d := testFarmData(t, 2, 3)
	assert.Equal(t, 2, d.NStates())
	assert.Equal(t, 3, d.NTurbines())
	assert.Equal(t, 0, d.NPoints())
	assert.Equal(t, 3, d.Size(DimXYH))
}

func TestDataInconsistentSizes(t *testing.T) {
	st := []string{DimState, DimTurbine}
	_, err := NewData("bad",
		map[string]Raw{
			VarX: {Vals: make([]float64, 6), Shape: []int{2, 3}},
			VarD: {Vals: make([]float64, 8), Shape: []int{2, 4}},
		},
		map[string][]string{VarX: st, VarD: st},
		nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent size")
	assert.Contains(t, err.Error(), DimTurbine)
	assert.Contains(t, err.Error(), "field 'X'") // names the offending field
}

func TestDataShapeSpanMismatch(t *testing.T) {
	_, err := NewData("bad",
		map[string]Raw{VarWS: {Vals: make([]float64, 5), Shape: []int{2, 3}}},
		map[string][]string{VarWS: {DimState, DimTurbine}},
		nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not span")
}

func TestDataUndeclaredField(t *testing.T) {
	_, err := NewData("bad",
		map[string]Raw{VarWS: {Vals: make([]float64, 2), Shape: []int{2}}},
		map[string][]string{},
		nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dimensions declared")
}

func TestDataSqueezesBroadcastAxis(t *testing.T) {
	// a (turbine,) field handed over with a leading broadcast state axis
	d, err := NewData("sq",
		map[string]Raw{VarD: {Vals: []float64{126., 126., 126.}, Shape: []int{1, 3}}},
		map[string][]string{VarD: {DimTurbine}},
		[]string{DimState})
	require.NoError(t, err)
	f := d.Get(VarD)
	require.NotNil(t, f)
	assert.Equal(t, []int{3}, f.Shape())
	assert.Equal(t, 3, d.NTurbines())
	assert.Equal(t, 0, d.NStates())
}

func TestTXYHBinding(t *testing.T) {
	d := testFarmData(t, 2, 3)
	txyh := d.Get(VarTXYH)
	require.NotNil(t, txyh)
	assert.Equal(t, []int{2, 3, 3}, txyh.Shape())

	assert.Equal(t, 500., txyh.At3(0, 1, 0))
	assert.Equal(t, 0., txyh.At3(0, 1, 1))
	assert.Equal(t, 90., txyh.At3(0, 1, 2))

	// writes through the composite are visible through the scalar views
	txyh.Set3(1, 2, 0, 1234.)
	assert.Equal(t, 1234., d.Get(VarX).At2(1, 2))

	// and the other way around
	d.Get(VarH).Set2(0, 0, 101.)
	assert.Equal(t, 101., txyh.At3(0, 0, 2))
}

func TestDataAddRejectsSizeConflict(t *testing.T) {
	d := testFarmData(t, 2, 3)
	err := d.Add(VarWS, NewField(make([]float64, 8), []string{DimState, DimTurbine}, []int{2, 4}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent size")
}

func TestDataVarsSorted(t *testing.T) {
	d := testFarmData(t, 1, 2)
	vs := d.Vars()
	for i := 1; i < len(vs); i++ {
		assert.Less(t, vs[i-1], vs[i])
	}
	assert.Contains(t, vs, VarTXYH)
}

func TestDataConstructionOrderIndependence(t *testing.T) {
	st := []string{DimState, DimTurbine}
	mk := func(order []string) *Data {
		d, err := NewData("o", map[string]Raw{}, map[string][]string{}, nil)
		require.NoError(t, err)
		for i, v := range order {
			require.NoError(t, d.Add(v, NewField([]float64{float64(i), float64(i)}, st, []int{1, 2})))
		}
		return d
	}
	a := mk([]string{VarWS, VarTI, VarRho})
	b := mk([]string{VarRho, VarWS, VarTI})

	assert.Equal(t, a.Vars(), b.Vars())
	assert.Equal(t, a.NTurbines(), b.NTurbines())
	// values follow the name, not the insertion position
	assert.Equal(t, 0., a.Get(VarWS).At2(0, 0))
	assert.Equal(t, 1., b.Get(VarWS).At2(0, 0))
}

func TestFieldCopyDetaches(t *testing.T) {
	d := testFarmData(t, 1, 2)
	x := d.Get(VarX)
	c := x.Copy()
	x.Set2(0, 0, 999.)
	assert.Equal(t, 0., c.At2(0, 0))
	assert.Equal(t, 999., x.At2(0, 0))
}

func TestUnionVars(t *testing.T) {
	u := unionVars([]string{"A", "B"}, []string{"B", "C", "A"}, []string{"D"})
	assert.Equal(t, []string{"A", "B", "C", "D"}, u)
}
