package foxes

import "fmt"

// VarPoints is the composite (x, y, z) evaluation-point field of point
// chunks.
const VarPoints = "POINTS"

// PointWakesCalc evaluates waked flow variables at arbitrary points, e.g.
// for flow-field maps. Points generate no wakes, so no ordering is needed:
// every turbine's contribution superposes directly, with upstream targets
// cut off by the wake models themselves.
type PointWakesCalc struct {
	Points [][3]float64
}

// Name implements Model.
func (m *PointWakesCalc) Name() string { return "point_wakes" }

// Initialize implements Model.
func (m *PointWakesCalc) Initialize(a *Downwind) error {
	if len(m.Points) == 0 {
		return fmt.Errorf(" foxes.PointWakesCalc: no evaluation points")
	}
	return nil
}

// OutputPointVars lists the (state, point) variables produced.
func (m *PointWakesCalc) OutputPointVars(a *Downwind) []string {
	vs := []string{VarWS, VarTI}
	for _, wm := range a.Wakes {
		vs = append(vs, wm.AffectsVar())
	}
	return unionVars([][]string{vs}...)
}

// newPointData assembles the point-scope chunk container.
func (m *PointWakesCalc) newPointData(a *Downwind, s0, s1 int) (*Data, error) {
	ns, np := s1-s0, len(m.Points)
	pv := make([]float64, ns*np*3)
	for s := 0; s < ns; s++ {
		for p, pt := range m.Points {
			copy(pv[(s*np+p)*3:], pt[:])
		}
	}
	return NewData(fmt.Sprintf("pdata_%d", s0),
		map[string]Raw{VarPoints: {Vals: pv, Shape: []int{ns, np, 3}}},
		map[string][]string{VarPoints: {DimState, DimPoint, DimXYH}},
		[]string{DimState, DimPoint})
}

// Calculate computes the waked flow at every point of the chunk. fdata must
// hold the completed farm propagation results (CT, K of every turbine).
func (m *PointWakesCalc) Calculate(a *Downwind, mdata, fdata, pdata *Data) (map[string]*Field, error) {
	ns, nt, np := fdata.NStates(), fdata.NTurbines(), pdata.NPoints()
	pts := pdata.Get(VarPoints)
	if pts == nil {
		return nil, fmt.Errorf(" foxes.PointWakesCalc: point data '%s' lacks %s", pdata.Name, VarPoints)
	}
	mws, mti := mdata.Get(VarWS), mdata.Get(VarTI)

	out := make(map[string]*Field)
	newf := func() *Field {
		return &Field{Vals: make([]float64, ns*np), Dims: []string{DimState, DimPoint}, shape: []int{ns, np}, stride: 1}
	}
	amb := map[string]*Field{VarWS: mws, VarTI: mti}
	for _, v := range m.OutputPointVars(a) {
		out[v] = newf()
	}

	// affected vars get superposed wakes; the rest stay ambient
	acc := make([]float64, np)
	for _, v := range m.OutputPointVars(a) {
		sup := a.superposition(v)
		af := amb[v]
		if af == nil {
			return nil, fmt.Errorf(" foxes.PointWakesCalc: no ambient source for variable '%s'", v)
		}
		for s := 0; s < ns; s++ {
			a0 := af.At(s)
			if sup == nil {
				for p := 0; p < np; p++ {
					out[v].Set2(s, p, a0)
				}
				continue
			}
			for p := range acc {
				acc[p] = 0.
			}
			for t := 0; t < nt; t++ {
				for _, wm := range a.Wakes {
					if wm.AffectsVar() != v {
						continue
					}
					for p := 0; p < np; p++ {
						pt := [3]float64{pts.At3(s, p, 0), pts.At3(s, p, 1), pts.At3(s, p, 2)}
						acc[p] = sup.Add(acc[p], wm.Delta(a, fdata, s, t, pt))
					}
				}
			}
			for p := 0; p < np; p++ {
				out[v].Set2(s, p, sup.Finalize(a0, acc[p]))
			}
		}
	}
	return out, nil
}

// CalcPoints runs the full farm propagation and then evaluates the waked
// flow at the given points, returning a (state, point) result set.
func (a *Downwind) CalcPoints(points [][3]float64) (*Results, error) {
	if err := a.Initialize(); err != nil {
		return nil, err
	}
	pm := &PointWakesCalc{Points: points}
	if err := pm.Initialize(a); err != nil {
		return nil, err
	}

	res := newResults(pm.OutputPointVars(a), a.States.Size(), len(points), DimPoint)
	res.T = a.States.T
	for _, c := range a.chunks() {
		mdata, fdata, err := a.buildChunk(c[0], c[1])
		if err != nil {
			return nil, err
		}
		if err := calcAmbient(a, mdata, fdata); err != nil {
			return nil, err
		}
		fw := &FarmWakesCalc{}
		if _, err := fw.Calculate(a, mdata, fdata); err != nil {
			return nil, err
		}
		pdata, err := pm.newPointData(a, c[0], c[1])
		if err != nil {
			return nil, err
		}
		out, err := pm.Calculate(a, mdata, fdata, pdata)
		if err != nil {
			return nil, err
		}
		res.set(out, c[0])
	}
	return res, nil
}
