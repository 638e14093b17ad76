// Package farm describes the wind farm layout: turbine positions, hub
// heights and rotor diameters, with builders for common layouts.
package farm

import "fmt"

// Turbine is one farm member.
type Turbine struct {
	Label string
	X, Y  float64 // easting, northing [m]
	H     float64 // hub height [m]
	D     float64 // rotor diameter [m]
}

// Farm is an ordered turbine collection; turbine index is the position in
// Turbines.
type Farm struct {
	Name     string
	Turbines []Turbine
}

// Size returns the number of turbines.
func (f *Farm) Size() int { return len(f.Turbines) }

// Add appends turbines to the farm.
func (f *Farm) Add(ts ...Turbine) { f.Turbines = append(f.Turbines, ts...) }

// AddRow appends n turbines along a fixed step vector from a base point,
// all with the same hub height and rotor diameter.
func (f *Farm) AddRow(x0, y0, dx, dy, h, d float64, n int) {
	for i := 0; i < n; i++ {
		f.Add(Turbine{
			Label: fmt.Sprintf("%s_r%d", f.Name, f.Size()),
			X:     x0 + float64(i)*dx,
			Y:     y0 + float64(i)*dy,
			H:     h,
			D:     d,
		})
	}
}

// AddGrid appends an nx × ny regular grid of identical turbines.
func (f *Farm) AddGrid(x0, y0, dx, dy, h, d float64, nx, ny int) {
	for j := 0; j < ny; j++ {
		f.AddRow(x0, y0+float64(j)*dy, dx, 0., h, d, nx)
	}
}
