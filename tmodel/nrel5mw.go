package tmodel

// NREL5MW returns the built-in P-ct curve of the NREL 5 MW reference
// turbine (D 126 m, hub 90 m), coarse 1 m/s sampling between cut-in and
// cut-out. Power in kW at 1.225 kg/m³.
func NREL5MW() *PCtCurve {
	return &PCtCurve{
		Label:  "NREL5MW",
		RhoRef: 1.225,
		WS: []float64{
			3., 4., 5., 6., 7., 8., 9., 10., 11., 12., 13.,
			14., 15., 16., 17., 18., 19., 20., 21., 22., 23., 24., 25.,
		},
		P: []float64{
			41., 177., 404., 738., 1187., 1771., 2518., 3448., 4562., 5000., 5000.,
			5000., 5000., 5000., 5000., 5000., 5000., 5000., 5000., 5000., 5000., 5000., 5000.,
		},
		CT: []float64{
			0.923, 0.919, 0.904, 0.858, 0.814, 0.811, 0.814, 0.817, 0.778, 0.613, 0.473,
			0.378, 0.310, 0.259, 0.219, 0.188, 0.162, 0.142, 0.125, 0.111, 0.099, 0.089, 0.081,
		},
	}
}
