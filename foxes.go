// Package foxes is a wind farm wake simulation engine. Given a set of
// ambient wind states (speed, direction, turbulence intensity, air density)
// and a farm layout, it computes per-turbine flow quantities (effective wind
// speed, power, thrust) by propagating upstream turbine wakes onto
// downstream rotors in downwind order, one chunk of states at a time.
package foxes

// dimension names of chunked data arrays
const (
	DimState   = "state"
	DimTurbine = "turbine"
	DimPoint   = "point"
	DimXYH     = "xyh"
)

// farm/state variable names
const (
	VarWS    = "WS"   // wind speed [m/s]
	VarWD    = "WD"   // wind direction, met. convention [deg]
	VarTI    = "TI"   // turbulence intensity [-]
	VarRho   = "RHO"  // air density [kg/m³]
	VarREWS  = "REWS" // rotor effective wind speed [m/s]
	VarP     = "P"    // power [kW]
	VarCT    = "CT"   // thrust coefficient [-]
	VarK     = "K"    // wake growth parameter [-]
	VarX     = "X"    // easting [m]
	VarY     = "Y"    // northing [m]
	VarH     = "H"    // hub height [m]
	VarD     = "D"    // rotor diameter [m]
	VarTXYH  = "TXYH" // composite turbine position (x, y, hub height)
	VarOrder = "ORDER"
)

// ambient (pre-wake) counterparts, set once per chunk before propagation
const (
	VarAmbWS   = "AMB_WS"
	VarAmbTI   = "AMB_TI"
	VarAmbREWS = "AMB_REWS"
	VarAmbP    = "AMB_P"
	VarAmbCT   = "AMB_CT"
)

// AmbVar returns the ambient counterpart of a wake-affected variable.
func AmbVar(v string) string { return "AMB_" + v }

// unionVars de-duplicates variable names preserving first occurrence.
func unionVars(vs ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, vv := range vs {
		for _, v := range vv {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
