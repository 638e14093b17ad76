package postpro

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maseology/mmio"
	mmplt "github.com/maseology/mmPlot"
	"github.com/maseology/objfunc"

	foxes "github.com/kyleniemeyer/foxes"
)

// Scores compares an observed farm power series to a simulation.
type Scores struct {
	KGE, NSE, RMSE, Bias float64
}

// LoadObserved reads a two column (date, farm power [kW]) csv file.
func LoadObserved(fp string) ([]time.Time, []float64, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, nil, fmt.Errorf(" postpro.LoadObserved: %v", err)
	}
	defer f.Close()

	var dt []time.Time
	var p []float64
	ln := 0
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		ln++
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf(" postpro.LoadObserved: %s line %d: expecting 2 columns, found %d", fp, ln, len(rec))
		}
		t, err := time.Parse("2006-01-02 15:04", rec[0])
		if err != nil {
			if t, err = time.Parse("2006-01-02", rec[0]); err != nil {
				return nil, nil, fmt.Errorf(" postpro.LoadObserved: %s line %d: %v", fp, ln, err)
			}
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf(" postpro.LoadObserved: %s line %d: %v", fp, ln, err)
		}
		dt = append(dt, t)
		p = append(p, v)
	}
	return dt, p, nil
}

// Validate scores simulated farm power against an observed series, pairing
// states by timestamp. png, when non-empty, names an observed-simulated
// plot to write.
func Validate(r *foxes.Results, dt []time.Time, obs []float64, png string) (*Scores, error) {
	if len(r.T) == 0 {
		return nil, fmt.Errorf(" postpro.Validate: results carry no timestamps")
	}
	sim := r.FarmPowerSeries()
	tx := make(map[time.Time]float64, len(r.T))
	for i, t := range r.T {
		tx[t] = sim[i]
	}
	var o, s []float64
	for i, t := range dt {
		if v, ok := tx[t]; ok {
			o = append(o, obs[i])
			s = append(s, v)
		}
	}
	if len(o) == 0 {
		return nil, fmt.Errorf(" postpro.Validate: no overlapping timestamps")
	}
	if png != "" {
		mmplt.ObsSim(png, o, s)
	}
	return &Scores{
		KGE:  objfunc.KGE(o, s),
		NSE:  objfunc.NSE(o, s),
		RMSE: objfunc.RMSE(o, s),
		Bias: objfunc.Bias(o, s),
	}, nil
}

func (s *Scores) Print() {
	fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", s.KGE, s.NSE, s.RMSE, s.Bias)
}
