package farm

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
)

// FromCsv reads a layout table of rows (label, x, y, h, d). With geographic
// set, x and y are taken as latitude and longitude and projected to UTM
// easting/northing; all turbines must fall in one UTM zone.
func FromCsv(fp string, geographic bool) (*Farm, error) {
	fl, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" farm.FromCsv: %v", err)
	}
	defer fl.Close()

	f := &Farm{Name: mmio.FileName(fp, false)}
	zone := 0
	for rec := range mmio.LoadCSV(io.Reader(fl), 1) {
		if len(rec) != 5 {
			return nil, fmt.Errorf(" farm.FromCsv: row of %d columns, expecting (label,x,y,h,d)", len(rec))
		}
		vs := make([]float64, 4)
		for i := range vs {
			if vs[i], err = strconv.ParseFloat(rec[i+1], 64); err != nil {
				return nil, fmt.Errorf(" farm.FromCsv: %v", err)
			}
		}
		x, y := vs[0], vs[1]
		if geographic {
			easting, northing, zn, _, err := UTM.FromLatLon(x, y, false)
			if err != nil {
				return nil, fmt.Errorf(" farm.FromCsv: turbine '%s': %v", rec[0], err)
			}
			if zone == 0 {
				zone = zn
			} else if zn != zone {
				return nil, fmt.Errorf(" farm.FromCsv: turbine '%s' falls in UTM zone %d, farm is in %d", rec[0], zn, zone)
			}
			x, y = easting, northing
		}
		f.Add(Turbine{Label: rec[0], X: x, Y: y, H: vs[2], D: vs[3]})
	}
	if f.Size() == 0 {
		return nil, fmt.Errorf(" farm.FromCsv: no turbines in %s", fp)
	}
	return f, nil
}

// SaveGob persists the layout.
func (f *Farm) SaveGob(fp string) error {
	fl, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" farm.SaveGob: %v", err)
	}
	defer fl.Close()
	if err := gob.NewEncoder(fl).Encode(f); err != nil {
		return fmt.Errorf(" farm.SaveGob: %v", err)
	}
	return nil
}

// LoadGob reads a layout persisted with SaveGob.
func LoadGob(fp string) (*Farm, error) {
	var f Farm
	fl, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" farm.LoadGob: %v", err)
	}
	defer fl.Close()
	if err := gob.NewDecoder(fl).Decode(&f); err != nil {
		return nil, fmt.Errorf(" farm.LoadGob: %v", err)
	}
	return &f, nil
}
