package foxes

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

// SaveGob persists a full run's results.
func (r *Results) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" foxes.Results.SaveGob: %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(r); err != nil {
		return fmt.Errorf(" foxes.Results.SaveGob: %v", err)
	}
	return nil
}

// LoadGobResults reads results persisted with SaveGob.
func LoadGobResults(fp string) (*Results, error) {
	var r Results
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" foxes.LoadGobResults: %v", err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf(" foxes.LoadGobResults: %v", err)
	}
	return &r, nil
}

// WriteCsv writes one output variable as a state × column table, dated
// rows when the states carry timestamps.
func (r *Results) WriteCsv(fp, v string) error {
	d, ok := r.D[v]
	if !ok {
		return fmt.Errorf(" foxes.Results.WriteCsv: unknown variable '%s'", v)
	}

	cols := ""
	for t := 0; t < r.NCols; t++ {
		cols += fmt.Sprintf(",%s%d", r.ColDim[:1], t)
	}

	if len(r.T) == r.NStates {
		cc := make([][]float64, r.NCols)
		for t := 0; t < r.NCols; t++ {
			cc[t] = r.Col(v, t)
		}
		mmio.WriteCsvDateFloats(fp, "date"+cols, r.T, cc...)
		return nil
	}

	lns := make([]string, r.NStates+1)
	lns[0] = "state" + cols
	for s := 0; s < r.NStates; s++ {
		ln := fmt.Sprint(s)
		for t := 0; t < r.NCols; t++ {
			ln += fmt.Sprintf(",%f", d[s*r.NCols+t])
		}
		lns[s+1] = ln
	}
	if err := mmio.WriteLines(fp, lns); err != nil {
		return fmt.Errorf(" foxes.Results.WriteCsv: %v", err)
	}
	return nil
}
