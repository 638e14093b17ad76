package states

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maseology/mmio"
)

// FromCsv reads an ambient-state table. Rows are either
// (date, ws, wd, ti, rho) with ISO dates or (ws, wd, ti, rho).
func FromCsv(fp string) (*States, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" states.FromCsv: %v", err)
	}
	defer f.Close()

	s := &States{}
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		j := 0
		if len(rec) == 5 {
			dt, err := time.Parse("2006-01-02 15:04", rec[0])
			if err != nil {
				if dt, err = time.Parse("2006-01-02", rec[0]); err != nil {
					return nil, fmt.Errorf(" states.FromCsv: %v", err)
				}
			}
			s.T = append(s.T, dt)
			j = 1
		} else if len(rec) != 4 {
			return nil, fmt.Errorf(" states.FromCsv: row of %d columns, expecting 4 or 5", len(rec))
		}
		vs := make([]float64, 4)
		for i := range vs {
			if vs[i], err = strconv.ParseFloat(rec[j+i], 64); err != nil {
				return nil, fmt.Errorf(" states.FromCsv: %v", err)
			}
		}
		s.WS = append(s.WS, vs[0])
		s.WD = append(s.WD, vs[1])
		s.TI = append(s.TI, vs[2])
		s.Rho = append(s.Rho, vs[3])
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveGob persists the state set.
func (s *States) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" states.SaveGob: %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" states.SaveGob: %v", err)
	}
	return nil
}

// LoadGob reads a state set persisted with SaveGob.
func LoadGob(fp string) (*States, error) {
	var s States
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" states.LoadGob: %v", err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf(" states.LoadGob: %v", err)
	}
	return &s, nil
}
