package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/maseology/mmio"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	foxes "github.com/kyleniemeyer/foxes"
	"github.com/kyleniemeyer/foxes/farm"
	"github.com/kyleniemeyer/foxes/postpro"
	_ "github.com/kyleniemeyer/foxes/rotor"
	"github.com/kyleniemeyer/foxes/states"
	_ "github.com/kyleniemeyer/foxes/tmodel"
	_ "github.com/kyleniemeyer/foxes/wake"
)

func main() {
	cfgfp := flag.String("c", "foxes.ini", "run configuration file")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	cfg, err := ini.Load(*cfgfp)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// farm
	var frm *farm.Farm
	if fp := cfg.Section("farm").Key("csv").String(); fp != "" {
		geo := cfg.Section("farm").Key("geographic").MustBool(false)
		if frm, err = farm.FromCsv(fp, geo); err != nil {
			log.Fatalf("farm: %v", err)
		}
	} else {
		s := cfg.Section("farm")
		frm = &farm.Farm{Name: mmio.FileName(*cfgfp, false)}
		frm.AddGrid(0., 0.,
			s.Key("dx").MustFloat64(800.), s.Key("dy").MustFloat64(800.),
			s.Key("h").MustFloat64(90.), s.Key("d").MustFloat64(126.),
			s.Key("cols").MustInt(5), s.Key("rows").MustInt(1))
	}
	log.Infof("farm '%s': %d turbines", frm.Name, frm.Size())

	// ambient states
	var sts *states.States
	if fp := cfg.Section("states").Key("csv").String(); fp != "" {
		if sts, err = states.FromCsv(fp); err != nil {
			log.Fatalf("states: %v", err)
		}
	} else {
		s := cfg.Section("states")
		sts = states.ScanWD(s.Key("scan").MustInt(36),
			s.Key("ws").MustFloat64(9.), s.Key("ti").MustFloat64(.08), s.Key("rho").MustFloat64(1.225))
	}
	log.Infof("%d ambient states", sts.Size())
	tt.Print("input load complete")

	// models
	m := cfg.Section("models")
	rotor, err := foxes.NewRotor(m.Key("rotor").MustString("centre"))
	if err != nil {
		log.Fatalf("models: %v", err)
	}
	ctrl, err := foxes.NewController(splitList(m.Key("turbines").MustString("NREL5MW"))...)
	if err != nil {
		log.Fatalf("models: %v", err)
	}
	var wakes []foxes.WakeModel
	for _, n := range splitList(m.Key("wakes").MustString("Jensen_linear")) {
		wm, err := foxes.NewWake(n)
		if err != nil {
			log.Fatalf("models: %v", err)
		}
		wakes = append(wakes, wm)
	}

	algo := foxes.New(frm, sts, rotor, ctrl, wakes...)
	r := cfg.Section("run")
	algo.ChunkSize = r.Key("chunksize").MustInt(500)
	algo.Verbose = r.Key("verbose").MustBool(true)
	if err := algo.Initialize(); err != nil {
		log.Fatalf("initialize: %v", err)
	}

	// run
	var res *foxes.Results
	if r.Key("serial").MustBool(false) {
		res, err = algo.CalcSerial()
	} else {
		res, err = algo.Calc()
	}
	if err != nil {
		log.Fatalf("calc: %v", err)
	}
	tt.Print("farm calculation complete")

	if fp := r.Key("outcsv").String(); fp != "" {
		if err := res.WriteCsv(fp, foxes.VarP); err != nil {
			log.Fatalf("output: %v", err)
		}
		log.Infof("farm power written to %s", fp)
	}

	sum, err := postpro.Summarize(res, r.Key("ratedkw").MustFloat64(0.))
	if err != nil {
		log.Fatalf("summary: %v", err)
	}
	sum.Print()

	if fp := r.Key("obscsv").String(); fp != "" {
		dt, obs, err := postpro.LoadObserved(fp)
		if err != nil {
			log.Fatalf("validation: %v", err)
		}
		sc, err := postpro.Validate(res, dt, obs, r.Key("obspng").String())
		if err != nil {
			log.Fatalf("validation: %v", err)
		}
		sc.Print()
	}
}

func splitList(s string) []string {
	var o []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			o = append(o, v)
		}
	}
	return o
}
