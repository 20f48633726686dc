package main

import (
	"os"

	"github.com/ChristopherRabotin/dragsim"
	kitlog "github.com/go-kit/kit/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// This command reads a scenario (file and/or flags), runs it to completion and logs the
// apsis passages and the final outcome.

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file (optional)")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
	flag.String("body", "earth", "central body: sun, earth or mars")
	flag.Float64("altitude", 400000, "initial altitude (m)")
	flag.Float64("speed", 7600, "initial tangential speed (m/s)")
	flag.Float64("step", 1, "time step (s)")
	flag.Int("orbits", 100, "maximum number of orbits")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))

	v := viper.New()
	dragsim.SetScenarioDefaults(v)
	for key, name := range map[string]string{
		"body.name":      "body",
		"orbit.altitude": "altitude",
		"orbit.speed":    "speed",
		"mission.step":   "step",
		"mission.orbits": "orbits",
	} {
		if err := v.BindPFlag(key, flag.Lookup(name)); err != nil {
			fatal(logger, err)
		}
	}
	if scenario != "" {
		v.SetConfigFile(scenario)
		if err := v.ReadInConfig(); err != nil {
			fatal(logger, err)
		}
	}

	conf, err := dragsim.ScenarioFromViper(v)
	if err != nil {
		fatal(logger, err)
	}
	logger = kitlog.With(logger, "sim", conf.Body.Name)
	if verbose {
		logger.Log("level", "debug", "subsys", "conf", "config", conf, "soi(km)", conf.Body.SOI()/1e3)
	}
	logger.Log("level", "info", "subsys", "astro", "start(km)", conf.R0/1e3)

	it, err := dragsim.New(conf, logger)
	if err != nil {
		fatal(logger, err)
	}
	samples, events, outcome := it.Run()
	logger.Log("level", "notice", "subsys", "astro", "samples", len(samples), "apsides", len(events), "outcome", outcome, "maxAcc(G)", it.MaxAccelG())
}

func fatal(logger kitlog.Logger, err error) {
	logger.Log("level", "critical", "subsys", "conf", "err", err)
	os.Exit(1)
}
