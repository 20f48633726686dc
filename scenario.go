package dragsim

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// SetScenarioDefaults sets the defaults of a scenario: the Dragon capsule on a 400 km
// Earth orbit at 7600 m/s, integrated every second for up to a hundred orbits.
func SetScenarioDefaults(v *viper.Viper) {
	v.SetDefault("body.name", "earth")
	v.SetDefault("spacecraft.mass", Dragon.Mass)
	v.SetDefault("spacecraft.cd", Dragon.Cd)
	v.SetDefault("orbit.altitude", 400000.)
	v.SetDefault("orbit.speed", 7600.)
	v.SetDefault("mission.step", 1.)
	v.SetDefault("mission.orbits", 100)
}

// LoadScenario reads the scenario file (TOML, or any format viper supports) at path.
func LoadScenario(path string) (Config, error) {
	v := viper.New()
	SetScenarioDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	conf, err := ScenarioFromViper(v)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// ScenarioFromViper builds and validates a configuration from an already loaded viper
// instance. The spacecraft area may be given directly or through its diameter, and the
// orbit through either its altitude or its radius.
func ScenarioFromViper(v *viper.Viper) (Config, error) {
	body, err := BodyFromString(v.GetString("body.name"))
	if err != nil {
		return Config{}, err
	}
	sc := Spacecraft{Mass: v.GetFloat64("spacecraft.mass"), Cd: v.GetFloat64("spacecraft.cd")}
	switch {
	case v.IsSet("spacecraft.area"):
		sc.Area = v.GetFloat64("spacecraft.area")
	case v.IsSet("spacecraft.diameter"):
		d := v.GetFloat64("spacecraft.diameter")
		sc.Area = math.Pi * d * d / 4
	default:
		sc.Area = Dragon.Area
	}

	conf := NewConfig(body, sc, v.GetFloat64("orbit.altitude"), v.GetFloat64("orbit.speed"), v.GetFloat64("mission.step"), v.GetInt("mission.orbits"))
	if v.IsSet("orbit.radius") {
		conf.R0 = v.GetFloat64("orbit.radius")
	}
	if v.IsSet("mission.epoch") {
		conf.Epoch = readJDEorTime(v, "mission.epoch")
	}
	return conf, conf.Validate()
}

// readJDEorTime reads a date which is either a Julian date or a time.
func readJDEorTime(v *viper.Viper, key string) (dt time.Time) {
	jde := v.GetFloat64(key)
	if jde == 0 {
		dt = v.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return dt.UTC()
}
