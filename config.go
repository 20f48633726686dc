package dragsim

import (
	"fmt"
	"math"
	"time"
)

// Spacecraft defines the drag-relevant properties of the satellite.
type Spacecraft struct {
	Mass float64 // kg
	Area float64 // Cross section area (m^2)
	Cd   float64 // Aerodynamic drag coefficient
}

// Dragon is the SpaceX Dragon capsule: 4200 kg and 3.7 m diameter.
var Dragon = Spacecraft{Mass: 4200, Area: math.Pi * 1.85 * 1.85, Cd: 0.65}

// Config is the immutable configuration of a simulation.
type Config struct {
	Body      Body
	SC        Spacecraft
	R0        float64   // Initial orbital radius (m), along +x
	V0        float64   // Initial tangential speed (m/s), along +y
	Step      float64   // Time step (s)
	MaxOrbits int       // Number of completed orbits after which the simulation stops
	Epoch     time.Time // Optional, only used to date logged events
}

// NewConfig returns a configuration starting at the given altitude above the body.
func NewConfig(body Body, sc Spacecraft, altitude, speed, step float64, maxOrbits int) Config {
	return Config{Body: body, SC: sc, R0: body.Radius + altitude, V0: speed, Step: step, MaxOrbits: maxOrbits}
}

// Altitude returns the initial altitude.
func (c Config) Altitude() float64 {
	return c.R0 - c.Body.Radius
}

// Validate returns an *InvalidConfigError if a physical parameter is out of range.
func (c Config) Validate() error {
	switch {
	case !(c.Step > 0):
		return &InvalidConfigError{"step", c.Step}
	case !(c.Body.Radius > 0):
		return &InvalidConfigError{"body.radius", c.Body.Radius}
	case !(c.Body.Mass > 0):
		return &InvalidConfigError{"body.mass", c.Body.Mass}
	case !(c.SC.Mass > 0):
		return &InvalidConfigError{"spacecraft.mass", c.SC.Mass}
	case !(c.SC.Area >= 0):
		return &InvalidConfigError{"spacecraft.area", c.SC.Area}
	case !(c.SC.Cd >= 0):
		return &InvalidConfigError{"spacecraft.cd", c.SC.Cd}
	case !(c.R0 > 0) || math.IsInf(c.R0, 1):
		return &InvalidConfigError{"orbit.radius", c.R0}
	case math.IsNaN(c.V0) || math.IsInf(c.V0, 0):
		return &InvalidConfigError{"orbit.speed", c.V0}
	}
	return nil
}

// String implements the Stringer interface.
func (c Config) String() string {
	return fmt.Sprintf("%s h0=%.1f km v0=%.2f m/s dt=%gs m=%.1f kg A=%.3f m² Cd=%.2f", c.Body, c.Altitude()/1e3, c.V0, c.Step, c.SC.Mass, c.SC.Area, c.SC.Cd)
}

// InvalidConfigError is returned when a configuration parameter is not physical.
type InvalidConfigError struct {
	Field string
	Value float64
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%g", e.Field, e.Value)
}
