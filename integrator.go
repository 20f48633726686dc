package dragsim

import (
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
)

// Lifecycle is the state of an Integrator.
type Lifecycle uint8

const (
	// Initializing lasts until the radius trend is known.
	Initializing Lifecycle = iota
	// Orbiting is the nominal state.
	Orbiting
	// StoppedImpact is terminal: the satellite hit the surface.
	StoppedImpact
	// StoppedEscape is terminal: the satellite left the sphere of influence.
	StoppedEscape
	// StoppedMaxOrbits is terminal: enough orbits were completed.
	StoppedMaxOrbits
)

func (l Lifecycle) String() string {
	switch l {
	case Initializing:
		return "initializing"
	case Orbiting:
		return "orbiting"
	case StoppedImpact:
		return "impacted"
	case StoppedEscape:
		return "escaped"
	case StoppedMaxOrbits:
		return "max orbits reached"
	}
	panic("cannot stringify unknown lifecycle")
}

// Sample is one recorded point of the trajectory.
type Sample struct {
	T               float64 // s
	X, Y            float64 // m
	H               float64 // Altitude (m)
	Speed           float64 // m/s
	AccelG          float64 // Acceleration in units of the body surface gravity
	DynamicPressure float64 // Pa
	TrueAnomalyDeg  float64
}

// Integrator propagates a satellite with a fixed step semi-implicit Euler scheme.
// It is not safe for concurrent use.
type Integrator struct {
	conf      Config
	soi, g0   float64
	state     State
	rPrev     float64
	apsis     ApsisDetector
	outcome   Outcome
	samples   []Sample
	events    []ApsisEvent
	maxAccelG float64
	logger    kitlog.Logger
}

// New returns a new Integrator for the provided configuration. The satellite starts on the
// +x axis with a velocity along +y. A nil logger disables logging.
func New(c Config, logger kitlog.Logger) (*Integrator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	it := &Integrator{conf: c, soi: c.Body.SOI(), g0: c.Body.SurfaceGravity(), logger: logger}
	it.state = State{X: c.R0, VY: c.V0, R: c.R0, H: c.R0 - c.Body.Radius}
	it.state.FlightPathAngle = FlightPathAngle(0, c.V0, 0)
	it.rPrev = c.R0
	return it, nil
}

// Config returns the configuration of this integrator.
func (it *Integrator) Config() Config {
	return it.conf
}

// SOI returns the radius of the sphere of influence used for the escape check.
func (it *Integrator) SOI() float64 {
	return it.soi
}

// State returns a copy of the current kinematic state.
func (it *Integrator) State() State {
	return it.state
}

// Phase returns the current apsis phase.
func (it *Integrator) Phase() ApsisPhase {
	return it.apsis.Phase()
}

// Orbits returns the number of completed orbits.
func (it *Integrator) Orbits() int {
	return it.apsis.Orbits()
}

// Outcome returns the latest termination outcome.
func (it *Integrator) Outcome() Outcome {
	return it.outcome
}

// MaxAccelG returns the largest acceleration recorded so far, in units of surface gravity.
func (it *Integrator) MaxAccelG() float64 {
	return it.maxAccelG
}

// Samples returns a copy of the recorded samples.
func (it *Integrator) Samples() []Sample {
	return append([]Sample(nil), it.samples...)
}

// Events returns a copy of the detected apsis events.
func (it *Integrator) Events() []ApsisEvent {
	return append([]ApsisEvent(nil), it.events...)
}

// Lifecycle returns the state of the integrator.
func (it *Integrator) Lifecycle() Lifecycle {
	switch it.outcome.Kind {
	case Impacted:
		return StoppedImpact
	case Escaped:
		return StoppedEscape
	case MaxOrbitsReached:
		return StoppedMaxOrbits
	}
	if it.apsis.Phase() == Undetermined {
		return Initializing
	}
	return Orbiting
}

// Step advances the simulation by exactly one time step. The returned sample is nil if the
// step ended the simulation. Once the outcome is terminal, Step only returns that outcome.
func (it *Integrator) Step() (*Sample, Outcome, *ApsisEvent) {
	if it.outcome.Done() {
		return nil, it.outcome, nil
	}
	s := &it.state

	// Apsis classification on the trend of the last two steps.
	evt := it.apsis.Update(s.R, it.rPrev, s.H, s.TrueAnomaly)
	if evt != nil {
		evt.T = s.T
		it.events = append(it.events, *evt)
		it.logEvent(*evt)
	}

	it.outcome = terminate(it.apsis.Orbits(), it.conf.MaxOrbits, s.R, it.conf.Body.Radius, it.soi, s.Speed())
	if it.outcome.Done() {
		it.logOutcome()
		return nil, it.outcome, evt
	}

	f := Derive(*s, it.conf)
	dt := it.conf.Step
	// Velocity first, then position from the updated velocity.
	s.VX += f.AX * dt
	s.VY += f.AY * dt
	s.X += s.VX * dt
	s.Y += s.VY * dt

	it.rPrev = s.R
	s.R = norm(s.X, s.Y)
	s.H = s.R - it.conf.Body.Radius
	s.TrueAnomaly = TrueAnomaly(s.X, s.Y)
	s.FlightPathAngle = FlightPathAngle(s.VX, s.VY, s.TrueAnomaly)

	sample := Sample{
		T:               float64(s.Step) * dt,
		X:               s.X,
		Y:               s.Y,
		H:               s.H,
		Speed:           f.Speed,
		AccelG:          f.Accel() / it.g0,
		DynamicPressure: f.Q,
		TrueAnomalyDeg:  Rad2deg(s.TrueAnomaly),
	}
	s.Step++
	s.T = float64(s.Step) * dt

	if sample.AccelG > it.maxAccelG {
		it.maxAccelG = sample.AccelG
	}
	it.samples = append(it.samples, sample)
	return &sample, it.outcome, evt
}

// Run steps until a termination condition is met. It will not return if the configuration
// never impacts, escapes, or completes its orbits.
func (it *Integrator) Run() ([]Sample, []ApsisEvent, Outcome) {
	it.LogStatus()
	for {
		if _, outcome, _ := it.Step(); outcome.Done() {
			break
		}
	}
	it.LogStatus()
	return it.Samples(), it.Events(), it.outcome
}

// LogStatus logs the current state of the propagation.
func (it *Integrator) LogStatus() {
	s := it.state
	it.logger.Log("level", "info", "subsys", "astro", "t(s)", s.T, "r(km)", s.R/1e3, "h(km)", s.H/1e3, "v(m/s)", s.Speed(), "ν(deg)", Rad2deg(s.TrueAnomaly), "ξ", SpecificEnergy(s, it.conf.Body.GM()), "orbits", it.apsis.Orbits())
}

func (it *Integrator) logEvent(evt ApsisEvent) {
	kv := []interface{}{"level", "info", "subsys", "apsis", "orbit", evt.Orbit, "kind", evt.Kind, "r(km)", evt.Radius / 1e3, "h(km)", evt.Altitude / 1e3}
	if evt.Kind == Periapsis {
		kv = append(kv, "ω(deg)", Rad2deg(evt.ArgOfPeriapsis))
	}
	it.logger.Log(append(kv, it.dateKV(evt.T)...)...)
}

func (it *Integrator) logOutcome() {
	kv := []interface{}{"subsys", "astro", "status", "finished", "outcome", it.outcome.Kind, "orbits", it.apsis.Orbits(), "maxAcc(G)", it.maxAccelG}
	switch it.outcome.Kind {
	case MaxOrbitsReached:
		kv = append([]interface{}{"level", "notice"}, kv...)
	default:
		kv = append([]interface{}{"level", "critical"}, append(kv, "v(m/s)", it.outcome.Speed)...)
	}
	it.logger.Log(append(kv, it.dateKV(it.state.T)...)...)
}

// dateKV returns the date of simulation time t if an epoch is configured.
func (it *Integrator) dateKV(t float64) []interface{} {
	if it.conf.Epoch.IsZero() {
		return []interface{}{"t(s)", t}
	}
	dt := it.conf.Epoch.Add(time.Duration(t * float64(time.Second)))
	return []interface{}{"t(s)", t, "dt", dt.UTC(), "jde", julian.TimeToJD(dt)}
}
