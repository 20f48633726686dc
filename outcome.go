package dragsim

import "fmt"

// OutcomeKind defines how a simulation ended, if it did.
type OutcomeKind uint8

const (
	// Running means no termination condition was met.
	Running OutcomeKind = iota
	// MaxOrbitsReached means the configured number of orbits was exceeded.
	MaxOrbitsReached
	// Impacted means the satellite went below the body surface.
	Impacted
	// Escaped means the satellite left the sphere of influence.
	Escaped
)

func (k OutcomeKind) String() string {
	switch k {
	case Running:
		return "running"
	case MaxOrbitsReached:
		return "max orbits reached"
	case Impacted:
		return "impact"
	case Escaped:
		return "escape"
	}
	panic("cannot stringify unknown outcome")
}

// Outcome is the termination outcome of a step.
type Outcome struct {
	Kind  OutcomeKind
	Speed float64 // Only set for Impacted and Escaped (m/s)
}

// Done returns whether this outcome stops the simulation.
func (o Outcome) Done() bool {
	return o.Kind != Running
}

func (o Outcome) String() string {
	switch o.Kind {
	case Impacted, Escaped:
		return fmt.Sprintf("%s (speed %.2f m/s)", o.Kind, o.Speed)
	default:
		return o.Kind.String()
	}
}

// terminate evaluates the termination conditions in priority order: orbit cap, impact,
// then escape.
func terminate(orbits, maxOrbits int, r, radius, soi, v float64) Outcome {
	switch {
	case orbits > maxOrbits:
		return Outcome{Kind: MaxOrbitsReached}
	case r < radius:
		return Outcome{Kind: Impacted, Speed: v}
	case r > soi:
		return Outcome{Kind: Escaped, Speed: v}
	}
	return Outcome{Kind: Running}
}
