package dragsim

// ApsisPhase is the state of the apsis detector.
type ApsisPhase uint8

const (
	// Undetermined is the initial phase, until the radius changes for the first time.
	Undetermined ApsisPhase = iota
	// SeekingApoapsis is entered once the radius decreases (i.e. right after an apoapsis).
	// The next radius increase is a periapsis.
	SeekingApoapsis
	// SeekingPeriapsis is entered once the radius increases (i.e. right after a periapsis).
	// The next radius decrease is an apoapsis.
	SeekingPeriapsis
)

func (p ApsisPhase) String() string {
	switch p {
	case Undetermined:
		return "undetermined"
	case SeekingApoapsis:
		return "seekingApoapsis"
	case SeekingPeriapsis:
		return "seekingPeriapsis"
	}
	panic("cannot stringify unknown apsis phase")
}

// ApsisKind defines the kind of apsis which was passed.
type ApsisKind uint8

const (
	// Apoapsis is the point of maximum radius.
	Apoapsis ApsisKind = iota + 1
	// Periapsis is the point of minimum radius.
	Periapsis
)

func (k ApsisKind) String() string {
	switch k {
	case Apoapsis:
		return "apoapsis"
	case Periapsis:
		return "periapsis"
	}
	panic("cannot stringify unknown apsis kind")
}

// ApsisEvent is emitted when an apsis passage is detected.
type ApsisEvent struct {
	Kind           ApsisKind
	Radius         float64
	Altitude       float64
	Orbit          int     // Completed orbits when the apsis was passed (before any increment)
	ArgOfPeriapsis float64 // Only set for a Periapsis (radians)
	T              float64 // Simulation time of the step which detected the passage
}

// ApsisDetector classifies apsis passages from the trend of the radius.
type ApsisDetector struct {
	phase          ApsisPhase
	orbits         int
	argOfPeriapsis float64
}

// Phase returns the current phase.
func (d *ApsisDetector) Phase() ApsisPhase {
	return d.phase
}

// Orbits returns the number of completed orbits. It never decreases.
func (d *ApsisDetector) Orbits() int {
	return d.orbits
}

// ArgOfPeriapsis returns the true anomaly recorded at the last periapsis.
func (d *ApsisDetector) ArgOfPeriapsis() float64 {
	return d.argOfPeriapsis
}

// Update classifies the radius r of the latest step against the radius rPrev of the step
// before it. Only strict changes in the radius trend flip the phase. Returns a non nil
// event when an apsis was just passed. The returned event has no time set.
func (d *ApsisDetector) Update(r, rPrev, h, ν float64) *ApsisEvent {
	if d.phase == Undetermined {
		if r < rPrev {
			d.phase = SeekingApoapsis
		} else if r > rPrev {
			d.phase = SeekingPeriapsis
		}
		// This is the first trend, not a change of trend.
		return nil
	}
	switch {
	case d.phase == SeekingPeriapsis && r < rPrev:
		d.phase = SeekingApoapsis
		return &ApsisEvent{Kind: Apoapsis, Radius: r, Altitude: h, Orbit: d.orbits}
	case d.phase == SeekingApoapsis && r > rPrev:
		evt := &ApsisEvent{Kind: Periapsis, Radius: r, Altitude: h, Orbit: d.orbits, ArgOfPeriapsis: ν}
		d.phase = SeekingPeriapsis
		d.argOfPeriapsis = ν
		d.orbits++
		return evt
	}
	return nil
}
