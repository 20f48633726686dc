package dragsim

import "math"

// State is the kinematic state of the satellite in the body-centered frame.
type State struct {
	X, Y            float64 // Position (m)
	VX, VY          float64 // Velocity (m/s)
	R               float64 // Radius |(X, Y)|
	H               float64 // Altitude R - body radius
	TrueAnomaly     float64 // In [0, 2π)
	FlightPathAngle float64 // Diagnostic only
	T               float64 // Simulation time, always Step*dt
	Step            uint64
}

// Speed returns the norm of the velocity.
func (s State) Speed() float64 {
	return Speed(s.VX, s.VY)
}

// Forces is the output of the physical model for a given state.
type Forces struct {
	AX, AY  float64 // Net acceleration (m/s^2)
	Gravity float64 // Signed gravitational acceleration -GM/r^2
	Rho     float64 // Atmospheric density
	Q       float64 // Dynamic pressure
	Speed   float64
}

// Accel returns the norm of the net acceleration.
func (f Forces) Accel() float64 {
	return norm(f.AX, f.AY)
}

// Derive computes the accelerations acting on the satellite. It does not modify the state.
// The gravity direction is taken from the true anomaly, which is computed from the same
// origin as the radius.
func Derive(s State, c Config) (f Forces) {
	f.Gravity = -c.Body.GM() / (s.R * s.R)
	f.Rho = Density(s.H, c.Body.Atmosphere)
	f.Speed = s.Speed()
	f.Q = DynamicPressure(f.Rho, f.Speed)

	var dx, dy float64
	if f.Speed > 0 {
		drag := -f.Q * c.SC.Cd * c.SC.Area
		dx = drag * s.VX / f.Speed
		dy = drag * s.VY / f.Speed
	}
	sinν, cosν := math.Sincos(s.TrueAnomaly)
	f.AX = f.Gravity*cosν + dx/c.SC.Mass
	f.AY = f.Gravity*sinν + dy/c.SC.Mass
	return
}

// Density returns the density of the atmosphere at altitude h. Very high altitudes
// underflow to zero and negative altitudes are allowed.
func Density(h float64, atm Atmosphere) float64 {
	return atm.Rho0 * math.Exp(-atm.K*h)
}

// Speed returns the norm of a velocity.
func Speed(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

// DynamicPressure returns q = ρv²/2.
func DynamicPressure(rho, v float64) float64 {
	return 0.5 * rho * v * v
}

// TrueAnomaly returns the angle of the position from the +x axis in [0, 2π).
func TrueAnomaly(x, y float64) float64 {
	return wrap2π(math.Atan2(y, x))
}

// FlightPathAngle returns the angle between the velocity and the local prograde horizontal,
// measured clockwise: zero on a circular prograde orbit, negative while climbing.
func FlightPathAngle(vx, vy, ν float64) float64 {
	return math.Atan2(vy, vx) - ν - math.Pi/2
}

// SpecificEnergy returns the specific mechanical energy ξ = v²/2 - μ/r.
func SpecificEnergy(s State, μ float64) float64 {
	v := s.Speed()
	return v*v/2 - μ/s.R
}
