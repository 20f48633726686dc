package dragsim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// G is the gravitational constant in m^3/(kg s^2).
	G = 6.67e-11
)

// ErrUnknownBody is returned when a body name cannot be resolved.
var ErrUnknownBody = errors.New("unknown celestial body")

// Atmosphere defines an exponential atmosphere: ρ(h) = Rho0 * exp(-K*h).
type Atmosphere struct {
	Rho0 float64 // Density at the surface (kg/m^3)
	K    float64 // Inverse of the scale height (1/m)
}

// Body defines a central body. All units are SI.
type Body struct {
	Name           string
	Radius         float64 // m
	Mass           float64 // kg
	ParentDistance float64 // Distance to its own primary (m), zero if none
	Atmosphere     Atmosphere
}

// GM returns the gravitational parameter μ.
func (b Body) GM() float64 {
	return G * b.Mass
}

// SOI returns the radius of the sphere of influence with respect to the Sun.
// A body without a primary has an infinite sphere of influence.
func (b Body) SOI() float64 {
	if b.ParentDistance <= 0 {
		return math.Inf(1)
	}
	return b.ParentDistance * math.Pow(b.Mass/Sun.Mass, 2/5.)
}

// SurfaceGravity returns the normalization factor used for the acceleration column of
// the samples, sqrt(GM/R^2).
func (b Body) SurfaceGravity() float64 {
	return math.Sqrt(b.GM() / (b.Radius * b.Radius))
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	default:
		return Body{}, fmt.Errorf("%w '%s'", ErrUnknownBody, name)
	}
}

/* Definitions */

// Sun is the primary of every other body here, and has no atmosphere worth modeling.
var Sun = Body{Name: "Sun", Radius: 696000000, Mass: 1.989e30}

// Earth is home.
// Atmosphere from https://physics.stackexchange.com/questions/121809/why-e-in-the-formula-for-air-density
var Earth = Body{"Earth", 6378000, 5.976e24, 149.6e9, Atmosphere{1.1225, 0.0001}}

// Mars is the vacation place.
// Atmosphere from https://www.grc.nasa.gov/www/k-12/airplane/atmosmrm.html
var Mars = Body{"Mars", 3396200, 6.4171e23, 227.92e9, Atmosphere{0.014517, 0.000073385}}
