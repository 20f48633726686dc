package dragsim

import "math"

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// norm returns the Euclidean norm of a planar vector.
func norm(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// wrap2π maps an angle returned by atan2 into [0, 2π).
func wrap2π(a float64) float64 {
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		// -ε + 2π rounds to 2π.
		a = 0
	}
	return a
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}
