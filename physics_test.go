package dragsim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// testBody has a GM of exactly 1.0005e6 and a constant density atmosphere.
var testBody = Body{Name: "Test", Radius: 500, Mass: 1.5e16, Atmosphere: Atmosphere{Rho0: 1.2, K: 0}}

func TestDeriveHandComputed(t *testing.T) {
	c := Config{Body: testBody, SC: Spacecraft{Mass: 10, Area: 2, Cd: 0.5}, Step: 1}
	// Satellite on the +y axis moving towards -x.
	s := State{X: 0, Y: 1000, VX: -100, VY: 0, R: 1000, H: 500, TrueAnomaly: math.Pi / 2}
	sInit := s
	f := Derive(s, c)
	if s != sInit {
		t.Fatal("Derive modified the state")
	}
	for _, exp := range []struct {
		name     string
		val, exp float64
	}{
		{"gravity", f.Gravity, -1.0005},
		{"rho", f.Rho, 1.2},
		{"speed", f.Speed, 100},
		{"q", f.Q, 6000},
		// Drag of 6000 N opposes the motion, i.e. along +x, on 10 kg.
		{"ax", f.AX, 600},
		{"ay", f.AY, -1.0005},
	} {
		if !scalar.EqualWithinAbs(exp.val, exp.exp, 1e-9) {
			t.Fatalf("%s=%.12f expected %.12f", exp.name, exp.val, exp.exp)
		}
	}
	if !scalar.EqualWithinAbs(f.Accel(), math.Hypot(600, 1.0005), 1e-9) {
		t.Fatalf("|a|=%f", f.Accel())
	}
}

func TestDeriveZeroSpeed(t *testing.T) {
	c := Config{Body: testBody, SC: Spacecraft{Mass: 10, Area: 2, Cd: 0.5}, Step: 1}
	s := State{X: 1000, R: 1000, H: 500}
	f := Derive(s, c)
	if f.Speed != 0 || f.Q != 0 {
		t.Fatalf("expected no speed and no dynamic pressure: %+v", f)
	}
	if math.IsNaN(f.AX) || math.IsNaN(f.AY) {
		t.Fatalf("NaN acceleration at zero speed: %+v", f)
	}
	if !scalar.EqualWithinAbs(f.AX, -1.0005, 1e-12) || f.AY != 0 {
		t.Fatalf("expected pure gravity, got (%f, %f)", f.AX, f.AY)
	}
}

func TestDensity(t *testing.T) {
	atm := Earth.Atmosphere
	if Density(0, atm) != atm.Rho0 {
		t.Fatal("density at the surface must be ρ0")
	}
	if rho := Density(400000, atm); !scalar.EqualWithinRel(rho, 1.1225*math.Exp(-40), 1e-12) {
		t.Fatalf("density at 400 km: %g", rho)
	}
	if rho := Density(1e12, atm); rho != 0 {
		t.Fatalf("density should underflow to zero, got %g", rho)
	}
	rho := Density(-10000, atm)
	if math.IsInf(rho, 0) || math.IsNaN(rho) || rho <= atm.Rho0 {
		t.Fatalf("sub-surface density invalid: %g", rho)
	}
	if Density(1000, Sun.Atmosphere) != 0 {
		t.Fatal("the Sun has no modeled atmosphere")
	}
}

func TestTrueAnomaly(t *testing.T) {
	for _, exp := range []struct {
		x, y, ν float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, 3 * math.Pi / 2},
		{1, -1, 7 * math.Pi / 4},
		{1, -1e-300, 0}, // Would round to 2π.
	} {
		ν := TrueAnomaly(exp.x, exp.y)
		if !scalar.EqualWithinAbs(ν, exp.ν, 1e-12) {
			t.Fatalf("ν(%g, %g)=%f expected %f", exp.x, exp.y, ν, exp.ν)
		}
		if ν < 0 || ν >= 2*math.Pi {
			t.Fatalf("ν(%g, %g)=%f out of [0, 2π)", exp.x, exp.y, ν)
		}
	}
}

func TestFlightPathAngle(t *testing.T) {
	if γ := FlightPathAngle(0, 7600, 0); !scalar.EqualWithinAbs(γ, 0, 1e-15) {
		t.Fatalf("horizontal velocity has γ=%f", γ)
	}
	// Radial velocity, i.e. straight up.
	if γ := FlightPathAngle(1, 0, 0); !scalar.EqualWithinAbs(γ, -math.Pi/2, 1e-15) {
		t.Fatalf("radial velocity has γ=%f", γ)
	}
}

func TestSpecificEnergy(t *testing.T) {
	μ := Earth.GM()
	r := Earth.Radius + 400000
	vc := math.Sqrt(μ / r)
	s := State{X: r, VY: vc, R: r}
	if ξ := SpecificEnergy(s, μ); !scalar.EqualWithinRel(ξ, -μ/(2*r), 1e-12) {
		t.Fatalf("circular orbit energy ξ=%f", ξ)
	}
}
