package lineshape

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a parameter vector is too short, a
// frequency or data slice holds fewer samples than requested, or a point
// count is negative. Checks run before any computation.
var ErrInvalidArgument = errors.New("lineshape: invalid argument")

// ErrUnknownVariant is returned by [ParseVariant] for unrecognized names.
var ErrUnknownVariant = fmt.Errorf("%w: unknown model variant", ErrInvalidArgument)

// The explicit float64 conversions below stop the compiler from fusing
// multiply-adds (arm64, ppc64), so every platform rounds each step the same way.

func lorentzianPeak(nu, a, nu0, gamma float64) float64 {
	hw := gamma / 2
	d := nu - nu0
	hw2 := float64(hw * hw)
	return a * hw2 / (float64(d*d) + hw2)
}

func dhoPeak(nu, a, nu0, gamma float64) float64 {
	g := gamma * float64(nu0*nu0)
	s := float64(nu*nu) - float64(nu0*nu0)
	return a * g / (float64(s*s) + g)
}

// EvalLorentzian returns b + a·(γ/2)² / ((ν−ν0)² + (γ/2)²).
//
// b is the offset, a the peak height above it, nu0 the center and gamma the
// full width at half maximum.
func EvalLorentzian(nu, b, a, nu0, gamma float64) float64 {
	return b + lorentzianPeak(nu, a, nu0, gamma)
}

// EvalLorentzianElastic is [EvalLorentzian] with the offset replaced by the
// linear baseline be + ae·ν.
func EvalLorentzianElastic(nu, ae, be, a, nu0, gamma float64) float64 {
	return be + float64(ae*nu) + lorentzianPeak(nu, a, nu0, gamma)
}

// EvalDHO returns b + a·γ·ν0² / ((ν²−ν0²)² + γ·ν0²), the power spectrum shape
// of a driven damped harmonic oscillator. It peaks at b + a for ν = ν0.
func EvalDHO(nu, b, a, nu0, gamma float64) float64 {
	return b + dhoPeak(nu, a, nu0, gamma)
}

// EvalDHOElastic is [EvalDHO] with the offset replaced by the linear baseline
// be + ae·ν.
func EvalDHOElastic(nu, ae, be, a, nu0, gamma float64) float64 {
	return be + float64(ae*nu) + dhoPeak(nu, a, nu0, gamma)
}
