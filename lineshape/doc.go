// Package lineshape provides closed-form spectral line shapes and the
// sum-of-squared-residuals cost used to fit measured spectra to them.
//
// Four models are available, each as a plain function and as a named
// parameter record implementing [Model]:
//
//   - Lorentzian:          b + a·(γ/2)² / ((ν−ν0)² + (γ/2)²)
//   - Lorentzian elastic:  be + ae·ν + a·(γ/2)² / ((ν−ν0)² + (γ/2)²)
//   - DHO:                 b + a·γ·ν0² / ((ν²−ν0²)² + γ·ν0²)
//   - DHO elastic:         be + ae·ν + a·γ·ν0² / ((ν²−ν0²)² + γ·ν0²)
//
// The elastic variants replace the constant offset with a linear baseline
// be + ae·ν, which absorbs the tail of a nearby elastic (Rayleigh) peak in
// Brillouin and Raman spectra.
//
// # Usage
//
// Evaluate a model directly:
//
//	y := lineshape.EvalLorentzian(nu, b, a, nu0, gamma)
//
// or through a parameter record:
//
//	m := lineshape.Lorentzian{Offset: 0, Amplitude: 1, Center: 7.5, Linewidth: 0.3}
//	y := m.Eval(nu)
//
// Compute the least-squares cost of a positional parameter vector, the form
// optimizers work with:
//
//	cost, err := lineshape.LorentzianCost([]float64{b, a, nu0, gamma}, freq, data, len(freq))
//
// For an optimizer loop, build an objective once and call it repeatedly:
//
//	eval, err := lineshape.VariantDHO.Objective(freq, data)
//	cost := eval(params)
//
// # Instrument response
//
// [WithImpulseResponse] convolves the sampled model with the instrument's
// impulse response before residuals are taken. The convolved curve keeps the
// length of the frequency axis and is centered the same way as numpy's
// convolve(..., "same").
//
// # Numerics
//
// Every cost is accumulated sequentially from index 0 upward, so results are
// reproducible bit for bit across runs and across [CostBatch] workers.
// Division by zero and NaN inputs follow IEEE-754 semantics and are not
// guarded. All functions are safe for concurrent use.
package lineshape
