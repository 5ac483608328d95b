package lineshape

import "github.com/cwbudde/algo-vecmath"

// Model is a line shape with its parameters bound.
type Model interface {
	// Variant identifies the line shape.
	Variant() Variant
	// Eval returns the modeled intensity at frequency nu.
	Eval(nu float64) float64
	// EvalBlock writes Eval(freq[i]) to dst[i] for every i < len(freq).
	// dst must hold at least len(freq) values.
	EvalBlock(dst, freq []float64)
	// Params returns the parameters in the variant's positional order.
	Params() []float64
}

// Lorentzian is a Lorentzian peak on a constant offset.
type Lorentzian struct {
	Offset    float64 // b
	Amplitude float64 // a, peak height above Offset
	Center    float64 // ν0
	Linewidth float64 // γ, full width at half maximum
}

// Variant returns [VariantLorentzian].
func (Lorentzian) Variant() Variant { return VariantLorentzian }

// Eval returns the intensity at nu.
func (m Lorentzian) Eval(nu float64) float64 {
	return EvalLorentzian(nu, m.Offset, m.Amplitude, m.Center, m.Linewidth)
}

// EvalBlock samples the model at every frequency in freq.
func (m Lorentzian) EvalBlock(dst, freq []float64) {
	dst = dst[:len(freq)]
	for i, nu := range freq {
		dst[i] = m.Offset + lorentzianPeak(nu, m.Amplitude, m.Center, m.Linewidth)
	}
}

// Params returns [b, a, ν0, γ].
func (m Lorentzian) Params() []float64 {
	return []float64{m.Offset, m.Amplitude, m.Center, m.Linewidth}
}

// LorentzianElastic is a Lorentzian peak on a linear baseline.
type LorentzianElastic struct {
	Slope     float64 // ae
	Intercept float64 // be
	Amplitude float64 // a
	Center    float64 // ν0
	Linewidth float64 // γ
}

// Variant returns [VariantLorentzianElastic].
func (LorentzianElastic) Variant() Variant { return VariantLorentzianElastic }

// Eval returns the intensity at nu.
func (m LorentzianElastic) Eval(nu float64) float64 {
	return EvalLorentzianElastic(nu, m.Slope, m.Intercept, m.Amplitude, m.Center, m.Linewidth)
}

// EvalBlock samples the model at every frequency in freq.
func (m LorentzianElastic) EvalBlock(dst, freq []float64) {
	dst = dst[:len(freq)]
	vecmath.ScaleBlock(dst, freq, m.Slope)
	for i, nu := range freq {
		dst[i] = m.Intercept + dst[i] + lorentzianPeak(nu, m.Amplitude, m.Center, m.Linewidth)
	}
}

// Params returns [ae, be, a, ν0, γ].
func (m LorentzianElastic) Params() []float64 {
	return []float64{m.Slope, m.Intercept, m.Amplitude, m.Center, m.Linewidth}
}

// DHO is a damped harmonic oscillator peak on a constant offset.
type DHO struct {
	Offset    float64 // b
	Amplitude float64 // a
	Center    float64 // ν0, resonance frequency
	Linewidth float64 // γ, damping
}

// Variant returns [VariantDHO].
func (DHO) Variant() Variant { return VariantDHO }

// Eval returns the intensity at nu.
func (m DHO) Eval(nu float64) float64 {
	return EvalDHO(nu, m.Offset, m.Amplitude, m.Center, m.Linewidth)
}

// EvalBlock samples the model at every frequency in freq.
func (m DHO) EvalBlock(dst, freq []float64) {
	dst = dst[:len(freq)]
	for i, nu := range freq {
		dst[i] = m.Offset + dhoPeak(nu, m.Amplitude, m.Center, m.Linewidth)
	}
}

// Params returns [b, a, ν0, γ].
func (m DHO) Params() []float64 {
	return []float64{m.Offset, m.Amplitude, m.Center, m.Linewidth}
}

// DHOElastic is a damped harmonic oscillator peak on a linear baseline.
type DHOElastic struct {
	Slope     float64 // ae
	Intercept float64 // be
	Amplitude float64 // a
	Center    float64 // ν0
	Linewidth float64 // γ
}

// Variant returns [VariantDHOElastic].
func (DHOElastic) Variant() Variant { return VariantDHOElastic }

// Eval returns the intensity at nu.
func (m DHOElastic) Eval(nu float64) float64 {
	return EvalDHOElastic(nu, m.Slope, m.Intercept, m.Amplitude, m.Center, m.Linewidth)
}

// EvalBlock samples the model at every frequency in freq.
func (m DHOElastic) EvalBlock(dst, freq []float64) {
	dst = dst[:len(freq)]
	vecmath.ScaleBlock(dst, freq, m.Slope)
	for i, nu := range freq {
		dst[i] = m.Intercept + dst[i] + dhoPeak(nu, m.Amplitude, m.Center, m.Linewidth)
	}
}

// Params returns [ae, be, a, ν0, γ].
func (m DHOElastic) Params() []float64 {
	return []float64{m.Slope, m.Intercept, m.Amplitude, m.Center, m.Linewidth}
}

// Sample returns m evaluated at every frequency in freq.
func Sample(m Model, freq []float64) []float64 {
	out := make([]float64, len(freq))
	m.EvalBlock(out, freq)
	return out
}
