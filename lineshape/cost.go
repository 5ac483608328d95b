package lineshape

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lineshape/internal/response"
	"github.com/cwbudde/algo-vecmath"
)

// Cost returns the sum over i < n of (data[i] − m.Eval(frequency[i]))²,
// accumulated from index 0 upward. n may be smaller than the slices; n == 0
// yields 0. Neither slice is modified.
func Cost(m Model, frequency, data []float64, n int, opts ...Option) (float64, error) {
	if err := checkPoints(frequency, data, n); err != nil {
		return 0, err
	}

	kernel, err := newKernel(applyOptions(opts...), n)
	if err != nil {
		return 0, err
	}

	return cost(m, kernel, frequency[:n], data[:n])
}

// Cost binds params to the variant and returns [Cost] of the resulting model.
func (v Variant) Cost(params, frequency, data []float64, n int, opts ...Option) (float64, error) {
	if err := checkPoints(frequency, data, n); err != nil {
		return 0, err
	}
	m, err := v.Model(params)
	if err != nil {
		return 0, err
	}
	return Cost(m, frequency, data, n, opts...)
}

// LorentzianCost is the least-squares cost of the Lorentzian model with
// params = [b, a, ν0, γ].
func LorentzianCost(params, frequency, data []float64, n int, opts ...Option) (float64, error) {
	return VariantLorentzian.Cost(params, frequency, data, n, opts...)
}

// LorentzianElasticCost is the least-squares cost of the elastic Lorentzian
// model with params = [ae, be, a, ν0, γ].
func LorentzianElasticCost(params, frequency, data []float64, n int, opts ...Option) (float64, error) {
	return VariantLorentzianElastic.Cost(params, frequency, data, n, opts...)
}

// DHOCost is the least-squares cost of the DHO model with params = [b, a, ν0, γ].
func DHOCost(params, frequency, data []float64, n int, opts ...Option) (float64, error) {
	return VariantDHO.Cost(params, frequency, data, n, opts...)
}

// DHOElasticCost is the least-squares cost of the elastic DHO model with
// params = [ae, be, a, ν0, γ].
func DHOElasticCost(params, frequency, data []float64, n int, opts ...Option) (float64, error) {
	return VariantDHOElastic.Cost(params, frequency, data, n, opts...)
}

// NormalizeImpulseResponse shifts ir to a zero minimum and scales it to a unit
// maximum, the conditioning applied to measured responses before fitting.
func NormalizeImpulseResponse(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, fmt.Errorf("%w: empty impulse response", ErrInvalidArgument)
	}

	lo, hi := ir[0], ir[0]
	for _, v := range ir[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil, fmt.Errorf("%w: impulse response has no usable range", ErrInvalidArgument)
	}

	out := make([]float64, len(ir))
	for i, v := range ir {
		out[i] = (v - lo) / span
	}
	return out, nil
}

func checkPoints(frequency, data []float64, n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative point count %d", ErrInvalidArgument, n)
	case len(frequency) < n:
		return fmt.Errorf("%w: %d frequencies for %d points", ErrInvalidArgument, len(frequency), n)
	case len(data) < n:
		return fmt.Errorf("%w: %d data values for %d points", ErrInvalidArgument, len(data), n)
	}
	return nil
}

// newKernel prepares the configured impulse response, or returns nil when
// none is set.
func newKernel(cfg config, n int) (*response.Kernel, error) {
	ir := cfg.impulseResponse
	if len(ir) == 0 {
		return nil, nil
	}
	k, err := response.New(ir)
	if err != nil {
		return nil, err
	}
	if n > 0 && k.Len() > n {
		return nil, fmt.Errorf("%w: impulse response has %d taps for %d points", ErrInvalidArgument, k.Len(), n)
	}
	return k, nil
}

// cost assumes len(frequency) == len(data) and, if kernel is set, that the
// kernel is no longer than the data.
func cost(m Model, kernel *response.Kernel, frequency, data []float64) (float64, error) {
	if kernel == nil || len(data) == 0 {
		sum := 0.0
		for i, nu := range frequency {
			r := data[i] - m.Eval(nu)
			sum += float64(r * r)
		}
		return sum, nil
	}

	n := len(data)
	model := make([]float64, n)
	m.EvalBlock(model, frequency)

	smeared := make([]float64, n)
	if err := kernel.Apply(smeared, model); err != nil {
		return 0, fmt.Errorf("lineshape: applying impulse response: %w", err)
	}

	// residual = data - smeared, reusing model as scratch
	vecmath.ScaleBlock(model, smeared, -1)
	vecmath.AddBlockInPlace(model, data)

	sum := 0.0
	for _, r := range model {
		sum += float64(r * r)
	}
	return sum, nil
}
