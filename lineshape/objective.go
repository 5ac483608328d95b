package lineshape

import (
	"fmt"
	"math"
)

// Objective returns the variant's cost over all points of a spectrum as a
// function of the positional parameter vector, the shape minimizers take as
// their objective. Lengths and the impulse response are checked once here;
// the returned function yields +Inf for parameter vectors that are too short.
//
// The returned function is safe for concurrent use. It keeps references to
// frequency and data, which must not be modified while it is in use.
func (v Variant) Objective(frequency, data []float64, opts ...Option) (func(params []float64) float64, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if len(frequency) != len(data) {
		return nil, fmt.Errorf("%w: %d frequencies, %d data values", ErrInvalidArgument, len(frequency), len(data))
	}

	kernel, err := newKernel(applyOptions(opts...), len(data))
	if err != nil {
		return nil, err
	}

	return func(params []float64) float64 {
		m, err := v.Model(params)
		if err != nil {
			return math.Inf(1)
		}
		c, err := cost(m, kernel, frequency, data)
		if err != nil {
			return math.Inf(1)
		}
		return c
	}, nil
}
