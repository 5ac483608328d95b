package testutil

import (
	"math"
	"math/rand"
)

// FrequencyGrid returns n evenly spaced frequencies from start to stop
// inclusive. n == 1 yields {start}.
func FrequencyGrid(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Sampled evaluates f at every frequency.
func Sampled(freq []float64, f func(nu float64) float64) []float64 {
	out := make([]float64, len(freq))
	for i, nu := range freq {
		out[i] = f(nu)
	}
	return out
}

// WithNoise returns a copy of data with seeded uniform noise in
// [-amplitude, amplitude) added to every point.
func WithNoise(data []float64, seed int64, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// Gaussian returns a peak-normalized gaussian of width sigma (in samples)
// centered in a buffer of length n. Used as a synthetic instrument response.
func Gaussian(n int, sigma float64) []float64 {
	out := make([]float64, n)
	c := float64(n-1) / 2
	for i := range out {
		x := (float64(i) - c) / sigma
		out[i] = math.Exp(-0.5 * x * x)
	}
	return out
}
