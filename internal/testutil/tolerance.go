package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSpectraNearlyEqual fails t if two sampled spectra differ in length or
// if any intensity pair exceeds eps.
func RequireSpectraNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	d, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > eps {
		t.Fatalf("max intensity diff %v > eps %v", d, eps)
	}
}

// MaxAbsDiff returns the largest absolute difference between two spectra.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	worst := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		worst = math.Max(worst, d)
	}
	return worst, nil
}
