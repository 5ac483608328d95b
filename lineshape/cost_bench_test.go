package lineshape

import (
	"context"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-lineshape/internal/testutil"
)

func BenchmarkLorentzianCost(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		freq := testutil.FrequencyGrid(0, 15, n)
		data := testutil.WithNoise(make([]float64, n), 1, 1)
		params := []float64{0, 1, 7.5, 0.3}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = LorentzianCost(params, freq, data, n)
			}
		})
	}
}

func BenchmarkObjectiveWithResponse(b *testing.B) {
	for _, taps := range []int{15, 101} {
		freq := testutil.FrequencyGrid(0, 15, 1024)
		data := testutil.WithNoise(make([]float64, len(freq)), 1, 1)
		eval, err := VariantDHOElastic.Objective(freq, data, WithImpulseResponse(testutil.Gaussian(taps, float64(taps)/6)))
		if err != nil {
			b.Fatal(err)
		}
		params := []float64{0.01, 0, 1, 7.5, 0.3}

		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = eval(params)
			}
		})
	}
}

func BenchmarkCostBatch(b *testing.B) {
	spectra := makeSpectra(256, 512)
	m := Lorentzian{Offset: 0.1, Amplitude: 1, Center: 6, Linewidth: 0.4}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CostBatch(context.Background(), m, spectra)
	}
}
