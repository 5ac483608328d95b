package lineshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lineshape/internal/testutil"
)

func testModels() []Model {
	return []Model{
		Lorentzian{Offset: 0.1, Amplitude: 2, Center: 7.5, Linewidth: 0.3},
		LorentzianElastic{Slope: -0.02, Intercept: 0.4, Amplitude: 2, Center: 7.5, Linewidth: 0.3},
		DHO{Offset: 0.1, Amplitude: 2, Center: 7.5, Linewidth: 0.3},
		DHOElastic{Slope: 0.03, Intercept: 0.2, Amplitude: 1.5, Center: 5.2, Linewidth: 0.6},
	}
}

func TestModelEvalMatchesFunctions(t *testing.T) {
	l := Lorentzian{Offset: 0.1, Amplitude: 2, Center: 7.5, Linewidth: 0.3}
	le := LorentzianElastic{Slope: -0.02, Intercept: 0.4, Amplitude: 2, Center: 7.5, Linewidth: 0.3}
	d := DHO{Offset: 0.1, Amplitude: 2, Center: 7.5, Linewidth: 0.3}
	de := DHOElastic{Slope: 0.03, Intercept: 0.2, Amplitude: 1.5, Center: 5.2, Linewidth: 0.6}

	for _, nu := range []float64{-3, 0, 5.2, 7.4, 7.5, 12} {
		assert.Equal(t, EvalLorentzian(nu, 0.1, 2, 7.5, 0.3), l.Eval(nu))
		assert.Equal(t, EvalLorentzianElastic(nu, -0.02, 0.4, 2, 7.5, 0.3), le.Eval(nu))
		assert.Equal(t, EvalDHO(nu, 0.1, 2, 7.5, 0.3), d.Eval(nu))
		assert.Equal(t, EvalDHOElastic(nu, 0.03, 0.2, 1.5, 5.2, 0.6), de.Eval(nu))
	}
}

func TestEvalBlockMatchesEval(t *testing.T) {
	freq := testutil.FrequencyGrid(-10, 10, 257)

	for _, m := range testModels() {
		t.Run(m.Variant().String(), func(t *testing.T) {
			got := make([]float64, len(freq)+3)
			m.EvalBlock(got, freq)

			for i, nu := range freq {
				require.Equal(t, m.Eval(nu), got[i], "index %d", i)
			}
			assert.Equal(t, []float64{0, 0, 0}, got[len(freq):], "wrote past len(freq)")
		})
	}
}

func TestSample(t *testing.T) {
	freq := testutil.FrequencyGrid(0, 15, 31)
	m := DHO{Offset: 0, Amplitude: 1, Center: 7.5, Linewidth: 1}

	testutil.RequireSpectraNearlyEqual(t, Sample(m, freq), testutil.Sampled(freq, m.Eval), 0)
	assert.Empty(t, Sample(m, nil))
}

func TestParamsRoundTrip(t *testing.T) {
	for _, m := range testModels() {
		t.Run(m.Variant().String(), func(t *testing.T) {
			p := m.Params()
			require.Len(t, p, m.Variant().NumParams())

			back, err := m.Variant().Model(p)
			require.NoError(t, err)
			assert.Equal(t, m, back)
		})
	}
}
