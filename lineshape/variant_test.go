package lineshape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name string
		want Variant
	}{
		{"Lorentzian", VariantLorentzian},
		{"Lorentz", VariantLorentzian},
		{"  lorentzian ", VariantLorentzian},
		{"Lorentzian elastic", VariantLorentzianElastic},
		{"Lorentz_e", VariantLorentzianElastic},
		{"lorentzian-elastic", VariantLorentzianElastic},
		{"DHO", VariantDHO},
		{"dho", VariantDHO},
		{"DHO elastic", VariantDHOElastic},
		{"DHO_e", VariantDHOElastic},
		{"dho-elastic", VariantDHOElastic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVariantUnknown(t *testing.T) {
	for _, name := range []string{"", "gaussian", "voigt", "dho elastic extra"} {
		_, err := ParseVariant(name)
		assert.ErrorIs(t, err, ErrUnknownVariant, "name %q", name)
		assert.ErrorIs(t, err, ErrInvalidArgument, "name %q", name)
	}
}

func TestParseVariantRoundTripsString(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVariantMetadata(t *testing.T) {
	assert.Equal(t, 4, VariantLorentzian.NumParams())
	assert.Equal(t, 5, VariantLorentzianElastic.NumParams())
	assert.Equal(t, 4, VariantDHO.NumParams())
	assert.Equal(t, 5, VariantDHOElastic.NumParams())

	assert.Equal(t, []string{"b", "a", "nu0", "gamma"}, VariantDHO.ParamNames())
	assert.Equal(t, []string{"ae", "be", "a", "nu0", "gamma"}, VariantLorentzianElastic.ParamNames())

	bad := Variant(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Variant(42)", bad.String())
	assert.Zero(t, bad.NumParams())
	assert.Nil(t, bad.ParamNames())
}

func TestParamNamesIsCopy(t *testing.T) {
	names := VariantLorentzian.ParamNames()
	names[0] = "changed"
	assert.Equal(t, "b", VariantLorentzian.ParamNames()[0])
}

func TestVariantModel(t *testing.T) {
	m, err := VariantLorentzianElastic.Model([]float64{0.1, 0.2, 3, 7.5, 0.4})
	require.NoError(t, err)
	assert.Equal(t, LorentzianElastic{Slope: 0.1, Intercept: 0.2, Amplitude: 3, Center: 7.5, Linewidth: 0.4}, m)

	// Extra elements are ignored.
	m, err = VariantDHO.Model([]float64{0, 1, 10, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, DHO{Offset: 0, Amplitude: 1, Center: 10, Linewidth: 2}, m)

	_, err = VariantDHOElastic.Model([]float64{0, 1, 10, 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Variant(-1).Model([]float64{0, 1, 10, 2, 3})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestVariantEvaluate(t *testing.T) {
	v, err := VariantLorentzian.Evaluate([]float64{0, 1, 10, 2}, 11)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = VariantDHO.Evaluate([]float64{0, 1, 10, 2}, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = VariantLorentzian.Evaluate([]float64{0, 1}, 11)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
