package lineshape

import (
	"fmt"
	"strings"
)

// Variant selects one of the line-shape models.
type Variant int

const (
	// VariantLorentzian has parameters [b, a, ν0, γ].
	VariantLorentzian Variant = iota
	// VariantLorentzianElastic has parameters [ae, be, a, ν0, γ].
	VariantLorentzianElastic
	// VariantDHO has parameters [b, a, ν0, γ].
	VariantDHO
	// VariantDHOElastic has parameters [ae, be, a, ν0, γ].
	VariantDHOElastic
)

var variantNames = [...]string{
	VariantLorentzian:        "Lorentzian",
	VariantLorentzianElastic: "Lorentzian elastic",
	VariantDHO:               "DHO",
	VariantDHOElastic:        "DHO elastic",
}

var (
	baseParamNames    = []string{"b", "a", "nu0", "gamma"}
	elasticParamNames = []string{"ae", "be", "a", "nu0", "gamma"}
)

// Variants returns all known variants in declaration order.
func Variants() []Variant {
	return []Variant{VariantLorentzian, VariantLorentzianElastic, VariantDHO, VariantDHOElastic}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v >= VariantLorentzian && v <= VariantDHOElastic
}

// String returns the variant's display name.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Elastic reports whether the variant carries a linear baseline.
func (v Variant) Elastic() bool {
	return v == VariantLorentzianElastic || v == VariantDHOElastic
}

// NumParams returns the length of the variant's parameter vector, or 0 for
// an unknown variant.
func (v Variant) NumParams() int {
	if !v.Valid() {
		return 0
	}
	if v.Elastic() {
		return 5
	}
	return 4
}

// ParamNames returns the positional parameter names.
func (v Variant) ParamNames() []string {
	if !v.Valid() {
		return nil
	}
	if v.Elastic() {
		return append([]string(nil), elasticParamNames...)
	}
	return append([]string(nil), baseParamNames...)
}

// Model binds a positional parameter vector to the variant's record type.
// Elements beyond NumParams are ignored.
func (v Variant) Model(params []float64) (Model, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if need := v.NumParams(); len(params) < need {
		return nil, fmt.Errorf("%w: %v needs %d parameters, got %d", ErrInvalidArgument, v, need, len(params))
	}

	p := params
	switch v {
	case VariantLorentzian:
		return Lorentzian{Offset: p[0], Amplitude: p[1], Center: p[2], Linewidth: p[3]}, nil
	case VariantLorentzianElastic:
		return LorentzianElastic{Slope: p[0], Intercept: p[1], Amplitude: p[2], Center: p[3], Linewidth: p[4]}, nil
	case VariantDHO:
		return DHO{Offset: p[0], Amplitude: p[1], Center: p[2], Linewidth: p[3]}, nil
	default:
		return DHOElastic{Slope: p[0], Intercept: p[1], Amplitude: p[2], Center: p[3], Linewidth: p[4]}, nil
	}
}

// Evaluate returns the intensity at nu for a positional parameter vector.
func (v Variant) Evaluate(params []float64, nu float64) (float64, error) {
	m, err := v.Model(params)
	if err != nil {
		return 0, err
	}
	return m.Eval(nu), nil
}

// ParseVariant maps a model name to its Variant. Matching ignores case and
// treats '-', '_' and spaces alike, so "Lorentz_e", "lorentzian-elastic" and
// "Lorentzian elastic" all select [VariantLorentzianElastic].
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")

	switch key {
	case "lorentzian", "lorentz":
		return VariantLorentzian, nil
	case "lorentzian elastic", "lorentz elastic", "lorentzian e", "lorentz e":
		return VariantLorentzianElastic, nil
	case "dho":
		return VariantDHO, nil
	case "dho elastic", "dho e":
		return VariantDHOElastic, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
