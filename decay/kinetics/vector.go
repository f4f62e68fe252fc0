package kinetics

import "fmt"

// Variant identifies a kinetic model shape by its rise/fall term counts.
type Variant int

const (
	VariantRise1Fall1 Variant = iota
	VariantRise1Fall2
	VariantRise2Fall1
)

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case VariantRise1Fall1:
		return "rise1fall1"
	case VariantRise1Fall2:
		return "rise1fall2"
	case VariantRise2Fall1:
		return "rise2fall1"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParamCount returns the positional vector length the variant expects.
func (v Variant) ParamCount() int {
	switch v {
	case VariantRise1Fall1:
		return 7
	case VariantRise1Fall2:
		return 9
	case VariantRise2Fall1:
		return 10
	default:
		return 0
	}
}

// ParseVector interprets a legacy flat parameter vector and returns the
// typed model and response it encodes.
//
// The layout is positional: index 0 is the response FWHM, index 1 the
// onset time, and the remaining entries are variant-specific in the
// order the historical fitting front ends used:
//
//	rise1fall1: fwhm, t0, tau_r1, I_f1, tau_f1, y0, A
//	rise1fall2: fwhm, t0, tau_r1, I_f1, tau_f1, I_f2, tau_f2, y0, A
//	rise2fall1: fwhm, t0, I_r1, tau_r1, I_r2, tau_r2, I_f1, tau_f1, y0, A
//
// A vector whose length does not match the variant is rejected with
// ErrVectorLength rather than read out of order.
func ParseVector(v Variant, params []float64) (Model, Response, error) {
	want := v.ParamCount()
	if want == 0 {
		return nil, Response{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if len(params) != want {
		return nil, Response{}, fmt.Errorf("%w: %s expects %d parameters, got %d",
			ErrVectorLength, v, want, len(params))
	}

	r, err := NewResponse(params[0])
	if err != nil {
		return nil, Response{}, err
	}

	var m Model
	switch v {
	case VariantRise1Fall1:
		m = Rise1Fall1{
			T0:       params[1],
			TauRise1: params[2],
			AmpFall1: params[3],
			TauFall1: params[4],
			Offset:   params[5],
			Amp:      params[6],
		}
	case VariantRise1Fall2:
		m = Rise1Fall2{
			T0:       params[1],
			TauRise1: params[2],
			AmpFall1: params[3],
			TauFall1: params[4],
			AmpFall2: params[5],
			TauFall2: params[6],
			Offset:   params[7],
			Amp:      params[8],
		}
	case VariantRise2Fall1:
		m = Rise2Fall1{
			T0:       params[1],
			AmpRise1: params[2],
			TauRise1: params[3],
			AmpRise2: params[4],
			TauRise2: params[5],
			AmpFall1: params[6],
			TauFall1: params[7],
			Offset:   params[8],
			Amp:      params[9],
		}
	}

	if err := m.Validate(); err != nil {
		return nil, Response{}, err
	}
	return m, r, nil
}
