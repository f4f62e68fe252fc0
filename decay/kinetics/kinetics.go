// Package kinetics provides closed-form causal kinetic models and the
// Gaussian instrument response used to describe time-resolved decay
// signals such as pump-probe or fluorescence transients.
//
// A kinetic model is a product of rising-exponential terms (approaching 1
// as t grows) and falling-exponential terms (decaying towards an offset),
// scaled by a global amplitude and time-shifted so the kinetics begin at
// an onset time T0. Three variants are provided, named by their
// rise/fall term counts:
//
//	m := kinetics.Rise1Fall2{
//	    T0: 0, TauRise1: 0.5,
//	    AmpFall1: 1, TauFall1: 5,
//	    AmpFall2: 0.2, TauFall2: 50,
//	    Amp: 1,
//	}
//	v := m.Eval(10)
//
// The models apply no onset gating themselves: for times before T0 the
// exponential terms are evaluated as-is and can grow without bound.
// Restricting evaluation to causal times is the convolution engine's
// responsibility (see the convolve package).
//
// # Legacy parameter vectors
//
// Fitting front ends historically passed parameters as a flat positional
// vector. ParseVector converts such a vector into a typed model and
// response, rejecting mismatched layouts instead of reading garbage:
//
//	m, r, err := kinetics.ParseVector(kinetics.VariantRise1Fall2, coeffs)
package kinetics

import "errors"

// Errors returned by model construction and vector parsing.
var (
	ErrZeroFWHM         = errors.New("kinetics: response FWHM must be nonzero")
	ErrZeroTimeConstant = errors.New("kinetics: time constant must be nonzero")
	ErrVectorLength     = errors.New("kinetics: parameter vector length mismatch")
	ErrUnknownVariant   = errors.New("kinetics: unknown model variant")
)

// Model is a causal kinetic signal evaluated at absolute time.
type Model interface {
	// Eval returns the model value at time t. No onset gating is
	// applied; before the onset the exponentials are evaluated as-is.
	Eval(t float64) float64

	// Onset returns the Heaviside onset time T0.
	Onset() float64

	// Validate reports whether the parameters are usable. Time
	// constants must be nonzero; amplitudes and offsets may carry
	// either sign.
	Validate() error
}

func checkTimeConstants(taus ...float64) error {
	for _, tau := range taus {
		if tau == 0 {
			return ErrZeroTimeConstant
		}
	}
	return nil
}
