package kinetics

import "math"

// gaussCoeff scales the exponent so FWHM is the full width at half
// maximum: exp(-4·ln2·(1/2)²) = 1/2.
const gaussCoeff = 4 * math.Ln2

// Response is the Gaussian instrument response function, representing
// measurement broadening of the kinetic signal. Its peak is normalized
// to 1 at t = 0.
type Response struct {
	FWHM float64
}

// NewResponse creates a validated response with the given full width at
// half maximum. The sign of fwhm is irrelevant.
func NewResponse(fwhm float64) (Response, error) {
	r := Response{FWHM: fwhm}
	return r, r.Validate()
}

// Validate rejects a zero FWHM, which would divide by zero in Eval.
func (r Response) Validate() error {
	if r.FWHM == 0 {
		return ErrZeroFWHM
	}
	return nil
}

// Eval returns the response amplitude at offset t from the peak.
func (r Response) Eval(t float64) float64 {
	x := t / math.Abs(r.FWHM)
	return math.Exp(-gaussCoeff * x * x)
}
