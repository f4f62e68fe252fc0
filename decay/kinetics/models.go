package kinetics

import "math"

// Rise1Fall1 is a single exponential rise times a single exponential
// decay plus offset:
//
//	A·(1 − e^(−t′/τr1))·(y0 + I_f1·e^(−t′/τf1)),  t′ = t − T0
//
// The rise term carries no amplitude of its own; it ramps from 0 at the
// onset towards 1.
type Rise1Fall1 struct {
	T0       float64 // Heaviside onset time
	TauRise1 float64 // rise time constant (absolute value used)
	AmpFall1 float64 // fall term amplitude (signed)
	TauFall1 float64 // fall time constant (absolute value used)
	Offset   float64 // constant offset inside the fall factor (signed)
	Amp      float64 // global amplitude (signed)
}

// Eval returns the model value at time t.
func (m Rise1Fall1) Eval(t float64) float64 {
	u := t - m.T0
	rise := 1 - math.Exp(-u/math.Abs(m.TauRise1))
	fall := m.Offset + m.AmpFall1*math.Exp(-u/math.Abs(m.TauFall1))
	return m.Amp * rise * fall
}

// Onset returns the onset time T0.
func (m Rise1Fall1) Onset() float64 { return m.T0 }

// Validate rejects zero time constants.
func (m Rise1Fall1) Validate() error {
	return checkTimeConstants(m.TauRise1, m.TauFall1)
}

// Rise1Fall2 extends Rise1Fall1 with a second fall term:
//
//	A·(1 − e^(−t′/τr1))·(y0 + I_f1·e^(−t′/τf1) + I_f2·e^(−t′/τf2))
type Rise1Fall2 struct {
	T0       float64
	TauRise1 float64
	AmpFall1 float64
	TauFall1 float64
	AmpFall2 float64
	TauFall2 float64
	Offset   float64
	Amp      float64
}

// Eval returns the model value at time t.
func (m Rise1Fall2) Eval(t float64) float64 {
	u := t - m.T0
	rise := 1 - math.Exp(-u/math.Abs(m.TauRise1))
	fall := m.Offset +
		m.AmpFall1*math.Exp(-u/math.Abs(m.TauFall1)) +
		m.AmpFall2*math.Exp(-u/math.Abs(m.TauFall2))
	return m.Amp * rise * fall
}

// Onset returns the onset time T0.
func (m Rise1Fall2) Onset() float64 { return m.T0 }

// Validate rejects zero time constants.
func (m Rise1Fall2) Validate() error {
	return checkTimeConstants(m.TauRise1, m.TauFall1, m.TauFall2)
}

// Rise2Fall1 sums two amplitude-weighted rise terms before applying a
// single fall factor:
//
//	A·[(1 − I_r1·e^(−t′/τr1)) + (1 − I_r2·e^(−t′/τr2))]·(y0 + I_f1·e^(−t′/τf1))
type Rise2Fall1 struct {
	T0       float64
	AmpRise1 float64
	TauRise1 float64
	AmpRise2 float64
	TauRise2 float64
	AmpFall1 float64
	TauFall1 float64
	Offset   float64
	Amp      float64
}

// Eval returns the model value at time t.
func (m Rise2Fall1) Eval(t float64) float64 {
	u := t - m.T0
	rise := (1 - m.AmpRise1*math.Exp(-u/math.Abs(m.TauRise1))) +
		(1 - m.AmpRise2*math.Exp(-u/math.Abs(m.TauRise2)))
	fall := m.Offset + m.AmpFall1*math.Exp(-u/math.Abs(m.TauFall1))
	return m.Amp * rise * fall
}

// Onset returns the onset time T0.
func (m Rise2Fall1) Onset() float64 { return m.T0 }

// Validate rejects zero time constants.
func (m Rise2Fall1) Validate() error {
	return checkTimeConstants(m.TauRise1, m.TauRise2, m.TauFall1)
}
