package kinetics

import (
	"errors"
	"math"
	"testing"
)

func TestRise1Fall2ZeroAtOnset(t *testing.T) {
	m := Rise1Fall2{
		T0:       0,
		TauRise1: 0.5,
		AmpFall1: 1,
		TauFall1: 5,
		AmpFall2: 0.3,
		TauFall2: 50,
		Offset:   0.1,
		Amp:      2,
	}

	// The rise factor vanishes at the onset regardless of the fall terms.
	if got := m.Eval(0); got != 0 {
		t.Errorf("Eval(0) = %v, expected 0", got)
	}

	// Just after onset the value is still close to zero.
	if got := m.Eval(1e-6); math.Abs(got) > 1e-5 {
		t.Errorf("Eval(1e-6) = %v, expected near 0", got)
	}
}

func TestRise1Fall2KnownValue(t *testing.T) {
	// Second fall term zeroed: A·(1−e^(−t/0.5))·e^(−t/5) at t = 10.
	m := Rise1Fall2{
		T0:       0,
		TauRise1: 0.5,
		AmpFall1: 1,
		TauFall1: 5,
		AmpFall2: 0,
		TauFall2: 1,
		Offset:   0,
		Amp:      1,
	}

	expected := (1 - math.Exp(-20)) * math.Exp(-2)
	if got := m.Eval(10); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Eval(10) = %v, expected %v", got, expected)
	}
}

func TestRise1Fall1Shape(t *testing.T) {
	m := Rise1Fall1{
		T0:       2,
		TauRise1: 0.5,
		AmpFall1: 1,
		TauFall1: 5,
		Offset:   0,
		Amp:      3,
	}

	// At the onset the rise factor is exactly zero.
	if got := m.Eval(2); got != 0 {
		t.Errorf("Eval(T0) = %v, expected 0", got)
	}

	// Long after onset the rise saturates and the fall dominates:
	// value ≈ A·e^(−t′/τf1).
	tv := 2.0 + 30
	expected := 3 * math.Exp(-30.0/5)
	if got := m.Eval(tv); math.Abs(got-expected) > 1e-6 {
		t.Errorf("Eval(%v) = %v, expected %v", tv, got, expected)
	}
}

func TestRise1Fall1OffsetPlateau(t *testing.T) {
	m := Rise1Fall1{
		T0:       0,
		TauRise1: 0.1,
		AmpFall1: 1,
		TauFall1: 2,
		Offset:   0.25,
		Amp:      1,
	}

	// Far beyond both time constants only A·y0 remains.
	if got := m.Eval(100); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Eval(100) = %v, expected plateau 0.25", got)
	}
}

func TestRise2Fall1KnownValue(t *testing.T) {
	m := Rise2Fall1{
		T0:       0,
		AmpRise1: 0.7,
		TauRise1: 0.5,
		AmpRise2: 0.3,
		TauRise2: 2,
		AmpFall1: 1,
		TauFall1: 10,
		Offset:   0,
		Amp:      1,
	}

	tv := 4.0
	rise := (1 - 0.7*math.Exp(-tv/0.5)) + (1 - 0.3*math.Exp(-tv/2))
	fall := math.Exp(-tv / 10)
	expected := rise * fall

	if got := m.Eval(tv); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Eval(%v) = %v, expected %v", tv, got, expected)
	}
}

func TestNegativeTimeConstantsUseAbsoluteValue(t *testing.T) {
	pos := Rise1Fall1{TauRise1: 0.5, AmpFall1: 1, TauFall1: 5, Amp: 1}
	neg := Rise1Fall1{TauRise1: -0.5, AmpFall1: 1, TauFall1: -5, Amp: 1}

	for _, tv := range []float64{0.1, 1, 10} {
		if pos.Eval(tv) != neg.Eval(tv) {
			t.Errorf("Eval(%v) differs between positive and negative time constants", tv)
		}
	}
}

func TestNoGatingBeforeOnset(t *testing.T) {
	m := Rise1Fall1{T0: 0, TauRise1: 0.5, AmpFall1: 1, TauFall1: 5, Amp: 1}

	// Before the onset the exponentials are evaluated as-is; the model
	// is not clamped to zero and grows rapidly negative-side.
	if got := m.Eval(-5); got == 0 {
		t.Error("Eval(-5) = 0; gating must be left to the convolution engine")
	}
	if got := m.Eval(-5); math.IsNaN(got) {
		t.Errorf("Eval(-5) = NaN, expected a finite or infinite value")
	}
}

func TestValidateZeroTimeConstant(t *testing.T) {
	models := []Model{
		Rise1Fall1{TauRise1: 0, TauFall1: 5},
		Rise1Fall1{TauRise1: 0.5, TauFall1: 0},
		Rise1Fall2{TauRise1: 0.5, TauFall1: 5, TauFall2: 0},
		Rise2Fall1{TauRise1: 0.5, TauRise2: 0, TauFall1: 5},
	}

	for i, m := range models {
		if err := m.Validate(); !errors.Is(err, ErrZeroTimeConstant) {
			t.Errorf("models[%d].Validate() = %v, expected ErrZeroTimeConstant", i, err)
		}
	}
}

func TestValidateAcceptsSignedAmplitudes(t *testing.T) {
	m := Rise1Fall2{
		TauRise1: 0.5,
		AmpFall1: -1,
		TauFall1: 5,
		AmpFall2: 0.3,
		TauFall2: 50,
		Offset:   -0.2,
		Amp:      -4,
	}

	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil for signed amplitudes", err)
	}
}
