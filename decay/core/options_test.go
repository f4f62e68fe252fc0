package core

import "testing"

func TestDefaultQuadratureConfig(t *testing.T) {
	cfg := DefaultQuadratureConfig()

	if cfg.WindowStart != -400 {
		t.Errorf("WindowStart = %v, expected -400", cfg.WindowStart)
	}
	if cfg.WindowEnd != 3600 {
		t.Errorf("WindowEnd = %v, expected 3600", cfg.WindowEnd)
	}
	if cfg.Step != 2 {
		t.Errorf("Step = %v, expected 2", cfg.Step)
	}
}

func TestApplyQuadratureOptions(t *testing.T) {
	cfg := ApplyQuadratureOptions(WithWindow(-10, 50), WithStep(0.25))

	if cfg.WindowStart != -10 || cfg.WindowEnd != 50 {
		t.Errorf("window = [%v, %v], expected [-10, 50]", cfg.WindowStart, cfg.WindowEnd)
	}
	if cfg.Step != 0.25 {
		t.Errorf("Step = %v, expected 0.25", cfg.Step)
	}
}

func TestApplyQuadratureOptionsNil(t *testing.T) {
	cfg := ApplyQuadratureOptions(nil, WithStep(1))

	if cfg.Step != 1 {
		t.Errorf("Step = %v, expected 1", cfg.Step)
	}
	if cfg.WindowStart != -400 {
		t.Errorf("WindowStart = %v, expected default -400", cfg.WindowStart)
	}
}
