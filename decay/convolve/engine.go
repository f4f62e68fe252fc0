package convolve

import (
	"errors"

	"github.com/AndreaDuina/igor-fit-lib/decay/core"
	"github.com/AndreaDuina/igor-fit-lib/decay/kinetics"
)

// Errors returned by convolution functions.
var (
	ErrInvalidStep   = errors.New("convolve: step must be positive")
	ErrInvalidWindow = errors.New("convolve: window end must exceed start")
	ErrEmptyInput    = errors.New("convolve: empty input")
	ErrEmptyKernel   = errors.New("convolve: empty kernel")
)

// Policy selects how the quadrature sweep enforces causality.
type Policy int

const (
	// PolicyCausalStart begins the sweep at the model onset, so no
	// sample before the onset is ever generated.
	PolicyCausalStart Policy = iota

	// PolicyFixedWindow sweeps the configured window from its start
	// and skips samples that fall before the onset.
	PolicyFixedWindow
)

// Engine evaluates the instrument-broadened signal by left-endpoint
// rectangular quadrature over a finite window. An Engine is immutable
// after construction and safe for concurrent use.
type Engine struct {
	cfg    core.QuadratureConfig
	policy Policy
}

// NewEngine creates a causal-start engine with the default window
// (-400 to 3600, step 2) unless overridden by quadrature options.
func NewEngine(opts ...core.QuadratureOption) (*Engine, error) {
	return NewEngineWithPolicy(PolicyCausalStart, opts...)
}

// NewEngineWithPolicy creates an engine with an explicit causality
// policy.
func NewEngineWithPolicy(p Policy, opts ...core.QuadratureOption) (*Engine, error) {
	e := &Engine{
		cfg:    core.ApplyQuadratureOptions(opts...),
		policy: p,
	}

	if e.cfg.Step <= 0 {
		return nil, ErrInvalidStep
	}
	if e.cfg.WindowEnd <= e.cfg.WindowStart {
		return nil, ErrInvalidWindow
	}
	return e, nil
}

// Config returns the engine quadrature configuration.
func (e *Engine) Config() core.QuadratureConfig {
	return e.cfg
}

// Convolve approximates ∫ f(y)·g(t−y) dy restricted to y at or after the
// model onset, where f is the kinetic model and g the response.
//
// Values are accumulated in evaluation order with no special handling of
// NaN or Inf: a non-finite model value propagates into the sum. Callers
// driving a fit should treat a non-finite result as a rejected parameter
// set.
func (e *Engine) Convolve(m kinetics.Model, r kinetics.Response, t float64) float64 {
	h := e.cfg.Step
	t0 := m.Onset()

	start := e.cfg.WindowStart
	if e.policy == PolicyCausalStart {
		start = t0
	}
	if start >= e.cfg.WindowEnd {
		return 0
	}

	n := int((e.cfg.WindowEnd - start) / h)
	sum := 0.0
	for i := 0; i < n; i++ {
		y := start + float64(i)*h
		if y < t0 {
			continue
		}
		sum += r.Eval(t-y) * m.Eval(y) * h
	}
	return sum
}

// Convolve is a one-shot convenience that builds a causal-start Engine
// from opts and evaluates the convolution at t.
func Convolve(m kinetics.Model, r kinetics.Response, t float64, opts ...core.QuadratureOption) (float64, error) {
	e, err := NewEngine(opts...)
	if err != nil {
		return 0, err
	}
	return e.Convolve(m, r, t), nil
}

// ConvolveVector evaluates the broadened signal at time t for a legacy
// positional parameter vector (see kinetics.ParseVector for the layout).
func ConvolveVector(v kinetics.Variant, params []float64, t float64, opts ...core.QuadratureOption) (float64, error) {
	m, r, err := kinetics.ParseVector(v, params)
	if err != nil {
		return 0, err
	}
	return Convolve(m, r, t, opts...)
}
