package core

// QuadratureConfig defines the integration window and step shared by the
// convolution engine and grid sampling.
type QuadratureConfig struct {
	WindowStart float64
	WindowEnd   float64
	Step        float64
}

// QuadratureOption mutates a QuadratureConfig.
type QuadratureOption func(*QuadratureConfig)

// DefaultQuadratureConfig returns the historical window and step used for
// transient fitting: a sweep from -400 to 3600 time units in steps of 2.
func DefaultQuadratureConfig() QuadratureConfig {
	return QuadratureConfig{
		WindowStart: -400,
		WindowEnd:   3600,
		Step:        2,
	}
}

// WithWindow sets the integration window bounds.
func WithWindow(start, end float64) QuadratureOption {
	return func(cfg *QuadratureConfig) {
		cfg.WindowStart = start
		cfg.WindowEnd = end
	}
}

// WithStep sets the quadrature step size.
func WithStep(step float64) QuadratureOption {
	return func(cfg *QuadratureConfig) {
		cfg.Step = step
	}
}

// ApplyQuadratureOptions applies zero or more options to the default config.
func ApplyQuadratureOptions(opts ...QuadratureOption) QuadratureConfig {
	cfg := DefaultQuadratureConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
