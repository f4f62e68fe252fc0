// Package convolve computes the broadened decay signal: the convolution
// of a causal kinetic model with the Gaussian instrument response.
//
// Two implementations are provided:
//
//   - Engine: fixed-step rectangular quadrature of ∫ f(y)·g(t−y) dy over
//     a finite window, restricted to times at or after the model onset.
//     This is the reference path; its accuracy scales linearly with the
//     step size.
//   - Discrete: FFT- or vecmath-accelerated convolution of pre-sampled
//     sequences on a uniform grid. A faster drop-in for whole-curve
//     evaluation; it agrees with the quadrature engine as the step
//     approaches the grid spacing but is not bit-identical to it.
//
// # Usage
//
// Point-wise evaluation via quadrature:
//
//	e, _ := convolve.NewEngine(core.WithWindow(-20, 60), core.WithStep(0.05))
//	v := e.Convolve(model, response, t)
//
// Whole-curve evaluation via the discrete path:
//
//	f := signal.SampleModel(grid, model)
//	g := signal.SampleResponse(response, grid.Step, 5*response.FWHM)
//	curve, _ := convolve.Discrete(f, g, grid.Step)
//
// # Causality policies
//
// The engine enforces the Heaviside onset in one of two equivalent ways:
// PolicyCausalStart begins the sweep at the onset so no pre-onset sample
// is ever generated; PolicyFixedWindow sweeps the whole window and skips
// samples before the onset. Both converge to the same value when the
// window start lies at or before the onset; the causal start is strictly
// cheaper.
package convolve
