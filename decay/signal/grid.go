// Package signal builds uniform time grids and pointwise samples of
// kinetic models and response kernels for the discrete convolution path.
package signal

import (
	"errors"
	"math"

	"github.com/AndreaDuina/igor-fit-lib/decay/kinetics"
)

// Errors returned by grid construction.
var (
	ErrInvalidGrid      = errors.New("signal: grid step and length must be positive")
	ErrInvalidHalfWidth = errors.New("signal: kernel half width must be non-negative")
)

// Grid is a uniform time grid of N samples starting at Start.
type Grid struct {
	Start float64
	Step  float64
	N     int
}

// NewGrid creates a validated grid.
func NewGrid(start, step float64, n int) (Grid, error) {
	g := Grid{Start: start, Step: step, N: n}
	if step <= 0 || n <= 0 {
		return Grid{}, ErrInvalidGrid
	}
	return g, nil
}

// Time returns the i-th sample time.
func (g Grid) Time(i int) float64 {
	return g.Start + float64(i)*g.Step
}

// Times returns all sample times.
func (g Grid) Times() []float64 {
	out := make([]float64, g.N)
	for i := range out {
		out[i] = g.Time(i)
	}
	return out
}

// Sample evaluates fn at every grid time.
func (g Grid) Sample(fn func(float64) float64) []float64 {
	out := make([]float64, g.N)
	for i := range out {
		out[i] = fn(g.Time(i))
	}
	return out
}

// SampleModel evaluates m on the grid with samples before the onset
// forced to zero, producing the causal sequence the discrete
// convolution expects. The models themselves apply no gating and can
// blow up before the onset, so the gate lives here.
func SampleModel(g Grid, m kinetics.Model) []float64 {
	t0 := m.Onset()
	out := make([]float64, g.N)
	for i := range out {
		t := g.Time(i)
		if t < t0 {
			continue
		}
		out[i] = m.Eval(t)
	}
	return out
}

// SampleResponse samples r symmetrically around its peak out to
// ±halfWidth at the given spacing, returning an odd-length centered
// kernel suitable for Discrete convolution. A halfWidth of five times
// the FWHM keeps the truncated tail below 1e-30 of the peak.
func SampleResponse(r kinetics.Response, step, halfWidth float64) ([]float64, error) {
	if step <= 0 {
		return nil, ErrInvalidGrid
	}
	if halfWidth < 0 || math.IsNaN(halfWidth) {
		return nil, ErrInvalidHalfWidth
	}

	n := int(halfWidth / step)
	out := make([]float64, 2*n+1)
	for i := range out {
		out[i] = r.Eval(float64(i-n) * step)
	}
	return out, nil
}
