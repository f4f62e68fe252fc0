package convolve

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// directThreshold is the kernel length below which time-domain
// convolution beats the FFT path.
const directThreshold = 64

// Discrete convolves pre-sampled model and response sequences on a
// common uniform grid and returns the broadened curve on the model's
// grid.
//
// f holds the kinetic model sampled with pre-onset values forced to
// zero (see signal.SampleModel); g holds the response kernel sampled
// symmetrically around its peak (see signal.SampleResponse). Each
// output sample is weighted by step so the result approximates the same
// integral as Engine.Convolve at the corresponding grid time.
//
// Short kernels use direct time-domain accumulation; longer kernels go
// through a single FFT round trip. The two backends agree to floating
// point roundoff, not bit-exactly.
func Discrete(f, g []float64, step float64) ([]float64, error) {
	if len(f) == 0 {
		return nil, ErrEmptyInput
	}
	if len(g) == 0 {
		return nil, ErrEmptyKernel
	}
	if step <= 0 {
		return nil, ErrInvalidStep
	}

	var full []float64
	if len(g) <= directThreshold {
		full = discreteDirect(f, g)
	} else {
		var err error
		full, err = discreteFFT(f, g)
		if err != nil {
			return nil, err
		}
	}

	// Trim the full linear convolution to the input grid, centering the
	// kernel, and apply the quadrature weight.
	start := (len(g) - 1) / 2
	out := make([]float64, len(f))
	vecmath.ScaleBlock(out, full[start:start+len(f)], step)
	return out, nil
}

// discreteDirect computes the full linear convolution in the time
// domain, vectorizing the inner accumulation.
func discreteDirect(a, b []float64) []float64 {
	dst := make([]float64, len(a)+len(b)-1)
	temp := make([]float64, len(b))

	for i, v := range a {
		vecmath.ScaleBlock(temp, b, v)
		vecmath.AddBlockInPlace(dst[i:i+len(b)], temp)
	}
	return dst
}

// discreteFFT computes the full linear convolution through a zero-padded
// FFT round trip.
func discreteFFT(a, b []float64) ([]float64, error) {
	n := len(a) + len(b) - 1
	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("convolve: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	fb := make([]complex128, size)
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("convolve: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("convolve: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("convolve: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(fa[i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
