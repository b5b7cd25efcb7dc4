package field

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// FFTAlongAxis computes the forward DFT of length fftLen along one axis.
//
// Lines shorter than fftLen are zero-padded; longer lines are truncated.
// The output shape equals the input shape with the transformed axis replaced
// by fftLen.
func FFTAlongAxis(f *Field, axis, fftLen int) (*Complex, error) {
	if axis < 0 || axis >= len(f.shape) {
		return nil, fmt.Errorf("fft axis %d out of range for %d dims: %w", axis, len(f.shape), core.ErrInvalidInput)
	}
	if fftLen < 1 {
		return nil, fmt.Errorf("fft length must be >= 1, have %d: %w", fftLen, core.ErrInvalidInput)
	}

	outShape := f.Shape()
	outShape[axis] = fftLen
	out := newComplex(outShape)

	plan, err := algofft.NewPlan64(fftLen)
	if err != nil {
		return nil, fmt.Errorf("field: failed to create FFT plan: %w", err)
	}

	srcStride := strides(f.shape)[axis]
	dstStride := strides(outShape)[axis]
	copyLen := min(f.shape[axis], fftLen)

	in := make([]complex128, fftLen)
	res := make([]complex128, fftLen)

	itIn := newAxisIter(f.shape, axis)
	itOut := newAxisIter(outShape, axis)
	for {
		baseIn, ok := itIn.next()
		if !ok {
			break
		}
		baseOut, _ := itOut.next()

		core.ZeroComplex(in)
		for k := range copyLen {
			in[k] = complex(f.data[baseIn+k*srcStride], 0)
		}

		if err := plan.Forward(res, in); err != nil {
			return nil, fmt.Errorf("field: forward FFT failed: %w", err)
		}

		for k := range fftLen {
			out.data[baseOut+k*dstStride] = res[k]
		}
	}

	return out, nil
}

// FFTN computes the full N-dimensional forward DFT of a real field.
func FFTN(f *Field) (*Complex, error) {
	out := newComplex(f.shape)
	for i, v := range f.data {
		out.data[i] = complex(v, 0)
	}

	var in, res []complex128
	for axis := range f.shape {
		n := out.shape[axis]
		in = core.EnsureComplexLen(in, n)
		res = core.EnsureComplexLen(res, n)
		if err := transformAxisInPlace(out, axis, false, in, res); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// IFFTN computes the full N-dimensional inverse DFT, including the 1/N
// normalisation over all axes.
func IFFTN(c *Complex) (*Complex, error) {
	out := newComplex(c.shape)
	copy(out.data, c.data)

	var in, res []complex128
	for axis := range c.shape {
		n := out.shape[axis]
		in = core.EnsureComplexLen(in, n)
		res = core.EnsureComplexLen(res, n)
		if err := transformAxisInPlace(out, axis, true, in, res); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// transformAxisInPlace runs a forward or inverse transform along one axis of
// a complex array, line by line. in and res are caller-provided scratch of
// the axis length.
func transformAxisInPlace(c *Complex, axis int, inverse bool, in, res []complex128) error {
	n := c.shape[axis]
	if n == 1 {
		return nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("field: failed to create FFT plan: %w", err)
	}

	stride := strides(c.shape)[axis]

	it := newAxisIter(c.shape, axis)
	for {
		base, ok := it.next()
		if !ok {
			break
		}

		for k := range n {
			in[k] = c.data[base+k*stride]
		}

		if inverse {
			err = plan.Inverse(res, in)
		} else {
			err = plan.Forward(res, in)
		}
		if err != nil {
			return fmt.Errorf("field: FFT along axis %d failed: %w", axis, err)
		}

		for k := range n {
			c.data[base+k*stride] = res[k]
		}
	}
	return nil
}
