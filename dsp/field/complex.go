package field

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// Complex is the complex-valued counterpart of Field, produced by the
// forward transforms.
type Complex struct {
	data  []complex128
	shape []int
}

func newComplex(shape []int) *Complex {
	return &Complex{
		data:  make([]complex128, numElements(shape)),
		shape: append([]int(nil), shape...),
	}
}

// Dims returns the number of dimensions.
func (c *Complex) Dims() int { return len(c.shape) }

// Shape returns a copy of the dimension sizes.
func (c *Complex) Shape() []int { return append([]int(nil), c.shape...) }

// Size returns the length along the given axis.
func (c *Complex) Size(axis int) int { return c.shape[axis] }

// NumElements returns the total element count.
func (c *Complex) NumElements() int { return len(c.data) }

// Data returns the backing storage in row-major order.
func (c *Complex) Data() []complex128 { return c.data }

// SliceAxis returns a copy truncated to the first n elements along axis.
func (c *Complex) SliceAxis(axis, n int) (*Complex, error) {
	if axis < 0 || axis >= len(c.shape) {
		return nil, fmt.Errorf("slice axis %d out of range for %d dims: %w", axis, len(c.shape), core.ErrInvalidInput)
	}
	if n < 1 || n > c.shape[axis] {
		return nil, fmt.Errorf("slice length %d out of range for axis size %d: %w", n, c.shape[axis], core.ErrInvalidInput)
	}

	outShape := c.Shape()
	outShape[axis] = n
	out := newComplex(outShape)

	stride := strides(c.shape)[axis]
	outStride := strides(outShape)[axis]

	itIn := newAxisIter(c.shape, axis)
	itOut := newAxisIter(outShape, axis)
	for {
		baseIn, ok := itIn.next()
		if !ok {
			break
		}
		baseOut, _ := itOut.next()
		for k := range n {
			out.data[baseOut+k*outStride] = c.data[baseIn+k*stride]
		}
	}

	return out, nil
}

// Real returns the real part as a Field of the same shape.
func (c *Complex) Real() *Field {
	out := &Field{
		data:  make([]float64, len(c.data)),
		shape: append([]int(nil), c.shape...),
	}
	for i, v := range c.data {
		out.data[i] = real(v)
	}
	return out
}
