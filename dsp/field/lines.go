package field

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// FromData wraps data as a field with the given shape. The slice is not
// copied; its length must match the shape's element count.
func FromData(data []float64, shape ...int) (*Field, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	if len(data) != numElements(shape) {
		return nil, fmt.Errorf("data length %d does not match shape element count %d: %w",
			len(data), numElements(shape), core.ErrInvalidInput)
	}

	return &Field{data: data, shape: append([]int(nil), shape...)}, nil
}

// Stride returns the element spacing along axis for a row-major array of the
// given shape.
func Stride(shape []int, axis int) int {
	return strides(shape)[axis]
}

// ForEachLine calls fn with the flat offset of the first element of every
// 1-D line along axis. Elements within a line are Stride(shape, axis) apart.
func ForEachLine(shape []int, axis int, fn func(base int)) {
	it := newAxisIter(shape, axis)
	for {
		base, ok := it.next()
		if !ok {
			return
		}
		fn(base)
	}
}
