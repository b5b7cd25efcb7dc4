package field

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// MaxDims is the largest supported number of dimensions.
const MaxDims = 4

// Field is a dense row-major real array with 1 to 4 dimensions.
type Field struct {
	data  []float64
	shape []int
}

// New allocates a zero-filled field with the given shape.
func New(shape ...int) (*Field, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	return &Field{
		data:  make([]float64, numElements(shape)),
		shape: append([]int(nil), shape...),
	}, nil
}

// FromSlice wraps data as a 1-D field. The slice is not copied.
func FromSlice(data []float64) *Field {
	return &Field{data: data, shape: []int{len(data)}}
}

// From2D copies rows into a 2-D field of shape (len(rows), len(rows[0])).
// All rows must have equal length.
func From2D(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("field from 2-D data must not be empty: %w", core.ErrInvalidInput)
	}

	cols := len(rows[0])
	out, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("field row %d has length %d, want %d: %w", i, len(row), cols, core.ErrInvalidInput)
		}
		copy(out.data[i*cols:(i+1)*cols], row)
	}

	return out, nil
}

// Dims returns the number of dimensions.
func (f *Field) Dims() int { return len(f.shape) }

// Shape returns a copy of the dimension sizes.
func (f *Field) Shape() []int { return append([]int(nil), f.shape...) }

// Size returns the length along the given axis.
func (f *Field) Size(axis int) int { return f.shape[axis] }

// NumElements returns the total element count.
func (f *Field) NumElements() int { return len(f.data) }

// Data returns the backing storage in row-major order.
func (f *Field) Data() []float64 { return f.data }

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{
		data:  append([]float64(nil), f.data...),
		shape: append([]int(nil), f.shape...),
	}
}

// At returns the element at the given multi-index.
func (f *Field) At(idx ...int) float64 {
	return f.data[f.flatIndex(idx)]
}

// SetAt stores v at the given multi-index.
func (f *Field) SetAt(v float64, idx ...int) {
	f.data[f.flatIndex(idx)] = v
}

// MaxAbs returns the largest absolute element value.
func (f *Field) MaxAbs() float64 {
	maxAbs := 0.0
	for _, v := range f.data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	return maxAbs
}

// IsVector reports whether the field is 1-D, or 2-D with a singleton row or
// column dimension.
func (f *Field) IsVector() bool {
	switch len(f.shape) {
	case 1:
		return true
	case 2:
		return f.shape[0] == 1 || f.shape[1] == 1
	default:
		return false
	}
}

// Transpose2D returns the transpose of a 2-D field.
func (f *Field) Transpose2D() (*Field, error) {
	if len(f.shape) != 2 {
		return nil, fmt.Errorf("transpose requires a 2-D field, have %d dims: %w", len(f.shape), core.ErrInvalidInput)
	}

	rows, cols := f.shape[0], f.shape[1]
	out, _ := New(cols, rows)
	for i := range rows {
		for j := range cols {
			out.data[j*rows+i] = f.data[i*cols+j]
		}
	}
	return out, nil
}

func (f *Field) flatIndex(idx []int) int {
	if len(idx) != len(f.shape) {
		panic(fmt.Sprintf("field: index rank %d does not match shape rank %d", len(idx), len(f.shape)))
	}

	st := strides(f.shape)
	flat := 0
	for k, i := range idx {
		if i < 0 || i >= f.shape[k] {
			panic(fmt.Sprintf("field: index %d out of range for axis %d (size %d)", i, k, f.shape[k]))
		}
		flat += i * st[k]
	}
	return flat
}

func validateShape(shape []int) error {
	if len(shape) == 0 || len(shape) > MaxDims {
		return fmt.Errorf("field shape must have 1 to %d dimensions, have %d: %w", MaxDims, len(shape), core.ErrInvalidInput)
	}

	for k, n := range shape {
		if n < 1 {
			return fmt.Errorf("field axis %d must have size >= 1, have %d: %w", k, n, core.ErrInvalidInput)
		}
	}
	return nil
}

func numElements(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// strides returns the row-major element strides for shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= shape[k]
	}
	return st
}

// axisIter enumerates the flat start offsets of every 1-D line along one
// axis of a row-major array.
type axisIter struct {
	shape   []int
	strides []int
	axis    int
	idx     []int
	done    bool
}

func newAxisIter(shape []int, axis int) *axisIter {
	return &axisIter{
		shape:   shape,
		strides: strides(shape),
		axis:    axis,
		idx:     make([]int, len(shape)),
	}
}

// next returns the flat offset of the next line's first element.
func (it *axisIter) next() (base int, ok bool) {
	if it.done {
		return 0, false
	}

	for k := range it.shape {
		base += it.idx[k] * it.strides[k]
	}

	k := len(it.shape) - 1
	for k >= 0 {
		if k == it.axis {
			k--
			continue
		}
		it.idx[k]++
		if it.idx[k] < it.shape[k] {
			break
		}
		it.idx[k] = 0
		k--
	}
	if k < 0 {
		it.done = true
	}

	return base, true
}
