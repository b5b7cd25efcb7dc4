package field

// IFFTShiftN moves the centered zero-frequency sample of an N-dimensional
// window to index 0 along every axis, undoing an fftshift. For even axis
// lengths this equals FFTShift along that axis.
func IFFTShiftN(f *Field) *Field {
	out := &Field{
		data:  make([]float64, len(f.data)),
		shape: append([]int(nil), f.shape...),
	}

	st := strides(f.shape)
	idx := make([]int, len(f.shape))
	for dst := range out.data {
		src := 0
		for k, n := range f.shape {
			src += ((idx[k] + n/2) % n) * st[k]
		}
		out.data[dst] = f.data[src]

		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < f.shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out
}

// FFTShift1D rotates a complex line so the zero-frequency bin moves to the
// center: out[j] = in[(j + ceil(n/2)) mod n].
func FFTShift1D(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	shift := n - n/2
	for j := range out {
		out[j] = in[(j+shift)%n]
	}
	return out
}

// IFFTShift1D undoes FFTShift1D: out[j] = in[(j + floor(n/2)) mod n].
func IFFTShift1D(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for j := range out {
		out[j] = in[(j+n/2)%n]
	}
	return out
}
