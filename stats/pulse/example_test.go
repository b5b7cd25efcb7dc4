package pulse_test

import (
	"fmt"

	"github.com/cwbudde/acoustic-dsp/stats/pulse"
)

func ExampleFullWidthHalfMax() {
	values := []float64{0, 1, 2, 3, 2, 1, 0}
	positions := []float64{0, 1, 2, 3, 4, 5, 6}

	w, err := pulse.FullWidthHalfMax(values, positions)
	if err != nil {
		panic(err)
	}
	fmt.Printf("width=%.1f edges=[%.1f, %.1f]\n", w.Value, w.LeftEdge, w.RightEdge)

	// Output:
	// width=3.0 edges=[1.5, 4.5]
}
