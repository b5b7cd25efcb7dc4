package window

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

// Parse resolves a window name to its Type. Matching is case-insensitive and
// accepts the common aliases Hanning, Bartlett, and Gaussian.
func Parse(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "rectangular", "rect", "boxcar":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "blackman-harris", "blackmanharris":
		return TypeBlackmanHarris, nil
	case "flattop", "flat-top":
		return TypeFlatTop, nil
	case "kaiser":
		return TypeKaiser, nil
	case "tukey":
		return TypeTukey, nil
	case "triangle", "triangular", "bartlett":
		return TypeTriangle, nil
	case "cosine", "sine":
		return TypeCosine, nil
	case "welch":
		return TypeWelch, nil
	case "lanczos":
		return TypeLanczos, nil
	case "gauss", "gaussian":
		return TypeGauss, nil
	default:
		return TypeRectangular, fmt.Errorf("unknown window name %q: %w", name, core.ErrInvalidArgument)
	}
}
