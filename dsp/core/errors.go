package core

import "errors"

// Error kinds shared across the library. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can match on the kind with
// errors.Is while still seeing the local context.
var (
	// ErrInvalidInput reports malformed data: wrong dimensionality, scalar
	// where a vector is required, or values the algorithm cannot process.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument reports a bad parameter: unknown filter type,
	// unknown window name, malformed band-pass cutoff pair.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration reports missing collaborator state: grid time step
	// unset, medium sound-speed fields undefined.
	ErrConfiguration = errors.New("invalid configuration")
)
