package gridfilter

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
	"github.com/cwbudde/acoustic-dsp/dsp/field"
	"github.com/cwbudde/acoustic-dsp/dsp/filter/fir"
)

// Option configures FilterTimeSeries.
type Option func(*config)

type config struct {
	ppw             int
	rampPPW         int
	stopBandAtten   float64
	transitionWidth float64
	zeroPhase       bool
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		ppw:             3,
		stopBandAtten:   60,
		transitionWidth: 0.1,
		logger:          slog.Default(),
	}
}

// WithPointsPerWavelength sets the minimum number of grid points per
// wavelength passed through the filter (default 3). Higher values lower the
// cutoff frequency. Zero disables the low-pass stage entirely.
func WithPointsPerWavelength(ppw int) Option {
	return func(c *config) {
		if ppw >= 0 {
			c.ppw = ppw
		}
	}
}

// WithRampPointsPerWavelength enables a raised-cosine start-up ramp of the
// given points per wavelength (default 0, disabled). The ramp tapers the
// onset of the filtered signal to suppress the startup transient.
func WithRampPointsPerWavelength(rppw int) Option {
	return func(c *config) {
		if rppw >= 0 {
			c.rampPPW = rppw
		}
	}
}

// WithStopBandAttenuation sets the filter stop-band attenuation in dB
// (default 60).
func WithStopBandAttenuation(db float64) Option {
	return func(c *config) {
		if db > 0 {
			c.stopBandAtten = db
		}
	}
}

// WithTransitionWidth sets the filter transition width as a fraction of the
// sampling frequency (default 0.1).
func WithTransitionWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.transitionWidth = w
		}
	}
}

// WithZeroPhase applies the low-pass stage as a zero-phase filter.
func WithZeroPhase() Option {
	return func(c *config) { c.zeroPhase = true }
}

// WithLogger routes status output to the given logger instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// FilterTimeSeries low-pass filters a time series to the frequency range
// supported by the grid and medium.
//
// The cutoff is derived from the grid's maximum supported frequency
// f_max = k_max * c0 / (2*pi) as cutoff = 2 * f_max / ppw, with c0 the
// slowest sound speed in the medium. The returned field keeps the
// orientation of the input vector.
func FilterTimeSeries(signal *field.Field, grid Grid, medium Medium, opts ...Option) (*field.Field, error) {
	if signal == nil || !signal.IsVector() {
		return nil, fmt.Errorf("gridfilter: input signal must be a row or column vector: %w", core.ErrInvalidInput)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.rampPPW != 0 && cfg.ppw == 0 {
		return nil, fmt.Errorf("gridfilter: start-up ramp requires a nonzero points-per-wavelength: %w", core.ErrInvalidArgument)
	}

	dt, ok := grid.TimeStep()
	if !ok {
		return nil, fmt.Errorf("gridfilter: grid time step must be set explicitly: %w", core.ErrConfiguration)
	}

	c0, err := minSoundSpeed(medium)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("filtering input signal")

	fs := 1 / dt

	// the grid resolves frequencies up to two points per wavelength
	fMax := grid.MaxWavenumber() * c0 / (2 * math.Pi)
	cfg.logger.Info("grid frequency limit", "f_max_hz", fMax)

	out := append([]float64(nil), signal.Data()...)

	var cutoff float64
	if cfg.ppw != 0 {
		cutoff = 2 * fMax / float64(cfg.ppw)
		cfg.logger.Info("filter cutoff", "cutoff_hz", cutoff, "ppw", cfg.ppw)

		out, err = fir.Apply(out, fs, fir.LowPass(cutoff), firOptions(cfg)...)
		if err != nil {
			return nil, err
		}
	}

	if cfg.rampPPW != 0 {
		// cutoff wavelength in time steps sets the ramp length
		wavelength := (2 * math.Pi / cutoff) / dt
		rampLength := int(math.Round(float64(cfg.rampPPW) * wavelength / (2 * float64(cfg.ppw))))

		for i := 1; i < rampLength && i < len(out); i++ {
			out[i] *= (1 - math.Cos(float64(i)*math.Pi/float64(rampLength))) / 2
		}

		cfg.logger.Info("start-up ramp",
			"ramp_hz", math.Pi/(float64(rampLength)*dt),
			"ramp_ppw", cfg.rampPPW)
	}

	cfg.logger.Info("filtering complete")

	return field.FromData(out, signal.Shape()...)
}

func firOptions(cfg config) []fir.DesignOption {
	opts := []fir.DesignOption{
		fir.WithStopBandAttenuation(cfg.stopBandAtten),
		fir.WithTransitionWidth(cfg.transitionWidth),
	}
	if cfg.zeroPhase {
		opts = append(opts, fir.WithZeroPhase())
	}
	return opts
}
