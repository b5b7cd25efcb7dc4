package gridfilter

import (
	"fmt"
	"math"

	"github.com/cwbudde/acoustic-dsp/dsp/core"
)

// Grid describes the temporal and spatial resolution of a simulation grid.
type Grid interface {
	// TimeStep returns the sampling interval in seconds. ok is false while
	// the time step has not been set explicitly.
	TimeStep() (dt float64, ok bool)

	// MaxWavenumber returns the largest wavenumber supported by the grid in
	// rad/m.
	MaxWavenumber() float64
}

// Medium describes the sound speeds of the propagation medium. Each method
// returns nil when the corresponding field is undefined.
type Medium interface {
	SoundSpeed() []float64
	SoundSpeedCompression() []float64
	SoundSpeedShear() []float64
}

// SimGrid is a minimal Grid backed by plain values.
type SimGrid struct {
	dt   float64
	kMax float64
}

// NewSimGrid creates a grid description from a time step in seconds and a
// maximum supported wavenumber in rad/m. A zero or negative time step marks
// the grid as having no explicit time step.
func NewSimGrid(timeStep, maxWavenumber float64) SimGrid {
	return SimGrid{dt: timeStep, kMax: maxWavenumber}
}

func (g SimGrid) TimeStep() (float64, bool) { return g.dt, g.dt > 0 }

func (g SimGrid) MaxWavenumber() float64 { return g.kMax }

// SimMedium is a minimal Medium backed by plain slices. A nil slice leaves
// the corresponding field undefined.
type SimMedium struct {
	Speed            []float64
	CompressionSpeed []float64
	ShearSpeed       []float64
}

func (m SimMedium) SoundSpeed() []float64 { return m.Speed }

func (m SimMedium) SoundSpeedCompression() []float64 { return m.CompressionSpeed }

func (m SimMedium) SoundSpeedShear() []float64 { return m.ShearSpeed }

// minSoundSpeed extracts the slowest sound speed of the medium. Fluid media
// use the plain sound speed field; elastic media combine compressional and
// shear speeds with zero entries discarded, since a zero shear speed marks a
// fluid region rather than a propagating wave mode.
func minSoundSpeed(m Medium) (float64, error) {
	if ss := m.SoundSpeed(); len(ss) > 0 {
		c0 := ss[0]
		for _, c := range ss[1:] {
			c0 = math.Min(c0, c)
		}
		return c0, nil
	}

	comp, shear := m.SoundSpeedCompression(), m.SoundSpeedShear()
	if len(comp) > 0 && len(shear) > 0 {
		c0 := math.Inf(1)
		for _, c := range comp {
			if c != 0 {
				c0 = math.Min(c0, c)
			}
		}
		for _, c := range shear {
			if c != 0 {
				c0 = math.Min(c0, c)
			}
		}
		if !math.IsInf(c0, 1) {
			return c0, nil
		}
		return 0, fmt.Errorf("gridfilter: all elastic sound speeds are zero: %w", core.ErrConfiguration)
	}

	return 0, fmt.Errorf("gridfilter: medium defines neither sound speed nor compression and shear speeds: %w", core.ErrConfiguration)
}
