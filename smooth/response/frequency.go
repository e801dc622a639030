package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/internal/core"
)

// Spectrum is the magnitude response of a smoother from DC to Nyquist.
type Spectrum struct {
	// Frequencies holds the bin centre frequencies in Hz.
	Frequencies []float64
	// Magnitude holds the linear gain per bin.
	Magnitude []float64
}

// DB returns the magnitude in dB.
func (s Spectrum) DB() []float64 {
	out := make([]float64, len(s.Magnitude))
	for i, m := range s.Magnitude {
		out[i] = core.LinearToDB(m)
	}
	return out
}

// GainAt returns the magnitude of the bin nearest to hz.
func (s Spectrum) GainAt(hz float64) float64 {
	if len(s.Frequencies) < 2 {
		return 0
	}
	step := s.Frequencies[1] - s.Frequencies[0]
	i := int(hz/step + 0.5)
	if i < 0 {
		i = 0
	}
	if i >= len(s.Magnitude) {
		i = len(s.Magnitude) - 1
	}
	return s.Magnitude[i]
}

// FrequencyBelow returns the first bin frequency at which the gain has
// dropped below db (negative, in dB). It returns the Nyquist frequency when
// the gain never drops that far.
func (s Spectrum) FrequencyBelow(db float64) float64 {
	if len(s.Frequencies) == 0 {
		return 0
	}
	limit := core.DBToLinear(db)
	for i, m := range s.Magnitude {
		if m < limit {
			return s.Frequencies[i]
		}
	}
	return s.Frequencies[len(s.Frequencies)-1]
}

// FrequencyResponse computes the magnitude response of retention from an
// FFT of its first size frames of impulse response. size must be a power of
// two; slow smoothers need a large size for the truncated tail to be
// negligible.
func FrequencyResponse(retention float64, size int, opts ...Option) (Spectrum, error) {
	if err := validateSize(size); err != nil {
		return Spectrum{}, err
	}
	cfg := core.ApplyFrameOptions(opts...)

	frameOpts := append(append([]Option(nil), opts...), WithFrames(size))
	impulse, err := ImpulseResponse(retention, frameOpts...)
	if err != nil {
		return Spectrum{}, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, size)
	for i, v := range impulse {
		src[i] = complex(v, 0)
	}
	freq := make([]complex128, size)
	if err := plan.Forward(freq, src); err != nil {
		return Spectrum{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := Spectrum{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
	}
	vecmath.Magnitude(out.Magnitude, re, im)
	for i := range out.Frequencies {
		out.Frequencies[i] = float64(i) * cfg.FrameRate / float64(size)
	}
	return out, nil
}
