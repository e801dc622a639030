package response

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/cwbudde/algo-smooth/internal/core"
	"github.com/cwbudde/algo-smooth/smooth"
)

// StepResponse drives a component from 0 towards 1, once per frame, and
// returns Current after each frame.
func StepResponse(retention float64, opts ...Option) ([]float64, error) {
	if err := validateRetention(retention); err != nil {
		return nil, err
	}
	cfg := core.ApplyFrameOptions(opts...)

	c := smooth.NewLinear[smooth.Scalar](float32(retention), 0)
	c.Target = 1

	dt := float32(cfg.Delta())
	out := make([]float64, cfg.Frames)
	for i := range out {
		out[i] = float64(c.Drive(dt))
	}
	return out, nil
}

// ImpulseResponse returns the response of a component whose target is 1 for
// the first frame and 0 afterwards.
func ImpulseResponse(retention float64, opts ...Option) ([]float64, error) {
	if err := validateRetention(retention); err != nil {
		return nil, err
	}
	cfg := core.ApplyFrameOptions(opts...)

	c := smooth.NewLinear[smooth.Scalar](float32(retention), 0)
	dt := float32(cfg.Delta())

	out := make([]float64, cfg.Frames)
	for i := range out {
		if i == 0 {
			c.Target = 1
		} else {
			c.Target = 0
		}
		out[i] = float64(c.Drive(dt))
	}
	return out, nil
}

// SpringStep returns the step response of a damped spring with the given
// angular frequency and damping ratio, sampled once per frame. Damping 1 is
// critically damped, below 1 overshoots.
func SpringStep(frequency, damping float64, opts ...Option) ([]float64, error) {
	if frequency <= 0 || damping < 0 {
		return nil, fmt.Errorf("%w: frequency %v damping %v", ErrInvalidSpring, frequency, damping)
	}
	cfg := core.ApplyFrameOptions(opts...)

	spring := harmonica.NewSpring(cfg.Delta(), frequency, damping)
	var pos, vel float64

	out := make([]float64, cfg.Frames)
	for i := range out {
		pos, vel = spring.Update(pos, vel, 1)
		out[i] = pos
	}
	return out, nil
}

// SettleFrames returns the number of frames after which curve stays within
// tol of target, or -1 if it never settles.
func SettleFrames(curve []float64, target, tol float64) int {
	settled := -1
	for i := len(curve) - 1; i >= 0; i-- {
		if math.Abs(curve[i]-target) > tol {
			break
		}
		settled = i
	}
	if settled < 0 {
		return -1
	}
	return settled + 1
}

// Overshoot returns how far curve exceeds target, or 0 if it never does.
func Overshoot(curve []float64, target float64) float64 {
	peak := 0.0
	for _, v := range curve {
		if d := v - target; d > peak {
			peak = d
		}
	}
	return peak
}
