package response

import "github.com/cwbudde/algo-smooth/internal/core"

// Option configures frame timing for the analysis functions.
type Option = core.FrameOption

// WithFrameRate sets the frame rate in frames per second (default 60).
// Non-positive values are ignored.
func WithFrameRate(fps float64) Option {
	return core.WithFrameRate(fps)
}

// WithFrames sets the number of simulated frames (default 120).
// Non-positive values are ignored.
func WithFrames(n int) Option {
	return core.WithFrames(n)
}
