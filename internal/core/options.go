package core

// FrameConfig defines the frame timing used when analysing a smoother.
type FrameConfig struct {
	FrameRate float64
	Frames    int
}

// FrameOption mutates a FrameConfig.
type FrameOption func(*FrameConfig)

// DefaultFrameConfig returns 60 frames per second over two seconds.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		FrameRate: 60,
		Frames:    120,
	}
}

// WithFrameRate sets the frame rate in frames per second.
func WithFrameRate(fps float64) FrameOption {
	return func(cfg *FrameConfig) {
		if fps > 0 {
			cfg.FrameRate = fps
		}
	}
}

// WithFrames sets the number of frames to simulate.
func WithFrames(n int) FrameOption {
	return func(cfg *FrameConfig) {
		if n > 0 {
			cfg.Frames = n
		}
	}
}

// ApplyFrameOptions applies zero or more options to the default config.
func ApplyFrameOptions(opts ...FrameOption) FrameConfig {
	cfg := DefaultFrameConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Delta returns the frame duration in seconds.
func (c FrameConfig) Delta() float64 {
	return 1 / c.FrameRate
}
