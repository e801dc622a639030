package preset

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-smooth/internal/core"
	"github.com/cwbudde/algo-smooth/smooth"
)

// ErrInvalidPreset is returned for presets with an empty name, a retention
// outside [0, 1] or an unknown kind.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// Kind selects the smoothing rule a preset is meant for.
type Kind string

const (
	KindLinear   Kind = "linear"
	KindRotation Kind = "rotation"
)

// Preset is a named retention value.
type Preset struct {
	Name        string  `yaml:"name"`
	Retention   float64 `yaml:"retention"`
	Kind        Kind    `yaml:"kind"`
	Description string  `yaml:"description,omitempty"`
}

// Validate reports whether p is usable.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if !core.ValidRetention(p.Retention) {
		return fmt.Errorf("%w: %s: retention %v outside [0, 1]", ErrInvalidPreset, p.Name, p.Retention)
	}
	switch p.Kind {
	case KindLinear, KindRotation:
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidPreset, p.Name, p.Kind)
	}
	return nil
}

// NewLinear creates a linear component using the preset's retention.
func NewLinear[T smooth.Lerpable[T]](p Preset, initial T) (smooth.Translation[T], error) {
	if p.Kind != KindLinear {
		return smooth.Translation[T]{}, fmt.Errorf("%w: %s is a %s preset", ErrInvalidPreset, p.Name, p.Kind)
	}
	return smooth.NewLinear(float32(p.Retention), initial), nil
}

// NewRotation creates a rotation component using the preset's retention.
func NewRotation(p Preset, initial mgl32.Quat) (smooth.Rotation, error) {
	if p.Kind != KindRotation {
		return smooth.Rotation{}, fmt.Errorf("%w: %s is a %s preset", ErrInvalidPreset, p.Name, p.Kind)
	}
	return smooth.NewRotation(float32(p.Retention), initial), nil
}
