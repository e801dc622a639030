package smooth

import "github.com/go-gl/mathgl/mgl32"

// Retention presets used by the New* constructors.
const (
	RetentionTranslate float32 = 0.01
	RetentionZoom      float32 = 0.03
	RetentionAngle     float32 = 0.04
	RetentionRotate    float32 = 0.04
)

// NewTranslate creates a linear component with a retention of 0.01.
func NewTranslate[T Lerpable[T]](initial T) Translation[T] {
	return NewLinear(RetentionTranslate, initial)
}

// NewZoom creates a linear component with a retention of 0.03.
func NewZoom[T Lerpable[T]](initial T) Translation[T] {
	return NewLinear(RetentionZoom, initial)
}

// NewAngle creates a linear component with a retention of 0.04.
func NewAngle[T Lerpable[T]](initial T) Translation[T] {
	return NewLinear(RetentionAngle, initial)
}

// NewRotate creates a rotation component with a retention of 0.04.
func NewRotate(initial mgl32.Quat) Rotation {
	return NewRotation(RetentionRotate, initial)
}
