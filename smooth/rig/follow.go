package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-smooth/smooth"
)

// RetentionFocus is the retention used for the focus point of a Follow
// camera. It tracks much tighter than the eye so the subject stays framed.
const RetentionFocus float32 = 0.001

// Follow is a camera that looks from a smoothed eye position at a smoothed
// focus point.
type Follow struct {
	Eye   smooth.Translation[mgl32.Vec3]
	Focus smooth.Translation[mgl32.Vec3]
	Up    mgl32.Vec3
}

// NewFollow creates a follow camera with +Y as up.
func NewFollow(eye, focus mgl32.Vec3) *Follow {
	return &Follow{
		Eye:   smooth.NewTranslate(eye),
		Focus: smooth.NewLinear(RetentionFocus, focus),
		Up:    mgl32.Vec3{0, 1, 0},
	}
}

// Track sets the focus target and keeps the eye at offset from it.
func (f *Follow) Track(subject, offset mgl32.Vec3) {
	f.Focus.Target = subject
	f.Eye.Target = subject.Add(offset)
}

// View drives the eye, then the focus, and returns the world-to-camera
// matrix looking from one to the other.
func (f *Follow) View(elapsed float32) mgl32.Mat4 {
	eye := f.Eye.Drive(elapsed)
	return f.Focus.Begin(func(focus mgl32.Vec3) mgl32.Mat4 {
		return mgl32.LookAtV(eye, focus, f.Up)
	}).Drive(elapsed)
}
