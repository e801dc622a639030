package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-smooth/smooth"
)

// Camera is a free camera with smoothed position, orientation and zoom.
// Callers move the targets (directly or through Move, Turn and ZoomBy) and
// call View once per frame.
type Camera struct {
	Position smooth.Translation[mgl32.Vec3]
	Looking  smooth.Rotation
	Zoom     smooth.Linear1
}

// NewCamera creates a camera at position with the given orientation and a
// zoom of 1, using the default presets.
func NewCamera(position mgl32.Vec3, looking mgl32.Quat) *Camera {
	return &Camera{
		Position: smooth.NewTranslate(position),
		Looking:  smooth.NewRotate(looking),
		Zoom:     smooth.NewZoom[smooth.Scalar](1),
	}
}

// Move shifts the position target by delta.
func (c *Camera) Move(delta mgl32.Vec3) {
	c.Position.Target = c.Position.Target.Add(delta)
}

// Turn applies q on top of the orientation target.
func (c *Camera) Turn(q mgl32.Quat) {
	c.Looking.Target = c.Looking.Target.Mul(q).Normalize()
}

// ZoomBy multiplies the zoom target by factor.
func (c *Camera) ZoomBy(factor float32) {
	c.Zoom.Target *= smooth.Scalar(factor)
}

// Teleport places the camera without smoothing. A zoom in progress is
// completed at its target.
func (c *Camera) Teleport(position mgl32.Vec3, looking mgl32.Quat) {
	c.Position.HardSet(position)
	c.Looking.HardSet(looking)
	c.Zoom.HardSet(c.Zoom.Target)
}

// Transform drives every component and returns the camera-to-world matrix:
// zoom is applied first, then orientation, then position.
func (c *Camera) Transform(elapsed float32) mgl32.Mat4 {
	scaled := c.Zoom.Begin(inverseScale)
	oriented := smooth.AndThen(scaled, &c.Looking, mgl32.Quat.Mat4)
	return smooth.AndThen(oriented, &c.Position, translation).Drive(elapsed)
}

// View drives the camera and returns the world-to-camera matrix.
func (c *Camera) View(elapsed float32) mgl32.Mat4 {
	return c.Transform(elapsed).Inv()
}

func translation(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// inverseScale shrinks camera space so that the view matrix magnifies by
// the zoom factor.
func inverseScale(z smooth.Scalar) mgl32.Mat4 {
	s := 1 / float32(z)
	return mgl32.Scale3D(s, s, s)
}
