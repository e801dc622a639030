package smooth

import "github.com/go-gl/mathgl/mgl32"

// Rule drives a current value towards a target by percent in [0,1].
//
// Implementations must be pure: Drive(t, c, 0) returns c and Drive(t, c, 1)
// returns t. Rules are used as zero-size type parameters, so their methods
// are dispatched statically.
type Rule[A any] interface {
	Drive(target, current A, percent float32) A
}

// Lerpable is satisfied by values that can be linearly interpolated:
// mgl32.Vec2, mgl32.Vec3, mgl32.Vec4, [Scalar] and any caller type with the
// same three methods.
type Lerpable[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float32) T
}

// Translate is the linear rule: current + (target - current) * percent.
type Translate[T Lerpable[T]] struct{}

// Drive implements [Rule].
func (Translate[T]) Drive(target, current T, percent float32) T {
	return current.Add(target.Sub(current).Mul(percent))
}

// Rotate is the spherical rule for unit quaternions. The slerp result is
// renormalized to keep floating point drift from accumulating frame over
// frame.
type Rotate struct{}

// Drive implements [Rule].
func (Rotate) Drive(target, current mgl32.Quat, percent float32) mgl32.Quat {
	return mgl32.QuatSlerp(current, target, percent).Normalize()
}

// Scalar is a float32 usable with [Translate], for zoom levels, angles and
// other one-dimensional attributes.
type Scalar float32

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s * k.
func (s Scalar) Mul(k float32) Scalar { return s * Scalar(k) }
