// Package smooth provides exponentially smoothed transform attributes and a
// zero-allocation chain that composes them into a single [mgl32.Mat4].
//
// A [Component] holds a Current and a Target value. Callers move Target
// between frames; [Component.Drive] then closes part of the remaining gap:
//
//	percent = 1 - Retention^elapsed
//
// so Retention is the fraction of the gap left after exactly one second.
// Smaller values follow more tightly, values close to 1 follow lazily.
//
// Attribute kinds are described by a [Rule]:
//
//   - [Translate]: linear interpolation for anything with Add, Sub and
//     Mul(float32), such as mgl32.Vec3 or [Scalar]
//   - [Rotate]:    spherical interpolation for unit quaternions
//
// Several components are combined with [Component.Begin] and [AndThen]. The
// first attached transform is applied first to a point, i.e. it is the
// rightmost factor of the product:
//
//	pos := smooth.NewTranslate(mgl32.Vec3{})
//	look := smooth.NewRotate(mgl32.QuatIdent())
//
//	head := pos.Begin(func(v mgl32.Vec3) mgl32.Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) })
//	m := smooth.AndThen(head, &look, mgl32.Quat.Mat4).Drive(dt) // R * T
//
// A component may belong to at most one live chain. Building a chain leases
// every component in it until the chain is driven or released; violations
// panic when the chain is built.
package smooth
