package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// DeterministicVec3s returns n vectors with components in [-scale, scale),
// generated with a fixed seed for reproducibility.
func DeterministicVec3s(seed uint64, scale float32, n int) []mgl32.Vec3 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]mgl32.Vec3, n)
	for i := range out {
		for j := range out[i] {
			out[i][j] = (rng.Float32()*2 - 1) * scale
		}
	}
	return out
}

// DeterministicQuats returns n unit quaternions with random axes and
// angles in [0, pi), generated with a fixed seed.
func DeterministicQuats(seed uint64, n int) []mgl32.Quat {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]mgl32.Quat, n)
	for i := range out {
		axis := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		if axis.Len() < 1e-3 {
			axis = mgl32.Vec3{0, 1, 0}
		}
		angle := rng.Float32() * math.Pi
		out[i] = mgl32.QuatRotate(angle, axis.Normalize())
	}
	return out
}
