package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireMat4NearlyEqual fails t if any element of got and want differs by
// more than eps.
func RequireMat4NearlyEqual(t *testing.T, got, want mgl32.Mat4, eps float32) {
	t.Helper()
	for i := range got {
		diff := got[i] - want[i]
		if diff < -eps || diff > eps {
			t.Fatalf("element %d: got %v, want %v (diff %v > eps %v)\ngot:\n%v\nwant:\n%v",
				i, got[i], want[i], diff, eps, got, want)
		}
	}
}

// RequireVec3NearlyEqual fails t if any component of got and want differs
// by more than eps.
func RequireVec3NearlyEqual(t *testing.T, got, want mgl32.Vec3, eps float32) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireUnitQuat fails t if q is not normalized within eps.
func RequireUnitQuat(t *testing.T, q mgl32.Quat, eps float32) {
	t.Helper()
	n := q.Len()
	if n < 1-eps || n > 1+eps {
		t.Fatalf("quaternion %v has norm %v, want 1 (eps %v)", q, n, eps)
	}
}

// QuatAngle returns the rotation angle in radians between a and b,
// treating q and -q as the same orientation.
func QuatAngle(a, b mgl32.Quat) float64 {
	d := math.Abs(float64(a.Normalize().Dot(b.Normalize())))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
