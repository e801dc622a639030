//go:build !fastmath

package smooth

import "math"

// power computes base^exp using standard library math.
func power(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
