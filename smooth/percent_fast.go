//go:build fastmath

package smooth

import "github.com/meko-christian/algo-approx"

// power computes base^exp using fast approximation.
// Uses the identity: base^exp = e^(exp * ln(base))
func power(base, exp float32) float32 {
	switch {
	case exp == 0:
		return 1
	case base <= 0:
		return 0
	}
	return float32(approx.FastExp(float64(exp) * approx.FastLog(float64(base))))
}
