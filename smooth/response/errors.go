package response

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-smooth/internal/core"
)

var (
	// ErrInvalidRetention is returned for retention values outside [0, 1].
	ErrInvalidRetention = errors.New("response: retention must be in [0, 1]")
	// ErrInvalidSize is returned for FFT sizes that are not a power of two >= 2.
	ErrInvalidSize = errors.New("response: size must be a power of two >= 2")
	// ErrInvalidSpring is returned for non-positive spring frequencies or
	// negative damping ratios.
	ErrInvalidSpring = errors.New("response: invalid spring parameters")
)

func validateRetention(r float64) error {
	if !core.ValidRetention(r) {
		return fmt.Errorf("%w: %v", ErrInvalidRetention, r)
	}
	return nil
}

func validateSize(n int) error {
	if n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}
