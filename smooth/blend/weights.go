package blend

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/smooth"
)

// Weights is a fixed-length vector of channel weights.
//
// Values are treated as immutable: every operation returns a new slice, so a
// Weights stored in a component's Current is never aliased by Target.
// Operations on weights of different lengths panic.
type Weights []float64

// Component is a smoothed Weights attribute.
type Component = smooth.Translation[Weights]

// New creates a component with the given retention. The initial weights are
// copied into Current and Target separately.
func New(retention float32, initial Weights) Component {
	c := smooth.NewLinear(retention, initial.Clone())
	c.Target = initial.Clone()
	return c
}

// Uniform returns n weights all equal to 1/n.
func Uniform(n int) Weights {
	if n <= 0 {
		return Weights{}
	}
	w := make(Weights, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// Clone returns a copy of w.
func (w Weights) Clone() Weights {
	return append(Weights(nil), w...)
}

// Add returns w + o element-wise.
func (w Weights) Add(o Weights) Weights {
	out := make(Weights, len(w))
	vecmath.AddBlock(out, w, o)
	return out
}

// Sub returns w - o element-wise.
func (w Weights) Sub(o Weights) Weights {
	neg := make(Weights, len(o))
	vecmath.ScaleBlock(neg, o, -1)
	vecmath.AddBlockInPlace(neg, w)
	return neg
}

// Mul returns w scaled by k.
func (w Weights) Mul(k float32) Weights {
	out := make(Weights, len(w))
	vecmath.ScaleBlock(out, w, float64(k))
	return out
}

// Sum returns the sum of all weights.
func (w Weights) Sum() float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	return sum
}

// Peak returns the largest absolute weight.
func (w Weights) Peak() float64 {
	if len(w) == 0 {
		return 0
	}
	return vecmath.MaxAbs(w)
}

// Normalize returns w scaled so that it sums to 1. Weights summing to zero
// are returned unchanged.
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum == 0 {
		return w.Clone()
	}
	out := make(Weights, len(w))
	vecmath.ScaleBlock(out, w, 1/sum)
	return out
}
