package smooth

import "github.com/go-gl/mathgl/mgl32"

// Factor is a component bound to its projection, see [Component.Project].
type Factor interface {
	held() bool
	leasedBy(gen uint32) bool
	acquire() uint32
	releaseIfHeld(gen uint32)
	drive(gen uint32, elapsed float32) mgl32.Mat4
}

// Bound pairs a component with a projection for use in [Compose].
type Bound[A any, R Rule[A]] struct {
	component *Component[A, R]
	f         Projection[A]
}

// Project binds c to f without leasing it. The lease is taken by [Compose].
func (c *Component[A, R]) Project(f Projection[A]) Bound[A, R] {
	if f == nil {
		panic("smooth: nil projection")
	}
	return Bound[A, R]{component: c, f: f}
}

func (b Bound[A, R]) held() bool { return b.component.lease.held }

func (b Bound[A, R]) leasedBy(gen uint32) bool {
	return b.component.lease.held && b.component.lease.gen == gen
}

func (b Bound[A, R]) acquire() uint32 { return b.component.lease.acquire() }

func (b Bound[A, R]) releaseIfHeld(gen uint32) { b.component.lease.releaseIfHeld(gen) }

func (b Bound[A, R]) drive(gen uint32, elapsed float32) mgl32.Mat4 {
	b.component.lease.release(gen)
	return b.f(b.component.advance(elapsed))
}

// Sequence is a chain assembled at run time from a list of factors. It
// behaves like a chain built with Begin and AndThen in the same order, at
// the cost of one allocation per chain.
type Sequence struct {
	factors []Factor
	gens    []uint32
	done    bool
}

// Compose leases every factor's component and returns the chain. The first
// factor is applied first to a point.
//
// Compose panics if a component is already held, or appears twice.
func Compose(factors ...Factor) *Sequence {
	s := &Sequence{
		factors: factors,
		gens:    make([]uint32, len(factors)),
	}
	for i, f := range factors {
		if f.held() {
			s.releaseFirst(i)
			panic("smooth: component is already held by a live chain")
		}
		s.gens[i] = f.acquire()
	}
	return s
}

// Len returns the number of factors.
func (s *Sequence) Len() int {
	return len(s.factors)
}

// Drive implements [Scaffold]. An empty sequence yields the identity.
func (s *Sequence) Drive(elapsed float32) mgl32.Mat4 {
	if s.done {
		panic("smooth: chain was already driven or released")
	}
	s.done = true

	out := mgl32.Ident4()
	for i, f := range s.factors {
		out = f.drive(s.gens[i], elapsed).Mul4(out)
	}
	return out
}

// Release implements [Scaffold].
func (s *Sequence) Release() {
	if s.done {
		return
	}
	s.done = true
	s.releaseFirst(len(s.factors))
}

func (s *Sequence) live() bool {
	if s.done {
		return false
	}
	for i, f := range s.factors {
		if !f.leasedBy(s.gens[i]) {
			return false
		}
	}
	return true
}

func (s *Sequence) releaseFirst(n int) {
	for i := 0; i < n; i++ {
		s.factors[i].releaseIfHeld(s.gens[i])
	}
}
