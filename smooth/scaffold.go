package smooth

import "github.com/go-gl/mathgl/mgl32"

// Projection turns a driven attribute into a matrix factor.
type Projection[A any] func(A) mgl32.Mat4

// Scaffold is a chain of smoothed transforms that can be finalized once.
type Scaffold interface {
	// Drive drives every component in the chain by elapsed seconds and
	// returns the composed matrix. The chain is consumed.
	Drive(elapsed float32) mgl32.Mat4
	// Release frees the components of a chain that will not be driven.
	Release()

	// live reports whether every component of the chain is still leased
	// by it.
	live() bool
}

// First is the head of a chain. It is created by [Component.Begin].
type First[A any, R Rule[A]] struct {
	component *Component[A, R]
	f         Projection[A]
	gen       uint32
}

// Composition is a chain link. It is created by [AndThen].
type Composition[A any, R Rule[A], I Scaffold] struct {
	component *Component[A, R]
	f         Projection[A]
	gen       uint32
	inner     I
}

// Begin starts a chain at c. The projection f maps the driven value to the
// first matrix factor, which is applied first to a point.
//
// Begin panics if f is nil or c is already held by another live chain.
func (c *Component[A, R]) Begin(f Projection[A]) First[A, R] {
	if f == nil {
		panic("smooth: nil projection")
	}
	return First[A, R]{component: c, f: f, gen: c.lease.acquire()}
}

// AndThen queues next after the transforms of inner: the resulting matrix
// is f(next) * inner.
//
// AndThen panics if f is nil, if inner was already driven or released, or
// if next is already held, including by inner itself.
func AndThen[A any, R Rule[A], I Scaffold](inner I, next *Component[A, R], f Projection[A]) Composition[A, R, I] {
	if f == nil {
		inner.Release()
		panic("smooth: nil projection")
	}
	if !inner.live() {
		inner.Release()
		panic("smooth: chain was already driven or released")
	}
	if next.lease.held {
		inner.Release()
		panic("smooth: component is already held by a live chain")
	}
	return Composition[A, R, I]{component: next, f: f, gen: next.lease.acquire(), inner: inner}
}

// Drive implements [Scaffold].
func (s First[A, R]) Drive(elapsed float32) mgl32.Mat4 {
	s.component.lease.release(s.gen)
	return s.f(s.component.advance(elapsed))
}

// Release implements [Scaffold].
func (s First[A, R]) Release() {
	s.component.lease.releaseIfHeld(s.gen)
}

func (s First[A, R]) live() bool {
	return s.component.lease.held && s.component.lease.gen == s.gen
}

// Drive implements [Scaffold]. The inner chain is finalized first.
func (s Composition[A, R, I]) Drive(elapsed float32) mgl32.Mat4 {
	if !s.component.lease.held || s.component.lease.gen != s.gen {
		panic("smooth: chain was already driven or released")
	}
	if !s.inner.live() {
		s.Release()
		panic("smooth: chain was already driven or released")
	}
	prev := s.inner.Drive(elapsed)
	s.component.lease.release(s.gen)
	return s.f(s.component.advance(elapsed)).Mul4(prev)
}

// Release implements [Scaffold].
func (s Composition[A, R, I]) Release() {
	s.component.lease.releaseIfHeld(s.gen)
	s.inner.Release()
}

func (s Composition[A, R, I]) live() bool {
	return s.component.lease.held && s.component.lease.gen == s.gen && s.inner.live()
}
