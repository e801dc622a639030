package smooth

import "github.com/go-gl/mathgl/mgl32"

// Component is the smoothed state of one attribute.
//
// Target is owned by the caller and is never written by Drive. Current is
// written only by Drive and HardSet.
type Component[A any, R Rule[A]] struct {
	// Retention is the fraction of the distance to Target that remains
	// after one second. Reasonable values lie around 0.01 to 0.05; 0 snaps
	// every frame and 1 freezes the component.
	Retention float32
	// Current is the last driven value.
	Current A
	// Target is the value Current moves towards.
	Target A

	rule  R
	lease lease
}

// Translation is a component driven by the linear rule.
type Translation[T Lerpable[T]] = Component[T, Translate[T]]

// Rotation is a quaternion component driven by the spherical rule.
type Rotation = Component[mgl32.Quat, Rotate]

// Linear1 is a one-dimensional linear component.
type Linear1 = Translation[Scalar]

// New creates a component with the given retention. Current and Target both
// start at initial.
func New[A any, R Rule[A]](retention float32, initial A) Component[A, R] {
	return Component[A, R]{
		Retention: retention,
		Current:   initial,
		Target:    initial,
	}
}

// NewLinear is New for the linear rule with the attribute type inferred.
func NewLinear[T Lerpable[T]](retention float32, initial T) Translation[T] {
	return New[T, Translate[T]](retention, initial)
}

// NewRotation is New for the spherical rule.
func NewRotation(retention float32, initial mgl32.Quat) Rotation {
	return New[mgl32.Quat, Rotate](retention, initial)
}

// Drive advances Current towards Target by elapsed seconds and returns the
// new Current. Driving by zero seconds leaves Current unchanged.
//
// Drive panics if the component is leased by a chain that has not been
// driven or released yet.
func (c *Component[A, R]) Drive(elapsed float32) A {
	if c.lease.held {
		panic("smooth: Drive on a component held by a live chain")
	}
	return c.advance(elapsed)
}

// HardSet sets both Current and Target to v, discarding any motion in
// progress. Use it to teleport or to initialize.
func (c *Component[A, R]) HardSet(v A) {
	if c.lease.held {
		panic("smooth: HardSet on a component held by a live chain")
	}
	c.Target = v
	c.Current = v
}

// Held reports whether the component is leased by a live chain.
func (c *Component[A, R]) Held() bool {
	return c.lease.held
}

func (c *Component[A, R]) advance(elapsed float32) A {
	c.Current = c.rule.Drive(c.Target, c.Current, Percent(c.Retention, elapsed))
	return c.Current
}

// lease tracks exclusive use of a component by one chain. The generation
// distinguishes the current holder from stale copies of an earlier chain.
type lease struct {
	held bool
	gen  uint32
}

func (l *lease) acquire() uint32 {
	if l.held {
		panic("smooth: component is already held by a live chain")
	}
	l.held = true
	l.gen++
	return l.gen
}

func (l *lease) release(gen uint32) {
	if !l.held || l.gen != gen {
		panic("smooth: chain was already driven or released")
	}
	l.held = false
}

// releaseIfHeld is a release that ignores stale or already released
// leases, for Release on a partially consumed chain.
func (l *lease) releaseIfHeld(gen uint32) {
	if l.held && l.gen == gen {
		l.held = false
	}
}
