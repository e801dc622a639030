package smooth

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func translate3(v mgl32.Vec3) mgl32.Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) }

func translateScalar(s Scalar) mgl32.Mat4 {
	f := float32(s)
	return mgl32.Translate3D(f, f, f)
}

func scaleScalar(s Scalar) mgl32.Mat4 {
	f := float32(s)
	return mgl32.Scale3D(f, f, f)
}

func rotateY(s Scalar) mgl32.Mat4 { return mgl32.HomogRotate3DY(float32(s)) }

type rig struct {
	zoom      Linear1
	rotate    Rotation
	translate Translation[mgl32.Vec3]
	angle     Linear1
}

func newRig() *rig {
	r := &rig{
		zoom:      NewZoom[Scalar](2),
		rotate:    NewRotate(mgl32.QuatIdent()),
		translate: NewTranslate(mgl32.Vec3{1, 1, 1}),
		angle:     NewAngle[Scalar](0.4),
	}
	r.zoom.Target = 4
	r.rotate.Target = r.rotate.Target.Mul(mgl32.QuatRotate(0.4, mgl32.Vec3{1, 0, 0}))
	r.translate.Target = r.translate.Target.Add(mgl32.Vec3{1, 1, 1})
	r.angle.Target /= 3
	return r
}

func TestChainSingleNode(t *testing.T) {
	c := NewLinear[Scalar](0.5, 0)
	c.Target = 2

	got := c.Begin(translateScalar).Drive(1)
	testutil.RequireMat4NearlyEqual(t, got, mgl32.Translate3D(1, 1, 1), 1e-6)
	if c.Current != 1 {
		t.Fatalf("Current = %v, want 1", c.Current)
	}
	if c.Held() {
		t.Fatal("component still held after Drive")
	}
}

func TestChainOrdering(t *testing.T) {
	for _, dt := range []float32{0, 0.016, 0.03, 0.5, 2} {
		r := newRig()
		ref := *r

		head := r.zoom.Begin(scaleScalar)
		withRotate := AndThen(head, &r.rotate, mgl32.Quat.Mat4)
		withTranslate := AndThen(withRotate, &r.translate, translate3)
		got := AndThen(withTranslate, &r.angle, rotateY).Drive(dt)

		want := rotateY(ref.angle.Drive(dt)).
			Mul4(translate3(ref.translate.Drive(dt))).
			Mul4(ref.rotate.Drive(dt).Mat4()).
			Mul4(scaleScalar(ref.zoom.Drive(dt)))

		testutil.RequireMat4NearlyEqual(t, got, want, 1e-5)

		if r.zoom.Current != ref.zoom.Current || r.angle.Current != ref.angle.Current ||
			r.translate.Current != ref.translate.Current {
			t.Fatalf("dt %v: chain drove components differently from direct drives", dt)
		}
	}
}

func TestChainFirstAttachedAppliesFirst(t *testing.T) {
	zoom := NewZoom[Scalar](3)
	move := NewTranslate(mgl32.Vec3{1, 3, 5})

	m := AndThen(zoom.Begin(scaleScalar), &move, translate3).Drive(0.016)

	// Scale first, then translate: the unit x point lands at (3+1, 3, 5).
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{4, 3, 5, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestChainIdentityScenario(t *testing.T) {
	a := NewTranslate[Scalar](0)
	b := NewTranslate[Scalar](0)

	got := AndThen(a.Begin(translateScalar), &b, translateScalar).Drive(0.25)
	if got != mgl32.Ident4() {
		t.Fatalf("got\n%v\nwant identity", got)
	}
}

func TestChainDrivesEveryComponentOnce(t *testing.T) {
	a := NewLinear[Scalar](0.5, 0)
	b := NewLinear[Scalar](0.5, 0)
	a.Target, b.Target = 8, 8

	calls := 0
	count := func(s Scalar) mgl32.Mat4 {
		calls++
		return translateScalar(s)
	}
	AndThen(a.Begin(count), &b, count).Drive(1)

	if calls != 2 {
		t.Fatalf("projection calls = %d, want 2", calls)
	}
	if a.Current != 4 || b.Current != 4 {
		t.Fatalf("currents %v %v, want 4 4 (one drive each with the same elapsed)", a.Current, b.Current)
	}
}

func TestChainResultIsInvertible(t *testing.T) {
	r := newRig()
	m := AndThen(AndThen(AndThen(r.zoom.Begin(translateScalar), &r.rotate, mgl32.Quat.Mat4),
		&r.translate, translate3), &r.angle, rotateY).Drive(0.03)

	inv := m.Inv()
	for i, v := range inv {
		if math.IsNaN(float64(v)) {
			t.Fatalf("inverse element %d is NaN", i)
		}
	}
	testutil.RequireMat4NearlyEqual(t, inv.Mul4(m), mgl32.Ident4(), 1e-4)
}

// --- lease enforcement ---

func TestChainRejectsDuplicateComponent(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	head := a.Begin(translate3)

	requirePanic(t, "AndThen duplicate", func() { AndThen(head, &a, translate3) })
	if a.Held() {
		t.Fatal("failed AndThen must release the inner chain")
	}
}

func TestChainRejectsComponentInAnotherLiveChain(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})

	first := a.Begin(translate3)
	requirePanic(t, "Begin while held", func() { a.Begin(translate3) })

	other := b.Begin(translate3)
	requirePanic(t, "AndThen while held", func() { AndThen(other, &a, translate3) })
	if b.Held() {
		t.Fatal("failed AndThen must release the inner chain")
	}

	first.Drive(0.1)
	b.Begin(translate3).Drive(0.1)
}

func TestChainDriveTwicePanics(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})

	head := a.Begin(translate3)
	head.Drive(0.1)
	requirePanic(t, "head twice", func() { head.Drive(0.1) })

	link := AndThen(a.Begin(translate3), &b, translate3)
	link.Drive(0.1)
	requirePanic(t, "link twice", func() { link.Drive(0.1) })

	// A stale copy must not drive a component leased to a newer chain.
	fresh := a.Begin(translate3)
	requirePanic(t, "stale head", func() { head.Drive(0.1) })
	fresh.Release()
}

func TestChainRelease(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewRotate(mgl32.QuatIdent())
	a.Target = mgl32.Vec3{5, 5, 5}

	AndThen(a.Begin(translate3), &b, mgl32.Quat.Mat4).Release()

	if a.Held() || b.Held() {
		t.Fatal("Release left components held")
	}
	if a.Current != (mgl32.Vec3{}) {
		t.Fatalf("Release drove the component: %v", a.Current)
	}
}

func TestChainNilProjectionPanics(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})

	requirePanic(t, "Begin nil", func() { a.Begin(nil) })

	head := a.Begin(translate3)
	requirePanic(t, "AndThen nil", func() { AndThen[mgl32.Vec3, Translate[mgl32.Vec3]](head, &b, nil) })
	if a.Held() || b.Held() {
		t.Fatal("failed AndThen left components held")
	}
}

func TestChainRejectsFinishedInner(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})

	driven := a.Begin(translate3)
	driven.Drive(0.1)
	requirePanic(t, "driven head", func() { AndThen(driven, &b, translate3) })
	if b.Held() {
		t.Fatal("AndThen leased next onto a driven chain")
	}

	released := a.Begin(translate3)
	released.Release()
	requirePanic(t, "released head", func() { AndThen(released, &b, translate3) })

	link := AndThen(a.Begin(translate3), &b, translate3)
	link.Drive(0.1)
	c := NewTranslate(mgl32.Vec3{})
	requirePanic(t, "driven link", func() { AndThen(link, &c, translate3) })

	seq := Compose(a.Project(translate3))
	seq.Drive(0.1)
	requirePanic(t, "driven sequence", func() { AndThen(seq, &b, translate3) })

	if a.Held() || b.Held() || c.Held() {
		t.Fatal("rejected AndThen left components held")
	}
}

func TestChainInnerDrivenSeparatelyReleasesLink(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})
	b.Target = mgl32.Vec3{1, 0, 0}

	head := a.Begin(translate3)
	link := AndThen(head, &b, translate3)
	head.Drive(0.1)

	requirePanic(t, "link after inner", func() { link.Drive(0.1) })
	if b.Held() {
		t.Fatal("link component stuck after failed Drive")
	}
	if b.Current != (mgl32.Vec3{}) {
		t.Fatalf("failed Drive moved the link component: %v", b.Current)
	}

	b.Drive(0.1)
	b.HardSet(mgl32.Vec3{})
	b.Begin(translate3).Release()
}

func BenchmarkChainDrive(b *testing.B) {
	r := newRig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		AndThen(AndThen(AndThen(r.zoom.Begin(scaleScalar), &r.rotate, mgl32.Quat.Mat4),
			&r.translate, translate3), &r.angle, rotateY).Drive(0.016)
	}
}
