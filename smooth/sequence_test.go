package smooth

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestComposeMatchesStaticChain(t *testing.T) {
	for _, dt := range []float32{0, 0.016, 0.25} {
		dyn := newRig()
		static := newRig()

		got := Compose(
			dyn.zoom.Project(scaleScalar),
			dyn.rotate.Project(mgl32.Quat.Mat4),
			dyn.translate.Project(translate3),
			dyn.angle.Project(rotateY),
		).Drive(dt)

		want := AndThen(AndThen(AndThen(static.zoom.Begin(scaleScalar), &static.rotate, mgl32.Quat.Mat4),
			&static.translate, translate3), &static.angle, rotateY).Drive(dt)

		testutil.RequireMat4NearlyEqual(t, got, want, 1e-6)
	}
}

func TestComposeEmptyIsIdentity(t *testing.T) {
	s := Compose()
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
	if got := s.Drive(1); got != mgl32.Ident4() {
		t.Fatalf("got %v want identity", got)
	}
}

func TestComposeRejectsDuplicates(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewTranslate(mgl32.Vec3{})

	requirePanic(t, "duplicate", func() {
		Compose(a.Project(translate3), b.Project(translate3), a.Project(translate3))
	})
	if a.Held() || b.Held() {
		t.Fatal("failed Compose left components held")
	}
}

func TestComposeAsInnerChain(t *testing.T) {
	a := NewZoom[Scalar](2)
	b := NewTranslate(mgl32.Vec3{1, 0, 0})

	got := AndThen(Compose(a.Project(scaleScalar)), &b, translate3).Drive(0.1)
	want := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	testutil.RequireMat4NearlyEqual(t, got, want, 1e-6)
}

func TestComposeDriveTwicePanics(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	s := Compose(a.Project(translate3))
	s.Drive(0.1)

	requirePanic(t, "Drive twice", func() { s.Drive(0.1) })
	s.Release()
	if a.Held() {
		t.Fatal("component held after Drive")
	}
}

func TestComposeRelease(t *testing.T) {
	a := NewTranslate(mgl32.Vec3{})
	b := NewRotate(mgl32.QuatIdent())

	s := Compose(a.Project(translate3), b.Project(mgl32.Quat.Mat4))
	if !a.Held() || !b.Held() {
		t.Fatal("Compose must lease every component")
	}
	s.Release()
	s.Release()
	if a.Held() || b.Held() {
		t.Fatal("Release left components held")
	}
}
