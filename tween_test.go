package pyg

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tweenEps = 1e-3

func assertVec3Near(t *testing.T, got, want Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > tweenEps {
			t.Errorf("vec = %v, want %v", got, want)
			return
		}
	}
}

func TestTweenPositionReachesTarget(t *testing.T) {
	tr := NewTransform(0)
	g := TweenPosition(tr, V3(10, 20, 0), 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Error("tween should not be done at the halfway point")
	}
	assertVec3Near(t, tr.Position(), V3(5, 10, 0))

	g.Update(0.5)
	if !g.Done {
		t.Error("tween should be done after the full duration")
	}
	assertVec3Near(t, tr.Position(), V3(10, 20, 0))
}

func TestTweenUpdateAfterDoneIsNoOp(t *testing.T) {
	tr := NewTransform(0)
	g := TweenScale(tr, V3(2, 2, 2), 0.5, ease.Linear)
	g.Update(1.0)
	if !g.Done {
		t.Fatal("tween should be done")
	}
	tr.SetScale(V3(5, 5, 5))
	g.Update(1.0)
	if tr.Scale() != V3(5, 5, 5) {
		t.Error("finished tween must not write to the transform")
	}
}

func TestTweenRotation(t *testing.T) {
	tr := NewTransform(0)
	g := TweenRotation(tr, V3(0, 0, math.Pi), 2.0, ease.Linear)
	g.Update(1.0)
	assertVec3Near(t, tr.Rotation(), V3(0, 0, math.Pi/2))
}

func TestTweenStopsWhenOwnerDestroyed(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	tr := NewTransform(0)
	if err := o.AddComponent(tr); err != nil {
		t.Fatal(err)
	}
	g := TweenPosition(tr, V3(100, 0, 0), 1.0, ease.Linear)
	g.Update(0.25)

	o.Destroy()
	pos := tr.Position()
	g.Update(0.25)
	if !g.Done {
		t.Error("tween should stop when the owner is destroyed")
	}
	if tr.Position() != pos {
		t.Error("tween must not write after the owner is destroyed")
	}
}

func TestTweenStopsWhenTransformDetached(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	tr := NewTransform(0)
	if err := o.AddComponent(tr); err != nil {
		t.Fatal(err)
	}
	g := TweenPosition(tr, V3(100, 0, 0), 1.0, ease.Linear)
	g.Update(0.25)

	if err := o.RemoveComponents(); err != nil {
		t.Fatal(err)
	}
	pos := tr.Position()
	g.Update(0.25)
	if !g.Done {
		t.Error("tween should stop when the transform is detached")
	}
	if tr.Position() != pos {
		t.Error("tween must not write to a detached transform")
	}
}
