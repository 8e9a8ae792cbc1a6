package pyg

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 components of one Transform attribute
// simultaneously. Create one via the convenience constructors
// (TweenPosition, TweenScale, TweenRotation) and call Update(dt) each
// frame. If the transform's owning object is destroyed, or the transform is
// detached from it, mid-flight, the group stops immediately. A transform
// that was never attached animates freely.
//
// There is no global animation manager; hosts call Update themselves,
// typically from a component's Update hook.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	apply  func(Vec3)
	base   Vec3
	target *Transform
	owner  *Object // the transform's owner at creation time, if any
	Done   bool
}

// Update advances all tweens by dt seconds and writes the interpolated
// attribute back to the transform. If the owning object has been destroyed
// or the transform detached, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.owner != nil && (!g.owner.IsLive() || g.target.Owner() != g.owner) {
		g.Done = true
		return
	}

	vals := g.base
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

func newVec3Group(t *Transform, from, to Vec3, duration float32, fn ease.TweenFunc, apply func(Vec3)) *TweenGroup {
	g := &TweenGroup{count: 3, target: t, owner: t.Owner(), base: from, apply: apply}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// TweenPosition creates a TweenGroup that animates the transform's position
// to the given target over the specified duration using the easing function.
func TweenPosition(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec3Group(t, t.Position(), to, duration, fn, t.SetPosition)
}

// TweenScale creates a TweenGroup that animates the transform's scale to
// the given target over the specified duration using the easing function.
func TweenScale(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec3Group(t, t.Scale(), to, duration, fn, t.SetScale)
}

// TweenRotation creates a TweenGroup that animates the transform's Euler
// rotation to the given target over the specified duration using the easing
// function.
func TweenRotation(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec3Group(t, t.Rotation(), to, duration, fn, t.SetRotation)
}
