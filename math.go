package pyg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 and Vec3 are the float vector types used for spatial attributes
// throughout the API. They alias mathgl's float64 vectors, so the full
// mgl64 method set (Add, Sub, Mul, Dot, Cross, Len, Normalize, ...) is
// available on them directly.
type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
)

// V2 constructs a Vec2.
func V2(x, y float64) Vec2 { return Vec2{x, y} }

// V3 constructs a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Named direction and identity vectors. The coordinate system is y-up.
var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2Up    = Vec2{0, 1}
	Vec2Down  = Vec2{0, -1}
	Vec2Left  = Vec2{-1, 0}
	Vec2Right = Vec2{1, 0}

	Vec3Zero = Vec3{0, 0, 0}
	Vec3One  = Vec3{1, 1, 1}
	Vec3Up   = Vec3{0, 1, 0}
	Vec3Down = Vec3{0, -1, 0}
)

// Vec2i is a 2D vector with integer components.
type Vec2i struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2i) Mul(s int) Vec2i { return Vec2i{v.X * s, v.Y * s} }

// Vec2 converts to a float vector.
func (v Vec2i) Vec2() Vec2 { return Vec2{float64(v.X), float64(v.Y)} }

// Vec3i is a 3D vector with integer components.
type Vec3i struct {
	X, Y, Z int
}

// Add returns v + o.
func (v Vec3i) Add(o Vec3i) Vec3i { return Vec3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3i) Sub(o Vec3i) Vec3i { return Vec3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by s.
func (v Vec3i) Mul(s int) Vec3i { return Vec3i{v.X * s, v.Y * s, v.Z * s} }

// Vec3 converts to a float vector.
func (v Vec3i) Vec3() Vec3 { return Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }

// Math constants.
const (
	Epsilon = 1e-9
	Tau     = 2 * math.Pi
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates each component of a and b by t.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	return mgl64.Clamp(v, min, max)
}
