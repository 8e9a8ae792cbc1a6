package pyg

import "github.com/go-gl/mathgl/mgl64"

// Property ids for the Transform capability set.
const (
	TransformPosition int64 = iota + 1
	TransformRotation
	TransformScale
	TransformOrigin
	TransformSize
	TransformOffset
	TransformFlipped
	TransformCentered
	TransformAnchored
	TransformVisible
	TransformEnabled
)

// Transform is the spatial component: position, rotation, scale, origin,
// size, and offset as 3-component vectors, plus the flip/center/anchor/
// visibility flags. All attributes live in the property bag, so they are
// reachable both through the typed accessors below and through the generic
// Property/SetProperty surface.
type Transform struct {
	*BaseComponent
}

// NewTransform creates a Transform component named "Transform". Pass id 0
// to have an id assigned on attachment. Scale defaults to (1, 1, 1) and the
// visible and enabled flags default to true.
func NewTransform(id int64) *Transform {
	t := &Transform{BaseComponent: NewComponent(id, "Transform")}
	defaults := []Property{
		{Name: "position", ID: TransformPosition, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3Zero)},
		{Name: "rotation", ID: TransformRotation, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3Zero)},
		{Name: "scale", ID: TransformScale, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3One)},
		{Name: "origin", ID: TransformOrigin, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3Zero)},
		{Name: "size", ID: TransformSize, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3Zero)},
		{Name: "offset", ID: TransformOffset, Type: TypeVec3, Editable: true, Value: Vec3Value(Vec3Zero)},
		{Name: "flipped", ID: TransformFlipped, Type: TypeBool, Editable: true, Value: BoolValue(false)},
		{Name: "centered", ID: TransformCentered, Type: TypeBool, Editable: true, Value: BoolValue(false)},
		{Name: "anchored", ID: TransformAnchored, Type: TypeBool, Editable: true, Value: BoolValue(false)},
		{Name: "visible", ID: TransformVisible, Type: TypeBool, Editable: true, Value: BoolValue(true)},
		{Name: "enabled", ID: TransformEnabled, Type: TypeBool, Editable: true, Value: BoolValue(true)},
	}
	for _, p := range defaults {
		if err := t.DefineProperty(p); err != nil {
			panic("pyg: transform defaults: " + err.Error())
		}
	}
	return t
}

// mustVec3 and mustBool read bag entries that NewTransform is known to have
// defined with the right tags.
func (t *Transform) mustVec3(id int64) Vec3 {
	p, err := t.PropertyByID(id)
	if err != nil {
		panic("pyg: " + err.Error())
	}
	return p.Value.AsVec3()
}

func (t *Transform) mustBool(id int64) bool {
	p, err := t.PropertyByID(id)
	if err != nil {
		panic("pyg: " + err.Error())
	}
	return p.Value.AsBool()
}

func (t *Transform) mustSet(id int64, v Value) {
	if err := t.SetPropertyByID(id, v); err != nil {
		panic("pyg: " + err.Error())
	}
}

// Position returns the local position.
func (t *Transform) Position() Vec3 { return t.mustVec3(TransformPosition) }

// SetPosition sets the local position.
func (t *Transform) SetPosition(v Vec3) { t.mustSet(TransformPosition, Vec3Value(v)) }

// Translate adds delta to the local position.
func (t *Transform) Translate(delta Vec3) {
	t.SetPosition(t.Position().Add(delta))
}

// Rotation returns the local Euler rotation in radians. Only the Z
// component participates in Matrix.
func (t *Transform) Rotation() Vec3 { return t.mustVec3(TransformRotation) }

// SetRotation sets the local Euler rotation in radians.
func (t *Transform) SetRotation(v Vec3) { t.mustSet(TransformRotation, Vec3Value(v)) }

// Scale returns the local scale factors.
func (t *Transform) Scale() Vec3 { return t.mustVec3(TransformScale) }

// SetScale sets the local scale factors.
func (t *Transform) SetScale(v Vec3) { t.mustSet(TransformScale, Vec3Value(v)) }

// Origin returns the local origin the transform pivots around. Ignored when
// the centered flag is set.
func (t *Transform) Origin() Vec3 { return t.mustVec3(TransformOrigin) }

// SetOrigin sets the pivot origin.
func (t *Transform) SetOrigin(v Vec3) { t.mustSet(TransformOrigin, Vec3Value(v)) }

// Size returns the nominal size. Used to derive the pivot when centered.
func (t *Transform) Size() Vec3 { return t.mustVec3(TransformSize) }

// SetSize sets the nominal size.
func (t *Transform) SetSize(v Vec3) { t.mustSet(TransformSize, Vec3Value(v)) }

// Offset returns the positional offset applied after the position.
func (t *Transform) Offset() Vec3 { return t.mustVec3(TransformOffset) }

// SetOffset sets the positional offset.
func (t *Transform) SetOffset(v Vec3) { t.mustSet(TransformOffset, Vec3Value(v)) }

// Flipped reports whether the transform mirrors along the X axis.
func (t *Transform) Flipped() bool { return t.mustBool(TransformFlipped) }

// SetFlipped sets X-axis mirroring.
func (t *Transform) SetFlipped(v bool) { t.mustSet(TransformFlipped, BoolValue(v)) }

// Centered reports whether the pivot is derived from Size/2 instead of
// Origin.
func (t *Transform) Centered() bool { return t.mustBool(TransformCentered) }

// SetCentered sets pivot centering.
func (t *Transform) SetCentered(v bool) { t.mustSet(TransformCentered, BoolValue(v)) }

// Anchored reports the anchored flag. Advisory for hosts; the core does not
// interpret it.
func (t *Transform) Anchored() bool { return t.mustBool(TransformAnchored) }

// SetAnchored sets the anchored flag.
func (t *Transform) SetAnchored(v bool) { t.mustSet(TransformAnchored, BoolValue(v)) }

// Visible reports the visibility flag. Advisory for renderers.
func (t *Transform) Visible() bool { return t.mustBool(TransformVisible) }

// SetVisible sets the visibility flag.
func (t *Transform) SetVisible(v bool) { t.mustSet(TransformVisible, BoolValue(v)) }

// Enabled reports the transform's own enable flag. Advisory for hosts.
func (t *Transform) Enabled() bool { return t.mustBool(TransformEnabled) }

// SetEnabled sets the transform's enable flag.
func (t *Transform) SetEnabled(v bool) { t.mustSet(TransformEnabled, BoolValue(v)) }

// Matrix composes the local 2D affine transform.
//
// Composition order (right to left): the pivot is subtracted first, then
// scale, then rotation about Z, then translation by position + offset:
//
//	M = T(position + offset) * R(rotation.z) * S(scale) * T(-pivot)
//
// The pivot is Origin, or Size/2 when the centered flag is set. The flipped
// flag negates the X scale.
func (t *Transform) Matrix() mgl64.Mat3 {
	pos := t.Position()
	off := t.Offset()
	sc := t.Scale()
	rot := t.Rotation()

	pivot := t.Origin()
	if t.Centered() {
		size := t.Size()
		pivot = Vec3{size[0] / 2, size[1] / 2, 0}
	}
	sx, sy := sc[0], sc[1]
	if t.Flipped() {
		sx = -sx
	}

	m := mgl64.Translate2D(pos[0]+off[0], pos[1]+off[1])
	m = m.Mul3(mgl64.HomogRotate2D(rot[2]))
	m = m.Mul3(mgl64.Scale2D(sx, sy))
	m = m.Mul3(mgl64.Translate2D(-pivot[0], -pivot[1]))
	return m
}

// WorldMatrix composes this transform's matrix with the Transform
// components of the owning object's ancestors, nearest last. Ancestors
// without a Transform contribute the identity.
func (t *Transform) WorldMatrix() mgl64.Mat3 {
	m := t.Matrix()
	o := t.Owner()
	if o == nil {
		return m
	}
	for p := o.Parent(); p != nil; p = p.Parent() {
		if pc, err := p.ComponentByName("Transform"); err == nil {
			if pt, ok := pc.(*Transform); ok {
				m = pt.Matrix().Mul3(m)
			}
		}
	}
	return m
}

// ApplyTo transforms a local-space point into the parent space using
// Matrix.
func (t *Transform) ApplyTo(p Vec2) Vec2 {
	v := t.Matrix().Mul3x1(mgl64.Vec3{p[0], p[1], 1})
	return Vec2{v[0], v[1]}
}
