package pyg

import "fmt"

// PropertyType tags the representation of a property value. The set is
// closed: a Value always carries exactly one of these tags and its payload
// representation matches the tag.
type PropertyType uint8

const (
	TypeInt PropertyType = iota
	TypeFloat
	TypeBool
	TypeColor
	TypeVec2
	TypeVec2i
	TypeVec3
	TypeVec3i
	TypeTexture
	TypeString
)

var propertyTypeNames = [...]string{
	TypeInt:     "Int",
	TypeFloat:   "Float",
	TypeBool:    "Bool",
	TypeColor:   "Color",
	TypeVec2:    "Vec2",
	TypeVec2i:   "Vec2i",
	TypeVec3:    "Vec3",
	TypeVec3i:   "Vec3i",
	TypeTexture: "Texture",
	TypeString:  "String",
}

func (t PropertyType) String() string {
	if int(t) < len(propertyTypeNames) {
		return propertyTypeNames[t]
	}
	return fmt.Sprintf("PropertyType(%d)", uint8(t))
}

// TextureRef is an opaque handle to a texture owned by an external renderer.
// The core never dereferences it.
type TextureRef struct {
	Name string
	Page int
}

// Value is a tagged property value. Construct one with the typed
// constructors (IntValue, FloatValue, ...); the accessors panic if asked
// for a payload that disagrees with the tag, so type confusion is caught at
// the access site instead of silently reinterpreting bits.
//
// The zero Value carries no payload and compares unequal to every
// constructed value.
type Value struct {
	typ  PropertyType
	data any
}

// IntValue wraps an int.
func IntValue(v int) Value { return Value{TypeInt, v} }

// FloatValue wraps a float64.
func FloatValue(v float64) Value { return Value{TypeFloat, v} }

// BoolValue wraps a bool.
func BoolValue(v bool) Value { return Value{TypeBool, v} }

// ColorValue wraps a Color.
func ColorValue(v Color) Value { return Value{TypeColor, v} }

// Vec2Value wraps a Vec2.
func Vec2Value(v Vec2) Value { return Value{TypeVec2, v} }

// Vec2iValue wraps a Vec2i.
func Vec2iValue(v Vec2i) Value { return Value{TypeVec2i, v} }

// Vec3Value wraps a Vec3.
func Vec3Value(v Vec3) Value { return Value{TypeVec3, v} }

// Vec3iValue wraps a Vec3i.
func Vec3iValue(v Vec3i) Value { return Value{TypeVec3i, v} }

// TextureValue wraps a TextureRef.
func TextureValue(v TextureRef) Value { return Value{TypeTexture, v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{TypeString, v} }

// Type returns the value's type tag.
func (v Value) Type() PropertyType { return v.typ }

// IsZero reports whether v is the zero Value (no payload).
func (v Value) IsZero() bool { return v.data == nil }

func (v Value) payload(want PropertyType) any {
	if v.typ != want || v.data == nil {
		panic(fmt.Sprintf("pyg: value is %s, not %s", v.typ, want))
	}
	return v.data
}

// AsInt returns the int payload. Panics if the tag is not TypeInt.
func (v Value) AsInt() int { return v.payload(TypeInt).(int) }

// AsFloat returns the float payload. Panics if the tag is not TypeFloat.
func (v Value) AsFloat() float64 { return v.payload(TypeFloat).(float64) }

// AsBool returns the bool payload. Panics if the tag is not TypeBool.
func (v Value) AsBool() bool { return v.payload(TypeBool).(bool) }

// AsColor returns the color payload. Panics if the tag is not TypeColor.
func (v Value) AsColor() Color { return v.payload(TypeColor).(Color) }

// AsVec2 returns the Vec2 payload. Panics if the tag is not TypeVec2.
func (v Value) AsVec2() Vec2 { return v.payload(TypeVec2).(Vec2) }

// AsVec2i returns the Vec2i payload. Panics if the tag is not TypeVec2i.
func (v Value) AsVec2i() Vec2i { return v.payload(TypeVec2i).(Vec2i) }

// AsVec3 returns the Vec3 payload. Panics if the tag is not TypeVec3.
func (v Value) AsVec3() Vec3 { return v.payload(TypeVec3).(Vec3) }

// AsVec3i returns the Vec3i payload. Panics if the tag is not TypeVec3i.
func (v Value) AsVec3i() Vec3i { return v.payload(TypeVec3i).(Vec3i) }

// AsTexture returns the texture payload. Panics if the tag is not TypeTexture.
func (v Value) AsTexture() TextureRef { return v.payload(TypeTexture).(TextureRef) }

// AsString returns the string payload. Panics if the tag is not TypeString.
func (v Value) AsString() string { return v.payload(TypeString).(string) }

// Equal reports whether v and o have the same tag and payload.
func (v Value) Equal(o Value) bool {
	return v.typ == o.typ && v.data == o.data
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.data == nil {
		return "Value(zero)"
	}
	return fmt.Sprintf("%s(%v)", v.typ, v.data)
}

// Property is one entry in a component's property bag: a named, identified,
// typed value with an editability hint.
//
// Names need not be unique within a bag (name lookups return the first match
// in insertion order); ids must be. Editable is advisory metadata for
// editors and inspectors; the core does not enforce it.
type Property struct {
	Name     string
	ID       int64
	Type     PropertyType
	Editable bool
	Value    Value
}
