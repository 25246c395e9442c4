// Package controls defines the control model for capture devices: typed
// control identifiers, tagged control values, and per-frame control lists.
package controls

import (
	"fmt"
	"strconv"
)

// Type identifies the value type a control carries.
type Type int

const (
	// TypeNone marks a control with no value payload.
	TypeNone Type = iota

	// TypeBool marks a boolean control.
	TypeBool

	// TypeByte marks an 8-bit unsigned integer control.
	TypeByte

	// TypeInt32 marks a 32-bit signed integer control.
	TypeInt32

	// TypeInt64 marks a 64-bit signed integer control.
	TypeInt64

	// TypeFloat marks a 32-bit floating point control.
	TypeFloat

	// TypeString marks a string control.
	TypeString

	// TypeRectangle marks a rectangle control.
	TypeRectangle

	// TypeSize marks a size control.
	TypeSize
)

// String returns the human-readable type name used in diagnostics.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeBool:
		return "bool"
	case TypeByte:
		return "byte"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeRectangle:
		return "Rectangle"
	case TypeSize:
		return "Size"
	}
	return "[type " + strconv.Itoa(int(t)) + "]"
}

// ID identifies a controllable device parameter: a unique numeric id paired
// with its name and value type. IDs are owned by a Catalog; consumers hold
// non-owning *ID references.
type ID struct {
	num  uint32
	name string
	typ  Type
}

// NewID creates a control identifier.
func NewID(num uint32, name string, typ Type) *ID {
	return &ID{num: num, name: name, typ: typ}
}

// Num returns the numeric control id.
func (id *ID) Num() uint32 { return id.num }

// Name returns the control name as it appears in capture scripts.
func (id *ID) Name() string { return id.name }

// Type returns the control's declared value type.
func (id *ID) Type() Type { return id.typ }

// Value is a tagged union holding one decoded control value. The zero Value
// is the empty value. A non-empty Value's occupied variant always matches the
// Type of the ID it was decoded for. Values are comparable.
type Value struct {
	typ Type
	val any
}

// NewBool returns a bool Value.
func NewBool(v bool) Value { return Value{typ: TypeBool, val: v} }

// NewByte returns an 8-bit unsigned integer Value.
func NewByte(v uint8) Value { return Value{typ: TypeByte, val: v} }

// NewInt32 returns a 32-bit signed integer Value.
func NewInt32(v int32) Value { return Value{typ: TypeInt32, val: v} }

// NewInt64 returns a 64-bit signed integer Value.
func NewInt64(v int64) Value { return Value{typ: TypeInt64, val: v} }

// NewFloat returns a 32-bit float Value.
func NewFloat(v float32) Value { return Value{typ: TypeFloat, val: v} }

// NewString returns a string Value.
func NewString(v string) Value { return Value{typ: TypeString, val: v} }

// Type returns the type of the occupied variant, or TypeNone when empty.
func (v Value) Type() Type { return v.typ }

// IsNone reports whether the value is empty.
func (v Value) IsNone() bool { return v.typ == TypeNone }

// Bool returns the bool variant, or false when the value holds another type.
func (v Value) Bool() bool { b, _ := v.val.(bool); return b }

// Byte returns the byte variant, or 0 when the value holds another type.
func (v Value) Byte() uint8 { b, _ := v.val.(uint8); return b }

// Int32 returns the int32 variant, or 0 when the value holds another type.
func (v Value) Int32() int32 { n, _ := v.val.(int32); return n }

// Int64 returns the int64 variant, or 0 when the value holds another type.
func (v Value) Int64() int64 { n, _ := v.val.(int64); return n }

// Float returns the float variant, or 0 when the value holds another type.
func (v Value) Float() float32 { f, _ := v.val.(float32); return f }

// Str returns the string variant, or "" when the value holds another type.
func (v Value) Str() string { s, _ := v.val.(string); return s }

// String formats the value for logs and summaries.
func (v Value) String() string {
	switch v.typ {
	case TypeNone, TypeRectangle, TypeSize:
		return "<" + v.typ.String() + ">"
	case TypeString:
		return strconv.Quote(v.Str())
	default:
		return fmt.Sprint(v.val)
	}
}
