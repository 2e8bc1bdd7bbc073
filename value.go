package jsondoc

import "math"

// Type identifies the active variant of a Value.
type Type int

const (
	// TypeError marks an absent or invalid value. It is what lookups
	// return when nothing is found and is never produced by a parse.
	TypeError Type = iota
	TypeNull
	TypeString
	TypeNumber
	TypeObject
	TypeArray
	TypeBoolean
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeBoolean:
		return "boolean"
	default:
		return "error"
	}
}

// Value is a single node of a JSON document tree. Exactly one variant is
// active, fixed at construction. A Value belongs to at most one container;
// see the package documentation for ownership rules.
type Value struct {
	typ     Type
	boolean bool
	number  float64
	str     string
	object  *Object
	array   *Array
	owned   bool
}

// NewNull creates a null value.
func NewNull() *Value {
	return &Value{typ: TypeNull}
}

// NewBoolean creates a boolean value.
func NewBoolean(b bool) *Value {
	return &Value{typ: TypeBoolean, boolean: b}
}

// NewNumber creates a number value.
func NewNumber(n float64) *Value {
	return &Value{typ: TypeNumber, number: n}
}

// NewString creates a string value. The string may contain any Unicode
// code point; escaping is applied at serialization time.
func NewString(s string) *Value {
	return &Value{typ: TypeString, str: s}
}

// NewObject creates a value holding an empty object.
func NewObject() *Value {
	return &Value{typ: TypeObject, object: &Object{}}
}

// NewArray creates a value holding an empty array.
func NewArray() *Value {
	return &Value{typ: TypeArray, array: &Array{}}
}

// Type returns the active variant, or TypeError for a nil Value.
func (v *Value) Type() Type {
	if v == nil {
		return TypeError
	}
	return v.typ
}

// AsObject returns the object held by v, or nil if v is absent or not an
// object.
func (v *Value) AsObject() *Object {
	if v.Type() != TypeObject {
		return nil
	}
	return v.object
}

// AsArray returns the array held by v, or nil if v is absent or not an
// array.
func (v *Value) AsArray() *Array {
	if v.Type() != TypeArray {
		return nil
	}
	return v.array
}

// AsString returns the string held by v, or "" if v is absent or not a
// string.
func (v *Value) AsString() string {
	if v.Type() != TypeString {
		return ""
	}
	return v.str
}

// AsNumber returns the number held by v, or 0 if v is absent or not a
// number.
func (v *Value) AsNumber() float64 {
	if v.Type() != TypeNumber {
		return 0
	}
	return v.number
}

// AsBoolean returns the boolean held by v, or false if v is absent or not
// a boolean.
func (v *Value) AsBoolean() bool {
	if v.Type() != TypeBoolean {
		return false
	}
	return v.boolean
}

// DeepCopy returns a fully independent copy of the value tree: same shape
// and scalar contents, no shared nodes with the original. The copy is
// unowned and may be inserted into any container. Returns nil for a nil or
// error-typed value.
func (v *Value) DeepCopy() *Value {
	switch v.Type() {
	case TypeNull:
		return NewNull()
	case TypeBoolean:
		return NewBoolean(v.boolean)
	case TypeNumber:
		return NewNumber(v.number)
	case TypeString:
		return NewString(v.str)
	case TypeArray:
		out := NewArray()
		for _, item := range v.array.items {
			if err := out.array.Append(item.DeepCopy()); err != nil {
				return nil
			}
		}
		return out
	case TypeObject:
		out := NewObject()
		for i, name := range v.object.names {
			if err := out.object.add(name, v.object.values[i].DeepCopy()); err != nil {
				return nil
			}
		}
		return out
	default:
		return nil
	}
}

// Equals reports structural equality. Types must match exactly; arrays
// compare element-wise in order, objects compare by key regardless of
// entry order, strings by exact content, and numbers within a small fixed
// epsilon to absorb round-trip noise. Null values are equal to each other,
// as are two absent values.
func (v *Value) Equals(other *Value) bool {
	if v.Type() != other.Type() {
		return false
	}
	switch v.Type() {
	case TypeArray:
		a, b := v.array, other.array
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !a.items[i].Equals(b.items[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		a, b := v.object, other.object
		if len(a.names) != len(b.names) {
			return false
		}
		for i, name := range a.names {
			if !a.values[i].Equals(b.Get(name)) {
				return false
			}
		}
		return true
	case TypeString:
		return v.str == other.str
	case TypeNumber:
		return math.Abs(v.number-other.number) < numberEpsilon
	case TypeBoolean:
		return v.boolean == other.boolean
	default:
		// Null, and the absent sentinel, are equal to themselves.
		return true
	}
}
