package jsondoc

import "strings"

// Dot-path accessors: a name of the form "a.b.c" is split on its first
// '.', descending one nested object per segment. Keys containing literal
// dots are not addressable through this layer; use the plain accessors
// for those.

// DotGet resolves a dot-delimited path against nested objects and returns
// the value at its end, or nil if any segment is absent or not an object.
func (o *Object) DotGet(name string) *Value {
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return o.Get(name)
	}
	return o.GetObject(name[:dot]).DotGet(name[dot+1:])
}

// DotGetString resolves a dot path to a string, or "" on any miss.
func (o *Object) DotGetString(name string) string {
	return o.DotGet(name).AsString()
}

// DotGetNumber resolves a dot path to a number, or 0 on any miss.
func (o *Object) DotGetNumber(name string) float64 {
	return o.DotGet(name).AsNumber()
}

// DotGetBoolean resolves a dot path to a boolean, or false on any miss.
func (o *Object) DotGetBoolean(name string) bool {
	return o.DotGet(name).AsBoolean()
}

// DotGetObject resolves a dot path to a nested object, or nil on any miss.
func (o *Object) DotGetObject(name string) *Object {
	return o.DotGet(name).AsObject()
}

// DotGetArray resolves a dot path to an array, or nil on any miss.
func (o *Object) DotGetArray(name string) *Array {
	return o.DotGet(name).AsArray()
}

// DotSet stores value at the end of a dot path, creating intermediate
// objects as needed. Fails if an intermediate segment already holds a
// non-object value.
func (o *Object) DotSet(name string, value *Value) error {
	if o == nil || value == nil {
		return ErrInvalidValue
	}
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return o.Set(name, value)
	}
	child := o.GetObject(name[:dot])
	if child == nil {
		// add rejects the segment if it exists with another type.
		created := NewObject()
		if err := o.add(name[:dot], created); err != nil {
			return err
		}
		child = created.object
	}
	return child.DotSet(name[dot+1:], value)
}

// DotSetString stores a string value at the end of a dot path.
func (o *Object) DotSetString(name, s string) error {
	return o.DotSet(name, NewString(s))
}

// DotSetNumber stores a number value at the end of a dot path.
func (o *Object) DotSetNumber(name string, n float64) error {
	return o.DotSet(name, NewNumber(n))
}

// DotSetBoolean stores a boolean value at the end of a dot path.
func (o *Object) DotSetBoolean(name string, b bool) error {
	return o.DotSet(name, NewBoolean(b))
}

// DotSetNull stores a null value at the end of a dot path.
func (o *Object) DotSetNull(name string) error {
	return o.DotSet(name, NewNull())
}

// DotRemove removes the entry at the end of a dot path. Intermediate
// segments must exist; the removal itself has swap-with-last semantics.
func (o *Object) DotRemove(name string) error {
	if o == nil {
		return ErrKeyNotFound
	}
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return o.Remove(name)
	}
	child := o.GetObject(name[:dot])
	if child == nil {
		return ErrKeyNotFound
	}
	return child.DotRemove(name[dot+1:])
}
