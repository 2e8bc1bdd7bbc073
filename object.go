package jsondoc

// Object is an ordered mapping of unique string keys to values. Keys and
// values live in two index-aligned slices so that entry order is
// observable and stable under Set. Remove fills the vacated slot with the
// former last entry, so order is not preserved across removals.
type Object struct {
	names  []string
	values []*Value
}

// Len returns the number of entries. Safe on a nil object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Get returns the value stored under name, or nil if the key is absent.
func (o *Object) Get(name string) *Value {
	if o == nil {
		return nil
	}
	for i, n := range o.names {
		if n == name {
			return o.values[i]
		}
	}
	return nil
}

// GetName returns the key at the given entry index, or "" if the index is
// out of range.
func (o *Object) GetName(index int) string {
	if o == nil || index < 0 || index >= len(o.names) {
		return ""
	}
	return o.names[index]
}

// GetString returns the string stored under name, or "" if the key is
// absent or holds a different type.
func (o *Object) GetString(name string) string {
	return o.Get(name).AsString()
}

// GetNumber returns the number stored under name, or 0 if the key is
// absent or holds a different type.
func (o *Object) GetNumber(name string) float64 {
	return o.Get(name).AsNumber()
}

// GetBoolean returns the boolean stored under name, or false if the key is
// absent or holds a different type.
func (o *Object) GetBoolean(name string) bool {
	return o.Get(name).AsBoolean()
}

// GetObject returns the nested object stored under name, or nil.
func (o *Object) GetObject(name string) *Object {
	return o.Get(name).AsObject()
}

// GetArray returns the array stored under name, or nil.
func (o *Object) GetArray(name string) *Array {
	return o.Get(name).AsArray()
}

// Set stores value under name, taking ownership of it. An existing key is
// overwritten in place, keeping its entry order; a new key is appended.
// Fails if value is nil or already owned, or if appending a new key would
// exceed the object capacity cap.
func (o *Object) Set(name string, value *Value) error {
	if o == nil || value == nil {
		return ErrInvalidValue
	}
	if value.owned {
		return ErrValueOwned
	}
	for i, n := range o.names {
		if n == name {
			// Old value is discarded; the slot keeps its position.
			value.owned = true
			o.values[i] = value
			return nil
		}
	}
	return o.add(name, value)
}

// SetString stores a string value under name.
func (o *Object) SetString(name, s string) error {
	return o.Set(name, NewString(s))
}

// SetNumber stores a number value under name.
func (o *Object) SetNumber(name string, n float64) error {
	return o.Set(name, NewNumber(n))
}

// SetBoolean stores a boolean value under name.
func (o *Object) SetBoolean(name string, b bool) error {
	return o.Set(name, NewBoolean(b))
}

// SetNull stores a null value under name.
func (o *Object) SetNull(name string) error {
	return o.Set(name, NewNull())
}

// Remove deletes the entry stored under name. The vacated slot is filled
// with the former last entry, so entry order changes. Fails with
// ErrKeyNotFound if the key is absent.
func (o *Object) Remove(name string) error {
	if o == nil {
		return ErrKeyNotFound
	}
	for i, n := range o.names {
		if n == name {
			last := len(o.names) - 1
			if i != last {
				o.names[i] = o.names[last]
				o.values[i] = o.values[last]
			}
			o.names = o.names[:last]
			o.values = o.values[:last]
			return nil
		}
	}
	return ErrKeyNotFound
}

// Clear removes all entries.
func (o *Object) Clear() {
	if o == nil {
		return
	}
	o.names = o.names[:0]
	o.values = o.values[:0]
}

// add appends a new entry, rejecting duplicate keys. Insertion point for
// the capacity policy: grow by doubling with a floor of startingCapacity,
// fail once the hard cap would be exceeded.
func (o *Object) add(name string, value *Value) error {
	if value == nil {
		return ErrInvalidValue
	}
	if len(o.values) >= cap(o.values) {
		newCapacity := cap(o.values) * 2
		if newCapacity < startingCapacity {
			newCapacity = startingCapacity
		}
		if newCapacity > objectMaxCapacity {
			return ErrCapacityLimit
		}
		o.resize(newCapacity)
	}
	if o.Get(name) != nil {
		return ErrDuplicateKey
	}
	value.owned = true
	o.names = append(o.names, name)
	o.values = append(o.values, value)
	return nil
}

func (o *Object) resize(capacity int) {
	names := make([]string, len(o.names), capacity)
	values := make([]*Value, len(o.values), capacity)
	copy(names, o.names)
	copy(values, o.values)
	o.names = names
	o.values = values
}

// shrink drops the slack capacity left over from doubling growth. The
// parser calls it once a container is complete.
func (o *Object) shrink() {
	if cap(o.values) != len(o.values) {
		o.resize(len(o.values))
	}
}
