package jsondoc

// Array is an ordered sequence of values. Remove fills the vacated slot
// with the former last element, so element order is not preserved across
// removals.
type Array struct {
	items []*Value
}

// Len returns the number of elements. Safe on a nil array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Get returns the element at index, or nil if the index is out of range.
func (a *Array) Get(index int) *Value {
	if a == nil || index < 0 || index >= len(a.items) {
		return nil
	}
	return a.items[index]
}

// GetString returns the string at index, or "" if the index is out of
// range or the element holds a different type.
func (a *Array) GetString(index int) string {
	return a.Get(index).AsString()
}

// GetNumber returns the number at index, or 0 if the index is out of range
// or the element holds a different type.
func (a *Array) GetNumber(index int) float64 {
	return a.Get(index).AsNumber()
}

// GetBoolean returns the boolean at index, or false if the index is out of
// range or the element holds a different type.
func (a *Array) GetBoolean(index int) bool {
	return a.Get(index).AsBoolean()
}

// GetObject returns the object at index, or nil.
func (a *Array) GetObject(index int) *Object {
	return a.Get(index).AsObject()
}

// GetArray returns the nested array at index, or nil.
func (a *Array) GetArray(index int) *Array {
	return a.Get(index).AsArray()
}

// Append adds value at the end of the array, taking ownership of it.
// Fails if value is nil or already owned, or if growth would exceed the
// array capacity cap; on failure the array is unchanged.
func (a *Array) Append(value *Value) error {
	if a == nil || value == nil {
		return ErrInvalidValue
	}
	if value.owned {
		return ErrValueOwned
	}
	if len(a.items) >= cap(a.items) {
		newCapacity := cap(a.items) * 2
		if newCapacity < startingCapacity {
			newCapacity = startingCapacity
		}
		if newCapacity > arrayMaxCapacity {
			return ErrCapacityLimit
		}
		a.resize(newCapacity)
	}
	value.owned = true
	a.items = append(a.items, value)
	return nil
}

// AppendString appends a string value.
func (a *Array) AppendString(s string) error {
	return a.Append(NewString(s))
}

// AppendNumber appends a number value.
func (a *Array) AppendNumber(n float64) error {
	return a.Append(NewNumber(n))
}

// AppendBoolean appends a boolean value.
func (a *Array) AppendBoolean(b bool) error {
	return a.Append(NewBoolean(b))
}

// AppendNull appends a null value.
func (a *Array) AppendNull() error {
	return a.Append(NewNull())
}

// Replace installs value at index, discarding the old element. Fails with
// ErrIndexOutOfRange if the index is out of range.
func (a *Array) Replace(index int, value *Value) error {
	if a == nil || value == nil {
		return ErrInvalidValue
	}
	if index < 0 || index >= len(a.items) {
		return ErrIndexOutOfRange
	}
	if value.owned {
		return ErrValueOwned
	}
	value.owned = true
	a.items[index] = value
	return nil
}

// ReplaceString installs a string value at index.
func (a *Array) ReplaceString(index int, s string) error {
	return a.Replace(index, NewString(s))
}

// ReplaceNumber installs a number value at index.
func (a *Array) ReplaceNumber(index int, n float64) error {
	return a.Replace(index, NewNumber(n))
}

// ReplaceBoolean installs a boolean value at index.
func (a *Array) ReplaceBoolean(index int, b bool) error {
	return a.Replace(index, NewBoolean(b))
}

// ReplaceNull installs a null value at index.
func (a *Array) ReplaceNull(index int) error {
	return a.Replace(index, NewNull())
}

// Remove deletes the element at index, filling the vacated slot with the
// former last element.
func (a *Array) Remove(index int) error {
	if a == nil || index < 0 || index >= len(a.items) {
		return ErrIndexOutOfRange
	}
	last := len(a.items) - 1
	if index != last {
		a.items[index] = a.items[last]
	}
	a.items = a.items[:last]
	return nil
}

// Clear removes all elements.
func (a *Array) Clear() {
	if a == nil {
		return
	}
	a.items = a.items[:0]
}

func (a *Array) resize(capacity int) {
	items := make([]*Value, len(a.items), capacity)
	copy(items, a.items)
	a.items = items
}

func (a *Array) shrink() {
	if cap(a.items) != len(a.items) {
		a.resize(len(a.items))
	}
}
