package jsondoc

// Validate checks value against a structural schema, itself an ordinary
// value tree. The rules are shape-matching only, never value-matching:
//
//   - A schema Null matches any value (wildcard).
//   - A schema Array with no elements matches any array; otherwise every
//     element of the candidate must validate against the schema's FIRST
//     element. Further schema elements are ignored.
//   - A schema Object with no entries matches any object; otherwise the
//     candidate must contain at least every schema key, each validating
//     recursively. Extra candidate keys are tolerated.
//   - Scalar schemas match candidates of the same type regardless of
//     content.
//
// Returns nil on a match and ErrValidationFailed otherwise. Absent values
// on either side never validate.
func Validate(schema, value *Value) error {
	schemaType := schema.Type()
	valueType := value.Type()
	if schemaType == TypeError || valueType == TypeError {
		return ErrValidationFailed
	}
	if schemaType != valueType && schemaType != TypeNull {
		return ErrValidationFailed
	}
	switch schemaType {
	case TypeArray:
		if schema.array.Len() == 0 {
			return nil
		}
		template := schema.array.Get(0)
		for _, item := range value.array.items {
			if err := Validate(template, item); err != nil {
				return err
			}
		}
		return nil
	case TypeObject:
		count := schema.object.Len()
		if count == 0 {
			return nil
		}
		if value.object.Len() < count {
			return ErrValidationFailed
		}
		for i, name := range schema.object.names {
			candidate := value.object.Get(name)
			if candidate == nil {
				return ErrValidationFailed
			}
			if err := Validate(schema.object.values[i], candidate); err != nil {
				return err
			}
		}
		return nil
	default:
		// Type identity was established above; scalar contents are
		// irrelevant to shape matching.
		return nil
	}
}
