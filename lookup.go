package validate

// FieldLookup resolves a field selector to that field's current value.
// The confirmEmail rule uses it to read the sibling field it is checked
// against. Implementations must be safe for concurrent use if the
// validator holding them is shared.
type FieldLookup interface {
	// Field returns the current value of the field identified by
	// selector, and whether the field exists.
	Field(selector string) (string, bool)
}

// MapLookup adapts a plain map of field values to FieldLookup.
type MapLookup map[string]string

func (m MapLookup) Field(selector string) (string, bool) {
	v, ok := m[selector]
	return v, ok
}

// FieldLookupFunc adapts a function to FieldLookup.
type FieldLookupFunc func(selector string) (string, bool)

func (f FieldLookupFunc) Field(selector string) (string, bool) {
	return f(selector)
}
