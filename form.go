package validate

import (
	"fmt"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// Errors bag
///////////////////////////////////////////////////////////////////////////////

// Errors maps a field name to the names of the rules that failed for it.
// Fields with no failures are absent.
type Errors map[string][]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field has at least one failed rule.
func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// First returns the first failed rule name for field, or "".
func (e Errors) First(field string) string {
	if rules := e[field]; len(rules) > 0 {
		return rules[0]
	}
	return ""
}

// Fields returns the names of all failed fields, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

///////////////////////////////////////////////////////////////////////////////
// Form
///////////////////////////////////////////////////////////////////////////////

// FieldRules maps a field name to the Options evaluated against that
// field's value.
type FieldRules map[string]Options

// Form validates a flat set of submitted values. The form's own values
// back the FieldLookup used by confirmEmail, so a confirmation rule on
// one field resolves its sibling from the same submission.
type Form struct {
	values    map[string]any
	validator *Validator
}

// NewForm creates a Form over the submitted values.
func NewForm(values map[string]any, opts ...Option) *Form {
	return &Form{
		values:    values,
		validator: New(opts...),
	}
}

// Field implements FieldLookup over the form's values. Non-string values
// are rendered with fmt.Sprint; a nil value counts as absent.
func (f *Form) Field(selector string) (string, bool) {
	v, ok := f.values[selector]
	if !ok || v == nil {
		return "", false
	}
	if s, isStr := stringValue(v); isStr {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Value returns the raw submitted value for a field.
func (f *Form) Value(field string) (any, bool) {
	v, ok := f.values[field]
	return v, ok
}

// Validate evaluates rules field by field and returns the error bag.
// A field absent from the submission is validated as nil, so isRequired
// fails for it while the other rules apply their own missing-input
// policies.
func (f *Form) Validate(rules FieldRules) Errors {
	v := f.validator.WithLookup(f)

	errs := make(Errors)
	for field, opts := range rules {
		if failed := v.Failures(f.values[field], opts); len(failed) > 0 {
			errs[field] = failed
		}
	}
	return errs
}
