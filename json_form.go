package validate

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidDocument is returned when the bytes given to
	// NewDocumentForm are not valid JSON.
	ErrInvalidDocument = errors.New("document is not valid JSON")
)

// DocumentForm validates fields of a raw JSON document, for callers
// checking message payloads rather than live requests. Field selectors
// use gjson path syntax, so nested values ("user.email") are reachable.
type DocumentForm struct {
	doc       gjson.Result
	validator *Validator
}

// NewDocumentForm parses data and wraps it for validation.
func NewDocumentForm(data []byte, opts ...Option) (*DocumentForm, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	return &DocumentForm{
		doc:       gjson.ParseBytes(data),
		validator: New(opts...),
	}, nil
}

// Field implements FieldLookup over the document.
func (d *DocumentForm) Field(selector string) (string, bool) {
	result := d.doc.Get(selector)
	if !result.Exists() {
		return "", false
	}
	if result.Type == gjson.String {
		return result.String(), true
	}
	return fmt.Sprint(result.Value()), true
}

// Value returns the decoded value at a gjson path.
func (d *DocumentForm) Value(path string) (any, bool) {
	result := d.doc.Get(path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// Validate evaluates rules path by path and returns the error bag.
func (d *DocumentForm) Validate(rules FieldRules) Errors {
	v := d.validator.WithLookup(d)

	errs := make(Errors)
	for path, opts := range rules {
		value, _ := d.Value(path)
		if failed := v.Failures(value, opts); len(failed) > 0 {
			errs[path] = failed
		}
	}
	return errs
}
