// Package validate evaluates declarative field-validation rules against
// input values and reports which rules failed. It is meant to sit in
// front of form-handling code: give it a submitted value and a set of
// named rules, get back either "all passed" or the names of the rules
// that did not.
//
// The rule set is closed. Eight rules are built in and none can be
// registered at runtime:
//
//   - isRequired — fail when the input is nil, an empty string, or an
//     empty sequence or map (inert when its argument is false)
//   - isNumeric — input must parse to a finite floating-point number
//   - hasMinLength / hasMaxLength — rune-count bounds over string input;
//     non-string input fails with a logged diagnostic
//   - matchesRegularExpression — the pattern's first match must consume
//     the entire input, so partial matches fail
//   - isEmail / isUrl — matchesRegularExpression with the fixed
//     EmailPattern and URLPattern
//   - confirmEmail — input must equal a sibling field resolved through a
//     FieldLookup; a missing lookup or unknown field passes open
//
// Rules are supplied either as a dynamic Options mapping, mirroring how
// form definitions usually arrive:
//
//	failed := validate.Failures("42", validate.Options{
//	    "isNumeric":    true,
//	    "hasMinLength": 5,
//	})
//	// failed == ["hasMinLength"]
//
// or as typed constructors when the rule set is known at compile time:
//
//	failed := validate.Check(email, validate.Required(true), validate.Email())
//
// Misuse never raises errors from the rule surface. Unknown rule names
// are logged and skipped, mistyped arguments and invalid patterns are
// logged and counted as that rule failing, and every rule in a set is
// evaluated even after an earlier failure so all reasons are collected
// in one pass. Diagnostics go to an injected zap logger, a no-op one by
// default.
//
// Whole submissions are validated through the form sources, which also
// back the FieldLookup confirmEmail needs:
//
//   - Form — a flat map of submitted values
//
//   - RequestForm — an *http.Request (POST form, query string, JSON body)
//
//   - DocumentForm — a raw JSON document addressed with gjson paths
//
//     errs := validate.ValidateRequest(r, validate.FieldRules{
//     "email":         {"isRequired": true, "isEmail": true},
//     "confirm_email": {"confirmEmail": "email"},
//     "bio":           {"hasMaxLength": validate.MaxTextareaLength},
//     })
//     if !errs.Empty() { ... }
package validate
