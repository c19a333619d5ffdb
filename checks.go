package validate

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// Rule evaluation
///////////////////////////////////////////////////////////////////////////////

// check evaluates a single rule against in and reports whether it passed.
// The switch is exhaustive over RuleKind; KindInvalid always fails, which
// is how mistyped dynamic arguments surface to the caller.
func (v *Validator) check(in any, r Rule) bool {
	switch r.Kind {
	case KindRequired:
		return v.checkRequired(in, r.On)
	case KindNumeric:
		return finiteNumber(in)
	case KindMinLength:
		return v.checkMinLength(in, r.Length)
	case KindMaxLength:
		return v.checkMaxLength(in, r.Length)
	case KindMatches:
		return v.checkMatches(in, r.Pattern)
	case KindEmail:
		return v.checkMatches(in, EmailPattern)
	case KindURL:
		return v.checkMatches(in, URLPattern)
	case KindConfirmField:
		return v.checkConfirmField(in, r.Selector)
	default:
		return false
	}
}

// checkRequired passes for any input when the rule is switched off.
// Otherwise nil, empty strings, and empty sequences and maps fail.
func (v *Validator) checkRequired(in any, on bool) bool {
	if !on {
		return true
	}
	return !isEmptyValue(in)
}

func (v *Validator) checkMinLength(in any, min int) bool {
	s, ok := stringValue(in)
	if !ok {
		v.log.Warn(msgNotAString,
			zap.String("rule", RuleHasMinLength),
			zap.String("type", fmt.Sprintf("%T", in)))
		return false
	}
	return utf8.RuneCountInString(s) >= min
}

func (v *Validator) checkMaxLength(in any, max int) bool {
	s, ok := stringValue(in)
	if !ok {
		v.log.Warn(msgNotAString,
			zap.String("rule", RuleHasMaxLength),
			zap.String("type", fmt.Sprintf("%T", in)))
		return false
	}
	return utf8.RuneCountInString(s) <= max
}

// checkMatches passes iff the first match of pattern consumes the whole
// input. A non-string input or a pattern that does not compile fails the
// rule with a diagnostic rather than raising an error.
func (v *Validator) checkMatches(in any, pattern string) bool {
	s, ok := stringValue(in)
	if !ok {
		v.log.Warn(msgNotAString,
			zap.String("rule", RuleMatchesRegularExpression),
			zap.String("type", fmt.Sprintf("%T", in)))
		return false
	}

	re, err := compilePattern(pattern)
	if err != nil {
		v.log.Warn(msgBadPattern,
			zap.String("pattern", pattern),
			zap.Error(err))
		return false
	}

	// FindString cannot tell "no match" from an empty match, so compare
	// match bounds instead of match text.
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// checkConfirmField compares the input with the current value of the
// field named by selector. When no lookup is installed, or the field
// cannot be found, the rule passes so an unrelated lookup failure never
// blocks a submission.
func (v *Validator) checkConfirmField(in any, selector string) bool {
	if v.lookup == nil {
		v.log.Warn(msgNoFieldLookup, zap.String("selector", selector))
		return true
	}

	other, found := v.lookup.Field(selector)
	if !found {
		v.log.Warn(msgFieldNotFound, zap.String("selector", selector))
		return true
	}

	s, ok := stringValue(in)
	if !ok {
		s = fmt.Sprint(in)
	}
	return s == other
}
