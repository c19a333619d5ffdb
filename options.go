package validate

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

// Options is the dynamic rule mapping accepted by Validate and Failures:
// rule name to rule argument. The argument type depends on the rule —
// bool for isRequired, a whole number of any built-in numeric type for
// the length rules, a pattern string (or
// *regexp.Regexp) for matchesRegularExpression, a selector string for
// confirmEmail. isNumeric, isEmail, and isUrl only need to be present;
// their argument is ignored.
type Options map[string]any

// compile lowers an Options mapping to the closed Rule union.
//
// Unknown rule names are logged and dropped: they are not failures and do
// not stop the remaining entries from being compiled. A known name whose
// argument has the wrong type compiles to a KindInvalid rule carrying the
// entry's key, so it is reported as a failure of that rule.
func (v *Validator) compile(opts Options) []Rule {
	rules := make([]Rule, 0, len(opts))

	for name, arg := range opts {
		rule, known := v.compileOne(name, arg)
		if !known {
			v.log.Warn(msgRuleNotRecognized, zap.String("rule", name))
			continue
		}
		rule.name = name
		rules = append(rules, rule)
	}

	return rules
}

func (v *Validator) compileOne(name string, arg any) (Rule, bool) {
	switch name {
	case RuleIsRequired:
		on, ok := boolArgument(arg)
		if !ok {
			return v.badArgument(name, arg), true
		}
		return Required(on), true

	case RuleIsNumeric:
		return Numeric(), true

	case RuleHasMinLength:
		n, ok := intArgument(arg)
		if !ok {
			return v.badArgument(name, arg), true
		}
		return MinLength(n), true

	case RuleHasMaxLength:
		n, ok := intArgument(arg)
		if !ok {
			return v.badArgument(name, arg), true
		}
		return MaxLength(n), true

	case RuleMatchesRegularExpression:
		switch p := arg.(type) {
		case string:
			return Matches(p), true
		case *regexp.Regexp:
			return Matches(p.String()), true
		}
		return v.badArgument(name, arg), true

	case RuleIsEmail:
		return Email(), true

	case RuleIsUrl:
		return URL(), true

	case RuleConfirmEmail:
		sel, ok := stringArgument(arg)
		if !ok {
			return v.badArgument(name, arg), true
		}
		return ConfirmField(sel), true
	}

	return Rule{}, false
}

// badArgument logs the type mismatch and returns an always-failing rule
// under the offending entry's name.
func (v *Validator) badArgument(name string, arg any) Rule {
	v.log.Warn(msgBadArgument,
		zap.String("rule", name),
		zap.String("type", fmt.Sprintf("%T", arg)))
	return Rule{Kind: KindInvalid}
}
