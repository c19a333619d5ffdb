package validate

import "regexp"

// Rule name constants for the built-in rule set. These are the keys
// accepted in an Options mapping.
const (
	RuleIsRequired               = "isRequired"
	RuleIsNumeric                = "isNumeric"
	RuleHasMinLength             = "hasMinLength"
	RuleHasMaxLength             = "hasMaxLength"
	RuleMatchesRegularExpression = "matchesRegularExpression"
	RuleIsEmail                  = "isEmail"
	RuleIsUrl                    = "isUrl"
	RuleConfirmEmail             = "confirmEmail"
)

// Length thresholds for common form field kinds. Exposed so callers can
// build their own option sets against the same limits.
const (
	MaxShortTextLength = 128
	MaxTextareaLength  = 20000
)

// Fixed patterns backing the isEmail and isUrl rules.
//
// Neither pattern is anchored: the matcher requires the first match to
// consume the entire input, so anchoring is implied for every pattern,
// fixed or caller-supplied.
const (
	EmailPattern = `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`
	URLPattern   = `(?:https?|ftp)://[^\s/$.?#][^\s]*`
)

// Pre-compiled forms of the fixed patterns.
var (
	EmailRegex = regexp.MustCompile(EmailPattern)
	URLRegex   = regexp.MustCompile(URLPattern)
)

// Diagnostic messages shared by the evaluator and the options compiler.
const (
	msgRuleNotRecognized = "rule not recognized"
	msgNotAString        = "input is not a string"
	msgBadArgument       = "rule argument has the wrong type"
	msgBadPattern        = "pattern does not compile"
	msgNoFieldLookup     = "no field lookup available"
	msgFieldNotFound     = "confirmation field not found"
)
