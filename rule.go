package validate

///////////////////////////////////////////////////////////////////////////////
// Rule Kinds
///////////////////////////////////////////////////////////////////////////////

// RuleKind identifies one of the built-in validation rules. The set is
// closed: rules are not registrable at runtime, and the evaluator
// dispatches over every kind exhaustively.
type RuleKind int

const (
	// KindInvalid is the zero value. It is produced by the options
	// compiler for entries whose argument has the wrong type, and always
	// evaluates to a failure.
	KindInvalid RuleKind = iota
	KindRequired
	KindNumeric
	KindMinLength
	KindMaxLength
	KindMatches
	KindEmail
	KindURL
	KindConfirmField
)

// Name returns the registry name for the kind, e.g. "hasMinLength".
func (k RuleKind) Name() string {
	switch k {
	case KindRequired:
		return RuleIsRequired
	case KindNumeric:
		return RuleIsNumeric
	case KindMinLength:
		return RuleHasMinLength
	case KindMaxLength:
		return RuleHasMaxLength
	case KindMatches:
		return RuleMatchesRegularExpression
	case KindEmail:
		return RuleIsEmail
	case KindURL:
		return RuleIsUrl
	case KindConfirmField:
		return RuleConfirmEmail
	default:
		return "invalid"
	}
}

///////////////////////////////////////////////////////////////////////////////
// Rule
///////////////////////////////////////////////////////////////////////////////

// Rule is one validation rule with its typed argument. Construct values
// with the constructors below rather than with struct literals; only the
// fields relevant to the Kind are meaningful.
type Rule struct {
	Kind RuleKind

	// name overrides Kind.Name() when reporting failures. The options
	// compiler sets it so a failed entry is reported under the exact key
	// the caller used.
	name string

	On       bool   // KindRequired: when false the rule always passes
	Length   int    // KindMinLength, KindMaxLength
	Pattern  string // KindMatches
	Selector string // KindConfirmField
}

// Name returns the name a failure of this rule is reported under.
func (r Rule) Name() string {
	if r.name != "" {
		return r.name
	}
	return r.Kind.Name()
}

// Required builds an isRequired rule. With on == false the rule is inert
// and passes for every input.
func Required(on bool) Rule {
	return Rule{Kind: KindRequired, On: on}
}

// Numeric builds an isNumeric rule: the input must parse to a finite
// floating-point number.
func Numeric() Rule {
	return Rule{Kind: KindNumeric}
}

// MinLength builds a hasMinLength rule over the input's rune count.
func MinLength(n int) Rule {
	return Rule{Kind: KindMinLength, Length: n}
}

// MaxLength builds a hasMaxLength rule over the input's rune count.
func MaxLength(n int) Rule {
	return Rule{Kind: KindMaxLength, Length: n}
}

// Matches builds a matchesRegularExpression rule. The whole input must be
// consumed by the pattern's first match; a pattern that does not compile
// makes the rule fail.
func Matches(pattern string) Rule {
	return Rule{Kind: KindMatches, Pattern: pattern}
}

// Email builds an isEmail rule (Matches with the fixed EmailPattern).
func Email() Rule {
	return Rule{Kind: KindEmail}
}

// URL builds an isUrl rule (Matches with the fixed URLPattern).
func URL() Rule {
	return Rule{Kind: KindURL}
}

// ConfirmField builds a confirmEmail rule: the input must equal the
// current value of the field identified by selector, resolved through the
// validator's FieldLookup. A missing lookup or unknown selector makes the
// rule pass.
func ConfirmField(selector string) Rule {
	return Rule{Kind: KindConfirmField, Selector: selector}
}
