package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileKnownRules(t *testing.T) {
	v := New()

	rules := v.compile(Options{
		RuleIsRequired:               true,
		RuleIsNumeric:                true,
		RuleHasMinLength:             2,
		RuleHasMaxLength:             8,
		RuleMatchesRegularExpression: `\d+`,
		RuleIsEmail:                  true,
		RuleIsUrl:                    true,
		RuleConfirmEmail:             "email",
	})
	require.Len(t, rules, 8)

	kinds := make(map[RuleKind]bool, len(rules))
	for _, r := range rules {
		kinds[r.Kind] = true
	}
	for _, k := range []RuleKind{
		KindRequired, KindNumeric, KindMinLength, KindMaxLength,
		KindMatches, KindEmail, KindURL, KindConfirmField,
	} {
		assert.True(t, kinds[k], "missing kind %v", k)
	}
}

func TestCompileDropsUnknownNames(t *testing.T) {
	v := New()

	rules := v.compile(Options{"noSuchRule": 1, RuleIsNumeric: true})
	require.Len(t, rules, 1)
	assert.Equal(t, KindNumeric, rules[0].Kind)
}

func TestCompilePatternArgumentForms(t *testing.T) {
	v := New()

	t.Run("string pattern", func(t *testing.T) {
		rules := v.compile(Options{RuleMatchesRegularExpression: `\d+`})
		require.Len(t, rules, 1)
		assert.Equal(t, `\d+`, rules[0].Pattern)
	})

	t.Run("compiled pattern", func(t *testing.T) {
		rules := v.compile(Options{RuleMatchesRegularExpression: regexp.MustCompile(`\d+`)})
		require.Len(t, rules, 1)
		assert.Equal(t, `\d+`, rules[0].Pattern)
	})

	t.Run("anything else is a type error", func(t *testing.T) {
		rules := v.compile(Options{RuleMatchesRegularExpression: 42})
		require.Len(t, rules, 1)
		assert.Equal(t, KindInvalid, rules[0].Kind)
		assert.Equal(t, RuleMatchesRegularExpression, rules[0].Name())
	})
}

func TestCompilePresenceOnlyArguments(t *testing.T) {
	v := New()

	// isNumeric, isEmail, and isUrl ignore their argument entirely.
	for _, arg := range []any{true, false, nil, "x", 1} {
		rules := v.compile(Options{RuleIsNumeric: arg})
		require.Len(t, rules, 1)
		assert.Equal(t, KindNumeric, rules[0].Kind)
	}
}

func TestCompileBadArguments(t *testing.T) {
	v := New()

	cases := map[string]any{
		RuleIsRequired:   "yes",
		RuleHasMinLength: "3",
		RuleHasMaxLength: true,
		RuleConfirmEmail: 7,
	}
	for name, arg := range cases {
		rules := v.compile(Options{name: arg})
		require.Len(t, rules, 1, "rule %s", name)
		assert.Equal(t, KindInvalid, rules[0].Kind, "rule %s", name)
		assert.Equal(t, name, rules[0].Name(), "rule %s", name)
	}
}

func TestRuleKindNames(t *testing.T) {
	assert.Equal(t, RuleIsRequired, KindRequired.Name())
	assert.Equal(t, RuleConfirmEmail, KindConfirmField.Name())
	assert.Equal(t, "invalid", KindInvalid.Name())
}
