package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupRules() FieldRules {
	return FieldRules{
		"name": Options{
			RuleIsRequired:   true,
			RuleHasMinLength: 2,
			RuleHasMaxLength: MaxShortTextLength,
		},
		"email": Options{
			RuleIsRequired: true,
			RuleIsEmail:    true,
		},
		"confirm_email": Options{
			RuleConfirmEmail: "email",
		},
		"age": Options{
			RuleIsNumeric: true,
		},
	}
}

func TestFormValidatePasses(t *testing.T) {
	form := NewForm(map[string]any{
		"name":          "Alice",
		"email":         "alice@example.com",
		"confirm_email": "alice@example.com",
		"age":           "30",
	})

	errs := form.Validate(signupRules())
	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
}

func TestFormValidateCollectsPerField(t *testing.T) {
	form := NewForm(map[string]any{
		"name":          "A",
		"email":         "not-an-email",
		"confirm_email": "other@example.com",
		"age":           "thirty",
	})

	errs := form.Validate(signupRules())
	require.False(t, errs.Empty())

	assert.Equal(t, []string{RuleHasMinLength}, errs["name"])
	assert.Equal(t, []string{RuleIsEmail}, errs["email"])
	assert.Equal(t, []string{RuleConfirmEmail}, errs["confirm_email"])
	assert.Equal(t, []string{RuleIsNumeric}, errs["age"])
	assert.Equal(t, []string{"age", "confirm_email", "email", "name"}, errs.Fields())
}

func TestFormMissingField(t *testing.T) {
	form := NewForm(map[string]any{})

	errs := form.Validate(FieldRules{
		"email": Options{RuleIsRequired: true, RuleIsEmail: true},
	})

	// A missing field is validated as nil: isRequired fails, and isEmail
	// fails closed on the non-string input.
	assert.ElementsMatch(t, []string{RuleIsRequired, RuleIsEmail}, errs["email"])
}

func TestFormConfirmationUsesSiblingValue(t *testing.T) {
	t.Run("missing sibling passes open", func(t *testing.T) {
		form := NewForm(map[string]any{"confirm_email": "a@b.com"})
		errs := form.Validate(FieldRules{
			"confirm_email": Options{RuleConfirmEmail: "email"},
		})
		assert.True(t, errs.Empty())
	})

	t.Run("non-string sibling is rendered", func(t *testing.T) {
		form := NewForm(map[string]any{"pin": 1234, "confirm_pin": "1234"})
		errs := form.Validate(FieldRules{
			"confirm_pin": Options{RuleConfirmEmail: "pin"},
		})
		assert.True(t, errs.Empty())
	})
}

func TestFormFieldLookup(t *testing.T) {
	form := NewForm(map[string]any{"a": "x", "n": 42, "nothing": nil})

	v, ok := form.Field("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = form.Field("n")
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = form.Field("nothing")
	assert.False(t, ok)

	_, ok = form.Field("absent")
	assert.False(t, ok)
}

func TestErrorsBag(t *testing.T) {
	errs := Errors{
		"email": {RuleIsRequired, RuleIsEmail},
	}

	assert.False(t, errs.Empty())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, RuleIsRequired, errs.First("email"))
	assert.Equal(t, "", errs.First("name"))
	assert.Equal(t, []string{"email"}, errs.Fields())
}
