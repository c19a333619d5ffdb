package validate_test

import (
	"fmt"

	"github.com/willdrewes/validate"
)

func ExampleValidate() {
	ok := validate.Validate("alice@example.com", validate.Options{
		"isRequired": true,
		"isEmail":    true,
	})
	fmt.Println(ok)
	// Output: true
}

func ExampleFailures() {
	failed := validate.Failures("42", validate.Options{
		"hasMinLength": 5,
	})
	fmt.Println(failed)
	// Output: [hasMinLength]
}

func ExampleCheck() {
	failed := validate.Check("not a url",
		validate.Required(true),
		validate.URL(),
	)
	fmt.Println(failed)
	// Output: [isUrl]
}

func ExampleForm_Validate() {
	form := validate.NewForm(map[string]any{
		"email":         "alice@example.com",
		"confirm_email": "bob@example.com",
	})

	errs := form.Validate(validate.FieldRules{
		"email":         {"isRequired": true, "isEmail": true},
		"confirm_email": {"confirmEmail": "email"},
	})
	fmt.Println(errs.Fields())
	// Output: [confirm_email]
}

func ExampleNewDocumentForm() {
	doc, err := validate.NewDocumentForm([]byte(`{"user":{"age":"abc"}}`))
	if err != nil {
		panic(err)
	}

	errs := doc.Validate(validate.FieldRules{
		"user.age": {"isNumeric": true},
	})
	fmt.Println(errs["user.age"])
	// Output: [isNumeric]
}
