package regtests

import (
	"fmt"

	"github.com/regform/registration-contract-tests/validation"
)

func DoValidDataTests(t *T) {
	single := map[validation.Field][]string{
		validation.Name:     validNames,
		validation.LastName: validNames,
		validation.Email:    validEmails,
	}
	for _, field := range []validation.Field{validation.Name, validation.LastName, validation.Email} {
		for _, value := range single[field] {
			field, value := field, value
			t.Run(fieldTestName(field, value), func(t *T) {
				checkFieldFeedback(t, field, value, "")
			})
		}
	}

	// the site's users type the same password twice, so both fields are filled together
	for _, value := range validPasswords {
		value := value
		t.Run(fmt.Sprintf("%s and %s %q", validation.Password.Key(), validation.RepeatPassword.Key(), value), func(t *T) {
			checkFormAccepted(t, validation.FormSnapshot{
				validation.Password:       value,
				validation.RepeatPassword: value,
			})
		})
	}
}
