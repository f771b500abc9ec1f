package regtests

import "github.com/regform/registration-contract-tests/validation"

func DoEmptyFieldTests(t *T) {
	for _, field := range validation.AllFields {
		field := field
		t.Run(field.Key(), func(t *T) {
			checkFieldFeedback(t, field, "", validation.RequiredMessage(field))
		})
	}
}
