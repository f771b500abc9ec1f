package regtests

import (
	"github.com/regform/registration-contract-tests/validation"
)

func DoRegisterButtonTests(t *T) {
	t.Run("disabled before input", func(t *T) {
		form := OpenRegistrationForm(t)
		form.ExpectRegisterDisabled(t, Hard, true)
	})

	for _, c := range registerButtonCases {
		c := c
		name := "enabled for valid form"
		if c.disabled {
			field, _, _ := c.form.FirstInvalid()
			name = "disabled for invalid " + field.Key()
		}
		t.Run(name, func(t *T) {
			Expect(t, Hard).Equal(c.disabled, !validation.IsSubmitEnabled(c.form),
				"fixture for %s does not match the validation rules", c.form)

			form := OpenRegistrationForm(t)
			Expect(t, Hard).NoError(form.FillForm(c.form), "could not fill form")
			form.ExpectRegisterDisabled(t, Hard, c.disabled)
		})
	}
}
