package regtests

import (
	"fmt"

	"github.com/regform/registration-contract-tests/validation"
)

func DoPasswordMismatchTests(t *T) {
	for _, c := range mismatchCases {
		c := c
		t.Run(fmt.Sprintf("%q then %q", c.password, c.repeat), func(t *T) {
			snapshot := validation.FormSnapshot{
				validation.Password:       c.password,
				validation.RepeatPassword: c.repeat,
			}
			checkFormFeedback(t, snapshot, validation.RepeatPassword, validation.MsgPasswordsDoNotMatch)
		})
	}
}
