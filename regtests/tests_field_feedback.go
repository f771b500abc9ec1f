package regtests

import (
	"fmt"

	"github.com/regform/registration-contract-tests/validation"
)

func fieldTestName(field validation.Field, value string) string {
	return fmt.Sprintf("%s %q", field.Key(), value)
}

// checkFieldFeedback fills a single field, moves focus away and checks that the page shows
// what the validation rules predict. An empty expectedMessage means the value should be
// accepted. If the fixture disagrees with the rules, the test fails before touching the page.
func checkFieldFeedback(t *T, field validation.Field, value, expectedMessage string) {
	checkFormFeedback(t, validation.FormSnapshot{field: value}, field, expectedMessage)
}

func checkFormFeedback(t *T, snapshot validation.FormSnapshot, field validation.Field, expectedMessage string) {
	predicted := snapshot.Validate(field)
	Expect(t, Hard).Equal(expectedMessage, predicted.Message,
		"fixture for %s does not match the validation rules", snapshot)
	t.Debug("Expecting %s for %s", predicted, snapshot)

	form := fillAndBlur(t, snapshot)
	form.ExpectFeedback(t, Soft, field, predicted)
}

// checkFormAccepted fills every field in the snapshot and checks that none of them is
// rejected.
func checkFormAccepted(t *T, snapshot validation.FormSnapshot) {
	for _, f := range filledFields(snapshot) {
		Expect(t, Hard).Equal(validation.Valid, snapshot.Validate(f),
			"fixture for %s does not match the validation rules", snapshot)
	}

	form := fillAndBlur(t, snapshot)
	for _, f := range filledFields(snapshot) {
		form.ExpectFieldAccepted(t, Soft, f)
	}
}

func filledFields(snapshot validation.FormSnapshot) []validation.Field {
	var ret []validation.Field
	for _, f := range validation.AllFields {
		if _, ok := snapshot[f]; ok {
			ret = append(ret, f)
		}
	}
	return ret
}

func fillAndBlur(t *T, snapshot validation.FormSnapshot) *RegistrationForm {
	form := OpenRegistrationForm(t)
	for _, f := range filledFields(snapshot) {
		Expect(t, Hard).NoError(form.Fill(f, snapshot[f]), "could not fill %s", f)
	}
	Expect(t, Hard).NoError(form.Blur(), "could not move focus away from the form")
	return form
}
