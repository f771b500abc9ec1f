package regtests

import "github.com/regform/registration-contract-tests/validation"

var nameFields = []validation.Field{validation.Name, validation.LastName}

func DoInvalidNameTests(t *T) {
	for _, field := range nameFields {
		field := field
		for _, value := range namesWithInvalidCharacters {
			value := value
			t.Run(fieldTestName(field, value), func(t *T) {
				checkFieldFeedback(t, field, value, invalidCharacterMessages[field])
			})
		}
		for _, value := range namesOfWrongLength {
			value := value
			t.Run(fieldTestName(field, value), func(t *T) {
				checkFieldFeedback(t, field, value, wrongLengthMessages[field])
			})
		}
	}
}

func DoInvalidEmailTests(t *T) {
	for _, value := range invalidEmails {
		value := value
		t.Run(fieldTestName(validation.Email, value), func(t *T) {
			checkFieldFeedback(t, validation.Email, value, validation.MsgEmailIncorrect)
		})
	}
}

func DoInvalidPasswordTests(t *T) {
	for _, field := range []validation.Field{validation.Password, validation.RepeatPassword} {
		field := field
		for _, value := range invalidPasswords {
			value := value
			t.Run(fieldTestName(field, value), func(t *T) {
				checkFieldFeedback(t, field, value, validation.MsgPasswordFormat)
			})
		}
	}
}
