package regtests

import (
	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/validation"
)

type textElement struct {
	id   config.ElementID
	text string
}

var textElements = []textElement{
	{config.RegistrationModalTitle, "Registration"},
	{config.NameLabel, "Name"},
	{config.LastNameLabel, "Last name"},
	{config.EmailLabel, "Email"},
	{config.PasswordLabel, "Password"},
	{config.ReenterPasswordLabel, "Re-enter password"},
	{config.RegistrationButton, "Register"},
}

var (
	validNames     = []string{"Al", "AleksanderAleksander"}
	validEmails    = []string{"tester@gmail.com", "tester123@gmail.com", "tes.ter@gmail.com", "3457890@gmail.com"}
	validPasswords = []string{"Qa12345!", "Qa1234567890qA!"}

	namesWithInvalidCharacters = []string{"234", "сми", "!£"}
	namesOfWrongLength         = []string{"A", "AleksanderAleksanderA"}

	invalidEmails = []string{
		"üüüüüöö@gmail.com",
		"ыыыыыыы@gmail.com",
		"!!!!!!!@gmail.com",
		"qqqqqqgmail.com",
		"qqqqqqqqq@",
		"qqqqqqqqq@gmail",
	}

	invalidPasswords = []string{
		"qa123456",
		"QA123456",
		"Qawsedr",
		"Qa12345",
		"Qa1234567890qaws",
	}
)

var (
	invalidCharacterMessages = map[validation.Field]string{
		validation.Name:     validation.MsgNameInvalid,
		validation.LastName: validation.MsgLastNameInvalid,
	}
	wrongLengthMessages = map[validation.Field]string{
		validation.Name:     validation.MsgNameLength,
		validation.LastName: validation.MsgLastNameLength,
	}
)

type mismatchCase struct {
	password string
	repeat   string
}

var mismatchCases = []mismatchCase{
	{"Qa12345!", "Qa12345!!"},
}

// The first five mirror the site's disabled-button scenarios: each has exactly one bad field.
var registerButtonCases = []struct {
	form     validation.FormSnapshot
	disabled bool
}{
	{snapshot("A", "Os", "test123@gmail.com", "Qa12345!", "Qa12345!"), true},
	{snapshot("Al", "O", "test123@gmail.com", "Qa12345!", "Qa12345!"), true},
	{snapshot("Al", "Os", "test123gmail.com", "Qa12345!", "Qa12345!"), true},
	{snapshot("Al", "Os", "test123@gmail.com", "Qa12345", "Qa12345"), true},
	{snapshot("Al", "Os", "test123@gmail.com", "Qa12345!", "Qa12345"), true},
	{snapshot("Al", "Os", "test123@gmail.com", "Qa12345!", "Qa12345!"), false},
}

func snapshot(name, lastName, email, password, repeatPassword string) validation.FormSnapshot {
	return validation.FormSnapshot{
		validation.Name:           name,
		validation.LastName:       lastName,
		validation.Email:          email,
		validation.Password:       password,
		validation.RepeatPassword: repeatPassword,
	}
}
