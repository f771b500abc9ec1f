package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	minNameLength     = 2
	maxNameLength     = 20
	minPasswordLength = 8
	maxPasswordLength = 15
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9]+(\.[A-Za-z0-9]+)*@[A-Za-z0-9]+(\.[A-Za-z0-9]+)*\.[A-Za-z]{2,}$`)

// Result is the outcome of checking one field's value. Message is empty when OK is true.
type Result struct {
	OK      bool
	Message string
}

// Valid is the Result for an accepted value.
var Valid = Result{OK: true}

func invalid(message string) Result {
	return Result{Message: message}
}

func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	return "invalid: " + r.Message
}

// Validate checks a single field in isolation. It does not apply the rule that the two
// password fields must match; use FormSnapshot.Validate or ValidateRepeatPassword for that.
// It panics if field is not one of AllFields.
func Validate(field Field, value string) Result {
	switch field {
	case Name:
		return validateName(value, MsgNameRequired, MsgNameInvalid, MsgNameLength)
	case LastName:
		return validateName(value, MsgLastNameRequired, MsgLastNameInvalid, MsgLastNameLength)
	case Email:
		return validateEmail(value)
	case Password:
		return validatePassword(value, MsgPasswordRequired)
	case RepeatPassword:
		return validatePassword(value, MsgRepeatPasswordRequired)
	}
	panic(fmt.Sprintf("validation: unknown field %d", int(field)))
}

// ValidateRepeatPassword checks the repeat-password value against the password. When both
// are present and differ, the mismatch is reported even if the repeat value is also
// malformed; otherwise the repeat value is checked on its own.
func ValidateRepeatPassword(password, repeat string) Result {
	if repeat != "" && password != "" && password != repeat {
		return invalid(MsgPasswordsDoNotMatch)
	}
	return Validate(RepeatPassword, repeat)
}

// A character-class violation is reported before a length violation.
func validateName(value, required, badChars, badLength string) Result {
	if value == "" {
		return invalid(required)
	}
	for _, ch := range value {
		if !isLatinLetter(ch) {
			return invalid(badChars)
		}
	}
	if n := utf8.RuneCountInString(value); n < minNameLength || n > maxNameLength {
		return invalid(badLength)
	}
	return Valid
}

func validateEmail(value string) Result {
	if value == "" {
		return invalid(MsgEmailRequired)
	}
	if !emailPattern.MatchString(value) {
		return invalid(MsgEmailIncorrect)
	}
	return Valid
}

func validatePassword(value, required string) Result {
	if value == "" {
		return invalid(required)
	}
	n := utf8.RuneCountInString(value)
	var digit, upper, lower bool
	for _, ch := range value {
		switch {
		case ch >= '0' && ch <= '9':
			digit = true
		case ch >= 'A' && ch <= 'Z':
			upper = true
		case ch >= 'a' && ch <= 'z':
			lower = true
		}
	}
	if n < minPasswordLength || n > maxPasswordLength || !digit || !upper || !lower {
		return invalid(MsgPasswordFormat)
	}
	return Valid
}

func isLatinLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
