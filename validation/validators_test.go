package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func expectResult(t *testing.T, expected Result, field Field, value string) {
	t.Helper()
	assert.Equal(t, expected, Validate(field, value), "field %s, value %q", field, value)
}

func TestNamesOfValidLengthAreAccepted(t *testing.T) {
	for _, f := range []Field{Name, LastName} {
		for _, value := range []string{"Al", "Os", "AleksanderAleksander", "abcdefghijklmnopqrst", "Zz"} {
			expectResult(t, Valid, f, value)
		}
	}
}

func TestNamesOfWrongLength(t *testing.T) {
	for _, value := range []string{"A", "AleksanderAleksanderA", strings.Repeat("x", 50)} {
		expectResult(t, invalid(MsgNameLength), Name, value)
		expectResult(t, invalid(MsgLastNameLength), LastName, value)
	}
}

func TestNamesWithInvalidCharacters(t *testing.T) {
	for _, value := range []string{"234", "сми", "!£", "Al1", "Anne Marie", "O'Neil", "Jörg"} {
		expectResult(t, invalid(MsgNameInvalid), Name, value)
		expectResult(t, invalid(MsgLastNameInvalid), LastName, value)
	}
}

func TestInvalidCharactersTakePrecedenceOverLength(t *testing.T) {
	expectResult(t, invalid(MsgNameInvalid), Name, "1")
	expectResult(t, invalid(MsgLastNameInvalid), LastName, "ы")
	expectResult(t, invalid(MsgNameInvalid), Name, strings.Repeat("9", 25))
}

func TestEmptyFieldsAreRequired(t *testing.T) {
	for _, f := range AllFields {
		expectResult(t, invalid(RequiredMessage(f)), f, "")
	}
	assert.Equal(t, "Re-enter password required", RequiredMessage(RepeatPassword))
}

func TestValidEmails(t *testing.T) {
	for _, value := range []string{"tester@gmail.com", "tester123@gmail.com", "tes.ter@gmail.com",
		"3457890@gmail.com", "test123@gmail.com", "a@b.co"} {
		expectResult(t, Valid, Email, value)
	}
}

func TestInvalidEmails(t *testing.T) {
	for _, value := range []string{"üüüüüöö@gmail.com", "ыыыыыыы@gmail.com", "!!!!!!!@gmail.com",
		"qqqqqqgmail.com", "qqqqqqqqq@", "qqqqqqqqq@gmail", "test123gmail.com", "@gmail.com",
		"a@@gmail.com", "a@gmail.c"} {
		expectResult(t, invalid(MsgEmailIncorrect), Email, value)
	}
}

func TestValidPasswords(t *testing.T) {
	for _, f := range []Field{Password, RepeatPassword} {
		for _, value := range []string{"Qa12345!", "Qa1234567890qA!", "Abcdefg1", "aB3aB3aB3aB3aB3"} {
			expectResult(t, Valid, f, value)
		}
	}
}

func TestInvalidPasswords(t *testing.T) {
	for _, f := range []Field{Password, RepeatPassword} {
		for _, value := range []string{"qa123456", "QA123456", "Qawsedr", "Qa12345", "Qa1234567890qaws",
			"Qawsedrf", "12345678"} {
			expectResult(t, invalid(MsgPasswordFormat), f, value)
		}
	}
}

func TestPasswordCharacterClassesAreASCII(t *testing.T) {
	for _, value := range []string{
		"Qa١٢٣٤٥!", // Arabic-Indic digits
		"Ωa123456", // Greek capital
		"Qж123456", // Cyrillic small letter
	} {
		expectResult(t, invalid(MsgPasswordFormat), Password, value)
	}
	expectResult(t, Valid, Password, "Qa123456ж")
}

func TestValidateUnknownFieldPanics(t *testing.T) {
	assert.Panics(t, func() { Validate(Field(len(AllFields)), "x") })
	assert.Panics(t, func() { FieldSpec{Field: -1, RawValue: "x"}.Validate() })
}

func TestRepeatPasswordMismatch(t *testing.T) {
	assert.Equal(t, Valid, ValidateRepeatPassword("Qa12345!", "Qa12345!"))
	assert.Equal(t, invalid(MsgPasswordsDoNotMatch), ValidateRepeatPassword("Qa12345!", "Qa12345!!"))
	assert.Equal(t, invalid(MsgPasswordsDoNotMatch), ValidateRepeatPassword("Qa12345!", "Qa12345?"))
}

func TestMismatchIsReportedBeforeFormat(t *testing.T) {
	assert.Equal(t, invalid(MsgPasswordsDoNotMatch), ValidateRepeatPassword("Qa12345!", "Qa12345"))
	assert.Equal(t, invalid(MsgPasswordFormat), ValidateRepeatPassword("Qa12345", "Qa12345"))
	assert.Equal(t, invalid(MsgRepeatPasswordRequired), ValidateRepeatPassword("Qa12345!", ""))
}

func TestRepeatPasswordWithoutPasswordIsNotAMismatch(t *testing.T) {
	assert.Equal(t, Valid, ValidateRepeatPassword("", "Qa12345!"))
	assert.Equal(t, invalid(MsgPasswordFormat), ValidateRepeatPassword("", "Qa12345"))
}

func TestEveryMessageIsKnown(t *testing.T) {
	known := KnownMessages()
	inputs := []string{"", "A", "234", "x@y", "Qa12345", "Qa12345!", "tester@gmail.com"}
	for _, f := range AllFields {
		for _, in := range inputs {
			r := Validate(f, in)
			if r.OK {
				assert.Empty(t, r.Message)
			} else {
				assert.Contains(t, known, r.Message)
			}
		}
	}
}

func TestFieldKeysRoundTrip(t *testing.T) {
	for _, f := range AllFields {
		parsed, err := ParseField(f.Key())
		assert.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	_, err := ParseField("middleName")
	assert.Error(t, err)
}
