package validation

// These are the only messages the form ever shows under a field.
const (
	MsgNameRequired           = "Name required"
	MsgLastNameRequired       = "Last name required"
	MsgEmailRequired          = "Email required"
	MsgPasswordRequired       = "Password required"
	MsgRepeatPasswordRequired = "Re-enter password required"

	MsgNameInvalid     = "Name is invalid"
	MsgLastNameInvalid = "Last name is invalid"

	MsgNameLength     = "Name has to be from 2 to 20 characters long"
	MsgLastNameLength = "Last name has to be from 2 to 20 characters long"

	MsgEmailIncorrect = "Email is incorrect"

	MsgPasswordFormat = "Password has to be from 8 to 15 characters long and contain at least one integer, one capital, and one small letter"

	MsgPasswordsDoNotMatch = "Passwords do not match"
)

var requiredMessages = map[Field]string{
	Name:           MsgNameRequired,
	LastName:       MsgLastNameRequired,
	Email:          MsgEmailRequired,
	Password:       MsgPasswordRequired,
	RepeatPassword: MsgRepeatPasswordRequired,
}

// RequiredMessage returns the message shown when the field is left empty.
func RequiredMessage(f Field) string {
	return requiredMessages[f]
}

// KnownMessages returns every message the validators can produce.
func KnownMessages() []string {
	return []string{
		MsgNameRequired, MsgLastNameRequired, MsgEmailRequired, MsgPasswordRequired,
		MsgRepeatPasswordRequired, MsgNameInvalid, MsgLastNameInvalid, MsgNameLength,
		MsgLastNameLength, MsgEmailIncorrect, MsgPasswordFormat, MsgPasswordsDoNotMatch,
	}
}
