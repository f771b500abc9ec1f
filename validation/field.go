package validation

import "fmt"

// Field identifies one of the inputs on the registration form.
type Field int

const (
	Name Field = iota
	LastName
	Email
	Password
	RepeatPassword
)

// AllFields lists the form's fields in display order.
var AllFields = []Field{Name, LastName, Email, Password, RepeatPassword}

var fieldLabels = map[Field]string{
	Name:           "Name",
	LastName:       "Last name",
	Email:          "Email",
	Password:       "Password",
	RepeatPassword: "Re-enter password",
}

var fieldKeys = map[Field]string{
	Name:           "name",
	LastName:       "lastName",
	Email:          "email",
	Password:       "password",
	RepeatPassword: "repeatPassword",
}

// Label returns the text of the field's label as it appears on the form.
func (f Field) Label() string {
	if s, ok := fieldLabels[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Key returns the identifier used for the field in configuration files and test names.
func (f Field) Key() string {
	if s, ok := fieldKeys[f]; ok {
		return s
	}
	return fmt.Sprintf("field%d", int(f))
}

func (f Field) String() string { return f.Key() }

// ParseField is the inverse of Key.
func ParseField(key string) (Field, error) {
	for f, k := range fieldKeys {
		if k == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", key)
}

// FieldSpec is one input value destined for one field.
type FieldSpec struct {
	Field    Field
	RawValue string
}

func (s FieldSpec) Validate() Result {
	return Validate(s.Field, s.RawValue)
}
