package validation

import (
	"fmt"
	"strings"
)

// FormSnapshot holds the current raw value of each field. A missing field counts as empty.
type FormSnapshot map[Field]string

// NewFormSnapshot builds a snapshot from the given specs; later specs override earlier ones.
func NewFormSnapshot(specs ...FieldSpec) FormSnapshot {
	s := make(FormSnapshot, len(specs))
	for _, spec := range specs {
		s[spec.Field] = spec.RawValue
	}
	return s
}

// With returns a copy of the snapshot with one field replaced.
func (s FormSnapshot) With(field Field, value string) FormSnapshot {
	ret := make(FormSnapshot, len(s)+1)
	for k, v := range s {
		ret[k] = v
	}
	ret[field] = value
	return ret
}

// Validate checks one field in the context of the whole form, so that the repeat
// password is compared with the password.
func (s FormSnapshot) Validate(field Field) Result {
	if field == RepeatPassword {
		return ValidateRepeatPassword(s[Password], s[RepeatPassword])
	}
	return Validate(field, s[field])
}

// Results validates every field.
func (s FormSnapshot) Results() map[Field]Result {
	ret := make(map[Field]Result, len(AllFields))
	for _, f := range AllFields {
		ret[f] = s.Validate(f)
	}
	return ret
}

// FirstInvalid returns the first field, in display order, whose value is rejected.
func (s FormSnapshot) FirstInvalid() (Field, Result, bool) {
	for _, f := range AllFields {
		if r := s.Validate(f); !r.OK {
			return f, r, true
		}
	}
	return 0, Valid, false
}

func (s FormSnapshot) String() string {
	parts := make([]string, 0, len(AllFields))
	for _, f := range AllFields {
		parts = append(parts, fmt.Sprintf("%s: %q", f.Key(), s[f]))
	}
	return strings.Join(parts, ", ")
}

// IsSubmitEnabled reports whether the Register button should be enabled for the snapshot.
func IsSubmitEnabled(s FormSnapshot) bool {
	_, _, anyInvalid := s.FirstInvalid()
	return !anyInvalid
}
