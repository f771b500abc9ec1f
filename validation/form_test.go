package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() FormSnapshot {
	return NewFormSnapshot(
		FieldSpec{Name, "Al"},
		FieldSpec{LastName, "Os"},
		FieldSpec{Email, "test123@gmail.com"},
		FieldSpec{Password, "Qa12345!"},
		FieldSpec{RepeatPassword, "Qa12345!"},
	)
}

func TestSubmitEnabledForValidForm(t *testing.T) {
	assert.True(t, IsSubmitEnabled(validSnapshot()))
}

func TestSubmitDisabledForEachInvalidField(t *testing.T) {
	cases := []struct {
		field    Field
		value    string
		expected Result
	}{
		{Name, "A", invalid(MsgNameLength)},
		{LastName, "O", invalid(MsgLastNameLength)},
		{Email, "test123gmail.com", invalid(MsgEmailIncorrect)},
		{RepeatPassword, "Qa12345", invalid(MsgPasswordsDoNotMatch)},
	}
	for _, c := range cases {
		s := validSnapshot().With(c.field, c.value)
		assert.False(t, IsSubmitEnabled(s), "snapshot: %s", s)
		f, r, found := s.FirstInvalid()
		require.True(t, found)
		assert.Equal(t, c.field, f)
		assert.Equal(t, c.expected, r)
	}

	bothShort := validSnapshot().With(Password, "Qa12345").With(RepeatPassword, "Qa12345")
	assert.False(t, IsSubmitEnabled(bothShort))
	assert.Equal(t, invalid(MsgPasswordFormat), bothShort.Validate(Password))
}

func TestSubmitDisabledWhenRepeatPasswordDiffers(t *testing.T) {
	s := validSnapshot().With(RepeatPassword, "Qa12345!!")
	assert.False(t, IsSubmitEnabled(s))
	assert.Equal(t, invalid(MsgPasswordsDoNotMatch), s.Validate(RepeatPassword))
	assert.Equal(t, Valid, s.Validate(Password))
}

func TestSubmitDisabledWhenAnyFieldMissing(t *testing.T) {
	for _, f := range AllFields {
		s := validSnapshot()
		delete(s, f)
		assert.False(t, IsSubmitEnabled(s), "missing %s", f)
		assert.Equal(t, invalid(RequiredMessage(f)), s.Validate(f))
	}
}

func TestSnapshotResults(t *testing.T) {
	s := validSnapshot().With(Email, "").With(RepeatPassword, "Qa12345?")
	expected := map[Field]Result{
		Name:           Valid,
		LastName:       Valid,
		Email:          invalid(MsgEmailRequired),
		Password:       Valid,
		RepeatPassword: invalid(MsgPasswordsDoNotMatch),
	}
	if diff := cmp.Diff(expected, s.Results()); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestWithDoesNotModifyOriginal(t *testing.T) {
	s := validSnapshot()
	_ = s.With(Name, "")
	assert.Equal(t, "Al", s[Name])
}
