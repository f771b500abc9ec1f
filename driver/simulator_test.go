package driver

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/validation"
)

var (
	validColor   = config.Default().Colors.Valid
	invalidColor = config.Default().Colors.Invalid
)

func openForm(t *testing.T, opts SimulatorOptions) Session {
	s, err := NewSimulator(opts).NewSession(nil)
	require.NoError(t, err)
	require.NoError(t, s.Navigate("/"))
	require.NoError(t, s.Click(config.DefaultLocators()[config.SignUpButton]))
	return s
}

func field(s Session, f validation.Field) Element {
	return s.Locate(config.DefaultLocators()[config.FieldElement(f)])
}

func alert(s Session) Element {
	return s.Locate(config.DefaultLocators()[config.FieldAlert])
}

func blur(t *testing.T, s Session) {
	require.NoError(t, s.Click("body"))
}

func TestModalElementsAreHiddenUntilSignUpIsClicked(t *testing.T) {
	s, err := NewSimulator(SimulatorOptions{}).NewSession(nil)
	require.NoError(t, err)
	require.NoError(t, s.Navigate("/"))

	title := s.Locate(config.DefaultLocators()[config.RegistrationModalTitle])
	visible, err := title.IsVisible()
	require.NoError(t, err)
	assert.False(t, visible)
	_, err = title.TextContent()
	assert.Error(t, err)

	require.NoError(t, s.Click(".hero-descriptor_btn"))
	text, err := title.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Registration", text)
}

func TestLabels(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	for _, f := range validation.AllFields {
		text, err := s.Locate(config.DefaultLocators()[config.LabelElement(f)]).TextContent()
		require.NoError(t, err)
		assert.Equal(t, f.Label(), text)
	}
}

func TestMessageAppearsOnlyAfterBlur(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	require.NoError(t, field(s, validation.Name).Fill("234"))

	visible, err := alert(s).IsVisible()
	require.NoError(t, err)
	assert.False(t, visible)
	color, err := field(s, validation.Name).ComputedStyle("border-color")
	require.NoError(t, err)
	assert.Equal(t, validColor, color)

	blur(t, s)
	text, err := alert(s).TextContent()
	require.NoError(t, err)
	assert.Equal(t, validation.MsgNameInvalid, text)
	color, err = field(s, validation.Name).ComputedStyle("border-color")
	require.NoError(t, err)
	assert.Equal(t, invalidColor, color)
}

func TestFillingAnotherFieldBlursThePreviousOne(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	require.NoError(t, field(s, validation.Password).Fill("Qa12345!"))
	require.NoError(t, field(s, validation.RepeatPassword).Fill("Qa12345!!"))
	blur(t, s)

	text, err := alert(s).TextContent()
	require.NoError(t, err)
	assert.Equal(t, validation.MsgPasswordsDoNotMatch, text)
	color, err := field(s, validation.Password).ComputedStyle("border-color")
	require.NoError(t, err)
	assert.Equal(t, validColor, color)
}

func TestRegisterButtonState(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	button := s.Locate(config.DefaultLocators()[config.RegistrationButton])
	disabled, err := button.IsDisabled()
	require.NoError(t, err)
	assert.True(t, disabled)
	assert.Error(t, button.Click())

	values := map[validation.Field]string{
		validation.Name: "Al", validation.LastName: "Os", validation.Email: "test123@gmail.com",
		validation.Password: "Qa12345!", validation.RepeatPassword: "Qa12345!",
	}
	for f, v := range values {
		require.NoError(t, field(s, f).Fill(v))
	}
	disabled, err = button.IsDisabled()
	require.NoError(t, err)
	assert.False(t, disabled)
	assert.NoError(t, button.Click())
}

func TestFaultInjection(t *testing.T) {
	s := openForm(t, SimulatorOptions{
		MessageOverrides:   map[string]string{validation.MsgEmailRequired: "Email is required"},
		TextOverrides:      map[config.ElementID]string{config.RegistrationButton: "Sign me up"},
		AlwaysEnableSubmit: true,
	})
	require.NoError(t, field(s, validation.Email).Fill(""))
	blur(t, s)
	text, err := alert(s).TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Email is required", text)

	button := s.Locate(config.DefaultLocators()[config.RegistrationButton])
	text, err = button.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Sign me up", text)
	disabled, err := button.IsDisabled()
	require.NoError(t, err)
	assert.False(t, disabled)
}

func TestCustomLocators(t *testing.T) {
	locators := config.DefaultLocators().Merge(config.Locators{config.NameField: "input[name=first]"})
	s := openForm(t, SimulatorOptions{Locators: locators})
	assert.NoError(t, s.Locate("input[name=first]").Fill("Al"))
	assert.Error(t, s.Locate("#signupName").Fill("Al"))
}

func TestNavigateResetsTheForm(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	require.NoError(t, field(s, validation.Name).Fill(""))
	blur(t, s)
	require.NoError(t, s.Navigate("/"))
	_, err := alert(s).TextContent()
	assert.Error(t, err)
	assert.Error(t, s.Navigate("/garage"))
}

func TestClosedSession(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	require.NoError(t, s.Close())
	assert.Error(t, field(s, validation.Name).Fill("Al"))
	assert.Error(t, s.Navigate("/"))
}

func TestScreenshotWritesFormState(t *testing.T) {
	s := openForm(t, SimulatorOptions{})
	require.NoError(t, field(s, validation.Name).Fill("A"))
	blur(t, s)
	path := filepath.Join(t.TempDir(), "shots", "form.txt")
	require.NoError(t, s.Screenshot(path))
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name: "A" touched=true border=`+invalidColor)
	assert.Contains(t, string(data), "alert: "+validation.MsgNameLength)
}
