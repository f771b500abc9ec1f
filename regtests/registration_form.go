package regtests

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/driver"
	"github.com/regform/registration-contract-tests/framework"
	"github.com/regform/registration-contract-tests/validation"
)

const (
	borderColorProperty = "border-color"
	minPollInterval     = time.Millisecond * 10
	maxPollInterval     = time.Millisecond * 100
)

var (
	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	errNoAlert      = errors.New("no field message is shown")
)

// RegistrationForm binds the form's semantic elements to a browser session that belongs
// to a single test. The session is closed when the test ends.
//
// Expectations poll the page with testify's EventuallyWithT, which reads from its own
// goroutine, so every session access holds lock.
type RegistrationForm struct {
	lock     sync.Mutex
	session  driver.Session
	locators config.Locators
	colors   config.BorderColors
	timeout  time.Duration
	logger   framework.Logger
}

// OpenRegistrationForm starts a browser session for the test, loads the home page and
// opens the registration modal. The test fails and immediately exits if any of that fails.
func OpenRegistrationForm(t *T) *RegistrationForm {
	cfg := t.Config()
	session, err := t.env.driver.NewSession(t.DebugLogger())
	require.NoError(t, err)

	f := &RegistrationForm{
		session:  session,
		locators: cfg.Locators,
		colors:   cfg.Colors,
		timeout:  cfg.Timeout(),
		logger:   t.DebugLogger(),
	}
	id := t.ID()
	t.Defer(func() {
		f.lock.Lock()
		defer f.lock.Unlock()
		if t.Failed() && cfg.ScreenshotDir != "" {
			path := filepath.Join(cfg.ScreenshotDir, screenshotName(id))
			if err := session.Screenshot(path); err != nil {
				f.logger.Printf("Could not save screenshot: %s", err)
			} else {
				f.logger.Printf("Saved screenshot to %s", path)
			}
		}
		if err := session.Close(); err != nil {
			f.logger.Printf("Error closing browser session: %s", err)
		}
	})

	require.NoError(t, session.Navigate("/"))
	require.NoError(t, f.click(config.SignUpButton))
	return f
}

// pollInterval is a tenth of the timeout, so that several reads complete before an
// expectation gives up.
func (f *RegistrationForm) pollInterval() time.Duration {
	tick := f.timeout / 10
	if tick < minPollInterval {
		return minPollInterval
	}
	if tick > maxPollInterval {
		return maxPollInterval
	}
	return tick
}

func screenshotName(id framework.TestID) string {
	return unsafeFileChars.ReplaceAllString(id.String(), "_") + ".png"
}

func (f *RegistrationForm) element(id config.ElementID) (driver.Element, error) {
	selector, err := f.locators.Selector(id)
	if err != nil {
		return nil, err
	}
	return f.session.Locate(selector), nil
}

func (f *RegistrationForm) click(id config.ElementID) error {
	selector, err := f.locators.Selector(id)
	if err != nil {
		return err
	}
	return f.session.Click(selector)
}

// Fill types a value into a field.
func (f *RegistrationForm) Fill(field validation.Field, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	e, err := f.element(config.FieldElement(field))
	if err != nil {
		return err
	}
	return e.Fill(value)
}

// Blur clicks on the page body so that the focused field loses focus and is validated.
func (f *RegistrationForm) Blur() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.click(config.PageBody)
}

// FillForm fills every field of the snapshot in display order, without blurring the last one.
func (f *RegistrationForm) FillForm(snapshot validation.FormSnapshot) error {
	for _, field := range validation.AllFields {
		if err := f.Fill(field, snapshot[field]); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the text content of an element.
func (f *RegistrationForm) Text(id config.ElementID) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.text(id)
}

func (f *RegistrationForm) text(id config.ElementID) (string, error) {
	e, err := f.element(id)
	if err != nil {
		return "", err
	}
	return e.TextContent()
}

// AlertText returns the message shown under the first invalid field. It does not wait for
// a message to appear.
func (f *RegistrationForm) AlertText() (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	visible, err := f.alertVisible()
	if err != nil {
		return "", err
	}
	if !visible {
		return "", errNoAlert
	}
	return f.text(config.FieldAlert)
}

// AlertVisible reports whether any field message is shown.
func (f *RegistrationForm) AlertVisible() (bool, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.alertVisible()
}

func (f *RegistrationForm) alertVisible() (bool, error) {
	e, err := f.element(config.FieldAlert)
	if err != nil {
		return false, err
	}
	return e.IsVisible()
}

// BorderColor returns the computed border color of a field.
func (f *RegistrationForm) BorderColor(field validation.Field) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	e, err := f.element(config.FieldElement(field))
	if err != nil {
		return "", err
	}
	return e.ComputedStyle(borderColorProperty)
}

// RegisterDisabled reports whether the Register button is disabled.
func (f *RegistrationForm) RegisterDisabled() (bool, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	e, err := f.element(config.RegistrationButton)
	if err != nil {
		return false, err
	}
	return e.IsDisabled()
}

// ExpectText checks that an element shows the given text.
func (f *RegistrationForm) ExpectText(t *T, mode Mode, id config.ElementID, expected string) {
	Expect(t, mode).Eventually(func(c *assert.CollectT) {
		text, err := f.Text(id)
		if assert.NoError(c, err, "could not read text of %s", id) {
			assert.Equal(c, expected, text, "text of %s", id)
		}
	}, f.timeout, f.pollInterval(), "%s never showed %q", id, expected)
}

// ExpectFieldAccepted checks that no message is shown and the field has the normal border.
func (f *RegistrationForm) ExpectFieldAccepted(t *T, mode Mode, field validation.Field) {
	e := Expect(t, mode)
	e.Eventually(func(c *assert.CollectT) {
		visible, err := f.AlertVisible()
		if assert.NoError(c, err, "could not check for field message") && visible {
			text, _ := f.AlertText()
			assert.Fail(c, fmt.Sprintf("expected no message for %s, but saw %q", field, text))
		}
	}, f.timeout, f.pollInterval(), "message for %s never went away", field)
	f.expectBorder(e, field, f.colors.Valid)
}

// ExpectFieldRejected checks that the given message is shown and the field has the error border.
func (f *RegistrationForm) ExpectFieldRejected(t *T, mode Mode, field validation.Field, message string) {
	e := Expect(t, mode)
	e.Eventually(func(c *assert.CollectT) {
		text, err := f.AlertText()
		if assert.NoError(c, err, "could not read message for %s", field) {
			assert.Equal(c, message, text, "message for %s", field)
		}
	}, f.timeout, f.pollInterval(), "%s never showed %q", field, message)
	f.expectBorder(e, field, f.colors.Invalid)
}

// ExpectFeedback checks the field against the result that the validation rules predict.
func (f *RegistrationForm) ExpectFeedback(t *T, mode Mode, field validation.Field, predicted validation.Result) {
	if predicted.OK {
		f.ExpectFieldAccepted(t, mode, field)
	} else {
		f.ExpectFieldRejected(t, mode, field, predicted.Message)
	}
}

func (f *RegistrationForm) expectBorder(e Expectation, field validation.Field, color string) {
	e.Eventually(func(c *assert.CollectT) {
		got, err := f.BorderColor(field)
		if assert.NoError(c, err, "could not read border color of %s", field) {
			assert.Equal(c, color, got, "border color of %s", field)
		}
	}, f.timeout, f.pollInterval(), "border of %s never became %s", field, color)
}

// ExpectRegisterDisabled checks the state of the Register button.
func (f *RegistrationForm) ExpectRegisterDisabled(t *T, mode Mode, disabled bool) {
	Expect(t, mode).Eventually(func(c *assert.CollectT) {
		got, err := f.RegisterDisabled()
		if assert.NoError(c, err, "could not read state of Register button") {
			assert.Equal(c, disabled, got, "Register button disabled")
		}
	}, f.timeout, f.pollInterval(), "Register button never became %s", enabledState(!disabled))
}

func enabledState(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
