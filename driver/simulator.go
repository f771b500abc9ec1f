package driver

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/framework"
	"github.com/regform/registration-contract-tests/validation"
)

const borderColorProperty = "border-color"

// SimulatorOptions configures NewSimulator. The fault fields make the simulated form
// misbehave, so that the suite's failure reporting can itself be tested.
type SimulatorOptions struct {
	Locators config.Locators
	Colors   config.BorderColors

	// MessageOverrides replaces a validation message with different text.
	MessageOverrides map[string]string
	// TextOverrides replaces the text of a title, label or button.
	TextOverrides map[config.ElementID]string
	// AlwaysEnableSubmit leaves the Register button enabled regardless of the input.
	AlwaysEnableSubmit bool
}

type simulatorDriver struct {
	opts      SimulatorOptions
	selectors map[string]config.ElementID
}

type simulatorSession struct {
	owner     *simulatorDriver
	logger    framework.Logger
	navigated bool
	modalOpen bool
	values    validation.FormSnapshot
	touched   map[validation.Field]bool
	focused   *validation.Field
	closed    bool
}

type simulatorElement struct {
	session  *simulatorSession
	selector string
}

var staticTexts = map[config.ElementID]string{
	config.SignUpButton:           "Sign up",
	config.RegistrationModalTitle: "Registration",
	config.RegistrationButton:     "Register",
}

// NewSimulator returns a Driver whose sessions render an in-memory copy of the
// registration form. Selectors are resolved through the locator table, and the form reacts
// to input according to the validation package, as the real site does: a field's message
// and red border appear once the field loses focus.
func NewSimulator(opts SimulatorOptions) Driver {
	if opts.Locators == nil {
		opts.Locators = config.DefaultLocators()
	}
	if opts.Colors == (config.BorderColors{}) {
		opts.Colors = config.Default().Colors
	}
	d := &simulatorDriver{opts: opts, selectors: make(map[string]config.ElementID)}
	for id, selector := range opts.Locators {
		d.selectors[selector] = id
	}
	return d
}

func (d *simulatorDriver) NewSession(logger framework.Logger) (Session, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &simulatorSession{
		owner:   d,
		logger:  framework.LoggerWithPrefix(logger, "[simulator] "),
		values:  make(validation.FormSnapshot),
		touched: make(map[validation.Field]bool),
	}, nil
}

func (d *simulatorDriver) Close() error { return nil }

func (s *simulatorSession) Navigate(path string) error {
	if s.closed {
		return errSessionClosed
	}
	if path != "/" && path != "" {
		return fmt.Errorf("could not navigate to %s: 404 Not Found", path)
	}
	s.logger.Printf("Navigating to %s", path)
	s.navigated = true
	s.modalOpen = false
	s.values = make(validation.FormSnapshot)
	s.touched = make(map[validation.Field]bool)
	s.focused = nil
	return nil
}

func (s *simulatorSession) Locate(selector string) Element {
	return &simulatorElement{session: s, selector: selector}
}

func (s *simulatorSession) Click(selector string) error {
	return s.Locate(selector).Click()
}

// Screenshot writes a plain-text rendering of the form, since there is no real page.
func (s *simulatorSession) Screenshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "modal open: %t\n", s.modalOpen)
	for _, f := range validation.AllFields {
		fmt.Fprintf(&b, "%s: %q touched=%t border=%s\n", f.Key(), s.values[f], s.touched[f], s.borderColor(f))
	}
	if msg, ok := s.alertText(); ok {
		fmt.Fprintf(&b, "alert: %s\n", msg)
	}
	return ioutil.WriteFile(path, []byte(b.String()), 0644)
}

func (s *simulatorSession) Close() error {
	s.closed = true
	return nil
}

var errSessionClosed = errors.New("target page, context or browser has been closed")

func (s *simulatorSession) blur() {
	if s.focused != nil {
		s.touched[*s.focused] = true
		s.focused = nil
	}
}

func (s *simulatorSession) message(f validation.Field) (string, bool) {
	r := s.values.Validate(f)
	if r.OK {
		return "", false
	}
	if replacement, ok := s.owner.opts.MessageOverrides[r.Message]; ok {
		return replacement, true
	}
	return r.Message, true
}

func (s *simulatorSession) alertText() (string, bool) {
	for _, f := range validation.AllFields {
		if !s.touched[f] {
			continue
		}
		if msg, invalid := s.message(f); invalid {
			return msg, true
		}
	}
	return "", false
}

func (s *simulatorSession) borderColor(f validation.Field) string {
	if s.touched[f] {
		if _, invalid := s.message(f); invalid {
			return s.owner.opts.Colors.Invalid
		}
	}
	return s.owner.opts.Colors.Valid
}

func (s *simulatorSession) submitEnabled() bool {
	return s.owner.opts.AlwaysEnableSubmit || validation.IsSubmitEnabled(s.values)
}

func (e *simulatorElement) resolve() (config.ElementID, error) {
	s := e.session
	if s.closed {
		return "", errSessionClosed
	}
	id, ok := s.owner.selectors[e.selector]
	if !ok || !s.navigated {
		return "", fmt.Errorf("no element matches selector %s", e.selector)
	}
	if id != config.SignUpButton && id != config.PageBody && !s.modalOpen {
		return "", fmt.Errorf("element %s is not visible", e.selector)
	}
	return id, nil
}

func fieldOf(id config.ElementID) (validation.Field, bool) {
	for _, f := range validation.AllFields {
		if config.FieldElement(f) == id {
			return f, true
		}
	}
	return 0, false
}

func labelOf(id config.ElementID) (validation.Field, bool) {
	for _, f := range validation.AllFields {
		if config.LabelElement(f) == id {
			return f, true
		}
	}
	return 0, false
}

func (e *simulatorElement) Fill(text string) error {
	id, err := e.resolve()
	if err != nil {
		return err
	}
	f, ok := fieldOf(id)
	if !ok {
		return fmt.Errorf("element %s is not an <input>, <textarea> or <select> element", e.selector)
	}
	s := e.session
	if s.focused != nil && *s.focused != f {
		s.blur()
	}
	s.logger.Printf("Filling %s with %q", f.Key(), text)
	s.values[f] = text
	s.focused = &f
	return nil
}

func (e *simulatorElement) Click() error {
	id, err := e.resolve()
	if err != nil {
		return err
	}
	s := e.session
	switch id {
	case config.SignUpButton:
		s.logger.Printf("Opening registration modal")
		s.modalOpen = true
	case config.PageBody:
		s.blur()
	case config.RegistrationButton:
		if !s.submitEnabled() {
			return fmt.Errorf("element %s is not enabled", e.selector)
		}
		s.blur()
	default:
		if f, ok := fieldOf(id); ok {
			if s.focused != nil && *s.focused != f {
				s.blur()
			}
			s.focused = &f
		} else {
			s.blur()
		}
	}
	return nil
}

func (e *simulatorElement) TextContent() (string, error) {
	id, err := e.resolve()
	if err != nil {
		return "", err
	}
	s := e.session
	if text, ok := s.owner.opts.TextOverrides[id]; ok {
		return text, nil
	}
	if text, ok := staticTexts[id]; ok {
		return text, nil
	}
	if f, ok := labelOf(id); ok {
		return f.Label(), nil
	}
	if id == config.FieldAlert {
		if msg, ok := s.alertText(); ok {
			return msg, nil
		}
		return "", fmt.Errorf("no element matches selector %s", e.selector)
	}
	return "", nil
}

func (e *simulatorElement) ComputedStyle(property string) (string, error) {
	id, err := e.resolve()
	if err != nil {
		return "", err
	}
	f, ok := fieldOf(id)
	if !ok || property != borderColorProperty {
		return "", nil
	}
	return e.session.borderColor(f), nil
}

func (e *simulatorElement) IsVisible() (bool, error) {
	s := e.session
	if s.closed {
		return false, errSessionClosed
	}
	id, ok := s.owner.selectors[e.selector]
	if !ok || !s.navigated {
		return false, nil
	}
	switch id {
	case config.SignUpButton, config.PageBody:
		return true, nil
	case config.FieldAlert:
		_, shown := s.alertText()
		return s.modalOpen && shown, nil
	}
	return s.modalOpen, nil
}

func (e *simulatorElement) IsDisabled() (bool, error) {
	id, err := e.resolve()
	if err != nil {
		return false, err
	}
	if id == config.RegistrationButton {
		return !e.session.submitEnabled(), nil
	}
	return false, nil
}
