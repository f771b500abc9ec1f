package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/regform/registration-contract-tests/validation"
)

// ElementID is the semantic name of something on the page that tests interact with.
type ElementID string

const (
	SignUpButton           ElementID = "signUp"
	RegistrationModalTitle ElementID = "registrationModalTitle"
	NameLabel              ElementID = "nameLabel"
	LastNameLabel          ElementID = "lastNameLabel"
	EmailLabel             ElementID = "emailLabel"
	PasswordLabel          ElementID = "passwordLabel"
	ReenterPasswordLabel   ElementID = "reenterPasswordLabel"
	RegistrationButton     ElementID = "registrationButton"
	NameField              ElementID = "name"
	LastNameField          ElementID = "lastName"
	EmailField             ElementID = "email"
	PasswordField          ElementID = "password"
	RepeatPasswordField    ElementID = "repeatPassword"
	FieldAlert             ElementID = "fieldAlert"
	PageBody               ElementID = "body"
)

// Locators maps element identifiers to CSS selectors or XPath expressions.
type Locators map[ElementID]string

// DefaultLocators returns the selectors of the registration modal on the production site.
func DefaultLocators() Locators {
	return Locators{
		SignUpButton:           ".hero-descriptor_btn",
		RegistrationModalTitle: "//h4[text()='Registration']",
		NameLabel:              "//label[text()='Name']",
		LastNameLabel:          "//label[text()='Last name']",
		EmailLabel:             "//label[text()='Email']",
		PasswordLabel:          "//label[text()='Password']",
		ReenterPasswordLabel:   "//label[text()='Re-enter password']",
		RegistrationButton:     "//button[text()='Register']",
		NameField:              "#signupName",
		LastNameField:          "#signupLastName",
		EmailField:             "#signupEmail",
		PasswordField:          "#signupPassword",
		RepeatPasswordField:    "#signupRepeatPassword",
		FieldAlert:             "div.invalid-feedback p",
		PageBody:               "body",
	}
}

var fieldElements = map[validation.Field]ElementID{
	validation.Name:           NameField,
	validation.LastName:       LastNameField,
	validation.Email:          EmailField,
	validation.Password:       PasswordField,
	validation.RepeatPassword: RepeatPasswordField,
}

var labelElements = map[validation.Field]ElementID{
	validation.Name:           NameLabel,
	validation.LastName:       LastNameLabel,
	validation.Email:          EmailLabel,
	validation.Password:       PasswordLabel,
	validation.RepeatPassword: ReenterPasswordLabel,
}

// FieldElement returns the identifier of the input for a form field.
func FieldElement(f validation.Field) ElementID {
	return fieldElements[f]
}

// LabelElement returns the identifier of the label for a form field.
func LabelElement(f validation.Field) ElementID {
	return labelElements[f]
}

// Selector looks up an element's selector.
func (l Locators) Selector(id ElementID) (string, error) {
	s, ok := l[id]
	if !ok || s == "" {
		return "", fmt.Errorf("no locator configured for %q", id)
	}
	return s, nil
}

// Merge returns a copy of l with every entry of overrides applied on top.
func (l Locators) Merge(overrides Locators) Locators {
	ret := make(Locators, len(l)+len(overrides))
	for k, v := range l {
		ret[k] = v
	}
	for k, v := range overrides {
		ret[k] = v
	}
	return ret
}

// Validate checks that every element the test suite uses has a selector.
func (l Locators) Validate() error {
	var missing []string
	for id := range DefaultLocators() {
		if l[id] == "" {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("locators missing for: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsXPath reports whether a selector is an XPath expression rather than CSS.
func IsXPath(selector string) bool {
	return strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "xpath=") ||
		strings.HasPrefix(selector, "(//")
}
