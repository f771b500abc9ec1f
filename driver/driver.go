// Package driver abstracts the browser automation library used by the test suite.
//
// A Driver owns a browser process. Each test gets its own Session, which has an isolated
// browser context (cookies, storage) and one page; the session must be closed when the
// test ends. Elements are located lazily, as with playwright locators: locating never
// fails, and errors are reported by the operations performed on the element.
package driver

import "github.com/regform/registration-contract-tests/framework"

// Driver creates browser sessions.
type Driver interface {
	NewSession(logger framework.Logger) (Session, error)
	Close() error
}

// Session is one isolated page in the browser.
type Session interface {
	// Navigate loads a path relative to the site's base URL.
	Navigate(path string) error
	// Locate returns a handle for the element matching a CSS selector or XPath expression.
	Locate(selector string) Element
	// Click clicks the element matching the selector.
	Click(selector string) error
	// Screenshot saves an image of the page to a file.
	Screenshot(path string) error
	Close() error
}

// Element is a handle for an element on the page.
type Element interface {
	Fill(text string) error
	Click() error
	TextContent() (string, error)
	ComputedStyle(property string) (string, error)
	IsVisible() (bool, error)
	IsDisabled() (bool, error)
}
