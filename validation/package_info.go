// Package validation contains the rules that the registration form applies to its input
// fields, expressed as pure functions.
//
// The test suite uses these rules to predict what the live form should display for a
// given input: which message appears under a field, and whether the Register button is
// enabled. Nothing in this package touches a browser, so it can be called directly from
// assertion code or from a simulated form.
package validation
