// Package regtests contains the registration form tests themselves and their supporting API.
//
// Each test predicts what the form should show using the validation package, then drives
// the browser through a RegistrationForm and compares what is rendered with the
// prediction. Test harness infrastructure that is not specific to the registration form,
// such as the test context and result reporting, is in the lower-level framework package.
package regtests
