package regtests

import (
	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/driver"
	"github.com/regform/registration-contract-tests/framework"
)

type environment struct {
	harness *framework.TestHarness
	driver  driver.Driver
	config  config.Config
}

// T represents a test or subtest in the registration form test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that
// is outside of the Go test runner, and with some extra features such as debug logging
// that are provided by the lower-level framework package.
//
// To make test assertions, use the assert and require packages passing the *T as if it were
// a *testing.T, or use Expect to choose between the two per call site. A failed assert
// lets the test continue; a failed require ends the test at once.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Failed reports whether the test has failed so far.
func (t *T) Failed() bool {
	return t.context.Failed()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// ID returns the full path of the test.
func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Defer schedules an action to run when the test ends.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Config returns the configuration of the test run.
func (t *T) Config() config.Config {
	return t.env.config
}
