package regtests

import (
	"github.com/regform/registration-contract-tests/config"
	"github.com/regform/registration-contract-tests/driver"
	"github.com/regform/registration-contract-tests/framework"
)

// RunTestSuite runs every registration form test against the site, using d to create a
// browser session per test.
func RunTestSuite(
	harness *framework.TestHarness,
	d driver.Driver,
	cfg config.Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{harness: harness, driver: d, config: cfg}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.Run("text elements", DoTextElementTests)
		t.Run("valid data", DoValidDataTests)
		t.Run("empty fields", DoEmptyFieldTests)
		t.Run("invalid names", DoInvalidNameTests)
		t.Run("invalid emails", DoInvalidEmailTests)
		t.Run("invalid passwords", DoInvalidPasswordTests)
		t.Run("password mismatch", DoPasswordMismatchTests)
		t.Run("register button", DoRegisterButtonTests)
	})
}
