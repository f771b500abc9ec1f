// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of browser tests.
//
// The general model is:
//
// 1. The test harness points at a site under test. Before any tests run it checks that
// the site is answering HTTP requests at its base URL.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Assertions may either record a failure and continue, or end
// the current test at once.
//
// The domain-specific code that knows what is being tested is responsible for driving the
// browser, and for providing a domain-specific test API on top of the test context.
package framework
