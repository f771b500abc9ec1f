package framework

// TestLogger is told about each test as the suite runs, so that progress can be shown
// while a slow browser suite is still going. TestError may be called several times for
// one test when soft assertions fail. TestFinished carries the test's debug output, which
// the implementation decides whether to show.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

// NullTestLogger returns a TestLogger that ignores every notification. Run uses it when
// no logger is given.
func NullTestLogger() TestLogger { return silentTestLogger{} }

type silentTestLogger struct{}

func (silentTestLogger) TestStarted(TestID)                        {}
func (silentTestLogger) TestError(TestID, error)                   {}
func (silentTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (silentTestLogger) TestSkipped(TestID, string)                {}
