package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Count returns the number of tests that ran, and how many of those were skipped from
// inside the test.
func (r Results) Count() (ran, skipped int) {
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		} else {
			ran++
		}
	}
	return
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the test run, listing each failed test.
func PrintResults(out io.Writer, results Results) {
	ran, skipped := results.Count()
	if results.OK() {
		fmt.Fprintf(out, "%s (%d tests, %d skipped)\n", color.GreenString("All tests passed"), ran, skipped)
		return
	}
	fmt.Fprintf(out, "%s (%d of %d tests, %d skipped):\n",
		color.RedString("FAILED"), len(results.Failures), ran, skipped)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s\n", f.TestID)
		for _, err := range f.Errors {
			first := strings.SplitN(reformatError(err).Error(), "\n", 2)[0]
			fmt.Fprintf(out, "    %s\n", first)
		}
	}
}
