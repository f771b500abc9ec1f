package regtests

import (
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mode selects how a failed expectation is handled.
type Mode int

const (
	// Soft records the failure and lets the test continue, like assert.
	Soft Mode = iota
	// Hard records the failure and ends the test, like require.
	Hard
)

func (m Mode) String() string {
	if m == Hard {
		return "hard"
	}
	return "soft"
}

// Expectation makes assertions in a fixed Mode.
type Expectation struct {
	t    *T
	mode Mode
}

func Expect(t *T, mode Mode) Expectation {
	return Expectation{t: t, mode: mode}
}

func (e Expectation) Equal(expected, actual interface{}, msgAndArgs ...interface{}) bool {
	if e.mode == Hard {
		require.Equal(e.t, expected, actual, msgAndArgs...)
		return true
	}
	return assert.Equal(e.t, expected, actual, msgAndArgs...)
}

func (e Expectation) True(value bool, msgAndArgs ...interface{}) bool {
	if e.mode == Hard {
		require.True(e.t, value, msgAndArgs...)
		return true
	}
	return assert.True(e.t, value, msgAndArgs...)
}

func (e Expectation) False(value bool, msgAndArgs ...interface{}) bool {
	if e.mode == Hard {
		require.False(e.t, value, msgAndArgs...)
		return true
	}
	return assert.False(e.t, value, msgAndArgs...)
}

func (e Expectation) NoError(err error, msgAndArgs ...interface{}) bool {
	if e.mode == Hard {
		require.NoError(e.t, err, msgAndArgs...)
		return true
	}
	return assert.NoError(e.t, err, msgAndArgs...)
}

// Eventually retries condition every tick until none of the assertions made on the
// CollectT fail. On timeout the failures of the last attempt are reported to the test.
// The condition runs on another goroutine and must not call FailNow on the CollectT.
func (e Expectation) Eventually(condition func(*assert.CollectT), waitFor, tick time.Duration, msgAndArgs ...interface{}) bool {
	if e.mode == Hard {
		require.EventuallyWithT(e.t, condition, waitFor, tick, msgAndArgs...)
		return true
	}
	return assert.EventuallyWithT(e.t, condition, waitFor, tick, msgAndArgs...)
}
