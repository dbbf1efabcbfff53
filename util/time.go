package util

import (
	"sync/atomic"
	"time"
)

var mockTime atomic.Int64

// GetTime returns the current unix time in seconds, or the mock time when
// one has been set.
func GetTime() int64 {
	if mock := mockTime.Load(); mock > 0 {
		return mock
	}
	return time.Now().Unix()
}

// SetMockTime pins GetTime to the given value; zero restores the wall clock.
func SetMockTime(time int64) {
	mockTime.Store(time)
}
