package kernel

import "time"

// Clock supplies the current time to entities that record timestamps.
// Successive calls are expected to be non-decreasing, but callers that depend
// on ordering (such as departure after arrival) check it themselves.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
