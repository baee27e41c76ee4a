package planlog

import "time"

// Clock provides an abstraction for time so mission logs can be tested
// deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock implements Clock with a fixed time for testing.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock pinned to t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time { return c.current }

// Advance moves the fixed time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
