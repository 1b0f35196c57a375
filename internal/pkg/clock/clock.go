// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant; Advance moves it forward.
// Save-slot and combat-log tests use it to pin timestamps and expiry.
type Fixed struct {
	At time.Time
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the pinned time forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
