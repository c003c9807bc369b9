package clock

import "time"

// Clock stamps game updates and turn records; tests swap in a fixed clock
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC with the monotonic reading stripped,
// so a timestamp compares equal after a storage round trip.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
