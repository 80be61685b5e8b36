package engine

import "time"

// TimeSource is the controller's wall clock, read for tilt key-hold timing.
// Physics never reads it; it only advances by fixed ticks.
type TimeSource interface {
	Now() time.Time
}

// TimeProvider is the production TimeSource backed by the system clock
type TimeProvider struct{}

// NewTimeProvider returns a system clock source
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns time.Now, monotonic reading included, so hold durations
// survive wall clock adjustments
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
