// Package clock supplies the current time to code that must be testable against a fixed "now".
package clock

import (
	"time"

	"hotel/shared/timezone"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// New returns the wall clock in the application timezone.
func New() Clock {
	return systemClock{}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Fixed returns a clock frozen at now.
func Fixed(now time.Time) Clock {
	return fixedClock{now: now}
}
