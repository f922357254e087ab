package domain

import "time"

// Clock provides the current time. Implementations may be real (production)
// or deterministic (testing). The domain defines the interface; adapters
// provide implementations. Every request reads the clock exactly once and
// threads that reading through all derived fields, so a single response can
// never disagree with itself about "now".
type Clock interface {
	// Now returns the current time. The returned time includes both wall clock
	// and monotonic readings when using RealClock.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
// It is a zero-allocation implementation (empty struct).
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock at compile time.
var _ Clock = RealClock{}
