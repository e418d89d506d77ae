// Package clock abstracts the time source so TTL caches can be tested
// without sleeping.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/layout-api/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return system{}
}

// Expiring is a cached value with the instant it goes stale
type Expiring[T any] struct {
	Value     T
	ExpiresAt time.Time
}

// NewExpiring stamps a value to stay fresh for ttl after now
func NewExpiring[T any](value T, now time.Time, ttl time.Duration) Expiring[T] {
	return Expiring[T]{Value: value, ExpiresAt: now.Add(ttl)}
}

// Fresh reports whether the value is still usable at now
func (e Expiring[T]) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
