package domain

import "time"

// CurrentTimeProvider is the clock behind key rotation, cache expiry and embedding timestamps.
type CurrentTimeProvider interface {
	Now() time.Time
}

// CurrentTimeFunc adapts a plain function to CurrentTimeProvider.
type CurrentTimeFunc func() time.Time

// Now calls f.
func (f CurrentTimeFunc) Now() time.Time { return f() }

// FixedTime returns a provider that always reports t.
func FixedTime(t time.Time) CurrentTimeProvider {
	return CurrentTimeFunc(func() time.Time { return t })
}
