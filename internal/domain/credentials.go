package domain

// KeyRotationStrategy decides which of two API keys is tried first.
type KeyRotationStrategy string

const (
	// KeyRotationRoundRobin splits calls between the keys based on the wall clock.
	KeyRotationRoundRobin KeyRotationStrategy = "round-robin"
	// KeyRotationUserPriority always tries the user supplied key first.
	KeyRotationUserPriority KeyRotationStrategy = "user-priority"
	// KeyRotationSDKPriority always tries the shipped default key first.
	KeyRotationSDKPriority KeyRotationStrategy = "sdk-priority"
)

// ParseKeyRotationStrategy converts s into a KeyRotationStrategy.
// Unknown values resolve to KeyRotationRoundRobin.
func ParseKeyRotationStrategy(s string) KeyRotationStrategy {
	switch KeyRotationStrategy(s) {
	case KeyRotationUserPriority, KeyRotationSDKPriority, KeyRotationRoundRobin:
		return KeyRotationStrategy(s)
	default:
		return KeyRotationRoundRobin
	}
}

// KeySource tells where a selected key came from.
type KeySource string

const (
	KeySourceSDK  KeySource = "sdk"
	KeySourceUser KeySource = "user"
	// KeySourceDefault marks a selection made when only the default key exists.
	KeySourceDefault KeySource = "default"
)

// KeySelection is the ordered pair of keys for a single upstream call.
// Fallback is empty when no distinct user key is configured.
type KeySelection struct {
	Primary  string
	Fallback string
	Source   KeySource
}

// HasFallback reports whether a fallback key is available.
func (ks KeySelection) HasFallback() bool {
	return ks.Fallback != ""
}
