// Package submission keeps at most one create submission in flight per owner.
package submission

import "time"

// DefaultTTL bounds how long an abandoned submission blocks its owner.
const DefaultTTL = 2 * time.Minute

const keyPrefix = "acara:submitting:"

func key(userID string) string { return keyPrefix + userID }
