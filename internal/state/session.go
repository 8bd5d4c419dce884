package state

import "github.com/google/uuid"

// NewSessionID names one run of the editor. It shows up in logs, in the
// remote bridge greeting and in exported document metadata.
func NewSessionID() string {
	return uuid.NewString()
}

// ShortSession trims a session id for log prefixes.
func ShortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
