// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Event is one entry from a user's public activity feed.
// It is the core domain entity of this application.
type Event struct {
	// Type is the GitHub event type tag, e.g. "PushEvent".
	Type string
	// Repo is the repository the event happened in, as "owner/name".
	Repo string
	// CreatedAt is the event timestamp reported by the API.
	CreatedAt time.Time
	// Payload holds the parsed type-specific payload (a go-github payload
	// struct such as *github.PushEvent). It is nil when the payload could
	// not be parsed; consumers must tolerate that.
	Payload any
}
