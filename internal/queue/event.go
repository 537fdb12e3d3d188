// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityLoggedEvent is published whenever an audit-worthy action is
// recorded (logins, uploads, reviews, renewals, notifications).  It
// carries enough for downstream consumers to log or alert without
// querying the primary store.
type ActivityLoggedEvent struct {
	ActivityID  string         `json:"activity_id"`
	UserID      string         `json:"user_id,omitempty"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	OccurredAt  string         `json:"occurred_at"`
}
