package model

import "time"

// Activity types written by the API layer after state-changing calls.
const (
	ActivityLogin        = "login"
	ActivityUpload       = "upload"
	ActivityDownload     = "download"
	ActivityRequest      = "request"
	ActivityReview       = "review"
	ActivityNotification = "notification"
	ActivityRenewal      = "renewal"
)

// Activity is an append-only audit record in the `activities` table.
// Records are immutable once created and are never updated or deleted.
//
// Fields:
//  ID          – primary key (UUID string).
//  UserID      – acting user; nil for system events (soft reference).
//  Type        – one of the Activity* constants.
//  Description – human-readable summary.
//  Metadata    – free-form key/value context, stored as JSON.
//  CreatedAt   – creation timestamp; orders the audit trail.
type Activity struct {
	ID          string         `json:"id"`
	UserID      *string        `json:"userId"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// InsertActivity is the creation payload for an audit record.
type InsertActivity struct {
	UserID      *string        `json:"userId"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}
