package model

import "time"

// Request workflow states.  Every request starts pending regardless of
// what the caller supplies; approved and rejected are terminal.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Request priorities.
const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

// Request is a user-initiated ask that needs an admin decision, stored in
// the `requests` table.  ReviewedBy and ReviewedAt are set together,
// exactly once, when the status leaves pending.
//
// Fields:
//  ID          – primary key (UUID string).
//  UserID      – requesting user (soft reference).
//  Type        – extension, quota_reset, access, ...
//  Title       – short summary.
//  Description – full explanation.
//  Status      – pending, approved or rejected.
//  Priority    – normal or urgent.
//  ReviewedBy  – reviewing admin (nil until reviewed).
//  ReviewedAt  – review instant (nil until reviewed).
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – timestamp of last update.
type Request struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ReviewedBy  *string    `json:"reviewedBy"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// InsertRequest is the creation payload.  Status is ignored: creation
// always stores pending.  Priority defaults to normal when empty.
type InsertRequest struct {
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// RequestUpdate is the review update.  Callers settling the status are
// expected to supply ReviewedBy and ReviewedAt together with it.
type RequestUpdate struct {
	Status     *string    `json:"status"`
	Priority   *string    `json:"priority"`
	ReviewedBy *string    `json:"reviewedBy"`
	ReviewedAt *time.Time `json:"reviewedAt"`
}
