package model

import "time"

// Notification severities.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification targeting.  TargetID discriminates the user or role when
// TargetType is not "all".
const (
	TargetAll  = "all"
	TargetUser = "user"
	TargetRole = "role"
)

// Notification is a broadcast or targeted message in the `notifications`
// table.  Read state lives on the notification itself, not per recipient:
// marking an "all"-targeted notification read affects every viewer.
//
// Fields:
//  ID         – primary key (UUID string).
//  Title      – headline.
//  Message    – body text.
//  Type       – info, warning, success or error.
//  TargetType – all, user or role.
//  TargetID   – target user or role id when TargetType is not "all".
//  SentBy     – sending admin (soft reference, nullable).
//  IsRead     – shared read flag, defaults to false.
//  CreatedAt  – creation timestamp.
type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	TargetType string    `json:"targetType"`
	TargetID   *string   `json:"targetId"`
	SentBy     *string   `json:"sentBy"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertNotification is the send payload.  Type defaults to info and
// TargetType to all when empty.
type InsertNotification struct {
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Type       string  `json:"type"`
	TargetType string  `json:"targetType"`
	TargetID   *string `json:"targetId"`
	SentBy     *string `json:"sentBy"`
}
