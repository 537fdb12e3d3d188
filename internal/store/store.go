// Package store defines the data-access contract of the admin backend.
// Two implementations exist: an in-memory one under store/memory used by
// tests and dev mode, and a MySQL one under store/mysqlstore used in
// production.  Both must satisfy identical pre/post-conditions.
//
// Absence of a record is never an error.  Point reads return a found
// flag, partial updates return (zero, false, nil) for unknown ids, and
// flag-style mutations return false.  The error value is reserved for
// genuine faults such as a lost database connection; the memory
// implementation never returns one.
//
// Cross-entity references (userId, documentId, uploadedBy, reviewedBy,
// sentBy) are plain id strings.  The store does not verify that they
// resolve, does not cascade deletes and accepts dangling references;
// referential integrity is the caller's problem.
package store

import (
	"context"
	"time"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// DefaultActivityLimit caps activity listings when the caller does not
// supply a limit.
const DefaultActivityLimit = 50

// DefaultExpiryWindowDays is the look-ahead used for the expiring
// agreements counter in GetStats.
const DefaultExpiryWindowDays = 30

// DashboardStats is the full-scan aggregate computed by GetStats.  It is
// recomputed on every call over a point-in-time snapshot; there is no
// cross-entity transaction guarantee between the counters.
type DashboardStats struct {
	TotalUsers          int `json:"totalUsers"`
	ActiveUsers         int `json:"activeUsers"`
	TodayLogins         int `json:"todayLogins"`
	PendingDocs         int `json:"pendingDocs"`
	PendingRequests     int `json:"pendingRequests"`
	ActiveAgreements    int `json:"activeAgreements"`
	ExpiringAgreements  int `json:"expiringAgreements"`
	TotalQuotaUsage     int `json:"totalQuotaUsage"`
	PendingTransactions int `json:"pendingTransactions"`
}

// Store is the operation set the API layer is written against.
type Store interface {
	// User operations.  UpsertUser is the identity bootstrap invoked on
	// every successful authentication: it merges non-nil fields over an
	// existing record (stamping UpdatedAt) or creates a new one with
	// role "user", isActive true and quota 100 as defaults, assigning a
	// fresh id when none is given.  Repeated calls with the same claims
	// are idempotent apart from the UpdatedAt stamp.
	GetUser(ctx context.Context, id string) (model.User, bool, error)
	UpsertUser(ctx context.Context, in model.UpsertUser) (model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (model.User, bool, error)

	// Document operations.  DeleteDocument reports whether a record
	// existed and has no effect on agreements that reference it.
	CreateDocument(ctx context.Context, in model.InsertDocument) (model.Document, error)
	GetAllDocuments(ctx context.Context) ([]model.Document, error)
	GetDocumentByID(ctx context.Context, id string) (model.Document, bool, error)
	UpdateDocument(ctx context.Context, id string, upd model.DocumentUpdate) (model.Document, bool, error)
	DeleteDocument(ctx context.Context, id string) (bool, error)

	// Activity operations.  Listings are sorted by creation time
	// descending and truncated to limit (DefaultActivityLimit when
	// limit <= 0).
	CreateActivity(ctx context.Context, in model.InsertActivity) (model.Activity, error)
	GetActivities(ctx context.Context, limit int) ([]model.Activity, error)
	GetUserActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error)

	// Request operations.  CreateRequest stores status pending no matter
	// what the payload says.
	CreateRequest(ctx context.Context, in model.InsertRequest) (model.Request, error)
	GetAllRequests(ctx context.Context) ([]model.Request, error)
	GetPendingRequests(ctx context.Context) ([]model.Request, error)
	UpdateRequest(ctx context.Context, id string, upd model.RequestUpdate) (model.Request, bool, error)

	// Notification operations.  GetUserNotifications matches targetType
	// "all" and targetType "user" with a matching targetId, newest
	// first.  Role-targeted notifications are not matched; resolving
	// role membership is left to the caller.
	CreateNotification(ctx context.Context, in model.InsertNotification) (model.Notification, error)
	GetUserNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (bool, error)

	// Agreement operations.  GetExpiringAgreements returns active
	// agreements whose end date falls on or before now+daysAhead,
	// including ones already past due that nobody expired yet.
	// RequestAgreementRenewal only sets the renewal flag and its
	// timestamp; moving status to pending_renewal is a separate
	// UpdateAgreement the caller applies.  MarkExpiredAgreements is the
	// sweep an external scheduler may run to settle overdue active
	// records; it returns how many rows it transitioned.
	CreateAgreement(ctx context.Context, in model.InsertAgreement) (model.Agreement, error)
	GetUserAgreements(ctx context.Context, userID string) ([]model.Agreement, error)
	GetExpiringAgreements(ctx context.Context, daysAhead int) ([]model.Agreement, error)
	UpdateAgreement(ctx context.Context, id string, upd model.AgreementUpdate) (model.Agreement, bool, error)
	RequestAgreementRenewal(ctx context.Context, id string) (bool, error)
	MarkExpiredAgreements(ctx context.Context, now time.Time) (int, error)

	// Quota operations.  UpdateQuotaUsage adds amount (which may be
	// negative for corrections) to the matching counter in one step and
	// returns false when no counter exists for the pair; counters are
	// never auto-created.
	CreateQuotaUsage(ctx context.Context, in model.InsertQuotaUsage) (model.QuotaUsage, error)
	GetUserQuotaUsage(ctx context.Context, userID string) ([]model.QuotaUsage, error)
	UpdateQuotaUsage(ctx context.Context, userID, quotaType string, amount int) (bool, error)
	ResetUserQuota(ctx context.Context, userID, quotaType string) (bool, error)

	// Transaction operations.  UpdateTransactionStatus trusts the caller
	// and does not validate the transition.
	CreatePnbpTransaction(ctx context.Context, in model.InsertPnbpTransaction) (model.PnbpTransaction, error)
	GetUserTransactions(ctx context.Context, userID string) ([]model.PnbpTransaction, error)
	UpdateTransactionStatus(ctx context.Context, id, status string) (bool, error)

	// GetStats recomputes the dashboard aggregate over the full current
	// snapshot.
	GetStats(ctx context.Context) (DashboardStats, error)
}
