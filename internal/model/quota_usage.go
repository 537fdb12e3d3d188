package model

import "time"

// QuotaUsage is a per-user, per-type consumption counter in the
// `quota_usage` table.  The remaining amount is never stored; call
// Remaining so there is a single source of truth.
//
// Fields:
//  ID         – primary key (UUID string).
//  UserID     – owning user (soft reference).
//  QuotaType  – counter kind, e.g. "document_download" or "api_calls".
//  UsedAmount – units consumed in the current period.
//  TotalQuota – ceiling for the period.
//  Period     – daily, monthly or yearly.
//  ResetDate  – when the counter is due for a reset.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – timestamp of last update.
type QuotaUsage struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	QuotaType  string     `json:"quotaType"`
	UsedAmount int        `json:"usedAmount"`
	TotalQuota int        `json:"totalQuota"`
	Period     string     `json:"period"`
	ResetDate  *time.Time `json:"resetDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Remaining computes the unconsumed quota.  It can go negative when
// corrections push UsedAmount past the ceiling; callers decide how to
// present that.
func (q QuotaUsage) Remaining() int {
	return q.TotalQuota - q.UsedAmount
}

// InsertQuotaUsage establishes a counter for a (user, quotaType) pair.
// Period defaults to "monthly" when empty.
type InsertQuotaUsage struct {
	UserID     string     `json:"userId"`
	QuotaType  string     `json:"quotaType"`
	UsedAmount int        `json:"usedAmount"`
	TotalQuota int        `json:"totalQuota"`
	Period     string     `json:"period"`
	ResetDate  *time.Time `json:"resetDate"`
}
