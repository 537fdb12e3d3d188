package mysqlstore

import (
	"context"
	"time"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// GetStats recomputes the dashboard aggregate with one scalar query per
// counter.  Counters may observe slightly different snapshots; the
// contract makes no cross-entity guarantee.
func (s *Store) GetStats(ctx context.Context) (store.DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	expiryCutoff := now.AddDate(0, 0, store.DefaultExpiryWindowDays)

	var st store.DashboardStats
	counters := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&st.TotalUsers, "SELECT COUNT(*) FROM users", nil},
		{&st.ActiveUsers, "SELECT COUNT(*) FROM users WHERE is_active = TRUE", nil},
		{&st.TodayLogins, "SELECT COUNT(*) FROM activities WHERE type = ? AND created_at >= ?",
			[]any{model.ActivityLogin, startOfDay}},
		{&st.PendingDocs, "SELECT COUNT(*) FROM documents WHERE status = ?",
			[]any{model.DocumentStatusPending}},
		{&st.PendingRequests, "SELECT COUNT(*) FROM requests WHERE status = ?",
			[]any{model.RequestStatusPending}},
		{&st.ActiveAgreements, "SELECT COUNT(*) FROM agreements WHERE status = ?",
			[]any{model.AgreementStatusActive}},
		{&st.ExpiringAgreements, "SELECT COUNT(*) FROM agreements WHERE status = ? AND end_date IS NOT NULL AND end_date <= ?",
			[]any{model.AgreementStatusActive, expiryCutoff}},
		{&st.TotalQuotaUsage, "SELECT COALESCE(SUM(used_amount), 0) FROM quota_usage", nil},
		{&st.PendingTransactions, "SELECT COUNT(*) FROM pnbp_transactions WHERE status = ?",
			[]any{model.TransactionStatusPending}},
	}
	for _, c := range counters {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return store.DashboardStats{}, err
		}
	}
	return st, nil
}
