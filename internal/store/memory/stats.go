package memory

import (
	"context"
	"time"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// GetStats recomputes the dashboard aggregate with a full scan under the
// read lock.  Today means the current local day; logins count activity
// records of type login created since local midnight.
func (s *Store) GetStats(_ context.Context) (store.DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	expiryCutoff := now.AddDate(0, 0, store.DefaultExpiryWindowDays)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var st store.DashboardStats
	st.TotalUsers = len(s.users)
	for _, u := range s.users {
		if u.IsActive {
			st.ActiveUsers++
		}
	}
	for _, a := range s.activities {
		if a.Type == model.ActivityLogin && !a.CreatedAt.Before(startOfDay) {
			st.TodayLogins++
		}
	}
	for _, d := range s.documents {
		if d.Status == model.DocumentStatusPending {
			st.PendingDocs++
		}
	}
	for _, r := range s.requests {
		if r.Status == model.RequestStatusPending {
			st.PendingRequests++
		}
	}
	for _, a := range s.agreements {
		if a.Status != model.AgreementStatusActive {
			continue
		}
		st.ActiveAgreements++
		if a.EndDate != nil && !a.EndDate.After(expiryCutoff) {
			st.ExpiringAgreements++
		}
	}
	for _, q := range s.quotaUsage {
		st.TotalQuotaUsage += q.UsedAmount
	}
	for _, t := range s.transactions {
		if t.Status == model.TransactionStatusPending {
			st.PendingTransactions++
		}
	}
	return st, nil
}
