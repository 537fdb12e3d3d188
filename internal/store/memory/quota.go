package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateQuotaUsage establishes a counter for a (user, quotaType) pair.
// Period defaults to monthly.  Uniqueness of the pair is not enforced;
// UpdateQuotaUsage hits whichever counter it finds first.
func (s *Store) CreateQuotaUsage(_ context.Context, in model.InsertQuotaUsage) (model.QuotaUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	q := model.QuotaUsage{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		QuotaType:  in.QuotaType,
		UsedAmount: in.UsedAmount,
		TotalQuota: in.TotalQuota,
		Period:     in.Period,
		ResetDate:  in.ResetDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if q.Period == "" {
		q.Period = "monthly"
	}
	s.quotaUsage[q.ID] = q
	return q, nil
}

// GetUserQuotaUsage returns every counter belonging to one user.
func (s *Store) GetUserQuotaUsage(_ context.Context, userID string) ([]model.QuotaUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.QuotaUsage, 0)
	for _, q := range s.quotaUsage {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

// UpdateQuotaUsage adds amount to the matching counter as one critical
// section, so two concurrent increments both land.  Amount may be
// negative for corrections.  Counters are never auto-created; false
// means no counter exists for the pair.
func (s *Store) UpdateQuotaUsage(_ context.Context, userID, quotaType string, amount int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, q := range s.quotaUsage {
		if q.UserID == userID && q.QuotaType == quotaType {
			q.UsedAmount += amount
			q.UpdatedAt = time.Now()
			s.quotaUsage[id] = q
			return true, nil
		}
	}
	return false, nil
}

// ResetUserQuota zeroes the matching counter and pushes ResetDate one
// month out.
func (s *Store) ResetUserQuota(_ context.Context, userID, quotaType string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, q := range s.quotaUsage {
		if q.UserID == userID && q.QuotaType == quotaType {
			now := time.Now()
			next := now.AddDate(0, 1, 0)
			q.UsedAmount = 0
			q.ResetDate = &next
			q.UpdatedAt = now
			s.quotaUsage[id] = q
			return true, nil
		}
	}
	return false, nil
}
