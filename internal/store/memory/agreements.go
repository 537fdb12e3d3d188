package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// CreateAgreement stores a new agreement.  Status defaults to active.
func (s *Store) CreateAgreement(_ context.Context, in model.InsertAgreement) (model.Agreement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	a := model.Agreement{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		DocumentID:      in.DocumentID,
		Type:            in.Type,
		AgreementNumber: in.AgreementNumber,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Status:          in.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if a.Status == "" {
		a.Status = model.AgreementStatusActive
	}
	s.agreements[a.ID] = a
	return a, nil
}

// GetUserAgreements returns the agreements owned by one user.
func (s *Store) GetUserAgreements(_ context.Context, userID string) ([]model.Agreement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Agreement, 0)
	for _, a := range s.agreements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetExpiringAgreements returns the active agreements ending on or
// before now+daysAhead (DefaultExpiryWindowDays when daysAhead <= 0).
// Active records whose end date already passed are included; they stay
// visible until a sweep or an explicit update settles them.
func (s *Store) GetExpiringAgreements(_ context.Context, daysAhead int) ([]model.Agreement, error) {
	if daysAhead <= 0 {
		daysAhead = store.DefaultExpiryWindowDays
	}
	cutoff := time.Now().AddDate(0, 0, daysAhead)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Agreement, 0)
	for _, a := range s.agreements {
		if a.Status == model.AgreementStatusActive && a.EndDate != nil && !a.EndDate.After(cutoff) {
			out = append(out, a)
		}
	}
	return out, nil
}

// UpdateAgreement applies the non-nil fields and stamps UpdatedAt.
func (s *Store) UpdateAgreement(_ context.Context, id string, upd model.AgreementUpdate) (model.Agreement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.agreements[id]
	if !ok {
		return model.Agreement{}, false, nil
	}
	if upd.DocumentID != nil {
		a.DocumentID = upd.DocumentID
	}
	if upd.Type != nil {
		a.Type = *upd.Type
	}
	if upd.AgreementNumber != nil {
		a.AgreementNumber = upd.AgreementNumber
	}
	if upd.StartDate != nil {
		a.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		a.EndDate = upd.EndDate
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	a.UpdatedAt = time.Now()
	s.agreements[id] = a
	return a, true, nil
}

// RequestAgreementRenewal records that the owner asked for renewal.  It
// only sets the flag and its timestamp; the status transition to
// pending_renewal is a separate UpdateAgreement the route applies.
func (s *Store) RequestAgreementRenewal(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.agreements[id]
	if !ok {
		return false, nil
	}
	now := time.Now()
	a.RenewalRequested = true
	a.RenewalRequestDate = &now
	a.UpdatedAt = now
	s.agreements[id] = a
	return true, nil
}

// MarkExpiredAgreements settles every active agreement whose end date
// lies strictly before now, returning how many it transitioned.  Meant
// for an external scheduler; nothing in the server calls it on a timer.
func (s *Store) MarkExpiredAgreements(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, a := range s.agreements {
		if a.Status == model.AgreementStatusActive && a.EndDate != nil && a.EndDate.Before(now) {
			a.Status = model.AgreementStatusExpired
			a.UpdatedAt = now
			s.agreements[id] = a
			count++
		}
	}
	return count, nil
}
