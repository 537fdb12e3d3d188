package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreatePnbpTransaction stores a new payment record.  Status defaults to
// pending and TransactionDate to now.
func (s *Store) CreatePnbpTransaction(_ context.Context, in model.InsertPnbpTransaction) (model.PnbpTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	t := model.PnbpTransaction{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		TransactionID:   in.TransactionID,
		ServiceType:     in.ServiceType,
		Amount:          in.Amount,
		Status:          in.Status,
		PaymentMethod:   in.PaymentMethod,
		TransactionDate: now,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedAt:       now,
	}
	if t.Status == "" {
		t.Status = model.TransactionStatusPending
	}
	if in.TransactionDate != nil {
		t.TransactionDate = *in.TransactionDate
	}
	s.transactions[t.ID] = t
	return t, nil
}

// GetUserTransactions returns every transaction of one user.
func (s *Store) GetUserTransactions(_ context.Context, userID string) ([]model.PnbpTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PnbpTransaction, 0)
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// UpdateTransactionStatus overwrites the status without validating the
// transition; settlement rules live with the payment gateway, not here.
// A completed status also stamps PaymentDate when it is still unset.
func (s *Store) UpdateTransactionStatus(_ context.Context, id, status string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return false, nil
	}
	t.Status = status
	if status == model.TransactionStatusCompleted && t.PaymentDate == nil {
		now := time.Now()
		t.PaymentDate = &now
	}
	s.transactions[id] = t
	return true, nil
}
