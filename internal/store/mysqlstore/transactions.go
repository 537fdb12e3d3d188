package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const transactionCols = "id, user_id, transaction_id, service_type, amount, status, payment_method, transaction_date, payment_date, reference_number, notes, created_at"

func (s *Store) CreatePnbpTransaction(ctx context.Context, in model.InsertPnbpTransaction) (model.PnbpTransaction, error) {
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
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO pnbp_transactions ("+transactionCols+") VALUES (?,?,?,?,?,?,?,?,NULL,?,?,?)",
		t.ID, t.UserID, t.TransactionID, t.ServiceType, t.Amount, t.Status,
		t.PaymentMethod, t.TransactionDate, t.ReferenceNumber, t.Notes, t.CreatedAt)
	if err != nil {
		return model.PnbpTransaction{}, err
	}
	return t, nil
}

func (s *Store) GetUserTransactions(ctx context.Context, userID string) ([]model.PnbpTransaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+transactionCols+" FROM pnbp_transactions WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PnbpTransaction, 0)
	for rows.Next() {
		var t model.PnbpTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.TransactionID, &t.ServiceType, &t.Amount,
			&t.Status, &t.PaymentMethod, &t.TransactionDate, &t.PaymentDate,
			&t.ReferenceNumber, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTransactionStatus overwrites the status without validating the
// transition.  Completion stamps payment_date when still NULL.
func (s *Store) UpdateTransactionStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE pnbp_transactions SET status = ?, payment_date = IF(? = ? AND payment_date IS NULL, ?, payment_date) WHERE id = ?",
		status, status, model.TransactionStatusCompleted, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	// A no-op status write still counts as found.
	var exists int
	err = s.db.QueryRowContext(ctx,
		"SELECT 1 FROM pnbp_transactions WHERE id = ? LIMIT 1", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
