package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

const agreementCols = "id, user_id, document_id, type, agreement_number, start_date, end_date, status, renewal_requested, renewal_request_date, created_at, updated_at"

func (s *Store) getAgreement(ctx context.Context, id string) (model.Agreement, bool, error) {
	var a model.Agreement
	err := s.db.QueryRowContext(ctx,
		"SELECT "+agreementCols+" FROM agreements WHERE id = ? LIMIT 1", id).
		Scan(&a.ID, &a.UserID, &a.DocumentID, &a.Type, &a.AgreementNumber,
			&a.StartDate, &a.EndDate, &a.Status, &a.RenewalRequested,
			&a.RenewalRequestDate, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Agreement{}, false, nil
	}
	if err != nil {
		return model.Agreement{}, false, err
	}
	return a, true, nil
}

func (s *Store) CreateAgreement(ctx context.Context, in model.InsertAgreement) (model.Agreement, error) {
	status := in.Status
	if status == "" {
		status = model.AgreementStatusActive
	}
	id := uuid.NewString()
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO agreements ("+agreementCols+") VALUES (?,?,?,?,?,?,?,?,FALSE,NULL,?,?)",
		id, in.UserID, in.DocumentID, in.Type, in.AgreementNumber,
		in.StartDate, in.EndDate, status, now, now)
	if err != nil {
		return model.Agreement{}, err
	}
	a, _, err := s.getAgreement(ctx, id)
	return a, err
}

func (s *Store) GetUserAgreements(ctx context.Context, userID string) ([]model.Agreement, error) {
	return s.queryAgreements(ctx,
		"SELECT "+agreementCols+" FROM agreements WHERE user_id = ?", userID)
}

// GetExpiringAgreements lists active agreements with an end date on or
// before now+daysAhead, past-due ones included.
func (s *Store) GetExpiringAgreements(ctx context.Context, daysAhead int) ([]model.Agreement, error) {
	if daysAhead <= 0 {
		daysAhead = store.DefaultExpiryWindowDays
	}
	cutoff := time.Now().AddDate(0, 0, daysAhead)
	return s.queryAgreements(ctx,
		"SELECT "+agreementCols+" FROM agreements WHERE status = ? AND end_date IS NOT NULL AND end_date <= ?",
		model.AgreementStatusActive, cutoff)
}

func (s *Store) queryAgreements(ctx context.Context, query string, args ...any) ([]model.Agreement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Agreement, 0)
	for rows.Next() {
		var a model.Agreement
		if err := rows.Scan(&a.ID, &a.UserID, &a.DocumentID, &a.Type, &a.AgreementNumber,
			&a.StartDate, &a.EndDate, &a.Status, &a.RenewalRequested,
			&a.RenewalRequestDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAgreement(ctx context.Context, id string, upd model.AgreementUpdate) (model.Agreement, bool, error) {
	var c setClause
	if upd.DocumentID != nil {
		c.set("document_id", *upd.DocumentID)
	}
	if upd.Type != nil {
		c.set("type", *upd.Type)
	}
	if upd.AgreementNumber != nil {
		c.set("agreement_number", *upd.AgreementNumber)
	}
	if upd.StartDate != nil {
		c.set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		c.set("end_date", *upd.EndDate)
	}
	if upd.Status != nil {
		c.set("status", *upd.Status)
	}
	c.set("updated_at", time.Now())
	args := append(c.args, id)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE agreements SET "+c.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Agreement{}, false, err
	}
	return s.getAgreement(ctx, id)
}

// RequestAgreementRenewal sets the renewal flag and timestamp only; the
// status transition is a separate UpdateAgreement.
func (s *Store) RequestAgreementRenewal(ctx context.Context, id string) (bool, error) {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		"UPDATE agreements SET renewal_requested = TRUE, renewal_request_date = ?, updated_at = ? WHERE id = ?",
		now, now, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkExpiredAgreements settles active rows whose end date passed.
func (s *Store) MarkExpiredAgreements(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE agreements SET status = ?, updated_at = ? WHERE status = ? AND end_date IS NOT NULL AND end_date < ?",
		model.AgreementStatusExpired, now, model.AgreementStatusActive, now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
