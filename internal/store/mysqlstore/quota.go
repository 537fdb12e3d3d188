package mysqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const quotaCols = "id, user_id, quota_type, used_amount, total_quota, period, reset_date, created_at, updated_at"

func (s *Store) CreateQuotaUsage(ctx context.Context, in model.InsertQuotaUsage) (model.QuotaUsage, error) {
	q := model.QuotaUsage{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		QuotaType:  in.QuotaType,
		UsedAmount: in.UsedAmount,
		TotalQuota: in.TotalQuota,
		Period:     in.Period,
		ResetDate:  in.ResetDate,
	}
	if q.Period == "" {
		q.Period = "monthly"
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO quota_usage ("+quotaCols+") VALUES (?,?,?,?,?,?,?,?,?)",
		q.ID, q.UserID, q.QuotaType, q.UsedAmount, q.TotalQuota, q.Period,
		q.ResetDate, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return model.QuotaUsage{}, err
	}
	return q, nil
}

func (s *Store) GetUserQuotaUsage(ctx context.Context, userID string) ([]model.QuotaUsage, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+quotaCols+" FROM quota_usage WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.QuotaUsage, 0)
	for rows.Next() {
		var q model.QuotaUsage
		if err := rows.Scan(&q.ID, &q.UserID, &q.QuotaType, &q.UsedAmount, &q.TotalQuota,
			&q.Period, &q.ResetDate, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// UpdateQuotaUsage applies a relative increment in one statement, so
// concurrent increments both land.  Counters are never auto-created.
func (s *Store) UpdateQuotaUsage(ctx context.Context, userID, quotaType string, amount int) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE quota_usage SET used_amount = used_amount + ?, updated_at = ? WHERE user_id = ? AND quota_type = ?",
		amount, time.Now(), userID, quotaType)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) ResetUserQuota(ctx context.Context, userID, quotaType string) (bool, error) {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		"UPDATE quota_usage SET used_amount = 0, reset_date = ?, updated_at = ? WHERE user_id = ? AND quota_type = ?",
		now.AddDate(0, 1, 0), now, userID, quotaType)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
