package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const notificationCols = "id, title, message, type, target_type, target_id, sent_by, is_read, created_at"

func (s *Store) CreateNotification(ctx context.Context, in model.InsertNotification) (model.Notification, error) {
	n := model.Notification{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Message:    in.Message,
		Type:       in.Type,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		SentBy:     in.SentBy,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	if n.Type == "" {
		n.Type = model.NotificationInfo
	}
	if n.TargetType == "" {
		n.TargetType = model.TargetAll
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notifications ("+notificationCols+") VALUES (?,?,?,?,?,?,?,?,?)",
		n.ID, n.Title, n.Message, n.Type, n.TargetType, n.TargetID, n.SentBy, n.IsRead, n.CreatedAt)
	if err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

// GetUserNotifications returns broadcasts plus rows addressed to the
// user, newest first.  Role targeting deliberately falls through.
func (s *Store) GetUserNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+notificationCols+" FROM notifications WHERE target_type = ? OR (target_type = ? AND target_id = ?) ORDER BY created_at DESC, id ASC",
		model.TargetAll, model.TargetUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.TargetType,
			&n.TargetID, &n.SentBy, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = ?", id)
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
	// RowsAffected is zero both for missing rows and rows already read.
	var exists int
	err = s.db.QueryRowContext(ctx,
		"SELECT 1 FROM notifications WHERE id = ? LIMIT 1", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
