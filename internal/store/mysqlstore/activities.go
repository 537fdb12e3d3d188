package mysqlstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

const activityCols = "id, user_id, type, description, metadata, created_at"

// CreateActivity appends an audit row.  Metadata travels as a JSON
// column; nil stays NULL.
func (s *Store) CreateActivity(ctx context.Context, in model.InsertActivity) (model.Activity, error) {
	var meta []byte
	if in.Metadata != nil {
		b, err := json.Marshal(in.Metadata)
		if err != nil {
			return model.Activity{}, err
		}
		meta = b
	}
	a := model.Activity{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Type:        in.Type,
		Description: in.Description,
		Metadata:    in.Metadata,
		CreatedAt:   time.Now(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO activities ("+activityCols+") VALUES (?,?,?,?,?,?)",
		a.ID, a.UserID, a.Type, a.Description, meta, a.CreatedAt)
	if err != nil {
		return model.Activity{}, err
	}
	return a, nil
}

func (s *Store) GetActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = store.DefaultActivityLimit
	}
	return s.queryActivities(ctx,
		"SELECT "+activityCols+" FROM activities ORDER BY created_at DESC, id ASC LIMIT ?", limit)
}

func (s *Store) GetUserActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = store.DefaultActivityLimit
	}
	return s.queryActivities(ctx,
		"SELECT "+activityCols+" FROM activities WHERE user_id = ? ORDER BY created_at DESC, id ASC LIMIT ?",
		userID, limit)
}

func (s *Store) queryActivities(ctx context.Context, query string, args ...any) ([]model.Activity, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Activity, 0)
	for rows.Next() {
		var a model.Activity
		var meta []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &meta, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &a.Metadata); err != nil {
				return nil, err
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
