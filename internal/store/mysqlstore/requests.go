package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const requestCols = "id, user_id, type, title, description, status, priority, reviewed_by, reviewed_at, created_at, updated_at"

func (s *Store) getRequest(ctx context.Context, id string) (model.Request, bool, error) {
	var r model.Request
	err := s.db.QueryRowContext(ctx,
		"SELECT "+requestCols+" FROM requests WHERE id = ? LIMIT 1", id).
		Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Description, &r.Status,
			&r.Priority, &r.ReviewedBy, &r.ReviewedAt, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Request{}, false, nil
	}
	if err != nil {
		return model.Request{}, false, err
	}
	return r, true, nil
}

// CreateRequest inserts the row with status pending regardless of the
// payload.
func (s *Store) CreateRequest(ctx context.Context, in model.InsertRequest) (model.Request, error) {
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	id := uuid.NewString()
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO requests ("+requestCols+") VALUES (?,?,?,?,?,?,?,NULL,NULL,?,?)",
		id, in.UserID, in.Type, in.Title, in.Description,
		model.RequestStatusPending, priority, now, now)
	if err != nil {
		return model.Request{}, err
	}
	r, _, err := s.getRequest(ctx, id)
	return r, err
}

func (s *Store) GetAllRequests(ctx context.Context) ([]model.Request, error) {
	return s.queryRequests(ctx, "SELECT "+requestCols+" FROM requests")
}

func (s *Store) GetPendingRequests(ctx context.Context) ([]model.Request, error) {
	return s.queryRequests(ctx,
		"SELECT "+requestCols+" FROM requests WHERE status = ?", model.RequestStatusPending)
}

func (s *Store) queryRequests(ctx context.Context, query string, args ...any) ([]model.Request, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Request, 0)
	for rows.Next() {
		var r model.Request
		if err := rows.Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Description, &r.Status,
			&r.Priority, &r.ReviewedBy, &r.ReviewedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateRequest(ctx context.Context, id string, upd model.RequestUpdate) (model.Request, bool, error) {
	var c setClause
	if upd.Status != nil {
		c.set("status", *upd.Status)
	}
	if upd.Priority != nil {
		c.set("priority", *upd.Priority)
	}
	if upd.ReviewedBy != nil {
		c.set("reviewed_by", *upd.ReviewedBy)
	}
	if upd.ReviewedAt != nil {
		c.set("reviewed_at", *upd.ReviewedAt)
	}
	c.set("updated_at", time.Now())
	args := append(c.args, id)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE requests SET "+c.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Request{}, false, err
	}
	return s.getRequest(ctx, id)
}
