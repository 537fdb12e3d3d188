package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateRequest stores a new request.  The status from the payload is
// discarded; every request enters the workflow as pending.
func (s *Store) CreateRequest(_ context.Context, in model.InsertRequest) (model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := model.Request{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Status:      model.RequestStatusPending,
		Priority:    in.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if r.Priority == "" {
		r.Priority = model.PriorityNormal
	}
	s.requests[r.ID] = r
	return r, nil
}

// GetAllRequests returns every request in unspecified order.
func (s *Store) GetAllRequests(_ context.Context) ([]model.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Request, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, r)
	}
	return out, nil
}

// GetPendingRequests returns the requests still awaiting review.
func (s *Store) GetPendingRequests(_ context.Context) ([]model.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Request, 0)
	for _, r := range s.requests {
		if r.Status == model.RequestStatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

// UpdateRequest applies the non-nil fields and stamps UpdatedAt.  The
// review route supplies Status, ReviewedBy and ReviewedAt together.
func (s *Store) UpdateRequest(_ context.Context, id string, upd model.RequestUpdate) (model.Request, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return model.Request{}, false, nil
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.Priority != nil {
		r.Priority = *upd.Priority
	}
	if upd.ReviewedBy != nil {
		r.ReviewedBy = upd.ReviewedBy
	}
	if upd.ReviewedAt != nil {
		r.ReviewedAt = upd.ReviewedAt
	}
	r.UpdatedAt = time.Now()
	s.requests[id] = r
	return r, true, nil
}
