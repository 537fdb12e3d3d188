package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// CreateActivity appends an audit record.  Records are immutable and
// never deleted.
func (s *Store) CreateActivity(_ context.Context, in model.InsertActivity) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := model.Activity{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Type:        in.Type,
		Description: in.Description,
		Metadata:    in.Metadata,
		CreatedAt:   time.Now(),
	}
	s.activities[a.ID] = a
	return a, nil
}

// GetActivities returns the newest records first, truncated to limit
// (DefaultActivityLimit when limit <= 0).
func (s *Store) GetActivities(_ context.Context, limit int) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	return truncateSorted(out, limit), nil
}

// GetUserActivities is GetActivities filtered to one user.
func (s *Store) GetUserActivities(_ context.Context, userID string, limit int) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Activity, 0)
	for _, a := range s.activities {
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
		}
	}
	return truncateSorted(out, limit), nil
}

// truncateSorted orders activities newest first and cuts the slice to
// limit.  Ties on the timestamp fall back to the id so a given snapshot
// always sorts the same way.
func truncateSorted(list []model.Activity, limit int) []model.Activity {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	if limit <= 0 {
		limit = store.DefaultActivityLimit
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}
