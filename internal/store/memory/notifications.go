package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateNotification stores a new notification, unread.  Type defaults
// to info and TargetType to all when the payload leaves them empty.
func (s *Store) CreateNotification(_ context.Context, in model.InsertNotification) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.notifications[n.ID] = n
	return n, nil
}

// GetUserNotifications returns broadcasts plus notifications addressed
// to this user, newest first.  Role-targeted notifications never match
// here; the caller resolves role membership itself.
func (s *Store) GetUserNotifications(_ context.Context, userID string) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notification, 0)
	for _, n := range s.notifications {
		if n.TargetType == model.TargetAll {
			out = append(out, n)
			continue
		}
		if n.TargetType == model.TargetUser && n.TargetID != nil && *n.TargetID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// MarkNotificationRead flips the shared read flag.  For an "all"
// notification this marks it read for every viewer.
func (s *Store) MarkNotificationRead(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return false, nil
	}
	n.IsRead = true
	s.notifications[id] = n
	return true, nil
}
