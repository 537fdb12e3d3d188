package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// GetUser returns the user and whether it exists.
func (s *Store) GetUser(_ context.Context, id string) (model.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok, nil
}

// UpsertUser merges the provided claims over an existing record or
// creates a new one with the bootstrap defaults.  Called on every
// successful authentication, so it must be idempotent for identical
// claims apart from the UpdatedAt stamp.
func (s *Store) UpsertUser(_ context.Context, in model.UpsertUser) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.users[in.ID]; ok {
		if in.Email != nil {
			existing.Email = in.Email
		}
		if in.FirstName != nil {
			existing.FirstName = in.FirstName
		}
		if in.LastName != nil {
			existing.LastName = in.LastName
		}
		if in.ProfileImageURL != nil {
			existing.ProfileImageURL = in.ProfileImageURL
		}
		if in.Role != nil {
			existing.Role = *in.Role
		}
		if in.IsActive != nil {
			existing.IsActive = *in.IsActive
		}
		if in.Quota != nil {
			existing.Quota = *in.Quota
		}
		existing.UpdatedAt = now
		s.users[existing.ID] = existing
		return existing, nil
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	u := model.User{
		ID:              id,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
		Role:            model.RoleUser,
		IsActive:        true,
		Quota:           100,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.Quota != nil {
		u.Quota = *in.Quota
	}
	s.users[id] = u
	return u, nil
}

// GetAllUsers returns every user in unspecified order.
func (s *Store) GetAllUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

// UpdateUser applies the non-nil fields and stamps UpdatedAt.  Returns
// found=false when the id is unknown.
func (s *Store) UpdateUser(_ context.Context, id string, upd model.UserUpdate) (model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, false, nil
	}
	if upd.Email != nil {
		u.Email = upd.Email
	}
	if upd.FirstName != nil {
		u.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = upd.LastName
	}
	if upd.ProfileImageURL != nil {
		u.ProfileImageURL = upd.ProfileImageURL
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.Quota != nil {
		u.Quota = *upd.Quota
	}
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return u, true, nil
}
