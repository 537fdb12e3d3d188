package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const userCols = "id, email, first_name, last_name, profile_image_url, role, is_active, quota, created_at, updated_at"

func scanUser(row *sql.Row) (model.User, bool, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.Role, &u.IsActive, &u.Quota, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return u, true, nil
}

func (s *Store) getUser(ctx context.Context, id string) (model.User, bool, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id = ? LIMIT 1", id))
}

func (s *Store) GetUser(ctx context.Context, id string) (model.User, bool, error) {
	return s.getUser(ctx, id)
}

// UpsertUser merges claims over an existing row or inserts a fresh one
// with the bootstrap defaults (role user, active, quota 100).
func (s *Store) UpsertUser(ctx context.Context, in model.UpsertUser) (model.User, error) {
	if in.ID != "" {
		if _, found, err := s.getUser(ctx, in.ID); err != nil {
			return model.User{}, err
		} else if found {
			var c setClause
			if in.Email != nil {
				c.set("email", *in.Email)
			}
			if in.FirstName != nil {
				c.set("first_name", *in.FirstName)
			}
			if in.LastName != nil {
				c.set("last_name", *in.LastName)
			}
			if in.ProfileImageURL != nil {
				c.set("profile_image_url", *in.ProfileImageURL)
			}
			if in.Role != nil {
				c.set("role", *in.Role)
			}
			if in.IsActive != nil {
				c.set("is_active", *in.IsActive)
			}
			if in.Quota != nil {
				c.set("quota", *in.Quota)
			}
			c.set("updated_at", time.Now())
			args := append(c.args, in.ID)
			if _, err := s.db.ExecContext(ctx,
				"UPDATE users SET "+c.assignments()+" WHERE id = ?", args...); err != nil {
				return model.User{}, err
			}
			u, _, err := s.getUser(ctx, in.ID)
			return u, err
		}
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	role := model.RoleUser
	if in.Role != nil {
		role = *in.Role
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	quota := 100
	if in.Quota != nil {
		quota = *in.Quota
	}
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users ("+userCols+") VALUES (?,?,?,?,?,?,?,?,?,?)",
		id, in.Email, in.FirstName, in.LastName, in.ProfileImageURL,
		role, isActive, quota, now, now)
	if err != nil {
		return model.User{}, err
	}
	u, _, err := s.getUser(ctx, id)
	return u, err
}

func (s *Store) GetAllUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userCols+" FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
			&u.Role, &u.IsActive, &u.Quota, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (model.User, bool, error) {
	var c setClause
	if upd.Email != nil {
		c.set("email", *upd.Email)
	}
	if upd.FirstName != nil {
		c.set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		c.set("last_name", *upd.LastName)
	}
	if upd.ProfileImageURL != nil {
		c.set("profile_image_url", *upd.ProfileImageURL)
	}
	if upd.Role != nil {
		c.set("role", *upd.Role)
	}
	if upd.IsActive != nil {
		c.set("is_active", *upd.IsActive)
	}
	if upd.Quota != nil {
		c.set("quota", *upd.Quota)
	}
	c.set("updated_at", time.Now())
	args := append(c.args, id)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE users SET "+c.assignments()+" WHERE id = ?", args...); err != nil {
		return model.User{}, false, err
	}
	return s.getUser(ctx, id)
}
