package model

import "time"

// Role values stored in users.role.  The identity provider decides the
// role on first login; admins can change it afterwards.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account in the `users` table.  Accounts are created
// or refreshed by the upsert that runs on every successful authentication,
// so every field the identity provider may omit is a pointer.  Users are
// never hard-deleted; deactivation flips IsActive instead.
//
// Fields:
//  ID              – primary key (UUID string).
//  Email           – unique email address (nullable).
//  FirstName       – given name (nullable).
//  LastName        – family name (nullable).
//  ProfileImageURL – avatar reference supplied by the provider (nullable).
//  Role            – "admin" or "user".
//  IsActive        – whether the account may authenticate.
//  Quota           – legacy integer ceiling kept for older clients.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – timestamp of last update.
type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"isActive"`
	Quota           int       `json:"quota"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertUser carries the identity claims merged into a user record on
// login.  Nil fields are left untouched on an existing record; on a new
// record Role defaults to "user", IsActive to true and Quota to 100.
type UpsertUser struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"isActive"`
	Quota           *int    `json:"quota"`
}

// UserUpdate is the partial update applied by admin actions such as
// activation toggling and quota edits.  Nil fields are not modified.
type UserUpdate struct {
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"isActive"`
	Quota           *int    `json:"quota"`
}
