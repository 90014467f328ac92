// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserRole is the authorization role of an account.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is the plain-text credential as received from the client.
	// It is cleared as soon as it has been hashed or verified.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	Role UserRole `json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
