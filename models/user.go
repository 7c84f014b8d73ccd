// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a catalog account. Credential fields never leave the
// server: they are excluded from JSON.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Username is globally unique and immutable after registration.
	Username string `json:"username"`

	// Email is globally unique.
	Email string `json:"email"`

	// PasswordHash is the hex-encoded argon2id digest of the password.
	PasswordHash string `json:"-"`

	// PasswordSalt is the hex-encoded per-user salt used for PasswordHash.
	PasswordSalt string `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public part of the user returned after login.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserSummary is the user representation exposed to clients.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
