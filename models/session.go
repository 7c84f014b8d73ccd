// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session identifies the logged-in user of a request. It travels to the
// client as a signed token and is never stored server-side.
type Session struct {
	UserID   int64  `json:"-"`
	Username string `json:"-"`

	// Token is the compact signed form of the session.
	Token string `json:"-"`

	ExpiresAt time.Time `json:"-"`
}

// String returns the signed token.
// It implements the [fmt.Stringer] interface.
func (s Session) String() string {
	return s.Token
}
