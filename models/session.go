// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session maps an opaque token held by the client to a user.
//
// Token is only known right after creation; the store keeps a digest of it,
// so sessions loaded back from storage carry an empty Token.
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at the given moment.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
