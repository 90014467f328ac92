// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenType is the scheme reported to clients alongside an access token.
const TokenType = "Bearer"

// APIResponse is the envelope of every JSON response of the HTTP API.
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// AppInfo describes the running server build.
type AppInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
