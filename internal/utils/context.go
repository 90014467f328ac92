// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// request-scoped user ids, JSON responses, the resty client, JWT handling
// and artifact name generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "report-keeper/" + string(c)
}

// UserIDCtxKey carries the id of the authenticated caller. It is set by the
// HTTP auth middleware and read by report handlers, which pass the id to the
// service explicitly.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the caller id stored by [WithUserID].
// ok is false when the context carries no id or a non-positive one.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
