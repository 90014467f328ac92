// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header errors. The auth middleware answers all of them with
// 401 Unauthorized.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

// Request decoding errors. They all end up as 400 Bad Request.
var (
	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrInvalidReportID      = errors.New("report id must be a positive integer")
	ErrInvalidQueryParam    = errors.New("invalid query parameter")
	ErrInvalidMultipartForm = errors.New("invalid multipart form")
	ErrMissingFile          = errors.New("multipart field `file` is required")
	ErrInvalidReportDate    = errors.New("report_date must be in yyyy-mm-dd form")

	// errNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	errNoUserInContext = errors.New("no authenticated user in request context")
)
