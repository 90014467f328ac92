// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrReportNotFound                        = errors.New("report not found")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")
	ErrInvalidStatusTransition               = errors.New("invalid status transition")
	ErrArtifactStorageFailure                = errors.New("artifact storage failure")
)
