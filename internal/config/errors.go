// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Returned by validation, wrapped with the name of the offending setting.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs also covers the case where no listener is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
