// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming report and account
// requests before they reach the service core.
//
// Only stateless rules live here (lengths, required fields, known statuses,
// paging bounds). Whether a status change is allowed depends on the stored
// report and is decided by the service.
package validators

import "context"

// Validator validates obj. When fields are given, only those rules run;
// otherwise every rule known for the type of obj is applied.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
