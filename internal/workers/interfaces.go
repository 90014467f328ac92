// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs, such as the orphaned
// artifact cleaner and the gRPC health prober, next to the transports.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done and
// handles its own errors, typically by logging and retrying on the next tick.
type Worker interface {
	Run(ctx context.Context)
}
