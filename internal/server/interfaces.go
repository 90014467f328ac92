// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is done and then shuts down
	// gracefully. It returns the first error that stopped a transport.
	RunServer(ctx context.Context) error
}
