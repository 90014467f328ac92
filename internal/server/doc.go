// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the report keeper.
//
// The HTTP API and the optional gRPC health endpoint run side by side; when
// the context is cancelled or one of them fails, both are shut down
// gracefully.
package server
