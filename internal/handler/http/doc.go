// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the report keeper.
//
// It exposes route wiring, request handlers, and middleware. Tracing,
// access logging, metrics, compression and authentication run here before a
// request reaches the service layer. Every JSON answer uses the
// models.APIResponse envelope and errors are mapped to status codes by an
// ordered table.
package http
