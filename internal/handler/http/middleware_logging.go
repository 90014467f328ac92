// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		var event *zerolog.Event
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else {
			event = log.Info()
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			event = event.Str("route", rctx.RoutePattern())
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
