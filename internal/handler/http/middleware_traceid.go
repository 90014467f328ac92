// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength keeps client-supplied ids from bloating every log line.
	maxTraceIDLength = 128
)

// withTraceID tags the request with a trace id, taken from X-Trace-ID when
// the client sent a usable one and generated otherwise. The id is echoed in
// the response and attached to the context logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := traceIDFromHeader(r.Header.Get(traceIDHeader))
		if !ok {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func traceIDFromHeader(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxTraceIDLength {
		return "", false
	}

	for _, c := range raw {
		if c < '!' || c > '~' {
			return "", false
		}
	}
	return raw, true
}
