// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/reports", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listReports)
		r.Get("/stats", h.reportStats)
		r.With(h.limitUploadSize).Post("/", h.createReport)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getReport)
			r.Delete("/", h.deleteReport)
			r.Get("/file", h.downloadReport)
			r.Patch("/status", h.updateReportStatus)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// limitUploadSize caps the request body at the configured upload size.
// A non-positive limit leaves the body unbounded.
func (h *Handler) limitUploadSize(next http.Handler) http.Handler {
	if h.cfg.MaxUploadSize <= 0 {
		return next
	}
	return middleware.RequestSize(h.cfg.MaxUploadSize)(next)
}
