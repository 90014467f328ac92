// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the report server:
// HTTP request metrics labelled by chi route pattern and domain counters
// for the report lifecycle.
//
// Every Record method is safe to call on a nil *Metrics, so components
// built without metrics need no special casing.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "report_keeper"

// unmatchedRoute labels requests that did not match any route, so that
// random paths cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// Operation outcomes.
const (
	OutcomeSuccess = "success"
)

// Orphan cleanup results.
const (
	CleanupDeleted = "deleted"
	CleanupFailed  = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	reportsCreated         prometheus.Counter
	statusTransitions      *prometheus.CounterVec
	operations             *prometheus.CounterVec
	artifactDeleteFailures prometheus.Counter
	orphanCleanups         *prometheus.CounterVec
}

// New creates a registry with the Go runtime and process collectors plus
// every metric of the server.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
		},
	)
	reportsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "created_total",
			Help:      "Total reports created.",
		},
	)
	statusTransitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "status_transitions_total",
			Help:      "Total applied status transitions.",
		},
		[]string{"from", "to"},
	)
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "operations_total",
			Help:      "Total report service calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	artifactDeleteFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "artifacts",
			Name:      "delete_failures_total",
			Help:      "Total artifact deletions that failed after the report row was removed.",
		},
	)
	orphanCleanups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "artifacts",
			Name:      "orphan_cleanups_total",
			Help:      "Total orphaned artifact cleanup attempts by result.",
		},
		[]string{"result"},
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestTotal,
		requestDuration,
		requestInFlight,
		reportsCreated,
		statusTransitions,
		operations,
		artifactDeleteFailures,
		orphanCleanups,
	)

	return &Metrics{
		registry:               registry,
		requestTotal:           requestTotal,
		requestDuration:        requestDuration,
		requestInFlight:        requestInFlight,
		reportsCreated:         reportsCreated,
		statusTransitions:      statusTransitions,
		operations:             operations,
		artifactDeleteFailures: artifactDeleteFailures,
		orphanCleanups:         orphanCleanups,
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDB exports the connection pool statistics of db.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count, duration and in-flight requests. The route
// label is the chi route pattern, which is only known after routing, so it
// is read once the next handler returns.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = unmatchedRoute
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) RecordReportCreated() {
	if m == nil {
		return
	}
	m.reportsCreated.Inc()
}

func (m *Metrics) RecordStatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(from, to).Inc()
}

// RecordOperation counts one service call. outcome is OutcomeSuccess or
// the kind of the returned error.
func (m *Metrics) RecordOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordArtifactDeleteFailure() {
	if m == nil {
		return
	}
	m.artifactDeleteFailures.Inc()
}

// RecordOrphanCleanup counts one cleanup attempt; result is CleanupDeleted
// or CleanupFailed.
func (m *Metrics) RecordOrphanCleanup(result string) {
	if m == nil {
		return
	}
	m.orphanCleanups.WithLabelValues(result).Inc()
}
