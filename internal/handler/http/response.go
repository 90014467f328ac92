// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
	"github.com/MKhiriev/go-report-keeper/models"
)

// writeResponse wraps data into the [models.APIResponse] envelope.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	response := models.APIResponse{
		Success:   status < http.StatusBadRequest,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.writeResponse").Msg("failed to write response")
	}
}

// writeError logs err and answers with the status from the error table.
// Server-side failures never expose their cause: the message is only the
// status text. Client errors carry the text of the matched sentinel, which
// never contains stored data.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, target := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	message := http.StatusText(status)
	if target != nil && status < http.StatusInternalServerError {
		message = target.Error()
	}

	writeResponse(w, r, status, message, nil)
}
