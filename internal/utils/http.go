// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data and writes it with statusCode. The body is fully
// encoded before any header is sent, so an encoding failure still produces a
// clean 500 instead of a truncated document.
//
// HTML characters are not escaped: report names and summaries are shown to
// API clients verbatim.
//
// Example usage:
//
//	utils.WriteJSON(w, models.APIResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
