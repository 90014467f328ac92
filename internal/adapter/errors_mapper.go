// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	return mapStatusError(resp.StatusCode(), resp.Body())
}

// mapStatusError turns a non-2xx answer into an error. The envelope message
// is preferred over the raw body.
func mapStatusError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(body)
	if message == "" {
		message = http.StatusText(status)
	}

	if target, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, message)
}

func errorMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}
