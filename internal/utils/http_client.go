// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL. Every request
// expects a JSON answer and is bounded by timeout; a zero timeout means no
// limit.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}

// SetToken makes every following request carry "Authorization: Bearer <token>".
func (c *HTTPClient) SetToken(token string) {
	c.SetAuthScheme("Bearer")
	c.SetAuthToken(token)
}
