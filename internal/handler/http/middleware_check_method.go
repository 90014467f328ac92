// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method gets the same 404
// envelope as an unknown path, so callers cannot tell which report routes
// exist. chi propagates the handler to every mounted subrouter.
//
// chi only calls it after routing has failed for the method, so it answers
// directly and never hands the request back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
}
