// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	appInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	writeResponse(w, r, http.StatusOK, "", appInfo)
}
