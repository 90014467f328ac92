// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of an upload kept in memory; the rest is
// spooled to temporary files by net/http.
const multipartMemory = 8 << 20

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext, "list reports")
		return
	}

	filter, err := reportFilterFromQuery(r, userID)
	if err != nil {
		writeError(w, r, err, "invalid report filter")
		return
	}

	reports, err := h.services.ReportService.ListReports(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "listing reports failed")
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}

	writeResponse(w, r, http.StatusOK, "", reports)
}

func (h *Handler) reportStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext, "report stats")
		return
	}

	stats, err := h.services.ReportService.ReportStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "counting reports failed")
		return
	}

	writeResponse(w, r, http.StatusOK, "", stats)
}

// createReport accepts a multipart upload with the fields file, name, type
// and report_date.
func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserInContext, "create report")
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err), "invalid upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFile, err), "invalid upload")
		return
	}
	defer file.Close()

	req := models.CreateReportRequest{
		UserID:   userID,
		Name:     r.FormValue("name"),
		Type:     r.FormValue("type"),
		FileName: header.Filename,
		Content:  file,
	}

	// An empty date is left zero so the validator reports it as missing.
	if rawDate := r.FormValue("report_date"); rawDate != "" {
		req.ReportDate, err = models.ParseDate(rawDate)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidReportDate, err), "invalid upload")
			return
		}
	}

	report, err := h.services.ReportService.CreateReport(ctx, req)
	if err != nil {
		writeError(w, r, err, "report creation failed")
		return
	}

	logger.FromRequest(r).Info().Int64("report_id", report.ID).Int64("size", header.Size).Msg("report uploaded")

	writeResponse(w, r, http.StatusCreated, "report uploaded", report)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	reportID, userID, err := reportAndUserIDs(r)
	if err != nil {
		writeError(w, r, err, "get report")
		return
	}

	report, err := h.services.ReportService.GetReport(r.Context(), reportID, userID)
	if err != nil {
		writeError(w, r, err, "get report failed")
		return
	}

	writeResponse(w, r, http.StatusOK, "", report)
}

// downloadReport streams the artifact bytes. The file name offered to the
// client is the report name with the stored extension.
func (h *Handler) downloadReport(w http.ResponseWriter, r *http.Request) {
	reportID, userID, err := reportAndUserIDs(r)
	if err != nil {
		writeError(w, r, err, "download report")
		return
	}

	artifact, err := h.services.ReportService.OpenReportArtifact(r.Context(), reportID, userID)
	if err != nil {
		writeError(w, r, err, "opening report artifact failed")
		return
	}
	defer artifact.Content.Close()

	ext := path.Ext(artifact.Report.ArtifactLocation)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": artifact.Report.Name + ext,
	}))
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, artifact.Content); err != nil {
		logger.FromRequest(r).Err(err).Int64("report_id", reportID).Msg("streaming report artifact interrupted")
	}
}

func (h *Handler) updateReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID, userID, err := reportAndUserIDs(r)
	if err != nil {
		writeError(w, r, err, "update report status")
		return
	}

	var req models.UpdateStatusRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "Invalid JSON was passed")
		return
	}
	req.ReportID = reportID
	req.UserID = userID

	report, err := h.services.ReportService.UpdateReportStatus(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "status update failed")
		return
	}

	writeResponse(w, r, http.StatusOK, "report status updated", report)
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	reportID, userID, err := reportAndUserIDs(r)
	if err != nil {
		writeError(w, r, err, "delete report")
		return
	}

	if err = h.services.ReportService.DeleteReport(r.Context(), reportID, userID); err != nil {
		writeError(w, r, err, "report deletion failed")
		return
	}

	writeResponse(w, r, http.StatusOK, "report deleted", nil)
}

func reportAndUserIDs(r *http.Request) (int64, int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, errNoUserInContext
	}

	reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || reportID <= 0 {
		return 0, 0, ErrInvalidReportID
	}

	return reportID, userID, nil
}

func reportFilterFromQuery(r *http.Request, userID int64) (models.ReportFilter, error) {
	query := r.URL.Query()
	filter := models.ReportFilter{UserID: userID}

	if raw := query.Get("status"); raw != "" {
		status, err := models.ParseReportStatus(raw)
		if err != nil {
			return models.ReportFilter{}, err
		}
		filter.Status = &status
	}

	var err error
	if filter.Limit, err = parseUintParam(query.Get("limit")); err != nil {
		return models.ReportFilter{}, fmt.Errorf("%w: limit: %w", ErrInvalidQueryParam, err)
	}
	if filter.Offset, err = parseUintParam(query.Get("offset")); err != nil {
		return models.ReportFilter{}, fmt.Errorf("%w: offset: %w", ErrInvalidQueryParam, err)
	}

	return filter, nil
}

func parseUintParam(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
