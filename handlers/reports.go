// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/scylla/controllers"
	"github.com/danielhkuo/scylla/middleware"
	"github.com/danielhkuo/scylla/models"
)

type ReportController interface {
	controllers.Controller[models.Report]
	RemoveCascade(ctx context.Context, id string) (int64, error)
}

type ReportResultController interface {
	controllers.Controller[models.ReportResult]
	ListByReport(ctx context.Context, reportID string) ([]models.ReportResult, error)
}

type ReportHandler struct {
	*ResourceHandler[models.Report]
	reports ReportController
	results ReportResultController

	resultHandler *ResourceHandler[models.ReportResult]
}

func NewReportHandler(reports ReportController, results ReportResultController) *ReportHandler {
	return &ReportHandler{
		ResourceHandler: NewResourceHandler[models.Report]("report", reports,
			func(r models.Report) string { return r.ID }, "includeResults"),
		reports: reports,
		results: results,
		resultHandler: NewResourceHandler[models.ReportResult]("report result", results,
			func(rr models.ReportResult) string { return rr.ID }, ""),
	}
}

// Delete handles DELETE /reports/{id}
// With ?cascade=true the report and its results are removed in one transaction.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !queryFlag(r, "cascade") {
		n, err := h.reports.Remove(r.Context(), id)
		writeDeleted(w, "report", id, n, err)
		return
	}

	n, err := h.reports.RemoveCascade(r.Context(), id)
	writeDeleted(w, "report", id, n, err)
}

// ListResults handles GET /reports/{id}/results
func (h *ReportHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("id")
	if !h.reportExists(w, r, reportID) {
		return
	}

	results, err := h.results.ListByReport(r.Context(), reportID)
	if err != nil {
		writeError(w, err, "list report results")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// CreateResult handles POST /reports/{id}/results
func (h *ReportHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("id")

	var payload models.ReportResult
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	payload.ReportID = reportID

	if !h.reportExists(w, r, reportID) {
		return
	}

	h.resultHandler.create(w, r, payload)
}

func (h *ReportHandler) reportExists(w http.ResponseWriter, r *http.Request, id string) bool {
	report, err := h.reports.FindByID(r.Context(), id, false)
	if err != nil {
		writeError(w, err, "find report")
		return false
	}
	if report == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "report not found")
		return false
	}
	return true
}
