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

type BatchController interface {
	controllers.Controller[models.Batch]
	RemoveCascade(ctx context.Context, id string) (int64, error)
}

type BatchResultController interface {
	controllers.Controller[models.BatchResult]
	ListByBatch(ctx context.Context, batchID string) ([]models.BatchResult, error)
}

type BatchHandler struct {
	*ResourceHandler[models.Batch]
	batches BatchController
	results BatchResultController

	resultHandler *ResourceHandler[models.BatchResult]
}

func NewBatchHandler(batches BatchController, results BatchResultController) *BatchHandler {
	return &BatchHandler{
		ResourceHandler: NewResourceHandler[models.Batch]("batch", batches,
			func(b models.Batch) string { return b.ID }, "includeResults"),
		batches: batches,
		results: results,
		resultHandler: NewResourceHandler[models.BatchResult]("batch result", results,
			func(b models.BatchResult) string { return b.ID }, "includeDiffs"),
	}
}

// Delete handles DELETE /batches/{id}
// With ?cascade=true the batch, its results and their diffs are removed in
// one transaction.
func (h *BatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !queryFlag(r, "cascade") {
		n, err := h.batches.Remove(r.Context(), id)
		writeDeleted(w, "batch", id, n, err)
		return
	}

	n, err := h.batches.RemoveCascade(r.Context(), id)
	writeDeleted(w, "batch", id, n, err)
}

// ListResults handles GET /batches/{batchId}/results
func (h *BatchHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batchId")
	if !h.batchExists(w, r, batchID) {
		return
	}

	results, err := h.results.ListByBatch(r.Context(), batchID)
	if err != nil {
		writeError(w, err, "list batch results")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// CreateResult handles POST /batches/{batchId}/results
func (h *BatchHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batchId")

	var payload models.BatchResult
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	payload.BatchID = batchID

	if !h.batchExists(w, r, batchID) {
		return
	}
	h.resultHandler.create(w, r, payload)
}

// GetResult handles GET /batches/{batchId}/results/{resultId}
// Supports ?includeDiffs=true.
func (h *BatchHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, ok := h.findResult(w, r, queryFlag(r, "includeDiffs"))
	if !ok {
		return
	}
	if result == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "batch result not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// UpdateResult handles PUT /batches/{batchId}/results/{resultId}
func (h *BatchHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	var payload models.BatchResult
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if _, ok := h.findResult(w, r, false); !ok {
		return
	}
	payload.BatchID = r.PathValue("batchId")

	h.resultHandler.update(w, r, r.PathValue("resultId"), payload)
}

// DeleteResult handles DELETE /batches/{batchId}/results/{resultId}
func (h *BatchHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.findResult(w, r, false); !ok {
		return
	}

	resultID := r.PathValue("resultId")
	n, err := h.results.Remove(r.Context(), resultID)
	writeDeleted(w, "batch result", resultID, n, err)
}

// findResult looks up the nested result. A result that exists but belongs to
// another batch is answered with 404 here and ok=false. An unknown result is
// returned as nil with ok=true so callers can apply their own policy.
func (h *BatchHandler) findResult(w http.ResponseWriter, r *http.Request, expand bool) (*models.BatchResult, bool) {
	result, err := h.results.FindByID(r.Context(), r.PathValue("resultId"), expand)
	if err != nil {
		writeError(w, err, "find batch result")
		return nil, false
	}
	if result != nil && result.BatchID != r.PathValue("batchId") {
		middleware.ErrorResponse(w, http.StatusNotFound, "batch result not found")
		return nil, false
	}
	return result, true
}

func (h *BatchHandler) batchExists(w http.ResponseWriter, r *http.Request, id string) bool {
	batch, err := h.batches.FindByID(r.Context(), id, false)
	if err != nil {
		writeError(w, err, "find batch")
		return false
	}
	if batch == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "batch not found")
		return false
	}
	return true
}
