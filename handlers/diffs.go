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

type ResultDiffController interface {
	controllers.Controller[models.ResultDiff]
	ListByBatchResult(ctx context.Context, batchResultID string) ([]models.ResultDiff, error)
}

type ResultDiffHandler struct {
	*ResourceHandler[models.ResultDiff]
	diffs ResultDiffController
}

func NewResultDiffHandler(diffs ResultDiffController) *ResultDiffHandler {
	return &ResultDiffHandler{
		ResourceHandler: NewResourceHandler[models.ResultDiff]("result diff", diffs,
			func(d models.ResultDiff) string { return d.ID }, ""),
		diffs: diffs,
	}
}

// List handles GET /result-diffs
// ?batchResult=<id> narrows the list to one batch execution.
func (h *ResultDiffHandler) List(w http.ResponseWriter, r *http.Request) {
	batchResultID := r.URL.Query().Get("batchResult")
	if batchResultID == "" {
		h.ResourceHandler.List(w, r)
		return
	}

	diffs, err := h.diffs.ListByBatchResult(r.Context(), batchResultID)
	if err != nil {
		writeError(w, err, "list result diffs")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, diffs)
}
