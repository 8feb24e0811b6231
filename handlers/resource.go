// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/scylla/controllers"
	"github.com/danielhkuo/scylla/middleware"
	"github.com/danielhkuo/scylla/models"
)

type document interface {
	MissingField() string
}

// ResourceHandler serves list/get/create/update/delete for one entity.
type ResourceHandler[T document] struct {
	name   string
	ctrl   controllers.Controller[T]
	idOf   func(T) string
	expand string // query flag that expands children on GET, "" for none
}

func NewResourceHandler[T document](name string, ctrl controllers.Controller[T], idOf func(T) string, expand string) *ResourceHandler[T] {
	return &ResourceHandler[T]{name: name, ctrl: ctrl, idOf: idOf, expand: expand}
}

// List handles GET /<collection>
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.ctrl.List(r.Context())
	if err != nil {
		writeError(w, err, "list "+h.name+"s")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, docs)
}

// Get handles GET /<collection>/{id}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc, err := h.ctrl.FindByID(r.Context(), id, queryFlag(r, h.expand))
	if err != nil {
		writeError(w, err, "find "+h.name)
		return
	}
	if doc == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, h.name+" not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, doc)
}

// Create handles POST /<collection>
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var payload T
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.create(w, r, payload)
}

func (h *ResourceHandler[T]) create(w http.ResponseWriter, r *http.Request, payload T) {
	if field := payload.MissingField(); field != "" {
		writeError(w, &controllers.ValidationError{Resource: h.name, Field: field}, "validate "+h.name)
		return
	}

	created, err := h.ctrl.CreateNew(r.Context(), payload)
	if err != nil {
		writeError(w, err, "create "+h.name)
		return
	}

	slog.Info(h.name+" created", "id", h.idOf(created))
	middleware.JSONResponse(w, http.StatusOK, created)
}

// Update handles PUT /<collection>/{id}
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	var payload T
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.update(w, r, r.PathValue("id"), payload)
}

func (h *ResourceHandler[T]) update(w http.ResponseWriter, r *http.Request, id string, payload T) {
	if field := payload.MissingField(); field != "" {
		writeError(w, &controllers.ValidationError{Resource: h.name, Field: field}, "validate "+h.name)
		return
	}

	updated, err := h.ctrl.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err, "update "+h.name)
		return
	}

	slog.Info(h.name+" updated", "id", id)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /<collection>/{id}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	n, err := h.ctrl.Remove(r.Context(), id)
	writeDeleted(w, h.name, id, n, err)
}

// writeDeleted answers a delete. A delete that matched nothing is reported
// as a server error, not as 404.
func writeDeleted(w http.ResponseWriter, name, id string, affected int64, err error) {
	if err != nil {
		writeError(w, err, "delete "+name)
		return
	}
	if affected == 0 {
		slog.Error("delete matched no records", "resource", name, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete "+name)
		return
	}

	slog.Info(name+" deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{ID: id})
}

// writeError maps controller errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, controllers.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, controllers.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func queryFlag(r *http.Request, name string) bool {
	if name == "" {
		return false
	}
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
