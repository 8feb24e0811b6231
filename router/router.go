// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/scylla/controllers"
	"github.com/danielhkuo/scylla/handlers"
	"github.com/danielhkuo/scylla/middleware"
	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/store"
)

func NewRouter(s *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(controllers.NewReports(s), controllers.NewReportResults(s))
	resultHandler := handlers.NewResourceHandler[models.ReportResult]("report result", controllers.NewReportResults(s),
		func(rr models.ReportResult) string { return rr.ID }, "")
	compareHandler := handlers.NewResourceHandler[models.AbCompare]("compare", controllers.NewAbCompares(s),
		func(c models.AbCompare) string { return c.ID }, "")
	batchHandler := handlers.NewBatchHandler(controllers.NewBatches(s), controllers.NewBatchResults(s))
	diffHandler := handlers.NewResultDiffHandler(controllers.NewResultDiffs(s))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// A/B compares
	collection(mux, "GET /abcompares", compareHandler.List)
	collection(mux, "POST /abcompares", compareHandler.Create)
	mux.HandleFunc("GET /abcompares/{id}", middleware.WithLogging(compareHandler.Get))
	mux.HandleFunc("PUT /abcompares/{id}", middleware.WithLogging(compareHandler.Update))
	mux.HandleFunc("DELETE /abcompares/{id}", middleware.WithLogging(compareHandler.Delete))

	// Reports and their results
	collection(mux, "GET /reports", reportHandler.List)
	collection(mux, "POST /reports", reportHandler.Create)
	mux.HandleFunc("GET /reports/{id}", middleware.WithLogging(reportHandler.Get))
	mux.HandleFunc("PUT /reports/{id}", middleware.WithLogging(reportHandler.Update))
	mux.HandleFunc("DELETE /reports/{id}", middleware.WithLogging(reportHandler.Delete))
	mux.HandleFunc("GET /reports/{id}/results", middleware.WithLogging(reportHandler.ListResults))
	mux.HandleFunc("POST /reports/{id}/results", middleware.WithLogging(reportHandler.CreateResult))

	mux.HandleFunc("GET /report-results/{id}", middleware.WithLogging(resultHandler.Get))
	mux.HandleFunc("PUT /report-results/{id}", middleware.WithLogging(resultHandler.Update))
	mux.HandleFunc("DELETE /report-results/{id}", middleware.WithLogging(resultHandler.Delete))

	// Batches and their executions
	collection(mux, "GET /batches", batchHandler.List)
	collection(mux, "POST /batches", batchHandler.Create)
	mux.HandleFunc("GET /batches/{id}", middleware.WithLogging(batchHandler.Get))
	mux.HandleFunc("PUT /batches/{id}", middleware.WithLogging(batchHandler.Update))
	mux.HandleFunc("DELETE /batches/{id}", middleware.WithLogging(batchHandler.Delete))
	mux.HandleFunc("GET /batches/{batchId}/results", middleware.WithLogging(batchHandler.ListResults))
	mux.HandleFunc("POST /batches/{batchId}/results", middleware.WithLogging(batchHandler.CreateResult))
	mux.HandleFunc("GET /batches/{batchId}/results/{resultId}", middleware.WithLogging(batchHandler.GetResult))
	mux.HandleFunc("PUT /batches/{batchId}/results/{resultId}", middleware.WithLogging(batchHandler.UpdateResult))
	mux.HandleFunc("DELETE /batches/{batchId}/results/{resultId}", middleware.WithLogging(batchHandler.DeleteResult))

	// Result diffs
	collection(mux, "GET /result-diffs", diffHandler.List)
	collection(mux, "POST /result-diffs", diffHandler.Create)
	mux.HandleFunc("GET /result-diffs/{id}", middleware.WithLogging(diffHandler.Get))
	mux.HandleFunc("PUT /result-diffs/{id}", middleware.WithLogging(diffHandler.Update))
	mux.HandleFunc("DELETE /result-diffs/{id}", middleware.WithLogging(diffHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("scylla API v1"))
	})

	return mux
}

// collection registers a collection route with and without the trailing slash
func collection(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	logged := middleware.WithLogging(h)
	mux.HandleFunc(pattern, logged)
	mux.HandleFunc(pattern+"/{$}", logged)
}
