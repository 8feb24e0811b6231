// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/models"
)

// BatchListView backs /batches.
type BatchListView struct {
	api    *client.Client
	notify Notifier

	Batches       []models.Batch
	BatchToDelete *models.Batch

	Loaded          bool
	ShowNewBatch    bool
	ShowDeleteBatch bool
	CreateFailed    bool
}

func NewBatchListView(deps Deps) *BatchListView {
	return &BatchListView{api: deps.API, notify: deps.Notify}
}

func (v *BatchListView) Activate(ctx context.Context) error {
	return v.refresh(ctx)
}

func (v *BatchListView) refresh(ctx context.Context) error {
	batches, err := v.api.ListBatches(ctx)
	if err != nil {
		slog.Error("failed to load batches", "error", err)
		v.notify.Error("Failed to load batches: " + err.Error())
		return err
	}
	v.Batches = batches
	v.Loaded = true
	return nil
}

func (v *BatchListView) NewBatch() {
	v.ShowNewBatch = true
	v.CreateFailed = false
}

func (v *BatchListView) AddBatch(ctx context.Context, name string, reportIDs ...string) error {
	batch, err := v.api.CreateBatch(ctx, models.Batch{Name: name, Reports: reportIDs})
	if err != nil {
		slog.Error("failed to save batch", "name", name, "error", err)
		v.CreateFailed = true
		v.notify.Error("Failed to save batch: " + err.Error())
		return err
	}

	v.ShowNewBatch = false
	v.CreateFailed = false
	v.notify.Success("New Batch Created: " + batch.Name)
	return v.refresh(ctx)
}

func (v *BatchListView) DeleteBatch(batch models.Batch) {
	v.ShowDeleteBatch = true
	v.BatchToDelete = &batch
}

func (v *BatchListView) CancelDelete() {
	v.ShowDeleteBatch = false
	v.BatchToDelete = nil
}

// ConfirmDeleteBatch deletes the diffs and executions of the staged batch one
// at a time, then the batch. Child failures are logged and skipped.
func (v *BatchListView) ConfirmDeleteBatch(ctx context.Context) error {
	if v.BatchToDelete == nil {
		return ErrNothingStaged
	}

	batch, err := v.api.GetBatch(ctx, v.BatchToDelete.ID, true)
	if err != nil {
		slog.Error("failed to load batch for delete", "batch_id", v.BatchToDelete.ID, "error", err)
		v.notify.Error("Failed to delete batch: " + err.Error())
		return err
	}

	for _, result := range batch.Results {
		diffs, err := v.api.ListDiffs(ctx, result.ID)
		if err != nil {
			slog.Error("failed to list diffs", "batch_result_id", result.ID, "error", err)
		}
		for _, diff := range diffs {
			if _, err := v.api.DeleteDiff(ctx, diff.ID); err != nil {
				slog.Error("failed to delete diff", "diff_id", diff.ID, "error", err)
			}
		}
		if _, err := v.api.DeleteBatchResult(ctx, batch.ID, result.ID); err != nil {
			slog.Error("failed to delete batch result", "batch_result_id", result.ID, "error", err)
		}
	}

	if _, err := v.api.DeleteBatch(ctx, batch.ID, false); err != nil {
		slog.Error("failed to delete batch", "batch_id", batch.ID, "error", err)
		v.notify.Error("Failed to delete batch: " + err.Error())
		return err
	}

	v.ShowDeleteBatch = false
	v.BatchToDelete = nil
	return v.refresh(ctx)
}

// BatchDetailView backs /batches/:id. Reports holds every known report so
// the user can pick what to add.
type BatchDetailView struct {
	api    *client.Client
	notify Notifier

	ID      string
	Batch   models.Batch
	Reports []models.Report
	Loaded  bool
}

func NewBatchDetailView(deps Deps, id string) *BatchDetailView {
	return &BatchDetailView{api: deps.API, notify: deps.Notify, ID: id}
}

func (v *BatchDetailView) Activate(ctx context.Context) error {
	var (
		batch   models.Batch
		reports []models.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batch, err = v.api.GetBatch(gctx, v.ID, true)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = v.api.ListReports(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to load batch", "batch_id", v.ID, "error", err)
		v.notify.Error("Failed to load batch: " + err.Error())
		return err
	}

	v.Batch = batch
	v.Reports = reports
	v.Loaded = true
	return nil
}

// ReportName resolves a report id to its name, falling back to the id.
func (v *BatchDetailView) ReportName(id string) string {
	for _, r := range v.Reports {
		if r.ID == id {
			return r.Name
		}
	}
	return id
}

// AddReport includes a report in the batch. Adding a report twice is a no-op.
func (v *BatchDetailView) AddReport(ctx context.Context, reportID string) error {
	if slices.Contains(v.Batch.Reports, reportID) {
		return nil
	}

	batch := v.Batch
	batch.Reports = append(slices.Clone(batch.Reports), reportID)
	if err := v.save(ctx, batch); err != nil {
		return err
	}

	v.notify.Success("Report Added: " + v.ReportName(reportID))
	return v.Activate(ctx)
}

func (v *BatchDetailView) RemoveReport(ctx context.Context, reportID string) error {
	if !slices.Contains(v.Batch.Reports, reportID) {
		return nil
	}

	batch := v.Batch
	batch.Reports = slices.DeleteFunc(slices.Clone(batch.Reports), func(id string) bool { return id == reportID })
	if err := v.save(ctx, batch); err != nil {
		return err
	}

	v.notify.Success("Report Removed: " + v.ReportName(reportID))
	return v.Activate(ctx)
}

func (v *BatchDetailView) save(ctx context.Context, batch models.Batch) error {
	batch.ID = v.ID
	batch.Results = nil
	if _, err := v.api.UpdateBatch(ctx, batch); err != nil {
		slog.Error("failed to update batch", "batch_id", v.ID, "error", err)
		v.notify.Error("Failed to update batch: " + err.Error())
		return err
	}
	return nil
}

// BatchResultView backs /batches/:batchId/results/:resultId.
type BatchResultView struct {
	api    *client.Client
	notify Notifier

	BatchID  string
	ResultID string
	Batch    models.Batch
	Result   models.BatchResult
	Loaded   bool
}

func NewBatchResultView(deps Deps, batchID, resultID string) *BatchResultView {
	return &BatchResultView{api: deps.API, notify: deps.Notify, BatchID: batchID, ResultID: resultID}
}

func (v *BatchResultView) Activate(ctx context.Context) error {
	var (
		batch  models.Batch
		result models.BatchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batch, err = v.api.GetBatch(gctx, v.BatchID, false)
		return err
	})
	g.Go(func() error {
		var err error
		result, err = v.api.GetBatchResult(gctx, v.BatchID, v.ResultID, true)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to load batch result", "batch_id", v.BatchID, "result_id", v.ResultID, "error", err)
		v.notify.Error("Failed to load batch result: " + err.Error())
		return err
	}

	v.Batch = batch
	v.Result = result
	v.Loaded = true
	return nil
}

// Pending counts the diffs still waiting for review.
func (v *BatchResultView) Pending() int {
	n := 0
	for _, d := range v.Result.Diffs {
		if d.State == models.DiffUnapproved {
			n++
		}
	}
	return n
}
