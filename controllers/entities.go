// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"context"

	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/store"
)

// Reports

type Reports struct {
	Resource[models.Report]
	reports *store.ReportStore
}

func NewReports(s *store.Store) *Reports {
	return &Reports{
		Resource: Resource[models.Report]{
			name:  "report",
			coll:  s.Reports,
			setID: func(r *models.Report, id string) { r.ID = id },
			expand: func(ctx context.Context, r *models.Report) error {
				results, err := s.ReportResults.ListByReport(ctx, r.ID)
				if err != nil {
					return err
				}
				r.Results = results
				return nil
			},
		},
		reports: s.Reports,
	}
}

// RemoveCascade deletes the report and its results atomically
func (c *Reports) RemoveCascade(ctx context.Context, id string) (int64, error) {
	return c.reports.DeleteCascade(ctx, id)
}

// ReportResults

type ReportResults struct {
	Resource[models.ReportResult]
	results *store.ReportResultStore
}

func NewReportResults(s *store.Store) *ReportResults {
	return &ReportResults{
		Resource: Resource[models.ReportResult]{
			name:  "report result",
			coll:  s.ReportResults,
			setID: func(r *models.ReportResult, id string) { r.ID = id },
		},
		results: s.ReportResults,
	}
}

func (c *ReportResults) ListByReport(ctx context.Context, reportID string) ([]models.ReportResult, error) {
	return c.results.ListByReport(ctx, reportID)
}

// AbCompares

type AbCompares struct {
	Resource[models.AbCompare]
}

func NewAbCompares(s *store.Store) *AbCompares {
	return &AbCompares{
		Resource: Resource[models.AbCompare]{
			name:  "compare",
			coll:  s.AbCompares,
			setID: func(c *models.AbCompare, id string) { c.ID = id },
		},
	}
}

// Batches

type Batches struct {
	Resource[models.Batch]
	batches *store.BatchStore
}

func NewBatches(s *store.Store) *Batches {
	return &Batches{
		Resource: Resource[models.Batch]{
			name:  "batch",
			coll:  s.Batches,
			setID: func(b *models.Batch, id string) { b.ID = id },
			expand: func(ctx context.Context, b *models.Batch) error {
				results, err := s.BatchResults.ListByBatch(ctx, b.ID)
				if err != nil {
					return err
				}
				b.Results = results
				return nil
			},
		},
		batches: s.Batches,
	}
}

// RemoveCascade deletes the batch, its results and their diffs atomically
func (c *Batches) RemoveCascade(ctx context.Context, id string) (int64, error) {
	return c.batches.DeleteCascade(ctx, id)
}

// BatchResults

type BatchResults struct {
	Resource[models.BatchResult]
	results *store.BatchResultStore
}

func NewBatchResults(s *store.Store) *BatchResults {
	return &BatchResults{
		Resource: Resource[models.BatchResult]{
			name:  "batch result",
			coll:  s.BatchResults,
			setID: func(b *models.BatchResult, id string) { b.ID = id },
			expand: func(ctx context.Context, b *models.BatchResult) error {
				diffs, err := s.ResultDiffs.ListByBatchResult(ctx, b.ID)
				if err != nil {
					return err
				}
				b.Diffs = diffs
				return nil
			},
		},
		results: s.BatchResults,
	}
}

func (c *BatchResults) ListByBatch(ctx context.Context, batchID string) ([]models.BatchResult, error) {
	return c.results.ListByBatch(ctx, batchID)
}

// ResultDiffs

type ResultDiffs struct {
	Resource[models.ResultDiff]
	diffs *store.ResultDiffStore
}

func NewResultDiffs(s *store.Store) *ResultDiffs {
	return &ResultDiffs{
		Resource: Resource[models.ResultDiff]{
			name:  "result diff",
			coll:  s.ResultDiffs,
			setID: func(d *models.ResultDiff, id string) { d.ID = id },
		},
		diffs: s.ResultDiffs,
	}
}

func (c *ResultDiffs) ListByBatchResult(ctx context.Context, batchResultID string) ([]models.ResultDiff, error) {
	return c.diffs.ListByBatchResult(ctx, batchResultID)
}
