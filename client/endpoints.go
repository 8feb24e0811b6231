// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielhkuo/scylla/models"
)

// Reports

func (c *Client) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := c.do(ctx, http.MethodGet, "/reports", nil, nil, &reports)
	return reports, err
}

func (c *Client) GetReport(ctx context.Context, id string, includeResults bool) (models.Report, error) {
	var report models.Report
	err := c.do(ctx, http.MethodGet, "/reports/"+escape(id), flag("includeResults", includeResults), nil, &report)
	return report, err
}

func (c *Client) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	var created models.Report
	err := c.do(ctx, http.MethodPost, "/reports", nil, report, &created)
	return created, err
}

func (c *Client) UpdateReport(ctx context.Context, report models.Report) (models.Report, error) {
	var updated models.Report
	err := c.do(ctx, http.MethodPut, "/reports/"+escape(report.ID), nil, report, &updated)
	return updated, err
}

// DeleteReport removes the report. With cascade the server also removes its
// results in the same transaction.
func (c *Client) DeleteReport(ctx context.Context, id string, cascade bool) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/reports/"+escape(id), flag("cascade", cascade), nil, &deleted)
	return deleted, err
}

func (c *Client) ListReportResults(ctx context.Context, reportID string) ([]models.ReportResult, error) {
	var results []models.ReportResult
	err := c.do(ctx, http.MethodGet, "/reports/"+escape(reportID)+"/results", nil, nil, &results)
	return results, err
}

func (c *Client) CreateReportResult(ctx context.Context, reportID string, result models.ReportResult) (models.ReportResult, error) {
	var created models.ReportResult
	err := c.do(ctx, http.MethodPost, "/reports/"+escape(reportID)+"/results", nil, result, &created)
	return created, err
}

func (c *Client) GetReportResult(ctx context.Context, id string) (models.ReportResult, error) {
	var result models.ReportResult
	err := c.do(ctx, http.MethodGet, "/report-results/"+escape(id), nil, nil, &result)
	return result, err
}

func (c *Client) DeleteReportResult(ctx context.Context, id string) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/report-results/"+escape(id), nil, nil, &deleted)
	return deleted, err
}

// A/B compares

func (c *Client) ListCompares(ctx context.Context) ([]models.AbCompare, error) {
	var compares []models.AbCompare
	err := c.do(ctx, http.MethodGet, "/abcompares", nil, nil, &compares)
	return compares, err
}

func (c *Client) GetCompare(ctx context.Context, id string) (models.AbCompare, error) {
	var compare models.AbCompare
	err := c.do(ctx, http.MethodGet, "/abcompares/"+escape(id), nil, nil, &compare)
	return compare, err
}

func (c *Client) CreateCompare(ctx context.Context, compare models.AbCompare) (models.AbCompare, error) {
	var created models.AbCompare
	err := c.do(ctx, http.MethodPost, "/abcompares", nil, compare, &created)
	return created, err
}

func (c *Client) UpdateCompare(ctx context.Context, compare models.AbCompare) (models.AbCompare, error) {
	var updated models.AbCompare
	err := c.do(ctx, http.MethodPut, "/abcompares/"+escape(compare.ID), nil, compare, &updated)
	return updated, err
}

func (c *Client) DeleteCompare(ctx context.Context, id string) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/abcompares/"+escape(id), nil, nil, &deleted)
	return deleted, err
}

// Batches

func (c *Client) ListBatches(ctx context.Context) ([]models.Batch, error) {
	var batches []models.Batch
	err := c.do(ctx, http.MethodGet, "/batches", nil, nil, &batches)
	return batches, err
}

func (c *Client) GetBatch(ctx context.Context, id string, includeResults bool) (models.Batch, error) {
	var batch models.Batch
	err := c.do(ctx, http.MethodGet, "/batches/"+escape(id), flag("includeResults", includeResults), nil, &batch)
	return batch, err
}

func (c *Client) CreateBatch(ctx context.Context, batch models.Batch) (models.Batch, error) {
	var created models.Batch
	err := c.do(ctx, http.MethodPost, "/batches", nil, batch, &created)
	return created, err
}

func (c *Client) UpdateBatch(ctx context.Context, batch models.Batch) (models.Batch, error) {
	var updated models.Batch
	err := c.do(ctx, http.MethodPut, "/batches/"+escape(batch.ID), nil, batch, &updated)
	return updated, err
}

func (c *Client) DeleteBatch(ctx context.Context, id string, cascade bool) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/batches/"+escape(id), flag("cascade", cascade), nil, &deleted)
	return deleted, err
}

func (c *Client) ListBatchResults(ctx context.Context, batchID string) ([]models.BatchResult, error) {
	var results []models.BatchResult
	err := c.do(ctx, http.MethodGet, "/batches/"+escape(batchID)+"/results", nil, nil, &results)
	return results, err
}

func (c *Client) CreateBatchResult(ctx context.Context, batchID string, result models.BatchResult) (models.BatchResult, error) {
	var created models.BatchResult
	err := c.do(ctx, http.MethodPost, "/batches/"+escape(batchID)+"/results", nil, result, &created)
	return created, err
}

func (c *Client) GetBatchResult(ctx context.Context, batchID, resultID string, includeDiffs bool) (models.BatchResult, error) {
	var result models.BatchResult
	path := "/batches/" + escape(batchID) + "/results/" + escape(resultID)
	err := c.do(ctx, http.MethodGet, path, flag("includeDiffs", includeDiffs), nil, &result)
	return result, err
}

func (c *Client) DeleteBatchResult(ctx context.Context, batchID, resultID string) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	path := "/batches/" + escape(batchID) + "/results/" + escape(resultID)
	err := c.do(ctx, http.MethodDelete, path, nil, nil, &deleted)
	return deleted, err
}

// Result diffs

// ListDiffs lists every diff, or only those of one batch execution when
// batchResultID is set.
func (c *Client) ListDiffs(ctx context.Context, batchResultID string) ([]models.ResultDiff, error) {
	var query url.Values
	if batchResultID != "" {
		query = url.Values{"batchResult": {batchResultID}}
	}
	var diffs []models.ResultDiff
	err := c.do(ctx, http.MethodGet, "/result-diffs", query, nil, &diffs)
	return diffs, err
}

func (c *Client) GetDiff(ctx context.Context, id string) (models.ResultDiff, error) {
	var diff models.ResultDiff
	err := c.do(ctx, http.MethodGet, "/result-diffs/"+escape(id), nil, nil, &diff)
	return diff, err
}

func (c *Client) CreateDiff(ctx context.Context, diff models.ResultDiff) (models.ResultDiff, error) {
	var created models.ResultDiff
	err := c.do(ctx, http.MethodPost, "/result-diffs", nil, diff, &created)
	return created, err
}

func (c *Client) UpdateDiff(ctx context.Context, diff models.ResultDiff) (models.ResultDiff, error) {
	var updated models.ResultDiff
	err := c.do(ctx, http.MethodPut, "/result-diffs/"+escape(diff.ID), nil, diff, &updated)
	return updated, err
}

func (c *Client) DeleteDiff(ctx context.Context, id string) (models.DeleteResponse, error) {
	var deleted models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/result-diffs/"+escape(id), nil, nil, &deleted)
	return deleted, err
}
