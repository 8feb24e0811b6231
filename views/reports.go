// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/models"
)

// ReportListView backs /reports.
type ReportListView struct {
	api    *client.Client
	notify Notifier

	Reports        []models.Report
	ReportToDelete *models.Report

	Loaded           bool
	ShowNewReport    bool
	ShowDeleteReport bool
	CreateFailed     bool
}

func NewReportListView(deps Deps) *ReportListView {
	return &ReportListView{api: deps.API, notify: deps.Notify}
}

func (v *ReportListView) Activate(ctx context.Context) error {
	return v.refresh(ctx)
}

func (v *ReportListView) refresh(ctx context.Context) error {
	reports, err := v.api.ListReports(ctx)
	if err != nil {
		slog.Error("failed to load reports", "error", err)
		v.notify.Error("Failed to load reports: " + err.Error())
		return err
	}
	v.Reports = reports
	v.Loaded = true
	return nil
}

// Thumbnail returns the master result's thumb, or a placeholder when the
// report has no master result yet.
func (v *ReportListView) Thumbnail(report *models.Report) string {
	if report != nil && report.MasterResult != nil {
		return report.MasterResult.Thumb
	}
	return models.NoMasterThumbnail
}

// NewReport opens the create form.
func (v *ReportListView) NewReport() {
	v.ShowNewReport = true
	v.CreateFailed = false
}

func (v *ReportListView) AddReport(ctx context.Context, name, url string) error {
	slog.Debug("new report", "name", name, "url", url)

	report, err := v.api.CreateReport(ctx, models.Report{Name: name, URL: url})
	if err != nil {
		slog.Error("failed to save report", "name", name, "error", err)
		v.CreateFailed = true
		v.notify.Error("Failed to save report: " + err.Error())
		return err
	}

	v.ShowNewReport = false
	v.CreateFailed = false
	v.notify.Success("New Report Created: " + report.Name)
	return v.refresh(ctx)
}

// DeleteReport stages report for deletion and opens the confirm dialog.
func (v *ReportListView) DeleteReport(report models.Report) {
	v.ShowDeleteReport = true
	v.ReportToDelete = &report
	slog.Debug("report to delete", "report_id", report.ID)
}

func (v *ReportListView) CancelDelete() {
	v.ShowDeleteReport = false
	v.ReportToDelete = nil
}

// ConfirmDeleteReport deletes every result of the staged report one at a
// time, then the report itself. A failed result delete is logged and skipped.
func (v *ReportListView) ConfirmDeleteReport(ctx context.Context) error {
	if v.ReportToDelete == nil {
		return ErrNothingStaged
	}

	report, err := v.api.GetReport(ctx, v.ReportToDelete.ID, true)
	if err != nil {
		slog.Error("failed to load report for delete", "report_id", v.ReportToDelete.ID, "error", err)
		v.notify.Error("Failed to delete report: " + err.Error())
		return err
	}

	for _, result := range report.Results {
		if _, err := v.api.DeleteReportResult(ctx, result.ID); err != nil {
			slog.Error("failed to delete result", "result_id", result.ID, "error", err)
		}
	}

	deleted, err := v.api.DeleteReport(ctx, report.ID, false)
	if err != nil {
		slog.Error("failed to delete report", "report_id", report.ID, "error", err)
		v.notify.Error("Failed to delete report: " + err.Error())
		return err
	}
	slog.Info("report deleted", "report_id", deleted.ID)

	v.ShowDeleteReport = false
	v.ReportToDelete = nil
	return v.refresh(ctx)
}

// ReportDetailView backs /reports/:id.
type ReportDetailView struct {
	api    *client.Client
	notify Notifier

	ID     string
	Report models.Report
	Loaded bool
}

func NewReportDetailView(deps Deps, id string) *ReportDetailView {
	return &ReportDetailView{api: deps.API, notify: deps.Notify, ID: id}
}

func (v *ReportDetailView) Activate(ctx context.Context) error {
	report, err := v.api.GetReport(ctx, v.ID, true)
	if err != nil {
		slog.Error("failed to load report", "report_id", v.ID, "error", err)
		v.notify.Error("Failed to load report: " + err.Error())
		return err
	}
	v.Report = report
	v.Loaded = true
	return nil
}

// IsMaster reports whether resultID is the report's master result.
func (v *ReportDetailView) IsMaster(resultID string) bool {
	return v.Report.MasterResult != nil && v.Report.MasterResult.ID == resultID
}

func (v *ReportDetailView) result(id string) (models.ReportResult, bool) {
	for _, r := range v.Report.Results {
		if r.ID == id {
			return r, true
		}
	}
	return models.ReportResult{}, false
}

// SetMasterResult makes one of the report's screenshots the baseline.
func (v *ReportDetailView) SetMasterResult(ctx context.Context, resultID string) error {
	result, ok := v.result(resultID)
	if !ok {
		return ErrUnknownResult
	}

	report := v.Report
	report.MasterResult = &result
	if err := v.save(ctx, report); err != nil {
		return err
	}

	v.notify.Success("Master Result Set: " + v.Report.Name)
	return v.Activate(ctx)
}

// DeleteResult removes one screenshot. Deleting the master result also
// clears it from the report.
func (v *ReportDetailView) DeleteResult(ctx context.Context, resultID string) error {
	if _, ok := v.result(resultID); !ok {
		return ErrUnknownResult
	}

	if v.IsMaster(resultID) {
		report := v.Report
		report.MasterResult = nil
		if err := v.save(ctx, report); err != nil {
			return err
		}
	}

	if _, err := v.api.DeleteReportResult(ctx, resultID); err != nil {
		slog.Error("failed to delete result", "result_id", resultID, "error", err)
		v.notify.Error("Failed to delete result: " + err.Error())
		return err
	}

	v.notify.Success("Result Deleted")
	return v.Activate(ctx)
}

func (v *ReportDetailView) save(ctx context.Context, report models.Report) error {
	report.Results = nil
	if _, err := v.api.UpdateReport(ctx, report); err != nil {
		slog.Error("failed to update report", "report_id", report.ID, "error", err)
		v.notify.Error("Failed to update report: " + err.Error())
		return err
	}
	return nil
}
