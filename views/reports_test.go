// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/testutil"
)

func TestReportList_AddReport(t *testing.T) {
	env := newTestEnv(t)
	v := NewReportListView(env.deps)
	ctx := context.Background()

	require.NoError(t, v.Activate(ctx))
	assert.True(t, v.Loaded)
	assert.Empty(t, v.Reports)

	v.NewReport()
	require.True(t, v.ShowNewReport)

	require.NoError(t, v.AddReport(ctx, "Home", "https://example.com"))
	assert.False(t, v.ShowNewReport)
	assert.False(t, v.CreateFailed)
	assert.Equal(t, []string{"New Report Created: Home"}, env.notify.successes)
	require.Len(t, v.Reports, 1)
	assert.Equal(t, "Home", v.Reports[0].Name)
}

func TestReportList_AddReportFailure(t *testing.T) {
	env := newTestEnv(t)
	v := NewReportListView(env.deps)
	ctx := context.Background()

	v.NewReport()
	err := v.AddReport(ctx, "Home", "")
	require.Error(t, err)

	assert.True(t, v.CreateFailed)
	assert.True(t, v.ShowNewReport, "form stays open so the alert can be shown")
	assert.Empty(t, env.notify.successes)
	assert.Equal(t, []string{"Failed to save report: scylla API returned 400: report: url is required"}, env.notify.errors)
}

func TestReportList_Thumbnail(t *testing.T) {
	v := &ReportListView{}

	assert.Equal(t, models.NoMasterThumbnail, v.Thumbnail(nil))
	assert.Equal(t, models.NoMasterThumbnail, v.Thumbnail(&models.Report{Name: "Home"}))

	withMaster := &models.Report{MasterResult: &models.ReportResult{Thumb: "thumbs/home.png"}}
	assert.Equal(t, "thumbs/home.png", v.Thumbnail(withMaster))
}

func TestReportList_ConfirmDeleteReport(t *testing.T) {
	env := newTestEnv(t)
	report := testutil.CreateTestReport(t, env.store, "Home", "https://example.com")
	first := testutil.CreateTestReportResult(t, env.store, report.ID)
	second := testutil.CreateTestReportResult(t, env.store, report.ID)

	v := NewReportListView(env.deps)
	ctx := context.Background()
	require.NoError(t, v.Activate(ctx))

	v.DeleteReport(v.Reports[0])
	assert.True(t, v.ShowDeleteReport)
	require.NotNil(t, v.ReportToDelete)

	env.log.reset()
	require.NoError(t, v.ConfirmDeleteReport(ctx))

	lines := env.log.all()
	require.Len(t, lines, 5)
	assert.Equal(t, "GET /reports/"+report.ID+"?includeResults=true", lines[0])
	assert.ElementsMatch(t, []string{
		"DELETE /report-results/" + first.ID,
		"DELETE /report-results/" + second.ID,
	}, lines[1:3])
	assert.Equal(t, "DELETE /reports/"+report.ID, lines[3])
	assert.Equal(t, "GET /reports", lines[4])

	assert.False(t, v.ShowDeleteReport)
	assert.Nil(t, v.ReportToDelete)
	assert.Empty(t, v.Reports)
}

func TestReportList_ChildFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	report := testutil.CreateTestReport(t, env.store, "Home", "https://example.com")
	result := testutil.CreateTestReportResult(t, env.store, report.ID)

	v := NewReportListView(env.deps)
	ctx := context.Background()
	require.NoError(t, v.Activate(ctx))
	v.DeleteReport(v.Reports[0])

	env.failRequests("DELETE /report-results/")
	require.NoError(t, v.ConfirmDeleteReport(ctx))
	assert.Empty(t, v.Reports)

	// the orphaned result is left behind
	left, err := env.store.ReportResults.FindByID(ctx, result.ID)
	require.NoError(t, err)
	assert.NotNil(t, left)
}

func TestReportList_CancelAndNothingStaged(t *testing.T) {
	env := newTestEnv(t)
	v := NewReportListView(env.deps)

	assert.ErrorIs(t, v.ConfirmDeleteReport(context.Background()), ErrNothingStaged)

	v.DeleteReport(models.Report{ID: "r1", Name: "Home"})
	v.CancelDelete()
	assert.False(t, v.ShowDeleteReport)
	assert.Nil(t, v.ReportToDelete)
}

func TestReportList_ActivateFailure(t *testing.T) {
	deps, notify := newDeadEnv(t)
	v := NewReportListView(deps)

	require.Error(t, v.Activate(context.Background()))
	assert.False(t, v.Loaded)
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "Failed to load reports")
}

func TestReportDetail_MasterResult(t *testing.T) {
	env := newTestEnv(t)
	report := testutil.CreateTestReport(t, env.store, "Home", "https://example.com")
	first := testutil.CreateTestReportResult(t, env.store, report.ID)
	second := testutil.CreateTestReportResult(t, env.store, report.ID)

	v := NewReportDetailView(env.deps, report.ID)
	ctx := context.Background()
	require.NoError(t, v.Activate(ctx))
	require.Len(t, v.Report.Results, 2)
	assert.Nil(t, v.Report.MasterResult)

	require.NoError(t, v.SetMasterResult(ctx, first.ID))
	assert.True(t, v.IsMaster(first.ID))
	assert.Len(t, v.Report.Results, 2)
	assert.Contains(t, env.notify.successes, "Master Result Set: Home")

	assert.ErrorIs(t, v.SetMasterResult(ctx, "missing"), ErrUnknownResult)

	require.NoError(t, v.DeleteResult(ctx, first.ID))
	assert.Nil(t, v.Report.MasterResult, "deleting the master clears it")
	require.Len(t, v.Report.Results, 1)
	assert.Equal(t, second.ID, v.Report.Results[0].ID)

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "No master result set.")
}

func TestReportList_Render(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestReport(t, env.store, "Home", "https://example.com")

	v := NewReportListView(env.deps)
	require.NoError(t, v.Activate(context.Background()))
	v.DeleteReport(v.Reports[0])

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Reports")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, models.NoMasterThumbnail)
	assert.Contains(t, out, `Delete report "Home"`)
	assert.True(t, slices.ContainsFunc([]string{"now", "ago"}, func(s string) bool {
		return bytes.Contains(buf.Bytes(), []byte(s))
	}), "expected a relative creation time")
}
