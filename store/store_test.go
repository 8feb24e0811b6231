// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/testutil"
)

// timestamps round-trip through the database at varying precision
var approxTime = cmpopts.EquateApproxTime(time.Millisecond)

func TestAbCompareStore_CRUD(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	created, err := s.AbCompares.Insert(ctx, models.AbCompare{Name: "Home", URLA: "http://a", URLB: "http://b"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected an id to be assigned")
	}

	found, err := s.AbCompares.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if diff := cmp.Diff(&created, found); diff != "" {
		t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
	}

	n, err := s.AbCompares.Replace(ctx, created.ID, models.AbCompare{Name: "Home v2", URLA: "http://a2", URLB: "http://b2"})
	if err != nil || n != 1 {
		t.Fatalf("Replace: n=%d err=%v", n, err)
	}

	all, err := s.AbCompares.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []models.AbCompare{{ID: created.ID, Name: "Home v2", URLA: "http://a2", URLB: "http://b2"}}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	n, err = s.AbCompares.Delete(ctx, created.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}

	found, err = s.AbCompares.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete failed: %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil after delete, got %+v", found)
	}
}

func TestStore_ZeroAffected(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	testCases := []struct {
		name string
		op   func() (int64, error)
	}{
		{"replace compare", func() (int64, error) {
			return s.AbCompares.Replace(ctx, "missing", models.AbCompare{Name: "n", URLA: "a", URLB: "b"})
		}},
		{"delete compare", func() (int64, error) { return s.AbCompares.Delete(ctx, "missing") }},
		{"replace report", func() (int64, error) {
			return s.Reports.Replace(ctx, "missing", models.Report{Name: "n", URL: "u"})
		}},
		{"delete report", func() (int64, error) { return s.Reports.Delete(ctx, "missing") }},
		{"delete report result", func() (int64, error) { return s.ReportResults.Delete(ctx, "missing") }},
		{"delete batch", func() (int64, error) { return s.Batches.Delete(ctx, "missing") }},
		{"delete batch result", func() (int64, error) { return s.BatchResults.Delete(ctx, "missing") }},
		{"delete result diff", func() (int64, error) { return s.ResultDiffs.Delete(ctx, "missing") }},
		{"cascade report", func() (int64, error) { return s.Reports.DeleteCascade(ctx, "missing") }},
		{"cascade batch", func() (int64, error) { return s.Batches.DeleteCascade(ctx, "missing") }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.op()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if n != 0 {
				t.Errorf("Expected 0 affected, got %d", n)
			}
		})
	}
}

func TestReportStore_MasterResult(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	report := testutil.CreateTestReport(t, s, "Home", "https://example.com")
	result := testutil.CreateTestReportResult(t, s, report.ID)

	found, err := s.Reports.FindByID(ctx, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found.MasterResult != nil {
		t.Fatalf("Expected no master result, got %+v", found.MasterResult)
	}

	found.MasterResult = &result
	if n, err := s.Reports.Replace(ctx, report.ID, *found); err != nil || n != 1 {
		t.Fatalf("Replace: n=%d err=%v", n, err)
	}

	reports, err := s.Reports.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	if diff := cmp.Diff(&result, reports[0].MasterResult, approxTime); diff != "" {
		t.Errorf("Master result mismatch (-want +got):\n%s", diff)
	}
	if reports[0].CreatedAt.Sub(report.CreatedAt).Abs() > time.Millisecond {
		t.Errorf("created_at changed by replace: %s vs %s", reports[0].CreatedAt, report.CreatedAt)
	}
}

func TestReportStore_DeleteCascade(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	report := testutil.CreateTestReport(t, s, "Home", "https://example.com")
	other := testutil.CreateTestReport(t, s, "Other", "https://example.org")
	for i := 0; i < 3; i++ {
		testutil.CreateTestReportResult(t, s, report.ID)
	}
	kept := testutil.CreateTestReportResult(t, s, other.ID)

	n, err := s.Reports.DeleteCascade(ctx, report.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteCascade: n=%d err=%v", n, err)
	}

	results, err := s.ReportResults.ListByReport(ctx, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("Expected results to be deleted, %d left", len(results))
	}

	remaining, err := s.ReportResults.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("Expected only the other report's result to remain, got %+v", remaining)
	}
}

func TestBatchStore_Reports(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	t.Run("nil report list is stored as empty", func(t *testing.T) {
		batch := testutil.CreateTestBatch(t, s, "Nightly")
		found, err := s.Batches.FindByID(ctx, batch.ID)
		if err != nil {
			t.Fatal(err)
		}
		if found.Reports == nil || len(found.Reports) != 0 {
			t.Errorf("Expected empty report list, got %#v", found.Reports)
		}
	})

	t.Run("report ids round trip", func(t *testing.T) {
		batch := testutil.CreateTestBatch(t, s, "Release", "r1", "r2")
		found, err := s.Batches.FindByID(ctx, batch.ID)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"r1", "r2"}, found.Reports); diff != "" {
			t.Errorf("Reports mismatch (-want +got):\n%s", diff)
		}

		found.Reports = []string{"r3"}
		if n, err := s.Batches.Replace(ctx, batch.ID, *found); err != nil || n != 1 {
			t.Fatalf("Replace: n=%d err=%v", n, err)
		}
		found, _ = s.Batches.FindByID(ctx, batch.ID)
		if diff := cmp.Diff([]string{"r3"}, found.Reports); diff != "" {
			t.Errorf("Reports mismatch after replace (-want +got):\n%s", diff)
		}
	})
}

func TestBatchResultStore_EndTime(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	batch := testutil.CreateTestBatch(t, s, "Nightly")
	result := testutil.CreateTestBatchResult(t, s, batch.ID)

	found, err := s.BatchResults.FindByID(ctx, result.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found.End != nil {
		t.Errorf("Expected no end time, got %s", found.End)
	}

	end := found.Start.Add(time.Minute)
	found.End = &end
	found.Fail = 2
	if n, err := s.BatchResults.Replace(ctx, result.ID, *found); err != nil || n != 1 {
		t.Fatalf("Replace: n=%d err=%v", n, err)
	}

	results, err := s.BatchResults.ListByBatch(ctx, batch.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].End == nil || results[0].End.Sub(end).Abs() > time.Millisecond {
		t.Errorf("Expected end %s, got %v", end, results[0].End)
	}
	if results[0].Fail != 2 {
		t.Errorf("Expected fail 2, got %d", results[0].Fail)
	}
}

func TestBatchStore_DeleteCascade(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	batch := testutil.CreateTestBatch(t, s, "Nightly")
	other := testutil.CreateTestBatch(t, s, "Weekly")
	result := testutil.CreateTestBatchResult(t, s, batch.ID)
	testutil.CreateTestDiff(t, s, result.ID)
	testutil.CreateTestDiff(t, s, result.ID)
	otherResult := testutil.CreateTestBatchResult(t, s, other.ID)
	keptDiff := testutil.CreateTestDiff(t, s, otherResult.ID)

	n, err := s.Batches.DeleteCascade(ctx, batch.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteCascade: n=%d err=%v", n, err)
	}

	diffs, err := s.ResultDiffs.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 1 || diffs[0].ID != keptDiff.ID {
		t.Errorf("Expected only the other batch's diff to remain, got %+v", diffs)
	}

	results, err := s.BatchResults.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != otherResult.ID {
		t.Errorf("Expected only the other batch's result to remain, got %+v", results)
	}
}

func TestResultDiffStore_DefaultState(t *testing.T) {
	s := testutil.SetupTestStore(t)
	ctx := context.Background()

	diff := testutil.CreateTestDiff(t, s, "br-1")
	if diff.State != models.DiffUnapproved {
		t.Errorf("Expected state %q, got %q", models.DiffUnapproved, diff.State)
	}

	diff.State = models.DiffApproved
	if n, err := s.ResultDiffs.Replace(ctx, diff.ID, diff); err != nil || n != 1 {
		t.Fatalf("Replace: n=%d err=%v", n, err)
	}

	diffs, err := s.ResultDiffs.ListByBatchResult(ctx, "br-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 1 || diffs[0].State != models.DiffApproved {
		t.Errorf("Expected approved diff, got %+v", diffs)
	}
	if diffs[0].BatchResultID == nil || *diffs[0].BatchResultID != "br-1" {
		t.Errorf("Expected batch result br-1, got %v", diffs[0].BatchResultID)
	}
}
