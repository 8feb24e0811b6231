// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/scylla/cliparse"
	"github.com/danielhkuo/scylla/db"
	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database, closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// One connection per pool, so every call sees its own database
	conn, err := db.Open(context.Background(), db.DialectSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps a fresh test database in a Store
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t), db.DialectSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	cfg := cliparse.Default()
	cfg.DatabaseURL = "file::memory:"
	return cfg
}

// CreateTestReport inserts a report and returns it
func CreateTestReport(t *testing.T, s *store.Store, name, url string) models.Report {
	t.Helper()

	report, err := s.Reports.Insert(context.Background(), models.Report{Name: name, URL: url})
	if err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}
	return report
}

// CreateTestReportResult inserts a result for the report and returns it
func CreateTestReportResult(t *testing.T, s *store.Store, reportID string) models.ReportResult {
	t.Helper()

	result, err := s.ReportResults.Insert(context.Background(), models.ReportResult{
		ReportID:   reportID,
		Screenshot: "screenshots/" + reportID + ".png",
		Thumb:      "thumbs/" + reportID + ".png",
	})
	if err != nil {
		t.Fatalf("Failed to create test report result: %v", err)
	}
	return result
}

// CreateTestBatch inserts a batch and returns it
func CreateTestBatch(t *testing.T, s *store.Store, name string, reportIDs ...string) models.Batch {
	t.Helper()

	batch, err := s.Batches.Insert(context.Background(), models.Batch{Name: name, Reports: reportIDs})
	if err != nil {
		t.Fatalf("Failed to create test batch: %v", err)
	}
	return batch
}

// CreateTestBatchResult inserts a result for the batch and returns it
func CreateTestBatchResult(t *testing.T, s *store.Store, batchID string) models.BatchResult {
	t.Helper()

	result, err := s.BatchResults.Insert(context.Background(), models.BatchResult{BatchID: batchID, Pass: 1})
	if err != nil {
		t.Fatalf("Failed to create test batch result: %v", err)
	}
	return result
}

// CreateTestDiff inserts a diff recorded during the batch result and returns it
func CreateTestDiff(t *testing.T, s *store.Store, batchResultID string) models.ResultDiff {
	t.Helper()

	diff, err := s.ResultDiffs.Insert(context.Background(), models.ResultDiff{
		BatchResultID: &batchResultID,
		ReportResultA: "result-a",
		ReportResultB: "result-b",
		Distortion:    0.25,
		Image:         "diffs/" + batchResultID + ".png",
	})
	if err != nil {
		t.Fatalf("Failed to create test diff: %v", err)
	}
	return diff
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
