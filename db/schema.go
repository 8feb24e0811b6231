// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all collections needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Statements are run one at a time: lib/pq accepts multi-statement strings
// but only without bind parameters, and keeping them split gives clearer errors.
// Parent references are plain columns, not foreign keys. Children are removed
// by explicit deletes, never by the database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS reports (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url TEXT NOT NULL,
    master_result_id TEXT,
    created_at TIMESTAMP NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS report_results (
    id TEXT PRIMARY KEY,
    report_id TEXT NOT NULL,
    timestamp TIMESTAMP NOT NULL,
    screenshot TEXT NOT NULL,
    thumb TEXT NOT NULL DEFAULT ''
)`,
	`CREATE INDEX IF NOT EXISTS idx_report_results_report_id ON report_results(report_id)`,

	`CREATE TABLE IF NOT EXISTS abcompares (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url_a TEXT NOT NULL,
    url_b TEXT NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS batches (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    reports TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS batch_results (
    id TEXT PRIMARY KEY,
    batch_id TEXT NOT NULL,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP,
    pass INTEGER NOT NULL DEFAULT 0,
    fail INTEGER NOT NULL DEFAULT 0,
    exception INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE INDEX IF NOT EXISTS idx_batch_results_batch_id ON batch_results(batch_id)`,

	`CREATE TABLE IF NOT EXISTS result_diffs (
    id TEXT PRIMARY KEY,
    batch_result_id TEXT,
    report_result_a TEXT NOT NULL,
    report_result_b TEXT NOT NULL,
    distortion DOUBLE PRECISION NOT NULL DEFAULT 0,
    image TEXT NOT NULL DEFAULT '',
    thumb TEXT NOT NULL DEFAULT '',
    state TEXT NOT NULL DEFAULT 'unapproved'
)`,
	`CREATE INDEX IF NOT EXISTS idx_result_diffs_batch_result_id ON result_diffs(batch_result_id)`,
}
