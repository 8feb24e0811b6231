// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the document database and creates its schema.

# Connecting

Two backends are supported, selected by database type:

	conn, err := db.Open(ctx, db.DialectSQLite, "file:scylla.db")
	conn, err := db.Open(ctx, db.DialectPostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go) and is limited to one open
connection. Postgres uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all collections:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - reports: name, url, master result reference
  - report_results: screenshots taken for a report
  - abcompares: named pairs of URLs
  - batches: named groups of reports (report ids stored as JSON)
  - batch_results: one execution of a batch
  - result_diffs: comparison of two report results

# Relationships

	reports 1──* report_results
	batches 1──* batch_results
	batch_results 1──* result_diffs

Parent references are not foreign keys; dependent rows are deleted
explicitly by the caller.

# Placeholders

Queries are written with ? placeholders. Rebind converts them for postgres:

	conn.QueryContext(ctx, db.Rebind(dialect, "SELECT ... WHERE id = ?"), id)
*/
package db
