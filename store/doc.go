// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists Scylla documents in a SQL database.

# Collections

Every collection implements Collection[T]:

	List(ctx) ([]T, error)
	FindByID(ctx, id) (*T, error)        // nil, nil when absent
	Insert(ctx, doc) (T, error)          // assigns a new uuid
	Replace(ctx, id, doc) (int64, error) // affected records
	Delete(ctx, id) (int64, error)       // affected records

A Store bundles one collection per document type over a shared connection:

	s := store.New(conn, db.DialectSQLite)
	report, err := s.Reports.Insert(ctx, models.Report{Name: "Home", URL: "https://example.com"})

# Child Lookups

  - ReportResults.ListByReport
  - BatchResults.ListByBatch
  - ResultDiffs.ListByBatchResult

# Cascading Deletes

Reports.DeleteCascade and Batches.DeleteCascade remove a parent together
with its children inside a single transaction. If the parent does not exist
the transaction is rolled back and 0 is returned.

Plain Delete never touches children.
*/
package store
