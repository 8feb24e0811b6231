// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/scylla/models"
)

type BatchStore struct {
	base
}

var _ Collection[models.Batch] = (*BatchStore)(nil)

func scanBatch(s scanner) (models.Batch, error) {
	var (
		b       models.Batch
		reports string
	)
	if err := s.Scan(&b.ID, &b.Name, &reports, &b.CreatedAt); err != nil {
		return models.Batch{}, err
	}
	if err := json.Unmarshal([]byte(reports), &b.Reports); err != nil {
		return models.Batch{}, fmt.Errorf("corrupt report list for batch %s: %w", b.ID, err)
	}
	if b.Reports == nil {
		b.Reports = []string{}
	}
	return b, nil
}

func encodeReports(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	return string(raw), err
}

func (s *BatchStore) List(ctx context.Context) ([]models.Batch, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT id, name, reports, created_at FROM batches ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (s *BatchStore) FindByID(ctx context.Context, id string) (*models.Batch, error) {
	row := s.conn.QueryRowContext(ctx, s.q("SELECT id, name, reports, created_at FROM batches WHERE id = ?"), id)
	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query batch: %w", err)
	}
	return &b, nil
}

func (s *BatchStore) Insert(ctx context.Context, b models.Batch) (models.Batch, error) {
	b.ID = newID()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.Reports == nil {
		b.Reports = []string{}
	}
	reports, err := encodeReports(b.Reports)
	if err != nil {
		return models.Batch{}, fmt.Errorf("failed to encode batch reports: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, s.q(`
		INSERT INTO batches (id, name, reports, created_at)
		VALUES (?, ?, ?, ?)
	`), b.ID, b.Name, reports, b.CreatedAt)
	if err != nil {
		return models.Batch{}, fmt.Errorf("failed to insert batch: %w", err)
	}
	return b, nil
}

func (s *BatchStore) Replace(ctx context.Context, id string, b models.Batch) (int64, error) {
	reports, err := encodeReports(b.Reports)
	if err != nil {
		return 0, fmt.Errorf("failed to encode batch reports: %w", err)
	}
	n, err := s.exec(ctx, s.conn, "UPDATE batches SET name = ?, reports = ? WHERE id = ?", b.Name, reports, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update batch: %w", err)
	}
	return n, nil
}

func (s *BatchStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "batches", id)
}

// DeleteCascade removes the batch, its results and their diffs in one
// transaction. Nothing is removed when the batch does not exist.
func (s *BatchStore) DeleteCascade(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := s.exec(ctx, tx, `
			DELETE FROM result_diffs
			WHERE batch_result_id IN (SELECT id FROM batch_results WHERE batch_id = ?)
		`, id)
		if err != nil {
			return fmt.Errorf("failed to delete result diffs: %w", err)
		}
		if _, err := s.exec(ctx, tx, "DELETE FROM batch_results WHERE batch_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete batch results: %w", err)
		}
		n, err := s.deleteByID(ctx, tx, "batches", id)
		if err != nil {
			return err
		}
		if n == 0 {
			return errNothingDeleted
		}
		affected = n
		return nil
	})
	if errors.Is(err, errNothingDeleted) {
		return 0, nil
	}
	return affected, err
}

type BatchResultStore struct {
	base
}

var _ Collection[models.BatchResult] = (*BatchResultStore)(nil)

const batchResultColumns = "id, batch_id, started_at, ended_at, pass, fail, exception"

func scanBatchResult(s scanner) (models.BatchResult, error) {
	var (
		br  models.BatchResult
		end sql.NullTime
	)
	err := s.Scan(&br.ID, &br.BatchID, &br.Start, &end, &br.Pass, &br.Fail, &br.Exception)
	if err != nil {
		return models.BatchResult{}, err
	}
	if end.Valid {
		t := end.Time
		br.End = &t
	}
	return br, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (s *BatchResultStore) List(ctx context.Context) ([]models.BatchResult, error) {
	return s.query(ctx, "SELECT "+batchResultColumns+" FROM batch_results ORDER BY started_at, id")
}

// ListByBatch returns the results of one batch, oldest first
func (s *BatchResultStore) ListByBatch(ctx context.Context, batchID string) ([]models.BatchResult, error) {
	return s.query(ctx, "SELECT "+batchResultColumns+" FROM batch_results WHERE batch_id = ? ORDER BY started_at, id", batchID)
}

func (s *BatchResultStore) query(ctx context.Context, query string, args ...any) ([]models.BatchResult, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch results: %w", err)
	}
	defer rows.Close()

	results := []models.BatchResult{}
	for rows.Next() {
		br, err := scanBatchResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch result: %w", err)
		}
		results = append(results, br)
	}
	return results, rows.Err()
}

func (s *BatchResultStore) FindByID(ctx context.Context, id string) (*models.BatchResult, error) {
	row := s.conn.QueryRowContext(ctx, s.q("SELECT "+batchResultColumns+" FROM batch_results WHERE id = ?"), id)
	br, err := scanBatchResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query batch result: %w", err)
	}
	return &br, nil
}

func (s *BatchResultStore) Insert(ctx context.Context, br models.BatchResult) (models.BatchResult, error) {
	br.ID = newID()
	if br.Start.IsZero() {
		br.Start = time.Now().UTC()
	}

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO batch_results (id, batch_id, started_at, ended_at, pass, fail, exception)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), br.ID, br.BatchID, br.Start, nullTime(br.End), br.Pass, br.Fail, br.Exception)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("failed to insert batch result: %w", err)
	}
	return br, nil
}

func (s *BatchResultStore) Replace(ctx context.Context, id string, br models.BatchResult) (int64, error) {
	if br.Start.IsZero() {
		br.Start = time.Now().UTC()
	}
	n, err := s.exec(ctx, s.conn, `
		UPDATE batch_results
		SET batch_id = ?, started_at = ?, ended_at = ?, pass = ?, fail = ?, exception = ?
		WHERE id = ?
	`, br.BatchID, br.Start, nullTime(br.End), br.Pass, br.Fail, br.Exception, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update batch result: %w", err)
	}
	return n, nil
}

func (s *BatchResultStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "batch_results", id)
}
