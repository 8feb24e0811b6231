// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/scylla/models"
)

type ResultDiffStore struct {
	base
}

var _ Collection[models.ResultDiff] = (*ResultDiffStore)(nil)

const resultDiffColumns = "id, batch_result_id, report_result_a, report_result_b, distortion, image, thumb, state"

func scanResultDiff(s scanner) (models.ResultDiff, error) {
	var (
		d             models.ResultDiff
		batchResultID sql.NullString
	)
	err := s.Scan(&d.ID, &batchResultID, &d.ReportResultA, &d.ReportResultB,
		&d.Distortion, &d.Image, &d.Thumb, &d.State)
	if err != nil {
		return models.ResultDiff{}, err
	}
	d.BatchResultID = stringPtr(batchResultID)
	return d, nil
}

func (s *ResultDiffStore) List(ctx context.Context) ([]models.ResultDiff, error) {
	return s.query(ctx, "SELECT "+resultDiffColumns+" FROM result_diffs ORDER BY id")
}

// ListByBatchResult returns the diffs recorded during one batch execution
func (s *ResultDiffStore) ListByBatchResult(ctx context.Context, batchResultID string) ([]models.ResultDiff, error) {
	return s.query(ctx, "SELECT "+resultDiffColumns+" FROM result_diffs WHERE batch_result_id = ? ORDER BY id", batchResultID)
}

func (s *ResultDiffStore) query(ctx context.Context, query string, args ...any) ([]models.ResultDiff, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query result diffs: %w", err)
	}
	defer rows.Close()

	diffs := []models.ResultDiff{}
	for rows.Next() {
		d, err := scanResultDiff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result diff: %w", err)
		}
		diffs = append(diffs, d)
	}
	return diffs, rows.Err()
}

func (s *ResultDiffStore) FindByID(ctx context.Context, id string) (*models.ResultDiff, error) {
	row := s.conn.QueryRowContext(ctx, s.q("SELECT "+resultDiffColumns+" FROM result_diffs WHERE id = ?"), id)
	d, err := scanResultDiff(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result diff: %w", err)
	}
	return &d, nil
}

func (s *ResultDiffStore) Insert(ctx context.Context, d models.ResultDiff) (models.ResultDiff, error) {
	d.ID = newID()
	if d.State == "" {
		d.State = models.DiffUnapproved
	}

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO result_diffs (id, batch_result_id, report_result_a, report_result_b, distortion, image, thumb, state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), d.ID, nullString(d.BatchResultID), d.ReportResultA, d.ReportResultB, d.Distortion, d.Image, d.Thumb, d.State)
	if err != nil {
		return models.ResultDiff{}, fmt.Errorf("failed to insert result diff: %w", err)
	}
	return d, nil
}

func (s *ResultDiffStore) Replace(ctx context.Context, id string, d models.ResultDiff) (int64, error) {
	if d.State == "" {
		d.State = models.DiffUnapproved
	}
	n, err := s.exec(ctx, s.conn, `
		UPDATE result_diffs
		SET batch_result_id = ?, report_result_a = ?, report_result_b = ?,
		    distortion = ?, image = ?, thumb = ?, state = ?
		WHERE id = ?
	`, nullString(d.BatchResultID), d.ReportResultA, d.ReportResultB, d.Distortion, d.Image, d.Thumb, d.State, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update result diff: %w", err)
	}
	return n, nil
}

func (s *ResultDiffStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "result_diffs", id)
}
