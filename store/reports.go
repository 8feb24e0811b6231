// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/scylla/models"
)

type ReportStore struct {
	base
}

var _ Collection[models.Report] = (*ReportStore)(nil)

const reportColumns = `
	r.id, r.name, r.url, r.master_result_id, r.created_at,
	m.id, m.report_id, m.timestamp, m.screenshot, m.thumb`

const reportFrom = `
	FROM reports r
	LEFT JOIN report_results m ON m.id = r.master_result_id`

func scanReport(s scanner) (models.Report, error) {
	var (
		r        models.Report
		masterID sql.NullString
		mID      sql.NullString
		mReport  sql.NullString
		mTime    sql.NullTime
		mShot    sql.NullString
		mThumb   sql.NullString
	)
	err := s.Scan(
		&r.ID, &r.Name, &r.URL, &masterID, &r.CreatedAt,
		&mID, &mReport, &mTime, &mShot, &mThumb,
	)
	if err != nil {
		return models.Report{}, err
	}

	r.MasterID = stringPtr(masterID)
	if mID.Valid {
		r.MasterResult = &models.ReportResult{
			ID:         mID.String,
			ReportID:   mReport.String,
			Timestamp:  mTime.Time,
			Screenshot: mShot.String,
			Thumb:      mThumb.String,
		}
	}
	return r, nil
}

// List returns all reports with their master result expanded
func (s *ReportStore) List(ctx context.Context) ([]models.Report, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT"+reportColumns+reportFrom+" ORDER BY r.created_at, r.id")
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *ReportStore) FindByID(ctx context.Context, id string) (*models.Report, error) {
	row := s.conn.QueryRowContext(ctx, s.q("SELECT"+reportColumns+reportFrom+" WHERE r.id = ?"), id)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}
	return &r, nil
}

func (s *ReportStore) Insert(ctx context.Context, r models.Report) (models.Report, error) {
	r.ID = newID()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.MasterID = r.MasterResultID()

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO reports (id, name, url, master_result_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), r.ID, r.Name, r.URL, nullString(r.MasterID), r.CreatedAt)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to insert report: %w", err)
	}
	return r, nil
}

// Replace overwrites name, url and master result. created_at is kept.
func (s *ReportStore) Replace(ctx context.Context, id string, r models.Report) (int64, error) {
	n, err := s.exec(ctx, s.conn, `
		UPDATE reports SET name = ?, url = ?, master_result_id = ?
		WHERE id = ?
	`, r.Name, r.URL, nullString(r.MasterResultID()), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update report: %w", err)
	}
	return n, nil
}

func (s *ReportStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "reports", id)
}

// DeleteCascade removes the report and all of its results in one transaction.
// Nothing is removed when the report does not exist.
func (s *ReportStore) DeleteCascade(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.exec(ctx, tx, "DELETE FROM report_results WHERE report_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete report results: %w", err)
		}
		n, err := s.deleteByID(ctx, tx, "reports", id)
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

// errNothingDeleted rolls back a cascade whose parent was missing
var errNothingDeleted = errors.New("nothing deleted")

type ReportResultStore struct {
	base
}

var _ Collection[models.ReportResult] = (*ReportResultStore)(nil)

const reportResultColumns = "id, report_id, timestamp, screenshot, thumb"

func scanReportResult(s scanner) (models.ReportResult, error) {
	var rr models.ReportResult
	err := s.Scan(&rr.ID, &rr.ReportID, &rr.Timestamp, &rr.Screenshot, &rr.Thumb)
	return rr, err
}

func (s *ReportResultStore) List(ctx context.Context) ([]models.ReportResult, error) {
	return s.query(ctx, "SELECT "+reportResultColumns+" FROM report_results ORDER BY timestamp, id")
}

// ListByReport returns the results of one report, oldest first
func (s *ReportResultStore) ListByReport(ctx context.Context, reportID string) ([]models.ReportResult, error) {
	return s.query(ctx, "SELECT "+reportResultColumns+" FROM report_results WHERE report_id = ? ORDER BY timestamp, id", reportID)
}

func (s *ReportResultStore) query(ctx context.Context, query string, args ...any) ([]models.ReportResult, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report results: %w", err)
	}
	defer rows.Close()

	results := []models.ReportResult{}
	for rows.Next() {
		rr, err := scanReportResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report result: %w", err)
		}
		results = append(results, rr)
	}
	return results, rows.Err()
}

func (s *ReportResultStore) FindByID(ctx context.Context, id string) (*models.ReportResult, error) {
	row := s.conn.QueryRowContext(ctx, s.q("SELECT "+reportResultColumns+" FROM report_results WHERE id = ?"), id)
	rr, err := scanReportResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report result: %w", err)
	}
	return &rr, nil
}

func (s *ReportResultStore) Insert(ctx context.Context, rr models.ReportResult) (models.ReportResult, error) {
	rr.ID = newID()
	if rr.Timestamp.IsZero() {
		rr.Timestamp = time.Now().UTC()
	}

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO report_results (id, report_id, timestamp, screenshot, thumb)
		VALUES (?, ?, ?, ?, ?)
	`), rr.ID, rr.ReportID, rr.Timestamp, rr.Screenshot, rr.Thumb)
	if err != nil {
		return models.ReportResult{}, fmt.Errorf("failed to insert report result: %w", err)
	}
	return rr, nil
}

func (s *ReportResultStore) Replace(ctx context.Context, id string, rr models.ReportResult) (int64, error) {
	if rr.Timestamp.IsZero() {
		rr.Timestamp = time.Now().UTC()
	}
	n, err := s.exec(ctx, s.conn, `
		UPDATE report_results SET report_id = ?, timestamp = ?, screenshot = ?, thumb = ?
		WHERE id = ?
	`, rr.ReportID, rr.Timestamp, rr.Screenshot, rr.Thumb, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update report result: %w", err)
	}
	return n, nil
}

func (s *ReportResultStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "report_results", id)
}
