// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/scylla/db"
)

// Collection is the capability set every document collection offers.
// FindByID returns nil, nil when no document has the id.
// Replace and Delete report the number of records they touched.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc T) (T, error)
	Replace(ctx context.Context, id string, doc T) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// Store groups every collection over a single connection.
type Store struct {
	conn *sql.DB

	Reports       *ReportStore
	ReportResults *ReportResultStore
	AbCompares    *AbCompareStore
	Batches       *BatchStore
	BatchResults  *BatchResultStore
	ResultDiffs   *ResultDiffStore
}

func New(conn *sql.DB, dialect string) *Store {
	b := base{conn: conn, dialect: dialect}
	return &Store{
		conn:          conn,
		Reports:       &ReportStore{base: b},
		ReportResults: &ReportResultStore{base: b},
		AbCompares:    &AbCompareStore{base: b},
		Batches:       &BatchStore{base: b},
		BatchResults:  &BatchResultStore{base: b},
		ResultDiffs:   &ResultDiffStore{base: b},
	}
}

// Ping checks that the database is still reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// base carries the connection and query dialect shared by all collections
type base struct {
	conn    *sql.DB
	dialect string
}

func (b base) q(query string) string {
	return db.Rebind(b.dialect, query)
}

func (b base) deleteByID(ctx context.Context, q querier, table, id string) (int64, error) {
	res, err := q.ExecContext(ctx, b.q("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return res.RowsAffected()
}

func (b base) exec(ctx context.Context, q querier, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, b.q(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// withTx runs fn inside a transaction, committing only if fn succeeds
func (b base) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := b.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
