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

type AbCompareStore struct {
	base
}

var _ Collection[models.AbCompare] = (*AbCompareStore)(nil)

func (s *AbCompareStore) List(ctx context.Context) ([]models.AbCompare, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT id, name, url_a, url_b FROM abcompares ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query compares: %w", err)
	}
	defer rows.Close()

	compares := []models.AbCompare{}
	for rows.Next() {
		var c models.AbCompare
		if err := rows.Scan(&c.ID, &c.Name, &c.URLA, &c.URLB); err != nil {
			return nil, fmt.Errorf("failed to scan compare: %w", err)
		}
		compares = append(compares, c)
	}
	return compares, rows.Err()
}

func (s *AbCompareStore) FindByID(ctx context.Context, id string) (*models.AbCompare, error) {
	var c models.AbCompare
	err := s.conn.QueryRowContext(ctx, s.q("SELECT id, name, url_a, url_b FROM abcompares WHERE id = ?"), id).
		Scan(&c.ID, &c.Name, &c.URLA, &c.URLB)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query compare: %w", err)
	}
	return &c, nil
}

func (s *AbCompareStore) Insert(ctx context.Context, c models.AbCompare) (models.AbCompare, error) {
	c.ID = newID()
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO abcompares (id, name, url_a, url_b)
		VALUES (?, ?, ?, ?)
	`), c.ID, c.Name, c.URLA, c.URLB)
	if err != nil {
		return models.AbCompare{}, fmt.Errorf("failed to insert compare: %w", err)
	}
	return c, nil
}

func (s *AbCompareStore) Replace(ctx context.Context, id string, c models.AbCompare) (int64, error) {
	n, err := s.exec(ctx, s.conn, `
		UPDATE abcompares SET name = ?, url_a = ?, url_b = ?
		WHERE id = ?
	`, c.Name, c.URLA, c.URLB, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update compare: %w", err)
	}
	return n, nil
}

func (s *AbCompareStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, s.conn, "abcompares", id)
}
