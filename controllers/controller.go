// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"context"
	"fmt"

	"github.com/danielhkuo/scylla/store"
)

// Controller is the capability set shared by every entity.
type Controller[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string, expand bool) (*T, error)
	CreateNew(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id string, payload T) (T, error)
	Remove(ctx context.Context, id string) (int64, error)
}

type document interface {
	MissingField() string
}

// Resource implements Controller on top of a store collection.
type Resource[T document] struct {
	name  string
	coll  store.Collection[T]
	setID func(*T, string)

	// expand loads dependent children; nil when the entity has none
	expand func(context.Context, *T) error
}

func (r *Resource[T]) validate(payload T) error {
	if field := payload.MissingField(); field != "" {
		return &ValidationError{Resource: r.name, Field: field}
	}
	return nil
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	return r.coll.List(ctx)
}

// FindByID returns nil without error when the id is unknown
func (r *Resource[T]) FindByID(ctx context.Context, id string, expand bool) (*T, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}
	if expand && r.expand != nil {
		if err := r.expand(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to expand %s %s: %w", r.name, id, err)
		}
	}
	return doc, nil
}

func (r *Resource[T]) CreateNew(ctx context.Context, payload T) (T, error) {
	if err := r.validate(payload); err != nil {
		var zero T
		return zero, err
	}
	return r.coll.Insert(ctx, payload)
}

// Update replaces the whole document and returns it as stored, with the
// defaults the store fills in. The path id always wins over an id carried in
// the payload.
func (r *Resource[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	var zero T
	if err := r.validate(payload); err != nil {
		return zero, err
	}

	n, err := r.coll.Replace(ctx, id, payload)
	if err != nil {
		return zero, err
	}
	if n == 0 {
		return zero, fmt.Errorf("update %s %s: %w", r.name, id, ErrZeroAffected)
	}

	stored, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if stored == nil {
		return zero, fmt.Errorf("update %s %s: %w", r.name, id, ErrZeroAffected)
	}
	return *stored, nil
}

func (r *Resource[T]) Remove(ctx context.Context, id string) (int64, error) {
	return r.coll.Delete(ctx, id)
}
