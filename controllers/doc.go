// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package controllers implements the entity controllers that sit between the
HTTP handlers and the store.

# Controller

Every entity implements the same capability set:

	type Controller[T any] interface {
		List(ctx) ([]T, error)
		FindByID(ctx, id, expand) (*T, error)
		CreateNew(ctx, payload) (T, error)
		Update(ctx, id, payload) (T, error)
		Remove(ctx, id) (int64, error)
	}

Controllers are built from a store:

	reports := controllers.NewReports(s)
	compares := controllers.NewAbCompares(s)

# Semantics

  - FindByID returns nil, nil when the id is unknown. With expand the
    children are loaded: report results, batch results, or result diffs.
  - CreateNew and Update reject a payload missing a required field with a
    *ValidationError before the store is called.
  - Update returns ErrZeroAffected when no document has the id.
  - Remove returns the affected-record count. 0 is not an error here.

Reports and Batches also offer RemoveCascade, which deletes the parent and
its children in one transaction.

# Errors

  - ErrValidation (and *ValidationError): missing required field
  - ErrNotFound: unknown or mismatched parent
  - ErrZeroAffected: update matched nothing
*/
package controllers
