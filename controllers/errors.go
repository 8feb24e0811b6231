// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a payload missing a required field.
	// No store call is made when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced document does not exist
	// or does not belong to the requested parent.
	ErrNotFound = errors.New("not found")

	// ErrZeroAffected is returned when an update or delete matched no records.
	ErrZeroAffected = errors.New("no records affected")
)

// ValidationError names the missing field. It matches ErrValidation.
type ValidationError struct {
	Resource string
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is required", e.Resource, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
