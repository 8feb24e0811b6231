// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"errors"
	"io"

	"github.com/danielhkuo/scylla/client"
)

var (
	// ErrNothingStaged is returned by a confirm intent with no pending delete
	ErrNothingStaged = errors.New("no delete is pending")

	// ErrUnknownResult is returned when an intent names a result the view
	// did not load
	ErrUnknownResult = errors.New("result is not part of this view")
)

// View is the state and behavior behind one client route.
type View interface {
	// Activate loads the data the view shows. Failures are also reported
	// through the Notifier.
	Activate(ctx context.Context) error

	// Render writes the current view state as markdown.
	Render(w io.Writer) error
}

// Deps are shared by every view the router builds.
type Deps struct {
	API    *client.Client
	Notify Notifier
}
