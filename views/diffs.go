// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/models"
)

// DiffDetailView backs /result-diffs/:id.
type DiffDetailView struct {
	api    *client.Client
	notify Notifier

	ID     string
	Diff   models.ResultDiff
	Loaded bool
}

func NewDiffDetailView(deps Deps, id string) *DiffDetailView {
	return &DiffDetailView{api: deps.API, notify: deps.Notify, ID: id}
}

func (v *DiffDetailView) Activate(ctx context.Context) error {
	diff, err := v.api.GetDiff(ctx, v.ID)
	if err != nil {
		slog.Error("failed to load diff", "diff_id", v.ID, "error", err)
		v.notify.Error("Failed to load diff: " + err.Error())
		return err
	}
	v.Diff = diff
	v.Loaded = true
	return nil
}

// Approve accepts the new rendering as correct.
func (v *DiffDetailView) Approve(ctx context.Context) error {
	return v.setState(ctx, models.DiffApproved, "Diff Approved")
}

// Reject marks the diff as a regression.
func (v *DiffDetailView) Reject(ctx context.Context) error {
	return v.setState(ctx, models.DiffRejected, "Diff Rejected")
}

func (v *DiffDetailView) setState(ctx context.Context, state, msg string) error {
	diff := v.Diff
	diff.ID = v.ID
	diff.State = state

	saved, err := v.api.UpdateDiff(ctx, diff)
	if err != nil {
		slog.Error("failed to update diff", "diff_id", v.ID, "state", state, "error", err)
		v.notify.Error("Failed to update diff: " + err.Error())
		return err
	}

	v.Diff = saved
	v.notify.Success(msg)
	return nil
}
