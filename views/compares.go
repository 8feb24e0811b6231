// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/models"
)

// CompareListView backs /compares.
type CompareListView struct {
	api    *client.Client
	notify Notifier

	Compares        []models.AbCompare
	CompareToDelete *models.AbCompare

	Loaded            bool
	ShowNewCompare    bool
	ShowDeleteCompare bool
	CreateFailed      bool
}

func NewCompareListView(deps Deps) *CompareListView {
	return &CompareListView{api: deps.API, notify: deps.Notify}
}

func (v *CompareListView) Activate(ctx context.Context) error {
	return v.refresh(ctx)
}

func (v *CompareListView) refresh(ctx context.Context) error {
	compares, err := v.api.ListCompares(ctx)
	if err != nil {
		slog.Error("failed to load compares", "error", err)
		v.notify.Error("Failed to load compares: " + err.Error())
		return err
	}
	v.Compares = compares
	v.Loaded = true
	return nil
}

func (v *CompareListView) NewCompare() {
	v.ShowNewCompare = true
	v.CreateFailed = false
}

func (v *CompareListView) AddCompare(ctx context.Context, name, urlA, urlB string) error {
	compare, err := v.api.CreateCompare(ctx, models.AbCompare{Name: name, URLA: urlA, URLB: urlB})
	if err != nil {
		slog.Error("failed to save compare", "name", name, "error", err)
		v.CreateFailed = true
		v.notify.Error("Failed to save compare: " + err.Error())
		return err
	}

	v.ShowNewCompare = false
	v.CreateFailed = false
	v.notify.Success("New Compare Created: " + compare.Name)
	return v.refresh(ctx)
}

func (v *CompareListView) DeleteCompare(compare models.AbCompare) {
	v.ShowDeleteCompare = true
	v.CompareToDelete = &compare
}

func (v *CompareListView) CancelDelete() {
	v.ShowDeleteCompare = false
	v.CompareToDelete = nil
}

func (v *CompareListView) ConfirmDeleteCompare(ctx context.Context) error {
	if v.CompareToDelete == nil {
		return ErrNothingStaged
	}

	id := v.CompareToDelete.ID
	if _, err := v.api.DeleteCompare(ctx, id); err != nil {
		slog.Error("failed to delete compare", "compare_id", id, "error", err)
		v.notify.Error("Failed to delete compare: " + err.Error())
		return err
	}

	v.ShowDeleteCompare = false
	v.CompareToDelete = nil
	return v.refresh(ctx)
}

// CompareDetailView backs /compares/:id. Edit Compare in place, then call
// SaveCompare.
type CompareDetailView struct {
	api    *client.Client
	notify Notifier

	ID      string
	Compare models.AbCompare
	Loaded  bool
}

func NewCompareDetailView(deps Deps, id string) *CompareDetailView {
	return &CompareDetailView{api: deps.API, notify: deps.Notify, ID: id}
}

func (v *CompareDetailView) Activate(ctx context.Context) error {
	compare, err := v.api.GetCompare(ctx, v.ID)
	if err != nil {
		slog.Error("failed to load compare", "compare_id", v.ID, "error", err)
		v.notify.Error("Failed to load compare: " + err.Error())
		return err
	}
	v.Compare = compare
	v.Loaded = true
	return nil
}

func (v *CompareDetailView) SaveCompare(ctx context.Context) error {
	v.Compare.ID = v.ID
	saved, err := v.api.UpdateCompare(ctx, v.Compare)
	if err != nil {
		slog.Error("failed to save compare", "compare_id", v.ID, "error", err)
		v.notify.Error("Failed to save compare: " + err.Error())
		return err
	}

	v.Compare = saved
	v.notify.Success("Compare Saved: " + saved.Name)
	return nil
}
