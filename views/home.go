// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/models"
)

// HomeView backs /home, the dashboard overview.
type HomeView struct {
	api    *client.Client
	notify Notifier

	Reports  []models.Report
	Compares []models.AbCompare
	Batches  []models.Batch
	Loaded   bool
}

func NewHomeView(deps Deps) *HomeView {
	return &HomeView{api: deps.API, notify: deps.Notify}
}

// Activate loads the three collections concurrently.
func (v *HomeView) Activate(ctx context.Context) error {
	var (
		reports  []models.Report
		compares []models.AbCompare
		batches  []models.Batch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reports, err = v.api.ListReports(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		compares, err = v.api.ListCompares(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		batches, err = v.api.ListBatches(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to load dashboard", "error", err)
		v.notify.Error("Failed to load dashboard: " + err.Error())
		return err
	}

	v.Reports = reports
	v.Compares = compares
	v.Batches = batches
	v.Loaded = true
	return nil
}

// WithoutMaster counts reports that have no baseline screenshot yet.
func (v *HomeView) WithoutMaster() int {
	n := 0
	for _, r := range v.Reports {
		if r.MasterResult == nil {
			n++
		}
	}
	return n
}
