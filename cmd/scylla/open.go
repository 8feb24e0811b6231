// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/views"
)

// NewOpenCmd creates the open command, which shows any dashboard route.
func NewOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open [path]",
		Short: "Show a dashboard view",
		Long: `Show the dashboard view for a route, for example:

  /home
  /reports              /reports/<id>
  /compares             /compares/<id>
  /batches              /batches/<id>
  /batches/<batchId>/results/<resultId>
  /result-diffs/<id>

Unknown routes show /home.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := views.HomePath
			if len(args) == 1 {
				path = args[0]
			}
			return a.show(cmd, path)
		},
	}
}
