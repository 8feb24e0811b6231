// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/views"
)

// NewDiffsCmd creates the diffs command group.
func NewDiffsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diffs",
		Short: "Review result diffs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a diff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd, "/result-diffs/"+args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <id>",
		Short: "Accept the new rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewDiffDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.Approve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reject <id>",
		Short: "Mark the diff as a regression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewDiffDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.Reject(cmd.Context())
		},
	})

	return cmd
}
