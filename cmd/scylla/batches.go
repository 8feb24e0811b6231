// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/views"
)

// NewBatchesCmd creates the batches command group.
func NewBatchesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List and manage batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(cmd, "/batches")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a batch with its reports and executions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd, "/batches/"+args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "result <batch-id> <result-id>",
		Short: "Show one execution of a batch and its diffs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd, "/batches/"+args[0]+"/results/"+args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> [report-id...]",
		Short: "Create a batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewBatchListView(a.deps)
			v.NewBatch()
			return v.AddBatch(cmd.Context(), args[0], args[1:]...)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-report <batch-id> <report-id>",
		Short: "Include a report in a batch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewBatchDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.AddReport(cmd.Context(), args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-report <batch-id> <report-id>",
		Short: "Remove a report from a batch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewBatchDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.RemoveReport(cmd.Context(), args[1])
		},
	})

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a batch with its executions and diffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewBatchListView(a.deps)
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}

			for _, b := range v.Batches {
				if b.ID != args[0] {
					continue
				}
				v.DeleteBatch(b)
				ok, err := confirm(cmd, fmt.Sprintf("Delete batch %q and all of its results?", b.Name))
				if err != nil {
					return err
				}
				if !ok {
					v.CancelDelete()
					return nil
				}
				return v.ConfirmDeleteBatch(cmd.Context())
			}
			return fmt.Errorf("batch %s not found", args[0])
		},
	}
	del.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(del)

	return cmd
}
