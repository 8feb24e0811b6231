// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/views"
)

// NewReportsCmd creates the reports command group.
func NewReportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List and manage reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(cmd, "/reports")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a report and its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd, "/reports/"+args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url>",
		Short: "Create a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewReportListView(a.deps)
			v.NewReport()
			return v.AddReport(cmd.Context(), args[0], args[1])
		},
	})

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report and all of its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewReportListView(a.deps)
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}

			for _, r := range v.Reports {
				if r.ID != args[0] {
					continue
				}
				v.DeleteReport(r)
				ok, err := confirm(cmd, fmt.Sprintf("Delete report %q and all of its results?", r.Name))
				if err != nil {
					return err
				}
				if !ok {
					v.CancelDelete()
					return nil
				}
				return v.ConfirmDeleteReport(cmd.Context())
			}
			return fmt.Errorf("report %s not found", args[0])
		},
	}
	del.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(del)

	cmd.AddCommand(&cobra.Command{
		Use:   "master <report-id> <result-id>",
		Short: "Make a result the report's master result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewReportDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.SetMasterResult(cmd.Context(), args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-result <report-id> <result-id>",
		Short: "Delete one result of a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewReportDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}
			return v.DeleteResult(cmd.Context(), args[1])
		},
	})

	return cmd
}
