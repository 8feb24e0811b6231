// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/views"
)

// NewComparesCmd creates the compares command group.
func NewComparesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compares",
		Aliases: []string{"abcompares"},
		Short:   "List and manage A/B compares",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(cmd, "/compares")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a compare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd, "/compares/"+args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url-a> <url-b>",
		Short: "Create a compare",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewCompareListView(a.deps)
			v.NewCompare()
			return v.AddCompare(cmd.Context(), args[0], args[1], args[2])
		},
	})

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a compare's name or URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewCompareDetailView(a.deps, args[0])
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				v.Compare.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("url-a") {
				v.Compare.URLA, _ = cmd.Flags().GetString("url-a")
			}
			if cmd.Flags().Changed("url-b") {
				v.Compare.URLB, _ = cmd.Flags().GetString("url-b")
			}
			return v.SaveCompare(cmd.Context())
		},
	}
	edit.Flags().String("name", "", "New name")
	edit.Flags().String("url-a", "", "New URL for side A")
	edit.Flags().String("url-b", "", "New URL for side B")
	cmd.AddCommand(edit)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a compare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewCompareListView(a.deps)
			if err := v.Activate(cmd.Context()); err != nil {
				return err
			}

			for _, c := range v.Compares {
				if c.ID != args[0] {
					continue
				}
				v.DeleteCompare(c)
				ok, err := confirm(cmd, fmt.Sprintf("Delete compare %q?", c.Name))
				if err != nil {
					return err
				}
				if !ok {
					v.CancelDelete()
					return nil
				}
				return v.ConfirmDeleteCompare(cmd.Context())
			}
			return fmt.Errorf("compare %s not found", args[0])
		},
	}
	del.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(del)

	return cmd
}
