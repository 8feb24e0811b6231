// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/views"
)

// app is the state shared by all subcommands, filled in before any of them
// run.
type app struct {
	cfg        client.Config
	configPath string
	deps       views.Deps
	router     *views.Router
}

// NewRootCmd creates the root command for scylla.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "scylla",
		Short: "Visual regression testing dashboard",
		Long: `scylla is the command-line dashboard for a Scylla server.
It manages reports, A/B compares and batches, and lets you review the diffs
produced when a batch runs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("server", "s", "", "Scylla server URL (overrides config and "+client.EnvServer+")")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to client.yaml (default "+client.ConfigPath()+")")

	// Add subcommands
	cmd.AddCommand(NewOpenCmd(a))
	cmd.AddCommand(NewReportsCmd(a))
	cmd.AddCommand(NewComparesCmd(a))
	cmd.AddCommand(NewBatchesCmd(a))
	cmd.AddCommand(NewDiffsCmd(a))
	cmd.AddCommand(NewConfigCmd(a))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// setup loads the client configuration and wires the views.
func (a *app) setup(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))

	a.configPath, _ = cmd.Flags().GetString("config")
	if a.configPath == "" {
		a.configPath = client.ConfigPath()
	}

	cfg, err := client.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.Server = server
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.deps = views.Deps{
		API:    client.New(cfg),
		Notify: views.NewWriterNotifier(cmd.OutOrStdout()),
	}
	a.router = views.NewRouter(a.deps)

	slog.Debug("client configured", "server", cfg.Server, "config", a.configPath)
	return nil
}

// newLogger logs warnings and errors only unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// show activates the view behind path and prints it.
func (a *app) show(cmd *cobra.Command, path string) error {
	v, m, err := a.router.Activate(cmd.Context(), path)
	if m.Redirected {
		fmt.Fprintf(cmd.ErrOrStderr(), "no view for %q, showing %s\n", path, views.HomePath)
	}
	if err != nil {
		return err
	}
	return v.Render(cmd.OutOrStdout())
}

// confirm asks a yes/no question on the command's input. Anything but
// y or yes is a no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
