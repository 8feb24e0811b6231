// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Notifier shows short, non-blocking messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// WriterNotifier prints notifications, one per line.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "✓ "+msg)
}

func (n *WriterNotifier) Error(msg string) {
	slog.Debug("notify error", "message", msg)

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "✗ "+msg)
}
