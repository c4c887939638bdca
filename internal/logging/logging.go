// Package logging builds the application's structured logger. The terminal
// belongs to the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
)

// New returns a logger writing to path, plus a function that closes the
// file. Bubble Tea's own debug output is routed to the same file. An empty
// path yields a logger that discards everything.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "tea")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
