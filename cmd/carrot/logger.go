package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// nopCloser closes nothing.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger opens the session log. The TUI owns the terminal, so logs go to
// a file or nowhere.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if path != "" {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", expanded, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "carrot",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
