// Package logging provides component-scoped loggers for the dashboard.
// The TUI owns the terminal, so logs default to a file sink under the
// user data directory.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.Mutex
	root   = logrus.New()
	inited bool
)

// Options configures the shared logger.
type Options struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	// PAIID_LOG_LEVEL overrides it.
	Level string
	// FilePath is the log file path. Empty selects the default path
	// under the user data directory.
	FilePath string
	// Stderr mirrors logs to stderr instead of a file (one-shot
	// commands, tests).
	Stderr bool
}

// DefaultLogPath returns the default log file location.
func DefaultLogPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "paiid", "paiid.log")
}

// Init configures the shared logger. Calling it again reconfigures.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level := opts.Level
	if env := os.Getenv("PAIID_LOG_LEVEL"); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	root.SetLevel(parsed)

	var out io.Writer
	if opts.Stderr {
		out = os.Stderr
	} else {
		path := opts.FilePath
		if path == "" {
			path = DefaultLogPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		out = f
	}
	root.SetOutput(out)
	root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	inited = true
	return nil
}

// NewLogger returns a logger tagged with the given component name.
// Before Init, output goes to logrus defaults (stderr).
func NewLogger(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()
	return root.WithField("component", component)
}

// SetLevel changes the minimum level at runtime (config hot reload).
// PAIID_LOG_LEVEL still wins; unknown levels are ignored.
func SetLevel(level string) {
	if os.Getenv("PAIID_LOG_LEVEL") != "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	root.SetLevel(parsed)
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root.SetOutput(w)
}
