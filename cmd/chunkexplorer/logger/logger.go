// Package logger provides file-backed debug logging for the TUI. Stdout and
// stderr belong to the terminal renderer, so log output must go elsewhere.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards everything until Init enables
// file logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	filePrefix    = "chunkexplorer-"
	fileSuffix    = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.chunkexplorer/logs
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call from main() before any log calls. When
// opts.Enabled is false all output is discarded.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".chunkexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Best-effort retention sweep before opening today's file.
	pruneOldLogs(dir)

	f, err := openLogFile(dir, time.Now())
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// openLogFile opens (or creates) the dated log file for the given day.
func openLogFile(dir string, now time.Time) (*os.File, error) {
	name := filePrefix + now.Format("2006-01-02") + fileSuffix
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// pruneOldLogs removes log files older than retentionDays. Files whose name
// does not parse as a dated log are left alone.
func pruneOldLogs(dir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		dateStr := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
