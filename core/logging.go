package core

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	LogFileName = "kitty-run.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// SetupLogging points log and slog at dir/kitty-run.log when debug is set and discards
// them otherwise. The terminal owns stdout and stderr, so logs never go there.
// An existing file over MaxLogSize is renamed with a timestamp suffix first.
// Returns nil when logging is disabled; the caller closes the file
func SetupLogging(dir string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("kitty-run_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("rotating log file: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("logging started", "pid", os.Getpid())
	return f, nil
}
