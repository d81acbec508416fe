package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	logDir      = "logs"
	logFileName = "ascii-read.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog to logs/ascii-read.log when debug is set and discards it otherwise
// Stdout is the drawing surface, so logs never go there
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(tint.NewHandler(io.Discard, nil)))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create log directory: %v\n", err)
		slog.SetDefault(slog.New(tint.NewHandler(io.Discard, nil)))
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		slog.SetDefault(slog.New(tint.NewHandler(io.Discard, nil)))
		return nil
	}

	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.DateTime,
		NoColor:    true,
	})))
	slog.Info("logging started", "pid", os.Getpid())
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := strings.TrimSuffix(logPath, ".log") + "-" + stamp + ".log"
	if err := os.Rename(logPath, rotated); err != nil {
		fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
	}
}
