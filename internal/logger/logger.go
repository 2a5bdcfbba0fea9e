// Package logger holds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// L is the process logger. It discards everything until Init enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Retention is how long daily log files are kept.
const Retention = 30 * 24 * time.Hour

const dayLayout = "2006-01-02"

// logFile is the daily file opened by Init, if any.
var logFile *os.File

// Options configures Init.
type Options struct {
	Enabled bool       // false discards all output
	LogDir  string     // daily JSON files go here; empty logs text to Console
	Console io.Writer  // text destination, os.Stderr when nil
	Level   slog.Level // minimum level, LevelInfo when zero
}

// Init replaces L according to opts. A file opened by an earlier Init is
// closed first.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	h, err := newHandler(opts, time.Now())
	if err != nil {
		return err
	}
	L = slog.New(h)
	return nil
}

func newHandler(opts Options, now time.Time) (slog.Handler, error) {
	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	ho := &slog.HandlerOptions{Level: level}

	if opts.LogDir == "" {
		w := opts.Console
		if w == nil {
			w = os.Stderr
		}
		return slog.NewTextHandler(w, ho), nil
	}

	if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
		return nil, err
	}
	pruneLogs(opts.LogDir, now)

	f, err := os.OpenFile(filepath.Join(opts.LogDir, logName(now)), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logFile = f
	return slog.NewJSONHandler(f, ho), nil
}

// Close flushes and closes the daily log file, if one is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// logName is the file name for the day of t, e.g. nicpower-2024-01-05.log.
func logName(t time.Time) string {
	return "nicpower-" + t.Format(dayLayout) + ".log"
}

// pruneLogs removes daily files older than Retention. Errors are ignored.
func pruneLogs(dir string, now time.Time) {
	matches, _ := filepath.Glob(filepath.Join(dir, "nicpower-*.log"))
	for _, path := range matches {
		base := filepath.Base(path)
		day, err := time.Parse(dayLayout, base[len("nicpower-"):len(base)-len(".log")])
		if err != nil {
			continue
		}
		if now.Sub(day) > Retention {
			_ = os.Remove(path)
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
