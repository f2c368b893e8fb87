package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log     = logrus.New()
	logFile *os.File
	mu      sync.Mutex
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
)

// Init opens the log file under ~/.config/glimpse and points logrus at it.
// The TUI owns the terminal, so nothing may ever be written to stderr.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".config", "glimpse")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "glimpse.log")

	// Rotate by renaming to .old once the file grows past the cap
	if info, err := os.Stat(logPath); err == nil {
		if info.Size() > maxLogSize {
			oldPath := logPath + ".old"
			os.Remove(oldPath)
			os.Rename(logPath, oldPath)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	logFile = file
	log.SetOutput(file)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
		log.SetOutput(io.Discard)
	}
}

// Disable silences logging (useful for tests)
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(io.Discard)
}

// Info logs an informational message
func Info(format string, args ...any) {
	log.Infof(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	log.Errorf(format, args...)
}
