package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "tenprint.log"
	maxLogSize  = 10 << 20
)

// logStderr receives warnings when debug logging is off
var logStderr io.Writer = os.Stderr

// setupLogging routes the standard logrus logger to logs/tenprint.log when debug is set
// and sends only warnings and errors to stderr otherwise. A log over maxLogSize is
// rotated aside first. Returns the open file for the caller to close, or nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		warnOnly()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		warnOnly()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("tenprint-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		warnOnly()
		return nil
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return f
}

func warnOnly() {
	logrus.SetOutput(logStderr)
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
}
