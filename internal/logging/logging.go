// Package logging builds the zap logger shared by every PawsMatch component.
//
// The TUI owns the terminal, so log output only ever goes to a file. An empty
// path yields a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp layout written by the file encoder.
const TimeLayout = "2006-01-02 15:04:05"

// Separator sits between the console encoder's columns.
const Separator = " | "

// ParseLevel maps a config string onto a zap level. Unknown values mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New opens logFile for appending and returns a logger writing to it along
// with a function that flushes and closes the file.
func New(level, logFile string) (*zap.Logger, func(), error) {
	if strings.TrimSpace(logFile) == "" {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(EncoderConfig()),
		zapcore.AddSync(file),
		ParseLevel(level),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}

// EncoderConfig is the console encoder layout the activity view parses back.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = Separator
	return cfg
}
