// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldClass    = "class"
	FieldProperty = "property"
	FieldFile     = "file"
	FieldCount    = "count"
)

// Logger is the global logger. It is a no-op until Initialize is called,
// so packages can log before the CLI has parsed its flags.
var Logger = zap.NewNop()

// Initialize replaces the global logger. verbose enables debug output;
// jsonOutput selects zap's production JSON encoding instead of the console encoder.
// Logs go to stderr so generated output on stdout stays clean.
func Initialize(verbose, jsonOutput bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		l, err := config.Build()
		if err != nil {
			return err
		}
		Logger = l
		return nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	))
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
