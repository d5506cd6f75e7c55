// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package logger constructs the structured logger used by command-line tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv is the environment variable consulted for the initial log level.
const LevelEnv = "MI2JSON_LOG_LEVEL"

var levelStrings = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"error": zap.ErrorLevel,
}

// A Logger is a logr.Logger backed by zap, writing human-readable records.
type Logger struct {
	logr.Logger
	atomicLevel zap.AtomicLevel
	flush       func()
}

// New returns a logger with the given name writing to stderr.
func New(name string) *Logger { return NewWithWriter(name, zapcore.Lock(os.Stderr)) }

// NewWithWriter returns a logger with the given name writing to w.
// The level is taken from LevelEnv if it is set, and otherwise defaults
// to info. An invalid level is reported to the log and ignored.
func NewWithWriter(name string, w io.Writer) *Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	atomicLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zapLogger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), atomicLevel))

	l := &Logger{
		Logger:      zapr.NewLogger(zapLogger).WithName(name),
		atomicLevel: atomicLevel,
		flush:       func() { _ = zapLogger.Sync() },
	}
	if v, ok := os.LookupEnv(LevelEnv); ok && v != "" {
		if level, err := StringToLevel(v); err != nil {
			l.Error(err, "ignoring log level setting", "env", LevelEnv)
		} else {
			l.SetLevel(level)
		}
	}
	return l
}

// SetLevel sets the minimum level of records written by l.
func (l *Logger) SetLevel(level zapcore.Level) { l.atomicLevel.SetLevel(level) }

// Flush writes any buffered records.
func (l *Logger) Flush() { l.flush() }

// StringToLevel parses a log level. The value is either a level name
// ("debug", "info", "error") or a positive integer giving the logr
// verbosity to enable.
func StringToLevel(value string) (zapcore.Level, error) {
	if level, ok := levelStrings[strings.ToLower(value)]; ok {
		return level, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 || v > 127 {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", value)
	}
	return zapcore.Level(int8(-v)), nil // zap levels run opposite to logr verbosity
}
