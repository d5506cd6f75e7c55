// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/mivalue/internal/logger"
	"go.uber.org/zap/zapcore"
)

func TestStringToLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
		ok    bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"1", zapcore.Level(-1), true},
		{"4", zapcore.Level(-4), true},
		{"0", zapcore.InfoLevel, false},
		{"-3", zapcore.InfoLevel, false},
		{"loud", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
	}
	for _, tc := range tests {
		got, err := logger.StringToLevel(tc.input)
		if (err == nil) != tc.ok {
			t.Errorf("StringToLevel %q: got error %v, want ok=%v", tc.input, err, tc.ok)
		}
		if got != tc.want {
			t.Errorf("StringToLevel %q: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLogger(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv(logger.LevelEnv, "")
		var buf bytes.Buffer
		log := logger.NewWithWriter("test", &buf)
		log.Info("visible", "n", 1)
		log.V(1).Info("hidden")
		log.Error(errors.New("bad"), "failed")
		log.Flush()

		out := buf.String()
		for _, want := range []string{"visible", `"n": 1`, "failed", `"error": "bad"`, "test"} {
			if !strings.Contains(out, want) {
				t.Errorf("Output is missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("Output has a V(1) record at info level:\n%s", out)
		}
	})

	t.Run("Verbose", func(t *testing.T) {
		t.Setenv(logger.LevelEnv, "2")
		var buf bytes.Buffer
		log := logger.NewWithWriter("test", &buf)
		log.V(2).Info("shown")
		log.V(3).Info("hidden")
		log.Flush()

		out := buf.String()
		if !strings.Contains(out, "shown") {
			t.Errorf("Output is missing V(2) record:\n%s", out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("Output has a V(3) record at level 2:\n%s", out)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv(logger.LevelEnv, "loud")
		var buf bytes.Buffer
		log := logger.NewWithWriter("test", &buf)
		log.V(1).Info("hidden")
		log.Flush()

		out := buf.String()
		if !strings.Contains(out, "ignoring log level setting") || !strings.Contains(out, logger.LevelEnv) {
			t.Errorf("Output is missing the invalid level report:\n%s", out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("Output has a V(1) record at info level:\n%s", out)
		}
	})

	t.Run("SetLevel", func(t *testing.T) {
		t.Setenv(logger.LevelEnv, "")
		var buf bytes.Buffer
		log := logger.NewWithWriter("test", &buf)
		log.SetLevel(zapcore.ErrorLevel)
		log.Info("hidden")
		log.Flush()
		if buf.Len() != 0 {
			t.Errorf("Output has an info record at error level:\n%s", buf.String())
		}
	})
}
