// Copyright (c) 2025 The semv authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase", "DEBUG", slog.LevelDebug},
		{"mixed case", "Warn", slog.LevelWarn},
		{"surrounding whitespace", "  error  ", slog.LevelError},
		{"empty defaults to info", "", slog.LevelInfo},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test", "v0.0.0", "debug")
	if logger == nil {
		t.Fatal("NewStructuredLogger returned nil")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug level logger should have debug enabled")
	}

	logger = NewStructuredLogger("test", "v0.0.0", "error")
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("error level logger should not have info enabled")
	}
}

func TestNewLogLogger(t *testing.T) {
	logger := NewLogLogger(slog.LevelInfo, false)
	if logger == nil {
		t.Fatal("NewLogLogger returned nil")
	}
}
