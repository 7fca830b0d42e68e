/*
Copyright © 2025 The semv authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"testing"
)

func TestCheckCommand(t *testing.T) {
	var result CheckResult
	if err := runToJSON(t, &result, "check", "1.0.0", "1.0", "1.0.1b", "01.2.3"); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if result.Summary.Total != 4 {
		t.Errorf("Summary.Total = %d, want 4", result.Summary.Total)
	}
	if result.Summary.Valid != 2 {
		t.Errorf("Summary.Valid = %d, want 2", result.Summary.Valid)
	}
	if result.Summary.Invalid != 2 {
		t.Errorf("Summary.Invalid = %d, want 2", result.Summary.Invalid)
	}

	wantValid := map[string]bool{
		"1.0.0":  true,
		"1.0":    false,
		"1.0.1b": true,
		"01.2.3": false,
	}
	for _, entry := range result.Results {
		want, ok := wantValid[entry.Input]
		if !ok {
			t.Errorf("unexpected entry for input %q", entry.Input)
			continue
		}
		if entry.Valid != want {
			t.Errorf("entry %q Valid = %v, want %v", entry.Input, entry.Valid, want)
		}
		if entry.Valid && entry.Error != "" {
			t.Errorf("entry %q has error %q despite being valid", entry.Input, entry.Error)
		}
		if !entry.Valid && entry.Error == "" {
			t.Errorf("entry %q is invalid but carries no error", entry.Input)
		}
		if entry.Valid && entry.Version == nil {
			t.Errorf("entry %q is valid but carries no decomposed version", entry.Input)
		}
	}
}

func TestCheckCommandDecomposition(t *testing.T) {
	var result CheckResult
	if err := runToJSON(t, &result, "check", "1.0.10rc.1+build.7"); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if len(result.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(result.Results))
	}
	v := result.Results[0].Version
	if v == nil {
		t.Fatal("expected decomposed version, got nil")
	}
	if v.Major != 1 || v.Minor != 0 || v.Patch != 10 {
		t.Errorf("core = %d.%d.%d, want 1.0.10", v.Major, v.Minor, v.Patch)
	}
	if v.Prerelease != "rc.1" {
		t.Errorf("Prerelease = %q, want %q", v.Prerelease, "rc.1")
	}
	if v.Build != "build.7" {
		t.Errorf("Build = %q, want %q", v.Build, "build.7")
	}
}

func TestCheckCommandFailOnError(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "invalid input without flag succeeds",
			args:    []string{"check", "1.0"},
			wantErr: false,
		},
		{
			name:    "invalid input with flag fails",
			args:    []string{"check", "--fail-on-error", "1.0"},
			wantErr: true,
		},
		{
			name:    "all valid with flag succeeds",
			args:    []string{"check", "--fail-on-error", "1.0.0", "2.0.0-beta"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result CheckResult
			err := runToJSON(t, &result, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("check error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
