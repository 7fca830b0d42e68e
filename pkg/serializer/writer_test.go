package serializer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/semv/pkg/serializer"
)

type testReport struct {
	Name  string
	Value int
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatJSON, &buf)

	data := []testReport{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatYAML, &buf)

	data := testReport{Name: "test1", Value: 123}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if result != data {
		t.Errorf("Round-trip mismatch: got %+v, want %+v", result, data)
	}
}

func TestWriterSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.FormatTable, &buf)

	data := testReport{Name: "test1", Value: 123}

	if err := writer.Serialize(t.Context(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") {
		t.Errorf("table output missing header: %q", out)
	}
	if !strings.Contains(out, "Name") || !strings.Contains(out, "test1") {
		t.Errorf("table output missing flattened field: %q", out)
	}
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := serializer.NewWriter(serializer.Format("xml"), &buf)

	if err := writer.Serialize(t.Context(), testReport{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("fallback output is not JSON: %v", err)
	}
}

func TestWriterCloseIdempotent(t *testing.T) {
	writer := serializer.NewStdoutWriter(serializer.FormatJSON)
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"json", false},
		{"yaml", false},
		{"table", false},
		{"xml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := serializer.Format(tt.format).IsUnknown(); got != tt.want {
				t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
