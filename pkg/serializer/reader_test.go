package serializer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/semv/pkg/serializer"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want serializer.Format
	}{
		{"versions.json", serializer.FormatJSON},
		{"versions.yaml", serializer.FormatYAML},
		{"versions.yml", serializer.FormatYAML},
		{"versions.YAML", serializer.FormatYAML},
		{"report.txt", serializer.FormatTable},
		{"no-extension", serializer.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, serializer.FormatFromPath(tt.path))
		})
	}
}

func TestReaderDeserializeJSON(t *testing.T) {
	reader, err := serializer.NewReader(serializer.FormatJSON, strings.NewReader(`["1.0.0","1.0.0-rc.1"]`))
	require.NoError(t, err)

	var versions []string
	require.NoError(t, reader.Deserialize(&versions))
	assert.Equal(t, []string{"1.0.0", "1.0.0-rc.1"}, versions)
}

func TestReaderDeserializeYAML(t *testing.T) {
	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader("- 1.0.0\n- 1.0.0-rc.1\n"))
	require.NoError(t, err)

	var versions []string
	require.NoError(t, reader.Deserialize(&versions))
	assert.Equal(t, []string{"1.0.0", "1.0.0-rc.1"}, versions)
}

func TestReaderRejectsTableFormat(t *testing.T) {
	_, err := serializer.NewReader(serializer.FormatTable, strings.NewReader(""))
	require.Error(t, err)

	_, err = serializer.NewFileReader(serializer.FormatTable, "whatever.txt")
	require.Error(t, err)
}

func TestReaderRejectsUnknownFormat(t *testing.T) {
	_, err := serializer.NewReader(serializer.Format("xml"), strings.NewReader(""))
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 1.0.0\n- 0.9.0\n"), 0o600))

	versions, err := serializer.FromFile[[]string](path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0.0", "0.9.0"}, *versions)
}

func TestFromFileMissing(t *testing.T) {
	_, err := serializer.FromFile[[]string](filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestFromReader(t *testing.T) {
	versions, err := serializer.FromReader[[]string](serializer.FormatJSON, strings.NewReader(`["2.0.0"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0.0"}, *versions)
}

func TestReaderCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	reader, err := serializer.NewFileReader(serializer.FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	require.NoError(t, reader.Close())
}
