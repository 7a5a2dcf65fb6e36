package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crosscorrelate.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 128, cfg.ChunkSize)
	assert.Equal(t, "binary", cfg.Kind)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
chunk_size = 16
kind = "text"
top = 5
max_values_per_bucket = 4
decompress = "snappy"
mmap = true
log_level = "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.ChunkSize)
	assert.Equal(t, "text", cfg.Kind)
	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, 4, cfg.MaxValuesPerBucket)
	assert.Equal(t, "snappy", cfg.Decompress)
	assert.True(t, cfg.Mmap)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		invalidArg bool
	}{
		{"Zero Chunk Size", "chunk_size = 0", true},
		{"Negative Top", "top = -1", true},
		{"Negative Cap", "max_values_per_bucket = -2", true},
		{"Malformed", "chunk_size = ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
			if tc.invalidArg {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFillsBlanks(t *testing.T) {
	cfg := &Config{ChunkSize: 4}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultKind, cfg.Kind)
	assert.Equal(t, "none", cfg.Decompress)
}
