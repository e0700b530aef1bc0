package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"100", 100},
		{"100B", 100},
		{"1KB", 1024},
		{"1K", 1024},
		{"5MB", 5 * 1024 * 1024},
		{"5M", 5 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"1G", 1024 * 1024 * 1024},
		{"1.5MB", int(1.5 * 1024 * 1024)},
		{" 10 MB ", 10 * 1024 * 1024},
		{"500kb", 500 * 1024},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		require.NoError(t, err, "ParseSize(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseSize(%q)", tt.input)
	}
}

func TestParseSizeErrors(t *testing.T) {
	for _, input := range []string{"invalid", "-5MB", "5TB", "0", "", "MB"} {
		_, err := ParseSize(input)
		assert.Error(t, err, "ParseSize(%q)", input)
	}
}

func TestLoadLimitsDefaults(t *testing.T) {
	t.Setenv(EnvMaxSize, "")
	t.Setenv(EnvMaxFileSize, "")

	limits, err := LoadLimits(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxSize, limits.MaxSize)
	assert.Equal(t, DefaultMaxFileSize, limits.MaxFileSize)
}

func TestLoadLimitsOverrides(t *testing.T) {
	t.Setenv(EnvMaxSize, "10MB")
	t.Setenv(EnvMaxFileSize, "1MB")

	limits, err := LoadLimits(nil)
	require.NoError(t, err)
	assert.Equal(t, 10*1024*1024, limits.MaxSize)
	assert.Equal(t, 1024*1024, limits.MaxFileSize)
}

func TestLoadLimitsMalformed(t *testing.T) {
	t.Setenv(EnvMaxSize, "lots")

	_, err := LoadLimits(nil)
	assert.Error(t, err)
}
