package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(paths.ExecutableDir))
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "converter.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)
}

func TestEnsureDirectories(t *testing.T) {
	paths := pathsFromDir(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())
	info, err := os.Stat(paths.LogsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op
	assert.NoError(t, paths.EnsureDirectories())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "converter.yaml")
	require.NoError(t, os.WriteFile(file, []byte("layout: {}\n"), 0o600))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "missing.yaml"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileExists(tt.path))
		})
	}
}
