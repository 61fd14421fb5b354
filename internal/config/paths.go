package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds locations resolved relative to the converter executable, so
// an installed binary finds its config no matter where it is run from.
type Paths struct {
	ExecutableDir string
	ConfigFile    string
	LogsDir       string
}

// GetPaths resolves the executable directory, following symlinks
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return pathsFromDir(filepath.Dir(exe)), nil
}

func pathsFromDir(dir string) *Paths {
	return &Paths{
		ExecutableDir: dir,
		ConfigFile:    filepath.Join(dir, "converter.yaml"),
		LogsDir:       filepath.Join(dir, "logs"),
	}
}

// EnsureDirectories creates the logs directory
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.LogsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.LogsDir, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
