package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	domainerrors "poncoocr/domain/errors"
)

// DataDirEnv overrides the base directory of the path defaults.
const DataDirEnv = "PONCOOCR_DATA_DIR"

// defaultDataDir is the data package shipped next to the pipeline.
const defaultDataDir = "data"

// ResolveDataDir returns the base directory for the path option defaults.
// The environment override wins over DefaultDataDir.
func ResolveDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the absolute form of ./data.
func DefaultDataDir() (string, error) {
	dir, err := filepath.Abs(defaultDataDir)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrMissingDataDir, err.Error())
	}
	return dir, nil
}
