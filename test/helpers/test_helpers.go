package helpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// DataDirLayout describes which parts of a data directory to create.
type DataDirLayout struct {
	TestData  bool
	TrainData bool
	ModelArch bool
	Sprites   bool
}

// FullLayout creates every location the default options point at.
var FullLayout = DataDirLayout{TestData: true, TrainData: true, ModelArch: true, Sprites: true}

// TempDataDir creates a data directory under t.TempDir() populated according to layout.
func TempDataDir(t *testing.T, layout DataDirLayout) string {
	t.Helper()

	dir := t.TempDir()
	if layout.TestData {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "char-dataset", "test_data"), 0o755))
	}
	if layout.TrainData {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "char-dataset", "train_data"), 0o755))
	}
	if layout.ModelArch {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "model"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "model", "default-architecture.yaml"),
			[]byte("layers: []\n"), 0o600))
	}
	if layout.Sprites {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sprites"), 0o755))
	}
	return dir
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
