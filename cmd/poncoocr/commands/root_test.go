package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	options "poncoocr/config"
	"poncoocr/domain/entities"
	domainerrors "poncoocr/domain/errors"
	"poncoocr/infrastructure/config"
	"poncoocr/test/helpers"
)

func execute(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	reg, err := options.NewDefaultRegistry(dataDir)
	require.NoError(t, err)

	var logs bytes.Buffer
	container := config.NewContainer(reg, dataDir, &logs)

	rootCmd, err := NewRootCommand(container)
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "/data", "config", "-o", "json", "--batch_size", "128")
	require.NoError(t, err)

	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, float64(5), cfg["k_candidates"])
	assert.Equal(t, float64(128), cfg["batch_size"])
	assert.Nil(t, cfg["learning_rate"])
	assert.Equal(t, float64(1024), cfg["embedding_size"])
	assert.Equal(t, "/data/sprites/", cfg["sprite_dir"])
	assert.Equal(t, "/data", cfg["data_dir"])
}

func TestConfigCommand_InvalidOption(t *testing.T) {
	_, err := execute(t, "/data", "config", "--k_candidates", "0")
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestConfigCommand_InvalidOutput(t *testing.T) {
	_, err := execute(t, "/data", "config", "-o", "xml")
	assert.Error(t, err)
}

func TestFlagsCommand(t *testing.T) {
	out, err := execute(t, "/data", "flags", "-o", "json")
	require.NoError(t, err)

	var views []optionView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 8)

	assert.Equal(t, options.KCandidates, views[0].Name)
	assert.Equal(t, "int", views[0].Type)
	assert.Equal(t, float64(5), views[0].Default)
	assert.Equal(t, options.LearningRate, views[2].Name)
	assert.Equal(t, "float", views[2].Type)
	assert.Nil(t, views[2].Default)
	assert.Equal(t, options.ModelArch, views[6].Name)
	assert.Equal(t, "path", views[6].Type)
	assert.Equal(t, "/data/model/default-architecture.yaml", views[6].Default)
}

func TestConstantsCommand(t *testing.T) {
	out, err := execute(t, "/data", "constants")
	require.NoError(t, err)

	assert.Contains(t, out, "label_meta_file: label_meta.proto")
	assert.Contains(t, out, "embedding_size: 1024")
	assert.Contains(t, out, "- batch_labels")
	assert.Contains(t, out, "- batch_features")
	assert.Contains(t, out, "- embedding_input")
}

func TestCheckCommand(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		dataDir := helpers.TempDataDir(t, helpers.FullLayout)

		out, err := execute(t, dataDir, "check", "--strict", "-o", "json")
		require.NoError(t, err)

		var report entities.PathReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Len(t, report.Paths, 4)
		assert.True(t, report.OK())
	})

	t.Run("missing without strict", func(t *testing.T) {
		dataDir := helpers.TempDataDir(t, helpers.DataDirLayout{TestData: true})

		out, err := execute(t, dataDir, "check", "-o", "json")
		require.NoError(t, err)

		var report entities.PathReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Len(t, report.Invalid(), 3)
	})

	t.Run("missing with strict", func(t *testing.T) {
		dataDir := helpers.TempDataDir(t, helpers.DataDirLayout{})

		_, err := execute(t, dataDir, "check", "--strict")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4 of 4 paths are invalid")
	})
}

func TestVersionCommand(t *testing.T) {
	// An invalid option must not matter to version.
	out, err := execute(t, "/data", "version", "--k_candidates", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "OS/Arch:")
}
