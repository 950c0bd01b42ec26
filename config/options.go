package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	domainerrors "poncoocr/domain/errors"
)

// Locations below the data directory.
const (
	testDataPath  = "char-dataset/test_data"
	trainDataPath = "char-dataset/train_data"
	modelArchPath = "model/default-architecture.yaml"
	spritesPath   = "sprites/"
)

// NewDefaultRegistry builds the registry holding every poncoocr option, with
// path defaults rooted at dataDir. It is meant to be called once at start-up.
func NewDefaultRegistry(dataDir string) (*Registry, error) {
	reg := NewRegistry()
	if err := DefineOptions(reg, dataDir); err != nil {
		return nil, err
	}
	return reg, nil
}

// DefineOptions registers the numeric and path options on reg.
func DefineOptions(reg *Registry, dataDir string) error {
	paths := []struct {
		name, rel, help string
		expect          PathExpect
	}{
		{TestDir, testDataPath, "Path to the directory storing test data.", ExpectDir},
		{TrainDir, trainDataPath, "Path to the directory storing train data.", ExpectDir},
		{ModelArch, modelArchPath, "Path to the file describing the model architecture.", ExpectFile},
		{SpriteDir, spritesPath, "Path to the directory storing data sprites and their metadata.", ExpectDir},
	}

	opts := []Option{
		{Name: KCandidates, Kind: KindInt, Default: DefaultKCandidates, Help: "Number of candidate classes to predict."},
		{Name: BatchSize, Kind: KindInt, Help: "Batch size which will be used for training."},
		{Name: LearningRate, Kind: KindFloat, Help: "Learning rate parameter used for training."},
		{Name: EmbeddingSize, Kind: KindInt, Default: DefaultEmbeddingSize, Help: "Number of images passed to the embedding."},
	}
	for _, p := range paths {
		def, err := JoinDataPath(dataDir, p.rel)
		if err != nil {
			return domainerrors.NewConfigError(p.name, err)
		}
		opts = append(opts, Option{Name: p.name, Kind: KindPath, Default: def, Help: p.help, Expect: p.expect})
	}

	for _, opt := range opts {
		if err := reg.Register(opt); err != nil {
			return err
		}
	}
	return nil
}

// JoinDataPath appends rel to the data directory. It is a plain string join:
// nothing is cleaned and a trailing separator on rel is kept.
func JoinDataPath(dataDir, rel string) (string, error) {
	if dataDir == "" {
		return "", errors.Wrapf(domainerrors.ErrMissingDataDir, "cannot derive %q", rel)
	}
	if strings.HasSuffix(dataDir, string(os.PathSeparator)) {
		return dataDir + rel, nil
	}
	return dataDir + string(os.PathSeparator) + rel, nil
}
