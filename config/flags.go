// Package config declares the poncoocr option registry, the shared pipeline
// constants and the names of the command-line flags.
package config

// Flag constants for CLI commands.
const (
	// LogLevelFlag is the flag for setting log level.
	LogLevelFlag      = "log-level"
	ShortLogLevelFlag = "l"

	// LogFormatFlag is the flag for the log output format (text, json).
	LogFormatFlag = "log-format"

	// ConfigFileFlag is the flag for specifying config file.
	ConfigFileFlag      = "config"
	ShortConfigFileFlag = "c"

	// OutputTypeFlag is the flag for output format.
	OutputTypeFlag      = "output"
	ShortOutputTypeFlag = "o"
)

// Option names. They double as flag names, config file keys and, upper-cased
// with the PONCOOCR_ prefix, environment variable names.
const (
	KCandidates   = "k_candidates"
	BatchSize     = "batch_size"
	LearningRate  = "learning_rate"
	EmbeddingSize = "embedding_size"
	TestDir       = "test_dir"
	TrainDir      = "train_dir"
	ModelArch     = "model_arch"
	SpriteDir     = "sprite_dir"
)
