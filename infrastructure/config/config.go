// Package config loads the poncoocr configuration from the option registry,
// config files, environment variables and flags, and sets up the DI container.
package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	options "poncoocr/config"
	"poncoocr/domain/entities"
	domainerrors "poncoocr/domain/errors"
)

// EnvPrefix is prepended to every option name to form its environment variable.
const EnvPrefix = "PONCOOCR"

// Ambient keys that are not part of the option registry.
const (
	LogLevelKey  = "log_level"
	LogFormatKey = "log_format"
)

// Log levels and formats accepted by the logger.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the resolved pipeline configuration. It is built once at
// start-up and handed to consumers by pointer.
type Config struct {
	KCandidates   int      `mapstructure:"k_candidates" json:"k_candidates"`
	BatchSize     *int     `mapstructure:"batch_size" json:"batch_size"`
	LearningRate  *float64 `mapstructure:"learning_rate" json:"learning_rate"`
	EmbeddingSize int      `mapstructure:"embedding_size" json:"embedding_size"`

	TestDir   string `mapstructure:"test_dir" json:"test_dir"`
	TrainDir  string `mapstructure:"train_dir" json:"train_dir"`
	ModelArch string `mapstructure:"model_arch" json:"model_arch"`
	SpriteDir string `mapstructure:"sprite_dir" json:"sprite_dir"`

	LogLevel  string `mapstructure:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" json:"log_format"`

	// DataDir is the base the path defaults were derived from.
	DataDir string `mapstructure:"-" json:"data_dir"`
}

// LoadConfig resolves the configuration for every option in reg.
// Precedence: flags > environment > config file > registry defaults.
// flags may be nil; configPath may be empty, in which case poncoocr.{yaml,toml,json}
// is searched for and its absence is not an error.
func LoadConfig(reg *options.Registry, flags *pflag.FlagSet, configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	for name, def := range reg.Defaults() {
		v.SetDefault(name, def)
	}
	v.SetDefault(LogLevelKey, LogLevelInfo)
	v.SetDefault(LogFormatKey, LogFormatText)

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("poncoocr")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/poncoocr")
	}

	// Enable environment variables.
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows; options without a
	// default must be bound so Unmarshal sees them.
	for _, opt := range reg.Options() {
		if err := v.BindEnv(opt.Name); err != nil {
			return nil, configError(opt.Name, fmt.Errorf("failed to bind env: %w", err))
		}
	}

	if flags != nil {
		if err := bindFlags(v, reg, flags); err != nil {
			return nil, configError("", err)
		}
	}

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file was found by searching; an explicit path must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, configError("", fmt.Errorf("failed to read config file: %w", err))
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, configError("", fmt.Errorf("failed to unmarshal config: %w", err))
	}

	// Flag defaults leak into Unmarshal; options without a default stay unset
	// until a source actually provides them.
	if !v.IsSet(options.BatchSize) {
		config.BatchSize = nil
	}
	if !v.IsSet(options.LearningRate) {
		config.LearningRate = nil
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, configError("", err)
	}

	return &config, nil
}

func bindFlags(v *viper.Viper, reg *options.Registry, flags *pflag.FlagSet) error {
	for _, opt := range reg.Options() {
		if f := flags.Lookup(opt.Name); f != nil {
			if err := v.BindPFlag(opt.Name, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", opt.Name, err)
			}
		}
	}

	ambient := map[string]string{
		LogLevelKey:  options.LogLevelFlag,
		LogFormatKey: options.LogFormatFlag,
	}
	for key, flag := range ambient {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}
	return nil
}

func configError(option string, err error) error {
	return domainerrors.NewConfigError(option, fmt.Errorf("%w: %w", domainerrors.ErrConfiguration, err))
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.KCandidates, validation.Required, validation.Min(1)),
		validation.Field(&c.BatchSize, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&c.LearningRate, validation.NilOrNotEmpty, validation.Min(0.0).Exclusive()),
		validation.Field(&c.EmbeddingSize, validation.Required, validation.Min(1)),
		validation.Field(&c.TestDir, validation.Required),
		validation.Field(&c.TrainDir, validation.Required),
		validation.Field(&c.ModelArch, validation.Required),
		validation.Field(&c.SpriteDir, validation.Required),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&c.LogFormat,
			validation.Required,
			validation.In(LogFormatText, LogFormatJSON),
		),
	)
}

// Paths returns the path options keyed by option name.
func (c *Config) Paths() map[string]string {
	return map[string]string{
		options.TestDir:   c.TestDir,
		options.TrainDir:  c.TrainDir,
		options.ModelArch: c.ModelArch,
		options.SpriteDir: c.SpriteDir,
	}
}

// PathTargets pairs every path option of reg with its configured value.
func (c *Config) PathTargets(reg *options.Registry) []entities.PathTarget {
	paths := c.Paths()

	var targets []entities.PathTarget
	for _, opt := range reg.Options() {
		if opt.Kind != options.KindPath {
			continue
		}
		expected := entities.PathKindDir
		if opt.Expect == options.ExpectFile {
			expected = entities.PathKindFile
		}
		targets = append(targets, entities.PathTarget{
			Option:   opt.Name,
			Path:     paths[opt.Name],
			Expected: expected,
		})
	}
	return targets
}
