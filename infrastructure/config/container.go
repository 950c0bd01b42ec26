package config

import (
	"io"

	"github.com/spf13/pflag"
	"poncoocr/application/usecases"
	options "poncoocr/config"
	"poncoocr/domain/interfaces"
	"poncoocr/infrastructure/logger"
)

// Container represents the dependency injection container
type Container struct {
	DataDir  string
	Registry *options.Registry
	Config   *Config

	// Infrastructure
	Logger    interfaces.Logger
	LogOutput io.Writer

	// Use Cases
	InspectPathsUseCase interfaces.InspectPathsUseCase
}

// NewContainer creates a container around an already populated registry.
// The logger starts at info level until Load resolves the configured one.
func NewContainer(reg *options.Registry, dataDir string, logOutput io.Writer) *Container {
	c := &Container{
		DataDir:   dataDir,
		Registry:  reg,
		LogOutput: logOutput,
	}
	c.Logger = logger.NewLogrusLogger(LogLevelInfo, LogFormatText, logOutput)
	c.initUseCases()
	return c
}

// Load resolves the configuration and rebuilds the logger and use cases from it.
func (c *Container) Load(flags *pflag.FlagSet, configPath string) error {
	cfg, err := LoadConfig(c.Registry, flags, configPath)
	if err != nil {
		return err
	}
	cfg.DataDir = c.DataDir
	c.Config = cfg

	c.Logger = logger.NewLogrusLogger(cfg.LogLevel, cfg.LogFormat, c.LogOutput)
	c.initUseCases()

	c.Logger.Debug("Configuration loaded",
		"dataDir", cfg.DataDir,
		"kCandidates", cfg.KCandidates,
		"embeddingSize", cfg.EmbeddingSize)
	return nil
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	c.InspectPathsUseCase = usecases.NewInspectPathsUseCase(c.Logger)
}
