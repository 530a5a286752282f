package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lerenn/code-hygiene/configs"
	"github.com/lerenn/code-hygiene/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockmanager.gen.go -package=config

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads the file at configPath on top of the defaults.
	LoadConfig(configPath string) (*Config, error)
	// DefaultConfig returns the embedded default configuration.
	DefaultConfig() *Config
	// ResolveConfig picks the configuration for a project root: the explicit
	// path if given, else the root's config file if present, else the defaults.
	// It also returns the path loaded, empty for the defaults.
	ResolveConfig(root, explicitPath string) (*Config, string, error)
	// WriteDefault writes the embedded default configuration to path.
	WriteDefault(path string) error
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fsys fs.FS) Manager {
	if fsys == nil {
		fsys = fs.NewFS()
	}
	return &realManager{fs: fsys}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	exists, err := c.fs.Exists(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	data, err := c.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := decode(data, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileParse, configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() *Config {
	var config Config
	if err := decode(configs.DefaultConfigYAML, &config); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return &config
}

// ResolveConfig returns the configuration that applies to root.
func (c *realManager) ResolveConfig(root, explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		config, err := c.LoadConfig(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return config, explicitPath, nil
	}

	projectPath := filepath.Join(root, FileName)
	exists, err := c.fs.Exists(projectPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check config file: %w", err)
	}
	if exists {
		config, err := c.LoadConfig(projectPath)
		if err != nil {
			return nil, "", err
		}
		return config, projectPath, nil
	}

	return c.DefaultConfig(), "", nil
}

// WriteDefault writes the embedded default configuration to path.
func (c *realManager) WriteDefault(path string) error {
	if err := c.fs.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// decode unmarshals data into config, rejecting unknown keys.
// Keys absent from data keep the value already in config.
func decode(data []byte, config *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
