// Package config provides configuration management for the hygiene checks.
package config

import (
	"fmt"
	"strings"

	"github.com/lerenn/code-hygiene/pkg/ignore"
)

// FileName is the per-project configuration file looked up in the root.
const FileName = ".hygiene.yaml"

// Config represents the hygiene configuration.
type Config struct {
	SkipDirs         []string       `yaml:"skip_dirs"`
	RespectGitignore bool           `yaml:"respect_gitignore"`
	Conventions      Conventions    `yaml:"conventions"`
	Ignore           ignore.Rules   `yaml:"ignore"`
	Untested         UntestedConfig `yaml:"untested"`
	Unused           UnusedConfig   `yaml:"unused"`
}

// Conventions describes the naming conventions of the checked project.
type Conventions struct {
	SourceDir         string   `yaml:"source_dir"`
	Alias             string   `yaml:"alias"`
	IndexFile         string   `yaml:"index_file"`
	TestSuffix        string   `yaml:"test_suffix"`
	DeclarationSuffix string   `yaml:"declaration_suffix"`
	ResolveExtensions []string `yaml:"resolve_extensions"`
}

// UntestedConfig configures the missing-test check.
type UntestedConfig struct {
	Extensions []string     `yaml:"extensions"`
	Ignore     ignore.Rules `yaml:"ignore"`
}

// UnusedConfig configures the unused-file and orphaned-test checks.
type UnusedConfig struct {
	Extensions   []string     `yaml:"extensions"`
	EntryPoints  EntryPoints  `yaml:"entry_points"`
	Ignore       ignore.Rules `yaml:"ignore"`
	OrphanIgnore ignore.Rules `yaml:"orphan_ignore"`
}

// EntryPoints lists files used without being imported.
// Globs are matched relative to the project root.
type EntryPoints struct {
	Files []string `yaml:"files"`
	Globs []string `yaml:"globs"`
}

// UntestedRules returns the shared ignore rules extended for the missing-test check.
func (c *Config) UntestedRules() ignore.Rules {
	return c.Ignore.Merge(c.Untested.Ignore)
}

// UnusedRules returns the shared ignore rules extended for the unused-file check.
func (c *Config) UnusedRules() ignore.Rules {
	return c.Ignore.Merge(c.Unused.Ignore)
}

// OrphanRules returns the shared ignore rules extended for the orphaned-test check.
func (c *Config) OrphanRules() ignore.Rules {
	return c.Ignore.Merge(c.Unused.OrphanIgnore)
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	conv := c.Conventions
	for name, value := range map[string]string{
		"conventions.source_dir":  conv.SourceDir,
		"conventions.alias":       conv.Alias,
		"conventions.index_file":  conv.IndexFile,
		"conventions.test_suffix": conv.TestSuffix,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidConfig, name)
		}
	}

	if err := validateExtensions("conventions.resolve_extensions", conv.ResolveExtensions); err != nil {
		return err
	}
	if err := validateExtensions("untested.extensions", c.Untested.Extensions); err != nil {
		return err
	}
	if err := validateExtensions("unused.extensions", c.Unused.Extensions); err != nil {
		return err
	}

	for name, rules := range map[string]ignore.Rules{
		"untested": c.UntestedRules(),
		"unused":   c.UnusedRules(),
		"orphans":  c.OrphanRules(),
	} {
		if _, err := ignore.NewMatcher(rules); err != nil {
			return fmt.Errorf("%w: %s rules: %w", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

func validateExtensions(name string, exts []string) error {
	if len(exts) == 0 {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidConfig, name)
	}
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %s: %q must start with a dot", ErrInvalidConfig, name, ext)
		}
	}
	return nil
}
