package base

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/code-hygiene/pkg/config"
	"github.com/lerenn/code-hygiene/pkg/fs"
	"github.com/lerenn/code-hygiene/pkg/ignore"
	"github.com/lerenn/code-hygiene/pkg/logger"
	"github.com/lerenn/code-hygiene/pkg/walker"
)

// Base provides common functionality for the hygiene checkers.
type Base struct {
	FS      fs.FS
	Config  *config.Config
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Config  *config.Config
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance. Missing dependencies get defaults.
func NewBase(params NewBaseParams) *Base {
	b := &Base{
		FS:      params.FS,
		Config:  params.Config,
		Logger:  params.Logger,
		verbose: params.Verbose,
	}
	if b.FS == nil {
		b.FS = fs.NewFS()
	}
	if b.Logger == nil {
		b.Logger = logger.NewNoopLogger()
	}
	if b.Config == nil {
		b.Config = config.NewManager(b.FS).DefaultConfig()
	}
	return b
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}

// ValidateRoot returns the absolute form of root, failing with ErrInvalidRoot
// when it is not an existing directory.
func (b *Base) ValidateRoot(root string) (string, error) {
	abs, err := b.FS.Abs(root)
	if err != nil {
		return "", fmt.Errorf("'%s' %w: %w", root, ErrInvalidRoot, err)
	}

	isDir, err := b.FS.IsDir(abs)
	if err != nil || !isDir {
		return "", fmt.Errorf("'%s' %w", abs, ErrInvalidRoot)
	}

	return abs, nil
}

// VerboseLogger returns the logger in verbose mode and a noop logger otherwise.
func (b *Base) VerboseLogger() logger.Logger {
	if b.verbose {
		return b.Logger
	}
	return logger.NewNoopLogger()
}

// NewWalker builds a walker honouring the configured pruning rules.
func (b *Base) NewWalker() *walker.Walker {
	return walker.NewWalker(walker.NewWalkerParams{
		FS:               b.FS,
		Logger:           b.VerboseLogger(),
		SkipDirs:         b.Config.SkipDirs,
		RespectGitignore: b.Config.RespectGitignore,
	})
}

// NewMatcher compiles rules, logging every exclusion in verbose mode.
func (b *Base) NewMatcher(rules ignore.Rules) (*ignore.Matcher, error) {
	m, err := ignore.NewMatcher(rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	return m, nil
}

// IsIgnored checks relFile against m and reports the matching rule in verbose mode.
func (b *Base) IsIgnored(m *ignore.Matcher, relFile string) bool {
	match, ok := m.MatchFile(relFile)
	if ok {
		b.VerbosePrint("Ignoring %s (%s rule %q)", relFile, match.Category, match.Rule)
	}
	return ok
}

// AbsPath joins a slash-separated project-relative path onto root.
func AbsPath(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
