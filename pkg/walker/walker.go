// Package walker traverses a project tree top-down, pruning excluded directories
// before descending into them.
package walker

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/lerenn/code-hygiene/pkg/fs"
	"github.com/lerenn/code-hygiene/pkg/logger"
)

// DefaultSkipDirs are the directory names pruned when no list is configured.
var DefaultSkipDirs = []string{"node_modules", ".git", "dist", "build", "playwright-report", "test-results"}

// WalkFunc is called once per visited directory with its path relative to the
// root ("." for the root itself) and the names of its subdirectories and files.
// Pruned directories are already absent from dirs.
type WalkFunc func(relDir string, dirs, files []string) error

// Walker walks project trees.
type Walker struct {
	fs               fs.FS
	logger           logger.Logger
	skipDirs         []string
	respectGitignore bool
}

// NewWalkerParams contains parameters for creating a new Walker instance.
type NewWalkerParams struct {
	FS               fs.FS
	Logger           logger.Logger
	SkipDirs         []string
	RespectGitignore bool
}

// NewWalker creates a new Walker instance.
func NewWalker(params NewWalkerParams) *Walker {
	w := &Walker{
		fs:               params.FS,
		logger:           params.Logger,
		skipDirs:         params.SkipDirs,
		respectGitignore: params.RespectGitignore,
	}
	if w.fs == nil {
		w.fs = fs.NewFS()
	}
	if w.logger == nil {
		w.logger = logger.NewNoopLogger()
	}
	if w.skipDirs == nil {
		w.skipDirs = DefaultSkipDirs
	}
	return w
}

// Walk visits root and every directory beneath it that is not pruned.
// An unreadable root is an error; unreadable subdirectories are skipped.
func (w *Walker) Walk(root string, fn WalkFunc) error {
	entries, err := w.fs.ReadDir(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWalkRoot, root, err)
	}

	var gi *gitignore.GitIgnore
	if w.respectGitignore {
		gi = w.loadGitignore(root)
	}

	return w.visit(root, ".", entries, gi, fn)
}

func (w *Walker) visit(root, relDir string, entries []os.DirEntry, gi *gitignore.GitIgnore, fn WalkFunc) error {
	var dirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(relDir, name)

		if entry.IsDir() {
			if w.pruned(name, rel, gi) {
				w.logger.Logf("Pruning directory: %s", rel)
				continue
			}
			dirs = append(dirs, name)
			continue
		}

		if gi != nil && gi.MatchesPath(rel) {
			continue
		}
		files = append(files, name)
	}

	err := fn(relDir, dirs, files)
	if errors.Is(err, SkipDir) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		childRel := path.Join(relDir, dir)
		childEntries, err := w.fs.ReadDir(filepath.Join(root, filepath.FromSlash(childRel)))
		if err != nil {
			w.logger.Logf("Skipping unreadable directory %s: %v", childRel, err)
			continue
		}
		if err := w.visit(root, childRel, childEntries, gi, fn); err != nil {
			return err
		}
	}

	return nil
}

func (w *Walker) pruned(name, rel string, gi *gitignore.GitIgnore) bool {
	if slices.Contains(w.skipDirs, name) {
		return true
	}
	return gi != nil && gi.MatchesPath(rel+"/")
}

func (w *Walker) loadGitignore(root string) *gitignore.GitIgnore {
	content, err := w.fs.ReadText(filepath.Join(root, ".gitignore"))
	if err != nil {
		if !w.fs.IsNotExist(err) {
			w.logger.Logf("Ignoring unreadable .gitignore: %v", err)
		}
		return nil
	}
	return gitignore.CompileIgnoreLines(strings.Split(content, "\n")...)
}
