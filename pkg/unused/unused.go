// Package unused finds source files that nothing imports and test files whose
// source file is gone.
package unused

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/lerenn/code-hygiene/internal/base"
	"github.com/lerenn/code-hygiene/pkg/resolver"
	"github.com/lerenn/code-hygiene/pkg/usage"
	"github.com/lerenn/code-hygiene/pkg/walker"
)

// Checker finds unused source files and orphaned test files.
type Checker struct {
	*base.Base
}

// NewChecker creates a new Checker instance.
func NewChecker(b *base.Base) *Checker {
	return &Checker{Base: b}
}

// Find returns the unused source files and orphaned test files under root,
// merged and sorted. Root should be absolute.
func (c *Checker) Find(root string) ([]string, error) {
	unused, err := c.Unused(root)
	if err != nil {
		return nil, err
	}

	orphans, err := c.Orphans(root)
	if err != nil {
		return nil, err
	}

	found := append(unused, orphans...)
	sort.Strings(found)
	return found, nil
}

// Unused returns the sorted source files that are neither imported anywhere
// nor entry points.
func (c *Checker) Unused(root string) ([]string, error) {
	sources, err := c.SourceFiles(root)
	if err != nil {
		return nil, err
	}

	used, err := c.UsedFiles(root)
	if err != nil {
		return nil, err
	}

	entries, err := c.EntryPoints(root)
	if err != nil {
		return nil, err
	}

	var unused []string
	for _, rel := range sources {
		abs := base.AbsPath(root, rel)
		if used.Contains(abs) || entries.Contains(abs) {
			continue
		}
		unused = append(unused, rel)
	}

	sort.Strings(unused)
	return unused, nil
}

// SourceFiles returns the project-relative paths of the files checked for usage.
func (c *Checker) SourceFiles(root string) ([]string, error) {
	matcher, err := c.NewMatcher(c.Config.UnusedRules())
	if err != nil {
		return nil, err
	}

	var sources []string
	err = c.NewWalker().Walk(root, func(relDir string, _, files []string) error {
		if match, ok := matcher.MatchDir(relDir); ok {
			c.VerbosePrint("Ignoring directory %s (%s rule %q)", relDir, match.Category, match.Rule)
			return walker.SkipDir
		}

		for _, name := range files {
			if !c.isSource(name) {
				continue
			}

			rel := path.Join(relDir, name)
			if c.IsIgnored(matcher, rel) {
				continue
			}
			sources = append(sources, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// UsedFiles returns the absolute paths of every file imported somewhere under root.
func (c *Checker) UsedFiles(root string) (usage.Set, error) {
	conv := c.Config.Conventions

	scanner := usage.NewScanner(usage.NewScannerParams{
		FS:     c.FS,
		Logger: c.VerboseLogger(),
		Walker: c.NewWalker(),
		Resolver: resolver.NewResolver(resolver.NewResolverParams{
			FS:         c.FS,
			Root:       root,
			SourceDir:  conv.SourceDir,
			Alias:      conv.Alias,
			IndexFile:  conv.IndexFile,
			Extensions: conv.ResolveExtensions,
		}),
		Extensions: c.Config.Unused.Extensions,
		TestSuffix: conv.TestSuffix,
	})

	return scanner.UsedFiles(root)
}

// EntryPoints returns the absolute paths of files used without being imported.
// Configured files are included whether or not they exist.
func (c *Checker) EntryPoints(root string) (usage.Set, error) {
	entries := make(usage.Set)
	for _, f := range c.Config.Unused.EntryPoints.Files {
		entries[base.AbsPath(root, f)] = struct{}{}
	}

	for _, pattern := range c.Config.Unused.EntryPoints.Globs {
		matches, err := c.FS.Glob(root, pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidEntryPoint, pattern, err)
		}
		for _, m := range matches {
			entries[m] = struct{}{}
		}
	}

	return entries, nil
}

// Orphans returns the sorted test files whose directory holds no source file
// with the same base name. Only directory rules apply.
func (c *Checker) Orphans(root string) ([]string, error) {
	matcher, err := c.NewMatcher(c.Config.OrphanRules())
	if err != nil {
		return nil, err
	}

	conv := c.Config.Conventions

	var orphans []string
	err = c.NewWalker().Walk(root, func(relDir string, _, files []string) error {
		if match, ok := matcher.MatchDir(relDir); ok {
			c.VerbosePrint("Ignoring directory %s (%s rule %q)", relDir, match.Category, match.Rule)
			return walker.SkipDir
		}

		for _, name := range files {
			if !strings.HasSuffix(name, conv.TestSuffix) {
				continue
			}

			if !c.hasSource(files, strings.TrimSuffix(name, conv.TestSuffix)) {
				orphans = append(orphans, path.Join(relDir, name))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(orphans)
	return orphans, nil
}

func (c *Checker) hasSource(files []string, baseName string) bool {
	for _, ext := range c.Config.Conventions.ResolveExtensions {
		if slices.Contains(files, baseName+ext) {
			return true
		}
	}
	return false
}

func (c *Checker) isSource(name string) bool {
	conv := c.Config.Conventions
	if strings.HasSuffix(name, conv.TestSuffix) {
		return false
	}
	if conv.DeclarationSuffix != "" && strings.HasSuffix(name, conv.DeclarationSuffix) {
		return false
	}
	return slices.Contains(c.Config.Unused.Extensions, filepath.Ext(name))
}
