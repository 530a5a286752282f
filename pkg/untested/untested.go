// Package untested finds source files that have no colocated test file.
package untested

import (
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/lerenn/code-hygiene/internal/base"
	"github.com/lerenn/code-hygiene/pkg/barrel"
	"github.com/lerenn/code-hygiene/pkg/walker"
)

// Checker finds untested source files.
type Checker struct {
	*base.Base
}

// NewChecker creates a new Checker instance.
func NewChecker(b *base.Base) *Checker {
	return &Checker{Base: b}
}

// Find returns the project-relative paths, sorted, of source files under root
// whose expected test file is missing from their directory.
func (c *Checker) Find(root string) ([]string, error) {
	matcher, err := c.NewMatcher(c.Config.UntestedRules())
	if err != nil {
		return nil, err
	}

	var untested []string
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
			if name == c.Config.Conventions.IndexFile && c.isBarrel(root, rel) {
				c.VerbosePrint("Skipping barrel file %s", rel)
				continue
			}

			if !slices.Contains(files, c.TestFileName(name)) {
				untested = append(untested, rel)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(untested)
	return untested, nil
}

// TestFileName returns the name of the test file expected next to a source file.
func (c *Checker) TestFileName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + c.Config.Conventions.TestSuffix
}

func (c *Checker) isSource(name string) bool {
	conv := c.Config.Conventions
	if strings.HasSuffix(name, conv.TestSuffix) {
		return false
	}
	if conv.DeclarationSuffix != "" && strings.HasSuffix(name, conv.DeclarationSuffix) {
		return false
	}
	return slices.Contains(c.Config.Untested.Extensions, filepath.Ext(name))
}

// isBarrel reads rel; unreadable files are treated as needing a test.
func (c *Checker) isBarrel(root, rel string) bool {
	content, err := c.FS.ReadText(base.AbsPath(root, rel))
	if err != nil {
		c.VerbosePrint("Skipping barrel detection for %s: %v", rel, err)
		return false
	}
	return barrel.IsBarrelExport(content)
}
