package ignore

import (
	"fmt"
	"path"
	"regexp"

	"github.com/armon/go-radix"
)

// Category identifies the kind of rule that excluded a path.
type Category string

const (
	// CategoryPermanent marks paths that are never checked.
	CategoryPermanent Category = "permanent"
	// CategoryTemporary marks paths deferred until tests or cleanup catch up.
	CategoryTemporary Category = "temporary"
	// CategoryConfig marks files excluded by the config-file pattern.
	CategoryConfig Category = "config"
)

// Match describes the rule that excluded a path.
type Match struct {
	Rule     string
	Category Category
}

// Matcher evaluates Rules against project-relative paths.
type Matcher struct {
	dirs          *radix.Tree
	files         map[string]Category
	configPattern *regexp.Regexp
}

// NewMatcher compiles rules into a Matcher.
func NewMatcher(rules Rules) (*Matcher, error) {
	m := &Matcher{
		dirs:  radix.New(),
		files: make(map[string]Category),
	}

	addDirs(m.dirs, rules.Dirs, CategoryPermanent)
	addDirs(m.dirs, rules.TempDirs, CategoryTemporary)

	for _, f := range rules.Files {
		m.files[normalize(f)] = CategoryPermanent
	}
	for _, f := range rules.TempFiles {
		if _, ok := m.files[normalize(f)]; !ok {
			m.files[normalize(f)] = CategoryTemporary
		}
	}

	if rules.ConfigPattern != "" {
		re, err := regexp.Compile(rules.ConfigPattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, rules.ConfigPattern, err)
		}
		m.configPattern = re
	}

	return m, nil
}

func addDirs(tree *radix.Tree, dirs []string, category Category) {
	for _, d := range dirs {
		d = normalize(d)
		if d == "." || d == "" {
			continue
		}
		if _, exists := tree.Get(d); exists {
			continue
		}
		tree.Insert(d, category)
	}
}

// MatchDir reports the directory rule covering relDir: the rule equals relDir
// or is one of its ancestors.
func (m *Matcher) MatchDir(relDir string) (Match, bool) {
	relDir = normalize(relDir)

	var found Match
	var ok bool
	m.dirs.WalkPath(relDir, func(prefix string, v interface{}) bool {
		if len(prefix) == len(relDir) || relDir[len(prefix)] == '/' {
			found = Match{Rule: prefix, Category: v.(Category)}
			ok = true
			return true
		}
		return false
	})

	return found, ok
}

// IsConfigFile checks if the file name matches the config-file pattern.
func (m *Matcher) IsConfigFile(name string) bool {
	if m.configPattern == nil {
		return false
	}
	return m.configPattern.MatchString(path.Base(normalize(name)))
}

// MatchFile reports the first rule excluding relFile: an exact file rule,
// a directory rule on its parent, or the config-file pattern.
func (m *Matcher) MatchFile(relFile string) (Match, bool) {
	relFile = normalize(relFile)

	if category, ok := m.files[relFile]; ok {
		return Match{Rule: relFile, Category: category}, true
	}

	if match, ok := m.MatchDir(path.Dir(relFile)); ok {
		return match, true
	}

	if m.IsConfigFile(relFile) {
		return Match{Rule: m.configPattern.String(), Category: CategoryConfig}, true
	}

	return Match{}, false
}

// IsIgnored checks if relFile is excluded by any rule.
func (m *Matcher) IsIgnored(relFile string) bool {
	_, ok := m.MatchFile(relFile)
	return ok
}
