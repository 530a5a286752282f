package usage

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lerenn/code-hygiene/pkg/fs"
	"github.com/lerenn/code-hygiene/pkg/logger"
	"github.com/lerenn/code-hygiene/pkg/resolver"
	"github.com/lerenn/code-hygiene/pkg/walker"
)

// DefaultScanExtensions are the extensions of files whose imports are read.
var DefaultScanExtensions = []string{".ts", ".vue", ".js"}

// DefaultTestSuffix marks test files, whose imports do not count as usage.
const DefaultTestSuffix = ".test.ts"

// Set is a set of absolute file paths.
type Set map[string]struct{}

// Contains checks if p is in the set.
func (s Set) Contains(p string) bool {
	_, ok := s[p]
	return ok
}

// Scanner collects the files imported across a project.
type Scanner struct {
	fs         fs.FS
	logger     logger.Logger
	walker     *walker.Walker
	resolver   *resolver.Resolver
	extensions []string
	testSuffix string
}

// NewScannerParams contains parameters for creating a new Scanner instance.
type NewScannerParams struct {
	FS         fs.FS
	Logger     logger.Logger
	Walker     *walker.Walker
	Resolver   *resolver.Resolver
	Extensions []string
	TestSuffix string
}

// NewScanner creates a new Scanner instance.
func NewScanner(params NewScannerParams) *Scanner {
	s := &Scanner{
		fs:         params.FS,
		logger:     params.Logger,
		walker:     params.Walker,
		resolver:   params.Resolver,
		extensions: params.Extensions,
		testSuffix: params.TestSuffix,
	}
	if s.fs == nil {
		s.fs = fs.NewFS()
	}
	if s.logger == nil {
		s.logger = logger.NewNoopLogger()
	}
	if s.walker == nil {
		s.walker = walker.NewWalker(walker.NewWalkerParams{FS: s.fs, Logger: s.logger})
	}
	if s.extensions == nil {
		s.extensions = DefaultScanExtensions
	}
	if s.testSuffix == "" {
		s.testSuffix = DefaultTestSuffix
	}
	return s
}

// UsedFiles walks root, reads every non-test file with a scanned extension and
// returns the absolute paths its imports resolve to. Ignore rules are not
// applied here: excluded files such as the bootstrap module still import others.
// Files that cannot be read as text are skipped.
func (s *Scanner) UsedFiles(root string) (Set, error) {
	res := s.resolver
	if res == nil {
		res = resolver.NewResolver(resolver.NewResolverParams{FS: s.fs, Root: root})
	}

	used := make(Set)
	err := s.walker.Walk(root, func(relDir string, _, files []string) error {
		for _, name := range files {
			if !s.scanned(name) {
				continue
			}

			file := filepath.Join(root, filepath.FromSlash(path.Join(relDir, name)))
			content, err := s.fs.ReadText(file)
			if err != nil {
				s.logger.Logf("Skipping unreadable file %s: %v", path.Join(relDir, name), err)
				continue
			}

			for _, spec := range ExtractImports(content) {
				if target, ok := res.Resolve(file, spec); ok {
					used[target] = struct{}{}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return used, nil
}

func (s *Scanner) scanned(name string) bool {
	if strings.HasSuffix(name, s.testSuffix) {
		return false
	}
	return slices.Contains(s.extensions, filepath.Ext(name))
}
