// Package resolver maps import specifiers found in source files to files on disk.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/lerenn/code-hygiene/pkg/fs"
)

// Defaults matching a Vite + Vue + TypeScript project layout.
const (
	DefaultSourceDir = "src"
	DefaultAlias     = "@/"
	DefaultIndexFile = "index.ts"
)

// DefaultExtensions is the order in which extensions are appended to an
// extension-less import.
var DefaultExtensions = []string{".ts", ".vue", ".js"}

// Resolver resolves import specifiers against one project root.
type Resolver struct {
	fs         fs.FS
	root       string
	sourceDir  string
	alias      string
	indexFile  string
	extensions []string
}

// NewResolverParams contains parameters for creating a new Resolver instance.
// Zero values select the defaults above.
type NewResolverParams struct {
	FS         fs.FS
	Root       string
	SourceDir  string
	Alias      string
	IndexFile  string
	Extensions []string
}

// NewResolver creates a new Resolver instance. Root should be absolute.
func NewResolver(params NewResolverParams) *Resolver {
	r := &Resolver{
		fs:         params.FS,
		root:       params.Root,
		sourceDir:  params.SourceDir,
		alias:      params.Alias,
		indexFile:  params.IndexFile,
		extensions: params.Extensions,
	}
	if r.fs == nil {
		r.fs = fs.NewFS()
	}
	if r.sourceDir == "" {
		r.sourceDir = DefaultSourceDir
	}
	if r.alias == "" {
		r.alias = DefaultAlias
	}
	if r.indexFile == "" {
		r.indexFile = DefaultIndexFile
	}
	if r.extensions == nil {
		r.extensions = DefaultExtensions
	}
	return r
}

// Resolve returns the file importText refers to when imported from importingFile.
// Bare package specifiers and imports whose target cannot be found on disk
// are unresolved.
//
// A directory target resolves only to its index file with the primary
// extension; the extension fallback is not applied to directory indexes.
func (r *Resolver) Resolve(importingFile, importText string) (string, bool) {
	target, ok := r.candidate(importingFile, importText)
	if !ok {
		return "", false
	}

	if isDir, err := r.fs.IsDir(target); err == nil && isDir {
		index := filepath.Join(target, r.indexFile)
		if r.exists(index) {
			return index, true
		}
		return "", false
	}

	if r.exists(target) {
		return target, true
	}

	for _, ext := range r.extensions {
		if candidate := target + ext; r.exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// candidate computes the path an import points at before any existence check.
func (r *Resolver) candidate(importingFile, importText string) (string, bool) {
	switch {
	case strings.HasPrefix(importText, r.alias):
		rest := strings.TrimPrefix(importText, r.alias)
		return filepath.Join(r.root, r.sourceDir, filepath.FromSlash(rest)), true
	case strings.HasPrefix(importText, "./"), strings.HasPrefix(importText, "../"):
		return filepath.Join(filepath.Dir(importingFile), filepath.FromSlash(importText)), true
	default:
		return "", false
	}
}

func (r *Resolver) exists(path string) bool {
	ok, err := r.fs.Exists(path)
	return err == nil && ok
}
