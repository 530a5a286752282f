// Package ignore decides which project paths are excluded from the hygiene checks.
package ignore

import (
	"path"
	"slices"
	"strings"
)

// Rules is the set of exclusion rules applied to project-relative paths.
// Permanent and temporary entries behave the same; the split only records
// which exclusions are expected to be removed later.
type Rules struct {
	Dirs          []string `yaml:"dirs,omitempty"`
	Files         []string `yaml:"files,omitempty"`
	TempDirs      []string `yaml:"temp_dirs,omitempty"`
	TempFiles     []string `yaml:"temp_files,omitempty"`
	ConfigPattern string   `yaml:"config_pattern,omitempty"`
}

// Merge returns the union of r and other. Config patterns are alternated.
func (r Rules) Merge(other Rules) Rules {
	merged := Rules{
		Dirs:      union(r.Dirs, other.Dirs),
		Files:     union(r.Files, other.Files),
		TempDirs:  union(r.TempDirs, other.TempDirs),
		TempFiles: union(r.TempFiles, other.TempFiles),
	}

	switch {
	case r.ConfigPattern == "":
		merged.ConfigPattern = other.ConfigPattern
	case other.ConfigPattern == "" || other.ConfigPattern == r.ConfigPattern:
		merged.ConfigPattern = r.ConfigPattern
	default:
		merged.ConfigPattern = "(?:" + r.ConfigPattern + ")|(?:" + other.ConfigPattern + ")"
	}

	return merged
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, s := range slices.Concat(a, b) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// normalize turns a rule or candidate into the slash-separated form rules are written in.
func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	return strings.TrimPrefix(p, "./")
}
