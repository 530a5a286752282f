// Package usage finds which project files are imported by other project files.
package usage

import "regexp"

var (
	// staticImportPattern matches `import ... from "<path>"` on a single line.
	staticImportPattern = regexp.MustCompile(`import\s+.*?from\s+['"]([^'"]+)['"]`)
	// dynamicImportPattern matches `import("<path>")`.
	dynamicImportPattern = regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)`)
)

// ExtractImports returns the import specifiers found in text: static imports
// first, then dynamic ones, each in source order.
//
// This is a textual scan. Commented-out imports are reported like live ones,
// and an import clause spread over several lines is not matched.
func ExtractImports(text string) []string {
	var specs []string
	for _, pattern := range []*regexp.Regexp{staticImportPattern, dynamicImportPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			specs = append(specs, m[1])
		}
	}
	return specs
}
