// Package barrel recognises barrel modules: files made only of export statements.
package barrel

import "strings"

const (
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
	lineComment       = "//"
	exportKeyword     = "export"
)

// IsBarrelExport reports whether every code line of text starts with "export".
//
// Comments and blank lines are dropped first. A line containing "/*" opens a
// block comment that lasts until a line containing "*/", both lines included.
// Text with no code lines is not a barrel.
//
// Detection is line based: an export statement wrapped over several lines has
// continuation lines that do not start with "export", so such files are not
// recognised and must be excluded by hand.
func IsBarrelExport(text string) bool {
	var code []string
	inBlockComment := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.Contains(stripped, blockCommentOpen) {
			inBlockComment = true
		}
		if inBlockComment {
			if strings.Contains(stripped, blockCommentClose) {
				inBlockComment = false
			}
			continue
		}

		if strings.HasPrefix(stripped, lineComment) {
			continue
		}

		code = append(code, stripped)
	}

	if len(code) == 0 {
		return false
	}

	for _, line := range code {
		if !strings.HasPrefix(line, exportKeyword) {
			return false
		}
	}

	return true
}
