// Package report prints the results of a hygiene check.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// SeparatorWidth is the width of the line printed under the header.
const SeparatorWidth = 60

// Check holds the wording of one check's report.
type Check struct {
	// Subject completes "Searching for ... files in:".
	Subject string
	// Success is printed when nothing is found.
	Success string
	// Found is the heading format for findings; it receives the count.
	Found string
	// Advisory is printed after the findings.
	Advisory string
}

// UntestedCheck is the wording of the missing-test report.
var UntestedCheck = Check{
	Subject:  "untested",
	Success:  "✅ All source files have colocated test files!",
	Found:    "Found %d files without colocated test files:",
	Advisory: "Consider adding .test.ts files for these source files.",
}

// UnusedCheck is the wording of the unused-file report.
var UnusedCheck = Check{
	Subject: "unused",
	Success: "✅ All source files appear to be used!",
	Found:   "Found %d potentially unused files:",
	Advisory: "Note: This script may have false positives. Some files may be used\n" +
		"dynamically, through string concatenation, or in ways not detected.\n" +
		"Review each file carefully before deleting.",
}

// Reporter writes check reports.
type Reporter struct {
	out     io.Writer
	quiet   bool
	success *color.Color
	failure *color.Color
}

// NewReporterParams contains parameters for creating a new Reporter instance.
type NewReporterParams struct {
	Out     io.Writer
	Quiet   bool
	NoColor bool
}

// NewReporter creates a new Reporter instance. Out defaults to stdout.
func NewReporter(params NewReporterParams) *Reporter {
	r := &Reporter{
		out:     params.Out,
		quiet:   params.Quiet,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if params.NoColor {
		r.success.DisableColor()
		r.failure.DisableColor()
	}
	return r
}

// Header prints the searched root followed by a separator, unless quiet.
func (r *Reporter) Header(check Check, root string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "Searching for %s files in: %s\n", check.Subject, root)
	fmt.Fprintln(r.out, strings.Repeat("-", SeparatorWidth))
}

// Results prints the findings or the success line. It returns ErrFindings
// when findings is not empty.
func (r *Reporter) Results(check Check, findings []string) error {
	if len(findings) == 0 {
		r.success.Fprintln(r.out, check.Success)
		return nil
	}

	r.failure.Fprintf(r.out, check.Found+"\n", len(findings))
	fmt.Fprintln(r.out)
	for _, f := range findings {
		fmt.Fprintf(r.out, "  %s\n", f)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, check.Advisory)

	return ErrFindings
}

// Error prints a fatal error on the report output.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.out, "Error: %v\n", err)
}
