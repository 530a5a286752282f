package cli

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/code-hygiene/pkg/report"
	"github.com/lerenn/code-hygiene/pkg/unused"
)

// NewUnusedCmd creates the command listing files nothing imports and orphaned test files.
func NewUnusedCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "unused [root]",
		Short: "List source files that are never imported",
		Long: `Scan every import in the project and list the .vue, .ts and .js source
files no other file imports, together with test files whose source file is gone.

Entry points (main.ts, App.vue, router, pages) count as used. Imports are
matched textually, so review each result before deleting it.
Exits with code 1 when files are found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd, args)
			if err != nil {
				return err
			}
			return s.runUnused()
		},
	}
}

func (s *session) runUnused() error {
	s.reporter.Header(report.UnusedCheck, s.root)

	found, err := unused.NewChecker(s.base).Find(s.root)
	if err != nil {
		return err
	}

	return s.reporter.Results(report.UnusedCheck, found)
}
