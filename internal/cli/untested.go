package cli

import (
	"github.com/spf13/cobra"

	"github.com/lerenn/code-hygiene/pkg/report"
	"github.com/lerenn/code-hygiene/pkg/untested"
)

// NewUntestedCmd creates the command listing source files without a colocated test file.
func NewUntestedCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "untested [root]",
		Short: "List source files without a colocated test file",
		Long: `Walk the project and list every .vue and .ts source file whose
<name>.test.ts is missing from the same directory.

Barrel index.ts files, declaration files and ignored paths are skipped.
Exits with code 1 when files are found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd, args)
			if err != nil {
				return err
			}
			return s.runUntested()
		},
	}
}

func (s *session) runUntested() error {
	s.reporter.Header(report.UntestedCheck, s.root)

	found, err := untested.NewChecker(s.base).Find(s.root)
	if err != nil {
		return err
	}

	return s.reporter.Results(report.UntestedCheck, found)
}
