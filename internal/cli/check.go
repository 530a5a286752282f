package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lerenn/code-hygiene/pkg/report"
)

// NewCheckCmd creates the command running every check.
func NewCheckCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [root]",
		Short: "Run the untested and unused checks",
		Long: `Run the untested check, then the unused check, on the same project.
Exits with code 1 when either check finds files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd, args)
			if err != nil {
				return err
			}

			untestedErr := s.runUntested()
			if untestedErr != nil && !errors.Is(untestedErr, report.ErrFindings) {
				return untestedErr
			}

			fmt.Fprintln(cmd.OutOrStdout())

			if err := s.runUnused(); err != nil {
				return err
			}
			return untestedErr
		},
	}
}
