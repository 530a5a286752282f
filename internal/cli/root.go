package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the hygiene command with every subcommand.
func NewRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hygiene",
		Short: "Code Hygiene - test coverage and dead code checks",
		Long: `Repository linting for TypeScript and Vue projects: find source files
without a colocated test file and files that nothing imports.`,
	}

	AddGlobalFlags(rootCmd, opts)

	rootCmd.AddCommand(
		NewUntestedCmd(opts),
		NewUnusedCmd(opts),
		NewCheckCmd(opts),
		NewInitCmd(opts),
	)

	return rootCmd
}

// NewStandaloneCmd turns a check command into a top-level command named use,
// carrying the global flags itself.
func NewStandaloneCmd(use string, cmd *cobra.Command, opts *Options) *cobra.Command {
	cmd.Use = use + " [root]"
	AddGlobalFlags(cmd, opts)
	return cmd
}
