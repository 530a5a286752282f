package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lerenn/code-hygiene/internal/base"
	"github.com/lerenn/code-hygiene/pkg/config"
	"github.com/lerenn/code-hygiene/pkg/prompt"
	"github.com/lerenn/code-hygiene/pkg/report"
)

// NewInitCmd creates the command writing the default configuration into a project.
func NewInitCmd(opts *Options) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [root] [--force]",
		Short: "Write the default configuration to the project",
		Long: `Write the default configuration to <root>/.hygiene.yaml.

Flags:
  --force       Overwrite an existing file without asking`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runInit(cmd, args, force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")

	return initCmd
}

func (o *Options) runInit(cmd *cobra.Command, args []string, force bool) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	fsys := o.fileSystem()
	b := base.NewBase(base.NewBaseParams{FS: fsys})

	abs, err := b.ValidateRoot(root)
	if err != nil {
		report.NewReporter(report.NewReporterParams{Out: cmd.OutOrStdout()}).Error(err)
		return err
	}

	path := filepath.Join(abs, config.FileName)
	exists, err := fsys.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists && !force {
		prompter := o.Prompter
		if prompter == nil {
			prompter = prompt.NewPromptWithIO(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		overwrite, err := prompter.PromptForConfirmation(fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration left unchanged.")
			return nil
		}
	}

	if err := o.configManager(fsys).WriteDefault(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
