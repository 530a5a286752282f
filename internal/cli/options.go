// Package cli builds the cobra commands shared by the hygiene binaries.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lerenn/code-hygiene/internal/base"
	"github.com/lerenn/code-hygiene/pkg/config"
	"github.com/lerenn/code-hygiene/pkg/fs"
	"github.com/lerenn/code-hygiene/pkg/logger"
	"github.com/lerenn/code-hygiene/pkg/prompt"
	"github.com/lerenn/code-hygiene/pkg/report"
)

// Options holds the global flags and the dependencies commands are built on.
type Options struct {
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Verbose enables verbose output.
	Verbose bool
	// Quiet suppresses the report header.
	Quiet bool
	// NoColor disables coloured output.
	NoColor bool

	// FS defaults to the real file system.
	FS fs.FS
	// ConfigManager defaults to a manager on FS.
	ConfigManager config.Manager
	// Prompter defaults to a prompt on the command's input and output.
	Prompter prompt.Prompter
}

// AddGlobalFlags registers the global flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Specify a custom config file path")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress the report header")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable coloured output")
}

func (o *Options) fileSystem() fs.FS {
	if o.FS == nil {
		return fs.NewFS()
	}
	return o.FS
}

func (o *Options) configManager(fsys fs.FS) config.Manager {
	if o.ConfigManager == nil {
		return config.NewManager(fsys)
	}
	return o.ConfigManager
}

// session is the state of one check run against one root.
type session struct {
	base     *base.Base
	root     string
	reporter *report.Reporter
}

// newSession validates the root argument and loads the configuration that applies to it.
// An invalid root is reported on the command output.
func (o *Options) newSession(cmd *cobra.Command, args []string) (*session, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	fsys := o.fileSystem()

	reporter := report.NewReporter(report.NewReporterParams{
		Out:     cmd.OutOrStdout(),
		Quiet:   o.Quiet,
		NoColor: o.NoColor,
	})

	manager := o.configManager(fsys)
	b := base.NewBase(base.NewBaseParams{
		FS:      fsys,
		Config:  manager.DefaultConfig(),
		Logger:  logger.NewWriterLogger(cmd.ErrOrStderr()),
		Verbose: o.Verbose,
	})

	abs, err := b.ValidateRoot(root)
	if err != nil {
		reporter.Error(err)
		return nil, err
	}

	cfg, path, err := manager.ResolveConfig(abs, o.ConfigPath)
	if err != nil {
		return nil, err
	}
	b.Config = cfg
	if path != "" {
		b.VerbosePrint("Using configuration %s", path)
	} else {
		b.VerbosePrint("Using default configuration")
	}

	return &session{base: b, root: abs, reporter: reporter}, nil
}

// Execute runs cmd and returns the process exit code. Findings and invalid
// roots have already been reported and only set the code.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, report.ErrFindings), errors.Is(err, base.ErrInvalidRoot):
		return 1
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
}
