// Package cli wires the claude-agents commands into a cobra command tree.
package cli

import (
	"io"
	"os"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/version"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/config"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/reposync"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ProgramName is the name of the binary
const ProgramName = "claude-agents"

// annotationNoConfig marks commands that run without loading configuration
const annotationNoConfig = "noConfig"

type globalFlags struct {
	verbosity  int
	dryRun     bool
	configFile string
	noColor    bool
	format     string
}

// app holds what every subcommand needs once the root's pre-run has loaded
// the configuration.
type app struct {
	flags globalFlags

	cfg      *config.Config
	layout   *paths.Layout
	registry *collections.Registry
	format   ui.Format
	console  *ui.Console
	fs       types.FS

	// newSyncer and interactive are replaced in tests
	newSyncer   func(fs types.FS, dryRun bool) reposync.Syncer
	interactive func() bool
}

func newApp() *app {
	return &app{
		fs: filesystem.NewOS(),
		newSyncer: func(fs types.FS, dryRun bool) reposync.Syncer {
			return reposync.NewGitSyncer(nil, fs, dryRun)
		},
		interactive: stdinIsTerminal,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

// Execute runs the command line and prints any error in the error style.
// It returns the process exit code.
func Execute() int {
	a := newApp()
	rootCmd := newRootCmd(a)
	if err := rootCmd.Execute(); err != nil {
		a.errorConsole(rootCmd).RenderError(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     ProgramName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.flags.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			if cmd.Annotations[annotationNoConfig] == "true" {
				return nil
			}
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&a.flags.configFile, "config", "", MsgFlagConfig)
	pf.BoolVar(&a.flags.noColor, "no-color", false, MsgFlagNoColor)
	pf.StringVar(&a.flags.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newSetupCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newDoctorCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installHelpTopics(rootCmd)

	return rootCmd
}

// load reads configuration and builds the layout, registry and console.
func (a *app) load(cmd *cobra.Command) error {
	requested, err := ui.ParseFormat(a.flags.format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgErrFormat)
	}

	colorMode := config.ColorAuto
	if a.flags.noColor {
		colorMode = config.ColorNever
	}
	a.setConsole(cmd, requested, colorMode)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.flags.configFile})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !a.flags.noColor {
		a.setConsole(cmd, requested, cfg.Output.Color)
	}

	a.layout, err = paths.NewLayout(cfg.Paths.Root, cfg.Paths.Sources)
	if err != nil {
		return err
	}
	a.registry, err = collections.FromConfig(cfg.Collections)
	if err != nil {
		return err
	}

	log.Debug().
		Str("root", a.layout.Root()).
		Str("sources", a.layout.SourcesDir()).
		Str("format", a.format.String()).
		Msg("Configuration ready")
	return nil
}

func (a *app) setConsole(cmd *cobra.Command, requested ui.Format, colorMode string) {
	a.format = resolveFormat(requested, colorMode, cmd.OutOrStdout())
	ui.Apply(a.format)
	a.console = ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.format)
}

// errorConsole returns the console errors are printed on, falling back to
// plain text when the command failed before the console was built.
func (a *app) errorConsole(cmd *cobra.Command) *ui.Console {
	if a.console != nil {
		return a.console
	}
	return ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), ui.FormatText)
}

// resolveFormat resolves against w when it is a file. Other writers are
// never terminals.
func resolveFormat(requested ui.Format, colorMode string, w io.Writer) ui.Format {
	if f, ok := w.(*os.File); ok {
		return ui.Resolve(requested, colorMode, f)
	}
	if requested == ui.FormatAuto {
		requested = ui.FormatText
	}
	return ui.Resolve(requested, colorMode, nil)
}

// env builds the collaborators for one command run.
func (a *app) env(yes bool) commands.Env {
	var prompter types.Prompter
	switch {
	case yes:
		prompter = ui.AutoPrompter{Answer: true}
	case a.interactive():
		prompter = ui.NewConsolePrompter()
	default:
		prompter = ui.NonInteractivePrompter{}
	}

	return commands.Env{
		Registry: a.registry,
		Layout:   a.layout,
		FS:       a.fs,
		Reporter: a.console,
		Prompter: prompter,
		Syncer:   a.newSyncer(a.fs, a.flags.dryRun),
		DryRun:   a.flags.dryRun,
	}
}

// collectionCompletion completes collection keys. Completion runs without
// the root's pre-run, so it loads the configuration itself.
func collectionCompletion(a *app, withAll bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(config.LoadOptions{ConfigFile: a.flags.configFile})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		reg, err := collections.FromConfig(cfg.Collections)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		used := make(map[string]bool, len(args))
		for _, arg := range args {
			used[arg] = true
		}
		var keys []string
		for _, k := range reg.Keys() {
			if !used[k] {
				keys = append(keys, k)
			}
		}
		if withAll {
			keys = append(keys, commands.AllKeyword)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}
