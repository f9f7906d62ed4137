package cli

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/spf13/cobra"
)

func newInstallCmd(a *app) *cobra.Command {
	var opts commands.InstallOptions

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Install(cmd.Context(), a.env(opts.Yes), opts)
			if result != nil {
				if rerr := a.renderInstall(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&opts.Components, "components", nil, MsgFlagComponents)
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&opts.NoSync, "no-sync", false, MsgFlagNoSync)
	_ = cmd.RegisterFlagCompletionFunc("components", collectionCompletion(a, true))

	return cmd
}

func newSetupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "setup <collection>",
		Short:             MsgSetupShort,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: collectionCompletion(a, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Setup(cmd.Context(), a.env(true), args[0])
			if result != nil {
				if rerr := a.renderInstall(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	var opts commands.RemoveOptions

	cmd := &cobra.Command{
		Use:               "remove [collection...|all]",
		Aliases:           []string{"uninstall"},
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		Example:           MsgRemoveExample,
		GroupID:           "core",
		ValidArgsFunction: collectionCompletion(a, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Components = args
			result, err := commands.Remove(a.env(opts.Yes), opts)
			if result != nil {
				if rerr := a.renderRemove(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, MsgFlagYes)

	return cmd
}
