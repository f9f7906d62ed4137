package cli

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var opts commands.StatusOptions

	cmd := &cobra.Command{
		Use:               "status [collection...]",
		Aliases:           []string{"list"},
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		GroupID:           "core",
		ValidArgsFunction: collectionCompletion(a, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Components = args
			result, err := commands.Status(a.env(false), opts)
			if result != nil {
				if rerr := a.renderStatus(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Links, "links", false, MsgFlagLinks)

	return cmd
}

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   MsgDoctorShort,
		Long:    MsgDoctorLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Doctor(cmd.Context(), a.env(false), nil)
			if result != nil {
				if rerr := a.renderDoctor(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "info <collection>",
		Short:             MsgInfoShort,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: collectionCompletion(a, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := commands.Info(a.env(false), args[0])
			if err != nil {
				return err
			}
			return a.renderInfo(args[0], md)
		},
	}
}
