package collaborator

import (
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCommand(ops *collaboratorOpts, preRunE validator.Validator) *cobra.Command {
	return &cobra.Command{
		Use:   "check <owner/name> <user>",
		Short: "Check whether a user is a collaborator on a repository",
		Long: `Check whether a user is a collaborator on a repository.

The command succeeds whether or not the user is a collaborator.

Examples:
  collabctl collaborator check octokit/octokit.net ghost`,
		PreRunE: preRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ops.resolveRepository(args[0])
			if err != nil {
				return err
			}

			ok, err := ops.client.IsCollaborator(cmd.Context(), repo.Owner, repo.Name, args[1])
			if err != nil {
				return err
			}

			if ok {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s is a collaborator on %s\n", args[1], repo)
			} else {
				color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "%s is not a collaborator on %s\n", args[1], repo)
			}
			return nil
		},
		Args: cobra.ExactArgs(2),
	}
}
