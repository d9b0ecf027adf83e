package collaborator

import (
	"fmt"

	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/spf13/cobra"
)

func newRemoveCommand(ops *collaboratorOpts, preRunE validator.Validator) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <owner/name> <user>",
		Aliases: []string{"delete"},
		Short:   "Remove a collaborator from a repository",
		Long: `Remove a collaborator from a repository.

Removing a user who is not a collaborator succeeds without changing anything.

Examples:
  collabctl collaborator remove octokit/octokit.net octocat --yes`,
		PreRunE: preRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ops.resolveRepository(args[0])
			if err != nil {
				return err
			}

			if !force && !ops.reader.AskConfirm(fmt.Sprintf("Remove %s from %s?", args[1], repo)) {
				ops.log.Infoln("Canceled")
				return nil
			}

			if err := ops.client.Delete(cmd.Context(), repo.Owner, repo.Name, args[1]); err != nil {
				return err
			}

			ops.log.Infof("Removed %s from %s\n", args[1], repo)
			return nil
		},
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
