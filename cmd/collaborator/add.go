package collaborator

import (
	collaboratorsapi "github.com/collabctl/collabctl/api/collaborators"
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/spf13/cobra"
)

func newAddCommand(ops *collaboratorOpts, preRunE validator.Validator) *cobra.Command {
	var permission string

	cmd := &cobra.Command{
		Use:   "add <owner/name> <user>",
		Short: "Add a collaborator to a repository",
		Long: `Add a collaborator to a repository.

An invitation is sent to users who are not collaborators yet. Adding an existing
collaborator succeeds without changing anything.

Examples:
  collabctl collaborator add octokit/octokit.net octocat
  collabctl collaborator add octokit/octokit.net octocat --permission maintain`,
		PreRunE: preRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ops.resolveRepository(args[0])
			if err != nil {
				return err
			}

			err = ops.client.AddWithPermission(cmd.Context(), repo.Owner, repo.Name, args[1], collaboratorsapi.Permission(permission))
			if err != nil {
				return err
			}

			ops.log.Infof("Added %s to %s\n", args[1], repo)
			return nil
		},
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().StringVar(&permission, "permission", "", "Permission to grant: pull, triage, push, maintain or admin")

	return cmd
}
