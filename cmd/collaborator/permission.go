package collaborator

import (
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPermissionCommand(ops *collaboratorOpts, preRunE validator.Validator) *cobra.Command {
	return &cobra.Command{
		Use:   "permission <owner/name> <user>",
		Short: "Show the permission a user holds on a repository",
		Long: `Show the permission a user holds on a repository.

Examples:
  collabctl collaborator permission octokit/octokit.net octocat`,
		PreRunE: preRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ops.resolveRepository(args[0])
			if err != nil {
				return err
			}

			perm, err := ops.client.ReviewPermission(cmd.Context(), repo.Owner, repo.Name, args[1])
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"User", "Permission", "Role"})
			table.Append([]string{args[1], perm.Permission, perm.RoleName})
			table.Render()
			return nil
		},
		Args: cobra.ExactArgs(2),
	}
}
