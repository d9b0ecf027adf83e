package collaborator

import (
	"strconv"

	"github.com/collabctl/collabctl/api/rest"
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/collabctl/collabctl/slug"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCommand(ops *collaboratorOpts, preRunE validator.Validator) *cobra.Command {
	var options rest.ListOptions

	cmd := &cobra.Command{
		Use:   "list [<owner/name>]",
		Short: "List the collaborators of a repository",
		Long: `List the collaborators of a repository.

Every page is fetched unless --page-count is given. Without a repository, or
with ".", the origin remote of the current git repository is used.

Examples:
  collabctl collaborator list
  collabctl collaborator list octokit/octokit.net
  collabctl collaborator list octokit/octokit.net --page-size 50 --start-page 2 --page-count 1`,
		PreRunE: preRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "."
			if len(args) > 0 {
				arg = args[0]
			}
			repo, err := ops.resolveRepository(arg)
			if err != nil {
				return err
			}
			return listCollaborators(cmd, ops, repo, options)
		},
		Args: cobra.RangeArgs(0, 1),
	}

	cmd.Flags().IntVar(&options.PageSize, "page-size", 0, "Number of collaborators requested per page")
	cmd.Flags().IntVar(&options.PageCount, "page-count", 0, "Maximum number of pages to fetch")
	cmd.Flags().IntVar(&options.StartPage, "start-page", 0, "First page to fetch")

	return cmd
}

func listCollaborators(cmd *cobra.Command, ops *collaboratorOpts, repo slug.Repository, options rest.ListOptions) error {
	ctx := cmd.Context()
	ops.log.Debug("listing collaborators of %s", repo)

	users, err := ops.client.GetAllWithOptions(ctx, repo.Owner, repo.Name, options)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())

	table.SetHeader([]string{"Login", "ID", "Type", "Role"})

	for _, user := range users {
		table.Append([]string{user.Login, strconv.FormatInt(user.ID, 10), user.Type, user.RoleName})
	}
	table.Render()

	return nil
}
