package collaborator

import (
	"strings"

	collaboratorsapi "github.com/collabctl/collabctl/api/collaborators"
	"github.com/collabctl/collabctl/api/header"
	"github.com/collabctl/collabctl/api/rest"
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/collabctl/collabctl/git"
	"github.com/collabctl/collabctl/logger"
	"github.com/collabctl/collabctl/prompt"
	"github.com/collabctl/collabctl/settings"
	"github.com/collabctl/collabctl/slug"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// UserInputReader asks the user to confirm destructive actions
type UserInputReader interface {
	AskConfirm(msg string) bool
}

type collaboratorOpts struct {
	client collaboratorsapi.CollaboratorsClient
	reader UserInputReader
	log    *logger.Logger
	host   string
}

// CollaboratorOption configures a command created by NewCollaboratorCommand
type CollaboratorOption interface {
	apply(*collaboratorOpts)
}

type promptReader struct{}

func (p promptReader) AskConfirm(msg string) bool {
	return prompt.AskUserToConfirm(msg)
}

// NewCollaboratorCommand generates a cobra command for managing repository collaborators
func NewCollaboratorCommand(config *settings.Config, preRunE validator.Validator, opts ...CollaboratorOption) *cobra.Command {
	cos := collaboratorOpts{
		reader: &promptReader{},
	}
	for _, o := range opts {
		o.apply(&cos)
	}
	command := &cobra.Command{
		Use:     "collaborator",
		Aliases: []string{"collab"},
		Short:   "Manage the collaborators of a repository",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			header.SetCommandStr(commandStr(cmd))

			cos.log = logger.NewLoggerWithOutput(config.Debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
			config.ApplyDefaults()
			cos.host = config.Host
			if cos.client != nil {
				return nil
			}

			restClient := rest.NewFromConfig(config.Host, config)
			restClient.SetLogger(cos.log.Entry("rest"))
			cos.client = collaboratorsapi.NewCollaboratorsClientWithRest(restClient)
			return nil
		},
	}

	command.AddCommand(newListCommand(&cos, preRunE))
	command.AddCommand(newCheckCommand(&cos, preRunE))
	command.AddCommand(newAddCommand(&cos, preRunE))
	command.AddCommand(newRemoveCommand(&cos, preRunE))
	command.AddCommand(newPermissionCommand(&cos, preRunE))

	return command
}

// commandStr drops the binary name and arguments, e.g. "collaborator list".
func commandStr(cmd *cobra.Command) string {
	path := strings.Fields(cmd.CommandPath())
	if len(path) > 1 {
		path = path[1:]
	}
	return strings.Join(path, " ")
}

// resolveRepository parses an owner/name argument. "." stands for the
// repository the origin remote of the working directory points to, which must
// live on the configured host.
func (ops *collaboratorOpts) resolveRepository(arg string) (slug.Repository, error) {
	if arg != "." {
		return slug.ParseRepository(arg)
	}
	remote, err := git.InferRepositoryFromGitRemotes(".")
	if err != nil {
		return slug.Repository{}, err
	}
	if !remote.MatchesHost(ops.host) {
		return slug.Repository{}, errors.Errorf("the origin remote is on %s, not on %s: pass <owner>/<name> or --host", remote.Host, ops.host)
	}
	ops.log.Debug("using %s from the origin remote", remote.Repository)
	return remote.Repository, nil
}

type customReaderOption struct {
	r UserInputReader
}

func (c customReaderOption) apply(opts *collaboratorOpts) {
	opts.reader = c.r
}

// CustomReader returns a CollaboratorOption that sets a given UserInputReader to a collaborator command
func CustomReader(r UserInputReader) CollaboratorOption {
	return customReaderOption{r}
}

type customClientOption struct {
	c collaboratorsapi.CollaboratorsClient
}

func (c customClientOption) apply(opts *collaboratorOpts) {
	opts.client = c.c
}

// CustomClient returns a CollaboratorOption that replaces the REST client
func CustomClient(c collaboratorsapi.CollaboratorsClient) CollaboratorOption {
	return customClientOption{c}
}
