package cmd

import (
	"context"

	"github.com/collabctl/collabctl/cmd/collaborator"
	"github.com/collabctl/collabctl/cmd/validator"
	"github.com/collabctl/collabctl/settings"
	"github.com/spf13/cobra"
)

// Execute adds all child commands to rootCmd and
// sets flags appropriately. This function is called
// by main.main(). It only needs to happen once to
// the rootCmd.
func Execute(ctx context.Context) error {
	config := &settings.Config{}
	if err := config.Load(); err != nil {
		return err
	}

	command := MakeCommands(config)
	return command.ExecuteContext(ctx)
}

// MakeCommands creates the top level commands for the given settings.
func MakeCommands(config *settings.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "collabctl",
		Short:         "Manage GitHub repository collaborators from the command line.",
		Long:          `Manage GitHub repository collaborators from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&config.Debug, "debug", config.Debug, "Enable debug logging.")
	flags.StringVar(&config.Host, "host", config.Host, "URL of the GitHub API, e.g. https://github.example.com for GitHub Enterprise")
	flags.StringVar(&config.RestEndpoint, "rest-endpoint", config.RestEndpoint, "Path prefix of the REST API on the host, e.g. api/v3 for GitHub Enterprise")
	flags.StringVar(&config.Token, "token", config.Token, "Your GitHub personal access token")
	// keep a token loaded from disk or env out of --help
	flags.Lookup("token").DefValue = ""
	flags.IntVar(&config.RetryMax, "retry-max", config.RetryMax, "Number of times a failed request is retried")

	rootCmd.AddCommand(collaborator.NewCollaboratorCommand(config, validator.TokenRequired(config)))
	rootCmd.AddCommand(newSetupCommand(config))
	rootCmd.AddCommand(newVersionCommand(config))

	return rootCmd
}
