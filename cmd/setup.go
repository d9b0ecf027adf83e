package cmd

import (
	"strings"

	"github.com/collabctl/collabctl/prompt"
	"github.com/collabctl/collabctl/settings"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type setupOptions struct {
	cfg      *settings.Config
	noPrompt bool
	// This lets us pass in our own interface for testing
	tty setupUserInterface
}

// setupUserInterface lets tests replace the interactive prompts.
type setupUserInterface interface {
	readTokenFromUser(message string) (string, error)
	readHostFromUser(message string, defaultValue string) (string, error)
	askUserToConfirm(message string) bool
}

// setupInteractiveUI implements the setupUserInterface used by the real program, not in tests.
type setupInteractiveUI struct{}

func (setupInteractiveUI) readTokenFromUser(message string) (string, error) {
	return prompt.ReadSecretStringFromUser(message)
}

func (setupInteractiveUI) readHostFromUser(message string, defaultValue string) (string, error) {
	return prompt.ReadStringFromUser(message, defaultValue, settings.ValidateHost)
}

func (setupInteractiveUI) askUserToConfirm(message string) bool {
	return prompt.AskUserToConfirm(message)
}

func newSetupCommand(config *settings.Config) *cobra.Command {
	opts := setupOptions{
		cfg: config,
		tty: setupInteractiveUI{},
	}

	setupCommand := &cobra.Command{
		Use:   "setup",
		Short: "Store your GitHub token and API host in the settings file",
		Long: `Store your GitHub token and API host in ~/.collabctl/cli.yml.

Examples:
  collabctl setup
  collabctl setup --no-prompt --token <token> --host https://github.example.com --rest-endpoint api/v3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f := cmd.Flag("token"); f != nil && f.Changed {
				opts.cfg.TokenFromEnv = false
			}
			if opts.noPrompt {
				return setupNoPrompt(cmd, opts)
			}
			return setup(cmd, opts)
		},
	}

	setupCommand.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Disable prompt to bypass interactive UI. (MUST supply --token)")

	return setupCommand
}

func setup(cmd *cobra.Command, opts setupOptions) error {
	tokenChanged := false
	if opts.cfg.Token == "" || opts.tty.askUserToConfirm("A token is already set. Do you want to change it?") {
		token, err := opts.tty.readTokenFromUser("GitHub personal access token")
		if err != nil {
			return errors.Wrap(err, "error reading token")
		}
		opts.cfg.Token = strings.TrimSpace(token)
		opts.cfg.TokenFromEnv = false
		tokenChanged = true
	}

	defaultHost := opts.cfg.Host
	if defaultHost == "" {
		defaultHost = settings.DefaultHost
	}
	host, err := opts.tty.readHostFromUser("GitHub API host", defaultHost)
	if err != nil {
		return errors.Wrap(err, "error reading host")
	}
	if host = strings.TrimSpace(host); host != "" {
		if err := settings.ValidateHost(host); err != nil {
			return err
		}
		opts.cfg.Host = host
	}

	if err := opts.cfg.WriteToDisk(); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	if tokenChanged {
		cmd.Println("Token saved.")
	}
	cmd.Printf("Setup complete.\nYour configuration has been saved to %s.\n", opts.cfg.FileUsed)
	return nil
}

func setupNoPrompt(cmd *cobra.Command, opts setupOptions) error {
	if opts.cfg.Token == "" {
		return errors.New("--no-prompt requires --token")
	}
	if opts.cfg.Host == "" {
		opts.cfg.Host = settings.DefaultHost
	} else if err := settings.ValidateHost(opts.cfg.Host); err != nil {
		return err
	}

	if err := opts.cfg.WriteToDisk(); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	cmd.Printf("Setup complete.\nYour configuration has been saved to %s.\n", opts.cfg.FileUsed)
	return nil
}
