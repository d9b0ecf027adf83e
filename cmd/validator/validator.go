package validator

import (
	"fmt"

	"github.com/collabctl/collabctl/errs"
	"github.com/collabctl/collabctl/settings"
	"github.com/spf13/cobra"
)

// Validator is run before a command to reject it early.
type Validator func(cmd *cobra.Command, args []string) error

// TokenRequired rejects commands when no GitHub token is configured.
func TokenRequired(config *settings.Config) Validator {
	return func(_ *cobra.Command, _ []string) error {
		if config.Token == "" {
			return errs.AuthRequired(fmt.Errorf("a GitHub token is required: run `collabctl setup`, pass --token or set GITHUB_TOKEN"))
		}
		return nil
	}
}
