package cmd

import (
	"github.com/collabctl/collabctl/logger"
	"github.com/collabctl/collabctl/settings"
	"github.com/collabctl/collabctl/version"
	"github.com/spf13/cobra"
)

type versionOptions struct {
	cfg *settings.Config
	log *logger.Logger
}

func newVersionCommand(config *settings.Config) *cobra.Command {
	opts := versionOptions{
		cfg: config,
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.log = logger.NewLoggerWithOutput(opts.cfg.Debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Run: func(_ *cobra.Command, _ []string) {
			opts.log.Infof("%s+%s\n", version.Version, version.Commit)
		},
	}
}
