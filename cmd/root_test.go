package cmd

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/collabctl/collabctl/settings"
	"github.com/collabctl/collabctl/version"
)

var _ = Describe("Root", func() {
	var (
		config *settings.Config
		stdout *bytes.Buffer
	)

	BeforeEach(func() {
		config = &settings.Config{Host: settings.DefaultHost, Token: "from-settings"}
		stdout = new(bytes.Buffer)
	})

	Describe("subcommands", func() {
		It("can create commands", func() {
			commands := MakeCommands(config)
			names := []string{}
			for _, c := range commands.Commands() {
				names = append(names, c.Name())
			}
			Expect(names).To(ConsistOf("collaborator", "setup", "version"))
		})
	})

	Describe("flags", func() {
		It("keeps settings when flags are not given", func() {
			command := MakeCommands(config)
			command.SetOut(stdout)
			command.SetArgs([]string{"version"})
			Expect(command.Execute()).To(Succeed())

			Expect(config.Token).To(Equal("from-settings"))
			Expect(config.Host).To(Equal(settings.DefaultHost))
		})

		It("overrides settings with flags", func() {
			command := MakeCommands(config)
			command.SetOut(stdout)
			command.SetArgs([]string{"version", "--token", "from-flag", "--host", "https://ghe.example.com", "--retry-max", "3", "--debug"})
			Expect(command.Execute()).To(Succeed())

			Expect(config.Token).To(Equal("from-flag"))
			Expect(config.Host).To(Equal("https://ghe.example.com"))
			Expect(config.RetryMax).To(Equal(3))
			Expect(config.Debug).To(BeTrue())
		})

		It("does not print the stored token in help", func() {
			command := MakeCommands(config)
			command.SetOut(stdout)
			command.SetArgs([]string{"--help"})
			Expect(command.Execute()).To(Succeed())

			Expect(stdout.String()).To(ContainSubstring("--token"))
			Expect(stdout.String()).NotTo(ContainSubstring("from-settings"))
		})
	})

	Describe("collaborator", func() {
		It("requires a token", func() {
			config.Token = ""
			command := MakeCommands(config)
			command.SetOut(stdout)
			command.SetErr(new(bytes.Buffer))
			command.SetArgs([]string{"collaborator", "list", "octokit/octokit.net"})

			err := command.Execute()
			Expect(err).To(MatchError(ContainSubstring("a GitHub token is required")))
		})
	})

	Describe("version", func() {
		It("prints the version and commit", func() {
			command := MakeCommands(config)
			command.SetOut(stdout)
			command.SetArgs([]string{"version"})
			Expect(command.Execute()).To(Succeed())

			Expect(strings.TrimSpace(stdout.String())).To(Equal(version.Version + "+" + version.Commit))
		})
	})
})
