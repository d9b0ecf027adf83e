package collaborator_test

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/olekukonko/tablewriter"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/spf13/cobra"

	"github.com/collabctl/collabctl/api/header"
	"github.com/collabctl/collabctl/cmd/collaborator"
	"github.com/collabctl/collabctl/errs"
	"github.com/collabctl/collabctl/settings"
)

const collaboratorsPath = "/repos/octokit/octokit.net/collaborators"

var jsonHeader = http.Header{"Content-Type": []string{"application/json; charset=utf-8"}}

type fakeReader struct {
	confirm bool
	asked   []string
}

func (f *fakeReader) AskConfirm(msg string) bool {
	f.asked = append(f.asked, msg)
	return f.confirm
}

func tableString(header []string, rows [][]string) string {
	res := &strings.Builder{}
	table := tablewriter.NewWriter(res)
	table.SetHeader(header)
	for _, r := range rows {
		table.Append(r)
	}
	table.Render()
	return res.String()
}

var _ = Describe("Collaborator command", func() {
	var (
		server  *ghttp.Server
		reader  *fakeReader
		preRunE func(cmd *cobra.Command, args []string) error
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		execute func(args ...string) error
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		reader = &fakeReader{confirm: true}
		preRunE = func(_ *cobra.Command, _ []string) error { return nil }
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)

		execute = func(args ...string) error {
			config := &settings.Config{
				Host:       server.URL(),
				Token:      "testtoken",
				HTTPClient: http.DefaultClient,
			}
			command := collaborator.NewCollaboratorCommand(config, preRunE, collaborator.CustomReader(reader))
			command.SetOut(stdout)
			command.SetErr(stderr)
			command.SetArgs(args)
			return command.Execute()
		}
	})

	AfterEach(func() {
		server.Close()
		header.SetCommandStr("")
	})

	Describe("list", func() {
		It("prints every collaborator in a table", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", collaboratorsPath),
					ghttp.VerifyHeaderKV("Authorization", "token testtoken"),
					ghttp.VerifyHeaderKV("Accept", "application/vnd.github+json"),
					ghttp.VerifyHeaderKV("X-Collabctl-Command", "list"),
					ghttp.RespondWith(http.StatusOK, `[
						{"login": "octocat", "id": 1, "type": "User", "role_name": "admin"},
						{"login": "hubot", "id": 2, "type": "Bot", "role_name": "read"}
					]`, jsonHeader),
				),
			)

			Expect(execute("list", "octokit/octokit.net")).To(Succeed())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
			Expect(stdout.String()).To(Equal(tableString(
				[]string{"Login", "ID", "Type", "Role"},
				[][]string{{"octocat", "1", "User", "admin"}, {"hubot", "2", "Bot", "read"}},
			)))
		})

		It("forwards the paging flags", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", collaboratorsPath, "page=3&per_page=5"),
					ghttp.RespondWith(http.StatusOK, `[{"login": "octocat", "id": 1, "type": "User"}]`, jsonHeader),
				),
			)

			Expect(execute("list", "octokit/octokit.net", "--page-size", "5", "--start-page", "3", "--page-count", "1")).To(Succeed())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		It("returns the API error", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusForbidden, `{"message": "Must have push access to view repository collaborators."}`, jsonHeader),
			)

			err := execute("list", "octokit/octokit.net")
			Expect(err).To(MatchError("Must have push access to view repository collaborators."))
		})

		Context("without a repository argument", func() {
			var wd, dir string

			BeforeEach(func() {
				var err error
				wd, err = os.Getwd()
				Expect(err).ShouldNot(HaveOccurred())
				dir, err = os.MkdirTemp("", "collabctl-list-test-")
				Expect(err).ShouldNot(HaveOccurred())
				Expect(os.Chdir(dir)).To(Succeed())
			})

			AfterEach(func() {
				Expect(os.Chdir(wd)).To(Succeed())
				Expect(os.RemoveAll(dir)).To(Succeed())
			})

			initRepository := func(remoteURL string) {
				repo, err := gogit.PlainInit(dir, false)
				Expect(err).ShouldNot(HaveOccurred())
				_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
					Name: "origin",
					URLs: []string{remoteURL},
				})
				Expect(err).ShouldNot(HaveOccurred())
			}

			It("uses the origin remote of the current repository", func() {
				// the API host and the git host are the same machine, as on GitHub Enterprise
				initRepository(server.URL() + "/octokit/octokit.net.git")

				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", collaboratorsPath),
						ghttp.RespondWith(http.StatusOK, `[]`, jsonHeader),
					),
				)

				Expect(execute("list")).To(Succeed())
				Expect(server.ReceivedRequests()).To(HaveLen(1))
			})

			It("rejects a remote on another host", func() {
				initRepository("https://github.com/octokit/octokit.net.git")

				err := execute("list")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("the origin remote is on github.com"))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})

			It("fails outside of a git repository", func() {
				err := execute("list", ".")
				Expect(err).To(MatchError("This command must be run from inside a git repository"))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})
		})

		It("rejects an invalid repository slug without calling the API", func() {
			err := execute("list", "octokit")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid repository slug"))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("stops when the validator fails", func() {
			preRunE = func(_ *cobra.Command, _ []string) error {
				return errs.AuthRequired(errors.New("a GitHub token is required"))
			}

			err := execute("list", "octokit/octokit.net")
			Expect(errors.Is(err, errs.ErrAuthRequired)).To(BeTrue())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Describe("check", func() {
		It("reports a collaborator", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", collaboratorsPath+"/octocat"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			Expect(execute("check", "octokit/octokit.net", "octocat")).To(Succeed())
			Expect(stdout.String()).To(Equal("octocat is a collaborator on octokit/octokit.net\n"))
		})

		It("reports a user that is not a collaborator without failing", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", collaboratorsPath+"/ghost"),
					ghttp.RespondWith(http.StatusNotFound, `{"message": "Not Found"}`, jsonHeader),
				),
			)

			Expect(execute("check", "octokit/octokit.net", "ghost")).To(Succeed())
			Expect(stdout.String()).To(Equal("ghost is not a collaborator on octokit/octokit.net\n"))
		})

		It("fails on other errors", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusUnauthorized, `{"message": "Bad credentials"}`, jsonHeader),
			)

			Expect(execute("check", "octokit/octokit.net", "ghost")).To(MatchError("Bad credentials"))
		})
	})

	Describe("add", func() {
		It("adds with the server default permission", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("PUT", collaboratorsPath+"/octocat"),
					ghttp.RespondWith(http.StatusCreated, `{"id": 1}`, jsonHeader),
				),
			)

			Expect(execute("add", "octokit/octokit.net", "octocat")).To(Succeed())
			Expect(stdout.String()).To(Equal("Added octocat to octokit/octokit.net\n"))
		})

		It("sends the requested permission", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("PUT", collaboratorsPath+"/octocat"),
					ghttp.VerifyJSON(`{"permission": "triage"}`),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			Expect(execute("add", "octokit/octokit.net", "octocat", "--permission", "triage")).To(Succeed())
		})

		It("rejects an unknown permission", func() {
			err := execute("add", "octokit/octokit.net", "octocat", "--permission", "owner")
			Expect(errors.Is(err, errs.ErrInvalidArgument)).To(BeTrue())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Describe("remove", func() {
		It("asks for confirmation and removes", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("DELETE", collaboratorsPath+"/octocat"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			Expect(execute("remove", "octokit/octokit.net", "octocat")).To(Succeed())
			Expect(reader.asked).To(Equal([]string{"Remove octocat from octokit/octokit.net?"}))
			Expect(stdout.String()).To(Equal("Removed octocat from octokit/octokit.net\n"))
		})

		It("does nothing when the user declines", func() {
			reader.confirm = false

			Expect(execute("remove", "octokit/octokit.net", "octocat")).To(Succeed())
			Expect(stdout.String()).To(Equal("Canceled\n"))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("never turns a dot segment into a repository request", func() {
			err := execute("remove", "octokit/octokit.net", "..", "--yes")
			Expect(errors.Is(err, errs.ErrInvalidArgument)).To(BeTrue())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("skips the prompt with --yes", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("DELETE", collaboratorsPath+"/octocat"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			Expect(execute("remove", "octokit/octokit.net", "octocat", "--yes")).To(Succeed())
			Expect(reader.asked).To(BeEmpty())
		})
	})

	Describe("permission", func() {
		It("prints the permission and role", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", collaboratorsPath+"/octocat/permission"),
					ghttp.RespondWith(http.StatusOK, `{"permission": "write", "role_name": "maintain", "user": {"login": "octocat"}}`, jsonHeader),
				),
			)

			Expect(execute("permission", "octokit/octokit.net", "octocat")).To(Succeed())
			Expect(stdout.String()).To(Equal(tableString(
				[]string{"User", "Permission", "Role"},
				[][]string{{"octocat", "write", "maintain"}},
			)))
		})
	})
})
