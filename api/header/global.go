package header

// When the CLI is initialized, we set this to a string of the current CLI subcommand
// (e.g. `collaborator list`) with no args or flags, so we include it as a header in API requests.
var cliCommandStr string = ""

// CommandHeader is the request header carrying the current subcommand.
const CommandHeader = "X-Collabctl-Command"

func SetCommandStr(commandStr string) {
	cliCommandStr = commandStr
}

func GetCommandStr() string {
	return cliCommandStr
}
