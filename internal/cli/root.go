package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/config"
	"github.com/custodia-labs/ews-go/internal/logger"
)

// Version is set by goreleaser ldflags.
var version = "dev"

// app holds the global flags and the dependencies commands share. Tests
// replace the transport, resolver, password reader and environment.
type app struct {
	verbose    bool
	debugSOAP  bool
	configPath string
	envFile    string

	transport transport.Transport
	resolver  ews.SRVResolver
	passwords config.PasswordReader
	lookupEnv func(string) (string, bool)
	stdin     io.Reader
	stdinFD   int
}

func newApp() *app {
	return &app{
		passwords: config.TerminalPasswordReader,
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		stdinFD:   int(os.Stdin.Fd()),
	}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ewsctl",
		Short: "Command line client for Exchange Web Services",
		Long: `ewsctl talks to Microsoft Exchange through Exchange Web Services.

It creates and finds items, walks calendars, resolves names, manages
delegates and keeps resumable synchronization cursors on disk.

The connection profile is read from ~/.config/ewsctl/config.toml, a .env
file and EWS_* environment variables, in that order.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose debug output")
	root.PersistentFlags().BoolVar(&a.debugSOAP, "debug-soap", false, "print every SOAP request and response to stderr")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "profile file (default ~/.config/ewsctl/config.toml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file with EWS_* overrides (default .env)")

	// Use PersistentPreRunE to set verbose mode before any command executes
	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(a.verbose)
		return nil
	}

	root.AddCommand(
		newVersionCmd(),
		newAutodiscoverCmd(a),
		newCreateTaskCmd(a),
		newCreateContactCmd(a),
		newFindUnreadCmd(a),
		newFindMessagesCmd(a),
		newFindTasksCmd(a),
		newCalendarCmd(a),
		newRoomsCmd(a),
		newDelegatesCmd(a),
		newResolveCmd(a),
		newSubscribeCmd(a),
		newSyncCmd(a),
		newUpdateFolderCmd(a),
		newSaveAttachmentCmd(a),
		newRawCmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(newApp()).Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}
