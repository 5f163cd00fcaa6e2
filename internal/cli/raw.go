package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw [file]",
		Short: "Send a hand-written EWS request",
		Long: `Send a hand-written EWS request element and print the response element.

The request is read from file, or from stdin when no file is given. It must
be a single element such as <m:GetFolder>...</m:GetFolder> declaring the
messages and types namespaces it uses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			var body []byte
			var err error
			if len(args) == 1 {
				body, err = os.ReadFile(args[0])
			} else {
				body, err = io.ReadAll(a.stdin)
			}
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			resp, err := s.svc.RawRequest(cmd.Context(), string(body))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp)
			return nil
		}),
	}
}
