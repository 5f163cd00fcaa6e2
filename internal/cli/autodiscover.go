package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/internal/config"
)

func newAutodiscoverCmd(a *app) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "autodiscover [email]",
		Short: "Find the EWS endpoint of a mailbox",
		Long: `Find the EWS endpoint of a mailbox through autodiscover.

Without an argument the profile's email address is used. The profile's
credentials are sent to the autodiscover service.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProfile(func(p *config.Profile) {
				if len(args) == 1 {
					p.Email = args[0]
				}
			})
			if err != nil {
				return err
			}
			creds, err := a.credentials(cmd, p)
			if err != nil {
				return err
			}

			opts := a.autodiscoverOptions()
			if url != "" {
				opts = append(opts, ews.WithAutodiscoverURL(url))
			}
			res, err := ews.Autodiscover(cmd.Context(), p.Email, creds, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "Autodiscover: %s", p.Email)
			field(w, "Internal EWS URL", res.InternalEWSURL)
			field(w, "External EWS URL", res.ExternalEWSURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "ask this autodiscover URL only")
	return cmd
}
