package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/config"
	"github.com/custodia-labs/ews-go/internal/logger"
	"github.com/custodia-labs/ews-go/internal/store"
)

// session is a connected profile.
type session struct {
	profile *config.Profile
	creds   transport.Authenticator
	svc     *ews.Service
}

// loadProfile reads the profile layers. overrides may adjust the profile
// before it is validated.
func (a *app) loadProfile(overrides ...func(*config.Profile)) (*config.Profile, error) {
	p, err := config.Load(config.Options{
		Path:      a.configPath,
		EnvFile:   a.envFile,
		LookupEnv: a.lookupEnv,
	})
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// credentials prompts for a missing password and builds the authenticator.
func (a *app) credentials(cmd *cobra.Command, p *config.Profile) (transport.Authenticator, error) {
	if err := p.PromptPassword(a.passwords, a.stdinFD, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return p.Credentials()
}

func (a *app) autodiscoverOptions() []ews.AutodiscoverOption {
	var opts []ews.AutodiscoverOption
	if a.transport != nil {
		opts = append(opts, ews.WithAutodiscoverTransport(a.transport))
	}
	if a.resolver != nil {
		opts = append(opts, ews.WithSRVResolver(a.resolver))
	}
	return opts
}

// connect loads the profile and opens a service. Without a configured
// endpoint the profile's email address is autodiscovered.
func (a *app) connect(cmd *cobra.Command) (*session, error) {
	p, err := a.loadProfile()
	if err != nil {
		return nil, err
	}
	creds, err := a.credentials(cmd, p)
	if err != nil {
		return nil, err
	}

	endpoint := p.Endpoint
	if endpoint == "" {
		res, err := ews.Autodiscover(cmd.Context(), p.Email, creds, a.autodiscoverOptions()...)
		if err != nil {
			return nil, fmt.Errorf("autodiscover endpoint: %w", err)
		}
		endpoint = res.ExternalEWSURL
		if endpoint == "" {
			endpoint = res.InternalEWSURL
		}
		logger.Debug("cli: autodiscovered %s", endpoint)
	}

	opts, err := p.ServiceOptions()
	if err != nil {
		return nil, err
	}
	if a.transport != nil {
		opts = append(opts, ews.WithTransport(a.transport))
	}
	if a.debugSOAP {
		w := cmd.ErrOrStderr()
		opts = append(opts, ews.WithDebugCallback(func(s string) {
			fmt.Fprintln(w, s)
		}))
	}
	return &session{profile: p, creds: creds, svc: ews.NewService(endpoint, creds, opts...)}, nil
}

func (s *session) Close() {
	if err := s.svc.Close(); err != nil {
		logger.Warn("cli: closing service: %v", err)
	}
}

// mailbox names the mailbox cursors are stored under.
func (s *session) mailbox() string {
	if s.profile.Impersonate != "" {
		return s.profile.Impersonate
	}
	if s.profile.Email != "" {
		return s.profile.Email
	}
	return s.profile.Auth.Username
}

func (s *session) openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, s.profile.Store)
}

// withSession runs fn against a connected session.
func (a *app) withSession(fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := a.connect(cmd)
		if err != nil {
			return credentialHint(err)
		}
		defer s.Close()
		return credentialHint(fn(cmd, s, args))
	}
}

// credentialHint points at the profile when the server rejected it.
func credentialHint(err error) error {
	var he *ews.HTTPError
	if errors.As(err, &he) && ews.IsUnauthorised(he.Code) {
		return fmt.Errorf("%w (check the profile's credentials)", err)
	}
	return err
}

var standardFolders = map[string]ews.StandardFolder{}

func init() {
	for _, f := range []ews.StandardFolder{
		ews.FolderCalendar, ews.FolderContacts, ews.FolderDeletedItems, ews.FolderDrafts,
		ews.FolderInbox, ews.FolderJournal, ews.FolderNotes, ews.FolderOutbox,
		ews.FolderSentItems, ews.FolderTasks, ews.FolderMsgFolderRoot, ews.FolderRoot,
		ews.FolderJunkEmail, ews.FolderSearchFolders, ews.FolderVoiceMail,
		ews.FolderArchiveRoot, ews.FolderArchiveMsgFolderRoot, ews.FolderConversationHistory,
	} {
		standardFolders[string(f)] = f
	}
}

// parseFolder reads a well-known folder name or a folder id.
func parseFolder(s string) (ews.FolderID, error) {
	if s == "" {
		return ews.FolderID{}, errors.New("folder is empty")
	}
	if f, ok := standardFolders[strings.ToLower(s)]; ok {
		return ews.DistinguishedFolderID(f), nil
	}
	return ews.NewFolderID(s, ""), nil
}
