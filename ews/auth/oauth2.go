package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Default Azure AD endpoint and Exchange Online resource.
const (
	//nolint:gosec // G101: Not a credential, just the OAuth token endpoint template
	defaultTokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/token"
	DefaultResource       = "https://outlook.office365.com"
	DefaultScope          = "https://outlook.office365.com/.default"
)

// OAuth2 authenticates with a bearer token obtained through the
// client-credentials grant.
type OAuth2 struct {
	Tenant       string
	ClientID     string
	ClientSecret string
	Resource     string
	Scope        string
	// TokenURL overrides the endpoint derived from Tenant.
	TokenURL string

	once sync.Once
	src  oauth2.TokenSource
}

// NewOAuth2 returns client-credentials authentication for an Azure AD tenant.
func NewOAuth2(tenant, clientID, clientSecret string) *OAuth2 {
	return &OAuth2{
		Tenant:       tenant,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Resource:     DefaultResource,
		Scope:        DefaultScope,
	}
}

// Endpoint returns the token endpoint.
func (o *OAuth2) Endpoint() string {
	if o.TokenURL != "" {
		return o.TokenURL
	}
	return fmt.Sprintf(defaultTokenURLFormat, url.PathEscape(o.Tenant))
}

func (o *OAuth2) config() *clientcredentials.Config {
	cfg := &clientcredentials.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		TokenURL:     o.Endpoint(),
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	if o.Scope != "" {
		cfg.Scopes = []string{o.Scope}
	}
	if o.Resource != "" {
		cfg.EndpointParams = url.Values{"resource": {o.Resource}}
	}
	return cfg
}

// Token returns a valid access token, fetching a new one when the cached
// token has expired.
func (o *OAuth2) Token(ctx context.Context) (*oauth2.Token, error) {
	if o.ClientID == "" {
		return nil, ErrMissingCredentials
	}
	o.once.Do(func() {
		// The token source keeps the context for refreshes, so it must not be
		// tied to a single call.
		o.src = o.config().TokenSource(context.WithoutCancel(ctx))
	})
	tok, err := o.src.Token()
	if err != nil {
		return nil, fmt.Errorf("fetch oauth2 token: %w", err)
	}
	return tok, nil
}

// Authenticate sets the bearer token.
func (o *OAuth2) Authenticate(ctx context.Context, req *http.Request) error {
	tok, err := o.Token(ctx)
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	return nil
}
