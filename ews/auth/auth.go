// Package auth holds the credential types an EWS service can be configured
// with.
//
// Every credential implements transport.Authenticator and decorates outgoing
// requests:
//   - NTLM negotiates on the connection (DOMAIN\user:password)
//   - Basic sends an Authorization: Basic header
//   - OAuth2 acquires a bearer token with the client-credentials grant
//
// # OAuth2
//
// Tokens are fetched from https://login.microsoftonline.com/<tenant>/oauth2/token
// with client_id, client_secret, resource and scope in the form body and are
// cached until shortly before they expire.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Azure/go-ntlmssp"
)

// ErrMissingCredentials indicates a credential was built without a user name
// or client id.
var ErrMissingCredentials = errors.New("auth: missing credentials")

// Basic is HTTP Basic authentication.
type Basic struct {
	Username string
	Password string
}

// NewBasic returns Basic credentials.
func NewBasic(username, password string) *Basic {
	return &Basic{Username: username, Password: password}
}

// Authenticate sets the Authorization header.
func (b *Basic) Authenticate(_ context.Context, req *http.Request) error {
	if b.Username == "" {
		return ErrMissingCredentials
	}
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

// NTLM is NTLM authentication. Domain may be empty when Username already
// carries a DOMAIN\ prefix.
type NTLM struct {
	Username string
	Password string
	Domain   string
}

// NewNTLM returns NTLM credentials.
func NewNTLM(username, password, domain string) *NTLM {
	return &NTLM{Username: username, Password: password, Domain: domain}
}

// Account returns the DOMAIN\user form sent during negotiation.
func (n *NTLM) Account() string {
	if n.Domain == "" || strings.Contains(n.Username, `\`) {
		return n.Username
	}
	return n.Domain + `\` + n.Username
}

// Authenticate stores the account on the request. The negotiator installed by
// WrapRoundTripper turns it into the NTLM handshake.
func (n *NTLM) Authenticate(_ context.Context, req *http.Request) error {
	if n.Username == "" {
		return ErrMissingCredentials
	}
	req.SetBasicAuth(n.Account(), n.Password)
	return nil
}

// WrapRoundTripper installs the NTLM negotiator.
func (n *NTLM) WrapRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return ntlmssp.Negotiator{RoundTripper: rt}
}
