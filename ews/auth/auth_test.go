package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Azure/go-ntlmssp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://mail.example.com/EWS/Exchange.asmx", http.NoBody)
	require.NoError(t, err)
	return req
}

func TestBasic_Authenticate(t *testing.T) {
	req := newRequest(t)
	require.NoError(t, NewBasic("dduck@duckburg.onmicrosoft.com", "quack").Authenticate(context.Background(), req))

	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "dduck@duckburg.onmicrosoft.com", user)
	assert.Equal(t, "quack", pass)
}

func TestBasic_MissingUser(t *testing.T) {
	err := NewBasic("", "x").Authenticate(context.Background(), newRequest(t))
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNTLM_Account(t *testing.T) {
	tests := []struct {
		name     string
		creds    *NTLM
		expected string
	}{
		{name: "domain and user", creds: NewNTLM("bwayne", "secret", "GOTHAM"), expected: `GOTHAM\bwayne`},
		{name: "no domain", creds: NewNTLM("bwayne", "secret", ""), expected: "bwayne"},
		{name: "domain already in user", creds: NewNTLM(`WAYNE\bwayne`, "secret", "GOTHAM"), expected: `WAYNE\bwayne`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.creds.Account())
		})
	}
}

func TestNTLM_WrapsNegotiator(t *testing.T) {
	creds := NewNTLM("bwayne", "secret", "GOTHAM")
	rt := creds.WrapRoundTripper(http.DefaultTransport)
	assert.IsType(t, ntlmssp.Negotiator{}, rt)

	req := newRequest(t)
	require.NoError(t, creds.Authenticate(context.Background(), req))
	user, _, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, `GOTHAM\bwayne`, user)
}

func TestOAuth2_Endpoint(t *testing.T) {
	o := NewOAuth2("contoso.onmicrosoft.com", "id", "secret")
	assert.Equal(t, "https://login.microsoftonline.com/contoso.onmicrosoft.com/oauth2/token", o.Endpoint())

	o.TokenURL = "http://localhost/token"
	assert.Equal(t, "http://localhost/token", o.Endpoint())
}

func TestOAuth2_Authenticate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "my-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "my-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, DefaultResource, r.PostForm.Get("resource"))
		assert.Equal(t, DefaultScope, r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "eyJ0eXAi",
			"token_type":   "Bearer",
			"expires_in":   "3599",
		})
	}))
	defer srv.Close()

	o := NewOAuth2("contoso", "my-client", "my-secret")
	o.TokenURL = srv.URL

	for i := 0; i < 2; i++ {
		req := newRequest(t)
		require.NoError(t, o.Authenticate(context.Background(), req))
		assert.Equal(t, "Bearer eyJ0eXAi", req.Header.Get("Authorization"))
	}
	assert.Equal(t, int32(1), calls.Load(), "token should be cached")
}

func TestOAuth2_TokenEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	o := NewOAuth2("contoso", "my-client", "wrong")
	o.TokenURL = srv.URL

	err := o.Authenticate(context.Background(), newRequest(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch oauth2 token")
}

func TestOAuth2_MissingClientID(t *testing.T) {
	_, err := NewOAuth2("contoso", "", "").Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
