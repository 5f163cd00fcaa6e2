package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headerAuth struct {
	value string
	err   error
}

func (h headerAuth) Authenticate(_ context.Context, req *http.Request) error {
	if h.err != nil {
		return h.err
	}
	req.Header.Set("Authorization", h.value)
	return nil
}

func TestHTTP_Send(t *testing.T) {
	var got struct {
		method, contentType, auth, custom string
		body                              string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.custom = r.Header.Get("X-AnchorMailbox")
		b, _ := io.ReadAll(r.Body)
		got.body = string(b)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer srv.Close()

	tr := NewHTTP()
	resp, err := tr.Send(context.Background(), &Request{
		URL:         srv.URL,
		ContentType: ContentTypeSOAP,
		Header:      http.Header{"X-AnchorMailbox": {"batman@gothamcity.com"}},
		Body:        []byte("<envelope/>"),
		Credentials: headerAuth{value: "Basic abc"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<ok/>", string(resp.Body))
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, ContentTypeSOAP, got.contentType)
	assert.Equal(t, "Basic abc", got.auth)
	assert.Equal(t, "batman@gothamcity.com", got.custom)
	assert.Equal(t, "<envelope/>", got.body)
}

func TestHTTP_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://autodiscover.example.com/autodiscover/autodiscover.xml", http.StatusFound)
	}))
	defer srv.Close()

	resp, err := NewHTTP().Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://autodiscover.example.com/autodiscover/autodiscover.xml", resp.Header.Get("Location"))
}

func TestHTTP_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := NewHTTP(WithTimeout(50*time.Millisecond)).Send(context.Background(), &Request{URL: srv.URL})
	require.Error(t, err)

	var te *Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindTimeout, te.Kind)
	assert.True(t, IsTimeout(err))
}

func TestHTTP_ConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewHTTP().Send(context.Background(), &Request{URL: addr})
	var te *Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindConnect, te.Kind)
}

func TestHTTP_AuthFailure(t *testing.T) {
	_, err := NewHTTP().Send(context.Background(), &Request{
		URL:         "https://mail.example.com/EWS/Exchange.asmx",
		Credentials: headerAuth{err: assert.AnError},
	})
	var te *Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindAuth, te.Kind)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHTTP_DebugCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<pong/>"))
	}))
	defer srv.Close()

	var traces []string
	tr := NewHTTP(WithDebugCallback(func(s string) { traces = append(traces, s) }))
	_, err := tr.Send(context.Background(), &Request{
		URL:         srv.URL,
		Body:        []byte("<ping/>"),
		Credentials: headerAuth{value: "Basic c2VjcmV0"},
	})
	require.NoError(t, err)

	require.Len(t, traces, 2)
	assert.Contains(t, traces[0], "<ping/>")
	assert.Contains(t, traces[0], "Authorization: [redacted]")
	assert.NotContains(t, traces[0], "c2VjcmV0")
	assert.Contains(t, traces[1], "<pong/>")
}

func TestHTTP_Proxy(t *testing.T) {
	var proxied bool
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = strings.HasPrefix(r.RequestURI, "http://")
		_, _ = w.Write([]byte("<via-proxy/>"))
	}))
	defer proxy.Close()

	proxyURL, err := url.Parse(proxy.URL)
	require.NoError(t, err)

	tr := NewHTTP(WithProxy(proxyURL), WithProxyTunnel(false))
	resp, err := tr.Send(context.Background(), &Request{URL: "http://mail.example.invalid/EWS/Exchange.asmx"})
	require.NoError(t, err)
	assert.True(t, proxied)
	assert.Equal(t, "<via-proxy/>", string(resp.Body))
}

type countingTransport struct {
	delegate http.RoundTripper
	calls    int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.delegate.RoundTrip(req)
}

func TestHTTP_WithRoundTripper(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<tls/>"))
	}))
	defer srv.Close()

	t.Run("shared pool rejects the test certificate", func(t *testing.T) {
		_, err := NewHTTP().Send(context.Background(), &Request{URL: srv.URL})
		require.Error(t, err)
	})

	t.Run("custom round tripper is used", func(t *testing.T) {
		rt := &countingTransport{delegate: srv.Client().Transport}
		resp, err := NewHTTP(WithRoundTripper(rt)).Send(context.Background(), &Request{URL: srv.URL})
		require.NoError(t, err)
		assert.Equal(t, "<tls/>", string(resp.Body))
		assert.Equal(t, 1, rt.calls)
	})

	t.Run("proxy is ignored for a custom round tripper", func(t *testing.T) {
		proxyURL, err := url.Parse("http://proxy.example.invalid:3128")
		require.NoError(t, err)
		rt := &countingTransport{delegate: srv.Client().Transport}
		resp, err := NewHTTP(WithRoundTripper(rt), WithProxy(proxyURL)).Send(context.Background(), &Request{URL: srv.URL})
		require.NoError(t, err)
		assert.Equal(t, "<tls/>", string(resp.Body))
		assert.Equal(t, 1, rt.calls)
	})
}

func TestPool_ReferenceCounting(t *testing.T) {
	before := References()

	Acquire()
	Acquire()
	assert.Equal(t, before+2, References())

	Release()
	Release()
	assert.Equal(t, before, References())

	if before == 0 {
		Release()
		assert.Equal(t, 0, References())
	}
}

func TestRedact(t *testing.T) {
	in := "POST / HTTP/1.1\r\nAuthorization: NTLM abc\r\nHost: x\r\n\r\nauthorization: in body"
	out := redact(in)
	assert.Contains(t, out, "Authorization: [redacted]")
	assert.Contains(t, out, "authorization: in body")
	assert.NotContains(t, out, "NTLM abc")
}
