package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/custodia-labs/ews-go/internal/logger"
)

// DefaultTimeout bounds a single round trip unless overridden.
const DefaultTimeout = 60 * time.Second

// HTTP is the net/http implementation of Transport.
type HTTP struct {
	timeout     time.Duration
	proxy       *url.URL
	proxyTunnel bool
	debug       func(string)
	base        http.RoundTripper

	proxyOnce sync.Once
	proxied   http.RoundTripper
}

// Option configures an HTTP transport.
type Option func(*HTTP)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTP) { t.timeout = d }
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxy *url.URL) Option {
	return func(t *HTTP) { t.proxy = proxy }
}

// WithProxyTunnel controls whether https targets are tunnelled through the
// proxy with CONNECT. When disabled only plain-http targets are proxied,
// since net/http cannot forward https without a tunnel. Enabled by default.
func WithProxyTunnel(tunnel bool) Option {
	return func(t *HTTP) { t.proxyTunnel = tunnel }
}

// WithDebugCallback receives a trace of every request and response.
// Authorization headers are redacted.
func WithDebugCallback(fn func(string)) Option {
	return func(t *HTTP) { t.debug = fn }
}

// WithRoundTripper replaces the shared connection pool.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(t *HTTP) { t.base = rt }
}

// NewHTTP creates an HTTP transport.
func NewHTTP(opts ...Option) *HTTP {
	t := &HTTP{timeout: DefaultTimeout, proxyTunnel: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Timeout returns the configured per-request timeout.
func (t *HTTP) Timeout() time.Duration {
	return t.timeout
}

// Send implements Transport. Redirects are returned to the caller rather
// than followed.
func (t *HTTP) Send(ctx context.Context, r *Request) (*Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	method := r.Method
	if method == "" {
		method = http.MethodPost
	}

	var body io.Reader = http.NoBody
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, &Error{Kind: KindOther, Message: fmt.Sprintf("create request: %v", err), Err: err}
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	if r.Credentials != nil {
		if err := r.Credentials.Authenticate(ctx, req); err != nil {
			return nil, &Error{Kind: KindAuth, Message: err.Error(), Err: err}
		}
	}

	client := &http.Client{
		Transport: t.roundTripper(req.URL, r.Credentials),
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		terr := Classify(err)
		logger.Debug("transport: %s %s failed after %s: %v", method, r.URL, time.Since(start), err)
		return nil, terr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Classify(fmt.Errorf("read response: %w", err))
	}

	logger.Debug("transport: %s %s -> %d (%d bytes, %s)",
		method, r.URL, resp.StatusCode, len(data), time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (t *HTTP) roundTripper(target *url.URL, creds Authenticator) http.RoundTripper {
	rt := t.base
	if rt == nil {
		rt = sharedTransport()
	}

	if t.proxy != nil && (t.proxyTunnel || target.Scheme == "http") {
		rt = t.proxiedTransport(rt)
	}

	if t.debug != nil {
		rt = &traceTransport{delegate: rt, emit: t.debug}
	}

	if w, ok := creds.(RoundTripperWrapper); ok {
		rt = w.WrapRoundTripper(rt)
	}
	return rt
}

func (t *HTTP) proxiedTransport(rt http.RoundTripper) http.RoundTripper {
	t.proxyOnce.Do(func() {
		base, ok := rt.(*http.Transport)
		if !ok {
			logger.Warn("transport: proxy ignored for custom round tripper %T", rt)
			t.proxied = rt
			return
		}
		withProxy := base.Clone()
		withProxy.Proxy = http.ProxyURL(t.proxy)
		t.proxied = withProxy
	})
	return t.proxied
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Timeout()
}
