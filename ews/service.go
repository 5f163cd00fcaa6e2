// Package ews is a client for Microsoft Exchange Web Services.
//
// A Service sends one SOAP request per method call and maps the response
// onto the typed items, folders and ids of this package, or onto one of the
// typed errors in errors.go. The library never retries; ErrorServerBusy
// back-off hints only delay the next call through the RateLimiter.
//
//	svc := ews.NewService(url, auth.NewNTLM(user, pass, domain))
//	defer svc.Close()
//	id, err := svc.CreateItem(ctx, task, ews.CreateItemOptions{})
package ews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/logger"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Service is the EWS facade bound to one endpoint and one set of
// credentials. It is not safe for concurrent use; create one Service per
// goroutine. Close releases the shared connection pool.
type Service struct {
	url       string
	creds     transport.Authenticator
	transport transport.Transport
	headers   envelopeHeaders
	limiter   *RateLimiter
	machine   callMachine
	closed    bool
}

type serviceConfig struct {
	transport transport.Transport
	httpOpts  []transport.Option
	headers   envelopeHeaders
	limiter   *RateLimiter
	observer  StateObserver
}

// Option configures a Service.
type Option func(*serviceConfig)

// WithServerVersion sets the RequestServerVersion header.
func WithServerVersion(v ServerVersion) Option {
	return func(c *serviceConfig) { c.headers.version = v }
}

// WithTransport replaces the HTTP transport. The timeout, proxy and debug
// options have no effect on a custom transport.
func WithTransport(t transport.Transport) Option {
	return func(c *serviceConfig) { c.transport = t }
}

// WithTimeout bounds every HTTP round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *serviceConfig) { c.httpOpts = append(c.httpOpts, transport.WithTimeout(d)) }
}

// WithProxy routes requests through proxy.
func WithProxy(proxy *url.URL) Option {
	return func(c *serviceConfig) { c.httpOpts = append(c.httpOpts, transport.WithProxy(proxy)) }
}

// WithProxyTunnel controls CONNECT tunnelling through the proxy.
func WithProxyTunnel(tunnel bool) Option {
	return func(c *serviceConfig) { c.httpOpts = append(c.httpOpts, transport.WithProxyTunnel(tunnel)) }
}

// WithDebugCallback receives a redacted trace of every request and response.
func WithDebugCallback(fn func(string)) Option {
	return func(c *serviceConfig) { c.httpOpts = append(c.httpOpts, transport.WithDebugCallback(fn)) }
}

// WithRateLimit paces requests with a private limiter.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(c *serviceConfig) { c.limiter = NewRateLimiter(cfg) }
}

// WithRateLimiter shares limiter with other services.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(c *serviceConfig) { c.limiter = limiter }
}

// WithImpersonation acts on behalf of another mailbox.
func WithImpersonation(kind ImpersonationKind, value string) Option {
	return func(c *serviceConfig) {
		c.headers.impersonation = &Impersonation{Kind: kind, Value: value}
	}
}

// WithMailboxCulture sets the MailboxCulture header, for example "en-US".
func WithMailboxCulture(culture string) Option {
	return func(c *serviceConfig) { c.headers.culture = culture }
}

// WithTimeZone sets the TimeZoneContext header to a Windows time zone id.
func WithTimeZone(id string) Option {
	return func(c *serviceConfig) { c.headers.timeZone = id }
}

// WithStateObserver is called on every call state transition.
func WithStateObserver(fn StateObserver) Option {
	return func(c *serviceConfig) { c.observer = fn }
}

// NewService creates a service for the EWS endpoint at endpoint, usually
// https://host/EWS/Exchange.asmx. creds may be nil for a transport that
// authenticates on its own.
func NewService(endpoint string, creds transport.Authenticator, opts ...Option) *Service {
	cfg := serviceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.transport == nil {
		cfg.transport = transport.NewHTTP(cfg.httpOpts...)
	}
	if cfg.limiter == nil {
		cfg.limiter = NewRateLimiter(DefaultRateLimit)
	}
	transport.Acquire()

	return &Service{
		url:       endpoint,
		creds:     creds,
		transport: cfg.transport,
		headers:   cfg.headers,
		limiter:   cfg.limiter,
		machine:   callMachine{observer: cfg.observer},
	}
}

// URL returns the EWS endpoint.
func (s *Service) URL() string {
	return s.url
}

// ServerVersion returns the version sent in RequestServerVersion.
func (s *Service) ServerVersion() ServerVersion {
	if s.headers.version == "" {
		return DefaultServerVersion
	}
	return s.headers.version
}

// State returns the phase of the call in progress, or StateIdle.
func (s *Service) State() CallState {
	return s.machine.State()
}

// Close releases the shared connection pool. Calls after Close fail with
// ErrServiceClosed.
func (s *Service) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	transport.Release()
	return nil
}

// call runs one request through the call state machine. build renders the
// element placed in soap:Body; dispatch maps the element found in the
// response body onto results.
func (s *Service) call(
	ctx context.Context,
	op string,
	build func() (*etree.Element, error),
	dispatch func(resp *etree.Element) error,
) error {
	if s.closed {
		return ErrServiceClosed
	}
	m := &s.machine
	m.begin(op)

	body, err := build()
	if err != nil {
		m.to(StateIdle)
		return err
	}
	payload, err := s.headers.frame(body).WriteToBytes()
	if err != nil {
		m.to(StateIdle)
		return fmt.Errorf("serialize %s request: %w", op, err)
	}

	m.to(StateAwaiting)
	resp, err := s.send(ctx, payload)
	if err != nil {
		m.to(StateFaulted)
		m.to(StateIdle)
		return err
	}

	m.to(StateParsing)
	el, err := parseEnvelope(resp)
	if err != nil {
		s.recordBackOff(err)
		m.to(StateFaulted)
		m.to(StateIdle)
		return err
	}

	m.to(StateDispatching)
	err = dispatch(el)
	s.recordBackOff(err)
	m.to(StateIdle)
	return err
}

func (s *Service) send(ctx context.Context, payload []byte) (*transport.Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, transport.Classify(err)
	}

	header := http.Header{}
	header.Set("client-request-id", uuid.NewString())
	header.Set("return-client-request-id", "true")
	req := &transport.Request{
		Method:      http.MethodPost,
		URL:         s.url,
		ContentType: transport.ContentTypeSOAP,
		Header:      header,
		Body:        payload,
		Credentials: s.creds,
	}
	logger.Debug("ews: %s request (%d bytes)", s.machine.op, len(payload))

	resp, err := s.transport.Send(ctx, req)
	if err != nil {
		return nil, transport.Classify(err)
	}
	return resp, nil
}

// recordBackOff forwards a server back-off hint to the rate limiter.
func (s *Service) recordBackOff(err error) {
	if err == nil {
		return
	}
	ms := 0
	var ee *ExchangeError
	var fe *SOAPFaultError
	switch {
	case errors.As(err, &ee):
		ms = ee.BackOffMilliseconds
	case errors.As(err, &fe):
		ms = fe.BackOffMilliseconds
	}
	if ms > 0 {
		logger.Warn("ews: server busy, next request delayed by %dms", ms)
		s.limiter.RecordBackOff(time.Duration(ms) * time.Millisecond)
	}
}

// RawRequest frames body, an EWS request element such as
// <m:GetFolder>…</m:GetFolder>, sends it and returns the serialized element
// found in the response's soap:Body. Response messages are not checked.
func (s *Service) RawRequest(ctx context.Context, body string) (string, error) {
	var out string
	err := s.call(ctx, "RawRequest",
		func() (*etree.Element, error) {
			doc, err := xmldom.ParseString(body)
			if err != nil {
				return nil, err
			}
			if doc.Root() == nil {
				return nil, &ProtocolError{Text: "RawRequest: empty request body"}
			}
			return doc.Root(), nil
		},
		func(resp *etree.Element) error {
			out = xmldom.String(xmldom.Detach(resp))
			return nil
		})
	return out, err
}
