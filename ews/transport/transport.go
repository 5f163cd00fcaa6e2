// Package transport carries SOAP envelopes to an Exchange server.
//
// The EWS core talks to the network only through the Transport interface, so
// tests can substitute a fake (see package ewstest) and callers can plug in
// their own HTTP stack. HTTP is the default implementation built on net/http.
package transport

import (
	"context"
	"net/http"
)

// ContentTypeSOAP is the content type of every EWS request.
const ContentTypeSOAP = "text/xml; charset=utf-8"

// Authenticator decorates an outgoing request with credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, req *http.Request) error
}

// RoundTripperWrapper is implemented by authenticators that need to take part
// in the connection handshake, such as NTLM.
type RoundTripperWrapper interface {
	WrapRoundTripper(rt http.RoundTripper) http.RoundTripper
}

// Request is one HTTP exchange. Method defaults to POST.
type Request struct {
	Method      string
	URL         string
	ContentType string
	Header      http.Header
	Body        []byte
	Credentials Authenticator
}

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a request and blocks until the whole response is read.
// Implementations return *Error for failures below the HTTP layer.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts an ordinary function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
