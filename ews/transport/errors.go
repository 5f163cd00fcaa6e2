package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a transport failure.
type ErrorKind string

const (
	// KindConnect is a failure to establish the TCP connection.
	KindConnect ErrorKind = "connect"
	// KindDNS is a name resolution failure.
	KindDNS ErrorKind = "dns"
	// KindTLS is a handshake or certificate verification failure.
	KindTLS ErrorKind = "tls"
	// KindTimeout is a per-call timeout or context deadline.
	KindTimeout ErrorKind = "timeout"
	// KindAuth is a failure to obtain or apply credentials.
	KindAuth ErrorKind = "auth"
	// KindOther is anything else below the HTTP layer.
	KindOther ErrorKind = "other"
)

// Error is returned when a request never produced an HTTP response.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport error (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout.
func (e *Error) Timeout() bool {
	return e.Kind == KindTimeout
}

// Classify wraps err in an *Error with the most specific kind available.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return te
	}

	kind := KindOther
	var (
		dnsErr   *net.DNSError
		opErr    *net.OpError
		netErr   net.Error
		recErr   tls.RecordHeaderError
		verifErr *tls.CertificateVerificationError
		uaErr    x509.UnknownAuthorityError
		hostErr  x509.HostnameError
		invErr   x509.CertificateInvalidError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	case errors.As(err, &dnsErr):
		kind = KindDNS
	case errors.As(err, &verifErr), errors.As(err, &recErr),
		errors.As(err, &uaErr), errors.As(err, &hostErr), errors.As(err, &invErr):
		kind = KindTLS
	case errors.As(err, &opErr) && opErr.Op == "dial":
		kind = KindConnect
	}

	return &Error{Kind: kind, Message: err.Error(), Err: err}
}
