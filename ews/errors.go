package ews

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Sentinel errors returned by the library.
var (
	// ErrUnknownPropertyPath indicates a property path outside the catalog.
	ErrUnknownPropertyPath = errors.New("Unknown property path")

	// ErrEmptySMTPAddress indicates autodiscover was called without an address.
	ErrEmptySMTPAddress = errors.New("Empty SMTP address given")

	// ErrInvalidSMTPAddress indicates an address without a domain part.
	ErrInvalidSMTPAddress = errors.New("No valid SMTP address given")

	// ErrServiceClosed indicates a call on a service after Close.
	ErrServiceClosed = errors.New("ews: service closed")

	// ErrInvalidDateTime indicates a date-time that is not xs:dateTime.
	ErrInvalidDateTime = errors.New("ews: invalid xs:dateTime value")

	// ErrEmptyFileName indicates WriteContentToFile was called without a path.
	ErrEmptyFileName = errors.New("ews: empty file name")
)

// TransportError reports a failure below the HTTP layer.
type TransportError = transport.Error

// ParseError reports XML that could not be parsed.
type ParseError = xmldom.ParseError

// HTTPError reports an HTTP status other than 200 or 500.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP status code: %d (%s)", e.Code, http.StatusText(e.Code))
}

// SOAPFaultError is a SOAP fault that is not a schema validation failure.
// Code and BackOffMilliseconds are filled in when the fault detail carries
// them, as it does for ErrorServerBusy.
type SOAPFaultError struct {
	Text                string
	Code                ResponseCode
	BackOffMilliseconds int
}

func (e *SOAPFaultError) Error() string {
	return e.Text
}

// SchemaValidationError reports that the server rejected the request XML.
// It always points at a bug in request construction.
type SchemaValidationError struct {
	Line      int
	Column    int
	Violation string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("The request failed schema validation: line %d, column %d: %s", e.Line, e.Column, e.Violation)
}

// ExchangeError is a response message with ResponseClass Error or Warning.
// Error returns the canonical name of Code.
type ExchangeError struct {
	Code    ResponseCode
	Message string
	// BackOffMilliseconds is the server's throttling hint, if any.
	BackOffMilliseconds int
}

func (e *ExchangeError) Error() string {
	return e.Code.String()
}

func newExchangeError(code ResponseCode, msg string) *ExchangeError {
	return &ExchangeError{Code: code, Message: msg}
}

// ProtocolError reports a malformed or unexpected server payload.
type ProtocolError struct {
	Text string
}

func (e *ProtocolError) Error() string {
	return e.Text
}

// AutodiscoverError reports that autodiscover could not locate the EWS URL.
type AutodiscoverError struct {
	Code    string
	Message string
}

func (e *AutodiscoverError) Error() string {
	return fmt.Sprintf("%s (error code: %s)", e.Message, e.Code)
}

// CodeOf returns the response code carried by err, or NoError.
func CodeOf(err error) ResponseCode {
	var ee *ExchangeError
	if errors.As(err, &ee) {
		return ee.Code
	}
	var fe *SOAPFaultError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return NoError
}

// IsNotFound reports whether err says an item, folder or attachment is gone.
func IsNotFound(err error) bool {
	switch CodeOf(err) {
	case ErrorItemNotFound, ErrorFolderNotFound, ErrorInvalidAttachmentId,
		ErrorSubscriptionNotFound, ErrorEventNotFound:
		return true
	}
	var he *HTTPError
	return errors.As(err, &he) && he.Code == http.StatusNotFound
}

// IsTransient reports whether the failure may go away on a later attempt.
// The library never retries on its own.
func IsTransient(err error) bool {
	switch CodeOf(err) {
	case ErrorServerBusy, ErrorInternalServerTransientError, ErrorTimeoutExpired,
		ErrorMailboxStoreUnavailable, ErrorConnectionFailed:
		return true
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Kind == transport.KindTimeout || te.Kind == transport.KindConnect
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return IsRetryableStatus(he.Code)
	}
	return false
}

// WrapHTTPStatus converts an unexpected HTTP status into an error. 200 and
// 500 are handled by the envelope parser and yield nil.
func WrapHTTPStatus(statusCode int) error {
	switch statusCode {
	case http.StatusOK, http.StatusInternalServerError:
		return nil
	default:
		return &HTTPError{Code: statusCode}
	}
}

// IsUnauthorised checks if the status code indicates an authentication failure.
func IsUnauthorised(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}

// IsRetryableStatus checks if the status code indicates throttling or a
// temporarily unavailable server.
func IsRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
