package ews

import "fmt"

// ResponseCode is the ResponseCode element of an EWS response message.
type ResponseCode int

var responseCodesByName = func() map[string]ResponseCode {
	m := make(map[string]ResponseCode, len(responseCodeNames))
	for i, name := range responseCodeNames {
		m[name] = ResponseCode(i)
	}
	return m
}()

// String returns the canonical wire name of c.
func (c ResponseCode) String() string {
	if c < 0 || int(c) >= len(responseCodeNames) {
		return fmt.Sprintf("ResponseCode(%d)", int(c))
	}
	return responseCodeNames[c]
}

// ParseResponseCode maps a wire name to its code. Unknown names fail with a
// ProtocolError.
func ParseResponseCode(s string) (ResponseCode, error) {
	if c, ok := responseCodesByName[s]; ok {
		return c, nil
	}
	return NoError, &ProtocolError{Text: "Unrecognized response code: " + s}
}

// ResponseCodes returns every known code in declaration order.
func ResponseCodes() []ResponseCode {
	out := make([]ResponseCode, len(responseCodeNames))
	for i := range responseCodeNames {
		out[i] = ResponseCode(i)
	}
	return out
}

// ResponseClass is the ResponseClass attribute of a response message.
type ResponseClass string

// Response classes.
const (
	ResponseClassSuccess ResponseClass = "Success"
	ResponseClassWarning ResponseClass = "Warning"
	ResponseClassError   ResponseClass = "Error"
)
