package transport

import (
	"net/http"
	"net/http/httputil"
	"strings"
)

// traceTransport hands a dump of every request and response to emit while
// delegating the round trip.
type traceTransport struct {
	delegate http.RoundTripper
	emit     func(string)
}

func (t *traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.emit(redact(string(dump)))
	}
	resp, err := t.delegate.RoundTrip(req)
	if err != nil {
		t.emit("error: " + err.Error())
		return nil, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.emit(string(dump))
	}
	return resp, nil
}

func redact(dump string) string {
	lines := strings.Split(dump, "\r\n")
	for i, l := range lines {
		if l == "" {
			break
		}
		if strings.HasPrefix(strings.ToLower(l), "authorization:") {
			lines[i] = "Authorization: [redacted]"
		}
	}
	return strings.Join(lines, "\r\n")
}
