package transport

import (
	"crypto/tls"
	"net/http"
	"sync"
	"time"

	"github.com/custodia-labs/ews-go/internal/logger"
)

// pool is the process-wide connection pool shared by every HTTP transport.
// It is created by the first Acquire and its idle connections are closed by
// the last Release.
var pool struct {
	mu   sync.Mutex
	refs int
	rt   *http.Transport
}

// Acquire registers a user of the shared connection pool.
func Acquire() {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	if pool.refs == 0 && pool.rt == nil {
		pool.rt = newBaseTransport()
		logger.Debug("transport: connection pool initialised")
	}
	pool.refs++
}

// Release drops a user of the shared connection pool. Releasing more often
// than acquiring is a no-op.
func Release() {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	if pool.refs == 0 {
		return
	}
	pool.refs--
	if pool.refs == 0 && pool.rt != nil {
		pool.rt.CloseIdleConnections()
		pool.rt = nil
		logger.Debug("transport: connection pool released")
	}
}

// References returns the number of outstanding Acquire calls.
func References() int {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	return pool.refs
}

func sharedTransport() *http.Transport {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	if pool.rt == nil {
		pool.rt = newBaseTransport()
	}
	return pool.rt
}

// newBaseTransport returns an HTTP/1.1-only transport. NTLM binds the
// authentication to a single connection, which HTTP/2 multiplexing breaks.
func newBaseTransport() *http.Transport {
	rt := http.DefaultTransport.(*http.Transport).Clone()
	rt.ForceAttemptHTTP2 = false
	rt.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
	rt.MaxIdleConnsPerHost = 8
	rt.IdleConnTimeout = 90 * time.Second
	return rt
}
