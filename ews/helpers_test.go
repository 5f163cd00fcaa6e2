package ews

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews/ewstest"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

const testEndpoint = "https://exchange.example.com/EWS/Exchange.asmx"

func xmlOf(e *etree.Element) string {
	return xmldom.String(e)
}

// newTestService returns a service backed by a fake transport. The limiter
// is generous so tests never wait on it.
func newTestService(t *testing.T, opts ...Option) (*Service, *ewstest.FakeTransport) {
	t.Helper()
	fake := ewstest.NewFakeTransport()
	opts = append([]Option{
		WithTransport(fake),
		WithRateLimit(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 1000}),
	}, opts...)
	svc := NewService(testEndpoint, nil, opts...)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, fake
}

// lastOperation returns the request element inside soap:Body of the last
// request sent through fake.
func lastOperation(t *testing.T, fake *ewstest.FakeTransport) *etree.Element {
	t.Helper()
	op, err := fake.LastOperation()
	require.NoError(t, err)
	return op
}
