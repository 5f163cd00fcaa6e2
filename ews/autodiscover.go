package ews

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/logger"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// MaxAutodiscoverRedirects bounds the redirects Autodiscover follows for
// one candidate URL.
const MaxAutodiscoverRedirects = 10

const autodiscoverPath = "/autodiscover/autodiscover.xml"

// AutodiscoverResult holds the EWS endpoints advertised for a mailbox.
// InternalEWSURL comes from the EXCH protocol and ExternalEWSURL from EXPR;
// either may be empty.
type AutodiscoverResult struct {
	InternalEWSURL string
	ExternalEWSURL string
}

// SRVResolver looks up DNS SRV records. *net.Resolver implements it.
type SRVResolver interface {
	LookupSRV(ctx context.Context, service, proto, name string) (string, []*net.SRV, error)
}

type autodiscoverConfig struct {
	transport transport.Transport
	url       string
	resolver  SRVResolver
}

// AutodiscoverOption configures Autodiscover.
type AutodiscoverOption func(*autodiscoverConfig)

// WithAutodiscoverTransport replaces the HTTP transport.
func WithAutodiscoverTransport(t transport.Transport) AutodiscoverOption {
	return func(c *autodiscoverConfig) { c.transport = t }
}

// WithAutodiscoverURL asks this URL only and skips candidate derivation.
func WithAutodiscoverURL(u string) AutodiscoverOption {
	return func(c *autodiscoverConfig) { c.url = u }
}

// WithSRVResolver replaces the DNS resolver used for the SRV fallback.
func WithSRVResolver(r SRVResolver) AutodiscoverOption {
	return func(c *autodiscoverConfig) { c.resolver = r }
}

// Autodiscover locates the EWS endpoint of address. It asks, in order:
//
//  1. https://<domain>/autodiscover/autodiscover.xml
//  2. https://autodiscover.<domain>/autodiscover/autodiscover.xml
//  3. the https Location that http://autodiscover.<domain>/… redirects to
//  4. the targets of the _autodiscover._tcp.<domain> SRV record
//
// Each candidate may redirect up to MaxAutodiscoverRedirects times, and only
// to https URLs. An <Error> answer ends the search with an
// *AutodiscoverError.
func Autodiscover(ctx context.Context, address string, creds transport.Authenticator, opts ...AutodiscoverOption) (*AutodiscoverResult, error) {
	if address == "" {
		return nil, ErrEmptySMTPAddress
	}
	at := strings.LastIndex(address, "@")
	if at < 1 || at == len(address)-1 {
		return nil, ErrInvalidSMTPAddress
	}
	domain := address[at+1:]

	cfg := autodiscoverConfig{resolver: net.DefaultResolver}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.transport == nil {
		transport.Acquire()
		defer transport.Release()
		cfg.transport = transport.NewHTTP()
	}
	d := &discoverer{transport: cfg.transport, creds: creds, origin: address, address: address}

	if cfg.url != "" {
		return d.ask(ctx, cfg.url)
	}

	var lastErr error
	for _, candidate := range []string{
		"https://" + domain + autodiscoverPath,
		"https://autodiscover." + domain + autodiscoverPath,
	} {
		d.reset()
		res, err := d.ask(ctx, candidate)
		if err == nil || isFinal(err) {
			return res, err
		}
		logger.Debug("autodiscover: %s failed: %v", candidate, err)
		lastErr = err
	}

	d.reset()
	if location, err := d.redirectLocation(ctx, "http://autodiscover."+domain+autodiscoverPath); err == nil {
		res, err := d.ask(ctx, location)
		if err == nil || isFinal(err) {
			return res, err
		}
		lastErr = err
	} else {
		logger.Debug("autodiscover: redirect lookup failed: %v", err)
		lastErr = err
	}

	if cfg.resolver != nil {
		for _, candidate := range srvCandidates(ctx, cfg.resolver, domain) {
			d.reset()
			res, err := d.ask(ctx, candidate)
			if err == nil || isFinal(err) {
				return res, err
			}
			logger.Debug("autodiscover: %s failed: %v", candidate, err)
			lastErr = err
		}
	}

	return nil, fmt.Errorf("autodiscover %s: no candidate answered: %w", domain, lastErr)
}

// isFinal reports errors that end the candidate search.
func isFinal(err error) bool {
	var ae *AutodiscoverError
	if errors.As(err, &ae) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func srvCandidates(ctx context.Context, r SRVResolver, domain string) []string {
	_, records, err := r.LookupSRV(ctx, "autodiscover", "tcp", domain)
	if err != nil {
		logger.Debug("autodiscover: SRV lookup for %s failed: %v", domain, err)
		return nil
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Priority != records[j].Priority {
			return records[i].Priority < records[j].Priority
		}
		return records[i].Weight > records[j].Weight
	})
	var out []string
	for _, rec := range records {
		host := strings.TrimSuffix(rec.Target, ".")
		if host == "" {
			continue
		}
		out = append(out, "https://"+net.JoinHostPort(host, strconv.Itoa(int(rec.Port)))+autodiscoverPath)
	}
	return out
}

type discoverer struct {
	transport transport.Transport
	creds     transport.Authenticator
	origin    string
	address   string
	hops      int
}

// reset starts a new candidate with the caller's address and a fresh
// redirect budget.
func (d *discoverer) reset() {
	d.address = d.origin
	d.hops = 0
}

func (d *discoverer) hop(reason string) error {
	d.hops++
	if d.hops > MaxAutodiscoverRedirects {
		return &ProtocolError{Text: fmt.Sprintf("Autodiscover: more than %d redirects (%s)", MaxAutodiscoverRedirects, reason)}
	}
	return nil
}

// httpsOnly refuses a redirect target that would carry credentials over
// plain http.
func httpsOnly(location string) error {
	u, err := url.Parse(location)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return &ProtocolError{Text: "Autodiscover: refusing redirect to " + location}
	}
	return nil
}

// ask POSTs the autodiscover request to endpoint and follows redirects.
func (d *discoverer) ask(ctx context.Context, endpoint string) (*AutodiscoverResult, error) {
	for {
		logger.Debug("autodiscover: asking %s for %s", endpoint, d.address)
		resp, err := d.transport.Send(ctx, &transport.Request{
			Method:      http.MethodPost,
			URL:         endpoint,
			ContentType: transport.ContentTypeSOAP,
			Body:        autodiscoverRequest(d.address),
			Credentials: d.creds,
		})
		if err != nil {
			return nil, transport.Classify(err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
		case http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect:
			location := resp.Header.Get("Location")
			if location == "" {
				return nil, &ProtocolError{Text: "Autodiscover: redirect without Location"}
			}
			if err := httpsOnly(location); err != nil {
				return nil, err
			}
			if err := d.hop("http " + strconv.Itoa(resp.StatusCode)); err != nil {
				return nil, err
			}
			endpoint = location
			continue
		default:
			return nil, &HTTPError{Code: resp.StatusCode}
		}

		res, next, err := d.parse(resp.Body)
		if err != nil {
			return nil, err
		}
		if next == "" {
			return res, nil
		}
		endpoint = next
	}
}

// parse reads an autodiscover response. A non-empty next asks for another
// round against that URL.
func (d *discoverer) parse(body []byte) (*AutodiscoverResult, string, error) {
	doc, err := xmldom.Parse(body)
	if err != nil {
		return nil, "", err
	}
	root := doc.Root()

	if e := xmldom.Find(root, "Error", ""); e != nil {
		return nil, "", &AutodiscoverError{
			Code:    strings.TrimSpace(xmldom.ChildText(e, "ErrorCode", "")),
			Message: strings.TrimSpace(xmldom.ChildText(e, "Message", "")),
		}
	}

	account := xmldom.Find(root, "Account", "")
	if account == nil {
		return nil, "", &ProtocolError{Text: "Autodiscover: expected <Account> in response"}
	}

	switch strings.TrimSpace(xmldom.ChildText(account, "Action", "")) {
	case "redirectUrl":
		next := strings.TrimSpace(xmldom.ChildText(account, "RedirectUrl", ""))
		if err := httpsOnly(next); err != nil {
			return nil, "", err
		}
		if err := d.hop("redirectUrl"); err != nil {
			return nil, "", err
		}
		return nil, next, nil
	case "redirectAddr":
		addr := strings.TrimSpace(xmldom.ChildText(account, "RedirectAddr", ""))
		if !strings.Contains(addr, "@") {
			return nil, "", ErrInvalidSMTPAddress
		}
		if err := d.hop("redirectAddr"); err != nil {
			return nil, "", err
		}
		d.address = addr
		domain := addr[strings.LastIndex(addr, "@")+1:]
		return nil, "https://autodiscover." + domain + autodiscoverPath, nil
	}

	res := protocolURLs(account)
	if res.InternalEWSURL == "" && res.ExternalEWSURL == "" {
		return nil, "", &ProtocolError{Text: "Autodiscover: no EXCH or EXPR protocol in response"}
	}
	return res, "", nil
}

func protocolURLs(account *etree.Element) *AutodiscoverResult {
	res := &AutodiscoverResult{}
	for _, p := range xmldom.Children(account, "Protocol", "") {
		typ := xmldom.Attr(p, "Type")
		if typ == "" {
			typ = strings.TrimSpace(xmldom.ChildText(p, "Type", ""))
		}
		u := strings.TrimSpace(xmldom.ChildText(p, "ASUrl", ""))
		switch typ {
		case "EXCH":
			if res.InternalEWSURL == "" {
				res.InternalEWSURL = u
			}
		case "EXPR":
			if res.ExternalEWSURL == "" {
				res.ExternalEWSURL = u
			}
		}
	}
	return res
}

// redirectLocation GETs a plain-http candidate and returns the https
// Location of its redirect.
func (d *discoverer) redirectLocation(ctx context.Context, endpoint string) (string, error) {
	resp, err := d.transport.Send(ctx, &transport.Request{Method: http.MethodGet, URL: endpoint})
	if err != nil {
		return "", transport.Classify(err)
	}
	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect:
	default:
		return "", &HTTPError{Code: resp.StatusCode}
	}
	location := resp.Header.Get("Location")
	if err := httpsOnly(location); err != nil {
		return "", err
	}
	if err := d.hop("http redirect"); err != nil {
		return "", err
	}
	return location, nil
}

func autodiscoverRequest(address string) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("Autodiscover")
	root.CreateAttr("xmlns", xmldom.NSAutodiscoverRequest)
	req := root.CreateElement("Request")
	req.CreateElement("EMailAddress").SetText(address)
	req.CreateElement("AcceptableResponseSchema").SetText(xmldom.NSAutodiscoverResponse)
	out, _ := doc.WriteToBytes()
	return out
}
