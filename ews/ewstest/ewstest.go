// Package ewstest provides a scripted transport and response builders for
// testing code that talks to an Exchange server.
//
//	fake := ewstest.NewFakeTransport()
//	fake.QueueOK(ewstest.Success("CreateItem", `<m:Items><t:Task><t:ItemId Id="abc" ChangeKey="def"/></t:Task></m:Items>`))
//	svc := ews.NewService("https://example.com/EWS/Exchange.asmx", nil, ews.WithTransport(fake))
package ewstest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

type reply struct {
	resp *transport.Response
	err  error
}

// FakeTransport records every request and answers with queued responses in
// order. With nothing queued it fails the request.
type FakeTransport struct {
	mu       sync.Mutex
	requests []*transport.Request
	replies  []reply
}

// NewFakeTransport returns an empty FakeTransport.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{}
}

// Queue appends a raw response.
func (f *FakeTransport) Queue(status int, header http.Header, body string) *FakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	if header == nil {
		header = http.Header{}
	}
	f.replies = append(f.replies, reply{resp: &transport.Response{
		StatusCode: status,
		Header:     header,
		Body:       []byte(body),
	}})
	return f
}

// QueueOK appends a 200 response carrying body.
func (f *FakeTransport) QueueOK(body string) *FakeTransport {
	return f.Queue(http.StatusOK, nil, body)
}

// QueueFault appends a 500 response carrying a SOAP fault.
func (f *FakeTransport) QueueFault(body string) *FakeTransport {
	return f.Queue(http.StatusInternalServerError, nil, body)
}

// QueueRedirect appends a redirect to location.
func (f *FakeTransport) QueueRedirect(status int, location string) *FakeTransport {
	return f.Queue(status, http.Header{"Location": {location}}, "")
}

// QueueError makes the next request fail with err.
func (f *FakeTransport) QueueError(err error) *FakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, reply{err: err})
	return f
}

// Send implements transport.Transport.
func (f *FakeTransport) Send(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *req
	cp.Body = append([]byte(nil), req.Body...)
	f.requests = append(f.requests, &cp)

	if len(f.replies) == 0 {
		return nil, &transport.Error{
			Kind:    transport.KindConnect,
			Message: fmt.Sprintf("ewstest: no response queued for %s %s", req.Method, req.URL),
		}
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.resp, r.err
}

// Requests returns the requests sent so far.
func (f *FakeTransport) Requests() []*transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*transport.Request(nil), f.requests...)
}

// Pending returns the number of queued responses not yet consumed.
func (f *FakeTransport) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.replies)
}

// LastRequest returns the most recent request, or nil.
func (f *FakeTransport) LastRequest() *transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

// LastBody returns the body of the most recent request.
func (f *FakeTransport) LastBody() string {
	r := f.LastRequest()
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// LastOperation returns the element inside soap:Body of the most recent
// request, detached with canonical prefixes.
func (f *FakeTransport) LastOperation() (*etree.Element, error) {
	return Operation(f.LastBody())
}

// Operation parses a SOAP envelope and returns the element inside
// soap:Body.
func Operation(envelope string) (*etree.Element, error) {
	doc, err := xmldom.ParseString(envelope)
	if err != nil {
		return nil, err
	}
	body := xmldom.Find(doc.Root(), "Body", xmldom.NSSoap)
	if body == nil || len(body.ChildElements()) == 0 {
		return nil, fmt.Errorf("ewstest: no soap:Body payload")
	}
	return xmldom.Detach(body.ChildElements()[0]), nil
}

// Envelope wraps body in a SOAP response envelope that declares the
// canonical t, m and e prefixes.
func Envelope(body string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	b.WriteString(`<s:Envelope xmlns:s="` + xmldom.NSSoap + `">`)
	b.WriteString(`<s:Header><h:ServerVersionInfo xmlns:h="` + xmldom.NSTypes + `" MajorVersion="15" MinorVersion="1" MajorBuildNumber="2507" MinorBuildNumber="6"/></s:Header>`)
	b.WriteString(`<s:Body xmlns:xsi="` + xmldom.NSXSI + `" xmlns:xsd="` + xmldom.NSXSD + `">`)
	b.WriteString(body)
	b.WriteString(`</s:Body></s:Envelope>`)
	return b.String()
}

// ResponseMessage renders one <m:{op}ResponseMessage>.
func ResponseMessage(op, class, code, inner string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="%s"><m:ResponseCode>%s</m:ResponseCode>%s</m:%sResponseMessage>`,
		op, class, code, inner, op)
}

// Response wraps response messages in <m:{op}Response> and an envelope.
func Response(op string, messages ...string) string {
	return Envelope(fmt.Sprintf(`<m:%sResponse xmlns:m="%s" xmlns:t="%s"><m:ResponseMessages>%s</m:ResponseMessages></m:%sResponse>`,
		op, xmldom.NSMessages, xmldom.NSTypes, strings.Join(messages, ""), op))
}

// Success is a response with one successful message holding inner.
func Success(op, inner string) string {
	return Response(op, ResponseMessage(op, "Success", "NoError", inner))
}

// Failure is a response with one error message.
func Failure(op, code, text string) string {
	return Response(op, ResponseMessage(op, "Error", code,
		fmt.Sprintf(`<m:MessageText>%s</m:MessageText><m:DescriptiveLinkKey>0</m:DescriptiveLinkKey>`, text)))
}

// Busy is an ErrorServerBusy response carrying a back-off hint.
func Busy(op string, backOffMillis int) string {
	return Response(op, ResponseMessage(op, "Error", "ErrorServerBusy", fmt.Sprintf(
		`<m:MessageText>The server cannot service this request right now. Try again later.</m:MessageText>`+
			`<m:MessageXml><t:Value Name="BackOffMilliseconds">%d</t:Value></m:MessageXml>`, backOffMillis)))
}

// RootResponse is a response whose ResponseClass sits on the root element,
// as for GetRoomLists.
func RootResponse(op, class, code, inner string) string {
	return Envelope(fmt.Sprintf(`<m:%sResponse ResponseClass="%s" xmlns:m="%s" xmlns:t="%s"><m:ResponseCode>%s</m:ResponseCode>%s</m:%sResponse>`,
		op, class, xmldom.NSMessages, xmldom.NSTypes, code, inner, op))
}

// Fault is a SOAP fault with an EWS response code.
func Fault(code, text string) string {
	return Envelope(fmt.Sprintf(`<s:Fault><faultcode xmlns:a="%s">a:%s</faultcode><faultstring xml:lang="en-US">%s</faultstring>`+
		`<detail><e:ResponseCode xmlns:e="%s">%s</e:ResponseCode><e:Message xmlns:e="%s">%s</e:Message></detail></s:Fault>`,
		xmldom.NSTypes, code, text, xmldom.NSErrors, code, xmldom.NSErrors, text))
}

// SchemaFault is an ErrorSchemaValidation fault at line:col.
func SchemaFault(line, col int, violation string) string {
	return Envelope(fmt.Sprintf(`<s:Fault><faultcode xmlns:a="%s">a:ErrorSchemaValidation</faultcode>`+
		`<faultstring xml:lang="en-US">The request failed schema validation.</faultstring>`+
		`<detail><e:ResponseCode xmlns:e="%s">ErrorSchemaValidation</e:ResponseCode>`+
		`<e:Message xmlns:e="%s">The request failed schema validation.</e:Message>`+
		`<t:MessageXml xmlns:t="%s"><t:LineNumber>%d</t:LineNumber><t:LinePosition>%d</t:LinePosition><t:Violation>%s</t:Violation></t:MessageXml>`+
		`</detail></s:Fault>`,
		xmldom.NSTypes, xmldom.NSErrors, xmldom.NSErrors, xmldom.NSTypes, line, col, violation))
}

// AutodiscoverAccount renders an autodiscover answer. Pass protocol
// elements such as Protocol("EXCH", url).
func AutodiscoverAccount(inner string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+
		`<Autodiscover xmlns="%s"><Response xmlns="%s"><Account><AccountType>email</AccountType>%s</Account></Response></Autodiscover>`,
		xmldom.NSAutodiscover, xmldom.NSAutodiscoverResponse, inner)
}

// Protocol renders an autodiscover <Protocol> block.
func Protocol(typ, asURL string) string {
	return fmt.Sprintf(`<Protocol><Type>%s</Type><ASUrl>%s</ASUrl></Protocol>`, typ, asURL)
}

// AutodiscoverError renders an autodiscover <Error> answer.
func AutodiscoverError(code, message string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+
		`<Autodiscover xmlns="%s"><Response><Error Time="16:42:00.1234567" Id="2477272013">`+
		`<ErrorCode>%s</ErrorCode><Message>%s</Message><DebugData/></Error></Response></Autodiscover>`,
		xmldom.NSAutodiscover, code, message)
}
