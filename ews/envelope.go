package ews

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Impersonation names the mailbox the service account acts as.
type Impersonation struct {
	Kind  ImpersonationKind
	Value string
}

// envelopeHeaders are the optional SOAP headers sent with every request.
type envelopeHeaders struct {
	version       ServerVersion
	impersonation *Impersonation
	culture       string
	timeZone      string
}

// frame wraps body in a SOAP envelope.
func (h envelopeHeaders) frame(body *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", xmldom.NSSoap)
	env.CreateAttr("xmlns:t", xmldom.NSTypes)
	env.CreateAttr("xmlns:m", xmldom.NSMessages)
	env.CreateAttr("xmlns:xsi", xmldom.NSXSI)
	env.CreateAttr("xmlns:xsd", xmldom.NSXSD)

	header := xmldom.Add(env, "soap", "Header")
	version := h.version
	if version == "" {
		version = DefaultServerVersion
	}
	xmldom.Add(header, "t", "RequestServerVersion").CreateAttr("Version", string(version))

	if imp := h.impersonation; imp != nil && imp.Value != "" {
		sid := xmldom.Add(xmldom.Add(header, "t", "ExchangeImpersonation"), "t", "ConnectingSID")
		xmldom.AddText(sid, "t", string(imp.Kind), imp.Value)
	}
	if h.culture != "" {
		xmldom.AddText(header, "t", "MailboxCulture", h.culture)
	}
	if h.timeZone != "" {
		tz := xmldom.Add(header, "t", "TimeZoneContext")
		xmldom.Add(tz, "t", "TimeZoneDefinition").CreateAttr("Id", h.timeZone)
	}

	soapBody := xmldom.Add(env, "soap", "Body")
	if body != nil {
		soapBody.AddChild(body)
	}
	return doc
}

// parseEnvelope maps an HTTP response onto the first element inside
// soap:Body, or onto the error the status and fault detail describe.
func parseEnvelope(resp *transport.Response) (*etree.Element, error) {
	if err := WrapHTTPStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusInternalServerError {
		return nil, parseFault(resp.Body)
	}

	doc, err := xmldom.Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	body := xmldom.Find(doc.Root(), "Body", xmldom.NSSoap)
	if body == nil {
		return nil, &ProtocolError{Text: "Expected soap:Body in response"}
	}
	children := body.ChildElements()
	if len(children) == 0 {
		return nil, &ProtocolError{Text: "Empty soap:Body in response"}
	}
	return children[0], nil
}

// parseFault decodes the body of an HTTP 500 response.
func parseFault(data []byte) error {
	doc, err := xmldom.Parse(data)
	if err != nil {
		return err
	}
	root := doc.Root()
	code := xmldom.Text(xmldom.Find(root, "ResponseCode", xmldom.NSErrors))
	if code == ErrorSchemaValidation.String() {
		line, _ := strconv.Atoi(strings.TrimSpace(xmldom.Text(xmldom.Find(root, "LineNumber", xmldom.NSTypes))))
		col, _ := strconv.Atoi(strings.TrimSpace(xmldom.Text(xmldom.Find(root, "LinePosition", xmldom.NSTypes))))
		return &SchemaValidationError{
			Line:      line,
			Column:    col,
			Violation: xmldom.Text(xmldom.Find(root, "Violation", xmldom.NSTypes)),
		}
	}

	fault := &SOAPFaultError{Text: xmldom.Text(xmldom.Find(root, "faultstring", ""))}
	if fault.Text == "" {
		fault.Text = "SOAP fault"
	}
	if c, err := ParseResponseCode(code); err == nil {
		fault.Code = c
	}
	fault.BackOffMilliseconds = backOffHint(root)
	return fault
}

// backOffHint reads <t:Value Name="BackOffMilliseconds"> from a MessageXml
// block below e.
func backOffHint(e *etree.Element) int {
	for _, v := range xmldom.FindAll(e, "Value", xmldom.NSTypes) {
		if xmldom.Attr(v, "Name") == "BackOffMilliseconds" {
			n, err := strconv.Atoi(strings.TrimSpace(v.Text()))
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// responseMessages returns the children of m:ResponseMessages below resp.
func responseMessages(resp *etree.Element) ([]*etree.Element, error) {
	list := xmldom.Child(resp, "ResponseMessages", xmldom.NSMessages)
	if list == nil {
		return nil, &ProtocolError{Text: fmt.Sprintf("Expected m:ResponseMessages in %s", resp.Tag)}
	}
	return list.ChildElements(), nil
}

// checkResponseMessage turns a response message with class Error or Warning
// into an *ExchangeError. An unknown response code is a ProtocolError.
func checkResponseMessage(msg *etree.Element) error {
	class := ResponseClass(xmldom.Attr(msg, "ResponseClass"))
	text := xmldom.ChildText(msg, "ResponseCode", xmldom.NSMessages)
	code := NoError
	if text != "" {
		c, err := ParseResponseCode(strings.TrimSpace(text))
		if err != nil {
			return err
		}
		code = c
	}
	switch class {
	case ResponseClassError, ResponseClassWarning:
		return &ExchangeError{
			Code:                code,
			Message:             xmldom.ChildText(msg, "MessageText", xmldom.NSMessages),
			BackOffMilliseconds: backOffHint(xmldom.Child(msg, "MessageXml", xmldom.NSMessages)),
		}
	}
	return nil
}

// singleMessage checks resp and returns its only response message.
func singleMessage(resp *etree.Element) (*etree.Element, error) {
	msgs, err := responseMessages(resp)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, &ProtocolError{Text: fmt.Sprintf("Expected a response message in %s", resp.Tag)}
	}
	if err := checkResponseMessage(msgs[0]); err != nil {
		return nil, err
	}
	return msgs[0], nil
}

// checkAll checks every response message of resp.
func checkAll(resp *etree.Element) ([]*etree.Element, error) {
	msgs, err := responseMessages(resp)
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if err := checkResponseMessage(m); err != nil {
			return nil, err
		}
	}
	return msgs, nil
}
