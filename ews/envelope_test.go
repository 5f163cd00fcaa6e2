package ews

import (
	"net/http"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews/ewstest"
	"github.com/custodia-labs/ews-go/ews/transport"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

func TestEnvelopeHeaders_Frame(t *testing.T) {
	tests := []struct {
		name     string
		headers  envelopeHeaders
		contains []string
		absent   []string
	}{
		{
			name:     "default version",
			contains: []string{`<t:RequestServerVersion Version="Exchange2013_SP1"/>`},
			absent:   []string{"ExchangeImpersonation", "MailboxCulture", "TimeZoneContext"},
		},
		{
			name:     "explicit version",
			headers:  envelopeHeaders{version: Exchange2010SP2},
			contains: []string{`<t:RequestServerVersion Version="Exchange2010_SP2"/>`},
		},
		{
			name:    "impersonation",
			headers: envelopeHeaders{impersonation: &Impersonation{Kind: ImpersonatePrimarySMTPAddress, Value: "boss@contoso.com"}},
			contains: []string{
				`<t:ExchangeImpersonation><t:ConnectingSID><t:PrimarySmtpAddress>boss@contoso.com</t:PrimarySmtpAddress></t:ConnectingSID></t:ExchangeImpersonation>`,
			},
		},
		{
			name:    "empty impersonation value is ignored",
			headers: envelopeHeaders{impersonation: &Impersonation{Kind: ImpersonateSID}},
			absent:  []string{"ExchangeImpersonation"},
		},
		{
			name:    "culture and time zone",
			headers: envelopeHeaders{culture: "de-DE", timeZone: "W. Europe Standard Time"},
			contains: []string{
				`<t:MailboxCulture>de-DE</t:MailboxCulture>`,
				`<t:TimeZoneContext><t:TimeZoneDefinition Id="W. Europe Standard Time"/></t:TimeZoneContext>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.headers.frame(xmldom.New("m", "GetFolder")).WriteToString()
			require.NoError(t, err)

			assert.Contains(t, out, `xmlns:soap="`+xmldom.NSSoap+`"`)
			assert.Contains(t, out, `xmlns:t="`+xmldom.NSTypes+`"`)
			assert.Contains(t, out, `xmlns:m="`+xmldom.NSMessages+`"`)
			assert.Contains(t, out, `<soap:Body><m:GetFolder/></soap:Body>`)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantTag string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "success",
			status:  http.StatusOK,
			body:    ewstest.Success("GetFolder", ""),
			wantTag: "GetFolderResponse",
		},
		{
			name:   "fault",
			status: http.StatusInternalServerError,
			body:   ewstest.Fault("ErrorAccessDenied", "Access is denied."),
			check: func(t *testing.T, err error) {
				var fe *SOAPFaultError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "Access is denied.", fe.Text)
				assert.Equal(t, ErrorAccessDenied, fe.Code)
				assert.Equal(t, ErrorAccessDenied, CodeOf(err))
			},
		},
		{
			name:   "schema validation",
			status: http.StatusInternalServerError,
			body:   ewstest.SchemaFault(2, 448, "The element 'Items' has invalid child element 'Foo'."),
			check: func(t *testing.T, err error) {
				var se *SchemaValidationError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, 2, se.Line)
				assert.Equal(t, 448, se.Column)
				assert.Equal(t, "The element 'Items' has invalid child element 'Foo'.", se.Violation)
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var he *HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, http.StatusUnauthorized, he.Code)
				assert.Equal(t, "HTTP status code: 401 (Unauthorized)", err.Error())
			},
		},
		{
			name:   "bad gateway with soap body",
			status: http.StatusBadGateway,
			body:   ewstest.Success("GetFolder", ""),
			check: func(t *testing.T, err error) {
				var he *HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, http.StatusBadGateway, he.Code)
				assert.False(t, IsTransient(err))
			},
		},
		{
			name:   "malformed xml",
			status: http.StatusOK,
			body:   "<soap:Envelope",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name:   "missing body",
			status: http.StatusOK,
			body:   `<s:Envelope xmlns:s="` + xmldom.NSSoap + `"><s:Header/></s:Envelope>`,
			check: func(t *testing.T, err error) {
				var pe *ProtocolError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "Expected soap:Body in response", pe.Text)
			},
		},
		{
			name:   "empty body",
			status: http.StatusOK,
			body:   ewstest.Envelope(""),
			check: func(t *testing.T, err error) {
				var pe *ProtocolError
				assert.ErrorAs(t, err, &pe)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := parseEnvelope(&transport.Response{StatusCode: tt.status, Header: http.Header{}, Body: []byte(tt.body)})
			if tt.check != nil {
				require.Error(t, err)
				tt.check(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, el.Tag)
			assert.Equal(t, xmldom.NSMessages, xmldom.NamespaceURI(el))
		})
	}
}

func TestParseFault_BusyCarriesBackOff(t *testing.T) {
	body := ewstest.Envelope(`<s:Fault><faultcode>a:ErrorServerBusy</faultcode><faultstring>The server cannot service this request right now.</faultstring>` +
		`<detail><e:ResponseCode xmlns:e="` + xmldom.NSErrors + `">ErrorServerBusy</e:ResponseCode>` +
		`<t:MessageXml xmlns:t="` + xmldom.NSTypes + `"><t:Value Name="BackOffMilliseconds">2500</t:Value></t:MessageXml></detail></s:Fault>`)

	err := parseFault([]byte(body))

	var fe *SOAPFaultError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrorServerBusy, fe.Code)
	assert.Equal(t, 2500, fe.BackOffMilliseconds)
	assert.True(t, IsTransient(err))
}

func messageElement(t *testing.T, op, class, code, inner string) *etree.Element {
	t.Helper()
	el, err := parseEnvelope(&transport.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(ewstest.Response(op, ewstest.ResponseMessage(op, class, code, inner))),
	})
	require.NoError(t, err)
	msgs, err := responseMessages(el)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	return msgs[0]
}

func TestCheckResponseMessage(t *testing.T) {
	tests := []struct {
		name        string
		class       string
		code        string
		inner       string
		wantCode    ResponseCode
		wantMessage string
		wantBackOff int
		wantErr     bool
		protocolErr bool
	}{
		{name: "success", class: "Success", code: "NoError"},
		{
			name: "error", class: "Error", code: "ErrorItemNotFound",
			inner:    `<m:MessageText>The specified object was not found in the store.</m:MessageText>`,
			wantCode: ErrorItemNotFound, wantMessage: "The specified object was not found in the store.", wantErr: true,
		},
		{
			name: "warning", class: "Warning", code: "ErrorBatchProcessingStopped",
			wantCode: ErrorBatchProcessingStopped, wantErr: true,
		},
		{
			name: "busy", class: "Error", code: "ErrorServerBusy",
			inner:    `<m:MessageXml><t:Value Name="BackOffMilliseconds">30000</t:Value></m:MessageXml>`,
			wantCode: ErrorServerBusy, wantBackOff: 30000, wantErr: true,
		},
		{name: "unknown code", class: "Error", code: "ErrorFromTheFuture", wantErr: true, protocolErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkResponseMessage(messageElement(t, "GetItem", tt.class, tt.code, tt.inner))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.protocolErr {
				var pe *ProtocolError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "Unrecognized response code: ErrorFromTheFuture", pe.Text)
				return
			}
			var ee *ExchangeError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, tt.wantCode, ee.Code)
			assert.Equal(t, tt.wantCode.String(), ee.Error())
			assert.Equal(t, tt.wantMessage, ee.Message)
			assert.Equal(t, tt.wantBackOff, ee.BackOffMilliseconds)
		})
	}
}

func TestCheckAll_StopsAtFirstError(t *testing.T) {
	el, err := parseEnvelope(&transport.Response{
		StatusCode: http.StatusOK,
		Body: []byte(ewstest.Response("DeleteItem",
			ewstest.ResponseMessage("DeleteItem", "Success", "NoError", ""),
			ewstest.ResponseMessage("DeleteItem", "Error", "ErrorItemNotFound", ""),
		)),
	})
	require.NoError(t, err)

	_, err = checkAll(el)
	assert.Equal(t, ErrorItemNotFound, CodeOf(err))
	assert.True(t, IsNotFound(err))
}

func TestSingleMessage_MissingMessages(t *testing.T) {
	_, err := singleMessage(xmldom.New("m", "GetItemResponse"))
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Expected m:ResponseMessages in GetItemResponse", pe.Text)
}
