package xmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getItemResponse = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <m:GetItemResponse xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages"
                       xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
      <m:ResponseMessages>
        <m:GetItemResponseMessage ResponseClass="Success">
          <m:ResponseCode>NoError</m:ResponseCode>
          <m:Items>
            <t:Task>
              <t:ItemId Id="abc" ChangeKey="def"/>
              <t:Subject>Get some milk</t:Subject>
            </t:Task>
          </m:Items>
        </m:GetItemResponseMessage>
      </m:ResponseMessages>
    </m:GetItemResponse>
  </s:Body>
</s:Envelope>`

func TestParse(t *testing.T) {
	doc, err := ParseString(getItemResponse)
	require.NoError(t, err)
	assert.Equal(t, "Envelope", doc.Root().Tag)
	assert.Equal(t, NSSoap, NamespaceURI(doc.Root()))
}

func TestFind_ByQualifiedName(t *testing.T) {
	doc, err := ParseString(getItemResponse)
	require.NoError(t, err)

	code := Find(doc.Root(), "ResponseCode", NSMessages)
	require.NotNil(t, code)
	assert.Equal(t, "NoError", Text(code))

	assert.Nil(t, Find(doc.Root(), "ResponseCode", NSErrors))
	assert.Nil(t, Find(doc.Root(), "DoesNotExist", NSTypes))
}

func TestFind_TraversalIsDepthFirst(t *testing.T) {
	doc, err := ParseString(`<a xmlns:t="` + NSTypes + `">` +
		`<t:x><t:y>1</t:y></t:x><t:y>2</t:y></a>`)
	require.NoError(t, err)

	all := FindAll(doc.Root(), "y", NSTypes)
	require.Len(t, all, 2)
	assert.Equal(t, "1", Text(all[0]))
	assert.Equal(t, "2", Text(all[1]))
	assert.Equal(t, "1", Text(Find(doc.Root(), "y", NSTypes)))
}

func TestChildAndChildren(t *testing.T) {
	doc, err := ParseString(`<t:Categories xmlns:t="` + NSTypes + `">` +
		`<t:String>a</t:String><t:String>b</t:String></t:Categories>`)
	require.NoError(t, err)

	root := doc.Root()
	assert.Equal(t, "a", ChildText(root, "String", NSTypes))
	assert.Len(t, Children(root, "String", NSTypes), 2)
	assert.Nil(t, Child(root, "String", NSMessages))
	assert.Nil(t, Child(nil, "String", NSTypes))
}

func TestDetach_CanonicalPrefixes(t *testing.T) {
	doc, err := ParseString(`<x:Envelope xmlns:x="` + NSSoap + `">` +
		`<types:Task xmlns:types="` + NSTypes + `"><types:Subject>hi</types:Subject></types:Task>` +
		`</x:Envelope>`)
	require.NoError(t, err)

	task := Find(doc.Root(), "Task", NSTypes)
	require.NotNil(t, task)

	detached := Detach(task)
	assert.Nil(t, detached.Parent())
	assert.Equal(t, `<t:Task><t:Subject>hi</t:Subject></t:Task>`, String(detached))
	assert.Equal(t, NSTypes, NamespaceURI(Child(detached, "Subject", NSTypes)))

	// The source document is untouched.
	assert.Equal(t, "types", task.Space)
}

func TestDetach_IsDeepCopy(t *testing.T) {
	a := New("", "a")
	Add(a, "", "b")

	c := Detach(a)
	assert.Equal(t, "<a><b/></a>", String(c))

	AddText(c, "", "c", "x")
	assert.Equal(t, "<a><b/></a>", String(a))
	assert.Equal(t, "<a><b/><c>x</c></a>", String(c))
}

func TestString_EscapesMarkupOnly(t *testing.T) {
	e := New("t", "Subject")
	e.SetText(`You are hiding again, aren't you? <"quoted"> & more`)
	assert.Equal(t,
		`<t:Subject>You are hiding again, aren't you? &lt;"quoted"&gt; &amp; more</t:Subject>`,
		String(e))
}

func TestParse_ErrorCarriesPosition(t *testing.T) {
	malformed := "<html>\n  <head></head>\n  <body>\n    <h1</h1>\n  </body>\n</html>"

	_, err := ParseString(malformed)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Line)
	assert.Positive(t, perr.Column)

	lines := strings.Split(perr.Error(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "in line 4:", lines[0])
	assert.Equal(t, "    <h1</h1>", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "~"))
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(nil)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestAttr(t *testing.T) {
	doc, err := ParseString(`<ItemId Id="abcde" ChangeKey="edcba"/>`)
	require.NoError(t, err)
	assert.Equal(t, "abcde", Attr(doc.Root(), "Id"))
	assert.Equal(t, "edcba", Attr(doc.Root(), "ChangeKey"))
	assert.Equal(t, "", Attr(doc.Root(), "Missing"))
	assert.Equal(t, "", Attr(nil, "Id"))
}

func TestIs_UnqualifiedMatchesAnyNamespace(t *testing.T) {
	doc, err := ParseString(`<Attendee><Mailbox/></Attendee>`)
	require.NoError(t, err)
	assert.True(t, Is(doc.Root(), "Attendee", NSTypes))
	assert.NotNil(t, Child(doc.Root(), "Mailbox", NSTypes))
}
