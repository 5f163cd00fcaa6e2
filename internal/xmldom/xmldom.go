// Package xmldom is the thin XML adapter the EWS core is written against.
//
// It wraps github.com/beevik/etree and exposes the handful of operations the
// protocol code needs:
//   - locating an element by (local name, namespace URI) in depth-first order
//   - iterating and filtering child elements
//   - reading text and attributes
//   - serializing a subtree back to text
//   - detaching a subtree from its document with canonical prefixes
//
// Exchange responses may bind the types and messages namespaces to arbitrary
// prefixes. Detached subtrees are rewritten to the canonical "t", "m" and
// "soap" prefixes so that they remain self-describing once their ancestors
// (and xmlns declarations) are gone.
package xmldom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Namespace URIs used on the wire.
const (
	NSSoap     = "http://schemas.xmlsoap.org/soap/envelope/"
	NSTypes    = "http://schemas.microsoft.com/exchange/services/2006/types"
	NSMessages = "http://schemas.microsoft.com/exchange/services/2006/messages"
	NSErrors   = "http://schemas.microsoft.com/exchange/services/2006/errors"
	NSXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	NSXSD      = "http://www.w3.org/2001/XMLSchema"

	NSAutodiscoverRequest  = "http://schemas.microsoft.com/exchange/autodiscover/outlook/requestschema/2006"
	NSAutodiscoverResponse = "http://schemas.microsoft.com/exchange/autodiscover/outlook/responseschema/2006a"
	NSAutodiscover         = "http://schemas.microsoft.com/exchange/autodiscover/responseschema/2006"
)

var canonicalPrefixes = map[string]string{
	"soap": NSSoap,
	"t":    NSTypes,
	"m":    NSMessages,
	"e":    NSErrors,
	"xsi":  NSXSI,
	"xsd":  NSXSD,
}

var canonicalByURI = map[string]string{
	NSSoap:     "soap",
	NSTypes:    "t",
	NSMessages: "m",
	NSErrors:   "e",
	NSXSI:      "xsi",
	NSXSD:      "xsd",
}

// ParseError reports malformed XML together with the offending position.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Parse reads data into a new document. CDATA sections are preserved so that
// HTML bodies survive a round trip.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, newParseError(data, err)
	}
	if doc.Root() == nil {
		return nil, &ParseError{Line: 1, Column: 1, Message: "in line 1:\nno root element"}
	}
	return doc, nil
}

// ParseString is Parse for string input.
func ParseString(s string) (*etree.Document, error) {
	return Parse([]byte(s))
}

func newParseError(data []byte, cause error) *ParseError {
	msg := cause.Error()
	var syn *xml.SyntaxError
	if errors.As(cause, &syn) {
		msg = syn.Msg
	}

	line, col := errorPosition(data)
	lines := strings.Split(string(data), "\n")
	text := ""
	if line >= 1 && line <= len(lines) {
		text = lines[line-1]
	}
	snippet, caret := window(text, col)

	return &ParseError{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf("in line %d:\n%s\n%s\n%s", line, msg, snippet, caret),
	}
}

// errorPosition replays the decoder to find where it gives up.
func errorPosition(data []byte) (int, int) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	for {
		if _, err := d.Token(); err != nil {
			return d.InputPos()
		}
	}
}

// window cuts at most 80 columns of line around col and returns the cut text
// and a marker line pointing at col.
func window(line string, col int) (string, string) {
	const width = 80
	start := 0
	if col > width/2 {
		start = col - width/2
	}
	if start > len(line) {
		start = len(line)
	}
	end := start + width
	if end > len(line) {
		end = len(line)
	}
	pos := col - start - 1
	if pos < 0 {
		pos = 0
	}
	return line[start:end], strings.Repeat(" ", pos) + "~"
}

// NamespaceURI resolves the namespace of e. Elements detached from their
// document fall back to the canonical prefix table.
func NamespaceURI(e *etree.Element) string {
	if e == nil {
		return ""
	}
	if uri := e.NamespaceURI(); uri != "" {
		return uri
	}
	return canonicalPrefixes[e.Space]
}

// Is reports whether e has the given local name and namespace. An empty ns
// matches any namespace, and an element without a resolvable namespace
// matches any ns.
func Is(e *etree.Element, local, ns string) bool {
	if e == nil || e.Tag != local {
		return false
	}
	if ns == "" {
		return true
	}
	uri := NamespaceURI(e)
	return uri == "" || uri == ns
}

// Find returns the first element named (local, ns) in depth-first order,
// starting with root itself.
func Find(root *etree.Element, local, ns string) *etree.Element {
	if root == nil {
		return nil
	}
	if Is(root, local, ns) {
		return root
	}
	for _, ch := range root.ChildElements() {
		if found := Find(ch, local, ns); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element named (local, ns) in depth-first order.
func FindAll(root *etree.Element, local, ns string) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		if Is(e, local, ns) {
			out = append(out, e)
		}
		for _, ch := range e.ChildElements() {
			walk(ch)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Child returns the first direct child named (local, ns).
func Child(e *etree.Element, local, ns string) *etree.Element {
	if e == nil {
		return nil
	}
	for _, ch := range e.ChildElements() {
		if Is(ch, local, ns) {
			return ch
		}
	}
	return nil
}

// Children returns all direct children named (local, ns).
func Children(e *etree.Element, local, ns string) []*etree.Element {
	if e == nil {
		return nil
	}
	var out []*etree.Element
	for _, ch := range e.ChildElements() {
		if Is(ch, local, ns) {
			out = append(out, ch)
		}
	}
	return out
}

// Text returns the character data of e, or "" for a nil element.
func Text(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return e.Text()
}

// ChildText returns the text of the first direct child named (local, ns).
func ChildText(e *etree.Element, local, ns string) string {
	return Text(Child(e, local, ns))
}

// Attr returns the value of the unprefixed attribute key, or "".
func Attr(e *etree.Element, key string) string {
	if e == nil {
		return ""
	}
	return e.SelectAttrValue(key, "")
}

// New creates an unparented element. prefix may be empty.
func New(prefix, local string) *etree.Element {
	if prefix == "" {
		return etree.NewElement(local)
	}
	return etree.NewElement(prefix + ":" + local)
}

// Add appends a new prefixed child to parent and returns it.
func Add(parent *etree.Element, prefix, local string) *etree.Element {
	if prefix == "" {
		return parent.CreateElement(local)
	}
	return parent.CreateElement(prefix + ":" + local)
}

// AddText appends a new prefixed child holding text.
func AddText(parent *etree.Element, prefix, local, text string) *etree.Element {
	ch := Add(parent, prefix, local)
	ch.SetText(text)
	return ch
}

// Detach returns a deep copy of e whose elements carry canonical prefixes
// and no namespace declarations.
func Detach(e *etree.Element) *etree.Element {
	if e == nil {
		return nil
	}
	cp := e.Copy()
	canonicalize(e, cp)
	return cp
}

func canonicalize(orig, cp *etree.Element) {
	if prefix, ok := canonicalByURI[NamespaceURI(orig)]; ok {
		cp.Space = prefix
	}

	kept := cp.Attr[:0]
	for _, a := range cp.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		kept = append(kept, a)
	}
	cp.Attr = kept

	oc, cc := orig.ChildElements(), cp.ChildElements()
	for i := range oc {
		if i < len(cc) {
			canonicalize(oc[i], cc[i])
		}
	}
}

// String serializes the subtree rooted at e without an XML declaration.
func String(e *etree.Element) string {
	if e == nil {
		return ""
	}
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.SetRoot(e.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Document serializes a whole document, including any declaration.
func Document(doc *etree.Document) (string, error) {
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	return doc.WriteToString()
}
