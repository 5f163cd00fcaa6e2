package ews

import (
	"encoding/base64"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// BodyType is the format of an item body.
type BodyType string

// Body types.
const (
	BodyTypeBest BodyType = "Best"
	BodyTypeText BodyType = "Text"
	BodyTypeHTML BodyType = "HTML"
)

// Body is the body of an item.
type Body struct {
	Content     string
	Type        BodyType
	IsTruncated bool
}

// NewBody returns a plain text body.
func NewBody(content string) Body {
	return Body{Content: content, Type: BodyTypeText}
}

// NewHTMLBody returns an HTML body.
func NewHTMLBody(content string) Body {
	return Body{Content: content, Type: BodyTypeHTML}
}

// XML renders <t:Body BodyType="…">…</t:Body>. HTML content is wrapped in a
// CDATA section.
func (b Body) XML() string {
	return xmldom.String(b.element())
}

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

func (b Body) element() *etree.Element {
	e := xmldom.New("t", "Body")
	typ := b.Type
	if typ == "" {
		typ = BodyTypeText
	}
	e.CreateAttr("BodyType", string(typ))
	if typ == BodyTypeHTML {
		content := b.Content
		if strings.HasPrefix(content, cdataOpen) && strings.HasSuffix(content, cdataClose) {
			content = content[len(cdataOpen) : len(content)-len(cdataClose)]
		}
		e.SetCData(content)
		return e
	}
	e.SetText(b.Content)
	return e
}

func bodyFromElement(e *etree.Element) Body {
	if e == nil {
		return Body{}
	}
	return Body{
		Content:     e.Text(),
		Type:        BodyType(xmldom.Attr(e, "BodyType")),
		IsTruncated: xmldom.Attr(e, "IsTruncated") == "true",
	}
}

// MimeContent is the MIME stream of an item. The server transfers it
// base64-encoded.
type MimeContent struct {
	CharacterSet string
	Content      []byte
}

// NewMimeContent returns MIME content in the given character set.
func NewMimeContent(charset string, content []byte) MimeContent {
	return MimeContent{CharacterSet: charset, Content: content}
}

// None reports whether the content is empty.
func (m MimeContent) None() bool {
	return len(m.Content) == 0
}

func (m MimeContent) element() *etree.Element {
	e := xmldom.New("t", "MimeContent")
	if m.CharacterSet != "" {
		e.CreateAttr("CharacterSet", m.CharacterSet)
	}
	e.SetText(base64.StdEncoding.EncodeToString(m.Content))
	return e
}

func mimeContentFromElement(e *etree.Element) MimeContent {
	if e == nil {
		return MimeContent{}
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(e.Text()))
	if err != nil {
		return MimeContent{CharacterSet: xmldom.Attr(e, "CharacterSet")}
	}
	return MimeContent{CharacterSet: xmldom.Attr(e, "CharacterSet"), Content: raw}
}
