package ews

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// AttachmentKind tells file attachments from item attachments.
type AttachmentKind int

// Attachment kinds.
const (
	ItemAttachment AttachmentKind = iota
	FileAttachment
)

var fileAttachmentSequence = []string{
	"AttachmentId", "Name", "ContentType", "ContentId", "ContentLocation",
	"Size", "LastModifiedTime", "IsInline", "IsContactPhoto", "Content",
}

var itemAttachmentSequence = []string{
	"AttachmentId", "Name", "ContentType", "ContentId", "ContentLocation",
	"Size", "LastModifiedTime", "IsInline", "Item", "Message",
	"CalendarItem", "Contact", "Task", "MeetingMessage", "MeetingRequest",
	"MeetingResponse", "MeetingCancellation", "PostItem",
}

// Attachment is a file or an embedded item. The zero value is an empty item
// attachment.
type Attachment struct {
	kind  AttachmentKind
	props *Properties
}

// NewFileAttachment returns a file attachment carrying content.
func NewFileAttachment(name, contentType string, content []byte) Attachment {
	a := Attachment{kind: FileAttachment, props: newProperties("FileAttachment", fileAttachmentSequence)}
	a.props.SetOrUpdate("Name", name)
	a.props.SetOrUpdate("ContentType", contentType)
	a.props.SetOrUpdate("Content", base64.StdEncoding.EncodeToString(content))
	return a
}

// NewItemAttachment returns an attachment embedding a copy of item. Server
// assigned ids of the item are not copied.
func NewItemAttachment(item AnyItem, name string) Attachment {
	a := Attachment{kind: ItemAttachment, props: newProperties("ItemAttachment", itemAttachmentSequence)}
	a.props.SetOrUpdate("Name", name)
	embedded := item.base().element().Copy()
	if len(embedded.ChildElements()) == 0 {
		return a
	}
	for _, local := range []string{"ItemId", "ParentFolderId"} {
		if id := xmldom.Child(embedded, local, xmldom.NSTypes); id != nil {
			embedded.RemoveChild(id)
		}
	}
	a.props.insert(embedded)
	return a
}

func attachmentFromElement(e *etree.Element) Attachment {
	if e.Tag == "FileAttachment" {
		return Attachment{kind: FileAttachment, props: propertiesFrom(e, fileAttachmentSequence)}
	}
	return Attachment{kind: ItemAttachment, props: propertiesFrom(e, itemAttachmentSequence)}
}

func (a *Attachment) bag() *Properties {
	if a.props == nil {
		a.props = newProperties("ItemAttachment", itemAttachmentSequence)
	}
	return a.props
}

// Kind returns whether a is a file or an item attachment.
func (a *Attachment) Kind() AttachmentKind {
	return a.kind
}

// ID returns the id assigned by the server.
func (a *Attachment) ID() AttachmentID {
	if e := a.bag().element("AttachmentId"); e != nil {
		return attachmentIDFromElement(e)
	}
	return AttachmentID{}
}

// Name returns the display name.
func (a *Attachment) Name() string {
	return a.bag().Get("Name")
}

// ContentType returns the MIME type of a file attachment.
func (a *Attachment) ContentType() string {
	return a.bag().Get("ContentType")
}

// ContentID returns the Content-ID used to reference inline attachments.
func (a *Attachment) ContentID() string {
	return a.bag().Get("ContentId")
}

// SetContentID sets the Content-ID.
func (a *Attachment) SetContentID(id string) {
	a.bag().SetOrUpdate("ContentId", id)
}

// IsInline reports whether the attachment is shown inline.
func (a *Attachment) IsInline() bool {
	return a.bag().bool("IsInline")
}

// SetInline marks the attachment as shown inline.
func (a *Attachment) SetInline(inline bool) {
	a.bag().setBool("IsInline", inline)
}

// Content returns the base64 content of a file attachment. It is empty
// until the attachment was fetched with GetAttachment.
func (a *Attachment) Content() string {
	return a.bag().Get("Content")
}

// Bytes returns the decoded content.
func (a *Attachment) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(a.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode attachment content: %w", err)
	}
	return raw, nil
}

// Size returns the size in bytes. When the server omitted Size it is the
// decoded length of the content.
func (a *Attachment) Size() int {
	if s := a.bag().Get("Size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	raw, err := a.Bytes()
	if err != nil {
		return 0
	}
	return len(raw)
}

// Item returns the embedded item of an item attachment.
func (a *Attachment) Item() (*Item, bool) {
	if a.kind != ItemAttachment {
		return nil, false
	}
	for _, ch := range a.bag().root.ChildElements() {
		if _, known := kindByElement[ch.Tag]; known {
			return itemFromElement(ch), true
		}
	}
	return nil, false
}

var kindByElement = map[string]ItemKind{
	"Item":         KindItem,
	"Message":      KindMessage,
	"Task":         KindTask,
	"Contact":      KindContact,
	"CalendarItem": KindCalendarItem,
}

// XML serializes the attachment.
func (a *Attachment) XML() string {
	return a.bag().XML()
}

func (a *Attachment) element() *etree.Element {
	return a.bag().root
}

// WriteContentToFile writes the decoded content of a file attachment to
// path and returns the number of bytes written. Item attachments write
// nothing and return 0.
func (a *Attachment) WriteContentToFile(path string) (int, error) {
	if path == "" {
		return 0, ErrEmptyFileName
	}
	if a.kind != FileAttachment {
		return 0, nil
	}
	raw, err := a.Bytes()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return 0, fmt.Errorf("write attachment content: %w", err)
	}
	return len(raw), nil
}
