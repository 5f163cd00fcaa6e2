package ews

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// ItemKind tags the variant of an Item.
type ItemKind int

// Item kinds.
const (
	KindItem ItemKind = iota
	KindMessage
	KindTask
	KindContact
	KindCalendarItem
)

var kindElements = [...]string{
	KindItem:         "Item",
	KindMessage:      "Message",
	KindTask:         "Task",
	KindContact:      "Contact",
	KindCalendarItem: "CalendarItem",
}

// String returns the element name of the kind.
func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(kindElements) {
		return "Item"
	}
	return kindElements[k]
}

func (k ItemKind) sequence() []string {
	switch k {
	case KindMessage:
		return messageSequence
	case KindTask:
		return taskSequence
	case KindContact:
		return contactSequence
	case KindCalendarItem:
		return calendarSequence
	default:
		return itemSequence
	}
}

func kindOf(local string) ItemKind {
	for k, name := range kindElements {
		if name == local {
			return ItemKind(k)
		}
	}
	return KindItem
}

// AnyItem is implemented by *Item and the typed variants *Message, *Task,
// *Contact and *CalendarItem.
type AnyItem interface {
	base() *Item
}

// Item is an Exchange item. The typed variants embed it and add accessors
// for their own properties; all of them read and write one property bag.
//
// Construct items with NewItem, NewMessage, NewTask, NewContact or
// NewCalendarItem.
type Item struct {
	kind  ItemKind
	props *Properties
}

// NewItem returns an empty generic item.
func NewItem() *Item {
	return newItem(KindItem)
}

func newItem(kind ItemKind) *Item {
	return &Item{kind: kind, props: newProperties(kind.String(), kind.sequence())}
}

// itemFromElement copies a response subtree into a new item.
func itemFromElement(e *etree.Element) *Item {
	kind := kindOf(e.Tag)
	return &Item{kind: kind, props: propertiesFrom(e, kind.sequence())}
}

func (i *Item) base() *Item {
	return i
}

func (i *Item) bag() *Properties {
	if i.props == nil {
		i.props = newProperties(i.kind.String(), i.kind.sequence())
	}
	return i.props
}

// Kind returns the variant tag.
func (i *Item) Kind() ItemKind {
	return i.kind
}

// Properties returns the underlying property bag.
func (i *Item) Properties() *Properties {
	return i.bag()
}

// Clone returns an independent deep copy.
func (i *Item) Clone() *Item {
	return &Item{kind: i.kind, props: i.bag().Clone()}
}

// XML serializes the item.
func (i *Item) XML() string {
	return i.bag().XML()
}

func (i *Item) element() *etree.Element {
	return i.bag().root
}

// reset empties the item after it was deleted on the server.
func (i *Item) reset() {
	i.props = newProperties(i.kind.String(), i.kind.sequence())
}

// Message returns i viewed as a message. Both share one property bag.
func (i *Item) Message() (*Message, bool) {
	if i.kind != KindMessage {
		return nil, false
	}
	return &Message{Item: *i}, true
}

// Task returns i viewed as a task. Both share one property bag.
func (i *Item) Task() (*Task, bool) {
	if i.kind != KindTask {
		return nil, false
	}
	return &Task{Item: *i}, true
}

// Contact returns i viewed as a contact. Both share one property bag.
func (i *Item) Contact() (*Contact, bool) {
	if i.kind != KindContact {
		return nil, false
	}
	return &Contact{Item: *i}, true
}

// CalendarItem returns i viewed as a calendar item. Both share one property
// bag.
func (i *Item) CalendarItem() (*CalendarItem, bool) {
	if i.kind != KindCalendarItem {
		return nil, false
	}
	return &CalendarItem{Item: *i}, true
}

// ItemID returns the id assigned by the server.
func (i *Item) ItemID() ItemID {
	if e := i.bag().element("ItemId"); e != nil {
		return itemIDFromElement(e)
	}
	return ItemID{}
}

// ParentFolderID returns the folder containing the item.
func (i *Item) ParentFolderID() FolderID {
	return folderIDFromElement(i.bag().element("ParentFolderId"))
}

// ItemClass returns the message class, for example "IPM.Task".
func (i *Item) ItemClass() string {
	return i.bag().Get("ItemClass")
}

// SetItemClass sets the message class.
func (i *Item) SetItemClass(class string) {
	i.bag().SetOrUpdate("ItemClass", class)
}

// Subject returns the subject.
func (i *Item) Subject() string {
	return i.bag().Get("Subject")
}

// SetSubject sets the subject.
func (i *Item) SetSubject(subject string) {
	i.bag().SetOrUpdate("Subject", subject)
}

// Sensitivity returns the sensitivity, Normal when unset.
func (i *Item) Sensitivity() Sensitivity {
	if s := i.bag().Get("Sensitivity"); s != "" {
		return Sensitivity(s)
	}
	return SensitivityNormal
}

// SetSensitivity sets the sensitivity.
func (i *Item) SetSensitivity(s Sensitivity) {
	i.bag().SetOrUpdate("Sensitivity", string(s))
}

// Body returns the body.
func (i *Item) Body() Body {
	return bodyFromElement(i.bag().element("Body"))
}

// SetBody sets the body.
func (i *Item) SetBody(b Body) {
	i.bag().replace(b.element())
}

// Attachments returns the attachments listed on the item. Their content is
// only present after GetAttachment.
func (i *Item) Attachments() []Attachment {
	e := i.bag().element("Attachments")
	if e == nil {
		return nil
	}
	var out []Attachment
	for _, ch := range e.ChildElements() {
		out = append(out, attachmentFromElement(ch))
	}
	return out
}

// DateTimeReceived returns when the item was received.
func (i *Item) DateTimeReceived() DateTime {
	return DateTime(i.bag().Get("DateTimeReceived"))
}

// Size returns the size in bytes.
func (i *Item) Size() int {
	return i.bag().int("Size")
}

// Categories returns the categories.
func (i *Item) Categories() []string {
	return i.bag().strings("Categories")
}

// SetCategories sets the categories.
func (i *Item) SetCategories(categories []string) {
	i.bag().setStrings("Categories", categories)
}

// Importance returns the importance, Normal when unset.
func (i *Item) Importance() Importance {
	if s := i.bag().Get("Importance"); s != "" {
		return Importance(s)
	}
	return ImportanceNormal
}

// SetImportance sets the importance.
func (i *Item) SetImportance(imp Importance) {
	i.bag().SetOrUpdate("Importance", string(imp))
}

// InReplyTo returns the internet message id this item replies to.
func (i *Item) InReplyTo() string {
	return i.bag().Get("InReplyTo")
}

// SetInReplyTo sets the internet message id this item replies to.
func (i *Item) SetInReplyTo(id string) {
	i.bag().SetOrUpdate("InReplyTo", id)
}

// IsSubmitted reports whether the item was submitted to the outbox.
func (i *Item) IsSubmitted() bool { return i.bag().bool("IsSubmitted") }

// IsDraft reports whether the item has not been sent yet.
func (i *Item) IsDraft() bool { return i.bag().bool("IsDraft") }

// IsFromMe reports whether the user sent the item to themselves.
func (i *Item) IsFromMe() bool { return i.bag().bool("IsFromMe") }

// IsResend reports whether the item was sent before.
func (i *Item) IsResend() bool { return i.bag().bool("IsResend") }

// IsUnmodified reports whether the item is unchanged.
func (i *Item) IsUnmodified() bool { return i.bag().bool("IsUnmodified") }

// InternetMessageHeader is one header of the item's MIME stream.
type InternetMessageHeader struct {
	Name  string
	Value string
}

// InternetMessageHeaders returns the MIME headers of the item.
func (i *Item) InternetMessageHeaders() []InternetMessageHeader {
	e := i.bag().element("InternetMessageHeaders")
	var out []InternetMessageHeader
	for _, h := range xmldom.Children(e, "InternetMessageHeader", xmldom.NSTypes) {
		out = append(out, InternetMessageHeader{Name: xmldom.Attr(h, "HeaderName"), Value: h.Text()})
	}
	return out
}

// DateTimeSent returns when the item was sent.
func (i *Item) DateTimeSent() DateTime {
	return DateTime(i.bag().Get("DateTimeSent"))
}

// DateTimeCreated returns when the item was created.
func (i *Item) DateTimeCreated() DateTime {
	return DateTime(i.bag().Get("DateTimeCreated"))
}

// ReminderDueBy returns when the reminder is due.
func (i *Item) ReminderDueBy() DateTime {
	return DateTime(i.bag().Get("ReminderDueBy"))
}

// SetReminderDueBy sets when the reminder is due.
func (i *Item) SetReminderDueBy(d DateTime) {
	i.bag().SetOrUpdate("ReminderDueBy", string(d))
}

// ReminderEnabled reports whether a reminder is set.
func (i *Item) ReminderEnabled() bool {
	return i.bag().bool("ReminderIsSet")
}

// SetReminderEnabled turns the reminder on or off.
func (i *Item) SetReminderEnabled(enabled bool) {
	i.bag().setBool("ReminderIsSet", enabled)
}

// ReminderMinutesBeforeStart returns the reminder lead time.
func (i *Item) ReminderMinutesBeforeStart() int {
	return i.bag().int("ReminderMinutesBeforeStart")
}

// SetReminderMinutesBeforeStart sets the reminder lead time.
func (i *Item) SetReminderMinutesBeforeStart(minutes int) {
	i.bag().setInt("ReminderMinutesBeforeStart", minutes)
}

// DisplayCc returns the display names of the Cc recipients.
func (i *Item) DisplayCc() string {
	return i.bag().Get("DisplayCc")
}

// DisplayTo returns the display names of the To recipients.
func (i *Item) DisplayTo() string {
	return i.bag().Get("DisplayTo")
}

// HasAttachments reports whether the item has attachments.
func (i *Item) HasAttachments() bool {
	return i.bag().bool("HasAttachments")
}

// Culture returns the culture, for example "en-US".
func (i *Item) Culture() string {
	return i.bag().Get("Culture")
}

// SetCulture sets the culture.
func (i *Item) SetCulture(culture string) {
	i.bag().SetOrUpdate("Culture", culture)
}

// EffectiveRights are the caller's rights on an item or folder.
type EffectiveRights struct {
	CreateAssociated bool
	CreateContents   bool
	CreateHierarchy  bool
	Delete           bool
	Modify           bool
	Read             bool
	ViewPrivateItems bool
}

func effectiveRightsFromElement(e *etree.Element) EffectiveRights {
	flag := func(name string) bool {
		return xmldom.ChildText(e, name, xmldom.NSTypes) == "true"
	}
	return EffectiveRights{
		CreateAssociated: flag("CreateAssociated"),
		CreateContents:   flag("CreateContents"),
		CreateHierarchy:  flag("CreateHierarchy"),
		Delete:           flag("Delete"),
		Modify:           flag("Modify"),
		Read:             flag("Read"),
		ViewPrivateItems: flag("ViewPrivateItems"),
	}
}

// EffectiveRights returns the caller's rights on the item.
func (i *Item) EffectiveRights() EffectiveRights {
	return effectiveRightsFromElement(i.bag().element("EffectiveRights"))
}

// LastModifiedName returns who changed the item last.
func (i *Item) LastModifiedName() string {
	return i.bag().Get("LastModifiedName")
}

// LastModifiedTime returns when the item was changed last.
func (i *Item) LastModifiedTime() DateTime {
	return DateTime(i.bag().Get("LastModifiedTime"))
}

// IsAssociated reports whether the item is a folder-associated item.
func (i *Item) IsAssociated() bool {
	return i.bag().bool("IsAssociated")
}

// ConversationID returns the id of the conversation the item belongs to.
func (i *Item) ConversationID() ItemID {
	if e := i.bag().element("ConversationId"); e != nil {
		return itemIDFromElement(e)
	}
	return ItemID{}
}

// FlagStatus returns the follow-up flag status.
func (i *Item) FlagStatus() string {
	return xmldom.ChildText(i.bag().element("Flag"), "FlagStatus", xmldom.NSTypes)
}

// MimeContent returns the MIME stream. It is only present when the shape
// asked for it.
func (i *Item) MimeContent() MimeContent {
	return mimeContentFromElement(i.bag().element("MimeContent"))
}

// SetMimeContent sets the MIME stream.
func (i *Item) SetMimeContent(m MimeContent) {
	i.bag().replace(m.element())
}
