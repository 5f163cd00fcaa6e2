package ews

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// MailboxType classifies a mailbox returned by the server.
type MailboxType string

// Mailbox types.
const (
	MailboxTypeMailbox       MailboxType = "Mailbox"
	MailboxTypePublicDL      MailboxType = "PublicDL"
	MailboxTypePrivateDL     MailboxType = "PrivateDL"
	MailboxTypeContact       MailboxType = "Contact"
	MailboxTypePublicFolder  MailboxType = "PublicFolder"
	MailboxTypeUnknown       MailboxType = "Unknown"
	MailboxTypeOneOff        MailboxType = "OneOff"
	MailboxTypeGroupMailbox  MailboxType = "GroupMailbox"
	MailboxTypeLinkedMailbox MailboxType = "LinkedMailbox"
)

// RoutingTypeSMTP is the routing type the server assumes when none is given.
const RoutingTypeSMTP = "SMTP"

// Mailbox is either an address with optional display name, routing type and
// mailbox type, or the ItemID of a private distribution list or contact.
type Mailbox struct {
	Name        string
	Address     string
	RoutingType string
	MailboxType MailboxType
	ItemID      ItemID
}

// NewMailbox returns a mailbox for an SMTP address.
func NewMailbox(address string) Mailbox {
	return Mailbox{Address: address}
}

// NewNamedMailbox returns a mailbox with a display name.
func NewNamedMailbox(address, name string) Mailbox {
	return Mailbox{Address: address, Name: name}
}

// MailboxFromItemID returns a mailbox referring to a contact or private
// distribution list.
func MailboxFromItemID(id ItemID) Mailbox {
	return Mailbox{ItemID: id}
}

// None reports whether neither an address nor an id is set.
func (m Mailbox) None() bool {
	return m.Address == "" && !m.ItemID.Valid()
}

// Routing returns the routing type, defaulting to SMTP.
func (m Mailbox) Routing() string {
	if m.RoutingType == "" {
		return RoutingTypeSMTP
	}
	return m.RoutingType
}

// XML renders <t:Mailbox>…</t:Mailbox>.
func (m Mailbox) XML() string {
	return xmldom.String(m.element("Mailbox"))
}

func (m Mailbox) element(local string) *etree.Element {
	e := xmldom.New("t", local)
	if m.ItemID.Valid() {
		e.AddChild(m.ItemID.element("ItemId"))
		return e
	}
	if m.Name != "" {
		xmldom.AddText(e, "t", "Name", m.Name)
	}
	xmldom.AddText(e, "t", "EmailAddress", m.Address)
	if m.RoutingType != "" {
		xmldom.AddText(e, "t", "RoutingType", m.RoutingType)
	}
	if m.MailboxType != "" {
		xmldom.AddText(e, "t", "MailboxType", string(m.MailboxType))
	}
	return e
}

func mailboxFromElement(e *etree.Element) Mailbox {
	m := Mailbox{
		Name:        xmldom.ChildText(e, "Name", xmldom.NSTypes),
		Address:     xmldom.ChildText(e, "EmailAddress", xmldom.NSTypes),
		RoutingType: xmldom.ChildText(e, "RoutingType", xmldom.NSTypes),
		MailboxType: MailboxType(xmldom.ChildText(e, "MailboxType", xmldom.NSTypes)),
	}
	if id := xmldom.Child(e, "ItemId", xmldom.NSTypes); id != nil {
		m.ItemID = itemIDFromElement(id)
	}
	return m
}

// mailboxesFromElement reads the <t:Mailbox> children of a recipient list.
func mailboxesFromElement(list *etree.Element) []Mailbox {
	var out []Mailbox
	for _, mb := range xmldom.Children(list, "Mailbox", xmldom.NSTypes) {
		out = append(out, mailboxFromElement(mb))
	}
	return out
}

func mailboxListElement(local string, boxes []Mailbox) *etree.Element {
	e := xmldom.New("t", local)
	for _, mb := range boxes {
		e.AddChild(mb.element("Mailbox"))
	}
	return e
}

// EmailAddressKey indexes a contact's email addresses.
type EmailAddressKey string

// Email address slots of a contact.
const (
	EmailAddress1 EmailAddressKey = "EmailAddress1"
	EmailAddress2 EmailAddressKey = "EmailAddress2"
	EmailAddress3 EmailAddressKey = "EmailAddress3"
)

// EmailAddress is one entry of a contact's EmailAddresses dictionary.
type EmailAddress struct {
	Key         EmailAddressKey
	Value       string
	Name        string
	RoutingType string
	MailboxType MailboxType
}

func (a EmailAddress) element() *etree.Element {
	e := xmldom.New("t", "Entry")
	e.CreateAttr("Key", string(a.Key))
	if a.Name != "" {
		e.CreateAttr("Name", a.Name)
	}
	if a.RoutingType != "" {
		e.CreateAttr("RoutingType", a.RoutingType)
	}
	if a.MailboxType != "" {
		e.CreateAttr("MailboxType", string(a.MailboxType))
	}
	e.SetText(a.Value)
	return e
}

func emailAddressFromElement(e *etree.Element) EmailAddress {
	return EmailAddress{
		Key:         EmailAddressKey(xmldom.Attr(e, "Key")),
		Value:       xmldom.Text(e),
		Name:        xmldom.Attr(e, "Name"),
		RoutingType: xmldom.Attr(e, "RoutingType"),
		MailboxType: MailboxType(xmldom.Attr(e, "MailboxType")),
	}
}
