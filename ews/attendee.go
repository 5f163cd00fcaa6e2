package ews

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Attendee is a participant of a meeting.
type Attendee struct {
	Mailbox          Mailbox
	ResponseType     ResponseType
	LastResponseTime DateTime
}

// NewAttendee returns an attendee that has not responded yet.
func NewAttendee(mb Mailbox) Attendee {
	return Attendee{Mailbox: mb}
}

// XML renders <t:Attendee>…</t:Attendee>.
func (a Attendee) XML() string {
	return xmldom.String(a.element())
}

func (a Attendee) element() *etree.Element {
	e := xmldom.New("t", "Attendee")
	e.AddChild(a.Mailbox.element("Mailbox"))
	if a.ResponseType != "" {
		xmldom.AddText(e, "t", "ResponseType", string(a.ResponseType))
	}
	if a.LastResponseTime.IsSet() {
		xmldom.AddText(e, "t", "LastResponseTime", string(a.LastResponseTime))
	}
	return e
}

func attendeeFromElement(e *etree.Element) Attendee {
	a := Attendee{
		ResponseType:     ResponseType(xmldom.ChildText(e, "ResponseType", xmldom.NSTypes)),
		LastResponseTime: DateTime(xmldom.ChildText(e, "LastResponseTime", xmldom.NSTypes)),
	}
	if mb := xmldom.Child(e, "Mailbox", xmldom.NSTypes); mb != nil {
		a.Mailbox = mailboxFromElement(mb)
	}
	return a
}

func attendeesFromElement(list *etree.Element) []Attendee {
	var out []Attendee
	for _, e := range xmldom.Children(list, "Attendee", xmldom.NSTypes) {
		out = append(out, attendeeFromElement(e))
	}
	return out
}

func attendeeListElement(local string, attendees []Attendee) *etree.Element {
	e := xmldom.New("t", local)
	for _, a := range attendees {
		e.AddChild(a.element())
	}
	return e
}
