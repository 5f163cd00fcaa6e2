package ews

import (
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// CalendarItem is an appointment or meeting.
type CalendarItem struct {
	Item
}

// NewCalendarItem returns an empty calendar item.
func NewCalendarItem() *CalendarItem {
	return &CalendarItem{Item: *newItem(KindCalendarItem)}
}

// Clone returns an independent deep copy.
func (c *CalendarItem) Clone() *CalendarItem {
	return &CalendarItem{Item: *c.Item.Clone()}
}

// Start returns the start of the appointment.
func (c *CalendarItem) Start() DateTime {
	return DateTime(c.bag().Get("Start"))
}

// SetStart sets the start of the appointment.
func (c *CalendarItem) SetStart(d DateTime) {
	c.bag().SetOrUpdate("Start", string(d))
}

// End returns the end of the appointment.
func (c *CalendarItem) End() DateTime {
	return DateTime(c.bag().Get("End"))
}

// SetEnd sets the end of the appointment.
func (c *CalendarItem) SetEnd(d DateTime) {
	c.bag().SetOrUpdate("End", string(d))
}

// OriginalStart returns the start of an occurrence before it was moved.
func (c *CalendarItem) OriginalStart() DateTime {
	return DateTime(c.bag().Get("OriginalStart"))
}

// IsAllDayEvent reports whether the appointment lasts all day.
func (c *CalendarItem) IsAllDayEvent() bool {
	return c.bag().bool("IsAllDayEvent")
}

// SetAllDayEvent marks the appointment as lasting all day.
func (c *CalendarItem) SetAllDayEvent(allDay bool) {
	c.bag().setBool("IsAllDayEvent", allDay)
}

// LegacyFreeBusyStatus returns how the time is shown, Busy when unset.
func (c *CalendarItem) LegacyFreeBusyStatus() FreeBusyStatus {
	if s := c.bag().Get("LegacyFreeBusyStatus"); s != "" {
		return FreeBusyStatus(s)
	}
	return FreeBusyBusy
}

// SetLegacyFreeBusyStatus sets how the time is shown.
func (c *CalendarItem) SetLegacyFreeBusyStatus(s FreeBusyStatus) {
	c.bag().SetOrUpdate("LegacyFreeBusyStatus", string(s))
}

// Location returns the location.
func (c *CalendarItem) Location() string {
	return c.bag().Get("Location")
}

// SetLocation sets the location.
func (c *CalendarItem) SetLocation(location string) {
	c.bag().SetOrUpdate("Location", location)
}

// When returns the free-form description of when the meeting takes place.
func (c *CalendarItem) When() string {
	return c.bag().Get("When")
}

// SetWhen sets the free-form description of when the meeting takes place.
func (c *CalendarItem) SetWhen(when string) {
	c.bag().SetOrUpdate("When", when)
}

func (c *CalendarItem) IsMeeting() bool { return c.bag().bool("IsMeeting") }
func (c *CalendarItem) IsCancelled() bool { return c.bag().bool("IsCancelled") }
func (c *CalendarItem) IsRecurring() bool { return c.bag().bool("IsRecurring") }
func (c *CalendarItem) MeetingRequestWasSent() bool { return c.bag().bool("MeetingRequestWasSent") }
func (c *CalendarItem) IsResponseRequested() bool { return c.bag().bool("IsResponseRequested") }

// CalendarItemType returns whether the item is a single appointment, a
// recurring master, an occurrence or an exception. Single when unset.
func (c *CalendarItem) CalendarItemType() CalendarItemType {
	if s := c.bag().Get("CalendarItemType"); s != "" {
		return CalendarItemType(s)
	}
	return CalendarSingle
}

// MyResponseType returns the user's own response, Unknown when unset.
func (c *CalendarItem) MyResponseType() ResponseType {
	if s := c.bag().Get("MyResponseType"); s != "" {
		return ResponseType(s)
	}
	return ResponseUnknown
}

// Organizer returns the meeting organizer.
func (c *CalendarItem) Organizer() Mailbox {
	return c.bag().mailbox("Organizer")
}

// RequiredAttendees returns the required attendees.
func (c *CalendarItem) RequiredAttendees() []Attendee {
	return attendeesFromElement(c.bag().element("RequiredAttendees"))
}

// SetRequiredAttendees replaces the required attendees.
func (c *CalendarItem) SetRequiredAttendees(attendees []Attendee) {
	c.bag().replace(attendeeListElement("RequiredAttendees", attendees))
}

// OptionalAttendees returns the optional attendees.
func (c *CalendarItem) OptionalAttendees() []Attendee {
	return attendeesFromElement(c.bag().element("OptionalAttendees"))
}

// SetOptionalAttendees replaces the optional attendees.
func (c *CalendarItem) SetOptionalAttendees(attendees []Attendee) {
	c.bag().replace(attendeeListElement("OptionalAttendees", attendees))
}

// Resources returns the booked resources such as rooms.
func (c *CalendarItem) Resources() []Attendee {
	return attendeesFromElement(c.bag().element("Resources"))
}

// SetResources replaces the booked resources.
func (c *CalendarItem) SetResources(resources []Attendee) {
	c.bag().replace(attendeeListElement("Resources", resources))
}

func (c *CalendarItem) ConflictingMeetingCount() int { return c.bag().int("ConflictingMeetingCount") }
func (c *CalendarItem) AdjacentMeetingCount() int { return c.bag().int("AdjacentMeetingCount") }
func (c *CalendarItem) AppointmentSequenceNumber() int { return c.bag().int("AppointmentSequenceNumber") }
func (c *CalendarItem) AppointmentState() int { return c.bag().int("AppointmentState") }

// Duration returns the xs:duration of the appointment, for example "PT30M".
func (c *CalendarItem) Duration() string {
	return c.bag().Get("Duration")
}

// TimeZone returns the display name of the time zone.
func (c *CalendarItem) TimeZone() string {
	return c.bag().Get("TimeZone")
}

// AppointmentReplyTime returns when an attendee replied.
func (c *CalendarItem) AppointmentReplyTime() DateTime {
	return DateTime(c.bag().Get("AppointmentReplyTime"))
}

// Recurrence returns the recurrence of a recurring master.
func (c *CalendarItem) Recurrence() (Recurrence, bool) {
	return recurrenceFromElement(c.bag().element("Recurrence"))
}

// SetRecurrence turns the item into a recurring master.
func (c *CalendarItem) SetRecurrence(r Recurrence) {
	c.bag().replace(r.element())
}

// FirstOccurrence returns the first occurrence of a recurring master.
func (c *CalendarItem) FirstOccurrence() OccurrenceInfo {
	return occurrenceInfoFromElement(c.bag().element("FirstOccurrence"))
}

// LastOccurrence returns the last occurrence of a recurring master.
func (c *CalendarItem) LastOccurrence() OccurrenceInfo {
	return occurrenceInfoFromElement(c.bag().element("LastOccurrence"))
}

// ModifiedOccurrences returns the exceptions of a recurring master.
func (c *CalendarItem) ModifiedOccurrences() []OccurrenceInfo {
	var out []OccurrenceInfo
	for _, e := range xmldom.Children(c.bag().element("ModifiedOccurrences"), "Occurrence", xmldom.NSTypes) {
		out = append(out, occurrenceInfoFromElement(e))
	}
	return out
}

// DeletedOccurrences returns the start times of deleted occurrences.
func (c *CalendarItem) DeletedOccurrences() []DateTime {
	var out []DateTime
	for _, e := range xmldom.Children(c.bag().element("DeletedOccurrences"), "DeletedOccurrence", xmldom.NSTypes) {
		out = append(out, DateTime(xmldom.ChildText(e, "Start", xmldom.NSTypes)))
	}
	return out
}

// ConferenceType returns 0 (NetMeeting), 1 (NetShow) or 2 (Chat).
func (c *CalendarItem) ConferenceType() int {
	return c.bag().int("ConferenceType")
}

// SetConferenceType sets the conference type.
func (c *CalendarItem) SetConferenceType(t int) {
	c.bag().setInt("ConferenceType", t)
}

// AllowNewTimeProposal reports whether attendees may propose a new time.
func (c *CalendarItem) AllowNewTimeProposal() bool {
	return c.bag().bool("AllowNewTimeProposal")
}

// SetAllowNewTimeProposal allows or forbids new time proposals.
func (c *CalendarItem) SetAllowNewTimeProposal(allow bool) {
	c.bag().setBool("AllowNewTimeProposal", allow)
}

// IsOnlineMeeting reports whether the meeting is held online.
func (c *CalendarItem) IsOnlineMeeting() bool {
	return c.bag().bool("IsOnlineMeeting")
}

// SetOnlineMeeting marks the meeting as held online.
func (c *CalendarItem) SetOnlineMeeting(online bool) {
	c.bag().setBool("IsOnlineMeeting", online)
}

// MeetingWorkspaceURL returns the URL of the meeting workspace.
func (c *CalendarItem) MeetingWorkspaceURL() string {
	return c.bag().Get("MeetingWorkspaceUrl")
}

// SetMeetingWorkspaceURL sets the URL of the meeting workspace.
func (c *CalendarItem) SetMeetingWorkspaceURL(url string) {
	c.bag().SetOrUpdate("MeetingWorkspaceUrl", url)
}

// NetShowURL returns the URL of the NetShow broadcast.
func (c *CalendarItem) NetShowURL() string {
	return c.bag().Get("NetShowUrl")
}

// SetNetShowURL sets the URL of the NetShow broadcast.
func (c *CalendarItem) SetNetShowURL(url string) {
	c.bag().SetOrUpdate("NetShowUrl", url)
}

// UID returns the iCalendar UID.
func (c *CalendarItem) UID() string {
	return c.bag().Get("UID")
}
