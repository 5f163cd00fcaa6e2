package ews

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Month is a month of the year as used in yearly recurrences.
type Month string

// Months.
const (
	January   Month = "January"
	February  Month = "February"
	March     Month = "March"
	April     Month = "April"
	May       Month = "May"
	June      Month = "June"
	July      Month = "July"
	August    Month = "August"
	September Month = "September"
	October   Month = "October"
	November  Month = "November"
	December  Month = "December"
)

// DayOfWeek is a weekday, or one of the Day, Weekday and WeekendDay groups.
type DayOfWeek string

// Days of the week.
const (
	Sunday     DayOfWeek = "Sunday"
	Monday     DayOfWeek = "Monday"
	Tuesday    DayOfWeek = "Tuesday"
	Wednesday  DayOfWeek = "Wednesday"
	Thursday   DayOfWeek = "Thursday"
	Friday     DayOfWeek = "Friday"
	Saturday   DayOfWeek = "Saturday"
	AnyDay     DayOfWeek = "Day"
	Weekday    DayOfWeek = "Weekday"
	WeekendDay DayOfWeek = "WeekendDay"
)

// DayOfWeekIndex selects which occurrence of a weekday in a month is meant.
type DayOfWeekIndex string

// Weekday indexes.
const (
	FirstWeek  DayOfWeekIndex = "First"
	SecondWeek DayOfWeekIndex = "Second"
	ThirdWeek  DayOfWeekIndex = "Third"
	FourthWeek DayOfWeekIndex = "Fourth"
	LastWeek   DayOfWeekIndex = "Last"
)

// RecurrencePattern is one of AbsoluteYearlyRecurrence,
// RelativeYearlyRecurrence, AbsoluteMonthlyRecurrence,
// RelativeMonthlyRecurrence, WeeklyRecurrence or DailyRecurrence.
type RecurrencePattern interface {
	element() *etree.Element
	pattern()
}

// RecurrenceRange is one of NoEndRecurrence, EndDateRecurrence or
// NumberedRecurrence.
type RecurrenceRange interface {
	element() *etree.Element
	recurrenceRange()
}

func (AbsoluteYearlyRecurrence) pattern() {}
func (RelativeYearlyRecurrence) pattern() {}
func (AbsoluteMonthlyRecurrence) pattern() {}
func (RelativeMonthlyRecurrence) pattern() {}
func (WeeklyRecurrence) pattern() {}
func (DailyRecurrence) pattern() {}

func (NoEndRecurrence) recurrenceRange() {}
func (EndDateRecurrence) recurrenceRange() {}
func (NumberedRecurrence) recurrenceRange() {}

// AbsoluteYearlyRecurrence repeats on a fixed day of a fixed month.
type AbsoluteYearlyRecurrence struct {
	DayOfMonth int
	Month      Month
}

func (r AbsoluteYearlyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "AbsoluteYearlyRecurrence")
	xmldom.AddText(e, "t", "DayOfMonth", strconv.Itoa(r.DayOfMonth))
	xmldom.AddText(e, "t", "Month", string(r.Month))
	return e
}

// RelativeYearlyRecurrence repeats on, for example, the third Monday of
// April.
type RelativeYearlyRecurrence struct {
	DaysOfWeek     DayOfWeek
	DayOfWeekIndex DayOfWeekIndex
	Month          Month
}

func (r RelativeYearlyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "RelativeYearlyRecurrence")
	xmldom.AddText(e, "t", "DaysOfWeek", string(r.DaysOfWeek))
	xmldom.AddText(e, "t", "DayOfWeekIndex", string(r.DayOfWeekIndex))
	xmldom.AddText(e, "t", "Month", string(r.Month))
	return e
}

// AbsoluteMonthlyRecurrence repeats on a fixed day every Interval months.
type AbsoluteMonthlyRecurrence struct {
	Interval   int
	DayOfMonth int
}

func (r AbsoluteMonthlyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "AbsoluteMonthlyRecurrence")
	xmldom.AddText(e, "t", "Interval", strconv.Itoa(r.Interval))
	xmldom.AddText(e, "t", "DayOfMonth", strconv.Itoa(r.DayOfMonth))
	return e
}

// RelativeMonthlyRecurrence repeats on, for example, the third Thursday
// every Interval months.
type RelativeMonthlyRecurrence struct {
	Interval       int
	DaysOfWeek     DayOfWeek
	DayOfWeekIndex DayOfWeekIndex
}

func (r RelativeMonthlyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "RelativeMonthlyRecurrence")
	xmldom.AddText(e, "t", "Interval", strconv.Itoa(r.Interval))
	xmldom.AddText(e, "t", "DaysOfWeek", string(r.DaysOfWeek))
	xmldom.AddText(e, "t", "DayOfWeekIndex", string(r.DayOfWeekIndex))
	return e
}

// WeeklyRecurrence repeats on the given days every Interval weeks.
// FirstDayOfWeek defaults to Monday.
type WeeklyRecurrence struct {
	Interval       int
	DaysOfWeek     []DayOfWeek
	FirstDayOfWeek DayOfWeek
}

func (r WeeklyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "WeeklyRecurrence")
	xmldom.AddText(e, "t", "Interval", strconv.Itoa(r.Interval))
	days := make([]string, len(r.DaysOfWeek))
	for i, d := range r.DaysOfWeek {
		days[i] = string(d)
	}
	xmldom.AddText(e, "t", "DaysOfWeek", strings.Join(days, " "))
	first := r.FirstDayOfWeek
	if first == "" {
		first = Monday
	}
	xmldom.AddText(e, "t", "FirstDayOfWeek", string(first))
	return e
}

// DailyRecurrence repeats every Interval days.
type DailyRecurrence struct {
	Interval int
}

func (r DailyRecurrence) element() *etree.Element {
	e := xmldom.New("t", "DailyRecurrence")
	xmldom.AddText(e, "t", "Interval", strconv.Itoa(r.Interval))
	return e
}

// NoEndRecurrence starts on StartDate and never ends.
type NoEndRecurrence struct {
	StartDate Date
}

func (r NoEndRecurrence) element() *etree.Element {
	e := xmldom.New("t", "NoEndRecurrence")
	xmldom.AddText(e, "t", "StartDate", string(r.StartDate))
	return e
}

// EndDateRecurrence runs from StartDate to EndDate.
type EndDateRecurrence struct {
	StartDate Date
	EndDate   Date
}

func (r EndDateRecurrence) element() *etree.Element {
	e := xmldom.New("t", "EndDateRecurrence")
	xmldom.AddText(e, "t", "StartDate", string(r.StartDate))
	xmldom.AddText(e, "t", "EndDate", string(r.EndDate))
	return e
}

// NumberedRecurrence ends after NumberOfOccurrences occurrences.
type NumberedRecurrence struct {
	StartDate           Date
	NumberOfOccurrences int
}

func (r NumberedRecurrence) element() *etree.Element {
	e := xmldom.New("t", "NumberedRecurrence")
	xmldom.AddText(e, "t", "StartDate", string(r.StartDate))
	xmldom.AddText(e, "t", "NumberOfOccurrences", strconv.Itoa(r.NumberOfOccurrences))
	return e
}

// Recurrence pairs a pattern with a range. The server expands it; this
// package does not.
type Recurrence struct {
	Pattern RecurrencePattern
	Range   RecurrenceRange
}

// XML renders <t:Recurrence>…</t:Recurrence>.
func (r Recurrence) XML() string {
	return xmldom.String(r.element())
}

func (r Recurrence) element() *etree.Element {
	e := xmldom.New("t", "Recurrence")
	if r.Pattern != nil {
		e.AddChild(r.Pattern.element())
	}
	if r.Range != nil {
		e.AddChild(r.Range.element())
	}
	return e
}

// recurrenceFromElement reads a <t:Recurrence> element. It reports false
// when e is nil or holds neither a pattern nor a range.
func recurrenceFromElement(e *etree.Element) (Recurrence, bool) {
	if e == nil {
		return Recurrence{}, false
	}
	var r Recurrence
	for _, ch := range e.ChildElements() {
		if p := patternFromElement(ch); p != nil {
			r.Pattern = p
			continue
		}
		if rng := rangeFromElement(ch); rng != nil {
			r.Range = rng
		}
	}
	return r, r.Pattern != nil || r.Range != nil
}

func childInt(e *etree.Element, local string) int {
	n, _ := strconv.Atoi(xmldom.ChildText(e, local, xmldom.NSTypes))
	return n
}

func patternFromElement(e *etree.Element) RecurrencePattern {
	text := func(local string) string { return xmldom.ChildText(e, local, xmldom.NSTypes) }
	switch e.Tag {
	case "AbsoluteYearlyRecurrence":
		return AbsoluteYearlyRecurrence{DayOfMonth: childInt(e, "DayOfMonth"), Month: Month(text("Month"))}
	case "RelativeYearlyRecurrence":
		return RelativeYearlyRecurrence{
			DaysOfWeek:     DayOfWeek(text("DaysOfWeek")),
			DayOfWeekIndex: DayOfWeekIndex(text("DayOfWeekIndex")),
			Month:          Month(text("Month")),
		}
	case "AbsoluteMonthlyRecurrence":
		return AbsoluteMonthlyRecurrence{Interval: childInt(e, "Interval"), DayOfMonth: childInt(e, "DayOfMonth")}
	case "RelativeMonthlyRecurrence":
		return RelativeMonthlyRecurrence{
			Interval:       childInt(e, "Interval"),
			DaysOfWeek:     DayOfWeek(text("DaysOfWeek")),
			DayOfWeekIndex: DayOfWeekIndex(text("DayOfWeekIndex")),
		}
	case "WeeklyRecurrence":
		w := WeeklyRecurrence{Interval: childInt(e, "Interval"), FirstDayOfWeek: DayOfWeek(text("FirstDayOfWeek"))}
		for _, d := range strings.Fields(text("DaysOfWeek")) {
			w.DaysOfWeek = append(w.DaysOfWeek, DayOfWeek(d))
		}
		return w
	case "DailyRecurrence":
		return DailyRecurrence{Interval: childInt(e, "Interval")}
	}
	return nil
}

func rangeFromElement(e *etree.Element) RecurrenceRange {
	start := Date(xmldom.ChildText(e, "StartDate", xmldom.NSTypes))
	switch e.Tag {
	case "NoEndRecurrence":
		return NoEndRecurrence{StartDate: start}
	case "EndDateRecurrence":
		return EndDateRecurrence{StartDate: start, EndDate: Date(xmldom.ChildText(e, "EndDate", xmldom.NSTypes))}
	case "NumberedRecurrence":
		return NumberedRecurrence{StartDate: start, NumberOfOccurrences: childInt(e, "NumberOfOccurrences")}
	}
	return nil
}

// OccurrenceInfo describes one occurrence of a recurring series.
type OccurrenceInfo struct {
	ItemID        ItemID
	Start         DateTime
	End           DateTime
	OriginalStart DateTime
}

// None reports whether the occurrence is unset.
func (o OccurrenceInfo) None() bool {
	return !o.ItemID.Valid()
}

func occurrenceInfoFromElement(e *etree.Element) OccurrenceInfo {
	if e == nil {
		return OccurrenceInfo{}
	}
	o := OccurrenceInfo{
		Start:         DateTime(xmldom.ChildText(e, "Start", xmldom.NSTypes)),
		End:           DateTime(xmldom.ChildText(e, "End", xmldom.NSTypes)),
		OriginalStart: DateTime(xmldom.ChildText(e, "OriginalStart", xmldom.NSTypes)),
	}
	if id := xmldom.Child(e, "ItemId", xmldom.NSTypes); id != nil {
		o.ItemID = itemIDFromElement(id)
	}
	return o
}
