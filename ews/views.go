package ews

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// ItemShape selects the properties returned for items.
type ItemShape struct {
	BaseShape            BaseShape
	IncludeMimeContent   bool
	BodyType             BodyType
	AdditionalProperties []PropertyPath
}

// NewItemShape returns a shape with the given base and extra properties.
func NewItemShape(base BaseShape, additional ...PropertyPath) ItemShape {
	return ItemShape{BaseShape: base, AdditionalProperties: additional}
}

func (s ItemShape) element() *etree.Element {
	e := xmldom.New("m", "ItemShape")
	base := s.BaseShape
	if base == "" {
		base = DefaultShape
	}
	xmldom.AddText(e, "t", "BaseShape", string(base))
	if s.IncludeMimeContent {
		xmldom.AddText(e, "t", "IncludeMimeContent", "true")
	}
	if s.BodyType != "" {
		xmldom.AddText(e, "t", "BodyType", string(s.BodyType))
	}
	additionalProperties(e, s.AdditionalProperties)
	return e
}

func additionalProperties(parent *etree.Element, paths []PropertyPath) {
	if len(paths) == 0 {
		return
	}
	list := xmldom.Add(parent, "t", "AdditionalProperties")
	for _, p := range paths {
		list.AddChild(p.element())
	}
}

// FolderShape selects the properties returned for folders.
type FolderShape struct {
	BaseShape            BaseShape
	AdditionalProperties []PropertyPath
}

func (s FolderShape) element() *etree.Element {
	e := xmldom.New("m", "FolderShape")
	base := s.BaseShape
	if base == "" {
		base = DefaultShape
	}
	xmldom.AddText(e, "t", "BaseShape", string(base))
	additionalProperties(e, s.AdditionalProperties)
	return e
}

// View limits the result set of FindItem or FindFolder. It is implemented
// by IndexedPageView, CalendarView and ContactsView.
type View interface {
	// viewElement renders the view; local is the element name FindItem or
	// FindFolder expects for paged views.
	viewElement(paged string) (*etree.Element, error)
}

// IndexedPageView pages through a result set.
type IndexedPageView struct {
	MaxEntries int
	Offset     int
	BasePoint  PagingBasePoint
}

// NewIndexedPageView returns a view starting at offset.
func NewIndexedPageView(maxEntries, offset int) *IndexedPageView {
	return &IndexedPageView{MaxEntries: maxEntries, Offset: offset, BasePoint: PagingBeginning}
}

// Advance moves the view to the next page.
func (v *IndexedPageView) Advance() {
	v.Offset += v.MaxEntries
}

func (v *IndexedPageView) viewElement(paged string) (*etree.Element, error) {
	if v.MaxEntries < 1 {
		return nil, newExchangeError(ErrorInvalidPagingMaxRows,
			fmt.Sprintf("MaxEntriesReturned must be at least 1, got %d", v.MaxEntries))
	}
	if v.Offset < 0 {
		return nil, newExchangeError(ErrorInvalidArgument, "paging offset must not be negative")
	}
	base := v.BasePoint
	if base == "" {
		base = PagingBeginning
	}
	e := xmldom.New("m", paged)
	e.CreateAttr("MaxEntriesReturned", strconv.Itoa(v.MaxEntries))
	e.CreateAttr("Offset", strconv.Itoa(v.Offset))
	e.CreateAttr("BasePoint", string(base))
	return e, nil
}

// CalendarView expands recurring appointments between Start and End. The
// window may span at most two years.
type CalendarView struct {
	Start      DateTime
	End        DateTime
	MaxEntries int
}

// NewCalendarView returns a calendar view without an entry limit.
func NewCalendarView(start, end DateTime) CalendarView {
	return CalendarView{Start: start, End: end}
}

// XML renders <m:CalendarView …/>.
func (v CalendarView) XML() string {
	e, err := v.viewElement("")
	if err != nil {
		return ""
	}
	return xmldom.String(e)
}

func (v CalendarView) viewElement(string) (*etree.Element, error) {
	start, errStart := v.Start.Time()
	end, errEnd := v.End.Time()
	if errStart == nil && errEnd == nil && end.After(start.AddDate(2, 0, 0)) {
		return nil, newExchangeError(ErrorCalendarViewRangeTooBig,
			fmt.Sprintf("calendar view from %s to %s exceeds two years", v.Start, v.End))
	}
	e := xmldom.New("m", "CalendarView")
	if v.MaxEntries > 0 {
		e.CreateAttr("MaxEntriesReturned", strconv.Itoa(v.MaxEntries))
	}
	e.CreateAttr("StartDate", string(v.Start))
	e.CreateAttr("EndDate", string(v.End))
	return e, nil
}

// ContactsView pages through contacts alphabetically by display name.
type ContactsView struct {
	InitialName string
	FinalName   string
	MaxEntries  int
}

func (v ContactsView) viewElement(string) (*etree.Element, error) {
	e := xmldom.New("m", "ContactsView")
	if v.MaxEntries > 0 {
		e.CreateAttr("MaxEntriesReturned", strconv.Itoa(v.MaxEntries))
	}
	if v.InitialName != "" {
		e.CreateAttr("InitialName", v.InitialName)
	}
	if v.FinalName != "" {
		e.CreateAttr("FinalName", v.FinalName)
	}
	return e, nil
}

// FieldOrder is one sort key.
type FieldOrder struct {
	Path      PropertyPath
	Direction SortDirection
}

// SortOrder lists sort keys, most significant first.
type SortOrder []FieldOrder

func (s SortOrder) element() *etree.Element {
	if len(s) == 0 {
		return nil
	}
	e := xmldom.New("m", "SortOrder")
	for _, f := range s {
		dir := f.Direction
		if dir == "" {
			dir = Ascending
		}
		fo := xmldom.Add(e, "t", "FieldOrder")
		fo.CreateAttr("Order", string(dir))
		fo.AddChild(f.Path.element())
	}
	return e
}
