package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemShape_Element(t *testing.T) {
	tests := []struct {
		name  string
		shape ItemShape
		want  string
	}{
		{
			name:  "zero value",
			shape: ItemShape{},
			want:  `<m:ItemShape><t:BaseShape>Default</t:BaseShape></m:ItemShape>`,
		},
		{
			name:  "id only with extra property",
			shape: NewItemShape(IDOnly, PathItemSubject),
			want:  `<m:ItemShape><t:BaseShape>IdOnly</t:BaseShape><t:AdditionalProperties><t:FieldURI FieldURI="item:Subject"/></t:AdditionalProperties></m:ItemShape>`,
		},
		{
			name:  "mime and body type",
			shape: ItemShape{BaseShape: AllProperties, IncludeMimeContent: true, BodyType: BodyTypeText},
			want:  `<m:ItemShape><t:BaseShape>AllProperties</t:BaseShape><t:IncludeMimeContent>true</t:IncludeMimeContent><t:BodyType>Text</t:BodyType></m:ItemShape>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, xmlOf(tt.shape.element()))
		})
	}
}

func TestIndexedPageView(t *testing.T) {
	v := NewIndexedPageView(10, 0)

	e, err := v.viewElement("IndexedPageItemView")
	require.NoError(t, err)
	assert.Equal(t, `<m:IndexedPageItemView MaxEntriesReturned="10" Offset="0" BasePoint="Beginning"/>`, xmlOf(e))

	v.Advance()
	e, err = v.viewElement("IndexedPageFolderView")
	require.NoError(t, err)
	assert.Equal(t, `<m:IndexedPageFolderView MaxEntriesReturned="10" Offset="10" BasePoint="Beginning"/>`, xmlOf(e))
}

func TestIndexedPageView_Invalid(t *testing.T) {
	tests := []struct {
		name string
		view *IndexedPageView
		code ResponseCode
	}{
		{name: "zero entries", view: NewIndexedPageView(0, 0), code: ErrorInvalidPagingMaxRows},
		{name: "negative offset", view: NewIndexedPageView(5, -1), code: ErrorInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.view.viewElement("IndexedPageItemView")
			assert.Equal(t, tt.code, CodeOf(err))
		})
	}
}

func TestCalendarView(t *testing.T) {
	tests := []struct {
		name string
		view CalendarView
		want string
	}{
		{
			name: "no limit",
			view: NewCalendarView("2026-03-01T00:00:00Z", "2026-03-31T23:59:59Z"),
			want: `<m:CalendarView StartDate="2026-03-01T00:00:00Z" EndDate="2026-03-31T23:59:59Z"/>`,
		},
		{
			name: "with limit",
			view: CalendarView{Start: "2026-03-01T00:00:00Z", End: "2026-03-02T00:00:00Z", MaxEntries: 5},
			want: `<m:CalendarView MaxEntriesReturned="5" StartDate="2026-03-01T00:00:00Z" EndDate="2026-03-02T00:00:00Z"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.XML())
		})
	}
}

func TestCalendarView_RangeTooBig(t *testing.T) {
	v := NewCalendarView("2026-01-01T00:00:00Z", "2028-01-02T00:00:00Z")

	_, err := v.viewElement("")
	assert.Equal(t, ErrorCalendarViewRangeTooBig, CodeOf(err))
	assert.Empty(t, v.XML())

	exact := NewCalendarView("2026-01-01T00:00:00Z", "2028-01-01T00:00:00Z")
	_, err = exact.viewElement("")
	assert.NoError(t, err)
}

func TestContactsView(t *testing.T) {
	e, err := ContactsView{InitialName: "A", FinalName: "M", MaxEntries: 50}.viewElement("")
	require.NoError(t, err)
	assert.Equal(t, `<m:ContactsView MaxEntriesReturned="50" InitialName="A" FinalName="M"/>`, xmlOf(e))
}

func TestSortOrder(t *testing.T) {
	assert.Nil(t, SortOrder(nil).element())

	s := SortOrder{
		{Path: PathItemDateTimeReceived, Direction: Descending},
		{Path: PathItemSubject},
	}
	assert.Equal(t,
		`<m:SortOrder><t:FieldOrder Order="Descending"><t:FieldURI FieldURI="item:DateTimeReceived"/></t:FieldOrder><t:FieldOrder Order="Ascending"><t:FieldURI FieldURI="item:Subject"/></t:FieldOrder></m:SortOrder>`,
		xmlOf(s.element()))
}
