package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_XML(t *testing.T) {
	tests := []struct {
		name string
		u    Update
		want string
	}{
		{
			name: "set string",
			u:    SetItemField(NewProperty(PathContactSpouseName, "Minnie")),
			want: `<t:SetItemField><t:FieldURI FieldURI="contacts:SpouseName"/><t:Contact><t:SpouseName>Minnie</t:SpouseName></t:Contact></t:SetItemField>`,
		},
		{
			name: "set bool",
			u:    SetItemField(NewProperty(PathMessageIsRead, true)),
			want: `<t:SetItemField><t:FieldURI FieldURI="message:IsRead"/><t:Message><t:IsRead>true</t:IsRead></t:Message></t:SetItemField>`,
		},
		{
			name: "set enum",
			u:    SetItemField(NewProperty(PathTaskStatus, TaskCompleted)),
			want: `<t:SetItemField><t:FieldURI FieldURI="task:Status"/><t:Task><t:Status>Completed</t:Status></t:Task></t:SetItemField>`,
		},
		{
			name: "set int",
			u:    SetItemField(NewProperty(PathTaskPercentComplete, 50)),
			want: `<t:SetItemField><t:FieldURI FieldURI="task:PercentComplete"/><t:Task><t:PercentComplete>50</t:PercentComplete></t:Task></t:SetItemField>`,
		},
		{
			name: "append body",
			u:    AppendToItemField(NewProperty(PathItemBody, NewBody(" world"))),
			want: `<t:AppendToItemField><t:FieldURI FieldURI="item:Body"/><t:Item><t:Body BodyType="Text"> world</t:Body></t:Item></t:AppendToItemField>`,
		},
		{
			name: "delete",
			u:    DeleteItemField(PathCalendarLocation),
			want: `<t:DeleteItemField><t:FieldURI FieldURI="calendar:Location"/></t:DeleteItemField>`,
		},
		{
			name: "indexed email address",
			u:    SetItemField(NewProperty(PathContactEmailAddress1, EmailAddress{Value: "minnie@duckburg.com"})),
			want: `<t:SetItemField><t:IndexedFieldURI FieldURI="contacts:EmailAddress" FieldIndex="EmailAddress1"/><t:Contact><t:EmailAddresses><t:Entry Key="EmailAddress1">minnie@duckburg.com</t:Entry></t:EmailAddresses></t:Contact></t:SetItemField>`,
		},
		{
			name: "indexed physical address",
			u:    SetItemField(NewProperty(ContactPhysicalAddressPath(AddressCity, HomeAddress), "Duckburg")),
			want: `<t:SetItemField><t:IndexedFieldURI FieldURI="contacts:PhysicalAddress:City" FieldIndex="Home"/><t:Contact><t:PhysicalAddresses><t:Entry Key="Home"><t:City>Duckburg</t:City></t:Entry></t:PhysicalAddresses></t:Contact></t:SetItemField>`,
		},
		{
			name: "attendees",
			u:    SetItemField(NewProperty(PathCalendarRequiredAttendees, []Attendee{NewAttendee(NewMailbox("donald@duckburg.com"))})),
			want: `<t:SetItemField><t:FieldURI FieldURI="calendar:RequiredAttendees"/><t:CalendarItem><t:RequiredAttendees><t:Attendee><t:Mailbox><t:EmailAddress>donald@duckburg.com</t:EmailAddress></t:Mailbox></t:Attendee></t:RequiredAttendees></t:CalendarItem></t:SetItemField>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.u.validate())
			assert.Equal(t, tt.want, tt.u.XML())
		})
	}
}

func TestNewUpdate_PicksOperation(t *testing.T) {
	tests := []struct {
		name string
		p    Property
		want UpdateOp
	}{
		{name: "plain value sets", p: NewProperty(PathItemSubject, "hello"), want: SetField},
		{name: "empty value deletes", p: NewProperty(PathItemSubject, ""), want: DeleteField},
		{name: "nil value deletes", p: NewProperty(PathItemCategories, nil), want: DeleteField},
		{name: "appendable path appends", p: NewProperty(PathMessageToRecipients, []Mailbox{NewMailbox("a@b.c")}), want: AppendToField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUpdate(tt.p).Op)
		})
	}
}

func TestUpdate_Validate(t *testing.T) {
	tests := []struct {
		name     string
		u        Update
		wantCode ResponseCode
		wantErr  error
	}{
		{
			name:     "read-only set",
			u:        SetItemField(NewProperty(PathItemSize, 10)),
			wantCode: ErrorInvalidPropertySet,
		},
		{
			name:     "read-only delete",
			u:        DeleteItemField(PathItemDateTimeReceived),
			wantCode: ErrorInvalidPropertyDelete,
		},
		{
			name:     "append to non appendable",
			u:        AppendToItemField(NewProperty(PathItemSubject, "x")),
			wantCode: ErrorInvalidPropertyAppend,
		},
		{
			name:    "unknown path",
			u:       SetItemField(NewProperty(PropertyPath{}, "x")),
			wantErr: ErrUnknownPropertyPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.u.validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.wantCode, CodeOf(err))
		})
	}
}

func TestUpdate_UnsupportedValue(t *testing.T) {
	u := SetItemField(NewProperty(PathItemSubject, struct{}{}))
	assert.Error(t, u.validate())
}

func TestUpdate_FolderTarget(t *testing.T) {
	u := SetItemField(NewProperty(PathFolderDisplayName, "Archive"))
	assert.Equal(t,
		`<t:SetFolderField><t:FieldURI FieldURI="folder:DisplayName"/><t:Folder><t:DisplayName>Archive</t:DisplayName></t:Folder></t:SetFolderField>`,
		xmlOf(u.element("Folder")))
}
