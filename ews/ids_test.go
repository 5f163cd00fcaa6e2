package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemID_XML(t *testing.T) {
	tests := []struct {
		name string
		id   ItemID
		want string
	}{
		{name: "with change key", id: NewItemID("abc", "def"), want: `<t:ItemId Id="abc" ChangeKey="def"/>`},
		{name: "without change key", id: NewItemID("abc", ""), want: `<t:ItemId Id="abc"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.XML())
		})
	}
}

func TestItemID_Valid(t *testing.T) {
	assert.True(t, NewItemID("abc", "").Valid())
	assert.False(t, ItemID{}.Valid())
	assert.False(t, ItemID{ChangeKey: "def"}.Valid())
}

func TestAttachmentID_XML(t *testing.T) {
	id := AttachmentID{ID: "att", RootItemID: "root", RootItemChangeKey: "ck"}

	assert.Equal(t, `<t:AttachmentId Id="att" RootItemId="root" RootItemChangeKey="ck"/>`, id.XML())
	assert.Equal(t, NewItemID("root", "ck"), id.RootItem())
	assert.True(t, id.Valid())
	assert.False(t, AttachmentID{RootItemID: "root"}.Valid())
}

func TestFolderID_XML(t *testing.T) {
	tests := []struct {
		name string
		id   FolderID
		want string
	}{
		{
			name: "explicit",
			id:   NewFolderID("fid", "ck"),
			want: `<t:FolderId Id="fid" ChangeKey="ck"/>`,
		},
		{
			name: "distinguished",
			id:   DistinguishedFolderID(FolderInbox),
			want: `<t:DistinguishedFolderId Id="inbox"/>`,
		},
		{
			name: "distinguished with change key",
			id:   DistinguishedFolderID(FolderTasks).WithChangeKey("ck"),
			want: `<t:DistinguishedFolderId Id="tasks" ChangeKey="ck"/>`,
		},
		{
			name: "delegate access",
			id:   DelegateFolderID(FolderCalendar, NewMailbox("boss@contoso.com")),
			want: `<t:DistinguishedFolderId Id="calendar"><t:Mailbox><t:EmailAddress>boss@contoso.com</t:EmailAddress></t:Mailbox></t:DistinguishedFolderId>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.XML())
		})
	}
}

func TestFolderID_Accessors(t *testing.T) {
	inbox := DistinguishedFolderID(FolderInbox)
	assert.True(t, inbox.IsDistinguished())
	assert.True(t, inbox.Valid())
	assert.Equal(t, "inbox", inbox.Name())

	explicit := NewFolderID("fid", "")
	assert.False(t, explicit.IsDistinguished())
	assert.True(t, explicit.Valid())
	assert.Equal(t, "fid", explicit.Name())

	assert.False(t, FolderID{}.Valid())
}

func TestFolderIDFromElement_RoundTrip(t *testing.T) {
	tests := []FolderID{
		NewFolderID("fid", "ck"),
		DistinguishedFolderID(FolderDrafts),
		DelegateFolderID(FolderCalendar, NewMailbox("boss@contoso.com")),
	}

	for _, id := range tests {
		t.Run(id.Name(), func(t *testing.T) {
			assert.Equal(t, id, folderIDFromElement(id.element()))
		})
	}
}

func TestMailbox_XML(t *testing.T) {
	tests := []struct {
		name string
		mb   Mailbox
		want string
	}{
		{
			name: "address only",
			mb:   NewMailbox("batman@gothamcity.com"),
			want: `<t:Mailbox><t:EmailAddress>batman@gothamcity.com</t:EmailAddress></t:Mailbox>`,
		},
		{
			name: "named",
			mb:   NewNamedMailbox("batman@gothamcity.com", "Bruce Wayne"),
			want: `<t:Mailbox><t:Name>Bruce Wayne</t:Name><t:EmailAddress>batman@gothamcity.com</t:EmailAddress></t:Mailbox>`,
		},
		{
			name: "item id",
			mb:   MailboxFromItemID(NewItemID("dl", "ck")),
			want: `<t:Mailbox><t:ItemId Id="dl" ChangeKey="ck"/></t:Mailbox>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mb.XML())
		})
	}
}

func TestMailbox_Routing(t *testing.T) {
	assert.Equal(t, "SMTP", NewMailbox("a@b.c").Routing())
	assert.Equal(t, "EX", Mailbox{Address: "a", RoutingType: "EX"}.Routing())
	assert.True(t, Mailbox{}.None())
	assert.False(t, MailboxFromItemID(NewItemID("x", "")).None())
}
