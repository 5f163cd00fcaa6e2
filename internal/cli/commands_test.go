package cli

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/ews/auth"
	"github.com/custodia-labs/ews-go/ews/ewstest"
	"github.com/custodia-labs/ews-go/internal/config"
	"github.com/custodia-labs/ews-go/internal/store"
)

func TestCreateTaskCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("CreateItem",
		`<m:Items><t:Task><t:ItemId Id="task-1" ChangeKey="ck-1"/></t:Task></m:Items>`))

	out, err := h.run(t, "create-task", "--subject", "Get some milk", "--body", "Skimmed, please")
	require.NoError(t, err)
	assert.Contains(t, out, `Created task "Get some milk"`)
	assert.Contains(t, out, "Id: task-1")
	assert.Contains(t, out, "ChangeKey: ck-1")

	req := h.fake.LastRequest()
	assert.Equal(t, testEndpoint, req.URL)
	assert.IsType(t, &auth.NTLM{}, req.Credentials)

	op := xmlOf(h.lastOperation(t))
	assert.NotContains(t, op, "MessageDisposition")
	assert.Contains(t, op, `<t:Subject>Get some milk</t:Subject>`)
	assert.Contains(t, op, `<t:Body BodyType="Text">Skimmed, please</t:Body>`)
}

func TestCreateTaskCmd_HTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantHint bool
	}{
		{name: "unauthorised", status: http.StatusUnauthorized, wantHint: true},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "bad gateway", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.fake.Queue(tt.status, nil, "")

			_, err := h.run(t, "create-task", "--subject", "Get some milk")
			require.Error(t, err)

			var he *ews.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.status, he.Code)
			if tt.wantHint {
				assert.Contains(t, err.Error(), "check the profile's credentials")
			} else {
				assert.NotContains(t, err.Error(), "credentials")
			}
			assert.Len(t, h.fake.Requests(), 1)
		})
	}
}

func TestCreateTaskCmd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing subject", args: []string{"create-task"}, wantErr: "--subject is required"},
		{name: "bad due date", args: []string{"create-task", "--subject", "x", "--due", "tomorrow"}, wantErr: "--due: expected RFC 3339"},
		{name: "contact without a name", args: []string{"create-contact", "--email", "x@duckburg.com"}, wantErr: "--given or --surname is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, h.fake.Requests())
		})
	}
}

func TestCreateContactCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("CreateItem",
		`<m:Items><t:Contact><t:ItemId Id="contact-1" ChangeKey="ck-1"/></t:Contact></m:Items>`))

	out, err := h.run(t, "create-contact", "--given", "Donald", "--surname", "Duck",
		"--email", "donald@duckburg.com", "--mobile", "+1 555 0100", "--company", "Duckburg Navy")
	require.NoError(t, err)
	assert.Contains(t, out, "Created contact Donald Duck")

	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, "<t:Contact>")
	assert.Contains(t, op, `<t:GivenName>Donald</t:GivenName>`)
	assert.Contains(t, op, `<t:CompanyName>Duckburg Navy</t:CompanyName>`)
	assert.Contains(t, op, `<t:Entry Key="EmailAddress1">donald@duckburg.com</t:Entry>`)
	assert.Contains(t, op, `<t:Entry Key="MobilePhone">+1 555 0100</t:Entry>`)
}

func TestFindUnreadCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("FindItem",
		`<m:RootFolder TotalItemsInView="1" IncludesLastItemInRange="true"><t:Items>`+
			`<t:Message><t:ItemId Id="m-1" ChangeKey="a"/><t:Subject>Quarterly numbers</t:Subject>`+
			`<t:DateTimeReceived>2026-01-05T09:30:00Z</t:DateTimeReceived>`+
			`<t:From><t:Mailbox><t:Name>Scrooge McDuck</t:Name><t:EmailAddress>scrooge@duckburg.com</t:EmailAddress></t:Mailbox></t:From>`+
			`</t:Message></t:Items></m:RootFolder>`))

	out, err := h.run(t, "find-unread", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Quarterly numbers")
	assert.Contains(t, out, "From: Scrooge McDuck <scrooge@duckburg.com>")
	assert.Contains(t, out, "Id: m-1")
	assert.Contains(t, out, "1 of 1 messages")
	assert.NotContains(t, out, "more available")

	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, `<m:IndexedPageItemView MaxEntriesReturned="10" Offset="0" BasePoint="Beginning"/>`)
	assert.Contains(t, op, `<t:FieldURI FieldURI="message:IsRead"/><t:FieldURIOrConstant><t:Constant Value="false"/>`)
	assert.Contains(t, op, `<t:FieldOrder Order="Descending"><t:FieldURI FieldURI="item:DateTimeReceived"/></t:FieldOrder>`)
	assert.Contains(t, op, `<m:ParentFolderIds><t:DistinguishedFolderId Id="inbox"/></m:ParentFolderIds>`)
}

func TestFindMessagesCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "subject only",
			args:     []string{"--subject", "invoice"},
			contains: []string{`<t:Contains ContainmentMode="Substring" ContainmentComparison="IgnoreCase"><t:FieldURI FieldURI="item:Subject"/>`},
			absent:   []string{"<t:And>"},
		},
		{
			name:     "subject and sender",
			args:     []string{"--subject", "invoice", "--from", "scrooge", "--folder", "sentitems"},
			contains: []string{"<t:And>", `FieldURI="message:From"`, `<t:DistinguishedFolderId Id="sentitems"/>`},
		},
		{
			name:   "no filter",
			args:   nil,
			absent: []string{"<m:Restriction>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.fake.QueueOK(ewstest.Success("FindItem",
				`<m:RootFolder TotalItemsInView="0" IncludesLastItemInRange="true"><t:Items/></m:RootFolder>`))

			out, err := h.run(t, append([]string{"find-messages"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "No messages found.")

			op := xmlOf(h.lastOperation(t))
			for _, s := range tt.contains {
				assert.Contains(t, op, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, op, s)
			}
		})
	}
}

func TestFindTasksCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("FindItem",
		`<m:RootFolder TotalItemsInView="12" IncludesLastItemInRange="false"><t:Items>`+
			`<t:Task><t:ItemId Id="t-1" ChangeKey="a"/><t:Subject>File report</t:Subject><t:Status>InProgress</t:Status></t:Task>`+
			`</t:Items></m:RootFolder>`))

	out, err := h.run(t, "find-tasks", "--open", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "File report")
	assert.Contains(t, out, "Status: InProgress")
	assert.Contains(t, out, "1 of 12 tasks, more available")

	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, `<t:IsNotEqualTo><t:FieldURI FieldURI="task:Status"/><t:FieldURIOrConstant><t:Constant Value="Completed"/>`)
	assert.Contains(t, op, `<t:DistinguishedFolderId Id="tasks"/>`)
}

func TestSyncItemsCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("SyncFolderItems",
		`<m:SyncState>state-1</m:SyncState><m:IncludesLastItemInRange>false</m:IncludesLastItemInRange><m:Changes>`+
			`<t:Create><t:Message><t:ItemId Id="new-1" ChangeKey="a"/><t:Subject>Hello</t:Subject></t:Message></t:Create>`+
			`</m:Changes>`))
	h.fake.QueueOK(ewstest.Success("SyncFolderItems",
		`<m:SyncState>state-2</m:SyncState><m:IncludesLastItemInRange>true</m:IncludesLastItemInRange><m:Changes>`+
			`<t:Delete><t:ItemId Id="old-1" ChangeKey="b"/></t:Delete>`+
			`<t:ReadFlagChange><t:ItemId Id="new-1" ChangeKey="c"/><t:IsRead>true</t:IsRead></t:ReadFlagChange>`+
			`</m:Changes>`))

	out, err := h.run(t, "sync", "items", "inbox", "--batch", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "new-1  Hello")
	assert.Contains(t, out, "old-1")
	assert.Contains(t, out, "read=true")
	assert.Contains(t, out, "3 change(s) in inbox")

	requests := h.fake.Requests()
	require.Len(t, requests, 2)
	assert.NotContains(t, string(requests[0].Body), "SyncState>")
	assert.Contains(t, string(requests[1].Body), "state-1")

	// a later run resumes from the stored state
	h.fake.QueueOK(ewstest.Success("SyncFolderItems",
		`<m:SyncState>state-3</m:SyncState><m:IncludesLastItemInRange>true</m:IncludesLastItemInRange><m:Changes/>`))
	out, err = h.run(t, "sync", "items", "inbox")
	require.NoError(t, err)
	assert.Contains(t, out, "0 change(s) in inbox")
	assert.Contains(t, xmlOf(h.lastOperation(t)), `<m:SyncState>state-2</m:SyncState>`)

	st, err := store.Open(context.Background(), h.storePath)
	require.NoError(t, err)
	defer st.Close()
	state, err := st.SyncState(context.Background(), "dduck@duckburg.com", "inbox", store.KindItems)
	require.NoError(t, err)
	assert.Equal(t, "state-3", state)
}

func TestSyncItemsCmd_RejectedState(t *testing.T) {
	h := newHarness(t)
	st, err := store.Open(context.Background(), h.storePath)
	require.NoError(t, err)
	require.NoError(t, st.SaveSyncState(context.Background(), "dduck@duckburg.com", "inbox", store.KindItems, "stale", true))
	require.NoError(t, st.Close())

	h.fake.QueueOK(ewstest.Failure("SyncFolderItems", "ErrorInvalidSyncStateData", "Synchronization state data is corrupt or otherwise invalid."))
	h.fake.QueueOK(ewstest.Success("SyncFolderItems",
		`<m:SyncState>fresh</m:SyncState><m:IncludesLastItemInRange>true</m:IncludesLastItemInRange><m:Changes/>`))

	out, err := h.run(t, "sync", "items", "inbox")
	require.NoError(t, err)
	assert.Contains(t, out, "0 change(s) in inbox")

	requests := h.fake.Requests()
	require.Len(t, requests, 2)
	assert.Contains(t, string(requests[0].Body), "stale")
	assert.NotContains(t, string(requests[1].Body), "stale")
}

func TestSyncItemsCmd_RejectedStateKeepsBatchBudget(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	st, err := store.Open(ctx, h.storePath)
	require.NoError(t, err)
	require.NoError(t, st.SaveSyncState(ctx, "dduck@duckburg.com", "inbox", store.KindItems, "stale", false))
	require.NoError(t, st.Close())

	h.fake.QueueOK(ewstest.Failure("SyncFolderItems", "ErrorInvalidSyncStateData", "Synchronization state data is corrupt or otherwise invalid."))
	h.fake.QueueOK(ewstest.Success("SyncFolderItems",
		`<m:SyncState>fresh</m:SyncState><m:IncludesLastItemInRange>false</m:IncludesLastItemInRange><m:Changes>`+
			`<t:Create><t:Message><t:ItemId Id="new-1" ChangeKey="a"/><t:Subject>Hello</t:Subject></t:Message></t:Create>`+
			`</m:Changes>`))

	out, err := h.run(t, "sync", "items", "inbox", "--max-batches", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "1 change(s) in inbox")
	assert.Len(t, h.fake.Requests(), 2)

	st, err = store.Open(ctx, h.storePath)
	require.NoError(t, err)
	defer st.Close()
	state, err := st.SyncState(ctx, "dduck@duckburg.com", "inbox", store.KindItems)
	require.NoError(t, err)
	assert.Equal(t, "fresh", state)
}

func TestSyncItemsCmd_RejectedStateIsForgotten(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	st, err := store.Open(ctx, h.storePath)
	require.NoError(t, err)
	require.NoError(t, st.SaveSyncState(ctx, "dduck@duckburg.com", "inbox", store.KindItems, "stale", true))
	require.NoError(t, st.Close())

	h.fake.QueueOK(ewstest.Failure("SyncFolderItems", "ErrorInvalidSyncStateData", "Synchronization state data is corrupt or otherwise invalid."))
	h.fake.QueueOK(ewstest.Failure("SyncFolderItems", "ErrorAccessDenied", "Access is denied."))

	_, err = h.run(t, "sync", "items", "inbox")
	require.Error(t, err)

	st, err = store.Open(ctx, h.storePath)
	require.NoError(t, err)
	defer st.Close()
	state, err := st.SyncState(ctx, "dduck@duckburg.com", "inbox", store.KindItems)
	require.NoError(t, err)
	assert.Empty(t, state)
}

func TestSyncHierarchyAndStatusCmd(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "sync", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No cursors found.")

	h.fake.QueueOK(ewstest.Success("SyncFolderHierarchy",
		`<m:SyncState>h-1</m:SyncState><m:IncludesLastFolderInRange>true</m:IncludesLastFolderInRange><m:Changes>`+
			`<t:Create><t:Folder><t:FolderId Id="f-1" ChangeKey="a"/><t:DisplayName>Projects</t:DisplayName></t:Folder></t:Create>`+
			`</m:Changes>`))
	out, err = h.run(t, "sync", "hierarchy")
	require.NoError(t, err)
	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "1 folder change(s)")

	out, err = h.run(t, "sync", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Cursors for dduck@duckburg.com")
	assert.Contains(t, out, "(mailbox)")
	assert.Contains(t, out, "in sync")
}

func TestSubscribeCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("Subscribe", `<m:SubscriptionId>sub-1</m:SubscriptionId><m:Watermark>w1</m:Watermark>`))
	h.fake.QueueOK(ewstest.Success("GetEvents",
		`<m:Notification><t:SubscriptionId>sub-1</t:SubscriptionId><t:PreviousWatermark>w1</t:PreviousWatermark><t:MoreEvents>false</t:MoreEvents>`+
			`<t:NewMailEvent><t:Watermark>w2</t:Watermark><t:TimeStamp>2026-01-01T10:00:01Z</t:TimeStamp>`+
			`<t:ItemId Id="item-1" ChangeKey="a"/><t:ParentFolderId Id="inbox-id" ChangeKey="b"/></t:NewMailEvent>`+
			`</m:Notification>`))
	h.fake.QueueOK(ewstest.Response("Unsubscribe", ewstest.ResponseMessage("Unsubscribe", "Success", "NoError", "")))

	out, err := h.run(t, "subscribe", "--event", "new", "--polls", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Subscribed sub-1")
	assert.Contains(t, out, "item-1")
	assert.Contains(t, out, "Unsubscribed sub-1")
	assert.Zero(t, h.fake.Pending())

	requests := h.fake.Requests()
	require.Len(t, requests, 3)
	assert.Contains(t, string(requests[0].Body), "<t:EventType>NewMailEvent</t:EventType>")

	st, err := store.Open(context.Background(), h.storePath)
	require.NoError(t, err)
	defer st.Close()
	_, err = st.LastSubscription(context.Background(), "dduck@duckburg.com")
	assert.ErrorIs(t, err, store.ErrNoSubscription)
}

func TestSubscribeCmd_KeepAndResume(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("Subscribe", `<m:SubscriptionId>sub-1</m:SubscriptionId><m:Watermark>w1</m:Watermark>`))
	h.fake.QueueOK(ewstest.Success("GetEvents",
		`<m:Notification><t:SubscriptionId>sub-1</t:SubscriptionId><t:PreviousWatermark>w1</t:PreviousWatermark><t:MoreEvents>false</t:MoreEvents>`+
			`<t:StatusEvent><t:Watermark>w5</t:Watermark></t:StatusEvent></m:Notification>`))

	_, err := h.run(t, "subscribe", "--keep")
	require.NoError(t, err)
	assert.Len(t, h.fake.Requests(), 2)

	h.fake.QueueOK(ewstest.Success("Subscribe", `<m:SubscriptionId>sub-2</m:SubscriptionId><m:Watermark>w5</m:Watermark>`))
	h.fake.QueueOK(ewstest.Success("GetEvents",
		`<m:Notification><t:SubscriptionId>sub-2</t:SubscriptionId><t:PreviousWatermark>w5</t:PreviousWatermark><t:MoreEvents>false</t:MoreEvents></m:Notification>`))
	h.fake.QueueOK(ewstest.Response("Unsubscribe", ewstest.ResponseMessage("Unsubscribe", "Success", "NoError", "")))

	out, err := h.run(t, "subscribe", "--resume")
	require.NoError(t, err)
	assert.Contains(t, out, "Subscribed sub-2")

	requests := h.fake.Requests()
	require.Len(t, requests, 5)
	assert.Contains(t, string(requests[2].Body), "<t:Watermark>w5</t:Watermark>")
}

func TestSubscribeCmd_UnknownEvent(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "subscribe", "--event", "exploded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown event "exploded"`)
	assert.Empty(t, h.fake.Requests())
}

func TestResolveCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("ResolveNames",
		`<m:ResolutionSet TotalItemsInView="1" IncludesLastItemInRange="true"><t:Resolution>`+
			`<t:Mailbox><t:Name>Donald Duck</t:Name><t:EmailAddress>donald@duckburg.com</t:EmailAddress><t:RoutingType>SMTP</t:RoutingType><t:MailboxType>Mailbox</t:MailboxType></t:Mailbox>`+
			`<t:Contact><t:DisplayName>Donald Duck</t:DisplayName><t:JobTitle>Sailor</t:JobTitle></t:Contact></t:Resolution></m:ResolutionSet>`))

	out, err := h.run(t, "resolve", "donald", "--scope", "ad-contacts", "--full")
	require.NoError(t, err)
	assert.Contains(t, out, "Donald Duck <donald@duckburg.com>")
	assert.Contains(t, out, "Job title: Sailor")
	assert.Contains(t, xmlOf(h.lastOperation(t)), `SearchScope="ActiveDirectoryContacts"`)
}

func TestResolveCmd_BadScope(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "resolve", "donald", "--scope", "everywhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--scope must be one of")
	assert.Empty(t, h.fake.Requests())
}

func TestRoomsCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.RootResponse("GetRoomLists", "Success", "NoError",
		`<m:RoomLists><t:Address><t:Name>Building 1</t:Name><t:EmailAddress>building1@duckburg.com</t:EmailAddress></t:Address></m:RoomLists>`))

	out, err := h.run(t, "rooms")
	require.NoError(t, err)
	assert.Contains(t, out, "Building 1 <building1@duckburg.com>")

	h.fake.QueueOK(ewstest.RootResponse("GetRooms", "Success", "NoError",
		`<m:Rooms><t:Room><t:Id><t:Name>Conf Room 1</t:Name><t:EmailAddress>conf1@duckburg.com</t:EmailAddress></t:Id></t:Room></m:Rooms>`))
	out, err = h.run(t, "rooms", "--list", "building1@duckburg.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Rooms in building1@duckburg.com")
	assert.Contains(t, out, "Conf Room 1 <conf1@duckburg.com>")
}

const cliDelegateOK = `<m:ResponseMessages><m:DelegateUserResponseMessageType ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode>` +
	`<m:DelegateUser><t:UserId><t:PrimarySmtpAddress>gyro@duckburg.com</t:PrimarySmtpAddress><t:DisplayName>Gyro Gearloose</t:DisplayName></t:UserId>` +
	`<t:DelegatePermissions><t:CalendarFolderPermissionLevel>Editor</t:CalendarFolderPermissionLevel></t:DelegatePermissions>` +
	`<t:ViewPrivateItems>true</t:ViewPrivateItems></m:DelegateUser>` +
	`</m:DelegateUserResponseMessageType></m:ResponseMessages>`

func TestDelegatesCmd(t *testing.T) {
	h := newHarness(t)

	h.fake.QueueOK(ewstest.RootResponse("AddDelegate", "Success", "NoError", cliDelegateOK))
	out, err := h.run(t, "delegates", "add", "gyro@duckburg.com", "--calendar", "editor", "--view-private")
	require.NoError(t, err)
	assert.Contains(t, out, "Added delegate gyro@duckburg.com")
	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, `<m:Mailbox><t:EmailAddress>dduck@duckburg.com</t:EmailAddress></m:Mailbox>`)
	assert.Contains(t, op, `<t:CalendarFolderPermissionLevel>Editor</t:CalendarFolderPermissionLevel>`)
	assert.Contains(t, op, `<t:ViewPrivateItems>true</t:ViewPrivateItems>`)

	h.fake.QueueOK(ewstest.RootResponse("GetDelegate", "Success", "NoError",
		cliDelegateOK+`<m:DeliverMeetingRequests>DelegatesAndMe</m:DeliverMeetingRequests>`))
	out, err = h.run(t, "delegates", "get", "--owner", "scrooge@duckburg.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Gyro Gearloose")
	assert.Contains(t, out, "Calendar: Editor")
	assert.Contains(t, out, "Private items: visible")
	assert.Contains(t, xmlOf(h.lastOperation(t)), "scrooge@duckburg.com")

	h.fake.QueueOK(ewstest.RootResponse("RemoveDelegate", "Success", "NoError",
		`<m:ResponseMessages><m:DelegateUserResponseMessageType ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode></m:DelegateUserResponseMessageType></m:ResponseMessages>`))
	out, err = h.run(t, "delegates", "remove", "gyro@duckburg.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed gyro@duckburg.com")
}

func TestDelegatesCmd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad permission", args: []string{"delegates", "add", "gyro@duckburg.com", "--inbox", "owner"}, wantErr: "--inbox must be none, reviewer, author or editor"},
		{name: "owner without domain", args: []string{"delegates", "get", "--owner", "scrooge"}, wantErr: "--owner must be an SMTP address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, h.fake.Requests())
		})
	}
}

func TestUpdateFolderCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("GetFolder",
		`<m:Folders><t:Folder><t:FolderId Id="f-1" ChangeKey="ck-1"/></t:Folder></m:Folders>`))
	h.fake.QueueOK(ewstest.Success("UpdateFolder",
		`<m:Folders><t:Folder><t:FolderId Id="f-1" ChangeKey="ck-2"/></t:Folder></m:Folders>`))

	out, err := h.run(t, "update-folder", "f-1", "--name", "Archive 2026")
	require.NoError(t, err)
	assert.Contains(t, out, `Renamed folder to "Archive 2026"`)
	assert.Contains(t, out, "ChangeKey: ck-2")

	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, `<t:FolderId Id="f-1" ChangeKey="ck-1"/>`)
	assert.Contains(t, op, `<t:DisplayName>Archive 2026</t:DisplayName>`)
}

func TestUpdateFolderCmd_WithChangeKey(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("UpdateFolder",
		`<m:Folders><t:Folder><t:FolderId Id="f-1" ChangeKey="ck-9"/></t:Folder></m:Folders>`))

	_, err := h.run(t, "update-folder", "f-1", "--name", "Archive", "--change-key", "ck-8")
	require.NoError(t, err)
	assert.Len(t, h.fake.Requests(), 1)
	assert.Contains(t, xmlOf(h.lastOperation(t)), `<t:FolderId Id="f-1" ChangeKey="ck-8"/>`)
}

func TestSaveAttachmentCmd(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.fake.QueueOK(ewstest.Success("GetItem",
		`<m:Items><t:Message><t:ItemId Id="msg-1" ChangeKey="a"/><t:Attachments>`+
			`<t:FileAttachment><t:AttachmentId Id="att-1"/><t:Name>hello.txt</t:Name></t:FileAttachment>`+
			`<t:ItemAttachment><t:AttachmentId Id="att-2"/><t:Name>Forwarded</t:Name></t:ItemAttachment>`+
			`</t:Attachments></t:Message></m:Items>`))
	h.fake.QueueOK(ewstest.Success("GetAttachment",
		`<m:Attachments><t:FileAttachment><t:AttachmentId Id="att-1"/><t:Name>hello.txt</t:Name><t:ContentType>text/plain</t:ContentType>`+
			`<t:Content>SGVsbG8sIHdvcmxk</t:Content></t:FileAttachment></m:Attachments>`))
	h.fake.QueueOK(ewstest.Success("GetAttachment",
		`<m:Attachments><t:ItemAttachment><t:AttachmentId Id="att-2"/><t:Name>Forwarded</t:Name></t:ItemAttachment></m:Attachments>`))

	out, err := h.run(t, "save-attachment", "msg-1", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "(12 bytes)")
	assert.Contains(t, out, "Skipped item attachment: Forwarded")

	raw, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", string(raw))
}

func TestRawCmd(t *testing.T) {
	h := newHarness(t)
	h.app.stdin = strings.NewReader(`<m:GetFolder xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages" ` +
		`xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types"><m:FolderShape><t:BaseShape>IdOnly</t:BaseShape></m:FolderShape>` +
		`<m:FolderIds><t:DistinguishedFolderId Id="inbox"/></m:FolderIds></m:GetFolder>`)
	h.fake.QueueOK(ewstest.Success("GetFolder",
		`<m:Folders><t:Folder><t:FolderId Id="inbox-id" ChangeKey="a"/></t:Folder></m:Folders>`))

	out, err := h.run(t, "raw")
	require.NoError(t, err)
	assert.Contains(t, out, "inbox-id")
	assert.Contains(t, xmlOf(h.lastOperation(t)), `<t:DistinguishedFolderId Id="inbox"/>`)
}

func TestAutodiscoverCmd(t *testing.T) {
	const asURL = "https://ad.duckburg.com/autodiscover/autodiscover.xml"
	h := newHarness(t)
	h.fake.QueueOK(ewstest.AutodiscoverAccount(
		ewstest.Protocol("EXCH", testEndpoint) + ewstest.Protocol("EXPR", "https://owa.duckburg.com/EWS/Exchange.asmx")))

	out, err := h.run(t, "autodiscover", "daisy@duckburg.com", "--url", asURL)
	require.NoError(t, err)
	assert.Contains(t, out, "Autodiscover: daisy@duckburg.com")
	assert.Contains(t, out, "Internal EWS URL: "+testEndpoint)
	assert.Contains(t, out, "External EWS URL: https://owa.duckburg.com/EWS/Exchange.asmx")

	req := h.fake.LastRequest()
	assert.Equal(t, asURL, req.URL)
	assert.Contains(t, string(req.Body), "<EMailAddress>daisy@duckburg.com</EMailAddress>")
}

func TestConnect_Autodiscovers(t *testing.T) {
	h := newHarness(t)
	delete(h.env, "EWS_ENDPOINT")
	h.fake.QueueOK(ewstest.AutodiscoverAccount(
		ewstest.Protocol("EXCH", "https://internal.duckburg.com/EWS/Exchange.asmx") +
			ewstest.Protocol("EXPR", "https://owa.duckburg.com/EWS/Exchange.asmx")))
	h.fake.QueueOK(ewstest.Success("CreateItem",
		`<m:Items><t:Task><t:ItemId Id="task-1" ChangeKey="ck-1"/></t:Task></m:Items>`))

	_, err := h.run(t, "create-task", "--subject", "Found you")
	require.NoError(t, err)

	requests := h.fake.Requests()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0].URL, "autodiscover")
	assert.Equal(t, "https://owa.duckburg.com/EWS/Exchange.asmx", requests[1].URL)
}

func TestConnect_Password(t *testing.T) {
	tests := []struct {
		name      string
		passwords fakePasswords
		wantErr   error
	}{
		{name: "prompted on a terminal", passwords: fakePasswords{terminal: true, password: "quack\n"}},
		{name: "no terminal", passwords: fakePasswords{}, wantErr: config.ErrNoTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			delete(h.env, "EWS_PASSWORD")
			h.app.passwords = tt.passwords
			h.fake.QueueOK(ewstest.Success("CreateItem",
				`<m:Items><t:Task><t:ItemId Id="task-1" ChangeKey="ck-1"/></t:Task></m:Items>`))

			out, err := h.run(t, "create-task", "--subject", "Secret")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, h.fake.Requests())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Password for dduck: ")

			creds, ok := h.fake.LastRequest().Credentials.(*auth.NTLM)
			require.True(t, ok)
			assert.Equal(t, `DUCKBURG\dduck`, creds.Account())
		})
	}
}

func TestConnect_InvalidProfile(t *testing.T) {
	h := newHarness(t)
	delete(h.env, "EWS_ENDPOINT")
	delete(h.env, "EWS_EMAIL")

	_, err := h.run(t, "find-unread")
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
	assert.Empty(t, h.fake.Requests())
}

func TestCalendarFindCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("FindItem",
		`<m:RootFolder TotalItemsInView="1" IncludesLastItemInRange="true"><t:Items>`+
			`<t:CalendarItem><t:ItemId Id="cal-1" ChangeKey="a"/><t:Subject>Board meeting</t:Subject>`+
			`<t:Start>2026-01-02T09:00:00Z</t:Start><t:End>2026-01-02T10:00:00Z</t:End><t:Location>Money bin</t:Location>`+
			`</t:CalendarItem></t:Items></m:RootFolder>`))

	out, err := h.run(t, "calendar", "find", "--start", "2026-01-01T00:00:00Z", "--days", "3", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Board meeting")
	assert.Contains(t, out, "Location: Money bin")
	assert.Contains(t, out, "1 of 1 appointments")

	op := xmlOf(h.lastOperation(t))
	assert.Contains(t, op, `<m:CalendarView MaxEntriesReturned="5" StartDate="2026-01-01T00:00:00Z" EndDate="2026-01-04T00:00:00Z"/>`)
	assert.Contains(t, op, `<t:DistinguishedFolderId Id="calendar"/>`)
}

func TestCalendarGetCmd(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueOK(ewstest.Success("GetItem",
		`<m:Items><t:CalendarItem><t:ItemId Id="cal-1" ChangeKey="a"/><t:Subject>Board meeting</t:Subject>`+
			`<t:Organizer><t:Mailbox><t:Name>Scrooge McDuck</t:Name><t:EmailAddress>scrooge@duckburg.com</t:EmailAddress></t:Mailbox></t:Organizer>`+
			`<t:RequiredAttendees><t:Attendee><t:Mailbox><t:Name>Donald Duck</t:Name><t:EmailAddress>donald@duckburg.com</t:EmailAddress></t:Mailbox>`+
			`<t:ResponseType>Accept</t:ResponseType></t:Attendee></t:RequiredAttendees>`+
			`</t:CalendarItem></m:Items>`))

	out, err := h.run(t, "calendar", "get", "cal-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Organizer: Scrooge McDuck <scrooge@duckburg.com>")
	assert.Contains(t, out, "Required: Donald Duck <donald@duckburg.com> (Accept)")
	assert.Contains(t, xmlOf(h.lastOperation(t)), `<t:BaseShape>AllProperties</t:BaseShape>`)
}
