package ews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews/ewstest"
)

func TestService_PullNotifications(t *testing.T) {
	svc, fake := newTestService(t)
	fake.QueueOK(ewstest.Success("Subscribe", `<m:SubscriptionId>sub-1</m:SubscriptionId><m:Watermark>w1</m:Watermark>`))
	fake.QueueOK(ewstest.Success("GetEvents",
		`<m:Notification><t:SubscriptionId>sub-1</t:SubscriptionId><t:PreviousWatermark>w1</t:PreviousWatermark><t:MoreEvents>false</t:MoreEvents>`+
			`<t:CreatedEvent><t:Watermark>w2</t:Watermark><t:TimeStamp>2026-01-01T10:00:00Z</t:TimeStamp>`+
			`<t:ItemId Id="item-1" ChangeKey="a"/><t:ParentFolderId Id="inbox-id" ChangeKey="b"/></t:CreatedEvent>`+
			`<t:NewMailEvent><t:Watermark>w3</t:Watermark><t:TimeStamp>2026-01-01T10:00:01Z</t:TimeStamp>`+
			`<t:ItemId Id="item-1" ChangeKey="a"/><t:ParentFolderId Id="inbox-id" ChangeKey="b"/></t:NewMailEvent>`+
			`</m:Notification>`))
	fake.QueueOK(ewstest.Response("Unsubscribe", ewstest.ResponseMessage("Unsubscribe", "Success", "NoError", "")))

	sub, err := svc.Subscribe(context.Background(),
		[]FolderID{DistinguishedFolderID(FolderInbox)},
		[]EventType{CreatedEvent, NewMailEvent}, 10)
	require.NoError(t, err)
	assert.Equal(t, &Subscription{ID: "sub-1", Watermark: "w1"}, sub)
	assert.Equal(t,
		`<m:Subscribe><m:PullSubscriptionRequest><t:FolderIds><t:DistinguishedFolderId Id="inbox"/></t:FolderIds>`+
			`<t:EventTypes><t:EventType>CreatedEvent</t:EventType><t:EventType>NewMailEvent</t:EventType></t:EventTypes>`+
			`<t:Timeout>10</t:Timeout></m:PullSubscriptionRequest></m:Subscribe>`,
		xmlOf(lastOperation(t, fake)))

	n, err := svc.GetEvents(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "w1", n.PreviousWatermark)
	assert.False(t, n.MoreEvents)
	require.Len(t, n.Events, 2)
	assert.Equal(t, CreatedEvent, n.Events[0].Type)
	assert.Equal(t, NewItemID("item-1", "a"), n.Events[0].ItemID)
	assert.Equal(t, "inbox-id", n.Events[0].ParentFolderID.ID)
	assert.Equal(t, NewMailEvent, n.Events[1].Type)
	assert.Equal(t, "w3", sub.Watermark)
	assert.Equal(t,
		`<m:GetEvents><m:SubscriptionId>sub-1</m:SubscriptionId><m:Watermark>w1</m:Watermark></m:GetEvents>`,
		xmlOf(lastOperation(t, fake)))

	require.NoError(t, svc.Unsubscribe(context.Background(), sub.ID))
	assert.Equal(t,
		`<m:Unsubscribe><m:SubscriptionId>sub-1</m:SubscriptionId></m:Unsubscribe>`,
		xmlOf(lastOperation(t, fake)))
}

func TestService_SubscribeFromWatermark(t *testing.T) {
	svc, fake := newTestService(t)
	fake.QueueOK(ewstest.Success("Subscribe", `<m:SubscriptionId>sub-2</m:SubscriptionId><m:Watermark>w9</m:Watermark>`))

	_, err := svc.SubscribeFromWatermark(context.Background(),
		[]FolderID{DistinguishedFolderID(FolderInbox)}, []EventType{ModifiedEvent}, 5, "w8")
	require.NoError(t, err)
	assert.Contains(t, xmlOf(lastOperation(t, fake)), `</t:EventTypes><t:Watermark>w8</t:Watermark><t:Timeout>5</t:Timeout>`)
}

func TestService_SubscribeValidation(t *testing.T) {
	inbox := []FolderID{DistinguishedFolderID(FolderInbox)}
	tests := []struct {
		name    string
		folders []FolderID
		events  []EventType
		timeout int
		code    ResponseCode
	}{
		{name: "timeout too short", folders: inbox, events: []EventType{NewMailEvent}, timeout: 0, code: ErrorInvalidSubscriptionRequest},
		{name: "timeout too long", folders: inbox, events: []EventType{NewMailEvent}, timeout: MaxSubscriptionTimeout + 1, code: ErrorInvalidSubscriptionRequest},
		{name: "no events", folders: inbox, timeout: 10, code: ErrorInvalidSubscriptionRequest},
		{name: "no folders", events: []EventType{NewMailEvent}, timeout: 10, code: ErrorInvalidIdEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake := newTestService(t)
			_, err := svc.Subscribe(context.Background(), tt.folders, tt.events, tt.timeout)
			assert.Equal(t, tt.code, CodeOf(err))
			assert.Empty(t, fake.Requests())
		})
	}
}

func TestService_GetEventsExpired(t *testing.T) {
	svc, fake := newTestService(t)
	fake.QueueOK(ewstest.Failure("GetEvents", "ErrorSubscriptionNotFound", "The specified subscription was not found."))

	sub := &Subscription{ID: "gone", Watermark: "w1"}
	_, err := svc.GetEvents(context.Background(), sub)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "w1", sub.Watermark)

	_, err = svc.GetEvents(context.Background(), &Subscription{})
	assert.Equal(t, ErrorInvalidPullSubscriptionId, CodeOf(err))
}
