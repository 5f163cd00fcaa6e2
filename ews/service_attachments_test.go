package ews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews/ewstest"
)

func TestService_AttachmentLifecycle(t *testing.T) {
	svc, fake := newTestService(t)
	fake.QueueOK(ewstest.Success("CreateAttachment",
		`<m:Attachments><t:FileAttachment><t:AttachmentId Id="att-1" RootItemId="msg-1" RootItemChangeKey="ck-2"/></t:FileAttachment></m:Attachments>`))
	fake.QueueOK(ewstest.Success("GetAttachment",
		`<m:Attachments><t:FileAttachment><t:AttachmentId Id="att-1"/><t:Name>hello.txt</t:Name><t:ContentType>text/plain</t:ContentType>`+
			`<t:Content>SGVsbG8sIHdvcmxk</t:Content></t:FileAttachment></m:Attachments>`))
	fake.QueueOK(ewstest.Success("DeleteAttachment", `<m:RootItemId RootItemId="msg-1" RootItemChangeKey="ck-3"/>`))

	ids, err := svc.CreateAttachment(context.Background(), NewItemID("msg-1", "ck-1"),
		NewFileAttachment("hello.txt", "text/plain", []byte("Hello, world")))
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, "att-1", ids[0].ID)
	assert.Equal(t, NewItemID("msg-1", "ck-2"), ids[0].RootItem())
	assert.Equal(t,
		`<m:CreateAttachment><m:ParentItemId Id="msg-1" ChangeKey="ck-1"/><m:Attachments><t:FileAttachment><t:Name>hello.txt</t:Name>`+
			`<t:ContentType>text/plain</t:ContentType><t:Content>SGVsbG8sIHdvcmxk</t:Content></t:FileAttachment></m:Attachments></m:CreateAttachment>`,
		xmlOf(lastOperation(t, fake)))

	a, err := svc.GetAttachment(context.Background(), ids[0], AttachmentShape{})
	require.NoError(t, err)
	assert.Equal(t, FileAttachment, a.Kind())
	assert.Equal(t, "hello.txt", a.Name())
	raw, err := a.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", string(raw))
	assert.Equal(t,
		`<m:GetAttachment><m:AttachmentIds><t:AttachmentId Id="att-1"/></m:AttachmentIds></m:GetAttachment>`,
		xmlOf(lastOperation(t, fake)))

	root, err := svc.DeleteAttachment(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, NewItemID("msg-1", "ck-3"), root)
}

func TestService_ItemAttachment(t *testing.T) {
	svc, fake := newTestService(t)
	fake.QueueOK(ewstest.Success("CreateAttachment",
		`<m:Attachments><t:ItemAttachment><t:AttachmentId Id="att-2" RootItemId="msg-1" RootItemChangeKey="ck-2"/></t:ItemAttachment></m:Attachments>`))

	task := NewTask()
	task.SetSubject("Embedded")
	_, err := svc.CreateAttachment(context.Background(), NewItemID("msg-1", "ck-1"), NewItemAttachment(task, "todo"))
	require.NoError(t, err)

	assert.Contains(t, xmlOf(lastOperation(t, fake)),
		`<t:ItemAttachment><t:Name>todo</t:Name><t:Task><t:Subject>Embedded</t:Subject></t:Task></t:ItemAttachment>`)
}

func TestService_AttachmentRequiresIDs(t *testing.T) {
	svc, fake := newTestService(t)

	_, err := svc.CreateAttachment(context.Background(), ItemID{}, NewFileAttachment("a", "text/plain", nil))
	assert.Equal(t, ErrorInvalidIdEmpty, CodeOf(err))

	_, err = svc.GetAttachment(context.Background(), AttachmentID{}, AttachmentShape{})
	assert.Equal(t, ErrorInvalidIdEmpty, CodeOf(err))

	assert.Empty(t, fake.Requests())
}
