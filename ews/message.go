package ews

// Message is an email message.
type Message struct {
	Item
}

// NewMessage returns an empty message.
func NewMessage() *Message {
	return &Message{Item: *newItem(KindMessage)}
}

// Clone returns an independent deep copy.
func (m *Message) Clone() *Message {
	return &Message{Item: *m.Item.Clone()}
}

// ToRecipients returns the To recipients.
func (m *Message) ToRecipients() []Mailbox {
	return m.bag().mailboxes("ToRecipients")
}

// SetToRecipients replaces the To recipients.
func (m *Message) SetToRecipients(recipients []Mailbox) {
	m.bag().setMailboxes("ToRecipients", recipients)
}

// CcRecipients returns the Cc recipients.
func (m *Message) CcRecipients() []Mailbox {
	return m.bag().mailboxes("CcRecipients")
}

// SetCcRecipients replaces the Cc recipients.
func (m *Message) SetCcRecipients(recipients []Mailbox) {
	m.bag().setMailboxes("CcRecipients", recipients)
}

// BccRecipients returns the Bcc recipients.
func (m *Message) BccRecipients() []Mailbox {
	return m.bag().mailboxes("BccRecipients")
}

// SetBccRecipients replaces the Bcc recipients.
func (m *Message) SetBccRecipients(recipients []Mailbox) {
	m.bag().setMailboxes("BccRecipients", recipients)
}

// ReplyTo returns the addresses replies should go to.
func (m *Message) ReplyTo() []Mailbox {
	return m.bag().mailboxes("ReplyTo")
}

// SetReplyTo sets the addresses replies should go to.
func (m *Message) SetReplyTo(recipients []Mailbox) {
	m.bag().setMailboxes("ReplyTo", recipients)
}

// From returns the From address.
func (m *Message) From() Mailbox {
	return m.bag().mailbox("From")
}

// SetFrom sets the From address.
func (m *Message) SetFrom(mb Mailbox) {
	m.bag().setMailbox("From", mb)
}

// Sender returns the Sender address.
func (m *Message) Sender() Mailbox {
	return m.bag().mailbox("Sender")
}

// SetSender sets the Sender address.
func (m *Message) SetSender(mb Mailbox) {
	m.bag().setMailbox("Sender", mb)
}

// IsRead reports whether the message was read.
func (m *Message) IsRead() bool {
	return m.bag().bool("IsRead")
}

// SetIsRead marks the message read or unread.
func (m *Message) SetIsRead(read bool) {
	m.bag().setBool("IsRead", read)
}

// IsReadReceiptRequested reports whether the sender wants a read receipt.
func (m *Message) IsReadReceiptRequested() bool {
	return m.bag().bool("IsReadReceiptRequested")
}

// SetIsReadReceiptRequested requests a read receipt.
func (m *Message) SetIsReadReceiptRequested(v bool) {
	m.bag().setBool("IsReadReceiptRequested", v)
}

// IsDeliveryReceiptRequested reports whether the sender wants a delivery
// receipt.
func (m *Message) IsDeliveryReceiptRequested() bool {
	return m.bag().bool("IsDeliveryReceiptRequested")
}

// SetIsDeliveryReceiptRequested requests a delivery receipt.
func (m *Message) SetIsDeliveryReceiptRequested(v bool) {
	m.bag().setBool("IsDeliveryReceiptRequested", v)
}

// IsResponseRequested reports whether a response is requested.
func (m *Message) IsResponseRequested() bool {
	return m.bag().bool("IsResponseRequested")
}

// ConversationTopic returns the conversation topic.
func (m *Message) ConversationTopic() string {
	return m.bag().Get("ConversationTopic")
}

// InternetMessageID returns the Message-ID header.
func (m *Message) InternetMessageID() string {
	return m.bag().Get("InternetMessageId")
}

// SetInternetMessageID sets the Message-ID header.
func (m *Message) SetInternetMessageID(id string) {
	m.bag().SetOrUpdate("InternetMessageId", id)
}

// References returns the References header.
func (m *Message) References() string {
	return m.bag().Get("References")
}

// SetReferences sets the References header.
func (m *Message) SetReferences(refs string) {
	m.bag().SetOrUpdate("References", refs)
}
