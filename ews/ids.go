package ews

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// ItemID identifies an item. The ChangeKey names a specific version and
// advances on every server-side change.
type ItemID struct {
	ID        string
	ChangeKey string
}

// NewItemID returns an ItemID. changeKey may be empty.
func NewItemID(id, changeKey string) ItemID {
	return ItemID{ID: id, ChangeKey: changeKey}
}

// Valid reports whether the id is set.
func (i ItemID) Valid() bool {
	return i.ID != ""
}

// XML renders <t:ItemId Id="…" ChangeKey="…"/>.
func (i ItemID) XML() string {
	return xmldom.String(i.element("ItemId"))
}

func (i ItemID) element(local string) *etree.Element {
	e := xmldom.New("t", local)
	e.CreateAttr("Id", i.ID)
	if i.ChangeKey != "" {
		e.CreateAttr("ChangeKey", i.ChangeKey)
	}
	return e
}

func itemIDFromElement(e *etree.Element) ItemID {
	return ItemID{ID: xmldom.Attr(e, "Id"), ChangeKey: xmldom.Attr(e, "ChangeKey")}
}

// AttachmentID identifies an attachment. The root pair is only present in
// CreateAttachment responses and carries the parent item's new change key.
type AttachmentID struct {
	ID                string
	RootItemID        string
	RootItemChangeKey string
}

// Valid reports whether the id is set.
func (a AttachmentID) Valid() bool {
	return a.ID != ""
}

// RootItem returns the parent item id carried by a in CreateAttachment
// responses.
func (a AttachmentID) RootItem() ItemID {
	return ItemID{ID: a.RootItemID, ChangeKey: a.RootItemChangeKey}
}

// XML renders <t:AttachmentId Id="…" RootItemId="…" RootItemChangeKey="…"/>.
func (a AttachmentID) XML() string {
	return xmldom.String(a.element())
}

func (a AttachmentID) element() *etree.Element {
	e := xmldom.New("t", "AttachmentId")
	e.CreateAttr("Id", a.ID)
	if a.RootItemID != "" {
		e.CreateAttr("RootItemId", a.RootItemID)
	}
	if a.RootItemChangeKey != "" {
		e.CreateAttr("RootItemChangeKey", a.RootItemChangeKey)
	}
	return e
}

func attachmentIDFromElement(e *etree.Element) AttachmentID {
	return AttachmentID{
		ID:                xmldom.Attr(e, "Id"),
		RootItemID:        xmldom.Attr(e, "RootItemId"),
		RootItemChangeKey: xmldom.Attr(e, "RootItemChangeKey"),
	}
}

// StandardFolder is the well-known name of a distinguished folder.
type StandardFolder string

// Well-known folders.
const (
	FolderCalendar                     StandardFolder = "calendar"
	FolderContacts                     StandardFolder = "contacts"
	FolderDeletedItems                 StandardFolder = "deleteditems"
	FolderDrafts                       StandardFolder = "drafts"
	FolderInbox                        StandardFolder = "inbox"
	FolderJournal                      StandardFolder = "journal"
	FolderNotes                        StandardFolder = "notes"
	FolderOutbox                       StandardFolder = "outbox"
	FolderSentItems                    StandardFolder = "sentitems"
	FolderTasks                        StandardFolder = "tasks"
	FolderMsgFolderRoot                StandardFolder = "msgfolderroot"
	FolderPublicFoldersRoot            StandardFolder = "publicfoldersroot"
	FolderRoot                         StandardFolder = "root"
	FolderJunkEmail                    StandardFolder = "junkemail"
	FolderSearchFolders                StandardFolder = "searchfolders"
	FolderVoiceMail                    StandardFolder = "voicemail"
	FolderRecoverableItemsRoot         StandardFolder = "recoverableitemsroot"
	FolderRecoverableItemsDeletions    StandardFolder = "recoverableitemsdeletions"
	FolderRecoverableItemsVersions     StandardFolder = "recoverableitemsversions"
	FolderRecoverableItemsPurges       StandardFolder = "recoverableitemspurges"
	FolderArchiveRoot                  StandardFolder = "archiveroot"
	FolderArchiveMsgFolderRoot         StandardFolder = "archivemsgfolderroot"
	FolderArchiveDeletedItems          StandardFolder = "archivedeleteditems"
	FolderArchiveRecoverableItemsRoot  StandardFolder = "archiverecoverableitemsroot"
	FolderSyncIssues                   StandardFolder = "syncissues"
	FolderConflicts                    StandardFolder = "conflicts"
	FolderLocalFailures                StandardFolder = "localfailures"
	FolderServerFailures               StandardFolder = "serverfailures"
	FolderRecipientCache               StandardFolder = "recipientcache"
	FolderQuickContacts                StandardFolder = "quickcontacts"
	FolderConversationHistory          StandardFolder = "conversationhistory"
	FolderToDoSearch                   StandardFolder = "todosearch"
	FolderArchiveRecoverableItemsPurge StandardFolder = "archiverecoverableitemspurges"
)

// FolderID identifies a folder either explicitly by id or by a well-known
// name. A distinguished id may name another user's mailbox for delegate
// access.
type FolderID struct {
	ID            string
	ChangeKey     string
	Distinguished StandardFolder
	Mailbox       *Mailbox
}

// NewFolderID returns an explicit folder id. changeKey may be empty.
func NewFolderID(id, changeKey string) FolderID {
	return FolderID{ID: id, ChangeKey: changeKey}
}

// DistinguishedFolderID returns the id of a well-known folder.
func DistinguishedFolderID(name StandardFolder) FolderID {
	return FolderID{Distinguished: name}
}

// DelegateFolderID returns the id of a well-known folder in owner's mailbox.
func DelegateFolderID(name StandardFolder, owner Mailbox) FolderID {
	return FolderID{Distinguished: name, Mailbox: &owner}
}

// WithChangeKey returns a copy of f carrying changeKey.
func (f FolderID) WithChangeKey(changeKey string) FolderID {
	f.ChangeKey = changeKey
	return f
}

// IsDistinguished reports whether f names a well-known folder.
func (f FolderID) IsDistinguished() bool {
	return f.Distinguished != ""
}

// Valid reports whether f identifies a folder. Distinguished ids are always
// valid.
func (f FolderID) Valid() bool {
	return f.IsDistinguished() || f.ID != ""
}

// Name returns the id or the well-known name.
func (f FolderID) Name() string {
	if f.IsDistinguished() {
		return string(f.Distinguished)
	}
	return f.ID
}

// XML renders <t:FolderId/> or <t:DistinguishedFolderId/>.
func (f FolderID) XML() string {
	return xmldom.String(f.element())
}

func (f FolderID) element() *etree.Element {
	local := "FolderId"
	id := f.ID
	if f.IsDistinguished() {
		local = "DistinguishedFolderId"
		id = string(f.Distinguished)
	}
	e := xmldom.New("t", local)
	e.CreateAttr("Id", id)
	if f.ChangeKey != "" {
		e.CreateAttr("ChangeKey", f.ChangeKey)
	}
	if f.IsDistinguished() && f.Mailbox != nil {
		e.AddChild(f.Mailbox.element("Mailbox"))
	}
	return e
}

func folderIDFromElement(e *etree.Element) FolderID {
	if e == nil {
		return FolderID{}
	}
	if e.Tag == "DistinguishedFolderId" {
		f := FolderID{
			Distinguished: StandardFolder(xmldom.Attr(e, "Id")),
			ChangeKey:     xmldom.Attr(e, "ChangeKey"),
		}
		if mb := xmldom.Child(e, "Mailbox", xmldom.NSTypes); mb != nil {
			m := mailboxFromElement(mb)
			f.Mailbox = &m
		}
		return f
	}
	return FolderID{ID: xmldom.Attr(e, "Id"), ChangeKey: xmldom.Attr(e, "ChangeKey")}
}
