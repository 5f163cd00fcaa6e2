package ews

import (
	"github.com/beevik/etree"
)

// Folder is a mailbox folder. Like items, folders keep their properties in
// a Properties bag.
type Folder struct {
	props *Properties
}

// NewFolder returns a generic folder with a display name.
func NewFolder(displayName string) *Folder {
	f := &Folder{props: newProperties("Folder", folderSequence)}
	if displayName != "" {
		f.props.SetOrUpdate("DisplayName", displayName)
	}
	return f
}

// folderFromElement copies a Folder, CalendarFolder, ContactsFolder,
// SearchFolder or TasksFolder element.
func folderFromElement(e *etree.Element) *Folder {
	return &Folder{props: propertiesFrom(e, folderSequence)}
}

func (f *Folder) bag() *Properties {
	if f.props == nil {
		f.props = newProperties("Folder", folderSequence)
	}
	return f.props
}

// Properties returns the underlying property bag.
func (f *Folder) Properties() *Properties {
	return f.bag()
}

// Clone returns an independent deep copy.
func (f *Folder) Clone() *Folder {
	return &Folder{props: f.bag().Clone()}
}

// XML serializes the folder.
func (f *Folder) XML() string {
	return f.bag().XML()
}

func (f *Folder) element() *etree.Element {
	return f.bag().root
}

// Kind returns the element name, for example "CalendarFolder".
func (f *Folder) Kind() string {
	return f.bag().root.Tag
}

// FolderID returns the id assigned by the server.
func (f *Folder) FolderID() FolderID {
	return folderIDFromElement(f.bag().element("FolderId"))
}

// ParentFolderID returns the id of the parent folder.
func (f *Folder) ParentFolderID() FolderID {
	return folderIDFromElement(f.bag().element("ParentFolderId"))
}

// DisplayName returns the display name.
func (f *Folder) DisplayName() string {
	return f.bag().Get("DisplayName")
}

// SetDisplayName sets the display name.
func (f *Folder) SetDisplayName(name string) {
	f.bag().SetOrUpdate("DisplayName", name)
}

// FolderClass returns the container class, for example "IPF.Note".
func (f *Folder) FolderClass() string {
	return f.bag().Get("FolderClass")
}

// SetFolderClass sets the container class.
func (f *Folder) SetFolderClass(class string) {
	f.bag().SetOrUpdate("FolderClass", class)
}

// TotalCount returns the number of items in the folder.
func (f *Folder) TotalCount() int {
	return f.bag().int("TotalCount")
}

// ChildFolderCount returns the number of direct subfolders.
func (f *Folder) ChildFolderCount() int {
	return f.bag().int("ChildFolderCount")
}

// UnreadCount returns the number of unread items.
func (f *Folder) UnreadCount() int {
	return f.bag().int("UnreadCount")
}

// EffectiveRights returns the caller's rights on the folder.
func (f *Folder) EffectiveRights() EffectiveRights {
	return effectiveRightsFromElement(f.bag().element("EffectiveRights"))
}
