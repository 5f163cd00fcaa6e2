package ews

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// MaxSyncChanges is the largest batch SyncFolderItems may request.
const MaxSyncChanges = 512

// ChangeType is the kind of a synchronization change.
type ChangeType string

// Change types.
const (
	ChangeCreate         ChangeType = "Create"
	ChangeUpdate         ChangeType = "Update"
	ChangeDelete         ChangeType = "Delete"
	ChangeReadFlagChange ChangeType = "ReadFlagChange"
)

// ItemChange is one entry of a SyncFolderItems batch. Item is nil for
// deletes and read flag changes.
type ItemChange struct {
	Type   ChangeType
	Item   *Item
	ItemID ItemID
	IsRead bool
}

// FolderChange is one entry of a SyncFolderHierarchy batch. Folder is nil
// for deletes.
type FolderChange struct {
	Type     ChangeType
	Folder   *Folder
	FolderID FolderID
}

// SyncItemsOptions controls SyncFolderItems.
type SyncItemsOptions struct {
	Shape ItemShape
	// Ignore lists items whose changes are not reported.
	Ignore []ItemID
	// MaxChanges is the batch size, 1 to 512. Zero means 512.
	MaxChanges int
}

// SyncItemsResult is one SyncFolderItems batch. Pass SyncState to the next
// call; the folder is in sync once IncludesLastItemInRange is set.
type SyncItemsResult struct {
	SyncState               string
	IncludesLastItemInRange bool
	Changes                 []ItemChange
}

// SyncHierarchyResult is one SyncFolderHierarchy batch.
type SyncHierarchyResult struct {
	SyncState                 string
	IncludesLastFolderInRange bool
	Changes                   []FolderChange
}

// SyncFolderItems returns the item changes in folder since syncState. An
// empty syncState starts from scratch, which is also how a server that
// answers ErrorInvalidSyncStateData is recovered.
func (s *Service) SyncFolderItems(ctx context.Context, folder FolderID, syncState string, opts SyncItemsOptions) (*SyncItemsResult, error) {
	result := &SyncItemsResult{}
	err := s.call(ctx, "SyncFolderItems",
		func() (*etree.Element, error) {
			if !folder.Valid() {
				return nil, emptyIDError("folder")
			}
			maxChanges := opts.MaxChanges
			if maxChanges == 0 {
				maxChanges = MaxSyncChanges
			}
			if maxChanges < 1 || maxChanges > MaxSyncChanges {
				return nil, newExchangeError(ErrorInvalidArgument,
					fmt.Sprintf("MaxChangesReturned must be between 1 and %d, got %d", MaxSyncChanges, maxChanges))
			}
			e := xmldom.New("m", "SyncFolderItems")
			shape := opts.Shape
			if shape.BaseShape == "" {
				shape.BaseShape = IDOnly
			}
			e.AddChild(shape.element())
			xmldom.Add(e, "m", "SyncFolderId").AddChild(folder.element())
			if syncState != "" {
				xmldom.AddText(e, "m", "SyncState", syncState)
			}
			if len(opts.Ignore) > 0 {
				ignore := xmldom.Add(e, "m", "Ignore")
				for _, id := range opts.Ignore {
					ignore.AddChild(id.element("ItemId"))
				}
			}
			xmldom.AddText(e, "m", "MaxChangesReturned", strconv.Itoa(maxChanges))
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			result.SyncState = xmldom.ChildText(msg, "SyncState", xmldom.NSMessages)
			result.IncludesLastItemInRange = xmldom.ChildText(msg, "IncludesLastItemInRange", xmldom.NSMessages) == "true"
			changes := xmldom.Child(msg, "Changes", xmldom.NSMessages)
			if changes == nil {
				return nil
			}
			for _, ch := range changes.ChildElements() {
				c, err := itemChangeFromElement(ch)
				if err != nil {
					return err
				}
				result.Changes = append(result.Changes, c)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func itemChangeFromElement(e *etree.Element) (ItemChange, error) {
	c := ItemChange{Type: ChangeType(e.Tag)}
	switch c.Type {
	case ChangeCreate, ChangeUpdate:
		children := e.ChildElements()
		if len(children) == 0 {
			return c, &ProtocolError{Text: fmt.Sprintf("Expected an item in %s change", e.Tag)}
		}
		c.Item = itemFromElement(children[0])
		c.ItemID = c.Item.ItemID()
	case ChangeDelete:
		c.ItemID = itemIDFromElement(xmldom.Child(e, "ItemId", xmldom.NSTypes))
	case ChangeReadFlagChange:
		c.ItemID = itemIDFromElement(xmldom.Child(e, "ItemId", xmldom.NSTypes))
		c.IsRead = xmldom.ChildText(e, "IsRead", xmldom.NSTypes) == "true"
	default:
		return c, &ProtocolError{Text: "Unexpected sync change " + e.Tag}
	}
	return c, nil
}

// SyncFolderHierarchy returns the folder changes below folder since
// syncState. A nil folder syncs the whole mailbox.
func (s *Service) SyncFolderHierarchy(ctx context.Context, folder *FolderID, syncState string, shape FolderShape) (*SyncHierarchyResult, error) {
	result := &SyncHierarchyResult{}
	err := s.call(ctx, "SyncFolderHierarchy",
		func() (*etree.Element, error) {
			e := xmldom.New("m", "SyncFolderHierarchy")
			e.AddChild(shape.element())
			if folder != nil {
				if !folder.Valid() {
					return nil, emptyIDError("folder")
				}
				xmldom.Add(e, "m", "SyncFolderId").AddChild(folder.element())
			}
			if syncState != "" {
				xmldom.AddText(e, "m", "SyncState", syncState)
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			result.SyncState = xmldom.ChildText(msg, "SyncState", xmldom.NSMessages)
			result.IncludesLastFolderInRange = xmldom.ChildText(msg, "IncludesLastFolderInRange", xmldom.NSMessages) == "true"
			changes := xmldom.Child(msg, "Changes", xmldom.NSMessages)
			if changes == nil {
				return nil
			}
			for _, ch := range changes.ChildElements() {
				c := FolderChange{Type: ChangeType(ch.Tag)}
				switch c.Type {
				case ChangeCreate, ChangeUpdate:
					children := ch.ChildElements()
					if len(children) == 0 {
						return &ProtocolError{Text: fmt.Sprintf("Expected a folder in %s change", ch.Tag)}
					}
					c.Folder = folderFromElement(children[0])
					c.FolderID = c.Folder.FolderID()
				case ChangeDelete:
					c.FolderID = folderIDFromElement(xmldom.Child(ch, "FolderId", xmldom.NSTypes))
				default:
					return &ProtocolError{Text: "Unexpected sync change " + ch.Tag}
				}
				result.Changes = append(result.Changes, c)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}
