package ews

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// CreateItemOptions controls CreateItem. Messages default to SaveOnly and
// calendar items to SendToNone.
type CreateItemOptions struct {
	MessageDisposition     MessageDisposition
	SendMeetingInvitations SendMeetingInvitations
	// SavedItemFolder is where the item is stored. It may be a distinguished
	// folder of another mailbox, see DelegateFolderID.
	SavedItemFolder *FolderID
}

// UpdateItemOptions controls UpdateItem.
type UpdateItemOptions struct {
	ConflictResolution ConflictResolution
	// MessageDisposition is required when a message is updated and sent.
	MessageDisposition MessageDisposition
	// SendMeetingInvitationsOrCancellations is required for calendar items.
	SendMeetingInvitationsOrCancellations SendMeetingInvitationsOrCancellations
}

// DeleteItemOptions controls DeleteItem. DeleteType defaults to HardDelete.
type DeleteItemOptions struct {
	DeleteType               DeleteType
	AffectedTaskOccurrences  AffectedTaskOccurrences
	SendMeetingCancellations SendMeetingCancellations
}

// FindItemRequest describes a FindItem call. A nil View lets the server pick
// the page size, and an empty Restriction matches every item.
type FindItemRequest struct {
	Folders     []FolderID
	Shape       ItemShape
	Traversal   Traversal
	View        View
	Restriction Restriction
	SortOrder   SortOrder
}

// FindItemResult is one page of FindItem results.
type FindItemResult struct {
	Items                   []*Item
	TotalItemsInView        int
	IncludesLastItemInRange bool
	IndexedPagingOffset     int
}

// ItemIDs returns the ids of r.Items.
func (r *FindItemResult) ItemIDs() []ItemID {
	ids := make([]ItemID, 0, len(r.Items))
	for _, it := range r.Items {
		ids = append(ids, it.ItemID())
	}
	return ids
}

func emptyIDError(what string) error {
	return newExchangeError(ErrorInvalidIdEmpty, what+" id is empty")
}

func itemIDsElement(local string, ids []ItemID) (*etree.Element, error) {
	if len(ids) == 0 {
		return nil, emptyIDError("item")
	}
	e := xmldom.New("m", local)
	for _, id := range ids {
		if !id.Valid() {
			return nil, emptyIDError("item")
		}
		e.AddChild(id.element("ItemId"))
	}
	return e, nil
}

func folderIDsElement(prefix, local string, ids []FolderID) (*etree.Element, error) {
	if len(ids) == 0 {
		return nil, emptyIDError("folder")
	}
	e := xmldom.New(prefix, local)
	for _, id := range ids {
		if !id.Valid() {
			return nil, emptyIDError("folder")
		}
		e.AddChild(id.element())
	}
	return e, nil
}

// firstItem returns the first element inside the m:Items child of msg.
func firstItem(msg *etree.Element) *etree.Element {
	items := xmldom.Child(msg, "Items", xmldom.NSMessages)
	if items == nil {
		return nil
	}
	children := items.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// CreateItem saves item on the server and returns its new id. A message
// created with SendOnly is not saved and yields a zero ItemID.
func (s *Service) CreateItem(ctx context.Context, item AnyItem, opts CreateItemOptions) (ItemID, error) {
	ids, err := s.CreateItems(ctx, []AnyItem{item}, opts)
	if err != nil {
		return ItemID{}, err
	}
	return ids[0], nil
}

// CreateItems saves several items in one request. The ids are returned in
// request order.
func (s *Service) CreateItems(ctx context.Context, items []AnyItem, opts CreateItemOptions) ([]ItemID, error) {
	var ids []ItemID
	err := s.call(ctx, "CreateItem",
		func() (*etree.Element, error) {
			if len(items) == 0 {
				return nil, fmt.Errorf("create item: no items given")
			}
			e := xmldom.New("m", "CreateItem")
			hasMessage, hasCalendar := false, false
			list := xmldom.New("m", "Items")
			for _, it := range items {
				switch it.base().Kind() {
				case KindMessage:
					hasMessage = true
				case KindCalendarItem:
					hasCalendar = true
				}
				list.AddChild(it.base().element().Copy())
			}
			if hasMessage {
				d := opts.MessageDisposition
				if d == "" {
					d = SaveOnly
				}
				e.CreateAttr("MessageDisposition", string(d))
			}
			if hasCalendar {
				inv := opts.SendMeetingInvitations
				if inv == "" {
					inv = SendToNone
				}
				e.CreateAttr("SendMeetingInvitations", string(inv))
			}
			if f := opts.SavedItemFolder; f != nil {
				xmldom.Add(e, "m", "SavedItemFolderId").AddChild(f.element())
			}
			e.AddChild(list)
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				id := ItemID{}
				if it := firstItem(msg); it != nil {
					id = itemIDFromElement(xmldom.Child(it, "ItemId", xmldom.NSTypes))
				}
				ids = append(ids, id)
			}
			if len(ids) != len(items) {
				return &ProtocolError{Text: fmt.Sprintf("Expected %d created items, got %d", len(items), len(ids))}
			}
			return nil
		})
	return ids, err
}

// GetItem fetches one item.
func (s *Service) GetItem(ctx context.Context, id ItemID, shape ItemShape) (*Item, error) {
	items, err := s.GetItems(ctx, []ItemID{id}, shape)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// GetItems fetches several items. The result is in request order.
func (s *Service) GetItems(ctx context.Context, ids []ItemID, shape ItemShape) ([]*Item, error) {
	var items []*Item
	err := s.call(ctx, "GetItem",
		func() (*etree.Element, error) {
			list, err := itemIDsElement("ItemIds", ids)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "GetItem")
			e.AddChild(shape.element())
			e.AddChild(list)
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				it := firstItem(msg)
				if it == nil {
					return &ProtocolError{Text: "Expected an item in GetItemResponseMessage"}
				}
				items = append(items, itemFromElement(it))
			}
			if len(items) != len(ids) {
				return &ProtocolError{Text: fmt.Sprintf("Expected %d items, got %d", len(ids), len(items))}
			}
			return nil
		})
	return items, err
}

func kindMismatch(want, got ItemKind) error {
	return &ProtocolError{Text: fmt.Sprintf("Expected %s, got %s", want, got)}
}

// GetMessage fetches a message.
func (s *Service) GetMessage(ctx context.Context, id ItemID, shape ItemShape) (*Message, error) {
	it, err := s.GetItem(ctx, id, shape)
	if err != nil {
		return nil, err
	}
	m, ok := it.Message()
	if !ok {
		return nil, kindMismatch(KindMessage, it.Kind())
	}
	return m, nil
}

// GetTask fetches a task.
func (s *Service) GetTask(ctx context.Context, id ItemID, shape ItemShape) (*Task, error) {
	it, err := s.GetItem(ctx, id, shape)
	if err != nil {
		return nil, err
	}
	t, ok := it.Task()
	if !ok {
		return nil, kindMismatch(KindTask, it.Kind())
	}
	return t, nil
}

// GetContact fetches a contact.
func (s *Service) GetContact(ctx context.Context, id ItemID, shape ItemShape) (*Contact, error) {
	it, err := s.GetItem(ctx, id, shape)
	if err != nil {
		return nil, err
	}
	c, ok := it.Contact()
	if !ok {
		return nil, kindMismatch(KindContact, it.Kind())
	}
	return c, nil
}

// GetCalendarItem fetches a calendar item.
func (s *Service) GetCalendarItem(ctx context.Context, id ItemID, shape ItemShape) (*CalendarItem, error) {
	it, err := s.GetItem(ctx, id, shape)
	if err != nil {
		return nil, err
	}
	c, ok := it.CalendarItem()
	if !ok {
		return nil, kindMismatch(KindCalendarItem, it.Kind())
	}
	return c, nil
}

// UpdateItem applies updates with AutoResolve and returns the item's new
// id. The change key of the returned id has advanced.
func (s *Service) UpdateItem(ctx context.Context, id ItemID, updates ...Update) (ItemID, error) {
	return s.UpdateItemWithOptions(ctx, id, UpdateItemOptions{}, updates...)
}

// UpdateItemWithOptions is UpdateItem with explicit conflict resolution and
// dispositions.
func (s *Service) UpdateItemWithOptions(ctx context.Context, id ItemID, opts UpdateItemOptions, updates ...Update) (ItemID, error) {
	var newID ItemID
	err := s.call(ctx, "UpdateItem",
		func() (*etree.Element, error) {
			if !id.Valid() {
				return nil, emptyIDError("item")
			}
			if len(updates) == 0 {
				return nil, newExchangeError(ErrorIncorrectUpdatePropertyCount, "no updates given")
			}
			cr := opts.ConflictResolution
			if cr == "" {
				cr = AutoResolve
			}
			e := xmldom.New("m", "UpdateItem")
			e.CreateAttr("ConflictResolution", string(cr))
			if opts.MessageDisposition != "" {
				e.CreateAttr("MessageDisposition", string(opts.MessageDisposition))
			}
			if opts.SendMeetingInvitationsOrCancellations != "" {
				e.CreateAttr("SendMeetingInvitationsOrCancellations", string(opts.SendMeetingInvitationsOrCancellations))
			}
			change := xmldom.Add(xmldom.Add(e, "m", "ItemChanges"), "t", "ItemChange")
			change.AddChild(id.element("ItemId"))
			list := xmldom.Add(change, "t", "Updates")
			for _, u := range updates {
				if err := u.validate(); err != nil {
					return nil, err
				}
				list.AddChild(u.element("Item"))
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			if it := firstItem(msg); it != nil {
				newID = itemIDFromElement(xmldom.Child(it, "ItemId", xmldom.NSTypes))
			}
			return nil
		})
	return newID, err
}

// DeleteItem deletes the item with id.
func (s *Service) DeleteItem(ctx context.Context, id ItemID, opts DeleteItemOptions) error {
	return s.DeleteItems(ctx, []ItemID{id}, opts)
}

// DeleteItems deletes several items in one request.
func (s *Service) DeleteItems(ctx context.Context, ids []ItemID, opts DeleteItemOptions) error {
	return s.call(ctx, "DeleteItem",
		func() (*etree.Element, error) {
			list, err := itemIDsElement("ItemIds", ids)
			if err != nil {
				return nil, err
			}
			dt := opts.DeleteType
			if dt == "" {
				dt = HardDelete
			}
			e := xmldom.New("m", "DeleteItem")
			e.CreateAttr("DeleteType", string(dt))
			if opts.SendMeetingCancellations != "" {
				e.CreateAttr("SendMeetingCancellations", string(opts.SendMeetingCancellations))
			}
			if opts.AffectedTaskOccurrences != "" {
				e.CreateAttr("AffectedTaskOccurrences", string(opts.AffectedTaskOccurrences))
			}
			e.AddChild(list)
			return e, nil
		},
		func(resp *etree.Element) error {
			_, err := checkAll(resp)
			return err
		})
}

// DeleteTask hard-deletes all occurrences of t and empties t.
func (s *Service) DeleteTask(ctx context.Context, t *Task) error {
	err := s.DeleteItem(ctx, t.ItemID(), DeleteItemOptions{
		DeleteType:              HardDelete,
		AffectedTaskOccurrences: AllOccurrences,
	})
	if err == nil {
		t.reset()
	}
	return err
}

// DeleteMessage moves m to Deleted Items and empties m.
func (s *Service) DeleteMessage(ctx context.Context, m *Message) error {
	err := s.DeleteItem(ctx, m.ItemID(), DeleteItemOptions{DeleteType: MoveToDeletedItems})
	if err == nil {
		m.reset()
	}
	return err
}

// DeleteContact hard-deletes c and empties it.
func (s *Service) DeleteContact(ctx context.Context, c *Contact) error {
	err := s.DeleteItem(ctx, c.ItemID(), DeleteItemOptions{DeleteType: HardDelete})
	if err == nil {
		c.reset()
	}
	return err
}

// DeleteCalendarItem hard-deletes c, sending cancellations as requested,
// and empties c.
func (s *Service) DeleteCalendarItem(ctx context.Context, c *CalendarItem, cancellations SendMeetingCancellations) error {
	if cancellations == "" {
		cancellations = CancellationsToNone
	}
	err := s.DeleteItem(ctx, c.ItemID(), DeleteItemOptions{
		DeleteType:               HardDelete,
		SendMeetingCancellations: cancellations,
	})
	if err == nil {
		c.reset()
	}
	return err
}

// FindItem searches folders and returns one page of results. With an
// IdOnly shape the items carry nothing but their ids.
func (s *Service) FindItem(ctx context.Context, req FindItemRequest) (*FindItemResult, error) {
	result := &FindItemResult{}
	err := s.call(ctx, "FindItem",
		func() (*etree.Element, error) {
			parents, err := folderIDsElement("m", "ParentFolderIds", req.Folders)
			if err != nil {
				return nil, err
			}
			traversal := req.Traversal
			if traversal == "" {
				traversal = Shallow
			}
			e := xmldom.New("m", "FindItem")
			e.CreateAttr("Traversal", string(traversal))
			e.AddChild(req.Shape.element())
			if req.View != nil {
				v, err := req.View.viewElement("IndexedPageItemView")
				if err != nil {
					return nil, err
				}
				e.AddChild(v)
			}
			r, err := req.Restriction.element()
			if err != nil {
				return nil, err
			}
			if r != nil {
				e.AddChild(r)
			}
			if so := req.SortOrder.element(); so != nil {
				e.AddChild(so)
			}
			e.AddChild(parents)
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				root := xmldom.Child(msg, "RootFolder", xmldom.NSMessages)
				if root == nil {
					return &ProtocolError{Text: "Expected m:RootFolder in FindItemResponseMessage"}
				}
				result.TotalItemsInView += attrInt(root, "TotalItemsInView")
				result.IncludesLastItemInRange = xmldom.Attr(root, "IncludesLastItemInRange") == "true"
				result.IndexedPagingOffset = attrInt(root, "IndexedPagingOffset")
				if items := xmldom.Child(root, "Items", xmldom.NSTypes); items != nil {
					for _, it := range items.ChildElements() {
						result.Items = append(result.Items, itemFromElement(it))
					}
				}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func attrInt(e *etree.Element, key string) int {
	n, _ := strconv.Atoi(xmldom.Attr(e, key))
	return n
}

// SendItem sends saved messages. A non-nil saveCopyTo keeps a copy there;
// a nil one sends without saving a copy.
func (s *Service) SendItem(ctx context.Context, ids []ItemID, saveCopyTo *FolderID) error {
	return s.call(ctx, "SendItem",
		func() (*etree.Element, error) {
			list, err := itemIDsElement("ItemIds", ids)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "SendItem")
			e.CreateAttr("SaveItemToFolder", strconv.FormatBool(saveCopyTo != nil))
			e.AddChild(list)
			if saveCopyTo != nil {
				xmldom.Add(e, "m", "SavedItemFolderId").AddChild(saveCopyTo.element())
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			_, err := checkAll(resp)
			return err
		})
}

// MoveItem moves items to folder and returns their new ids. Moves across
// mailboxes yield zero ids.
func (s *Service) MoveItem(ctx context.Context, ids []ItemID, to FolderID) ([]ItemID, error) {
	return s.transferItems(ctx, "MoveItem", ids, to)
}

// CopyItem copies items to folder and returns the ids of the copies.
func (s *Service) CopyItem(ctx context.Context, ids []ItemID, to FolderID) ([]ItemID, error) {
	return s.transferItems(ctx, "CopyItem", ids, to)
}

func (s *Service) transferItems(ctx context.Context, op string, ids []ItemID, to FolderID) ([]ItemID, error) {
	var out []ItemID
	err := s.call(ctx, op,
		func() (*etree.Element, error) {
			if !to.Valid() {
				return nil, emptyIDError("folder")
			}
			list, err := itemIDsElement("ItemIds", ids)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", op)
			xmldom.Add(e, "m", "ToFolderId").AddChild(to.element())
			e.AddChild(list)
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				id := ItemID{}
				if it := firstItem(msg); it != nil {
					id = itemIDFromElement(xmldom.Child(it, "ItemId", xmldom.NSTypes))
				}
				out = append(out, id)
			}
			return nil
		})
	return out, err
}
