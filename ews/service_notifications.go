package ews

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Pull subscription timeout bounds, in minutes.
const (
	MinSubscriptionTimeout = 1
	MaxSubscriptionTimeout = 1440
)

// Subscription is a pull subscription. GetEvents advances Watermark.
type Subscription struct {
	ID        string
	Watermark string
}

// Event is one notification of a pull subscription. Which ids are set
// depends on Type and on whether an item or a folder changed.
type Event struct {
	Type              EventType
	Watermark         string
	TimeStamp         DateTime
	ItemID            ItemID
	FolderID          FolderID
	ParentFolderID    FolderID
	OldItemID         ItemID
	OldFolderID       FolderID
	OldParentFolderID FolderID
	UnreadCount       int
}

// Notification is the result of GetEvents.
type Notification struct {
	SubscriptionID    string
	PreviousWatermark string
	MoreEvents        bool
	Events            []Event
}

// Subscribe creates a pull subscription on folders for events. timeout is
// the number of minutes the server keeps the subscription alive without a
// GetEvents call.
func (s *Service) Subscribe(ctx context.Context, folders []FolderID, events []EventType, timeout int) (*Subscription, error) {
	return s.subscribe(ctx, folders, events, timeout, "")
}

// SubscribeFromWatermark recreates a lost subscription so that no events
// after watermark are missed.
func (s *Service) SubscribeFromWatermark(ctx context.Context, folders []FolderID, events []EventType, timeout int, watermark string) (*Subscription, error) {
	return s.subscribe(ctx, folders, events, timeout, watermark)
}

func (s *Service) subscribe(ctx context.Context, folders []FolderID, events []EventType, timeout int, watermark string) (*Subscription, error) {
	sub := &Subscription{}
	err := s.call(ctx, "Subscribe",
		func() (*etree.Element, error) {
			if timeout < MinSubscriptionTimeout || timeout > MaxSubscriptionTimeout {
				return nil, newExchangeError(ErrorInvalidSubscriptionRequest,
					fmt.Sprintf("subscription timeout must be between %d and %d minutes, got %d",
						MinSubscriptionTimeout, MaxSubscriptionTimeout, timeout))
			}
			if len(events) == 0 {
				return nil, newExchangeError(ErrorInvalidSubscriptionRequest, "no event types given")
			}
			ids, err := folderIDsElement("t", "FolderIds", folders)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "Subscribe")
			req := xmldom.Add(e, "m", "PullSubscriptionRequest")
			req.AddChild(ids)
			types := xmldom.Add(req, "t", "EventTypes")
			for _, ev := range events {
				xmldom.AddText(types, "t", "EventType", string(ev))
			}
			if watermark != "" {
				xmldom.AddText(req, "t", "Watermark", watermark)
			}
			xmldom.AddText(req, "t", "Timeout", strconv.Itoa(timeout))
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			sub.ID = xmldom.ChildText(msg, "SubscriptionId", xmldom.NSMessages)
			sub.Watermark = xmldom.ChildText(msg, "Watermark", xmldom.NSMessages)
			if sub.ID == "" {
				return &ProtocolError{Text: "Expected m:SubscriptionId in SubscribeResponseMessage"}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// GetEvents fetches the events since sub.Watermark and moves the watermark
// to the last event received. Call it again while MoreEvents is set.
func (s *Service) GetEvents(ctx context.Context, sub *Subscription) (*Notification, error) {
	n := &Notification{}
	err := s.call(ctx, "GetEvents",
		func() (*etree.Element, error) {
			if sub == nil || sub.ID == "" {
				return nil, newExchangeError(ErrorInvalidPullSubscriptionId, "subscription id is empty")
			}
			e := xmldom.New("m", "GetEvents")
			xmldom.AddText(e, "m", "SubscriptionId", sub.ID)
			xmldom.AddText(e, "m", "Watermark", sub.Watermark)
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			note := xmldom.Child(msg, "Notification", xmldom.NSMessages)
			if note == nil {
				return &ProtocolError{Text: "Expected m:Notification in GetEventsResponseMessage"}
			}
			n.SubscriptionID = xmldom.ChildText(note, "SubscriptionId", xmldom.NSTypes)
			n.PreviousWatermark = xmldom.ChildText(note, "PreviousWatermark", xmldom.NSTypes)
			n.MoreEvents = xmldom.ChildText(note, "MoreEvents", xmldom.NSTypes) == "true"
			for _, ch := range note.ChildElements() {
				if ev, ok := eventFromElement(ch); ok {
					n.Events = append(n.Events, ev)
				}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	for _, ev := range n.Events {
		if ev.Watermark != "" {
			sub.Watermark = ev.Watermark
		}
	}
	return n, nil
}

var eventTypes = map[string]EventType{
	"CopiedEvent":          CopiedEvent,
	"CreatedEvent":         CreatedEvent,
	"DeletedEvent":         DeletedEvent,
	"ModifiedEvent":        ModifiedEvent,
	"MovedEvent":           MovedEvent,
	"NewMailEvent":         NewMailEvent,
	"FreeBusyChangedEvent": FreeBusyChangedEvent,
	"StatusEvent":          StatusEvent,
}

func eventFromElement(e *etree.Element) (Event, bool) {
	typ, ok := eventTypes[e.Tag]
	if !ok {
		return Event{}, false
	}
	ev := Event{
		Type:      typ,
		Watermark: xmldom.ChildText(e, "Watermark", xmldom.NSTypes),
		TimeStamp: DateTime(xmldom.ChildText(e, "TimeStamp", xmldom.NSTypes)),
	}
	if id := xmldom.Child(e, "ItemId", xmldom.NSTypes); id != nil {
		ev.ItemID = itemIDFromElement(id)
	}
	ev.FolderID = folderIDFromElement(xmldom.Child(e, "FolderId", xmldom.NSTypes))
	ev.ParentFolderID = folderIDFromElement(xmldom.Child(e, "ParentFolderId", xmldom.NSTypes))
	if id := xmldom.Child(e, "OldItemId", xmldom.NSTypes); id != nil {
		ev.OldItemID = itemIDFromElement(id)
	}
	ev.OldFolderID = folderIDFromElement(xmldom.Child(e, "OldFolderId", xmldom.NSTypes))
	ev.OldParentFolderID = folderIDFromElement(xmldom.Child(e, "OldParentFolderId", xmldom.NSTypes))
	ev.UnreadCount, _ = strconv.Atoi(xmldom.ChildText(e, "UnreadCount", xmldom.NSTypes))
	return ev, true
}

// Unsubscribe ends a pull subscription.
func (s *Service) Unsubscribe(ctx context.Context, id string) error {
	return s.call(ctx, "Unsubscribe",
		func() (*etree.Element, error) {
			if id == "" {
				return nil, newExchangeError(ErrorInvalidPullSubscriptionId, "subscription id is empty")
			}
			e := xmldom.New("m", "Unsubscribe")
			xmldom.AddText(e, "m", "SubscriptionId", id)
			return e, nil
		},
		func(resp *etree.Element) error {
			_, err := singleMessage(resp)
			return err
		})
}
