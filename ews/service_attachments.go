package ews

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// AttachmentShape selects the extra content returned by GetAttachment.
type AttachmentShape struct {
	IncludeMimeContent bool
	BodyType           BodyType
}

func (s AttachmentShape) element() *etree.Element {
	if !s.IncludeMimeContent && s.BodyType == "" {
		return nil
	}
	e := xmldom.New("m", "AttachmentShape")
	if s.IncludeMimeContent {
		xmldom.AddText(e, "t", "IncludeMimeContent", "true")
	}
	if s.BodyType != "" {
		xmldom.AddText(e, "t", "BodyType", string(s.BodyType))
	}
	return e
}

// requestAttachmentID renders an id without the root item attributes,
// which requests must not carry.
func requestAttachmentID(id AttachmentID) (*etree.Element, error) {
	if id.ID == "" {
		return nil, emptyIDError("attachment")
	}
	e := xmldom.New("t", "AttachmentId")
	e.CreateAttr("Id", id.ID)
	return e, nil
}

func firstAttachment(msg *etree.Element) *etree.Element {
	list := xmldom.Child(msg, "Attachments", xmldom.NSMessages)
	if list == nil {
		return nil
	}
	children := list.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// CreateAttachment adds attachments to the item parent. Every returned id
// carries the parent's new change key.
func (s *Service) CreateAttachment(ctx context.Context, parent ItemID, attachments ...Attachment) ([]AttachmentID, error) {
	var ids []AttachmentID
	err := s.call(ctx, "CreateAttachment",
		func() (*etree.Element, error) {
			if !parent.Valid() {
				return nil, emptyIDError("item")
			}
			if len(attachments) == 0 {
				return nil, fmt.Errorf("create attachment: no attachments given")
			}
			e := xmldom.New("m", "CreateAttachment")
			pid := parent.element("ParentItemId")
			pid.Space = "m"
			e.AddChild(pid)
			list := xmldom.Add(e, "m", "Attachments")
			for i := range attachments {
				list.AddChild(attachments[i].element().Copy())
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				a := firstAttachment(msg)
				if a == nil {
					return &ProtocolError{Text: "Expected an attachment in CreateAttachmentResponseMessage"}
				}
				ids = append(ids, attachmentIDFromElement(xmldom.Child(a, "AttachmentId", xmldom.NSTypes)))
			}
			return nil
		})
	return ids, err
}

// GetAttachment fetches an attachment including its content.
func (s *Service) GetAttachment(ctx context.Context, id AttachmentID, shape AttachmentShape) (Attachment, error) {
	var out Attachment
	err := s.call(ctx, "GetAttachment",
		func() (*etree.Element, error) {
			aid, err := requestAttachmentID(id)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "GetAttachment")
			if sh := shape.element(); sh != nil {
				e.AddChild(sh)
			}
			xmldom.Add(e, "m", "AttachmentIds").AddChild(aid)
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			a := firstAttachment(msg)
			if a == nil {
				return &ProtocolError{Text: "Expected an attachment in GetAttachmentResponseMessage"}
			}
			out = attachmentFromElement(a)
			return nil
		})
	return out, err
}

// DeleteAttachment removes an attachment and returns the id of the parent
// item with its new change key.
func (s *Service) DeleteAttachment(ctx context.Context, id AttachmentID) (ItemID, error) {
	var root ItemID
	err := s.call(ctx, "DeleteAttachment",
		func() (*etree.Element, error) {
			aid, err := requestAttachmentID(id)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "DeleteAttachment")
			xmldom.Add(e, "m", "AttachmentIds").AddChild(aid)
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			r := xmldom.Child(msg, "RootItemId", xmldom.NSMessages)
			root = ItemID{ID: xmldom.Attr(r, "RootItemId"), ChangeKey: xmldom.Attr(r, "RootItemChangeKey")}
			return nil
		})
	return root, err
}
