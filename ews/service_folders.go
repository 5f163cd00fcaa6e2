package ews

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// FindFolderRequest describes a FindFolder call.
type FindFolderRequest struct {
	Parents     []FolderID
	Shape       FolderShape
	Traversal   Traversal
	View        *IndexedPageView
	Restriction Restriction
}

// FindFolderResult is one page of FindFolder results.
type FindFolderResult struct {
	Folders                 []*Folder
	TotalItemsInView        int
	IncludesLastItemInRange bool
	IndexedPagingOffset     int
}

func firstFolder(msg *etree.Element) *etree.Element {
	list := xmldom.Child(msg, "Folders", xmldom.NSMessages)
	if list == nil {
		return nil
	}
	children := list.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// GetFolder fetches one folder.
func (s *Service) GetFolder(ctx context.Context, id FolderID, shape FolderShape) (*Folder, error) {
	var folder *Folder
	err := s.call(ctx, "GetFolder",
		func() (*etree.Element, error) {
			ids, err := folderIDsElement("m", "FolderIds", []FolderID{id})
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "GetFolder")
			e.AddChild(shape.element())
			e.AddChild(ids)
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			f := firstFolder(msg)
			if f == nil {
				return &ProtocolError{Text: "Expected a folder in GetFolderResponseMessage"}
			}
			folder = folderFromElement(f)
			return nil
		})
	return folder, err
}

// CreateFolder creates folders below parent and returns their ids in
// request order.
func (s *Service) CreateFolder(ctx context.Context, parent FolderID, folders ...*Folder) ([]FolderID, error) {
	var ids []FolderID
	err := s.call(ctx, "CreateFolder",
		func() (*etree.Element, error) {
			if !parent.Valid() {
				return nil, emptyIDError("folder")
			}
			if len(folders) == 0 {
				return nil, fmt.Errorf("create folder: no folders given")
			}
			e := xmldom.New("m", "CreateFolder")
			xmldom.Add(e, "m", "ParentFolderId").AddChild(parent.element())
			list := xmldom.Add(e, "m", "Folders")
			for _, f := range folders {
				list.AddChild(f.element().Copy())
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := checkAll(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				ids = append(ids, folderIDFromElement(xmldom.Child(firstFolder(msg), "FolderId", xmldom.NSTypes)))
			}
			return nil
		})
	return ids, err
}

// UpdateFolder applies updates to a folder and returns its new id.
func (s *Service) UpdateFolder(ctx context.Context, id FolderID, updates ...Update) (FolderID, error) {
	var newID FolderID
	err := s.call(ctx, "UpdateFolder",
		func() (*etree.Element, error) {
			if !id.Valid() {
				return nil, emptyIDError("folder")
			}
			if len(updates) == 0 {
				return nil, newExchangeError(ErrorIncorrectUpdatePropertyCount, "no updates given")
			}
			e := xmldom.New("m", "UpdateFolder")
			change := xmldom.Add(xmldom.Add(e, "m", "FolderChanges"), "t", "FolderChange")
			change.AddChild(id.element())
			list := xmldom.Add(change, "t", "Updates")
			for _, u := range updates {
				if err := u.validate(); err != nil {
					return nil, err
				}
				list.AddChild(u.element("Folder"))
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			msg, err := singleMessage(resp)
			if err != nil {
				return err
			}
			newID = folderIDFromElement(xmldom.Child(firstFolder(msg), "FolderId", xmldom.NSTypes))
			return nil
		})
	return newID, err
}

// DeleteFolder deletes a folder. Distinguished folders cannot be deleted.
func (s *Service) DeleteFolder(ctx context.Context, id FolderID, deleteType DeleteType) error {
	return s.call(ctx, "DeleteFolder",
		func() (*etree.Element, error) {
			if id.IsDistinguished() {
				return nil, newExchangeError(ErrorDeleteDistinguishedFolder,
					fmt.Sprintf("distinguished folder %q cannot be deleted", id.Name()))
			}
			ids, err := folderIDsElement("m", "FolderIds", []FolderID{id})
			if err != nil {
				return nil, err
			}
			if deleteType == "" {
				deleteType = HardDelete
			}
			e := xmldom.New("m", "DeleteFolder")
			e.CreateAttr("DeleteType", string(deleteType))
			e.AddChild(ids)
			return e, nil
		},
		func(resp *etree.Element) error {
			_, err := singleMessage(resp)
			return err
		})
}

// FindFolder lists the subfolders of the given parents.
func (s *Service) FindFolder(ctx context.Context, req FindFolderRequest) (*FindFolderResult, error) {
	result := &FindFolderResult{}
	err := s.call(ctx, "FindFolder",
		func() (*etree.Element, error) {
			parents, err := folderIDsElement("m", "ParentFolderIds", req.Parents)
			if err != nil {
				return nil, err
			}
			traversal := req.Traversal
			if traversal == "" {
				traversal = Shallow
			}
			e := xmldom.New("m", "FindFolder")
			e.CreateAttr("Traversal", string(traversal))
			e.AddChild(req.Shape.element())
			if req.View != nil {
				v, err := req.View.viewElement("IndexedPageFolderView")
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
					return &ProtocolError{Text: "Expected m:RootFolder in FindFolderResponseMessage"}
				}
				result.TotalItemsInView += attrInt(root, "TotalItemsInView")
				result.IncludesLastItemInRange = xmldom.Attr(root, "IncludesLastItemInRange") == "true"
				result.IndexedPagingOffset = attrInt(root, "IndexedPagingOffset")
				if list := xmldom.Child(root, "Folders", xmldom.NSTypes); list != nil {
					for _, f := range list.ChildElements() {
						result.Folders = append(result.Folders, folderFromElement(f))
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

// MoveFolder moves folders below to and returns their new ids.
// Distinguished folders cannot be moved.
func (s *Service) MoveFolder(ctx context.Context, ids []FolderID, to FolderID) ([]FolderID, error) {
	for _, id := range ids {
		if id.IsDistinguished() {
			return nil, newExchangeError(ErrorMoveDistinguishedFolder,
				fmt.Sprintf("distinguished folder %q cannot be moved", id.Name()))
		}
	}
	return s.transferFolders(ctx, "MoveFolder", ids, to)
}

// CopyFolder copies folders below to and returns the ids of the copies.
func (s *Service) CopyFolder(ctx context.Context, ids []FolderID, to FolderID) ([]FolderID, error) {
	return s.transferFolders(ctx, "CopyFolder", ids, to)
}

func (s *Service) transferFolders(ctx context.Context, op string, ids []FolderID, to FolderID) ([]FolderID, error) {
	var out []FolderID
	err := s.call(ctx, op,
		func() (*etree.Element, error) {
			if !to.Valid() {
				return nil, emptyIDError("folder")
			}
			list, err := folderIDsElement("m", "FolderIds", ids)
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
				out = append(out, folderIDFromElement(xmldom.Child(firstFolder(msg), "FolderId", xmldom.NSTypes)))
			}
			return nil
		})
	return out, err
}
