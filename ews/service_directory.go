package ews

import (
	"context"
	"errors"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// ResolveNamesOptions controls ResolveNames. Scope defaults to
// ActiveDirectory.
type ResolveNamesOptions struct {
	Scope                 SearchScope
	ReturnFullContactData bool
	// ContactDataShape requires Exchange 2010 SP2 or later.
	ContactDataShape BaseShape
}

// Resolution is one match of ResolveNames. Contact is set when full
// contact data was requested and the server returned it.
type Resolution struct {
	Mailbox Mailbox
	Contact *Contact
}

// ResolveNames resolves an ambiguous name against the directory and the
// caller's contacts. Several matches are returned together; no match yields
// an empty result rather than an error.
func (s *Service) ResolveNames(ctx context.Context, name string, opts ResolveNamesOptions) ([]Resolution, error) {
	var out []Resolution
	err := s.call(ctx, "ResolveNames",
		func() (*etree.Element, error) {
			scope := opts.Scope
			if scope == "" {
				scope = ScopeActiveDirectory
			}
			e := xmldom.New("m", "ResolveNames")
			e.CreateAttr("ReturnFullContactData", strconv.FormatBool(opts.ReturnFullContactData))
			e.CreateAttr("SearchScope", string(scope))
			if opts.ContactDataShape != "" {
				e.CreateAttr("ContactDataShape", string(opts.ContactDataShape))
			}
			xmldom.AddText(e, "m", "UnresolvedEntry", name)
			return e, nil
		},
		func(resp *etree.Element) error {
			msgs, err := responseMessages(resp)
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				if err := checkResponseMessage(msg); err != nil {
					switch CodeOf(err) {
					case ErrorNameResolutionNoResults:
						continue
					case ErrorNameResolutionMultipleResults:
					default:
						return err
					}
				}
				set := xmldom.Child(msg, "ResolutionSet", xmldom.NSMessages)
				for _, r := range xmldom.Children(set, "Resolution", xmldom.NSTypes) {
					res := Resolution{Mailbox: mailboxFromElement(xmldom.Child(r, "Mailbox", xmldom.NSTypes))}
					if c := xmldom.Child(r, "Contact", xmldom.NSTypes); c != nil {
						res.Contact = &Contact{Item: *itemFromElement(c)}
					}
					out = append(out, res)
				}
			}
			return nil
		})
	return out, err
}

// GetRoomLists returns the room lists of the organization.
func (s *Service) GetRoomLists(ctx context.Context) ([]Mailbox, error) {
	var out []Mailbox
	err := s.call(ctx, "GetRoomLists",
		func() (*etree.Element, error) {
			return xmldom.New("m", "GetRoomLists"), nil
		},
		func(resp *etree.Element) error {
			if err := checkResponseMessage(resp); err != nil {
				return err
			}
			list := xmldom.Child(resp, "RoomLists", xmldom.NSMessages)
			for _, a := range xmldom.Children(list, "Address", xmldom.NSTypes) {
				out = append(out, mailboxFromElement(a))
			}
			return nil
		})
	return out, err
}

// GetRooms returns the rooms of the room list with the given address.
func (s *Service) GetRooms(ctx context.Context, roomList Mailbox) ([]Mailbox, error) {
	var out []Mailbox
	err := s.call(ctx, "GetRooms",
		func() (*etree.Element, error) {
			if roomList.Address == "" {
				return nil, ErrEmptySMTPAddress
			}
			e := xmldom.New("m", "GetRooms")
			xmldom.AddText(xmldom.Add(e, "m", "RoomList"), "t", "EmailAddress", roomList.Address)
			return e, nil
		},
		func(resp *etree.Element) error {
			if err := checkResponseMessage(resp); err != nil {
				if CodeOf(err) == ErrorNameResolutionNoResults {
					return nil
				}
				return err
			}
			rooms := xmldom.Child(resp, "Rooms", xmldom.NSMessages)
			for _, r := range xmldom.Children(rooms, "Room", xmldom.NSTypes) {
				out = append(out, mailboxFromElement(xmldom.Child(r, "Id", xmldom.NSTypes)))
			}
			return nil
		})
	return out, err
}

// UserID identifies a delegate.
type UserID struct {
	SID                string
	PrimarySMTPAddress string
	DisplayName        string
	// DistinguishedUser is "Default" or "Anonymous".
	DistinguishedUser string
}

func (u UserID) element() *etree.Element {
	e := xmldom.New("t", "UserId")
	if u.SID != "" {
		xmldom.AddText(e, "t", "SID", u.SID)
	}
	if u.PrimarySMTPAddress != "" {
		xmldom.AddText(e, "t", "PrimarySmtpAddress", u.PrimarySMTPAddress)
	}
	if u.DisplayName != "" {
		xmldom.AddText(e, "t", "DisplayName", u.DisplayName)
	}
	if u.DistinguishedUser != "" {
		xmldom.AddText(e, "t", "DistinguishedUser", u.DistinguishedUser)
	}
	return e
}

func userIDFromElement(e *etree.Element) UserID {
	return UserID{
		SID:                xmldom.ChildText(e, "SID", xmldom.NSTypes),
		PrimarySMTPAddress: xmldom.ChildText(e, "PrimarySmtpAddress", xmldom.NSTypes),
		DisplayName:        xmldom.ChildText(e, "DisplayName", xmldom.NSTypes),
		DistinguishedUser:  xmldom.ChildText(e, "DistinguishedUser", xmldom.NSTypes),
	}
}

// DelegatePermissions is a delegate's access per default folder. Unset
// levels are not sent.
type DelegatePermissions struct {
	Calendar DelegatePermissionLevel
	Tasks    DelegatePermissionLevel
	Inbox    DelegatePermissionLevel
	Contacts DelegatePermissionLevel
	Notes    DelegatePermissionLevel
	Journal  DelegatePermissionLevel
}

type permissionField struct {
	name  string
	level *DelegatePermissionLevel
}

func (p *DelegatePermissions) fields() []permissionField {
	return []permissionField{
		{"CalendarFolderPermissionLevel", &p.Calendar},
		{"TasksFolderPermissionLevel", &p.Tasks},
		{"InboxFolderPermissionLevel", &p.Inbox},
		{"ContactsFolderPermissionLevel", &p.Contacts},
		{"NotesFolderPermissionLevel", &p.Notes},
		{"JournalFolderPermissionLevel", &p.Journal},
	}
}

func (p DelegatePermissions) element() *etree.Element {
	e := xmldom.New("t", "DelegatePermissions")
	for _, f := range p.fields() {
		if *f.level != "" {
			xmldom.AddText(e, "t", f.name, string(*f.level))
		}
	}
	return e
}

func delegatePermissionsFromElement(e *etree.Element) DelegatePermissions {
	var p DelegatePermissions
	for _, f := range p.fields() {
		*f.level = DelegatePermissionLevel(xmldom.ChildText(e, f.name, xmldom.NSTypes))
	}
	return p
}

// DelegateUser is a delegate of a mailbox.
type DelegateUser struct {
	UserID                         UserID
	Permissions                    DelegatePermissions
	ReceiveCopiesOfMeetingMessages bool
	ViewPrivateItems               bool
}

func (d DelegateUser) element() *etree.Element {
	e := xmldom.New("t", "DelegateUser")
	e.AddChild(d.UserID.element())
	e.AddChild(d.Permissions.element())
	xmldom.AddText(e, "t", "ReceiveCopiesOfMeetingMessages", strconv.FormatBool(d.ReceiveCopiesOfMeetingMessages))
	xmldom.AddText(e, "t", "ViewPrivateItems", strconv.FormatBool(d.ViewPrivateItems))
	return e
}

func delegateUserFromElement(e *etree.Element) DelegateUser {
	return DelegateUser{
		UserID:                         userIDFromElement(xmldom.Child(e, "UserId", xmldom.NSTypes)),
		Permissions:                    delegatePermissionsFromElement(xmldom.Child(e, "DelegatePermissions", xmldom.NSTypes)),
		ReceiveCopiesOfMeetingMessages: xmldom.ChildText(e, "ReceiveCopiesOfMeetingMessages", xmldom.NSTypes) == "true",
		ViewPrivateItems:               xmldom.ChildText(e, "ViewPrivateItems", xmldom.NSTypes) == "true",
	}
}

// ownerElement renders <m:Mailbox> with the owner's address only, as the
// delegate operations expect.
func ownerElement(owner Mailbox) (*etree.Element, error) {
	if owner.Address == "" {
		return nil, ErrEmptySMTPAddress
	}
	e := xmldom.New("m", "Mailbox")
	xmldom.AddText(e, "t", "EmailAddress", owner.Address)
	return e, nil
}

// delegateUsers checks a delegate response and collects its delegates. A
// delegate operation fails as a whole when any per-user message fails.
func delegateUsers(resp *etree.Element) ([]DelegateUser, error) {
	if err := checkResponseMessage(resp); err != nil {
		return nil, err
	}
	var out []DelegateUser
	list := xmldom.Child(resp, "ResponseMessages", xmldom.NSMessages)
	if list == nil {
		return nil, nil
	}
	var errs []error
	for _, msg := range list.ChildElements() {
		if err := checkResponseMessage(msg); err != nil {
			errs = append(errs, err)
			continue
		}
		if d := xmldom.Child(msg, "DelegateUser", xmldom.NSMessages); d != nil {
			out = append(out, delegateUserFromElement(d))
		}
	}
	return out, errors.Join(errs...)
}

// AddDelegate grants delegates access to owner's mailbox.
func (s *Service) AddDelegate(ctx context.Context, owner Mailbox, delegates []DelegateUser, scope MeetingRequestsDeliveryScope) ([]DelegateUser, error) {
	var out []DelegateUser
	err := s.call(ctx, "AddDelegate",
		func() (*etree.Element, error) {
			mb, err := ownerElement(owner)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "AddDelegate")
			e.AddChild(mb)
			list := xmldom.Add(e, "m", "DelegateUsers")
			for _, d := range delegates {
				list.AddChild(d.element())
			}
			if scope != "" {
				xmldom.AddText(e, "m", "DeliverMeetingRequests", string(scope))
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			var err error
			out, err = delegateUsers(resp)
			return err
		})
	return out, err
}

// GetDelegate lists the delegates of owner, with their folder permissions
// when includePermissions is set.
func (s *Service) GetDelegate(ctx context.Context, owner Mailbox, includePermissions bool) ([]DelegateUser, error) {
	var out []DelegateUser
	err := s.call(ctx, "GetDelegate",
		func() (*etree.Element, error) {
			mb, err := ownerElement(owner)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "GetDelegate")
			e.CreateAttr("IncludePermissions", strconv.FormatBool(includePermissions))
			e.AddChild(mb)
			return e, nil
		},
		func(resp *etree.Element) error {
			var err error
			out, err = delegateUsers(resp)
			return err
		})
	return out, err
}

// RemoveDelegate revokes the access of the given delegates.
func (s *Service) RemoveDelegate(ctx context.Context, owner Mailbox, users []UserID) error {
	return s.call(ctx, "RemoveDelegate",
		func() (*etree.Element, error) {
			mb, err := ownerElement(owner)
			if err != nil {
				return nil, err
			}
			e := xmldom.New("m", "RemoveDelegate")
			e.AddChild(mb)
			list := xmldom.Add(e, "m", "UserIds")
			for _, u := range users {
				list.AddChild(u.element())
			}
			return e, nil
		},
		func(resp *etree.Element) error {
			_, err := delegateUsers(resp)
			return err
		})
}
