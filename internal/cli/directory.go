package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
)

func newRoomsCmd(a *app) *cobra.Command {
	var list string
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List room lists, or the rooms of one list",
		Example: `  ewsctl rooms
  ewsctl rooms --list building-a@duckburg.com`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			w := cmd.OutOrStdout()
			if list == "" {
				lists, err := s.svc.GetRoomLists(cmd.Context())
				if err != nil {
					return err
				}
				if len(lists) == 0 {
					none(w, "room lists")
					return nil
				}
				heading(w, "Room lists")
				for _, l := range lists {
					fmt.Fprintf(w, "  %s\n", formatMailbox(l))
				}
				return nil
			}

			rooms, err := s.svc.GetRooms(cmd.Context(), ews.NewMailbox(list))
			if err != nil {
				return err
			}
			if len(rooms) == 0 {
				none(w, "rooms")
				return nil
			}
			heading(w, "Rooms in %s", list)
			for _, r := range rooms {
				fmt.Fprintf(w, "  %s\n", formatMailbox(r))
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&list, "list", "", "room list address")
	return cmd
}

var searchScopes = map[string]ews.SearchScope{
	"ad":          ews.ScopeActiveDirectory,
	"ad-contacts": ews.ScopeActiveDirectoryContacts,
	"contacts":    ews.ScopeContacts,
	"contacts-ad": ews.ScopeContactsActiveDirectory,
}

func newResolveCmd(a *app) *cobra.Command {
	var scope string
	var full bool
	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve an ambiguous name against the directory and contacts",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			sc, ok := searchScopes[scope]
			if !ok {
				return fmt.Errorf("--scope must be one of ad, ad-contacts, contacts, contacts-ad; got %q", scope)
			}
			res, err := s.svc.ResolveNames(cmd.Context(), args[0], ews.ResolveNamesOptions{
				Scope:                 sc,
				ReturnFullContactData: full,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(res) == 0 {
				none(w, "matches")
				return nil
			}
			for _, r := range res {
				heading(w, "%s", formatMailbox(r.Mailbox))
				field(w, "Routing", r.Mailbox.Routing())
				field(w, "Type", string(r.Mailbox.MailboxType))
				if r.Contact != nil {
					field(w, "Display name", r.Contact.DisplayName())
					field(w, "Job title", r.Contact.JobTitle())
					field(w, "Department", r.Contact.Department())
					field(w, "Office", r.Contact.OfficeLocation())
					field(w, "Business phone", r.Contact.PhoneNumber(ews.BusinessPhone))
				}
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&scope, "scope", "ad", "search scope: ad, ad-contacts, contacts or contacts-ad")
	cmd.Flags().BoolVar(&full, "full", false, "return full contact data")
	return cmd
}

func newDelegatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegates",
		Short: "Manage the delegates of a mailbox",
	}
	cmd.AddCommand(newDelegatesGetCmd(a), newDelegatesAddCmd(a), newDelegatesRemoveCmd(a))
	return cmd
}

func ownerMailbox(s *session, owner string) (ews.Mailbox, error) {
	if owner == "" {
		owner = s.mailbox()
	}
	if !strings.Contains(owner, "@") {
		return ews.Mailbox{}, errors.New("--owner must be an SMTP address")
	}
	return ews.NewMailbox(owner), nil
}

func newDelegatesGetCmd(a *app) *cobra.Command {
	var owner string
	var permissions bool
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List delegates",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			mb, err := ownerMailbox(s, owner)
			if err != nil {
				return err
			}
			delegates, err := s.svc.GetDelegate(cmd.Context(), mb, permissions)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(delegates) == 0 {
				none(w, "delegates")
				return nil
			}
			for _, d := range delegates {
				name := d.UserID.DisplayName
				if name == "" {
					name = d.UserID.PrimarySMTPAddress
				}
				heading(w, "%s", name)
				field(w, "Address", d.UserID.PrimarySMTPAddress)
				field(w, "Calendar", string(d.Permissions.Calendar))
				field(w, "Tasks", string(d.Permissions.Tasks))
				field(w, "Inbox", string(d.Permissions.Inbox))
				field(w, "Contacts", string(d.Permissions.Contacts))
				if d.ViewPrivateItems {
					field(w, "Private items", "visible")
				}
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&owner, "owner", "", "mailbox owner (default: the profile's mailbox)")
	cmd.Flags().BoolVar(&permissions, "permissions", true, "include folder permissions")
	return cmd
}

var permissionLevels = map[string]ews.DelegatePermissionLevel{
	"":         "",
	"none":     ews.PermissionNone,
	"reviewer": ews.PermissionReviewer,
	"author":   ews.PermissionAuthor,
	"editor":   ews.PermissionEditor,
}

func parsePermission(flag, value string) (ews.DelegatePermissionLevel, error) {
	lvl, ok := permissionLevels[strings.ToLower(value)]
	if !ok {
		return "", fmt.Errorf("--%s must be none, reviewer, author or editor; got %q", flag, value)
	}
	return lvl, nil
}

func newDelegatesAddCmd(a *app) *cobra.Command {
	var owner, calendar, tasks, inbox, contacts string
	var private bool
	cmd := &cobra.Command{
		Use:     "add <delegate-address>",
		Short:   "Grant a delegate access",
		Example: `  ewsctl delegates add gyro@duckburg.com --calendar editor --inbox reviewer`,
		Args:    cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			mb, err := ownerMailbox(s, owner)
			if err != nil {
				return err
			}
			var perms ews.DelegatePermissions
			for _, p := range []struct {
				flag, value string
				dst         *ews.DelegatePermissionLevel
			}{
				{"calendar", calendar, &perms.Calendar},
				{"tasks", tasks, &perms.Tasks},
				{"inbox", inbox, &perms.Inbox},
				{"contacts", contacts, &perms.Contacts},
			} {
				lvl, err := parsePermission(p.flag, p.value)
				if err != nil {
					return err
				}
				*p.dst = lvl
			}

			added, err := s.svc.AddDelegate(cmd.Context(), mb, []ews.DelegateUser{{
				UserID:           ews.UserID{PrimarySMTPAddress: args[0]},
				Permissions:      perms,
				ViewPrivateItems: private,
			}}, ews.DelegatesAndMe)
			if err != nil {
				return err
			}
			for _, d := range added {
				success(cmd.OutOrStdout(), "Added delegate %s", d.UserID.PrimarySMTPAddress)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&owner, "owner", "", "mailbox owner (default: the profile's mailbox)")
	cmd.Flags().StringVar(&calendar, "calendar", "", "calendar permission")
	cmd.Flags().StringVar(&tasks, "tasks", "", "tasks permission")
	cmd.Flags().StringVar(&inbox, "inbox", "", "inbox permission")
	cmd.Flags().StringVar(&contacts, "contacts", "", "contacts permission")
	cmd.Flags().BoolVar(&private, "view-private", false, "let the delegate see private items")
	return cmd
}

func newDelegatesRemoveCmd(a *app) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "remove <delegate-address>...",
		Short: "Revoke delegate access",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			mb, err := ownerMailbox(s, owner)
			if err != nil {
				return err
			}
			users := make([]ews.UserID, 0, len(args))
			for _, addr := range args {
				users = append(users, ews.UserID{PrimarySMTPAddress: addr})
			}
			if err := s.svc.RemoveDelegate(cmd.Context(), mb, users); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Removed %s", strings.Join(args, ", "))
			return nil
		}),
	}
	cmd.Flags().StringVar(&owner, "owner", "", "mailbox owner (default: the profile's mailbox)")
	return cmd
}
