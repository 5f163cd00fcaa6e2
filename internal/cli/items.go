package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
)

func parseTime(flag, value string) (ews.DateTime, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("--%s: expected RFC 3339 time such as 2026-01-31T17:00:00Z: %w", flag, err)
	}
	return ews.DateTimeFromTime(t), nil
}

func newCreateTaskCmd(a *app) *cobra.Command {
	var subject, body, due string
	cmd := &cobra.Command{
		Use:   "create-task",
		Short: "Create a task in the Tasks folder",
		Example: `  ewsctl create-task --subject "Get some milk" --body "Skimmed, please"
  ewsctl create-task --subject "File report" --due 2026-01-31T17:00:00Z`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}
			task := ews.NewTask()
			task.SetSubject(subject)
			if body != "" {
				task.SetBody(ews.NewBody(body))
			}
			if due != "" {
				d, err := parseTime("due", due)
				if err != nil {
					return err
				}
				task.SetDueDate(d)
			}

			id, err := s.svc.CreateItem(cmd.Context(), task, ews.CreateItemOptions{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			success(w, "Created task %q", subject)
			printItemID(w, id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&subject, "subject", "", "task subject")
	cmd.Flags().StringVar(&body, "body", "", "plain text body")
	cmd.Flags().StringVar(&due, "due", "", "due date (RFC 3339)")
	return cmd
}

func newCreateContactCmd(a *app) *cobra.Command {
	var given, surname, email, mobile, company string
	cmd := &cobra.Command{
		Use:     "create-contact",
		Short:   "Create a contact in the Contacts folder",
		Example: `  ewsctl create-contact --given Donald --surname Duck --email donald@duckburg.com`,
		Args:    cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			if given == "" && surname == "" {
				return errors.New("--given or --surname is required")
			}
			c := ews.NewContact()
			if given != "" {
				c.SetGivenName(given)
			}
			if surname != "" {
				c.SetSurname(surname)
			}
			if company != "" {
				c.SetCompanyName(company)
			}
			if email != "" {
				c.SetEmailAddress(ews.EmailAddress{Key: ews.EmailAddress1, Value: email})
			}
			if mobile != "" {
				c.SetPhoneNumber(ews.PhoneNumber{Key: ews.MobilePhone, Value: mobile})
			}

			id, err := s.svc.CreateItem(cmd.Context(), c, ews.CreateItemOptions{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			success(w, "Created contact %s %s", given, surname)
			printItemID(w, id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&given, "given", "", "given name")
	cmd.Flags().StringVar(&surname, "surname", "", "surname")
	cmd.Flags().StringVar(&email, "email", "", "primary email address")
	cmd.Flags().StringVar(&mobile, "mobile", "", "mobile phone number")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	return cmd
}

// findOptions are the flags shared by the find-* commands.
type findOptions struct {
	folder string
	limit  int
	offset int
}

func (o *findOptions) bind(cmd *cobra.Command, folder string) {
	cmd.Flags().StringVar(&o.folder, "folder", folder, "folder name or id")
	cmd.Flags().IntVar(&o.limit, "limit", 50, "maximum number of items (0 lets the server decide)")
	cmd.Flags().IntVar(&o.offset, "offset", 0, "skip this many items")
}

func (o *findOptions) request(r ews.Restriction, sort ews.SortOrder) (ews.FindItemRequest, error) {
	folder, err := parseFolder(o.folder)
	if err != nil {
		return ews.FindItemRequest{}, err
	}
	req := ews.FindItemRequest{
		Folders:     []ews.FolderID{folder},
		Shape:       ews.NewItemShape(ews.DefaultShape),
		Restriction: r,
		SortOrder:   sort,
	}
	if o.limit > 0 {
		req.View = ews.NewIndexedPageView(o.limit, o.offset)
	}
	return req, nil
}

func printFindSummary(w io.Writer, res *ews.FindItemResult, what string) {
	if len(res.Items) == 0 {
		none(w, what)
		return
	}
	more := ""
	if !res.IncludesLastItemInRange {
		more = ", more available"
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d of %d %s%s", len(res.Items), res.TotalItemsInView, what, more)))
}

func newestFirst() ews.SortOrder {
	return ews.SortOrder{{Path: ews.PathItemDateTimeReceived, Direction: ews.Descending}}
}

func printMessages(w io.Writer, res *ews.FindItemResult) {
	for _, it := range res.Items {
		heading(w, "%s", it.Subject())
		if m, ok := it.Message(); ok {
			field(w, "From", formatMailbox(m.From()))
		}
		field(w, "Received", string(it.DateTimeReceived()))
		field(w, "Id", it.ItemID().ID)
	}
	printFindSummary(w, res, "messages")
}

func newFindUnreadCmd(a *app) *cobra.Command {
	var opts findOptions
	cmd := &cobra.Command{
		Use:   "find-unread",
		Short: "List unread messages",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			req, err := opts.request(ews.IsEqualTo(ews.PathMessageIsRead, false), newestFirst())
			if err != nil {
				return err
			}
			res, err := s.svc.FindItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			printMessages(cmd.OutOrStdout(), res)
			return nil
		}),
	}
	opts.bind(cmd, string(ews.FolderInbox))
	return cmd
}

func newFindMessagesCmd(a *app) *cobra.Command {
	var opts findOptions
	var subject, from string
	cmd := &cobra.Command{
		Use:   "find-messages",
		Short: "Search messages by subject or sender",
		Example: `  ewsctl find-messages --subject invoice
  ewsctl find-messages --from scrooge@duckburg.com --folder sentitems`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			var parts []ews.Restriction
			if subject != "" {
				parts = append(parts, ews.Contains(ews.PathItemSubject, subject,
					ews.WithContainmentComparison(ews.IgnoreCase)))
			}
			if from != "" {
				parts = append(parts, ews.Contains(ews.PathMessageFrom, from,
					ews.WithContainmentComparison(ews.IgnoreCase)))
			}
			var r ews.Restriction
			switch len(parts) {
			case 0:
			case 1:
				r = parts[0]
			default:
				r = ews.And(parts[0], parts[1])
			}

			req, err := opts.request(r, newestFirst())
			if err != nil {
				return err
			}
			res, err := s.svc.FindItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			printMessages(cmd.OutOrStdout(), res)
			return nil
		}),
	}
	opts.bind(cmd, string(ews.FolderInbox))
	cmd.Flags().StringVar(&subject, "subject", "", "subject contains this text")
	cmd.Flags().StringVar(&from, "from", "", "sender contains this text")
	return cmd
}

func newFindTasksCmd(a *app) *cobra.Command {
	var opts findOptions
	var open bool
	cmd := &cobra.Command{
		Use:   "find-tasks",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			var r ews.Restriction
			if open {
				r = ews.IsNotEqualTo(ews.PathTaskStatus, ews.TaskCompleted)
			}
			req, err := opts.request(r, nil)
			if err != nil {
				return err
			}
			res, err := s.svc.FindItem(cmd.Context(), req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, it := range res.Items {
				heading(w, "%s", it.Subject())
				if t, ok := it.Task(); ok {
					field(w, "Status", string(t.Status()))
					field(w, "Due", string(t.DueDate()))
				}
				field(w, "Id", it.ItemID().ID)
			}
			printFindSummary(w, res, "tasks")
			return nil
		}),
	}
	opts.bind(cmd, string(ews.FolderTasks))
	cmd.Flags().BoolVar(&open, "open", false, "only tasks that are not completed")
	return cmd
}
