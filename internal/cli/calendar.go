package cli

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
)

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Read calendar items",
	}
	cmd.AddCommand(newCalendarFindCmd(a), newCalendarGetCmd(a))
	return cmd
}

func newCalendarFindCmd(a *app) *cobra.Command {
	var start, end, folder string
	var days, limit int
	cmd := &cobra.Command{
		Use:   "find",
		Short: "List appointments in a time window",
		Long: `List appointments in a time window. Recurring appointments are
expanded into their occurrences. The window may span at most two years.`,
		Example: `  ewsctl calendar find --days 7
  ewsctl calendar find --start 2026-01-01T00:00:00Z --end 2026-02-01T00:00:00Z`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			from := ews.DateTimeFromTime(time.Now().UTC().Truncate(24 * time.Hour))
			if start != "" {
				d, err := parseTime("start", start)
				if err != nil {
					return err
				}
				from = d
			}
			fromTime, err := from.Time()
			if err != nil {
				return err
			}
			to := ews.DateTimeFromTime(fromTime.AddDate(0, 0, days))
			if end != "" {
				d, err := parseTime("end", end)
				if err != nil {
					return err
				}
				to = d
			}
			f, err := parseFolder(folder)
			if err != nil {
				return err
			}

			view := ews.NewCalendarView(from, to)
			view.MaxEntries = limit
			res, err := s.svc.FindItem(cmd.Context(), ews.FindItemRequest{
				Folders: []ews.FolderID{f},
				Shape:   ews.NewItemShape(ews.DefaultShape),
				View:    view,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, it := range res.Items {
				if c, ok := it.CalendarItem(); ok {
					printAppointment(w, c, false)
				}
			}
			printFindSummary(w, res, "appointments")
			return nil
		}),
	}
	cmd.Flags().StringVar(&start, "start", "", "window start (RFC 3339, default today 00:00 UTC)")
	cmd.Flags().StringVar(&end, "end", "", "window end (RFC 3339)")
	cmd.Flags().IntVar(&days, "days", 7, "window length in days when --end is not given")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of appointments")
	cmd.Flags().StringVar(&folder, "folder", string(ews.FolderCalendar), "calendar folder name or id")
	return cmd
}

func newCalendarGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <item-id>",
		Short: "Show one calendar item with its attendees",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			c, err := s.svc.GetCalendarItem(cmd.Context(), ews.NewItemID(args[0], ""), ews.NewItemShape(ews.AllProperties))
			if err != nil {
				return err
			}
			printAppointment(cmd.OutOrStdout(), c, true)
			return nil
		}),
	}
}

func printAppointment(w io.Writer, c *ews.CalendarItem, detail bool) {
	heading(w, "%s", c.Subject())
	field(w, "Start", string(c.Start()))
	field(w, "End", string(c.End()))
	field(w, "Location", c.Location())
	if c.IsAllDayEvent() {
		field(w, "All day", "yes")
	}
	if c.IsRecurring() {
		field(w, "Recurring", string(c.CalendarItemType()))
	}
	field(w, "Id", c.ItemID().ID)
	if !detail {
		return
	}
	field(w, "Organizer", formatMailbox(c.Organizer()))
	for _, at := range c.RequiredAttendees() {
		field(w, "Required", formatMailbox(at.Mailbox)+" ("+string(at.ResponseType)+")")
	}
	for _, at := range c.OptionalAttendees() {
		field(w, "Optional", formatMailbox(at.Mailbox)+" ("+string(at.ResponseType)+")")
	}
	if n := c.ConflictingMeetingCount(); n > 0 {
		field(w, "Conflicts", strconv.Itoa(n))
	}
	if r, ok := c.Recurrence(); ok {
		field(w, "Recurrence", describePattern(r.Pattern))
	}
}

func describePattern(p ews.RecurrencePattern) string {
	switch p := p.(type) {
	case ews.DailyRecurrence:
		return "every " + strconv.Itoa(p.Interval) + " day(s)"
	case ews.WeeklyRecurrence:
		days := make([]string, 0, len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			days = append(days, string(d))
		}
		return "every " + strconv.Itoa(p.Interval) + " week(s) on " + strings.Join(days, ", ")
	case ews.AbsoluteMonthlyRecurrence:
		return "day " + strconv.Itoa(p.DayOfMonth) + " of every " + strconv.Itoa(p.Interval) + " month(s)"
	case ews.RelativeMonthlyRecurrence:
		return string(p.DayOfWeekIndex) + " " + string(p.DaysOfWeek) + " of every " + strconv.Itoa(p.Interval) + " month(s)"
	case ews.AbsoluteYearlyRecurrence:
		return string(p.Month) + " " + strconv.Itoa(p.DayOfMonth) + " every year"
	case ews.RelativeYearlyRecurrence:
		return string(p.DayOfWeekIndex) + " " + string(p.DaysOfWeek) + " of " + string(p.Month) + " every year"
	default:
		return "custom"
	}
}
